package weavetest

import (
	"github.com/iov-one/stakevault/errors"
	"github.com/iov-one/stakevault/weave"
)

// Tx is a transaction carrying a single message.
type Tx struct {
	Msg weave.Msg
	// Err if set is returned by GetMsg instead of the message.
	Err error
}

var _ weave.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (weave.Msg, error) {
	if tx.Err != nil {
		return nil, tx.Err
	}
	return tx.Msg, nil
}

// Marshal returns the serialized message.
func (tx *Tx) Marshal() ([]byte, error) {
	if tx.Msg == nil {
		return nil, errors.Wrap(errors.ErrEmpty, "no message")
	}
	return tx.Msg.Marshal()
}

// Unmarshal loads the raw bytes into a Msg.
func (tx *Tx) Unmarshal(raw []byte) error {
	var m Msg
	if err := m.Unmarshal(raw); err != nil {
		return err
	}
	tx.Msg = &m
	return nil
}

// Msg is a message routed by its path only. Its content is opaque.
type Msg struct {
	RoutePath  string
	Serialized []byte
	// Err if set is returned by Validate, so that handlers reject the
	// message.
	Err error
}

var _ weave.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}

func (m *Msg) Marshal() ([]byte, error) {
	return m.Serialized, nil
}

func (m *Msg) Unmarshal(raw []byte) error {
	m.Serialized = append([]byte(nil), raw...)
	return nil
}
