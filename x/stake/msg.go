package stake

import (
	"github.com/gogo/protobuf/proto"

	"github.com/iov-one/stakevault/errors"
	"github.com/iov-one/stakevault/weave"
)

var (
	_ weave.Msg = (*AddMsg)(nil)
	_ weave.Msg = (*RemoveMsg)(nil)
)

// AddMsg opens the staking position.
type AddMsg struct {
	Staker weave.Address `protobuf:"bytes,1,opt,name=staker,proto3" json:"staker,omitempty"`
	Amount uint64        `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (AddMsg) Path() string {
	return "stake/add"
}

func (m *AddMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Staker", m.Staker.Validate())
	if m.Amount == 0 {
		errs = errors.AppendField(errs, "Amount", errors.ErrAmount)
	}
	return errs
}

// RemoveMsg closes the staking position.
type RemoveMsg struct {
	Staker weave.Address `protobuf:"bytes,1,opt,name=staker,proto3" json:"staker,omitempty"`
}

func (RemoveMsg) Path() string {
	return "stake/remove"
}

func (m *RemoveMsg) Validate() error {
	return errors.AppendField(nil, "Staker", m.Staker.Validate())
}

type addMsgpb AddMsg

func (m *addMsgpb) Reset()         { *m = addMsgpb{} }
func (m *addMsgpb) String() string { return proto.CompactTextString(m) }
func (*addMsgpb) ProtoMessage()    {}

func (m *AddMsg) Reset()         { *m = AddMsg{} }
func (m *AddMsg) String() string { return proto.CompactTextString((*addMsgpb)(m)) }
func (*AddMsg) ProtoMessage()    {}

func (m *AddMsg) Marshal() ([]byte, error) { return proto.Marshal((*addMsgpb)(m)) }
func (m *AddMsg) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*addMsgpb)(m)) }

type removeMsgpb RemoveMsg

func (m *removeMsgpb) Reset()         { *m = removeMsgpb{} }
func (m *removeMsgpb) String() string { return proto.CompactTextString(m) }
func (*removeMsgpb) ProtoMessage()    {}

func (m *RemoveMsg) Reset()         { *m = RemoveMsg{} }
func (m *RemoveMsg) String() string { return proto.CompactTextString((*removeMsgpb)(m)) }
func (*RemoveMsg) ProtoMessage()    {}

func (m *RemoveMsg) Marshal() ([]byte, error) { return proto.Marshal((*removeMsgpb)(m)) }
func (m *RemoveMsg) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*removeMsgpb)(m)) }
