package stakeapp

import (
	"github.com/gogo/protobuf/proto"

	"github.com/iov-one/stakevault/errors"
	"github.com/iov-one/stakevault/weave"
	"github.com/iov-one/stakevault/x/ledger"
	"github.com/iov-one/stakevault/x/sigs"
	"github.com/iov-one/stakevault/x/stake"
)

// Tx is the transaction envelope of the application. Exactly one of the
// message fields must be set.
type Tx struct {
	CreateTokenMsg *ledger.CreateTokenMsg `protobuf:"bytes,1,opt,name=create_token_msg,json=createTokenMsg,proto3" json:"create_token_msg,omitempty"`
	MintMsg        *ledger.MintMsg        `protobuf:"bytes,2,opt,name=mint_msg,json=mintMsg,proto3" json:"mint_msg,omitempty"`
	TransferMsg    *ledger.TransferMsg    `protobuf:"bytes,3,opt,name=transfer_msg,json=transferMsg,proto3" json:"transfer_msg,omitempty"`
	BurnMsg        *ledger.BurnMsg        `protobuf:"bytes,4,opt,name=burn_msg,json=burnMsg,proto3" json:"burn_msg,omitempty"`
	FreezeMsg      *ledger.FreezeMsg      `protobuf:"bytes,5,opt,name=freeze_msg,json=freezeMsg,proto3" json:"freeze_msg,omitempty"`
	ThawMsg        *ledger.ThawMsg        `protobuf:"bytes,6,opt,name=thaw_msg,json=thawMsg,proto3" json:"thaw_msg,omitempty"`
	ApproveMsg     *ledger.ApproveMsg     `protobuf:"bytes,7,opt,name=approve_msg,json=approveMsg,proto3" json:"approve_msg,omitempty"`
	RevokeMsg      *ledger.RevokeMsg      `protobuf:"bytes,8,opt,name=revoke_msg,json=revokeMsg,proto3" json:"revoke_msg,omitempty"`
	CloseMsg       *ledger.CloseMsg       `protobuf:"bytes,9,opt,name=close_msg,json=closeMsg,proto3" json:"close_msg,omitempty"`
	AddMsg         *stake.AddMsg          `protobuf:"bytes,51,opt,name=add_msg,json=addMsg,proto3" json:"add_msg,omitempty"`
	RemoveMsg      *stake.RemoveMsg       `protobuf:"bytes,52,opt,name=remove_msg,json=removeMsg,proto3" json:"remove_msg,omitempty"`
	// Signatures are verified by the sigs decorator.
	Signatures []*sigs.StdSignature `protobuf:"bytes,100,rep,name=signatures,proto3" json:"signatures,omitempty"`
}

var (
	_ weave.Tx      = (*Tx)(nil)
	_ sigs.SignedTx = (*Tx)(nil)
)

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (weave.Tx, error) {
	tx := new(Tx)
	if err := tx.Unmarshal(bz); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "cannot decode tx: %s", err)
	}
	return tx, nil
}

// GetMsg returns the single message carried by the transaction.
func (tx *Tx) GetMsg() (weave.Msg, error) {
	msgs := tx.messages()
	switch len(msgs) {
	case 0:
		return nil, errors.Wrap(errors.ErrMsg, "no message")
	case 1:
		return msgs[0], nil
	default:
		return nil, errors.Wrapf(errors.ErrMsg, "%d messages in one transaction", len(msgs))
	}
}

// messages returns all set message fields. Every field is tested before the
// conversion, as a nil pointer stored in an interface is not nil.
func (tx *Tx) messages() []weave.Msg {
	var msgs []weave.Msg
	collect := func(set bool, m weave.Msg) {
		if set {
			msgs = append(msgs, m)
		}
	}
	collect(tx.CreateTokenMsg != nil, tx.CreateTokenMsg)
	collect(tx.MintMsg != nil, tx.MintMsg)
	collect(tx.TransferMsg != nil, tx.TransferMsg)
	collect(tx.BurnMsg != nil, tx.BurnMsg)
	collect(tx.FreezeMsg != nil, tx.FreezeMsg)
	collect(tx.ThawMsg != nil, tx.ThawMsg)
	collect(tx.ApproveMsg != nil, tx.ApproveMsg)
	collect(tx.RevokeMsg != nil, tx.RevokeMsg)
	collect(tx.CloseMsg != nil, tx.CloseMsg)
	collect(tx.AddMsg != nil, tx.AddMsg)
	collect(tx.RemoveMsg != nil, tx.RemoveMsg)
	return msgs
}

// GetSignBytes returns the bytes to sign. They only come from the data
// itself, not from previous signatures.
func (tx *Tx) GetSignBytes() ([]byte, error) {
	unsigned := *tx
	unsigned.Signatures = nil
	return unsigned.Marshal()
}

// GetSignatures returns the signatures attached to the transaction.
func (tx *Tx) GetSignatures() []*sigs.StdSignature {
	return tx.Signatures
}

type txpb Tx

func (m *txpb) Reset()         { *m = txpb{} }
func (m *txpb) String() string { return proto.CompactTextString(m) }
func (*txpb) ProtoMessage()    {}

// Marshal serializes the transaction using protobuf encoding.
func (tx *Tx) Marshal() ([]byte, error) { return proto.Marshal((*txpb)(tx)) }

// Unmarshal deserializes the transaction using protobuf encoding.
func (tx *Tx) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*txpb)(tx)) }
