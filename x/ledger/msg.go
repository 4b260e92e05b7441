package ledger

import (
	"github.com/gogo/protobuf/proto"

	"github.com/iov-one/stakevault/coin"
	"github.com/iov-one/stakevault/errors"
	"github.com/iov-one/stakevault/weave"
)

var (
	_ weave.Msg = (*CreateTokenMsg)(nil)
	_ weave.Msg = (*MintMsg)(nil)
	_ weave.Msg = (*TransferMsg)(nil)
	_ weave.Msg = (*BurnMsg)(nil)
	_ weave.Msg = (*FreezeMsg)(nil)
	_ weave.Msg = (*ThawMsg)(nil)
	_ weave.Msg = (*ApproveMsg)(nil)
	_ weave.Msg = (*RevokeMsg)(nil)
	_ weave.Msg = (*CloseMsg)(nil)
)

// CreateTokenMsg registers a new token.
type CreateTokenMsg struct {
	Ticker          string        `protobuf:"bytes,1,opt,name=ticker,proto3" json:"ticker,omitempty"`
	Decimals        uint32        `protobuf:"varint,2,opt,name=decimals,proto3" json:"decimals,omitempty"`
	MintAuthority   weave.Address `protobuf:"bytes,3,opt,name=mint_authority,json=mintAuthority,proto3" json:"mint_authority,omitempty"`
	FreezeAuthority weave.Address `protobuf:"bytes,4,opt,name=freeze_authority,json=freezeAuthority,proto3" json:"freeze_authority,omitempty"`
}

func (CreateTokenMsg) Path() string {
	return "ledger/create_token"
}

func (m *CreateTokenMsg) Validate() error {
	t := Token{
		Ticker:          m.Ticker,
		Decimals:        m.Decimals,
		MintAuthority:   m.MintAuthority,
		FreezeAuthority: m.FreezeAuthority,
	}
	return t.Validate()
}

// MintMsg issues new tokens.
type MintMsg struct {
	Ticker string        `protobuf:"bytes,1,opt,name=ticker,proto3" json:"ticker,omitempty"`
	Dest   weave.Address `protobuf:"bytes,2,opt,name=dest,proto3" json:"dest,omitempty"`
	Amount uint64        `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (MintMsg) Path() string {
	return "ledger/mint"
}

func (m *MintMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Ticker", validateTicker(m.Ticker))
	errs = errors.AppendField(errs, "Dest", m.Dest.Validate())
	errs = errors.AppendField(errs, "Amount", validateAmount(m.Amount))
	return errs
}

// TransferMsg moves tokens between holders.
type TransferMsg struct {
	Ticker string        `protobuf:"bytes,1,opt,name=ticker,proto3" json:"ticker,omitempty"`
	Src    weave.Address `protobuf:"bytes,2,opt,name=src,proto3" json:"src,omitempty"`
	Dest   weave.Address `protobuf:"bytes,3,opt,name=dest,proto3" json:"dest,omitempty"`
	Amount uint64        `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (TransferMsg) Path() string {
	return "ledger/transfer"
}

func (m *TransferMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Ticker", validateTicker(m.Ticker))
	errs = errors.AppendField(errs, "Src", m.Src.Validate())
	errs = errors.AppendField(errs, "Dest", m.Dest.Validate())
	errs = errors.AppendField(errs, "Amount", validateAmount(m.Amount))
	return errs
}

// BurnMsg destroys tokens.
type BurnMsg struct {
	Ticker string        `protobuf:"bytes,1,opt,name=ticker,proto3" json:"ticker,omitempty"`
	Src    weave.Address `protobuf:"bytes,2,opt,name=src,proto3" json:"src,omitempty"`
	Amount uint64        `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (BurnMsg) Path() string {
	return "ledger/burn"
}

func (m *BurnMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Ticker", validateTicker(m.Ticker))
	errs = errors.AppendField(errs, "Src", m.Src.Validate())
	errs = errors.AppendField(errs, "Amount", validateAmount(m.Amount))
	return errs
}

// FreezeMsg freezes an account.
type FreezeMsg struct {
	Ticker string        `protobuf:"bytes,1,opt,name=ticker,proto3" json:"ticker,omitempty"`
	Holder weave.Address `protobuf:"bytes,2,opt,name=holder,proto3" json:"holder,omitempty"`
}

func (FreezeMsg) Path() string {
	return "ledger/freeze"
}

func (m *FreezeMsg) Validate() error {
	return validateAccountRef(m.Ticker, m.Holder)
}

// ThawMsg unfreezes an account.
type ThawMsg struct {
	Ticker string        `protobuf:"bytes,1,opt,name=ticker,proto3" json:"ticker,omitempty"`
	Holder weave.Address `protobuf:"bytes,2,opt,name=holder,proto3" json:"holder,omitempty"`
}

func (ThawMsg) Path() string {
	return "ledger/thaw"
}

func (m *ThawMsg) Validate() error {
	return validateAccountRef(m.Ticker, m.Holder)
}

// ApproveMsg sets a delegate with an allowance.
type ApproveMsg struct {
	Ticker   string        `protobuf:"bytes,1,opt,name=ticker,proto3" json:"ticker,omitempty"`
	Owner    weave.Address `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
	Delegate weave.Address `protobuf:"bytes,3,opt,name=delegate,proto3" json:"delegate,omitempty"`
	Amount   uint64        `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (ApproveMsg) Path() string {
	return "ledger/approve"
}

func (m *ApproveMsg) Validate() error {
	errs := validateAccountRef(m.Ticker, m.Owner)
	errs = errors.AppendField(errs, "Delegate", m.Delegate.Validate())
	errs = errors.AppendField(errs, "Amount", validateAmount(m.Amount))
	return errs
}

// RevokeMsg clears the delegate of an account.
type RevokeMsg struct {
	Ticker string        `protobuf:"bytes,1,opt,name=ticker,proto3" json:"ticker,omitempty"`
	Owner  weave.Address `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
}

func (RevokeMsg) Path() string {
	return "ledger/revoke"
}

func (m *RevokeMsg) Validate() error {
	return validateAccountRef(m.Ticker, m.Owner)
}

// CloseMsg deletes an empty account.
type CloseMsg struct {
	Ticker string        `protobuf:"bytes,1,opt,name=ticker,proto3" json:"ticker,omitempty"`
	Owner  weave.Address `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
}

func (CloseMsg) Path() string {
	return "ledger/close"
}

func (m *CloseMsg) Validate() error {
	return validateAccountRef(m.Ticker, m.Owner)
}

func validateTicker(ticker string) error {
	if !coin.IsCC(ticker) {
		return errors.Wrapf(errors.ErrCurrency, "ticker %q", ticker)
	}
	return nil
}

func validateAmount(amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "must be greater than zero")
	}
	return nil
}

func validateAccountRef(ticker string, holder weave.Address) error {
	var errs error
	errs = errors.AppendField(errs, "Ticker", validateTicker(ticker))
	errs = errors.AppendField(errs, "Holder", holder.Validate())
	return errs
}

type createTokenMsgpb CreateTokenMsg

func (m *createTokenMsgpb) Reset()         { *m = createTokenMsgpb{} }
func (m *createTokenMsgpb) String() string { return proto.CompactTextString(m) }
func (*createTokenMsgpb) ProtoMessage()    {}

func (m *CreateTokenMsg) Reset()         { *m = CreateTokenMsg{} }
func (m *CreateTokenMsg) String() string { return proto.CompactTextString((*createTokenMsgpb)(m)) }
func (*CreateTokenMsg) ProtoMessage()    {}

func (m *CreateTokenMsg) Marshal() ([]byte, error) { return proto.Marshal((*createTokenMsgpb)(m)) }
func (m *CreateTokenMsg) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*createTokenMsgpb)(m)) }

type mintMsgpb MintMsg

func (m *mintMsgpb) Reset()         { *m = mintMsgpb{} }
func (m *mintMsgpb) String() string { return proto.CompactTextString(m) }
func (*mintMsgpb) ProtoMessage()    {}

func (m *MintMsg) Reset()         { *m = MintMsg{} }
func (m *MintMsg) String() string { return proto.CompactTextString((*mintMsgpb)(m)) }
func (*MintMsg) ProtoMessage()    {}

func (m *MintMsg) Marshal() ([]byte, error) { return proto.Marshal((*mintMsgpb)(m)) }
func (m *MintMsg) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*mintMsgpb)(m)) }

type transferMsgpb TransferMsg

func (m *transferMsgpb) Reset()         { *m = transferMsgpb{} }
func (m *transferMsgpb) String() string { return proto.CompactTextString(m) }
func (*transferMsgpb) ProtoMessage()    {}

func (m *TransferMsg) Reset()         { *m = TransferMsg{} }
func (m *TransferMsg) String() string { return proto.CompactTextString((*transferMsgpb)(m)) }
func (*TransferMsg) ProtoMessage()    {}

func (m *TransferMsg) Marshal() ([]byte, error) { return proto.Marshal((*transferMsgpb)(m)) }
func (m *TransferMsg) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*transferMsgpb)(m)) }

type burnMsgpb BurnMsg

func (m *burnMsgpb) Reset()         { *m = burnMsgpb{} }
func (m *burnMsgpb) String() string { return proto.CompactTextString(m) }
func (*burnMsgpb) ProtoMessage()    {}

func (m *BurnMsg) Reset()         { *m = BurnMsg{} }
func (m *BurnMsg) String() string { return proto.CompactTextString((*burnMsgpb)(m)) }
func (*BurnMsg) ProtoMessage()    {}

func (m *BurnMsg) Marshal() ([]byte, error) { return proto.Marshal((*burnMsgpb)(m)) }
func (m *BurnMsg) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*burnMsgpb)(m)) }

type freezeMsgpb FreezeMsg

func (m *freezeMsgpb) Reset()         { *m = freezeMsgpb{} }
func (m *freezeMsgpb) String() string { return proto.CompactTextString(m) }
func (*freezeMsgpb) ProtoMessage()    {}

func (m *FreezeMsg) Reset()         { *m = FreezeMsg{} }
func (m *FreezeMsg) String() string { return proto.CompactTextString((*freezeMsgpb)(m)) }
func (*FreezeMsg) ProtoMessage()    {}

func (m *FreezeMsg) Marshal() ([]byte, error) { return proto.Marshal((*freezeMsgpb)(m)) }
func (m *FreezeMsg) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*freezeMsgpb)(m)) }

type thawMsgpb ThawMsg

func (m *thawMsgpb) Reset()         { *m = thawMsgpb{} }
func (m *thawMsgpb) String() string { return proto.CompactTextString(m) }
func (*thawMsgpb) ProtoMessage()    {}

func (m *ThawMsg) Reset()         { *m = ThawMsg{} }
func (m *ThawMsg) String() string { return proto.CompactTextString((*thawMsgpb)(m)) }
func (*ThawMsg) ProtoMessage()    {}

func (m *ThawMsg) Marshal() ([]byte, error) { return proto.Marshal((*thawMsgpb)(m)) }
func (m *ThawMsg) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*thawMsgpb)(m)) }

type approveMsgpb ApproveMsg

func (m *approveMsgpb) Reset()         { *m = approveMsgpb{} }
func (m *approveMsgpb) String() string { return proto.CompactTextString(m) }
func (*approveMsgpb) ProtoMessage()    {}

func (m *ApproveMsg) Reset()         { *m = ApproveMsg{} }
func (m *ApproveMsg) String() string { return proto.CompactTextString((*approveMsgpb)(m)) }
func (*ApproveMsg) ProtoMessage()    {}

func (m *ApproveMsg) Marshal() ([]byte, error) { return proto.Marshal((*approveMsgpb)(m)) }
func (m *ApproveMsg) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*approveMsgpb)(m)) }

type revokeMsgpb RevokeMsg

func (m *revokeMsgpb) Reset()         { *m = revokeMsgpb{} }
func (m *revokeMsgpb) String() string { return proto.CompactTextString(m) }
func (*revokeMsgpb) ProtoMessage()    {}

func (m *RevokeMsg) Reset()         { *m = RevokeMsg{} }
func (m *RevokeMsg) String() string { return proto.CompactTextString((*revokeMsgpb)(m)) }
func (*RevokeMsg) ProtoMessage()    {}

func (m *RevokeMsg) Marshal() ([]byte, error) { return proto.Marshal((*revokeMsgpb)(m)) }
func (m *RevokeMsg) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*revokeMsgpb)(m)) }

type closeMsgpb CloseMsg

func (m *closeMsgpb) Reset()         { *m = closeMsgpb{} }
func (m *closeMsgpb) String() string { return proto.CompactTextString(m) }
func (*closeMsgpb) ProtoMessage()    {}

func (m *CloseMsg) Reset()         { *m = CloseMsg{} }
func (m *CloseMsg) String() string { return proto.CompactTextString((*closeMsgpb)(m)) }
func (*CloseMsg) ProtoMessage()    {}

func (m *CloseMsg) Marshal() ([]byte, error) { return proto.Marshal((*closeMsgpb)(m)) }
func (m *CloseMsg) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*closeMsgpb)(m)) }
