package ledger

import (
	"github.com/iov-one/stakevault/errors"
	"github.com/iov-one/stakevault/weave"
	"github.com/iov-one/stakevault/x"
)

const (
	createTokenCost int64 = 200
	transferCost    int64 = 100
	mintCost        int64 = 100
	burnCost        int64 = 100
	accountCost     int64 = 50
)

// RegisterRoutes will instantiate and register all handlers in this package.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, control Controller) {
	r.Handle(&CreateTokenMsg{}, &createTokenHandler{auth: auth, control: control})
	r.Handle(&MintMsg{}, &mintHandler{control: control})
	r.Handle(&TransferMsg{}, &transferHandler{control: control})
	r.Handle(&BurnMsg{}, &burnHandler{control: control})
	r.Handle(&FreezeMsg{}, &freezeHandler{control: control})
	r.Handle(&ThawMsg{}, &thawHandler{control: control})
	r.Handle(&ApproveMsg{}, &approveHandler{control: control})
	r.Handle(&RevokeMsg{}, &revokeHandler{control: control})
	r.Handle(&CloseMsg{}, &closeHandler{control: control})
}

type createTokenHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ weave.Handler = (*createTokenHandler)(nil)

func (h *createTokenHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	var msg CreateTokenMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &weave.CheckResult{GasAllocated: createTokenCost}, nil
}

func (h *createTokenHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	var msg CreateTokenMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	// Any signer can register a token, as long as the ticker is free.
	if x.MainSigner(ctx, h.auth) == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "signature required")
	}
	t := Token{
		Ticker:          msg.Ticker,
		Decimals:        msg.Decimals,
		MintAuthority:   msg.MintAuthority,
		FreezeAuthority: msg.FreezeAuthority,
	}
	if err := h.control.CreateToken(ctx, db, &t); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{Data: []byte(t.Ticker)}, nil
}

type mintHandler struct {
	control Controller
}

var _ weave.Handler = (*mintHandler)(nil)

func (h *mintHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	var msg MintMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &weave.CheckResult{GasAllocated: mintCost}, nil
}

func (h *mintHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	var msg MintMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.control.Mint(ctx, db, msg.Ticker, msg.Dest, msg.Amount); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{}, nil
}

type transferHandler struct {
	control Controller
}

var _ weave.Handler = (*transferHandler)(nil)

func (h *transferHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	var msg TransferMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &weave.CheckResult{GasAllocated: transferCost}, nil
}

func (h *transferHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	var msg TransferMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.control.Transfer(ctx, db, msg.Ticker, msg.Src, msg.Dest, msg.Amount); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{}, nil
}

type burnHandler struct {
	control Controller
}

var _ weave.Handler = (*burnHandler)(nil)

func (h *burnHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	var msg BurnMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &weave.CheckResult{GasAllocated: burnCost}, nil
}

func (h *burnHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	var msg BurnMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.control.Burn(ctx, db, msg.Ticker, msg.Src, msg.Amount); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{}, nil
}

type freezeHandler struct {
	control Controller
}

var _ weave.Handler = (*freezeHandler)(nil)

func (h *freezeHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	var msg FreezeMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &weave.CheckResult{GasAllocated: accountCost}, nil
}

func (h *freezeHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	var msg FreezeMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.control.Freeze(ctx, db, msg.Ticker, msg.Holder); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{}, nil
}

type thawHandler struct {
	control Controller
}

var _ weave.Handler = (*thawHandler)(nil)

func (h *thawHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	var msg ThawMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &weave.CheckResult{GasAllocated: accountCost}, nil
}

func (h *thawHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	var msg ThawMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.control.Thaw(ctx, db, msg.Ticker, msg.Holder); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{}, nil
}

type approveHandler struct {
	control Controller
}

var _ weave.Handler = (*approveHandler)(nil)

func (h *approveHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	var msg ApproveMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &weave.CheckResult{GasAllocated: accountCost}, nil
}

func (h *approveHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	var msg ApproveMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.control.Approve(ctx, db, msg.Ticker, msg.Owner, msg.Delegate, msg.Amount); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{}, nil
}

type revokeHandler struct {
	control Controller
}

var _ weave.Handler = (*revokeHandler)(nil)

func (h *revokeHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	var msg RevokeMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &weave.CheckResult{GasAllocated: accountCost}, nil
}

func (h *revokeHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	var msg RevokeMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.control.Revoke(ctx, db, msg.Ticker, msg.Owner); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{}, nil
}

type closeHandler struct {
	control Controller
}

var _ weave.Handler = (*closeHandler)(nil)

func (h *closeHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	var msg CloseMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &weave.CheckResult{GasAllocated: accountCost}, nil
}

func (h *closeHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	var msg CloseMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.control.Close(ctx, db, msg.Ticker, msg.Owner); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{}, nil
}
