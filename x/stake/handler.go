package stake

import (
	"fmt"

	"github.com/iov-one/stakevault/coin"
	"github.com/iov-one/stakevault/errors"
	"github.com/iov-one/stakevault/weave"
	"github.com/iov-one/stakevault/x"
)

const (
	addCost    int64 = 300
	removeCost int64 = 300
)

// RegisterRoutes will instantiate and register all handlers in this package.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, control Controller) {
	r.Handle(&AddMsg{}, &AddHandler{auth: auth, control: control})
	r.Handle(&RemoveMsg{}, &RemoveHandler{auth: auth, control: control})
}

// AddHandler opens the staking position.
type AddHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ weave.Handler = (*AddHandler)(nil)

func (h *AddHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: addCost}, nil
}

func (h *AddHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.control.Add(ctx, db, msg.Staker, msg.Amount); err != nil {
		return nil, err
	}

	deposited := formatAmount(h.control, db, msg.Amount, baseTicker)
	weave.GetLogger(ctx).Info("stake added",
		"staker", msg.Staker,
		"deposited", deposited)
	return &weave.DeliverResult{Log: "deposited " + deposited}, nil
}

func (h *AddHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*AddMsg, error) {
	var msg AddMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := x.RequireAddress(ctx, h.auth, msg.Staker); err != nil {
		return nil, errors.Wrap(err, "staker")
	}
	return &msg, nil
}

// RemoveHandler closes the staking position.
type RemoveHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ weave.Handler = (*RemoveHandler)(nil)

func (h *RemoveHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: removeCost}, nil
}

func (h *RemoveHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	out, err := h.control.Remove(ctx, db, msg.Staker)
	if err != nil {
		return nil, err
	}

	returned := formatAmount(h.control, db, out.Returned, baseTicker)
	burned := formatAmount(h.control, db, out.Burned, syntheticTicker)
	weave.GetLogger(ctx).Info("stake removed",
		"staker", msg.Staker,
		"deposited", returned,
		"burned", burned,
		"elapsed", out.Elapsed)
	return &weave.DeliverResult{
		Log: fmt.Sprintf("returned %s, burned %s after %ds", returned, burned, out.Elapsed),
	}, nil
}

func (h *RemoveHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*RemoveMsg, error) {
	var msg RemoveMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := x.RequireAddress(ctx, h.auth, msg.Staker); err != nil {
		return nil, errors.Wrap(err, "staker")
	}
	return &msg, nil
}

func baseTicker(c *Configuration) string      { return c.BaseTicker }
func syntheticTicker(c *Configuration) string { return c.SyntheticTicker }

// formatAmount renders the amount with the precision of the configured token.
// The raw amount is returned if the token cannot be found.
func formatAmount(c Controller, db weave.ReadOnlyKVStore, amount uint64, ticker func(*Configuration) string) string {
	conf, err := loadConf(db)
	if err != nil {
		return fmt.Sprint(amount)
	}
	token, err := c.ledger.Token(db, ticker(conf))
	if err != nil {
		return fmt.Sprint(amount)
	}
	return coin.Format(amount, token.Decimals) + " " + token.Ticker
}
