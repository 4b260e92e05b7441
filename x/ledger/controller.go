package ledger

import (
	"github.com/iov-one/stakevault/coin"
	"github.com/iov-one/stakevault/errors"
	"github.com/iov-one/stakevault/weave"
	"github.com/iov-one/stakevault/x"
)

// Controller is the functionality needed to manage the token ledger.
//
// Every mutating method requires the authority of the relevant address to
// be present in the context, as reported by the Authenticator the
// controller was created with.
type Controller interface {
	// CreateToken registers a new token with zero supply.
	CreateToken(ctx weave.Context, db weave.KVStore, t *Token) error

	// Transfer moves amount of the token from one holder to another. It
	// must be authorised by the source holder or by its delegate, in which
	// case the allowance is consumed.
	Transfer(ctx weave.Context, db weave.KVStore, ticker string, from, to weave.Address, amount uint64) error

	// Mint issues new tokens to the holder. It must be authorised by the
	// mint authority of the token.
	Mint(ctx weave.Context, db weave.KVStore, ticker string, to weave.Address, amount uint64) error

	// Burn destroys tokens of the holder. It must be authorised by the
	// holder or its delegate.
	Burn(ctx weave.Context, db weave.KVStore, ticker string, from weave.Address, amount uint64) error

	// Freeze and Thaw toggle the frozen state of an account. They must be
	// authorised by the freeze authority of the token.
	Freeze(ctx weave.Context, db weave.KVStore, ticker string, holder weave.Address) error
	Thaw(ctx weave.Context, db weave.KVStore, ticker string, holder weave.Address) error

	// Approve lets the delegate spend up to amount on behalf of the owner.
	// Approving replaces any previous delegate.
	Approve(ctx weave.Context, db weave.KVStore, ticker string, owner, delegate weave.Address, amount uint64) error

	// Revoke clears the delegate of the account.
	Revoke(ctx weave.Context, db weave.KVStore, ticker string, owner weave.Address) error

	// Close deletes an account with zero balance.
	Close(ctx weave.Context, db weave.KVStore, ticker string, owner weave.Address) error

	// Balance returns the amount held. Unknown accounts hold nothing.
	Balance(db weave.ReadOnlyKVStore, ticker string, holder weave.Address) (uint64, error)

	// Token returns the registry entry of the token.
	Token(db weave.ReadOnlyKVStore, ticker string) (*Token, error)
}

// BaseController is a simple implementation of controller.
type BaseController struct {
	auth     x.Authenticator
	tokens   TokenBucket
	accounts AccountBucket
}

var _ Controller = BaseController{}

// NewController returns a controller that authorises operations with given
// authenticator.
func NewController(auth x.Authenticator) BaseController {
	return BaseController{
		auth:     auth,
		tokens:   NewTokenBucket(),
		accounts: NewAccountBucket(),
	}
}

func (c BaseController) CreateToken(ctx weave.Context, db weave.KVStore, t *Token) error {
	if t == nil {
		return errors.Wrap(errors.ErrEmpty, "token")
	}
	if err := t.Validate(); err != nil {
		return errors.Wrap(err, "token")
	}
	switch err := c.tokens.Has(db, []byte(t.Ticker)); {
	case err == nil:
		return errors.Wrapf(errors.ErrDuplicate, "token %q", t.Ticker)
	case !errors.ErrNotFound.Is(err):
		return err
	}
	if t.Supply != 0 {
		return errors.Wrap(errors.ErrAmount, "new token must have zero supply")
	}
	return c.tokens.Save(db, t)
}

func (c BaseController) Transfer(ctx weave.Context, db weave.KVStore, ticker string, from, to weave.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "zero transfer")
	}
	if err := to.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if _, err := c.tokens.Get(db, ticker); err != nil {
		return err
	}

	src, err := c.debit(ctx, db, ticker, from, amount)
	if err != nil {
		return err
	}
	if err := c.accounts.Save(db, src); err != nil {
		return errors.Wrap(err, "save source")
	}

	// Loaded after the source is saved so that a transfer to self is a
	// no-op on the balance.
	dest, err := c.accounts.GetOrCreate(db, ticker, to)
	if err != nil {
		return err
	}
	if dest.Frozen {
		return errors.Wrapf(ErrFrozen, "destination %s", to)
	}
	if dest.Amount, err = coin.Add(dest.Amount, amount); err != nil {
		return err
	}
	return c.accounts.Save(db, dest)
}

func (c BaseController) Mint(ctx weave.Context, db weave.KVStore, ticker string, to weave.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "zero mint")
	}
	if err := to.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	token, err := c.tokens.Get(db, ticker)
	if err != nil {
		return err
	}
	if err := x.RequireAddress(ctx, c.auth, token.MintAuthority); err != nil {
		return errors.Wrapf(err, "mint authority of %s", ticker)
	}

	dest, err := c.accounts.GetOrCreate(db, ticker, to)
	if err != nil {
		return err
	}
	if dest.Frozen {
		return errors.Wrapf(ErrFrozen, "destination %s", to)
	}
	if token.Supply, err = coin.Add(token.Supply, amount); err != nil {
		return errors.Wrap(err, "supply")
	}
	if dest.Amount, err = coin.Add(dest.Amount, amount); err != nil {
		return err
	}
	if err := c.tokens.Save(db, token); err != nil {
		return err
	}
	return c.accounts.Save(db, dest)
}

func (c BaseController) Burn(ctx weave.Context, db weave.KVStore, ticker string, from weave.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "zero burn")
	}
	token, err := c.tokens.Get(db, ticker)
	if err != nil {
		return err
	}
	src, err := c.debit(ctx, db, ticker, from, amount)
	if err != nil {
		return err
	}
	if token.Supply, err = coin.Sub(token.Supply, amount); err != nil {
		return errors.Wrap(errors.ErrState, "burn exceeds supply")
	}
	if err := c.tokens.Save(db, token); err != nil {
		return err
	}
	return c.accounts.Save(db, src)
}

// debit authorises spending from the holder's account and returns the
// account with the amount subtracted. The account is not saved.
func (c BaseController) debit(ctx weave.Context, db weave.KVStore, ticker string, from weave.Address, amount uint64) (*Account, error) {
	src, err := c.accounts.Get(db, ticker, from)
	switch {
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrapf(errors.ErrInsufficientAmount, "no %s account for %s", ticker, from)
	case err != nil:
		return nil, err
	}

	switch {
	case c.auth.HasAddress(ctx, src.Holder):
	case len(src.Delegate) != 0 && c.auth.HasAddress(ctx, src.Delegate):
		if amount > src.Allowance {
			return nil, errors.Wrapf(errors.ErrInsufficientAmount, "allowance %d, want %d", src.Allowance, amount)
		}
		src.Allowance -= amount
		if src.Allowance == 0 {
			src.Delegate = nil
		}
	default:
		return nil, errors.Wrapf(errors.ErrUnauthorized, "owner signature missing for %s", from)
	}

	if src.Frozen {
		return nil, errors.Wrapf(ErrFrozen, "source %s", from)
	}
	if src.Amount, err = coin.Sub(src.Amount, amount); err != nil {
		return nil, err
	}
	return src, nil
}

func (c BaseController) Freeze(ctx weave.Context, db weave.KVStore, ticker string, holder weave.Address) error {
	return c.setFrozen(ctx, db, ticker, holder, true)
}

func (c BaseController) Thaw(ctx weave.Context, db weave.KVStore, ticker string, holder weave.Address) error {
	return c.setFrozen(ctx, db, ticker, holder, false)
}

func (c BaseController) setFrozen(ctx weave.Context, db weave.KVStore, ticker string, holder weave.Address, frozen bool) error {
	token, err := c.tokens.Get(db, ticker)
	if err != nil {
		return err
	}
	if len(token.FreezeAuthority) == 0 {
		return errors.Wrapf(errors.ErrUnauthorized, "%s cannot be frozen", ticker)
	}
	if err := x.RequireAddress(ctx, c.auth, token.FreezeAuthority); err != nil {
		return errors.Wrapf(err, "freeze authority of %s", ticker)
	}
	acc, err := c.accounts.Get(db, ticker, holder)
	if err != nil {
		return err
	}
	if acc.Frozen == frozen {
		return errors.Wrapf(errors.ErrState, "frozen is already %v", frozen)
	}
	acc.Frozen = frozen
	return c.accounts.Save(db, acc)
}

func (c BaseController) Approve(ctx weave.Context, db weave.KVStore, ticker string, owner, delegate weave.Address, amount uint64) error {
	acc, err := c.owned(ctx, db, ticker, owner)
	if err != nil {
		return err
	}
	if err := delegate.Validate(); err != nil {
		return errors.Wrap(err, "delegate")
	}
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "zero allowance")
	}
	acc.Delegate = delegate
	acc.Allowance = amount
	return c.accounts.Save(db, acc)
}

func (c BaseController) Revoke(ctx weave.Context, db weave.KVStore, ticker string, owner weave.Address) error {
	acc, err := c.owned(ctx, db, ticker, owner)
	if err != nil {
		return err
	}
	acc.Delegate = nil
	acc.Allowance = 0
	return c.accounts.Save(db, acc)
}

func (c BaseController) Close(ctx weave.Context, db weave.KVStore, ticker string, owner weave.Address) error {
	acc, err := c.owned(ctx, db, ticker, owner)
	if err != nil {
		return err
	}
	if acc.Amount != 0 {
		return errors.Wrapf(ErrNotEmpty, "balance %d", acc.Amount)
	}
	return c.accounts.Remove(db, acc)
}

// owned returns the account of the owner if the owner authorised the
// operation and the account is not frozen.
func (c BaseController) owned(ctx weave.Context, db weave.KVStore, ticker string, owner weave.Address) (*Account, error) {
	if err := x.RequireAddress(ctx, c.auth, owner); err != nil {
		return nil, errors.Wrap(err, "owner")
	}
	acc, err := c.accounts.Get(db, ticker, owner)
	if err != nil {
		return nil, err
	}
	if acc.Frozen {
		return nil, errors.Wrapf(ErrFrozen, "account %s", owner)
	}
	return acc, nil
}

func (c BaseController) Balance(db weave.ReadOnlyKVStore, ticker string, holder weave.Address) (uint64, error) {
	acc, err := c.accounts.Get(db, ticker, holder)
	switch {
	case err == nil:
		return acc.Amount, nil
	case errors.ErrNotFound.Is(err):
		return 0, nil
	default:
		return 0, err
	}
}

func (c BaseController) Token(db weave.ReadOnlyKVStore, ticker string) (*Token, error) {
	return c.tokens.Get(db, ticker)
}
