package stake

import (
	"github.com/iov-one/stakevault/errors"
	"github.com/iov-one/stakevault/weave"
	"github.com/iov-one/stakevault/x/ledger"
)

// Ledger is the part of the token ledger used to move funds.
type Ledger interface {
	Transfer(ctx weave.Context, db weave.KVStore, ticker string, from, to weave.Address, amount uint64) error
	Mint(ctx weave.Context, db weave.KVStore, ticker string, to weave.Address, amount uint64) error
	Burn(ctx weave.Context, db weave.KVStore, ticker string, from weave.Address, amount uint64) error
	Token(db weave.ReadOnlyKVStore, ticker string) (*ledger.Token, error)
}

var _ Ledger = ledger.BaseController{}

// Outcome describes a closed position.
type Outcome struct {
	// Burned is the amount of synthetic tokens destroyed.
	Burned uint64
	// Returned is the amount of base tokens paid back from the vault.
	Returned uint64
	// Elapsed is the number of seconds the position was open.
	Elapsed uint64
}

// Controller opens and closes the staking position.
type Controller struct {
	ledger   Ledger
	executor Executor
	receipts ReceiptBucket
}

// NewController returns a controller moving funds through the ledger. All
// changes of a single operation are applied by the executor.
func NewController(l Ledger, exec Executor) Controller {
	return Controller{
		ledger:   l,
		executor: exec,
		receipts: NewReceiptBucket(),
	}
}

// Add opens the position. The amount of base tokens is moved from the staker
// to the vault and the same amount of synthetic tokens is minted to the
// staker. The context must authenticate the staker.
func (c Controller) Add(ctx weave.Context, db weave.KVStore, staker weave.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "deposit must be greater than zero")
	}
	if err := staker.Validate(); err != nil {
		return errors.Wrap(err, "staker")
	}
	now, err := weave.BlockTime(ctx)
	if err != nil {
		return err
	}
	conf, err := loadConf(db)
	if err != nil {
		return err
	}
	receipt, err := c.receipts.Load(db)
	if err != nil {
		return err
	}
	if receipt.Active {
		return errors.Wrapf(ErrAlreadyStaked, "deposit of %d open since %s", receipt.Deposited, receipt.OpenedAt)
	}

	vault := resolve(VaultLabel)
	synthetic := resolve(SyntheticLabel)
	opened := &Receipt{
		Active:    true,
		OpenedAt:  weave.AsUnixTime(now),
		Deposited: amount,
	}
	return c.executor.Execute(ctx, db, []Effect{
		{
			Name: "write receipt",
			Apply: func(ctx weave.Context, db weave.KVStore) error {
				if err := c.receipts.Save(db, opened); err != nil {
					return err
				}
				return c.receipts.SetOwner(db, staker)
			},
		},
		{
			Name: "deposit into vault",
			Apply: func(ctx weave.Context, db weave.KVStore) error {
				return c.ledger.Transfer(ctx, db, conf.BaseTicker, staker, vault.Address(), amount)
			},
		},
		{
			Name: "mint synthetic",
			Apply: func(ctx weave.Context, db weave.KVStore) error {
				return c.ledger.Mint(synthetic.grant(ctx), db, conf.SyntheticTicker, staker, amount)
			},
		},
	})
}

// Remove closes the position opened by the staker. The synthetic tokens
// are burned according to the time the position was open and the whole
// deposit is returned from the vault. The context must authenticate the
// staker.
func (c Controller) Remove(ctx weave.Context, db weave.KVStore, staker weave.Address) (*Outcome, error) {
	now, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, err
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	receipt, err := c.receipts.Load(db)
	if err != nil {
		return nil, err
	}
	if !receipt.Active {
		return nil, errors.Wrap(ErrNotStaked, "no open position")
	}
	owner, err := c.receipts.Owner(db)
	if err != nil {
		return nil, err
	}
	if !owner.Equals(staker) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "position belongs to %s", owner)
	}

	elapsed := Elapsed(receipt.OpenedAt, weave.AsUnixTime(now))
	out := Outcome{
		Burned:   Burned(receipt.Deposited, elapsed),
		Returned: receipt.Deposited,
		Elapsed:  elapsed,
	}

	closed := *receipt
	closed.Active = false
	effects := []Effect{
		{
			Name: "write receipt",
			Apply: func(ctx weave.Context, db weave.KVStore) error {
				return c.receipts.Save(db, &closed)
			},
		},
	}
	if out.Burned > 0 {
		effects = append(effects, Effect{
			Name: "burn synthetic",
			Apply: func(ctx weave.Context, db weave.KVStore) error {
				return c.ledger.Burn(ctx, db, conf.SyntheticTicker, staker, out.Burned)
			},
		})
	}
	vault := resolve(VaultLabel)
	effects = append(effects, Effect{
		Name: "withdraw from vault",
		Apply: func(ctx weave.Context, db weave.KVStore) error {
			return c.ledger.Transfer(vault.grant(ctx), db, conf.BaseTicker, vault.Address(), staker, out.Returned)
		},
	})

	if err := c.executor.Execute(ctx, db, effects); err != nil {
		return nil, err
	}
	return &out, nil
}

// Receipt returns the current state of the position.
func (c Controller) Receipt(db weave.ReadOnlyKVStore) (*Receipt, error) {
	return c.receipts.Load(db)
}

// Owner returns the address that opened the last position.
func (c Controller) Owner(db weave.ReadOnlyKVStore) (weave.Address, error) {
	return c.receipts.Owner(db)
}
