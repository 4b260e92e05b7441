package ledger

import (
	"github.com/iov-one/stakevault/coin"
	"github.com/iov-one/stakevault/errors"
	"github.com/iov-one/stakevault/weave"
)

const optKey = "ledger"

// GenesisToken is a token registered at genesis.
type GenesisToken struct {
	Ticker          string        `json:"ticker"`
	Decimals        uint32        `json:"decimals"`
	MintAuthority   weave.Address `json:"mint_authority"`
	FreezeAuthority weave.Address `json:"freeze_authority"`
}

// GenesisAccount is an initial balance. Amount is given in the human readable
// form and converted using the precision of the token, so "1.5" of a token
// with 6 decimals is 1500000.
type GenesisAccount struct {
	Ticker string        `json:"ticker"`
	Holder weave.Address `json:"holder"`
	Amount string        `json:"amount"`
}

type genesis struct {
	Tokens   []GenesisToken   `json:"tokens"`
	Accounts []GenesisAccount `json:"accounts"`
}

// Initializer fulfils the weave.Initializer interface to load data from the
// genesis file.
type Initializer struct{}

var _ weave.Initializer = Initializer{}

// FromGenesis registers the tokens and credits the accounts listed in the
// genesis. The supply of every token is the sum of its initial balances.
func (Initializer) FromGenesis(opts weave.Options, db weave.KVStore) error {
	var gen genesis
	if err := opts.ReadOptions(optKey, &gen); err != nil {
		return err
	}

	tokens := NewTokenBucket()
	for i, t := range gen.Tokens {
		token := Token{
			Ticker:          t.Ticker,
			Decimals:        t.Decimals,
			MintAuthority:   t.MintAuthority,
			FreezeAuthority: t.FreezeAuthority,
		}
		if err := token.Validate(); err != nil {
			return errors.Wrapf(err, "token #%d", i)
		}
		switch err := tokens.Has(db, []byte(token.Ticker)); {
		case err == nil:
			return errors.Wrapf(errors.ErrDuplicate, "token %q", token.Ticker)
		case !errors.ErrNotFound.Is(err):
			return err
		}
		if err := tokens.Save(db, &token); err != nil {
			return errors.Wrapf(err, "token %q", token.Ticker)
		}
	}

	accounts := NewAccountBucket()
	for i, a := range gen.Accounts {
		token, err := tokens.Get(db, a.Ticker)
		if err != nil {
			return errors.Wrapf(err, "account #%d", i)
		}
		amount, err := coin.Parse(a.Amount, token.Decimals)
		if err != nil {
			return errors.Wrapf(err, "account #%d", i)
		}
		acc, err := accounts.GetOrCreate(db, a.Ticker, a.Holder)
		if err != nil {
			return err
		}
		if acc.Amount, err = coin.Add(acc.Amount, amount); err != nil {
			return errors.Wrapf(err, "account #%d", i)
		}
		if token.Supply, err = coin.Add(token.Supply, amount); err != nil {
			return errors.Wrapf(err, "supply of %s", token.Ticker)
		}
		if err := accounts.Save(db, acc); err != nil {
			return errors.Wrapf(err, "account #%d", i)
		}
		if err := tokens.Save(db, token); err != nil {
			return err
		}
	}
	return nil
}
