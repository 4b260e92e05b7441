package stake

import (
	"github.com/iov-one/stakevault/errors"
	"github.com/iov-one/stakevault/gconf"
	"github.com/iov-one/stakevault/weave"
	"github.com/iov-one/stakevault/x/ledger"
)

// Initializer fulfils the weave.Initializer interface to load data from the
// genesis file. It must run after the ledger initializer.
type Initializer struct{}

var _ weave.Initializer = Initializer{}

// FromGenesis stores the configuration and registers the synthetic token,
// minted only by the derived synthetic authority. The base token must
// already exist.
func (Initializer) FromGenesis(opts weave.Options, db weave.KVStore) error {
	var conf Configuration
	if err := gconf.InitConfig(db, opts, confPkg, &conf); err != nil {
		return errors.Wrap(err, "init config")
	}

	tokens := ledger.NewTokenBucket()
	if _, err := tokens.Get(db, conf.BaseTicker); err != nil {
		return errors.Wrap(err, "base token")
	}

	synthetic := resolve(SyntheticLabel).Address()
	switch t, err := tokens.Get(db, conf.SyntheticTicker); {
	case err == nil:
		if !t.MintAuthority.Equals(synthetic) {
			return errors.Wrapf(errors.ErrState, "synthetic token %s is minted by %s", t.Ticker, t.MintAuthority)
		}
		return nil
	case !errors.ErrNotFound.Is(err):
		return err
	}

	token := ledger.Token{
		Ticker:        conf.SyntheticTicker,
		Decimals:      conf.SyntheticDecimals,
		MintAuthority: synthetic,
	}
	if err := tokens.Save(db, &token); err != nil {
		return errors.Wrap(err, "synthetic token")
	}
	return nil
}
