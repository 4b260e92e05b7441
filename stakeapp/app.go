/*
Package stakeapp links together all the various components
to construct the staking escrow application.
*/
package stakeapp

import (
	"context"
	"io"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/iov-one/stakevault/app"
	"github.com/iov-one/stakevault/errors"
	"github.com/iov-one/stakevault/store"
	"github.com/iov-one/stakevault/weave"
	"github.com/iov-one/stakevault/x"
	"github.com/iov-one/stakevault/x/ledger"
	"github.com/iov-one/stakevault/x/sigs"
	"github.com/iov-one/stakevault/x/stake"
	"github.com/iov-one/stakevault/x/utils"
)

// Authenticator returns the signatures of the transaction and the derived
// authorities granted by the stake extension.
func Authenticator() x.Authenticator {
	return x.ChainAuth(sigs.Authenticate{}, stake.Authenticate{})
}

// Chain returns a chain of decorators, to handle authentication,
// logging, and recovery
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		sigs.NewDecorator(),
		// on DeliverTx, bad tx will increment nonce even if the message
		// fails
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router returns a router dispatching ledger and stake messages.
func Router(authFn x.Authenticator) *app.Router {
	r := app.NewRouter()
	ledgerCtrl := ledger.NewController(authFn)
	ledger.RegisterRoutes(r, authFn, ledgerCtrl)
	stake.RegisterRoutes(r, authFn, stake.NewController(ledgerCtrl, stake.StoreExecutor{}))
	return r
}

// Stack wires up the router with the decorator chain.
func Stack() weave.Handler {
	authFn := Authenticator()
	return Chain().WithHandler(Router(authFn))
}

// Initializer loads the genesis state. The ledger must be initialized first,
// because the stake extension registers its token next to the base token.
func Initializer() weave.Initializer {
	return app.ChainInitializers(
		ledger.Initializer{},
		stake.Initializer{},
	)
}

// Application constructs the application on top of given store. A nil store
// means a fresh in memory one.
func Application(name string, kv weave.CacheableKVStore, logger log.Logger) (*app.StoreApp, error) {
	if kv == nil {
		kv = store.MemStore()
	}
	s, err := app.NewStoreApp(name, kv, TxDecoder, Stack(), context.Background())
	if err != nil {
		return nil, errors.Wrap(err, "new store app")
	}
	return s.WithInit(Initializer()).WithLogger(logger), nil
}

// NewLogger returns a logger writing to w that drops entries below given
// level ("debug", "info", "error" or "none").
func NewLogger(w io.Writer, level string) (log.Logger, error) {
	opt, err := log.AllowLevel(level)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "log level: %s", err)
	}
	logger := log.NewTMLogger(log.NewSyncWriter(w))
	return log.NewFilter(logger, opt), nil
}
