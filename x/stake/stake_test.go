package stake

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/iov-one/stakevault/app"
	"github.com/iov-one/stakevault/store"
	"github.com/iov-one/stakevault/weave"
	"github.com/iov-one/stakevault/weavetest"
	"github.com/iov-one/stakevault/weavetest/assert"
	"github.com/iov-one/stakevault/x"
	"github.com/iov-one/stakevault/x/ledger"
)

var genesisTime = time.Date(2020, 3, 1, 12, 0, 0, 0, time.UTC)

// env is a deployment with a funded staker.
type env struct {
	db      weave.CacheableKVStore
	auth    *weavetest.CtxAuth
	ledger  ledger.BaseController
	control Controller

	alice weave.Condition
	bob   weave.Condition
}

func newEnv(t testing.TB) *env {
	t.Helper()
	return newEnvWithExecutor(t, StoreExecutor{})
}

func newEnvWithExecutor(t testing.TB, exec Executor) *env {
	t.Helper()

	e := &env{
		db:    store.MemStore(),
		auth:  &weavetest.CtxAuth{Key: "auth"},
		alice: weavetest.NewCondition(),
		bob:   weavetest.NewCondition(),
	}
	e.ledger = ledger.NewController(x.ChainAuth(e.auth, Authenticate{}))
	e.control = NewController(e.ledger, exec)

	genesis := fmt.Sprintf(`{
		"conf": {
			"stake": {"base_ticker": "IOV", "synthetic_ticker": "SIOV"}
		},
		"ledger": {
			"tokens": [{"ticker": "IOV", "mint_authority": "%s"}],
			"accounts": [
				{"ticker": "IOV", "holder": "%s", "amount": "1000"},
				{"ticker": "IOV", "holder": "%s", "amount": "1000"}
			]
		}
	}`, weavetest.NewCondition().Address(), e.alice.Address(), e.bob.Address())
	var opts weave.Options
	if err := json.Unmarshal([]byte(genesis), &opts); err != nil {
		t.Fatalf("cannot unmarshal genesis: %s", err)
	}
	init := app.ChainInitializers(ledger.Initializer{}, Initializer{})
	assert.Nil(t, init.FromGenesis(opts, e.db))
	return e
}

// ctx returns a context signed by the signer at given seconds after the
// genesis time.
func (e *env) ctx(signer weave.Condition, seconds int64) weave.Context {
	ctx := e.auth.SetConditions(context.Background(), signer)
	return weave.WithBlockTime(ctx, genesisTime.Add(time.Duration(seconds)*time.Second))
}

func (e *env) balance(t testing.TB, ticker string, holder weave.Address) uint64 {
	t.Helper()
	amount, err := e.ledger.Balance(e.db, ticker, holder)
	assert.Nil(t, err)
	return amount
}

// snapshot captures everything an operation may change.
type snapshot struct {
	Receipt        Receipt
	AliceBase      uint64
	AliceSynthetic uint64
	BobBase        uint64
	BobSynthetic   uint64
	Vault          uint64
	Supply         uint64
}

func (e *env) snapshot(t testing.TB) snapshot {
	t.Helper()
	r, err := e.control.Receipt(e.db)
	assert.Nil(t, err)
	token, err := e.ledger.Token(e.db, "SIOV")
	assert.Nil(t, err)
	return snapshot{
		Receipt:        *r,
		AliceBase:      e.balance(t, "IOV", e.alice.Address()),
		AliceSynthetic: e.balance(t, "SIOV", e.alice.Address()),
		BobBase:        e.balance(t, "IOV", e.bob.Address()),
		BobSynthetic:   e.balance(t, "SIOV", e.bob.Address()),
		Vault:          e.balance(t, "IOV", VaultAddress()),
		Supply:         token.Supply,
	}
}
