package ledger

import (
	"context"
	"testing"

	"github.com/iov-one/stakevault/app"
	"github.com/iov-one/stakevault/errors"
	"github.com/iov-one/stakevault/store"
	"github.com/iov-one/stakevault/weave"
	"github.com/iov-one/stakevault/weavetest"
	"github.com/iov-one/stakevault/weavetest/assert"
)

func TestHandlers(t *testing.T) {
	minter := weavetest.NewCondition()
	alice := weavetest.NewCondition()
	bob := weavetest.NewCondition()

	auth := &weavetest.CtxAuth{Key: "auth"}
	rt := app.NewRouter()
	RegisterRoutes(rt, auth, NewController(auth))

	db := store.MemStore()

	steps := []struct {
		name         string
		signers      []weave.Condition
		msg          weave.Msg
		wantCheckErr *errors.Error
		wantErr      *errors.Error
	}{
		{
			name:    "create token without a signature",
			msg:     &CreateTokenMsg{Ticker: "IOV", Decimals: 9, MintAuthority: minter.Address()},
			wantErr: errors.ErrUnauthorized,
		},
		{
			name:    "create token",
			signers: []weave.Condition{alice},
			msg:     &CreateTokenMsg{Ticker: "IOV", Decimals: 9, MintAuthority: minter.Address(), FreezeAuthority: minter.Address()},
		},
		{
			name:    "mint",
			signers: []weave.Condition{minter},
			msg:     &MintMsg{Ticker: "IOV", Dest: alice.Address(), Amount: 100},
		},
		{
			name:    "transfer",
			signers: []weave.Condition{alice},
			msg:     &TransferMsg{Ticker: "IOV", Src: alice.Address(), Dest: bob.Address(), Amount: 60},
		},
		{
			name:    "approve",
			signers: []weave.Condition{bob},
			msg:     &ApproveMsg{Ticker: "IOV", Owner: bob.Address(), Delegate: alice.Address(), Amount: 10},
		},
		{
			name:    "revoke",
			signers: []weave.Condition{bob},
			msg:     &RevokeMsg{Ticker: "IOV", Owner: bob.Address()},
		},
		{
			name:    "freeze",
			signers: []weave.Condition{minter},
			msg:     &FreezeMsg{Ticker: "IOV", Holder: bob.Address()},
		},
		{
			name:    "frozen burn",
			signers: []weave.Condition{bob},
			msg:     &BurnMsg{Ticker: "IOV", Src: bob.Address(), Amount: 60},
			wantErr: ErrFrozen,
		},
		{
			name:    "thaw",
			signers: []weave.Condition{minter},
			msg:     &ThawMsg{Ticker: "IOV", Holder: bob.Address()},
		},
		{
			name:    "burn",
			signers: []weave.Condition{bob},
			msg:     &BurnMsg{Ticker: "IOV", Src: bob.Address(), Amount: 60},
		},
		{
			name:    "close",
			signers: []weave.Condition{bob},
			msg:     &CloseMsg{Ticker: "IOV", Owner: bob.Address()},
		},
		{
			name:         "invalid message",
			signers:      []weave.Condition{alice},
			msg:          &TransferMsg{Ticker: "IOV", Src: alice.Address(), Dest: bob.Address()},
			wantCheckErr: errors.ErrAmount,
			wantErr:      errors.ErrAmount,
		},
	}

	for _, step := range steps {
		ctx := auth.SetConditions(context.Background(), step.signers...)
		tx := &weavetest.Tx{Msg: step.msg}

		if _, err := rt.Check(ctx, db, tx); !step.wantCheckErr.Is(err) {
			t.Fatalf("%s: check: want %v, got %+v", step.name, step.wantCheckErr, err)
		}

		cache := db.CacheWrap()
		_, err := rt.Deliver(ctx, cache, tx)
		if !step.wantErr.Is(err) {
			t.Fatalf("%s: want %v, got %+v", step.name, step.wantErr, err)
		}
		if err == nil {
			assert.Nil(t, cache.Write())
		} else {
			cache.Discard()
		}
	}

	control := NewController(auth)
	for holder, want := range map[string]uint64{"alice": 40, "bob": 0} {
		addr := alice.Address()
		if holder == "bob" {
			addr = bob.Address()
		}
		got, err := control.Balance(db, "IOV", addr)
		assert.Nil(t, err)
		assert.Equal(t, want, got)
	}
	token, err := control.Token(db, "IOV")
	assert.Nil(t, err)
	assert.Equal(t, uint64(40), token.Supply)
}
