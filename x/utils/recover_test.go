package utils

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/iov-one/stakevault/errors"
	"github.com/iov-one/stakevault/store"
	"github.com/iov-one/stakevault/weave"
	"github.com/iov-one/stakevault/weavetest"
	"github.com/iov-one/stakevault/weavetest/assert"
)

func TestRecovery(t *testing.T) {
	var buf bytes.Buffer
	ctx := weave.WithLogger(context.Background(), log.NewTMLogger(log.NewSyncWriter(&buf)))
	db := store.MemStore()

	h := weavetest.Decorate(&weavetest.Handler{Panic: "at the disco"}, NewRecovery())

	_, err := h.Check(ctx, db, &weavetest.Tx{})
	assert.IsErr(t, errors.ErrPanic, err)
	_, err = h.Deliver(ctx, db, &weavetest.Tx{})
	assert.IsErr(t, errors.ErrPanic, err)

	if !strings.Contains(buf.String(), "recovered from panic") {
		t.Fatalf("panic not logged: %s", buf.String())
	}

	// normal errors pass untouched
	h = weavetest.Decorate(&weavetest.Handler{DeliverErr: errors.ErrUnauthorized}, NewRecovery())
	_, err = h.Deliver(ctx, db, &weavetest.Tx{})
	assert.IsErr(t, errors.ErrUnauthorized, err)
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	ctx := weave.WithLogger(context.Background(), log.NewTMLogger(log.NewSyncWriter(&buf)))
	ctx = weave.WithHeight(ctx, 42)
	db := store.MemStore()

	tx := &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "stake/add"}}

	ok := weavetest.Decorate(&weavetest.Handler{DeliverResult: weave.DeliverResult{Log: "all good"}}, NewLogging())
	_, err := ok.Deliver(ctx, db, tx)
	assert.Nil(t, err)

	fail := weavetest.Decorate(&weavetest.Handler{DeliverErr: errors.ErrInsufficientAmount}, NewLogging())
	_, err = fail.Deliver(ctx, db, tx)
	assert.IsErr(t, errors.ErrInsufficientAmount, err)

	out := buf.String()
	for _, want := range []string{"all good", "path=stake/add", "height=42", "insufficient amount"} {
		if !strings.Contains(out, want) {
			t.Fatalf("%q not found in log output: %s", want, out)
		}
	}
}
