package utils

import (
	"context"
	"testing"

	"github.com/iov-one/stakevault/errors"
	"github.com/iov-one/stakevault/store"
	"github.com/iov-one/stakevault/weave"
	"github.com/iov-one/stakevault/weavetest"
	"github.com/iov-one/stakevault/weavetest/assert"
)

func TestSavepoint(t *testing.T) {
	// always written before calling the decorator
	ok, ov := []byte("demo"), []byte("data")
	// written by the handler
	nk, nv := []byte{1, 2, 3}, []byte{4, 5, 6}

	cases := map[string]struct {
		save    weave.Decorator
		handler *weavetest.Handler
		check   bool
		wantErr *errors.Error
		written [][]byte
		missing [][]byte
	}{
		"savepoint deactivated, error keeps the write": {
			save:    NewSavepoint(),
			handler: &weavetest.Handler{Write: &weavetest.KeyValue{Key: nk, Value: nv}, CheckErr: errors.ErrState},
			check:   true,
			wantErr: errors.ErrState,
			written: [][]byte{ok, nk},
		},
		"savepoint on check, error drops the write": {
			save:    NewSavepoint().OnCheck(),
			handler: &weavetest.Handler{Write: &weavetest.KeyValue{Key: nk, Value: nv}, CheckErr: errors.ErrState},
			check:   true,
			wantErr: errors.ErrState,
			written: [][]byte{ok},
			missing: [][]byte{nk},
		},
		"savepoint on deliver, error drops the write": {
			save:    NewSavepoint().OnDeliver(),
			handler: &weavetest.Handler{Write: &weavetest.KeyValue{Key: nk, Value: nv}, DeliverErr: errors.ErrState},
			wantErr: errors.ErrState,
			written: [][]byte{ok},
			missing: [][]byte{nk},
		},
		"double activation maintains both behaviors": {
			save:    NewSavepoint().OnDeliver().OnCheck(),
			handler: &weavetest.Handler{Write: &weavetest.KeyValue{Key: nk, Value: nv}, DeliverErr: errors.ErrState},
			wantErr: errors.ErrState,
			written: [][]byte{ok},
			missing: [][]byte{nk},
		},
		"savepoint on check does not affect deliver": {
			save:    NewSavepoint().OnCheck(),
			handler: &weavetest.Handler{Write: &weavetest.KeyValue{Key: nk, Value: nv}, DeliverErr: errors.ErrState},
			wantErr: errors.ErrState,
			written: [][]byte{ok, nk},
		},
		"success writes through": {
			save:    NewSavepoint().OnDeliver(),
			handler: &weavetest.Handler{Write: &weavetest.KeyValue{Key: nk, Value: nv}},
			written: [][]byte{ok, nk},
		},
		"panic drops the write": {
			save:    NewSavepoint().OnDeliver(),
			handler: &weavetest.Handler{Write: &weavetest.KeyValue{Key: nk, Value: nv}, Panic: "boom"},
			wantErr: errors.ErrPanic,
			written: [][]byte{ok},
			missing: [][]byte{nk},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			ctx := context.Background()
			kv := store.MemStore()
			assert.Nil(t, kv.Set(ok, ov))

			// recovery outside of the savepoint, as in the application stack
			h := weavetest.Decorate(weavetest.Decorate(tc.handler, tc.save), NewRecovery())

			var err error
			if tc.check {
				_, err = h.Check(ctx, kv, &weavetest.Tx{})
			} else {
				_, err = h.Deliver(ctx, kv, &weavetest.Tx{})
			}
			assert.IsErr(t, tc.wantErr, err)

			for _, k := range tc.written {
				has, err := kv.Has(k)
				assert.Nil(t, err)
				assert.Equal(t, true, has)
			}
			for _, k := range tc.missing {
				has, err := kv.Has(k)
				assert.Nil(t, err)
				assert.Equal(t, false, has)
			}
		})
	}
}
