package stake

import (
	"fmt"

	"github.com/iov-one/stakevault/errors"
	"github.com/iov-one/stakevault/weave"
)

// Effect is a single step of a stake operation.
type Effect struct {
	// Name describes the step in errors and logs.
	Name  string
	Apply func(ctx weave.Context, db weave.KVStore) error
}

// Executor applies an ordered list of effects as one unit. Either all of
// them are applied or none.
type Executor interface {
	Execute(ctx weave.Context, db weave.KVStore, effects []Effect) error
}

// StoreExecutor applies effects on a cache wrap of the store. The wrap is
// written only when every effect succeeded.
type StoreExecutor struct{}

var _ Executor = StoreExecutor{}

// Execute runs the effects in order and stops at the first failure, which is
// returned as an *EffectError.
func (StoreExecutor) Execute(ctx weave.Context, db weave.KVStore, effects []Effect) error {
	cstore, ok := db.(weave.CacheableKVStore)
	if !ok {
		return errors.Wrapf(errors.ErrHuman, "store %T cannot be cache wrapped", db)
	}
	cache := cstore.CacheWrap()
	for i, e := range effects {
		if err := e.Apply(ctx, cache); err != nil {
			cache.Discard()
			return &EffectError{Step: i, Name: e.Name, Err: err}
		}
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(err, "write effects")
	}
	return nil
}

// EffectError is returned when a step of a batch failed. No step of the
// batch was applied.
type EffectError struct {
	Step int
	Name string
	Err  error
}

func (e *EffectError) Error() string {
	return fmt.Sprintf("step %d (%s): %s", e.Step, e.Name, e.Err)
}

// Cause returns the error of the failed step so that registered errors can
// be matched with their Is method.
func (e *EffectError) Cause() error {
	return e.Err
}

// IsLedgerFailure returns true if the error was returned by a failed step of
// a batch.
func IsLedgerFailure(err error) bool {
	_, ok := AsEffectError(err)
	return ok
}

// AsEffectError finds the *EffectError in the chain of causes.
func AsEffectError(err error) (*EffectError, bool) {
	type causer interface {
		Cause() error
	}
	for err != nil {
		if e, ok := err.(*EffectError); ok {
			return e, true
		}
		c, ok := err.(causer)
		if !ok {
			return nil, false
		}
		err = c.Cause()
	}
	return nil, false
}
