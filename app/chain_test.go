package app

import (
	"context"
	"testing"

	"github.com/iov-one/stakevault/errors"
	"github.com/iov-one/stakevault/weave"
	"github.com/iov-one/stakevault/weavetest"
	"github.com/iov-one/stakevault/x/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChain(t *testing.T) {
	c1 := &weavetest.Decorator{}
	c2 := &weavetest.Decorator{}
	var nilDecorator *weavetest.Decorator
	h := &weavetest.Handler{}

	stack := ChainDecorators(
		c1,
		utils.NewLogging(),
		nil,
		utils.NewRecovery(),
		nilDecorator,
		c2,
	).WithHandler(h)

	ctx := weave.WithHeight(context.Background(), 4)
	tx := &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "test/chain"}}

	_, err := stack.Check(ctx, nil, tx)
	require.NoError(t, err)
	_, err = stack.Deliver(ctx, nil, tx)
	require.NoError(t, err)

	assert.Equal(t, 2, c1.CallCount())
	assert.Equal(t, 2, c2.CallCount())
	assert.Equal(t, 2, h.CallCount())

	// now, let's trigger a panic
	h.Panic = "boom"
	_, err = stack.Check(ctx, nil, tx)
	assert.True(t, errors.ErrPanic.Is(err))
	_, err = stack.Deliver(ctx, nil, tx)
	assert.True(t, errors.ErrPanic.Is(err))

	assert.Equal(t, 4, c1.CallCount())
	assert.Equal(t, 4, c2.CallCount())
	assert.Equal(t, 4, h.CallCount())

	// an error in the decorator stops the chain
	c2.DeliverErr = errors.ErrUnauthorized
	h.Panic = nil
	_, err = stack.Deliver(ctx, nil, tx)
	assert.True(t, errors.ErrUnauthorized.Is(err))
	assert.Equal(t, 4, h.CallCount())
}

func TestChainDoesNotShareState(t *testing.T) {
	base := ChainDecorators(&weavetest.Decorator{})
	a := base.Chain(&weavetest.Decorator{})
	b := base.Chain(&weavetest.Decorator{}, &weavetest.Decorator{})

	assert.Len(t, base.chain, 1)
	assert.Len(t, a.chain, 2)
	assert.Len(t, b.chain, 3)
}

type initFunc func(weave.Options, weave.KVStore) error

func (f initFunc) FromGenesis(opts weave.Options, db weave.KVStore) error {
	return f(opts, db)
}

func TestChainInitializers(t *testing.T) {
	var calls []string
	record := func(name string, err error) weave.Initializer {
		return initFunc(func(weave.Options, weave.KVStore) error {
			calls = append(calls, name)
			return err
		})
	}

	err := ChainInitializers(record("a", nil), record("b", nil)).FromGenesis(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, calls)

	calls = nil
	err = ChainInitializers(record("a", errors.ErrInput), record("b", nil)).FromGenesis(nil, nil)
	assert.True(t, errors.ErrInput.Is(err))
	assert.Equal(t, []string{"a"}, calls)
}
