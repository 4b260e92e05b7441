package app

import (
	"encoding/json"
	"time"

	"github.com/iov-one/stakevault/errors"
	"github.com/iov-one/stakevault/weave"
	"github.com/tendermint/tendermint/libs/log"
)

// StoreApp processes transactions on top of a cacheable store.
//
// All delivered transactions of a block are collected in a deliver cache that
// is flushed to the committed store on Commit. Check calls run against a
// separate cache that is reset on every Commit.
type StoreApp struct {
	logger log.Logger

	// name is used for logging
	name string

	// committed state
	store weave.CacheableKVStore

	deliver weave.KVCacheWrap
	check   weave.KVCacheWrap

	decoder     weave.TxDecoder
	handler     weave.Handler
	initializer weave.Initializer

	// chainID is loaded from db in initialization
	// saved once in InitChain
	chainID string

	// height of the last committed block
	height int64

	// baseContext contains context info that is valid for
	// lifetime of this app (eg. chainID)
	baseContext weave.Context

	// blockContext contains context info that is valid for the
	// current block (eg. height, time), reset on BeginBlock
	blockContext weave.Context
}

// NewStoreApp initializes this app into a ready state with some defaults.
// A chain id previously stored in the given store is loaded.
func NewStoreApp(name string, store weave.CacheableKVStore, decoder weave.TxDecoder, handler weave.Handler, baseContext weave.Context) (*StoreApp, error) {
	s := &StoreApp{
		name:        name,
		store:       store,
		decoder:     decoder,
		handler:     handler,
		baseContext: baseContext,
	}
	s = s.WithLogger(log.NewNopLogger())
	s.resetCaches()

	chainID, err := loadChainID(store)
	if err != nil {
		return nil, errors.Wrap(err, "load chain id")
	}
	if chainID != "" {
		s.chainID = chainID
		s.baseContext = weave.WithChainID(s.baseContext, chainID)
	}
	s.blockContext = s.baseContext
	return s, nil
}

// WithInit is used to set the init function we call
func (s *StoreApp) WithInit(init weave.Initializer) *StoreApp {
	s.initializer = init
	return s
}

// WithLogger sets the logger on the StoreApp and returns it,
// to make it easy to chain in initialization
//
// also sets baseContext logger
func (s *StoreApp) WithLogger(logger log.Logger) *StoreApp {
	s.baseContext = weave.WithLogger(s.baseContext, logger)
	s.logger = logger
	return s
}

// Logger returns the application base logger
func (s *StoreApp) Logger() log.Logger {
	return s.logger
}

// GetChainID returns the current chainID
func (s *StoreApp) GetChainID() string {
	return s.chainID
}

// Height returns the height of the last committed block.
func (s *StoreApp) Height() int64 {
	return s.height
}

// BlockContext returns the block context for public use
func (s *StoreApp) BlockContext() weave.Context {
	return s.blockContext
}

// DeliverStore returns the current DeliverTx cache for methods
func (s *StoreApp) DeliverStore() weave.CacheableKVStore {
	return s.deliver
}

// CheckStore returns the current CheckTx cache for methods
func (s *StoreApp) CheckStore() weave.CacheableKVStore {
	return s.check
}

// InitChain stores the chain id and passes the application state to the
// initializer. It must be called once, before the first block.
func (s *StoreApp) InitChain(gen Genesis) error {
	if s.chainID != "" {
		return errors.Wrapf(errors.ErrState, "app state previously loaded for chain: %s", s.chainID)
	}
	if len(gen.AppState) == 0 {
		return errors.Wrap(errors.ErrEmpty, "app_state not set in genesis")
	}
	if err := saveChainID(s.deliver, gen.ChainID); err != nil {
		return err
	}
	s.chainID = gen.ChainID
	s.baseContext = weave.WithChainID(s.baseContext, s.chainID)
	s.blockContext = s.baseContext

	if s.initializer == nil {
		return nil
	}
	if err := s.initializer.FromGenesis(gen.AppState, s.deliver); err != nil {
		return errors.Wrap(err, "genesis")
	}
	return nil
}

// InitChainFromJSON is InitChain for a raw genesis document.
func (s *StoreApp) InitChainFromJSON(raw []byte) error {
	var gen Genesis
	if err := json.Unmarshal(raw, &gen); err != nil {
		return errors.Wrapf(errors.ErrInput, "genesis: %s", err)
	}
	return s.InitChain(gen)
}

// BeginBlock sets up the block context. Every transaction of the block
// observes the given time as "now".
func (s *StoreApp) BeginBlock(height int64, blockTime time.Time) {
	ctx := weave.WithHeight(s.baseContext, height)
	ctx = weave.WithBlockTime(ctx, blockTime)
	s.blockContext = ctx
}

// DeliverTx decodes the transaction and dispatches it to the handler.
// Changes land in the deliver cache.
func (s *StoreApp) DeliverTx(txBytes []byte) (*weave.DeliverResult, error) {
	tx, err := s.loadTx(txBytes)
	if err != nil {
		return nil, err
	}
	ctx := weave.WithLogInfo(s.blockContext,
		"call", "deliver_tx",
		"path", weave.GetPath(tx))
	return s.handler.Deliver(ctx, s.deliver, tx)
}

// CheckTx decodes the transaction and dispatches it to the handler using
// the check cache.
func (s *StoreApp) CheckTx(txBytes []byte) (*weave.CheckResult, error) {
	tx, err := s.loadTx(txBytes)
	if err != nil {
		return nil, err
	}
	ctx := weave.WithLogInfo(s.blockContext,
		"call", "check_tx",
		"path", weave.GetPath(tx))
	return s.handler.Check(ctx, s.check, tx)
}

// Commit flushes the deliver cache into the committed store.
func (s *StoreApp) Commit() error {
	if err := s.deliver.Write(); err != nil {
		return errors.Wrap(err, "commit")
	}
	s.height++
	s.resetCaches()
	s.logger.Debug("Commit synced", "app", s.name, "height", s.height)
	return nil
}

func (s *StoreApp) resetCaches() {
	if s.check != nil {
		s.check.Discard()
	}
	s.deliver = s.store.CacheWrap()
	s.check = s.store.CacheWrap()
}

// loadTx calls the decoder, and capture any panics
func (s *StoreApp) loadTx(txBytes []byte) (tx weave.Tx, err error) {
	defer errors.Recover(&err)
	tx, err = s.decoder(txBytes)
	if err != nil {
		return nil, errors.Wrap(err, "decode tx")
	}
	return tx, nil
}
