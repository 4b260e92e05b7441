package weavetest

import "github.com/iov-one/stakevault/weave"

// Handler returns the configured results and counts its calls. Write and
// Panic help to test that decorators roll back state and recover.
type Handler struct {
	calls

	CheckResult weave.CheckResult
	CheckErr    error

	DeliverResult weave.DeliverResult
	DeliverErr    error

	// Write if not nil is set in the store on every call, before the
	// configured error is returned.
	Write *KeyValue

	// Panic if not nil is passed to a panic call after Write.
	Panic interface{}
}

// KeyValue is a single store entry.
type KeyValue struct {
	Key   []byte
	Value []byte
}

var _ weave.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	h.check++
	if err := h.sideEffects(db); err != nil {
		return nil, err
	}
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	h.deliver++
	if err := h.sideEffects(db); err != nil {
		return nil, err
	}
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) sideEffects(db weave.KVStore) error {
	if h.Write != nil {
		if err := db.Set(h.Write.Key, h.Write.Value); err != nil {
			return err
		}
	}
	if h.Panic != nil {
		panic(h.Panic)
	}
	return nil
}
