package weavetest

import (
	"context"

	"github.com/iov-one/stakevault/weave"
)

// Auth authenticates a fixed set of conditions whatever the context is.
type Auth []weave.Condition

func (a Auth) GetConditions(weave.Context) []weave.Condition {
	return a
}

func (a Auth) HasAddress(_ weave.Context, addr weave.Address) bool {
	return containsAddress(a, addr)
}

// CtxAuth authenticates the conditions stored in the context under Key. A
// single instance can authenticate every call differently.
type CtxAuth struct {
	Key string
}

type ctxAuthKey string

// SetConditions returns a context in which given conditions are fulfilled.
// Conditions set before are replaced.
func (a *CtxAuth) SetConditions(ctx weave.Context, conds ...weave.Condition) weave.Context {
	return context.WithValue(ctx, ctxAuthKey(a.Key), conds)
}

func (a *CtxAuth) GetConditions(ctx weave.Context) []weave.Condition {
	conds, _ := ctx.Value(ctxAuthKey(a.Key)).([]weave.Condition)
	return conds
}

func (a *CtxAuth) HasAddress(ctx weave.Context, addr weave.Address) bool {
	return containsAddress(a.GetConditions(ctx), addr)
}

func containsAddress(conds []weave.Condition, addr weave.Address) bool {
	for _, c := range conds {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}
