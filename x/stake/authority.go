package stake

import (
	"context"

	"github.com/iov-one/stakevault/weave"
	"github.com/iov-one/stakevault/x"
)

const (
	// VaultLabel derives the address holding the deposited base tokens.
	VaultLabel = "vault"
	// SyntheticLabel derives the mint authority of the synthetic token.
	SyntheticLabel = "synthetic"

	derivedExt  = "stake"
	derivedType = "derived"
)

// Authority is a keyless signing capability derived from a label. Values can
// only be created within this package, so no other code can claim the
// derived conditions.
type Authority struct {
	label string
	cond  weave.Condition
}

// resolve returns the authority derived from the label.
func resolve(label string) Authority {
	return Authority{
		label: label,
		cond:  weave.NewCondition(derivedExt, derivedType, []byte(label)),
	}
}

// Label returns the label the authority was derived from.
func (a Authority) Label() string {
	return a.label
}

// Address returns the address owned by this authority.
func (a Authority) Address() weave.Address {
	return a.cond.Address()
}

// grant returns a context in which this authority is authenticated.
func (a Authority) grant(ctx weave.Context) weave.Context {
	granted, _ := ctx.Value(contextKeyGranted).([]weave.Condition)
	conds := make([]weave.Condition, 0, len(granted)+1)
	conds = append(conds, granted...)
	conds = append(conds, a.cond)
	return context.WithValue(ctx, contextKeyGranted, conds)
}

// VaultAddress returns the address holding all deposits.
func VaultAddress() weave.Address {
	return resolve(VaultLabel).Address()
}

// SyntheticAddress returns the mint authority of the synthetic token.
func SyntheticAddress() weave.Address {
	return resolve(SyntheticLabel).Address()
}

type contextKey int // local to the stake module

const (
	contextKeyGranted contextKey = iota
)

// Authenticate exposes the derived conditions granted by this package.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

// GetConditions returns the derived conditions granted in the context.
func (Authenticate) GetConditions(ctx weave.Context) []weave.Condition {
	conds, _ := ctx.Value(contextKeyGranted).([]weave.Condition)
	return conds
}

// HasAddress returns true if the address belongs to a granted authority.
func (a Authenticate) HasAddress(ctx weave.Context, addr weave.Address) bool {
	for _, c := range a.GetConditions(ctx) {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}
