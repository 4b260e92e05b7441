package x

import (
	"github.com/iov-one/stakevault/errors"
	"github.com/iov-one/stakevault/weave"
)

// Authenticator reveals which conditions the processed transaction fulfils.
// Handlers receive it in their constructor, so that signatures and derived
// authorities can be combined without the handler knowing the source.
type Authenticator interface {
	// GetConditions returns all fulfilled conditions in the order they
	// were authenticated.
	GetConditions(weave.Context) []weave.Condition
	// HasAddress returns true if any fulfilled condition has this address.
	HasAddress(weave.Context, weave.Address) bool
}

// MultiAuth combines authenticators. A condition is fulfilled if any of
// them fulfils it.
type MultiAuth []Authenticator

var _ Authenticator = MultiAuth(nil)

// ChainAuth returns an authenticator that consults all given ones in order.
func ChainAuth(auths ...Authenticator) MultiAuth {
	return MultiAuth(auths)
}

func (m MultiAuth) GetConditions(ctx weave.Context) []weave.Condition {
	var conds []weave.Condition
	for _, a := range m {
		conds = append(conds, a.GetConditions(ctx)...)
	}
	return conds
}

func (m MultiAuth) HasAddress(ctx weave.Context, addr weave.Address) bool {
	for _, a := range m {
		if a.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// RequireAddress returns ErrUnauthorized unless the address is
// authenticated.
func RequireAddress(ctx weave.Context, auth Authenticator, addr weave.Address) error {
	if len(addr) == 0 {
		return errors.Wrap(errors.ErrUnauthorized, "no address")
	}
	if !auth.HasAddress(ctx, addr) {
		return errors.Wrapf(errors.ErrUnauthorized, "%s did not sign", addr)
	}
	return nil
}

// MainSigner returns the first fulfilled condition or nil.
func MainSigner(ctx weave.Context, auth Authenticator) weave.Condition {
	if conds := auth.GetConditions(ctx); len(conds) > 0 {
		return conds[0]
	}
	return nil
}
