package ledger

import "github.com/iov-one/stakevault/errors"

// x/ledger reserves 1000 ~ 1009.
var (
	// ErrFrozen is returned when an operation touches a frozen account.
	ErrFrozen = errors.Register(1000, "account frozen")

	// ErrNotEmpty is returned when closing an account that still holds
	// tokens.
	ErrNotEmpty = errors.Register(1001, "account not empty")
)
