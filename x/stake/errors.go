package stake

import "github.com/iov-one/stakevault/errors"

// x/stake reserves 2000 ~ 2009.
var (
	// ErrAlreadyStaked is returned when adding to an active position.
	ErrAlreadyStaked = errors.Register(2000, "already staked")

	// ErrNotStaked is returned when removing without an active position.
	ErrNotStaked = errors.Register(2001, "not staked")
)
