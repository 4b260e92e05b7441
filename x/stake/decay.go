package stake

import (
	"github.com/iov-one/stakevault/coin"
	"github.com/iov-one/stakevault/weave"
)

// Elapsed returns the number of seconds between opened and now. A clock that
// went backwards counts as zero.
func Elapsed(opened, now weave.UnixTime) uint64 {
	if now <= opened {
		return 0
	}
	// The difference of two int64 values always fits in an uint64.
	return uint64(now) - uint64(opened)
}

// Burned returns how much of the synthetic token is destroyed when a deposit
// held for elapsed seconds is withdrawn.
func Burned(deposited, elapsed uint64) uint64 {
	return coin.SaturatingSub(deposited, elapsed)
}
