package coin

import (
	"math"
	"math/big"
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/iov-one/stakevault/errors"
)

// IsCC is the RegExp to ensure valid currency codes.
var IsCC = regexp.MustCompile(`^[A-Z]{3,4}$`).MatchString

// MaxDecimals is the highest precision a token can declare. Ten to this
// power still fits in an uint64.
const MaxDecimals = 19

// Add returns the sum of two raw amounts. Overflow is an error.
func Add(a, b uint64) (uint64, error) {
	if a > math.MaxUint64-b {
		return 0, errors.Wrapf(errors.ErrOverflow, "%d + %d", a, b)
	}
	return a + b, nil
}

// Sub returns a minus b. If b is greater than a, ErrInsufficientAmount is
// returned.
func Sub(a, b uint64) (uint64, error) {
	if b > a {
		return 0, errors.Wrapf(errors.ErrInsufficientAmount, "%d - %d", a, b)
	}
	return a - b, nil
}

// SaturatingSub returns a minus b, or zero if b is greater than a.
func SaturatingSub(a, b uint64) uint64 {
	if b >= a {
		return 0
	}
	return a - b
}

// Format renders a raw amount in the human readable form of a token with
// given precision. Trailing fractional zeros are dropped.
//   Format(1500000, 6) == "1.5"
func Format(amount uint64, decimals uint32) string {
	raw := new(big.Int).SetUint64(amount)
	return decimal.NewFromBigInt(raw, -int32(decimals)).String()
}

// Parse converts a human readable amount into the raw amount of a token with
// given precision. Values that are negative, more precise than the token or
// too big are rejected.
//   Parse("1.5", 6) == 1500000
func Parse(human string, decimals uint32) (uint64, error) {
	if decimals > MaxDecimals {
		return 0, errors.Wrapf(errors.ErrInput, "precision %d", decimals)
	}
	d, err := decimal.NewFromString(human)
	if err != nil {
		return 0, errors.Wrapf(errors.ErrInput, "amount %q: %s", human, err)
	}
	if d.Sign() < 0 {
		return 0, errors.Wrapf(errors.ErrAmount, "negative amount %q", human)
	}
	raw := d.Shift(int32(decimals))
	if !raw.IsInteger() {
		return 0, errors.Wrapf(errors.ErrAmount, "%q is more precise than %d decimals", human, decimals)
	}
	n := raw.BigInt()
	if !n.IsUint64() {
		return 0, errors.Wrapf(errors.ErrOverflow, "amount %q", human)
	}
	return n.Uint64(), nil
}
