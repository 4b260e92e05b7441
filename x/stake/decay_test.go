package stake

import (
	"math"
	"testing"

	"github.com/iov-one/stakevault/weave"
	"github.com/iov-one/stakevault/weavetest/assert"
)

func TestElapsed(t *testing.T) {
	cases := map[string]struct {
		opened weave.UnixTime
		now    weave.UnixTime
		want   uint64
	}{
		"same second":          {opened: 100, now: 100, want: 0},
		"later":                {opened: 100, now: 142, want: 42},
		"clock went backwards": {opened: 100, now: 70, want: 0},
		"negative opening":     {opened: -10, now: 5, want: 15},
		"whole range":          {opened: math.MinInt64, now: math.MaxInt64, want: math.MaxUint64},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.want, Elapsed(tc.opened, tc.now))
		})
	}
}

func TestBurned(t *testing.T) {
	cases := map[string]struct {
		deposited uint64
		elapsed   uint64
		want      uint64
	}{
		"nothing elapsed":      {deposited: 100, elapsed: 0, want: 100},
		"partially decayed":    {deposited: 100, elapsed: 40, want: 60},
		"exactly decayed":      {deposited: 100, elapsed: 100, want: 0},
		"held longer":          {deposited: 100, elapsed: 250, want: 0},
		"largest deposit":      {deposited: math.MaxUint64, elapsed: 1, want: math.MaxUint64 - 1},
		"longest elapsed time": {deposited: 1, elapsed: math.MaxUint64, want: 0},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.want, Burned(tc.deposited, tc.elapsed))
		})
	}
}
