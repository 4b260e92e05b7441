package assert

import (
	"testing"

	"github.com/iov-one/stakevault/errors"
)

func TestIsErr(t *testing.T) {
	cases := map[string]struct {
		want     error
		got      error
		wantFail bool
	}{
		"same instance": {
			want: errors.ErrEmpty,
			got:  errors.ErrEmpty,
		},
		"both nil": {},
		"nil expected": {
			got:      errors.ErrEmpty,
			wantFail: true,
		},
		"wrapped": {
			want: errors.ErrAmount,
			got:  errors.Wrap(errors.ErrAmount, "zero deposit"),
		},
		"different code": {
			want:     errors.ErrAmount,
			got:      errors.ErrCurrency,
			wantFail: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			m := &recorder{TB: t}
			IsErr(m, tc.want, tc.got)
			if failed := m.failures > 0; failed != tc.wantFail {
				t.Fatalf("want failure %v, got %d failures", tc.wantFail, m.failures)
			}
		})
	}
}

func TestFieldError(t *testing.T) {
	amountErr := errors.Field("Amount", errors.ErrAmount, "must be positive")

	cases := map[string]struct {
		err      error
		field    string
		want     *errors.Error
		wantFail bool
	}{
		"single match": {
			err:   amountErr,
			field: "Amount",
			want:  errors.ErrAmount,
		},
		"wrong code": {
			err:      amountErr,
			field:    "Amount",
			want:     errors.ErrCurrency,
			wantFail: true,
		},
		"no error for another field": {
			err:   amountErr,
			field: "Staker",
		},
		"unexpected error": {
			err:      amountErr,
			field:    "Amount",
			wantFail: true,
		},
		"missing error": {
			err:      amountErr,
			field:    "Staker",
			want:     errors.ErrEmpty,
			wantFail: true,
		},
		"two errors for one field": {
			err: errors.Append(
				errors.Field("Amount", errors.ErrAmount, "first"),
				errors.Field("Amount", errors.ErrAmount, "second"),
			),
			field:    "Amount",
			want:     errors.ErrAmount,
			wantFail: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			m := &recorder{TB: t}
			FieldError(m, tc.err, tc.field, tc.want)
			if failed := m.failures > 0; failed != tc.wantFail {
				t.Fatalf("want failure %v, got %d failures", tc.wantFail, m.failures)
			}
		})
	}
}

func TestPanics(t *testing.T) {
	m := &recorder{TB: t}
	Panics(m, func() { panic("boom") })
	Panics(m, func() {})
	if m.failures != 1 {
		t.Fatalf("want one failure, got %d", m.failures)
	}
}

func TestNil(t *testing.T) {
	var typed *errors.Error
	m := &recorder{TB: t}
	Nil(m, nil)
	Nil(m, typed)
	Nil(m, 0)
	Nil(m, errors.ErrEmpty)
	if m.failures != 2 {
		t.Fatalf("want two failures, got %d", m.failures)
	}
}

// recorder counts failures instead of stopping the test.
type recorder struct {
	testing.TB
	failures int
}

func (r *recorder) Fatal(args ...interface{}) {
	r.TB.Log(args...)
	r.failures++
}

func (r *recorder) Fatalf(format string, args ...interface{}) {
	r.TB.Logf(format, args...)
	r.failures++
}
