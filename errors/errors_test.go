package errors

import (
	stdlib "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorIs(t *testing.T) {
	cases := map[string]struct {
		kind   *Error
		err    error
		wantIs bool
	}{
		"instance of the same error": {
			kind:   ErrNotFound,
			err:    ErrNotFound,
			wantIs: true,
		},
		"two different coded errors": {
			kind:   ErrNotFound,
			err:    ErrModel,
			wantIs: false,
		},
		"successful comparison to a wrapped error": {
			kind:   ErrNotFound,
			err:    Wrap(ErrNotFound, "gone"),
			wantIs: true,
		},
		"unsuccessful comparison to a wrapped error": {
			kind:   ErrNotFound,
			err:    Wrap(ErrOverflow, "too big"),
			wantIs: false,
		},
		"not equal to stdlib error": {
			kind:   ErrNotFound,
			err:    fmt.Errorf("stdlib error"),
			wantIs: false,
		},
		"field error reveals its cause": {
			kind:   ErrAmount,
			err:    Field("Amount", ErrAmount, "must be positive"),
			wantIs: true,
		},
		"group matches any member": {
			kind:   ErrEmpty,
			err:    Append(ErrInput, Wrap(ErrEmpty, "ticker")),
			wantIs: true,
		},
		"nil is nil": {
			kind:   nil,
			err:    nil,
			wantIs: true,
		},
		"nil is not an error": {
			kind:   nil,
			err:    ErrState,
			wantIs: false,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.wantIs, tc.kind.Is(tc.err))
		})
	}
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "nothing"))
	assert.Nil(t, Wrapf(nil, "nothing %d", 1))
	assert.Nil(t, Field("Name", nil, "nothing"))
	assert.Nil(t, Append(nil, nil))
}

func TestWrapMessage(t *testing.T) {
	err := Wrapf(ErrInsufficientAmount, "need %d", 10)
	assert.Equal(t, "need 10: insufficient amount", err.Error())

	err = Wrap(stdlib.New("boom"), "standard")
	assert.Equal(t, "standard: boom", err.Error())
	assert.Equal(t, uint32(1), Code(err))
}

func TestCode(t *testing.T) {
	assert.Equal(t, uint32(16), Code(ErrOverflow))
	assert.Equal(t, uint32(16), Code(Wrap(Wrap(ErrOverflow, "a"), "b")))
	assert.Equal(t, uint32(12), Code(Field("Amount", ErrInsufficientAmount, "")))
}

func TestStackTrace(t *testing.T) {
	err := Wrap(ErrDuplicate, "name")
	full := fmt.Sprintf("%+v", err)
	require.True(t, strings.HasPrefix(full, "name: duplicate"), full)
	assert.Contains(t, full, "errors_test.go")
	assert.Equal(t, "name: duplicate", fmt.Sprintf("%v", err))
}

func TestRegisterDuplicatePanics(t *testing.T) {
	assert.Panics(t, func() { Register(ErrState.Code(), "another state") })
}

func TestRecover(t *testing.T) {
	fn := func() (err error) {
		defer Recover(&err)
		panic("at the disco")
	}
	err := fn()
	require.Error(t, err)
	assert.True(t, ErrPanic.Is(err))
}

func TestFieldErrors(t *testing.T) {
	var errs error
	errs = AppendField(errs, "Ticker", ErrCurrency)
	errs = AppendField(errs, "Amount", nil)
	errs = AppendField(errs, "Holder", Wrap(ErrEmpty, "holder"))

	assert.Len(t, FieldErrors(errs, "Ticker"), 1)
	assert.Len(t, FieldErrors(errs, "Amount"), 0)
	holder := FieldErrors(errs, "Holder")
	require.Len(t, holder, 1)
	assert.True(t, ErrEmpty.Is(holder[0]))
}
