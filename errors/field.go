package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Field attributes err to a single attribute of a model or message. Nil is
// returned for a nil err, so that validation code can wrap every check
// unconditionally.
//
// Field names follow the Go struct field names. Nested fields are joined with
// a dot, for example Amount.Ticker.
func Field(name string, err error, description string, args ...interface{}) error {
	if isNilErr(err) {
		return nil
	}
	if len(args) > 0 {
		description = fmt.Sprintf(description, args...)
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	return &fieldError{name: name, desc: description, cause: err}
}

// AppendField groups errs with a Field error for name. Both arguments may
// be nil.
func AppendField(errs error, name string, err error) error {
	return Append(errs, Field(name, err, ""))
}

type fieldError struct {
	name  string
	desc  string
	cause error
}

func (e *fieldError) Error() string {
	if e.desc != "" {
		return fmt.Sprintf("field %q: %s: %s", e.name, e.desc, e.cause)
	}
	return fmt.Sprintf("field %q: %s", e.name, e.cause)
}

func (e *fieldError) Cause() error { return e.cause }

func (e *fieldError) Field() string { return e.name }

// FieldErrors collects all errors attributed to the field name, looking into
// grouped errors and down the cause chain.
func FieldErrors(err error, name string) []error {
	var found []error
	for !isNilErr(err) {
		switch e := err.(type) {
		case *fieldError:
			if e.name == name {
				return append(found, e)
			}
		case unpacker:
			for _, inner := range e.Unpack() {
				found = append(found, FieldErrors(inner, name)...)
			}
			return found
		}
		c, ok := err.(causer)
		if !ok {
			break
		}
		err = c.Cause()
	}
	return found
}
