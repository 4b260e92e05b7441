package orm

import (
	"github.com/iov-one/stakevault/errors"
)

// Orm reserves 100~109 error codes

// ErrBucket is returned when a bucket is used with an invalid configuration.
var ErrBucket = errors.Register(100, "invalid bucket")
