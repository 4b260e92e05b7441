package weave

import (
	"encoding/json"
	"time"

	"github.com/iov-one/stakevault/errors"
)

// UnixTime is a moment expressed in whole seconds since the epoch. Stake
// receipts record their opening time in this form, so decay is measured in
// seconds as well.
type UnixTime int64

// AsUnixTime truncates t to the second.
func AsUnixTime(t time.Time) UnixTime {
	return UnixTime(t.Unix())
}

func (t UnixTime) Time() time.Time {
	return time.Unix(int64(t), 0)
}

func (t UnixTime) IsZero() bool {
	return t == 0
}

// Add shifts the time by d. Anything below a second is dropped.
func (t UnixTime) Add(d time.Duration) UnixTime {
	return t + UnixTime(d/time.Second)
}

func (t UnixTime) String() string {
	return t.Time().UTC().String()
}

// UnmarshalJSON accepts either a number of seconds or an RFC 3339 string.
// Genesis files are easier to write with the latter.
func (t *UnixTime) UnmarshalJSON(raw []byte) error {
	if len(raw) > 0 && raw[0] == '"' {
		var when time.Time
		if err := json.Unmarshal(raw, &when); err != nil {
			return errors.Wrapf(errors.ErrInput, "invalid time format: %s", err)
		}
		*t = AsUnixTime(when)
		return nil
	}
	var secs int64
	if err := json.Unmarshal(raw, &secs); err != nil {
		return errors.Wrapf(errors.ErrInput, "invalid time format: %s", err)
	}
	*t = UnixTime(secs)
	return nil
}
