package orm

import (
	"strconv"
	"testing"

	"github.com/iov-one/stakevault/errors"
	"github.com/iov-one/stakevault/store"
	"github.com/iov-one/stakevault/weavetest/assert"
)

type counter struct {
	Count int64
}

func (c *counter) Marshal() ([]byte, error) {
	return []byte(strconv.FormatInt(c.Count, 10)), nil
}

func (c *counter) Unmarshal(raw []byte) error {
	n, err := strconv.ParseInt(string(raw), 10, 64)
	c.Count = n
	return err
}

func (c *counter) Validate() error {
	if c.Count < 0 {
		return errors.Wrap(errors.ErrModel, "negative count")
	}
	return nil
}

func TestModelBucket(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts")

	assert.Nil(t, b.Put(db, []byte("c1"), &counter{Count: 1}))

	var c1 counter
	assert.Nil(t, b.One(db, []byte("c1"), &c1))
	assert.Equal(t, int64(1), c1.Count)
	assert.Nil(t, b.Has(db, []byte("c1")))

	// the bucket name is a prefix, other buckets do not see the entity
	other := NewModelBucket("others")
	assert.IsErr(t, errors.ErrNotFound, other.Has(db, []byte("c1")))

	assert.Nil(t, b.Delete(db, []byte("c1")))
	assert.IsErr(t, errors.ErrNotFound, b.Delete(db, []byte("unknown")))
	assert.IsErr(t, errors.ErrNotFound, b.One(db, []byte("c1"), &c1))
}

func TestModelBucketPutInvalid(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts")

	assert.IsErr(t, errors.ErrModel, b.Put(db, []byte("c1"), &counter{Count: -4}))
	assert.IsErr(t, errors.ErrNotFound, b.Has(db, []byte("c1")))
}

func TestModelBucketCorruptedValue(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts")

	if err := db.Set([]byte("cnts:bad"), []byte("not a number")); err != nil {
		t.Fatalf("cannot set: %s", err)
	}
	var c counter
	assert.IsErr(t, errors.ErrModel, b.One(db, []byte("bad"), &c))
}

func TestModelBucketEmptyKey(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts")

	var c counter
	assert.IsErr(t, ErrBucket, b.One(db, nil, &c))
	assert.IsErr(t, ErrBucket, b.Has(db, []byte{}))
	assert.IsErr(t, ErrBucket, b.Put(db, nil, &counter{Count: 1}))
	assert.IsErr(t, ErrBucket, b.Delete(db, nil))
}

func TestNewModelBucketName(t *testing.T) {
	assert.Panics(t, func() { NewModelBucket("X") })
	assert.Panics(t, func() { NewModelBucket("with-dash") })
}
