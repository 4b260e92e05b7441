package orm

import (
	"fmt"
	"regexp"

	"github.com/iov-one/stakevault/errors"
	"github.com/iov-one/stakevault/weave"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// Model is implemented by any entity that can be stored using ModelBucket.
type Model interface {
	weave.Persistent
	Validate() error
}

// ModelBucket is implemented by buckets that operates on Models.
type ModelBucket interface {
	// One query the database for a single model instance. Lookup is done
	// by the primary index key. Result is loaded into given destination
	// model.
	// This method returns ErrNotFound if the entity does not exist in the
	// database.
	One(db weave.ReadOnlyKVStore, key []byte, dest Model) error

	// Has returns nil if an entity with given primary key value exists.
	// It returns ErrNotFound if no entity can be found.
	Has(db weave.ReadOnlyKVStore, key []byte) error

	// Put saves given model in the database. Before inserting into the
	// database, the model is validated.
	Put(db weave.KVStore, key []byte, m Model) error

	// Delete removes an entity with given primary key from the database.
	// It returns ErrNotFound if an entity with given key does not exist.
	Delete(db weave.KVStore, key []byte) error
}

// NewModelBucket returns a ModelBucket instance that keeps all models in the
// subspace of the database prefixed with the bucket name.
func NewModelBucket(name string) ModelBucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("illegal bucket: %s", name))
	}
	return &modelBucket{
		name:   name,
		prefix: append([]byte(name), ':'),
	}
}

type modelBucket struct {
	name   string
	prefix []byte
}

func (mb *modelBucket) dbKey(key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, errors.Wrapf(ErrBucket, "%s bucket: empty key", mb.name)
	}
	return append(append([]byte(nil), mb.prefix...), key...), nil
}

func (mb *modelBucket) One(db weave.ReadOnlyKVStore, key []byte, dest Model) error {
	k, err := mb.dbKey(key)
	if err != nil {
		return err
	}
	raw, err := db.Get(k)
	if err != nil {
		return errors.Wrapf(errors.ErrDatabase, "%s bucket: %s", mb.name, err)
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}
	if err := dest.Unmarshal(raw); err != nil {
		return errors.Wrapf(errors.ErrModel, "cannot unmarshal into %T: %s", dest, err)
	}
	return nil
}

func (mb *modelBucket) Has(db weave.ReadOnlyKVStore, key []byte) error {
	k, err := mb.dbKey(key)
	if err != nil {
		return err
	}
	ok, err := db.Has(k)
	if err != nil {
		return errors.Wrapf(errors.ErrDatabase, "%s bucket: %s", mb.name, err)
	}
	if !ok {
		return errors.Wrapf(errors.ErrNotFound, "%s bucket", mb.name)
	}
	return nil
}

func (mb *modelBucket) Put(db weave.KVStore, key []byte, m Model) error {
	k, err := mb.dbKey(key)
	if err != nil {
		return err
	}
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	raw, err := m.Marshal()
	if err != nil {
		return errors.Wrapf(errors.ErrModel, "cannot marshal %T: %s", m, err)
	}
	if err := db.Set(k, raw); err != nil {
		return errors.Wrap(err, "cannot store in the database")
	}
	return nil
}

func (mb *modelBucket) Delete(db weave.KVStore, key []byte) error {
	k, err := mb.dbKey(key)
	if err != nil {
		return err
	}
	if err := mb.Has(db, key); err != nil {
		return err
	}
	if err := db.Delete(k); err != nil {
		return errors.Wrap(err, "cannot delete from the database")
	}
	return nil
}

var _ ModelBucket = (*modelBucket)(nil)
