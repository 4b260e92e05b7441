package sigs

import (
	"github.com/gogo/protobuf/proto"

	"github.com/iov-one/stakevault/crypto"
	"github.com/iov-one/stakevault/errors"
	"github.com/iov-one/stakevault/orm"
	"github.com/iov-one/stakevault/weave"
)

// BucketName is where we store the accounts.
const BucketName = "sigs"

// maxSequenceValue is limited by the client. The greatest supported nonce
// value at client side is Number.MAX_SAFE_INTEGER = 2^53 - 1.
const maxSequenceValue = (1 << 53) - 1

// StdSignature represents the signature, the identity of the signer
// (the Pubkey), and a sequence number to prevent replay attacks.
type StdSignature struct {
	Sequence  int64             `protobuf:"varint,1,opt,name=sequence,proto3" json:"sequence,omitempty"`
	Pubkey    *crypto.PublicKey `protobuf:"bytes,2,opt,name=pubkey,proto3" json:"pubkey,omitempty"`
	Signature *crypto.Signature `protobuf:"bytes,3,opt,name=signature,proto3" json:"signature,omitempty"`
}

// Validate ensures the StdSignature meets basic standards.
func (s *StdSignature) Validate() error {
	if s.Sequence < 0 {
		return errors.Wrap(ErrInvalidSequence, "negative")
	}
	if s.Pubkey == nil {
		return errors.Wrap(errors.ErrUnauthorized, "missing public key")
	}
	if s.Signature == nil {
		return errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return nil
}

// UserData is the state kept for every public key that ever signed a
// transaction.
type UserData struct {
	Pubkey   *crypto.PublicKey `protobuf:"bytes,1,opt,name=pubkey,proto3" json:"pubkey,omitempty"`
	Sequence int64             `protobuf:"varint,2,opt,name=sequence,proto3" json:"sequence,omitempty"`
}

var _ orm.Model = (*UserData)(nil)

// Validate returns an error if the user data is not consistent.
func (u *UserData) Validate() error {
	var errs error
	if u.Pubkey == nil {
		errs = errors.AppendField(errs, "Pubkey", errors.ErrEmpty)
	} else {
		errs = errors.AppendField(errs, "Pubkey", u.Pubkey.Validate())
	}
	if u.Sequence < 0 {
		errs = errors.AppendField(errs, "Sequence", ErrInvalidSequence)
	}
	return errs
}

// CheckAndIncrementSequence implements check and increment operation.
// If current sequence value is the same as given expected value then it is
// incremented. Otherwise an error is returned.
func (u *UserData) CheckAndIncrementSequence(expected int64) error {
	if u.Sequence != expected {
		return errors.Wrapf(ErrInvalidSequence, "mismatch expected %d, got %d", expected, u.Sequence)
	}
	next := u.Sequence + 1
	if next <= 0 || next > maxSequenceValue {
		return errors.Wrap(errors.ErrOverflow, "sequence out of range")
	}
	u.Sequence = next
	return nil
}

type userDatapb UserData

func (m *userDatapb) Reset()         { *m = userDatapb{} }
func (m *userDatapb) String() string { return proto.CompactTextString(m) }
func (*userDatapb) ProtoMessage()    {}

// Marshal serializes the user data using protobuf encoding.
func (u *UserData) Marshal() ([]byte, error) { return proto.Marshal((*userDatapb)(u)) }

// Unmarshal deserializes the user data using protobuf encoding.
func (u *UserData) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*userDatapb)(u)) }

type stdSignaturepb StdSignature

func (m *stdSignaturepb) Reset()         { *m = stdSignaturepb{} }
func (m *stdSignaturepb) String() string { return proto.CompactTextString(m) }
func (*stdSignaturepb) ProtoMessage()    {}

func (s *StdSignature) Reset()         { *s = StdSignature{} }
func (s *StdSignature) String() string { return proto.CompactTextString((*stdSignaturepb)(s)) }
func (*StdSignature) ProtoMessage()    {}

// Marshal serializes the signature using protobuf encoding.
func (s *StdSignature) Marshal() ([]byte, error) { return proto.Marshal((*stdSignaturepb)(s)) }

// Unmarshal deserializes the signature using protobuf encoding.
func (s *StdSignature) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*stdSignaturepb)(s)) }

// Bucket stores UserData under the address of its public key.
type Bucket struct {
	orm.ModelBucket
}

// NewBucket creates the proper bucket for this extension.
func NewBucket() Bucket {
	return Bucket{ModelBucket: orm.NewModelBucket(BucketName)}
}

// GetOrCreate initializes a UserData if none exist for that key.
func (b Bucket) GetOrCreate(db weave.ReadOnlyKVStore, pubkey *crypto.PublicKey) (*UserData, error) {
	var user UserData
	switch err := b.One(db, pubkey.Address(), &user); {
	case err == nil:
		return &user, nil
	case errors.ErrNotFound.Is(err):
		return &UserData{Pubkey: pubkey}, nil
	default:
		return nil, err
	}
}

// Save stores the user data under its public key address.
func (b Bucket) Save(db weave.KVStore, user *UserData) error {
	return b.Put(db, user.Pubkey.Address(), user)
}
