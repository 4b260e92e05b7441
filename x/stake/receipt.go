package stake

import (
	"encoding/binary"

	"github.com/gogo/protobuf/proto"

	"github.com/iov-one/stakevault/errors"
	"github.com/iov-one/stakevault/orm"
	"github.com/iov-one/stakevault/weave"
)

const (
	// ReceiptSize is the length of a serialized receipt.
	ReceiptSize = 17

	receiptBucketName = "receipt"
	stakerBucketName  = "staker"
)

// receiptKey is the only key a receipt is ever stored under.
var receiptKey = []byte("unique0")

// Receipt describes the single staking position.
//
// It is serialized into a fixed layout:
//
//   offset  size  field
//   0       1     active flag, 0 or 1
//   1       8     opened at, signed big endian
//   9       8     deposited, unsigned big endian
type Receipt struct {
	Active    bool
	OpenedAt  weave.UnixTime
	Deposited uint64
}

var _ orm.Model = (*Receipt)(nil)

// Validate returns an error if an active receipt holds no deposit.
func (r *Receipt) Validate() error {
	if r.Active && r.Deposited == 0 {
		return errors.Field("Deposited", errors.ErrAmount, "active receipt without deposit")
	}
	return nil
}

// Marshal serializes the receipt into its fixed layout.
func (r *Receipt) Marshal() ([]byte, error) {
	raw := make([]byte, ReceiptSize)
	if r.Active {
		raw[0] = 1
	}
	binary.BigEndian.PutUint64(raw[1:9], uint64(r.OpenedAt))
	binary.BigEndian.PutUint64(raw[9:17], r.Deposited)
	return raw, nil
}

// Unmarshal loads the receipt from its fixed layout.
func (r *Receipt) Unmarshal(raw []byte) error {
	if len(raw) != ReceiptSize {
		return errors.Wrapf(errors.ErrInput, "receipt must be %d bytes, got %d", ReceiptSize, len(raw))
	}
	switch raw[0] {
	case 0:
		r.Active = false
	case 1:
		r.Active = true
	default:
		return errors.Wrapf(errors.ErrInput, "invalid active flag %d", raw[0])
	}
	r.OpenedAt = weave.UnixTime(int64(binary.BigEndian.Uint64(raw[1:9])))
	r.Deposited = binary.BigEndian.Uint64(raw[9:17])
	return nil
}

// Staker records who opened the current position.
type Staker struct {
	Address weave.Address `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
}

var _ orm.Model = (*Staker)(nil)

// Validate ensures the staker address is valid.
func (s *Staker) Validate() error {
	return errors.AppendField(nil, "Address", s.Address.Validate())
}

type stakerpb Staker

func (m *stakerpb) Reset()         { *m = stakerpb{} }
func (m *stakerpb) String() string { return proto.CompactTextString(m) }
func (*stakerpb) ProtoMessage()    {}

// Marshal serializes the staker using protobuf encoding.
func (s *Staker) Marshal() ([]byte, error) { return proto.Marshal((*stakerpb)(s)) }

// Unmarshal deserializes the staker using protobuf encoding.
func (s *Staker) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*stakerpb)(s)) }

// ReceiptBucket stores the receipt and the staker that owns it.
type ReceiptBucket struct {
	receipts orm.ModelBucket
	stakers  orm.ModelBucket
}

// NewReceiptBucket returns a bucket for the receipt.
func NewReceiptBucket() ReceiptBucket {
	return ReceiptBucket{
		receipts: orm.NewModelBucket(receiptBucketName),
		stakers:  orm.NewModelBucket(stakerBucketName),
	}
}

// Load returns the receipt. A receipt that was never written is inactive and
// empty.
func (b ReceiptBucket) Load(db weave.ReadOnlyKVStore) (*Receipt, error) {
	var r Receipt
	switch err := b.receipts.One(db, receiptKey, &r); {
	case err == nil:
		return &r, nil
	case errors.ErrNotFound.Is(err):
		return &Receipt{}, nil
	default:
		return nil, errors.Wrap(err, "load receipt")
	}
}

// Save stores the receipt.
func (b ReceiptBucket) Save(db weave.KVStore, r *Receipt) error {
	return b.receipts.Put(db, receiptKey, r)
}

// Owner returns the address that opened the last position, or nil if no
// position was ever opened.
func (b ReceiptBucket) Owner(db weave.ReadOnlyKVStore) (weave.Address, error) {
	var s Staker
	switch err := b.stakers.One(db, receiptKey, &s); {
	case err == nil:
		return s.Address, nil
	case errors.ErrNotFound.Is(err):
		return nil, nil
	default:
		return nil, errors.Wrap(err, "load staker")
	}
}

// SetOwner records the address that opened the position.
func (b ReceiptBucket) SetOwner(db weave.KVStore, owner weave.Address) error {
	return b.stakers.Put(db, receiptKey, &Staker{Address: owner})
}
