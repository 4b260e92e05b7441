package ledger

import (
	"github.com/gogo/protobuf/proto"

	"github.com/iov-one/stakevault/coin"
	"github.com/iov-one/stakevault/errors"
	"github.com/iov-one/stakevault/orm"
	"github.com/iov-one/stakevault/weave"
)

const (
	// TokenBucketName is where the token registry lives.
	TokenBucketName = "token"
	// AccountBucketName is where the balances live.
	AccountBucketName = "account"
)

// Token is the registry entry of a fungible asset.
type Token struct {
	Ticker   string `protobuf:"bytes,1,opt,name=ticker,proto3" json:"ticker,omitempty"`
	Decimals uint32 `protobuf:"varint,2,opt,name=decimals,proto3" json:"decimals,omitempty"`
	// MintAuthority is the only address allowed to issue new tokens.
	MintAuthority weave.Address `protobuf:"bytes,3,opt,name=mint_authority,json=mintAuthority,proto3" json:"mint_authority,omitempty"`
	// FreezeAuthority is optional. Without it no account of this token can
	// be frozen.
	FreezeAuthority weave.Address `protobuf:"bytes,4,opt,name=freeze_authority,json=freezeAuthority,proto3" json:"freeze_authority,omitempty"`
	Supply          uint64        `protobuf:"varint,5,opt,name=supply,proto3" json:"supply,omitempty"`
}

var _ orm.Model = (*Token)(nil)

// Validate ensures the token is consistent.
func (t *Token) Validate() error {
	var errs error
	if !coin.IsCC(t.Ticker) {
		errs = errors.AppendField(errs, "Ticker", errors.ErrCurrency)
	}
	if t.Decimals > coin.MaxDecimals {
		errs = errors.AppendField(errs, "Decimals", errors.ErrInput)
	}
	errs = errors.AppendField(errs, "MintAuthority", t.MintAuthority.Validate())
	if len(t.FreezeAuthority) != 0 {
		errs = errors.AppendField(errs, "FreezeAuthority", t.FreezeAuthority.Validate())
	}
	return errs
}

// Account holds the balance of a single holder for a single token.
type Account struct {
	Holder weave.Address `protobuf:"bytes,1,opt,name=holder,proto3" json:"holder,omitempty"`
	Ticker string        `protobuf:"bytes,2,opt,name=ticker,proto3" json:"ticker,omitempty"`
	Amount uint64        `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
	Frozen bool          `protobuf:"varint,4,opt,name=frozen,proto3" json:"frozen,omitempty"`
	// Delegate may spend up to Allowance on behalf of the holder.
	Delegate  weave.Address `protobuf:"bytes,5,opt,name=delegate,proto3" json:"delegate,omitempty"`
	Allowance uint64        `protobuf:"varint,6,opt,name=allowance,proto3" json:"allowance,omitempty"`
}

var _ orm.Model = (*Account)(nil)

// Validate ensures the account is consistent.
func (a *Account) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Holder", a.Holder.Validate())
	if !coin.IsCC(a.Ticker) {
		errs = errors.AppendField(errs, "Ticker", errors.ErrCurrency)
	}
	if len(a.Delegate) != 0 {
		errs = errors.AppendField(errs, "Delegate", a.Delegate.Validate())
	} else if a.Allowance != 0 {
		errs = errors.AppendField(errs, "Allowance", errors.Wrap(errors.ErrState, "allowance without delegate"))
	}
	return errs
}

type tokenpb Token

func (m *tokenpb) Reset()         { *m = tokenpb{} }
func (m *tokenpb) String() string { return proto.CompactTextString(m) }
func (*tokenpb) ProtoMessage()    {}

// Marshal serializes the token using protobuf encoding.
func (t *Token) Marshal() ([]byte, error) { return proto.Marshal((*tokenpb)(t)) }

// Unmarshal deserializes the token using protobuf encoding.
func (t *Token) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*tokenpb)(t)) }

type accountpb Account

func (m *accountpb) Reset()         { *m = accountpb{} }
func (m *accountpb) String() string { return proto.CompactTextString(m) }
func (*accountpb) ProtoMessage()    {}

// Marshal serializes the account using protobuf encoding.
func (a *Account) Marshal() ([]byte, error) { return proto.Marshal((*accountpb)(a)) }

// Unmarshal deserializes the account using protobuf encoding.
func (a *Account) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*accountpb)(a)) }

// TokenBucket stores tokens under their ticker.
type TokenBucket struct {
	orm.ModelBucket
}

// NewTokenBucket returns a bucket for the token registry.
func NewTokenBucket() TokenBucket {
	return TokenBucket{ModelBucket: orm.NewModelBucket(TokenBucketName)}
}

// Get returns the token registered under the ticker. ErrNotFound is returned
// for unknown tickers.
func (b TokenBucket) Get(db weave.ReadOnlyKVStore, ticker string) (*Token, error) {
	if !coin.IsCC(ticker) {
		return nil, errors.Wrapf(errors.ErrCurrency, "ticker %q", ticker)
	}
	var t Token
	if err := b.One(db, []byte(ticker), &t); err != nil {
		return nil, errors.Wrapf(err, "token %q", ticker)
	}
	return &t, nil
}

// Save stores the token under its ticker.
func (b TokenBucket) Save(db weave.KVStore, t *Token) error {
	return b.Put(db, []byte(t.Ticker), t)
}

// AccountBucket stores accounts under the "<ticker>:<holder>" key.
type AccountBucket struct {
	orm.ModelBucket
}

// NewAccountBucket returns a bucket for the token accounts.
func NewAccountBucket() AccountBucket {
	return AccountBucket{ModelBucket: orm.NewModelBucket(AccountBucketName)}
}

// AccountKey returns the key of the holder's account of given token.
func AccountKey(ticker string, holder weave.Address) []byte {
	key := make([]byte, 0, len(ticker)+1+len(holder))
	key = append(key, ticker...)
	key = append(key, ':')
	return append(key, holder...)
}

// Get returns the account. ErrNotFound is returned if the holder was never
// credited with this token or the account was closed.
func (b AccountBucket) Get(db weave.ReadOnlyKVStore, ticker string, holder weave.Address) (*Account, error) {
	var a Account
	if err := b.One(db, AccountKey(ticker, holder), &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// GetOrCreate returns the account, or a new empty one if it does not exist.
// A new account is not saved.
func (b AccountBucket) GetOrCreate(db weave.ReadOnlyKVStore, ticker string, holder weave.Address) (*Account, error) {
	switch a, err := b.Get(db, ticker, holder); {
	case err == nil:
		return a, nil
	case errors.ErrNotFound.Is(err):
		return &Account{Holder: holder, Ticker: ticker}, nil
	default:
		return nil, err
	}
}

// Save stores the account.
func (b AccountBucket) Save(db weave.KVStore, a *Account) error {
	return b.Put(db, AccountKey(a.Ticker, a.Holder), a)
}

// Remove deletes the account.
func (b AccountBucket) Remove(db weave.KVStore, a *Account) error {
	return b.Delete(db, AccountKey(a.Ticker, a.Holder))
}
