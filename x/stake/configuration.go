package stake

import (
	"github.com/gogo/protobuf/proto"

	"github.com/iov-one/stakevault/coin"
	"github.com/iov-one/stakevault/errors"
	"github.com/iov-one/stakevault/gconf"
	"github.com/iov-one/stakevault/weave"
)

const confPkg = "stake"

// Configuration names the two tokens of the deployment.
type Configuration struct {
	// BaseTicker is the token that is deposited into the vault.
	BaseTicker string `protobuf:"bytes,1,opt,name=base_ticker,json=baseTicker,proto3" json:"base_ticker,omitempty"`
	// SyntheticTicker is the receipt token minted to the staker.
	SyntheticTicker   string `protobuf:"bytes,2,opt,name=synthetic_ticker,json=syntheticTicker,proto3" json:"synthetic_ticker,omitempty"`
	SyntheticDecimals uint32 `protobuf:"varint,3,opt,name=synthetic_decimals,json=syntheticDecimals,proto3" json:"synthetic_decimals,omitempty"`
}

var _ gconf.Configuration = (*Configuration)(nil)

func (c *Configuration) Validate() error {
	var errs error
	if !coin.IsCC(c.BaseTicker) {
		errs = errors.AppendField(errs, "BaseTicker", errors.ErrCurrency)
	}
	if !coin.IsCC(c.SyntheticTicker) {
		errs = errors.AppendField(errs, "SyntheticTicker", errors.ErrCurrency)
	}
	if c.BaseTicker == c.SyntheticTicker {
		errs = errors.AppendField(errs, "SyntheticTicker", errors.Wrap(errors.ErrDuplicate, "same as base"))
	}
	if c.SyntheticDecimals > coin.MaxDecimals {
		errs = errors.AppendField(errs, "SyntheticDecimals", errors.ErrInput)
	}
	return errs
}

type configurationpb Configuration

func (m *configurationpb) Reset()         { *m = configurationpb{} }
func (m *configurationpb) String() string { return proto.CompactTextString(m) }
func (*configurationpb) ProtoMessage()    {}

func (c *Configuration) Marshal() ([]byte, error) { return proto.Marshal((*configurationpb)(c)) }
func (c *Configuration) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*configurationpb)(c)) }

func loadConf(db weave.ReadOnlyKVStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, confPkg, &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}
