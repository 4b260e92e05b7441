package stake

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/iov-one/stakevault/app"
	"github.com/iov-one/stakevault/errors"
	"github.com/iov-one/stakevault/store"
	"github.com/iov-one/stakevault/weave"
	"github.com/iov-one/stakevault/weavetest"
	"github.com/iov-one/stakevault/weavetest/assert"
	"github.com/iov-one/stakevault/x/ledger"
)

func TestGenesis(t *testing.T) {
	minter := weavetest.NewCondition().Address()

	cases := map[string]struct {
		genesis string
		wantErr *errors.Error
	}{
		"synthetic token is created": {
			genesis: fmt.Sprintf(`{
				"conf": {"stake": {"base_ticker": "IOV", "synthetic_ticker": "SIOV", "synthetic_decimals": 3}},
				"ledger": {"tokens": [{"ticker": "IOV", "mint_authority": "%s"}]}
			}`, minter),
		},
		"existing synthetic token minted by the derived authority": {
			genesis: fmt.Sprintf(`{
				"conf": {"stake": {"base_ticker": "IOV", "synthetic_ticker": "SIOV", "synthetic_decimals": 3}},
				"ledger": {"tokens": [
					{"ticker": "IOV", "mint_authority": "%s"},
					{"ticker": "SIOV", "decimals": 3, "mint_authority": "cond:stake/derived/73796E746865746963"}
				]}
			}`, minter),
		},
		"synthetic token minted by somebody else": {
			genesis: fmt.Sprintf(`{
				"conf": {"stake": {"base_ticker": "IOV", "synthetic_ticker": "SIOV"}},
				"ledger": {"tokens": [
					{"ticker": "IOV", "mint_authority": "%s"},
					{"ticker": "SIOV", "mint_authority": "%s"}
				]}
			}`, minter, minter),
			wantErr: errors.ErrState,
		},
		"missing base token": {
			genesis: `{
				"conf": {"stake": {"base_ticker": "IOV", "synthetic_ticker": "SIOV"}}
			}`,
			wantErr: errors.ErrNotFound,
		},
		"missing configuration": {
			genesis: fmt.Sprintf(`{
				"ledger": {"tokens": [{"ticker": "IOV", "mint_authority": "%s"}]}
			}`, minter),
			wantErr: errors.ErrNotFound,
		},
		"same ticker twice": {
			genesis: fmt.Sprintf(`{
				"conf": {"stake": {"base_ticker": "IOV", "synthetic_ticker": "IOV"}},
				"ledger": {"tokens": [{"ticker": "IOV", "mint_authority": "%s"}]}
			}`, minter),
			wantErr: errors.ErrDuplicate,
		},
		"invalid ticker": {
			genesis: fmt.Sprintf(`{
				"conf": {"stake": {"base_ticker": "IOV", "synthetic_ticker": "s"}},
				"ledger": {"tokens": [{"ticker": "IOV", "mint_authority": "%s"}]}
			}`, minter),
			wantErr: errors.ErrCurrency,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts weave.Options
			if err := json.Unmarshal([]byte(tc.genesis), &opts); err != nil {
				t.Fatalf("cannot unmarshal genesis: %s", err)
			}
			db := store.MemStore()
			init := app.ChainInitializers(ledger.Initializer{}, Initializer{})
			if err := init.FromGenesis(opts, db); !tc.wantErr.Is(err) {
				t.Fatalf("want %v, got %+v", tc.wantErr, err)
			}
			if tc.wantErr != nil {
				return
			}

			token, err := ledger.NewTokenBucket().Get(db, "SIOV")
			assert.Nil(t, err)
			assert.Equal(t, &ledger.Token{
				Ticker:        "SIOV",
				Decimals:      3,
				MintAuthority: SyntheticAddress(),
			}, token)

			conf, err := loadConf(db)
			assert.Nil(t, err)
			assert.Equal(t, "IOV", conf.BaseTicker)
			assert.Equal(t, "SIOV", conf.SyntheticTicker)
		})
	}
}
