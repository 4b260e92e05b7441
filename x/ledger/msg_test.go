package ledger

import (
	"testing"

	"github.com/iov-one/stakevault/errors"
	"github.com/iov-one/stakevault/weave"
	"github.com/iov-one/stakevault/weavetest"
	"github.com/iov-one/stakevault/weavetest/assert"
)

func TestMsgValidate(t *testing.T) {
	alice := weavetest.NewCondition().Address()
	bob := weavetest.NewCondition().Address()

	cases := map[string]struct {
		msg      weave.Msg
		wantErrs map[string]*errors.Error
	}{
		"valid create token": {
			msg: &CreateTokenMsg{Ticker: "IOV", Decimals: 9, MintAuthority: alice},
			wantErrs: map[string]*errors.Error{
				"Ticker":          nil,
				"Decimals":        nil,
				"MintAuthority":   nil,
				"FreezeAuthority": nil,
			},
		},
		"create token with everything wrong": {
			msg: &CreateTokenMsg{Ticker: "io", Decimals: 20, FreezeAuthority: []byte{1}},
			wantErrs: map[string]*errors.Error{
				"Ticker":          errors.ErrCurrency,
				"Decimals":        errors.ErrInput,
				"MintAuthority":   errors.ErrEmpty,
				"FreezeAuthority": errors.ErrInput,
			},
		},
		"valid transfer": {
			msg: &TransferMsg{Ticker: "IOV", Src: alice, Dest: bob, Amount: 1},
			wantErrs: map[string]*errors.Error{
				"Ticker": nil,
				"Src":    nil,
				"Dest":   nil,
				"Amount": nil,
			},
		},
		"zero transfer without destination": {
			msg: &TransferMsg{Ticker: "IOV", Src: alice},
			wantErrs: map[string]*errors.Error{
				"Src":    nil,
				"Dest":   errors.ErrEmpty,
				"Amount": errors.ErrAmount,
			},
		},
		"mint with bad ticker": {
			msg: &MintMsg{Ticker: "iov", Dest: alice, Amount: 4},
			wantErrs: map[string]*errors.Error{
				"Ticker": errors.ErrCurrency,
				"Dest":   nil,
				"Amount": nil,
			},
		},
		"zero burn": {
			msg: &BurnMsg{Ticker: "IOV", Src: alice},
			wantErrs: map[string]*errors.Error{
				"Amount": errors.ErrAmount,
			},
		},
		"freeze without holder": {
			msg: &FreezeMsg{Ticker: "IOV"},
			wantErrs: map[string]*errors.Error{
				"Ticker": nil,
				"Holder": errors.ErrEmpty,
			},
		},
		"thaw": {
			msg: &ThawMsg{Ticker: "IOV", Holder: alice},
			wantErrs: map[string]*errors.Error{
				"Holder": nil,
			},
		},
		"approve without delegate": {
			msg: &ApproveMsg{Ticker: "IOV", Owner: alice, Amount: 3},
			wantErrs: map[string]*errors.Error{
				"Holder":   nil,
				"Delegate": errors.ErrEmpty,
				"Amount":   nil,
			},
		},
		"revoke": {
			msg: &RevokeMsg{Ticker: "IOV", Owner: alice},
			wantErrs: map[string]*errors.Error{
				"Holder": nil,
			},
		},
		"close with short address": {
			msg: &CloseMsg{Ticker: "IOV", Owner: []byte{1, 2}},
			wantErrs: map[string]*errors.Error{
				"Holder": errors.ErrInput,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Validate()
			for field, want := range tc.wantErrs {
				assert.FieldError(t, err, field, want)
			}
		})
	}
}

func TestMsgSerialization(t *testing.T) {
	alice := weavetest.NewCondition().Address()
	bob := weavetest.NewCondition().Address()

	msg := TransferMsg{Ticker: "IOV", Src: alice, Dest: bob, Amount: 1234}
	raw, err := msg.Marshal()
	assert.Nil(t, err)

	var got TransferMsg
	assert.Nil(t, got.Unmarshal(raw))
	assert.Equal(t, msg, got)
	assert.Equal(t, "ledger/transfer", got.Path())
}
