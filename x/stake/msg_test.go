package stake

import (
	"testing"

	"github.com/iov-one/stakevault/errors"
	"github.com/iov-one/stakevault/weave"
	"github.com/iov-one/stakevault/weavetest"
	"github.com/iov-one/stakevault/weavetest/assert"
)

func TestValidateAddMsg(t *testing.T) {
	staker := weavetest.NewCondition().Address()

	cases := map[string]struct {
		msg        weave.Msg
		wantErrors map[string]*errors.Error
	}{
		"valid message": {
			msg: &AddMsg{Staker: staker, Amount: 1},
			wantErrors: map[string]*errors.Error{
				"Staker": nil,
				"Amount": nil,
			},
		},
		"missing staker": {
			msg: &AddMsg{Amount: 1},
			wantErrors: map[string]*errors.Error{
				"Staker": errors.ErrEmpty,
				"Amount": nil,
			},
		},
		"zero amount": {
			msg: &AddMsg{Staker: staker},
			wantErrors: map[string]*errors.Error{
				"Staker": nil,
				"Amount": errors.ErrAmount,
			},
		},
		"invalid staker": {
			msg: &AddMsg{Staker: weave.Address("short"), Amount: 10},
			wantErrors: map[string]*errors.Error{
				"Staker": errors.ErrInput,
				"Amount": nil,
			},
		},
		"valid remove": {
			msg: &RemoveMsg{Staker: staker},
			wantErrors: map[string]*errors.Error{
				"Staker": nil,
			},
		},
		"remove without staker": {
			msg: &RemoveMsg{},
			wantErrors: map[string]*errors.Error{
				"Staker": errors.ErrEmpty,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Validate()
			for field, wantErr := range tc.wantErrors {
				assert.FieldError(t, err, field, wantErr)
			}
		})
	}
}

func TestMsgSerialization(t *testing.T) {
	add := &AddMsg{Staker: weavetest.NewCondition().Address(), Amount: 12345}
	raw, err := add.Marshal()
	assert.Nil(t, err)
	var gotAdd AddMsg
	assert.Nil(t, gotAdd.Unmarshal(raw))
	assert.Equal(t, add, &gotAdd)

	rm := &RemoveMsg{Staker: weavetest.NewCondition().Address()}
	raw, err = rm.Marshal()
	assert.Nil(t, err)
	var gotRm RemoveMsg
	assert.Nil(t, gotRm.Unmarshal(raw))
	assert.Equal(t, rm, &gotRm)
}
