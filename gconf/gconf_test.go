package gconf

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/stakevault/errors"
	"github.com/iov-one/stakevault/store"
	"github.com/iov-one/stakevault/weave"
	"github.com/iov-one/stakevault/weavetest/assert"
)

type testConf struct {
	Name  string `json:"name"`
	Limit int    `json:"limit"`
}

func (c *testConf) Marshal() ([]byte, error) { return json.Marshal(c) }

func (c *testConf) Unmarshal(raw []byte) error { return json.Unmarshal(raw, c) }

func (c *testConf) Validate() error {
	if c.Name == "" {
		return errors.Wrap(errors.ErrEmpty, "name")
	}
	return nil
}

func TestSaveLoad(t *testing.T) {
	db := store.MemStore()

	var got testConf
	assert.IsErr(t, errors.ErrNotFound, Load(db, "mypkg", &got))

	assert.IsErr(t, errors.ErrEmpty, Save(db, "mypkg", &testConf{}))
	assert.Nil(t, Save(db, "mypkg", &testConf{Name: "foo", Limit: 3}))

	assert.Nil(t, Load(db, "mypkg", &got))
	assert.Equal(t, testConf{Name: "foo", Limit: 3}, got)

	raw, err := db.Get([]byte("_c:mypkg"))
	assert.Nil(t, err)
	if raw == nil {
		t.Fatal("configuration not stored under the package key")
	}
}

func TestInitConfig(t *testing.T) {
	cases := map[string]struct {
		Genesis string
		WantErr *errors.Error
		Want    testConf
	}{
		"valid configuration": {
			Genesis: `{"conf": {"mypkg": {"name": "bar", "limit": 7}}}`,
			Want:    testConf{Name: "bar", Limit: 7},
		},
		"missing package": {
			Genesis: `{"conf": {"other": {"name": "bar"}}}`,
			WantErr: errors.ErrNotFound,
		},
		"invalid configuration": {
			Genesis: `{"conf": {"mypkg": {"limit": 7}}}`,
			WantErr: errors.ErrEmpty,
		},
		"malformed json": {
			Genesis: `{"conf": {"mypkg": {"name": 7}}}`,
			WantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts weave.Options
			if err := json.Unmarshal([]byte(tc.Genesis), &opts); err != nil {
				t.Fatalf("cannot decode genesis: %s", err)
			}
			db := store.MemStore()
			var conf testConf
			assert.IsErr(t, tc.WantErr, InitConfig(db, opts, "mypkg", &conf))
			if tc.WantErr != nil {
				return
			}
			var got testConf
			assert.Nil(t, Load(db, "mypkg", &got))
			assert.Equal(t, tc.Want, got)
		})
	}
}
