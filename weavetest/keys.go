package weavetest

import (
	"github.com/iov-one/stakevault/crypto"
	"github.com/iov-one/stakevault/weave"
)

// NewKey returns a freshly generated ed25519 private key.
func NewKey() *crypto.PrivateKey {
	return crypto.GenPrivKeyEd25519()
}

// NewCondition returns the signature condition of a fresh key.
func NewCondition() weave.Condition {
	return NewKey().PublicKey().Condition()
}

