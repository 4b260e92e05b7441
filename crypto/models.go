package crypto

import (
	"github.com/gogo/protobuf/proto"
)

// PublicKey holds the public part of an ed25519 key pair.
type PublicKey struct {
	Ed25519 []byte `protobuf:"bytes,1,opt,name=ed25519,proto3" json:"ed25519,omitempty"`
}

// PrivateKey holds the ed25519 private key, seed followed by the public key.
type PrivateKey struct {
	Ed25519 []byte `protobuf:"bytes,1,opt,name=ed25519,proto3" json:"ed25519,omitempty"`
}

// Signature is an ed25519 signature.
type Signature struct {
	Ed25519 []byte `protobuf:"bytes,1,opt,name=ed25519,proto3" json:"ed25519,omitempty"`
}

// The codec types below share the memory layout of the public types and are
// used by the gogo protobuf reflection codec. Calling proto.Marshal on a type
// that implements Marshal itself would recurse.

type publicKeypb PublicKey

func (m *publicKeypb) Reset()         { *m = publicKeypb{} }
func (m *publicKeypb) String() string { return proto.CompactTextString(m) }
func (*publicKeypb) ProtoMessage()    {}

type privateKeypb PrivateKey

func (m *privateKeypb) Reset()         { *m = privateKeypb{} }
func (m *privateKeypb) String() string { return proto.CompactTextString(m) }
func (*privateKeypb) ProtoMessage()    {}

type signaturepb Signature

func (m *signaturepb) Reset()         { *m = signaturepb{} }
func (m *signaturepb) String() string { return proto.CompactTextString(m) }
func (*signaturepb) ProtoMessage()    {}

func (m *PublicKey) Reset()         { *m = PublicKey{} }
func (m *PublicKey) String() string { return proto.CompactTextString((*publicKeypb)(m)) }
func (*PublicKey) ProtoMessage()    {}

// Marshal serializes the key using protobuf encoding.
func (m *PublicKey) Marshal() ([]byte, error) { return proto.Marshal((*publicKeypb)(m)) }

// Unmarshal deserializes the key using protobuf encoding.
func (m *PublicKey) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*publicKeypb)(m)) }

func (m *PrivateKey) Reset()         { *m = PrivateKey{} }
func (m *PrivateKey) String() string { return "PrivateKey{***}" }
func (*PrivateKey) ProtoMessage()    {}

// Marshal serializes the key using protobuf encoding.
func (m *PrivateKey) Marshal() ([]byte, error) { return proto.Marshal((*privateKeypb)(m)) }

// Unmarshal deserializes the key using protobuf encoding.
func (m *PrivateKey) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*privateKeypb)(m)) }

func (m *Signature) Reset()         { *m = Signature{} }
func (m *Signature) String() string { return proto.CompactTextString((*signaturepb)(m)) }
func (*Signature) ProtoMessage()    {}

// Marshal serializes the signature using protobuf encoding.
func (m *Signature) Marshal() ([]byte, error) { return proto.Marshal((*signaturepb)(m)) }

// Unmarshal deserializes the signature using protobuf encoding.
func (m *Signature) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*signaturepb)(m)) }
