package gcrypto

import (
	"bytes"
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
)

// Secp256k1SecretLen is the length in bytes of a secp256k1 secret scalar.
const Secp256k1SecretLen = 32

type Secp256k1PubKey ecdsa.PublicKey

func NewSecp256k1PubKey(b []byte) (PubKey, error) {
	pubKey, err := crypto.UnmarshalPubkey(b)
	if err != nil {
		return nil, err
	}
	return Secp256k1PubKey(*pubKey), nil
}

// Address returns the 20-byte account address derived from the key.
func (e Secp256k1PubKey) Address() []byte {
	return crypto.PubkeyToAddress(ecdsa.PublicKey(e)).Bytes()
}

func (e Secp256k1PubKey) PubKeyBytes() []byte {
	return crypto.FromECDSAPub((*ecdsa.PublicKey)(&e))
}

// Verify reports whether sig is a signature by e over keccak256(msg).
// The signature is expected in the 65-byte [R || S || V] form produced by [Secp256k1Signer].
func (e Secp256k1PubKey) Verify(msg, sig []byte) bool {
	if len(sig) != crypto.SignatureLength {
		return false
	}
	return crypto.VerifySignature(e.PubKeyBytes(), crypto.Keccak256(msg), sig[:len(sig)-1])
}

func (e Secp256k1PubKey) Equal(other PubKey) bool {
	o, ok := other.(Secp256k1PubKey)
	if !ok {
		return false
	}

	return bytes.Equal(e.PubKeyBytes(), o.PubKeyBytes())
}

// Secp256k1Signer is the consensus key pair of a sealing node.
type Secp256k1Signer struct {
	priv *ecdsa.PrivateKey
	pub  Secp256k1PubKey
}

func NewSecp256k1Signer(priv *ecdsa.PrivateKey) Secp256k1Signer {
	return Secp256k1Signer{
		priv: priv,
		pub:  Secp256k1PubKey(priv.PublicKey),
	}
}

// NewSecp256k1SignerFromHex parses a hex-encoded 32-byte secret,
// with or without a 0x prefix.
func NewSecp256k1SignerFromHex(s string) (Secp256k1Signer, error) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	priv, err := crypto.HexToECDSA(s)
	if err != nil {
		return Secp256k1Signer{}, fmt.Errorf("invalid secp256k1 secret: %w", err)
	}
	return NewSecp256k1Signer(priv), nil
}

func (s Secp256k1Signer) PubKey() PubKey {
	return s.pub
}

// Secret returns the fixed-width big-endian secret scalar.
// The returned slice is a copy owned by the caller.
func (s Secp256k1Signer) Secret() ([]byte, error) {
	if s.priv == nil {
		return nil, errors.New("signer has no private key")
	}
	return crypto.FromECDSA(s.priv), nil
}

// Sign signs keccak256(input).
func (s Secp256k1Signer) Sign(_ context.Context, input []byte) ([]byte, error) {
	if s.priv == nil {
		return nil, errors.New("signer has no private key")
	}
	return crypto.Sign(crypto.Keccak256(input), s.priv)
}
