package tmrotate

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/gordian-engine/grpbft/gcrypto"
	"github.com/gordian-engine/grpbft/gcrypto/gvrf"
	"github.com/gordian-engine/grpbft/tm/tmconsensus"
)

// ErrVRFKeyGeneration is returned when the VRF key pair
// cannot be derived from the consensus key.
var ErrVRFKeyGeneration = errors.New("failed to initialize the VRF public key")

// Identity is a sealer's consensus key pair and the VRF key pair derived from it.
type Identity struct {
	NodeIndex uint64
	Signer    gcrypto.Secp256k1Signer

	// VRFPublicKey is the hex-encoded VRF public key
	// that other validators use to verify this node's proofs.
	VRFPublicKey string

	// The consensus secret, which is also the VRF seed.
	secret []byte
}

// NewIdentity derives the VRF key pair for signer using scheme.
func NewIdentity(scheme gvrf.Scheme, nodeIndex uint64, signer gcrypto.Secp256k1Signer) (*Identity, error) {
	secret, err := signer.Secret()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrVRFKeyGeneration, err)
	}

	pub, err := scheme.GenerateKeyPair(hex.EncodeToString(secret))
	if err != nil {
		clear(secret)
		return nil, fmt.Errorf("%w: %w", ErrVRFKeyGeneration, err)
	}
	if pub == "" {
		clear(secret)
		return nil, fmt.Errorf("%w: empty public key", ErrVRFKeyGeneration)
	}

	return &Identity{
		NodeIndex:    nodeIndex,
		Signer:       signer,
		VRFPublicKey: pub,
		secret:       secret,
	}, nil
}

// Proof is a VRF proof over the hash of a committed block.
type Proof struct {
	// Message is the hex-encoded block hash that was proven.
	Message string

	Proof string
}

// Prove computes the VRF proof over the hash of head.
func (id *Identity) Prove(scheme gvrf.Scheme, head tmconsensus.ChainHead) (Proof, error) {
	msg := head.HexHash()
	if len(id.secret) == 0 {
		return Proof{}, errors.New("identity has been wiped")
	}

	proof, err := scheme.Prove(hex.EncodeToString(id.secret), msg)
	if err != nil {
		return Proof{}, err
	}
	if proof == "" {
		return Proof{}, gvrf.ErrProofFailed
	}

	return Proof{Message: msg, Proof: proof}, nil
}

// Wipe zeroes the retained secret.
// Prove fails on a wiped identity.
func (id *Identity) Wipe() {
	clear(id.secret)
	id.secret = nil
}
