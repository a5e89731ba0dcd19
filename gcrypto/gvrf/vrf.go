package gvrf

import "errors"

// Scheme is the VRF primitive consumed by the rotating sealer.
//
// The private key passed to Prove is the same seed passed to GenerateKeyPair;
// implementations derive the VRF secret from the seed on each call
// so that no secret state lives inside the Scheme.
type Scheme interface {
	// GenerateKeyPair derives the VRF key pair from the hex-encoded seed
	// and returns the hex-encoded public key.
	// The result must be identical for identical seeds.
	GenerateKeyPair(seed string) (publicKey string, err error)

	// Prove returns the hex-encoded VRF proof of message
	// under the key derived from privateKey.
	Prove(privateKey, message string) (proof string, err error)
}

var (
	// ErrInvalidSeed is returned when the seed is not hex
	// or too short to derive a key from.
	ErrInvalidSeed = errors.New("invalid VRF seed")

	// ErrProofFailed is returned when the primitive fails to produce a proof.
	ErrProofFailed = errors.New("failed to produce VRF proof")
)
