package gvrf

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	blst "github.com/supranational/blst/bindings/go"
)

// DomainSeparationTag follows the ciphersuite format of draft-irtf-cfrg-bls-signature-05,
// with a proof-of-possession style SC_TAG replaced by an application tag
// so that VRF proofs can never be confused with consensus signatures.
var DomainSeparationTag = []byte("BLS_SIG_BLS12381G1_XMD:SHA-256_SSWU_RO_RPBFT_VRF_")

// keyGenSalt is the HKDF salt for KeyGen.
// Changing it changes every derived VRF public key.
var keyGenSalt = []byte("RPBFT-VRF-KEYGEN-SALT-")

// BLS is a [Scheme] using minimized-signature BLS12-381:
// public keys are compressed G2 points and proofs are compressed G1 points.
type BLS struct{}

var _ Scheme = BLS{}

// GenerateKeyPair implements [Scheme].
func (BLS) GenerateKeyPair(seed string) (string, error) {
	sk, err := secretFromSeed(seed)
	if err != nil {
		return "", err
	}
	defer sk.Zeroize()

	point := new(blst.P2Affine).From(sk)
	return hex.EncodeToString(point.Compress()), nil
}

// Prove implements [Scheme].
// The proof is over the bytes of the message string itself,
// matching what verifiers receive in the rotation call arguments.
func (BLS) Prove(privateKey, message string) (string, error) {
	sk, err := secretFromSeed(privateKey)
	if err != nil {
		return "", err
	}
	defer sk.Zeroize()

	sig := new(blst.P1Affine).Sign(sk, []byte(message), DomainSeparationTag, true)

	// sig could be nil only if option parsing failed.
	if sig == nil {
		return "", ErrProofFailed
	}

	return hex.EncodeToString(sig.Compress()), nil
}

// Verify reports whether proof is the valid VRF proof of message under publicKey.
func (BLS) Verify(publicKey, message, proof string) bool {
	pkb, err := hex.DecodeString(publicKey)
	if err != nil || len(pkb) != blst.BLST_P2_COMPRESS_BYTES {
		return false
	}
	pk := new(blst.P2Affine).Uncompress(pkb)
	if pk == nil || !pk.KeyValidate() {
		return false
	}

	sigb, err := hex.DecodeString(proof)
	if err != nil {
		return false
	}
	sig := new(blst.P1Affine).Uncompress(sigb)
	if sig == nil || !sig.SigValidate(false) {
		return false
	}

	return sig.Verify(false, pk, false, blst.Message(message), DomainSeparationTag)
}

// ProofToHash returns the hex-encoded VRF output for proof.
// It does not verify the proof.
func (BLS) ProofToHash(proof string) (string, error) {
	b, err := hex.DecodeString(proof)
	if err != nil {
		return "", fmt.Errorf("invalid VRF proof encoding: %w", err)
	}
	if len(b) != blst.BLST_P1_COMPRESS_BYTES {
		return "", fmt.Errorf(
			"expected %d proof bytes, got %d", blst.BLST_P1_COMPRESS_BYTES, len(b),
		)
	}
	h := sha256.Sum256(b)
	return hex.EncodeToString(h[:]), nil
}

func secretFromSeed(seed string) (*blst.SecretKey, error) {
	ikm, err := hex.DecodeString(seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}
	if len(ikm) < blst.BLST_SCALAR_BYTES {
		return nil, fmt.Errorf(
			"%w: got %d bytes, need at least %d",
			ErrInvalidSeed, len(ikm), blst.BLST_SCALAR_BYTES,
		)
	}

	sk := blst.KeyGenV5(ikm, keyGenSalt)
	clear(ikm)
	if sk == nil {
		return nil, fmt.Errorf("%w: key generation failed", ErrInvalidSeed)
	}
	return sk, nil
}
