package gvrf_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/gordian-engine/grpbft/gcrypto/gvrf"
	"github.com/stretchr/testify/require"
)

const (
	seedA = "1fcce948db9fc312902d49745249cfd287de1a764fd48afb3cd0bdd0a8d74674"
	seedB = "885f642c8390293eb74d08cf38d3333771e9e319cfd12a21429eeff2eddeebd2"
)

func TestBLS_GenerateKeyPair_deterministic(t *testing.T) {
	t.Parallel()

	var s gvrf.BLS

	pk1, err := s.GenerateKeyPair(seedA)
	require.NoError(t, err)
	pk2, err := s.GenerateKeyPair(seedA)
	require.NoError(t, err)
	require.Equal(t, pk1, pk2)

	// Compressed G2 point.
	b, err := hex.DecodeString(pk1)
	require.NoError(t, err)
	require.Len(t, b, 96)

	pkB, err := s.GenerateKeyPair(seedB)
	require.NoError(t, err)
	require.NotEqual(t, pk1, pkB)
}

func TestBLS_GenerateKeyPair_invalidSeed(t *testing.T) {
	t.Parallel()

	var s gvrf.BLS

	_, err := s.GenerateKeyPair("zz")
	require.ErrorIs(t, err, gvrf.ErrInvalidSeed)

	_, err = s.GenerateKeyPair(strings.Repeat("ab", 31))
	require.ErrorIs(t, err, gvrf.ErrInvalidSeed)

	_, err = s.Prove("", "00")
	require.ErrorIs(t, err, gvrf.ErrInvalidSeed)
}

func TestBLS_ProveVerify(t *testing.T) {
	t.Parallel()

	var s gvrf.BLS

	pk, err := s.GenerateKeyPair(seedA)
	require.NoError(t, err)

	msg := strings.Repeat("ab", 32)
	proof, err := s.Prove(seedA, msg)
	require.NoError(t, err)

	// Unique signatures: proving twice yields the same proof.
	proof2, err := s.Prove(seedA, msg)
	require.NoError(t, err)
	require.Equal(t, proof, proof2)

	require.True(t, s.Verify(pk, msg, proof))

	require.False(t, s.Verify(pk, strings.Repeat("cd", 32), proof))

	pkB, err := s.GenerateKeyPair(seedB)
	require.NoError(t, err)
	require.False(t, s.Verify(pkB, msg, proof))

	require.False(t, s.Verify("nothex", msg, proof))
	require.False(t, s.Verify(pk, msg, "nothex"))
}

func TestBLS_ProofToHash(t *testing.T) {
	t.Parallel()

	var s gvrf.BLS

	p1, err := s.Prove(seedA, "m1")
	require.NoError(t, err)
	p2, err := s.Prove(seedA, "m2")
	require.NoError(t, err)

	h1, err := s.ProofToHash(p1)
	require.NoError(t, err)
	h2, err := s.ProofToHash(p2)
	require.NoError(t, err)

	require.Len(t, h1, 64)
	require.NotEqual(t, h1, h2)

	_, err = s.ProofToHash("abcd")
	require.Error(t, err)
}
