package gvrftest

import (
	"sync/atomic"

	"github.com/gordian-engine/grpbft/gcrypto/gvrf"
)

// Scheme is a [gvrf.Scheme] whose behavior is controlled by tests.
//
// Unset functions delegate to [gvrf.BLS].
// ProveCalls counts calls to Prove regardless of outcome.
type Scheme struct {
	GenerateKeyPairFunc func(seed string) (string, error)
	ProveFunc           func(privateKey, message string) (string, error)

	ProveCalls atomic.Int32
}

var _ gvrf.Scheme = (*Scheme)(nil)

func (s *Scheme) GenerateKeyPair(seed string) (string, error) {
	if s.GenerateKeyPairFunc != nil {
		return s.GenerateKeyPairFunc(seed)
	}
	return gvrf.BLS{}.GenerateKeyPair(seed)
}

func (s *Scheme) Prove(privateKey, message string) (string, error) {
	s.ProveCalls.Add(1)
	if s.ProveFunc != nil {
		return s.ProveFunc(privateKey, message)
	}
	return gvrf.BLS{}.Prove(privateKey, message)
}

// FailingKeyGen returns a Scheme whose key generation always fails with err.
func FailingKeyGen(err error) *Scheme {
	return &Scheme{
		GenerateKeyPairFunc: func(string) (string, error) { return "", err },
	}
}

// FailingProof returns a Scheme whose proofs always fail with [gvrf.ErrProofFailed].
func FailingProof() *Scheme {
	return &Scheme{
		ProveFunc: func(string, string) (string, error) { return "", gvrf.ErrProofFailed },
	}
}
