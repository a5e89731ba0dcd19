package tmconsensustest

import (
	"github.com/gordian-engine/grpbft/gcrypto"
	"github.com/gordian-engine/grpbft/gcrypto/gcryptotest"
	"github.com/gordian-engine/grpbft/tm/tmconsensus"
)

// Engine is a [tmconsensus.Engine] with fixed values
// and no rotation support.
type Engine struct {
	Key    gcrypto.Secp256k1Signer
	Index  uint64
	Group  uint64
	MaxTxs uint64
}

var _ tmconsensus.Engine = (*Engine)(nil)

// NewEngine returns an Engine backed by the first deterministic secp256k1 signer.
func NewEngine(group, maxTxs uint64) *Engine {
	return &Engine{
		Key:    gcryptotest.DeterministicSecp256k1Signers(1)[0],
		Group:  group,
		MaxTxs: maxTxs,
	}
}

func (e *Engine) Signer() gcrypto.Secp256k1Signer { return e.Key }
func (e *Engine) NodeIndex() uint64               { return e.Index }
func (e *Engine) GroupID() uint64                 { return e.Group }
func (e *Engine) MaxBlockTransactions() uint64    { return e.MaxTxs }

func (e *Engine) RotationEngine() (tmconsensus.RotationEngine, bool) {
	return nil, false
}

// RotatingEngine is a [tmconsensus.RotationEngine]
// whose rotation decision is set directly by the test.
type RotatingEngine struct {
	Engine

	Rotate bool

	// ShouldRotateCalls counts calls to ShouldRotateSealers.
	ShouldRotateCalls int
}

var _ tmconsensus.RotationEngine = (*RotatingEngine)(nil)

// NewRotatingEngine returns a RotatingEngine
// backed by the first deterministic secp256k1 signer.
func NewRotatingEngine(group, maxTxs uint64) *RotatingEngine {
	return &RotatingEngine{Engine: *NewEngine(group, maxTxs)}
}

func (e *RotatingEngine) RotationEngine() (tmconsensus.RotationEngine, bool) {
	return e, true
}

func (e *RotatingEngine) ShouldRotateSealers() bool {
	e.ShouldRotateCalls++
	return e.Rotate
}

// TxPool is a [tmconsensus.TxPool] with a fixed block limit.
type TxPool struct {
	Limit uint64
}

func (p TxPool) MaxBlockLimit() uint64 { return p.Limit }
