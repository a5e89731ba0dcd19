package tmconsensus

import "github.com/gordian-engine/grpbft/gcrypto"

// Engine is the view of the base PBFT engine that sealing extensions consume.
type Engine interface {
	// Signer returns the node's consensus key pair.
	Signer() gcrypto.Secp256k1Signer

	// NodeIndex is the node's index in the current sealer list.
	NodeIndex() uint64

	GroupID() uint64

	// MaxBlockTransactions is the hard cap on transactions in a single block.
	MaxBlockTransactions() uint64

	// RotationEngine returns the rotation-capable view of the engine,
	// or false if the engine does not support working-sealer rotation.
	RotationEngine() (RotationEngine, bool)
}

// RotationEngine is an [Engine] that tracks epochs of working sealers
// and decides when the working sealer set must rotate.
type RotationEngine interface {
	Engine

	// ShouldRotateSealers reports whether the block currently being sealed
	// must carry a rotation transaction.
	ShouldRotateSealers() bool
}

// TxPool is the subset of the transaction pool used while sealing.
type TxPool interface {
	// MaxBlockLimit is the largest distance, in blocks,
	// between a transaction's BlockLimit and the current block number
	// that the pool will accept.
	MaxBlockLimit() uint64
}
