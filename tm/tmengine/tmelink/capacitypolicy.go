package tmelink

// CapacityPolicy reports how many transactions the sealing pipeline
// may pull from the pool into the block currently being sealed.
type CapacityPolicy interface {
	MaxTxsSizeSealedInnerBlock() uint64
}

// CapacityPolicyFunc allows converting a standalone function
// into a [CapacityPolicy].
type CapacityPolicyFunc func() uint64

// MaxTxsSizeSealedInnerBlock implements [CapacityPolicy].
func (f CapacityPolicyFunc) MaxTxsSizeSealedInnerBlock() uint64 {
	return f()
}

// FixedCapacity is a [CapacityPolicy] that always reports the same value.
type FixedCapacity uint64

// MaxTxsSizeSealedInnerBlock implements [CapacityPolicy].
func (c FixedCapacity) MaxTxsSizeSealedInnerBlock() uint64 {
	return uint64(c)
}
