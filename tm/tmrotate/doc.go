// Package tmrotate extends the PBFT sealer with VRF-based rotation of the working sealer set.
//
// When the engine reports that the working sealers must rotate,
// the [Sealer] proves, with its VRF key, the hash of the latest committed block,
// wraps that proof in a rotateWorkingSealer call to the working sealer manager contract,
// and places the call in the block being sealed.
// The contract verifies the proof and updates the working sealer set when the block executes.
//
// To guarantee the rotation call fits, the [Sealer] also reports a block capacity
// one below the hard cap while a rotation is pending;
// if the pipeline fills the block regardless, the last transaction is overwritten.
package tmrotate
