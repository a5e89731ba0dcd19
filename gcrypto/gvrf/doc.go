// Package gvrf defines the verifiable random function used for sealer rotation,
// and provides a BLS-backed implementation on top of
// [github.com/supranational/blst/bindings/go].
//
// BLS signatures are unique: for a given secret key and message
// there is exactly one valid signature.
// That property makes a BLS signature usable as a VRF proof,
// with the VRF output being a hash of the proof.
//
// All keys, messages and proofs crossing the [Scheme] boundary are hex strings,
// because they are carried verbatim as string arguments of the rotation call.
//
// The blst dependency requires CGo,
// so therefore this package also requires CGo.
package gvrf
