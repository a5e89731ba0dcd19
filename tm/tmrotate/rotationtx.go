package tmrotate

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gordian-engine/grpbft/gcrypto/gvrf"
	"github.com/gordian-engine/grpbft/gtx"
	"github.com/gordian-engine/grpbft/tm/tmconsensus"
)

// WorkingSealerManagerAddress is the system contract that validates rotation proofs
// and updates the working sealer set.
var WorkingSealerManagerAddress = common.HexToAddress("0x0000000000000000000000000000000000001010")

// RotateMethodSignature is the contract method invoked by a rotation transaction.
// Its arguments are the VRF public key, the proven block hash, and the VRF proof.
const RotateMethodSignature = "rotateWorkingSealer(string,string,string)"

// RotateMethod is the parsed [RotateMethodSignature].
var RotateMethod = gtx.MustParseMethod(RotateMethodSignature)

// BuildRotationTx wraps proof in a signed rotation call targeting the block after head.
func BuildRotationTx(
	ctx context.Context,
	gen *gtx.Generator,
	id *Identity,
	head tmconsensus.ChainHead,
	proof Proof,
) (*gtx.Transaction, error) {
	return gen.GenerateCall(
		ctx,
		RotateMethod,
		head.Number,
		WorkingSealerManagerAddress,
		id.Signer,
		id.VRFPublicKey, proof.Message, proof.Proof,
	)
}

// GenerateRotationTx proves head with id's VRF key and builds the rotation transaction.
// A proof failure is reported as an error wrapping [ErrProofGeneration].
func GenerateRotationTx(
	ctx context.Context,
	scheme gvrf.Scheme,
	gen *gtx.Generator,
	id *Identity,
	head tmconsensus.ChainHead,
) (*gtx.Transaction, Proof, error) {
	proof, err := id.Prove(scheme, head)
	if err != nil {
		return nil, Proof{}, fmt.Errorf("%w (input %s): %w", ErrProofGeneration, head.HexHash(), err)
	}

	tx, err := BuildRotationTx(ctx, gen, id, head, proof)
	if err != nil {
		return nil, Proof{}, fmt.Errorf("failed to build rotation transaction: %w", err)
	}
	return tx, proof, nil
}

// DecodeRotationArgs extracts the VRF public key, message and proof
// from a rotation transaction's call data.
func DecodeRotationArgs(tx *gtx.Transaction) (vrfPublicKey, message, proof string, err error) {
	if tx.To != WorkingSealerManagerAddress {
		return "", "", "", fmt.Errorf("transaction targets %s, not the working sealer manager", tx.To)
	}
	args, err := RotateMethod.Unpack(tx.Data)
	if err != nil {
		return "", "", "", err
	}
	// Unpack guarantees one value per declared string input.
	return args[0].(string), args[1].(string), args[2].(string), nil
}
