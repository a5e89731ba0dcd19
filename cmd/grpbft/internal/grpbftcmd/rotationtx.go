package grpbftcmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/gordian-engine/grpbft/gcrypto/gvrf"
	"github.com/gordian-engine/grpbft/gtx"
	"github.com/gordian-engine/grpbft/tm/tmconsensus"
	"github.com/gordian-engine/grpbft/tm/tmrotate"
	"github.com/spf13/cobra"
)

func newRotationTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rotation-tx",
		Short: "Build the signed rotation transaction for a given chain head",
		Long: `Build the signed rotation transaction for a given chain head.

This produces exactly what the sealer would place in the next block
if a rotation were due with the given head,
which is useful when debugging the working sealer manager contract.`,
		Args: cobra.NoArgs,
		RunE: runRotationTx,
	}

	flags := cmd.Flags()
	flags.Uint64("group-id", 1, "consensus group ID")
	flags.Uint64("chain-id", 1, "chain ID")
	flags.Uint64("block-number", 0, "number of the latest committed block")
	flags.String("block-hash", "", "hex-encoded hash of the latest committed block")
	flags.Uint64("max-block-limit", 1000, "transaction pool maximum block limit; half is used as the validity window")

	_ = cmd.MarkFlagRequired("block-hash")

	return cmd
}

func runRotationTx(cmd *cobra.Command, _ []string) error {
	log, err := newLogger(cmd)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	groupID, _ := flags.GetUint64("group-id")
	chainID, _ := flags.GetUint64("chain-id")
	number, _ := flags.GetUint64("block-number")
	maxBlockLimit, _ := flags.GetUint64("max-block-limit")
	hashStr, _ := flags.GetString("block-hash")

	hash, err := hex.DecodeString(strings.TrimPrefix(hashStr, "0x"))
	if err != nil {
		return fmt.Errorf("invalid --block-hash: %w", err)
	}

	signer, err := loadSigner(cmd)
	if err != nil {
		return err
	}

	var scheme gvrf.BLS
	id, err := tmrotate.NewIdentity(scheme, 0, signer)
	if err != nil {
		return err
	}
	defer id.Wipe()

	gen := gtx.NewGenerator(gtx.GeneratorConfig{
		GroupID:          groupID,
		ChainID:          chainID,
		BlockLimitWindow: maxBlockLimit / 2,
	})

	head := tmconsensus.ChainHead{Number: number, Hash: hash}
	tx, proof, err := tmrotate.GenerateRotationTx(cmd.Context(), scheme, gen, id, head)
	if err != nil {
		return err
	}

	txHash, err := tx.Hash()
	if err != nil {
		return err
	}
	raw, err := tx.MarshalBinary()
	if err != nil {
		return err
	}
	output, err := scheme.ProofToHash(proof.Proof)
	if err != nil {
		return err
	}

	log.Debug("Built rotation transaction", "height", number, "block_limit", tx.BlockLimit)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "tx_hash: %s\n", txHash.Hex())
	fmt.Fprintf(out, "to: %s\n", tx.To.Hex())
	fmt.Fprintf(out, "method: %s\n", tmrotate.RotateMethodSignature)
	fmt.Fprintf(out, "vrf_public_key: %s\n", id.VRFPublicKey)
	fmt.Fprintf(out, "message: %s\n", proof.Message)
	fmt.Fprintf(out, "proof: %s\n", proof.Proof)
	fmt.Fprintf(out, "vrf_output: %s\n", output)
	fmt.Fprintf(out, "block_limit: %d\n", tx.BlockLimit)
	fmt.Fprintf(out, "raw: %s\n", hex.EncodeToString(raw))
	return nil
}
