package grpbftcmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gordian-engine/grpbft/gcrypto/gvrf"
	"github.com/gordian-engine/grpbft/tm/tmrotate"
	"github.com/spf13/cobra"
)

func newVRFKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vrf-key",
		Short: "Print the VRF public key derived from the consensus key",
		Long: `Print the VRF public key derived from the consensus key.

The printed key is the one the sealer embeds in its rotation transactions,
and the one the working sealer manager verifies proofs against.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			signer, err := loadSigner(cmd)
			if err != nil {
				return err
			}

			id, err := tmrotate.NewIdentity(gvrf.BLS{}, 0, signer)
			if err != nil {
				return err
			}
			defer id.Wipe()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "address: %s\n", common.BytesToAddress(signer.PubKey().Address()))
			fmt.Fprintf(out, "vrf_public_key: %s\n", id.VRFPublicKey)
			return nil
		},
	}
}
