package grpbftcmd

import (
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/gordian-engine/grpbft/gcrypto"
	"github.com/spf13/cobra"
)

// consensusKeyEnv is read when --consensus-key is not given.
const consensusKeyEnv = "GRPBFT_CONSENSUS_KEY"

// NewRootCmd returns the root grpbft command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "grpbft",
		Short: "Operator tooling for VRF-based working sealer rotation",

		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String(
		"consensus-key", "",
		"hex-encoded secp256k1 consensus secret (default $"+consensusKeyEnv+")",
	)
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, or error")

	rootCmd.AddCommand(
		newVRFKeyCmd(),
		newRotationTxCmd(),
	)

	return rootCmd
}

func loadSigner(cmd *cobra.Command) (gcrypto.Secp256k1Signer, error) {
	key, err := cmd.Flags().GetString("consensus-key")
	if err != nil {
		return gcrypto.Secp256k1Signer{}, err
	}
	if key == "" {
		key = os.Getenv(consensusKeyEnv)
	}
	if key == "" {
		return gcrypto.Secp256k1Signer{}, errors.New("consensus key required: set --consensus-key or $" + consensusKeyEnv)
	}
	return gcrypto.NewSecp256k1SignerFromHex(strings.TrimSpace(key))
}

func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	lvlStr, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return nil, err
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(lvlStr)); err != nil {
		return nil, err
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl})), nil
}
