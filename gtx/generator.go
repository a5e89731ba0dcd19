package gtx

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gordian-engine/grpbft/gcrypto"
)

// DefaultGas is the gas limit assigned to generated system calls
// when [GeneratorConfig.Gas] is zero.
const DefaultGas = 10_000_000

// GeneratorConfig is the immutable chain context for a [Generator].
type GeneratorConfig struct {
	GroupID uint64
	ChainID uint64

	// BlockLimitWindow is added to the current block number
	// to compute each transaction's BlockLimit.
	BlockLimitWindow uint64

	Gas uint64
}

// Generator produces signed call transactions for one consensus group.
type Generator struct {
	cfg GeneratorConfig
}

func NewGenerator(cfg GeneratorConfig) *Generator {
	if cfg.Gas == 0 {
		cfg.Gas = DefaultGas
	}
	return &Generator{cfg: cfg}
}

// Config returns the generator's configuration.
func (g *Generator) Config() GeneratorConfig {
	return g.cfg
}

// GenerateCall builds a call of method on the contract at to,
// valid from currentNumber until currentNumber plus the configured window,
// and signs it with signer.
func (g *Generator) GenerateCall(
	ctx context.Context,
	method Method,
	currentNumber uint64,
	to common.Address,
	signer gcrypto.Signer,
	args ...any,
) (*Transaction, error) {
	if signer == nil {
		return nil, errors.New("GenerateCall: nil signer")
	}

	data, err := method.Pack(args...)
	if err != nil {
		return nil, err
	}

	tx := &Transaction{
		Nonce:      currentNumber,
		GasPrice:   new(big.Int),
		Gas:        g.cfg.Gas,
		To:         to,
		Value:      new(big.Int),
		Data:       data,
		BlockLimit: saturatingAdd(currentNumber, g.cfg.BlockLimitWindow),
		ChainID:    g.cfg.ChainID,
		GroupID:    g.cfg.GroupID,
	}

	payload, err := tx.SigningPayload()
	if err != nil {
		return nil, fmt.Errorf("failed to encode transaction for signing: %w", err)
	}

	tx.Signature, err = signer.Sign(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}

	return tx, nil
}

func saturatingAdd(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}
