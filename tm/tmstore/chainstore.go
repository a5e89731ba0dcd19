package tmstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/gordian-engine/grpbft/tm/tmconsensus"
)

// ChainStore reads committed blocks.
type ChainStore interface {
	// CurrentBlockNumber returns the number of the latest committed block.
	CurrentBlockNumber(ctx context.Context) (uint64, error)

	// BlockHash returns the hash of the committed block at the given number.
	// If no such block exists, the returned error wraps [ErrBlockNotFound].
	BlockHash(ctx context.Context, number uint64) ([]byte, error)
}

// ErrBlockNotFound is returned from [ChainStore.BlockHash]
// when no block is committed at the requested number.
var ErrBlockNotFound = errors.New("block not found")

// LoadChainHead reads the latest committed block number and its hash.
func LoadChainHead(ctx context.Context, s ChainStore) (tmconsensus.ChainHead, error) {
	n, err := s.CurrentBlockNumber(ctx)
	if err != nil {
		return tmconsensus.ChainHead{}, fmt.Errorf("failed to load current block number: %w", err)
	}

	h, err := s.BlockHash(ctx, n)
	if err != nil {
		return tmconsensus.ChainHead{}, fmt.Errorf("failed to load hash of block %d: %w", n, err)
	}

	return tmconsensus.ChainHead{Number: n, Hash: h}, nil
}
