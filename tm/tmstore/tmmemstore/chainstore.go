package tmmemstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/gordian-engine/grpbft/tm/tmstore"
)

// ChainStore is an in-memory [tmstore.ChainStore].
// Blocks must be committed in order starting at the genesis number 0.
type ChainStore struct {
	mu     sync.RWMutex
	hashes [][]byte
}

var _ tmstore.ChainStore = (*ChainStore)(nil)

func NewChainStore() *ChainStore {
	return &ChainStore{}
}

// Commit records hash as the block at number.
// Committing the same hash at an existing number is a no-op.
func (s *ChainStore) Commit(_ context.Context, number uint64, hash []byte) error {
	if len(hash) == 0 {
		return errors.New("cannot commit empty block hash")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if number < uint64(len(s.hashes)) {
		if !bytes.Equal(s.hashes[number], hash) {
			return fmt.Errorf("conflicting hash for committed block %d", number)
		}
		return nil
	}

	if number != uint64(len(s.hashes)) {
		return fmt.Errorf("cannot commit block %d before block %d", number, len(s.hashes))
	}

	s.hashes = append(s.hashes, slices.Clone(hash))
	return nil
}

func (s *ChainStore) CurrentBlockNumber(_ context.Context) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.hashes) == 0 {
		return 0, fmt.Errorf("no genesis block: %w", tmstore.ErrBlockNotFound)
	}
	return uint64(len(s.hashes) - 1), nil
}

func (s *ChainStore) BlockHash(_ context.Context, number uint64) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if number >= uint64(len(s.hashes)) {
		return nil, fmt.Errorf("block %d: %w", number, tmstore.ErrBlockNotFound)
	}
	return slices.Clone(s.hashes[number]), nil
}
