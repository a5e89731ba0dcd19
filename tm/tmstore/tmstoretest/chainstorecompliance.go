package tmstoretest

import (
	"context"
	"fmt"
	"testing"

	"github.com/gordian-engine/grpbft/tm/tmstore"
	"github.com/stretchr/testify/require"
)

// CommittableChainStore is a [tmstore.ChainStore] that tests can append blocks to.
type CommittableChainStore interface {
	tmstore.ChainStore

	Commit(ctx context.Context, number uint64, hash []byte) error
}

// TestChainStoreCompliance runs the compliance suite against stores from newStore.
func TestChainStoreCompliance(t *testing.T, newStore func(cleanup func(func())) CommittableChainStore) {
	t.Run("empty store has no head", func(t *testing.T) {
		t.Parallel()

		s := newStore(t.Cleanup)
		ctx := context.Background()

		_, err := s.CurrentBlockNumber(ctx)
		require.ErrorIs(t, err, tmstore.ErrBlockNotFound)

		_, err = tmstore.LoadChainHead(ctx, s)
		require.ErrorIs(t, err, tmstore.ErrBlockNotFound)
	})

	t.Run("head follows commits", func(t *testing.T) {
		t.Parallel()

		s := newStore(t.Cleanup)
		ctx := context.Background()

		for i := range uint64(3) {
			require.NoError(t, s.Commit(ctx, i, BlockHash(i)))

			n, err := s.CurrentBlockNumber(ctx)
			require.NoError(t, err)
			require.Equal(t, i, n)

			head, err := tmstore.LoadChainHead(ctx, s)
			require.NoError(t, err)
			require.Equal(t, i, head.Number)
			require.Equal(t, BlockHash(i), head.Hash)
		}

		h, err := s.BlockHash(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, BlockHash(1), h)

		_, err = s.BlockHash(ctx, 3)
		require.ErrorIs(t, err, tmstore.ErrBlockNotFound)
	})

	t.Run("returned hash is not aliased", func(t *testing.T) {
		t.Parallel()

		s := newStore(t.Cleanup)
		ctx := context.Background()

		in := BlockHash(0)
		require.NoError(t, s.Commit(ctx, 0, in))
		in[0] ^= 0xff

		h, err := s.BlockHash(ctx, 0)
		require.NoError(t, err)
		require.Equal(t, BlockHash(0), h)

		h[0] ^= 0xff
		h2, err := s.BlockHash(ctx, 0)
		require.NoError(t, err)
		require.Equal(t, BlockHash(0), h2)
	})

	t.Run("out of order and conflicting commits", func(t *testing.T) {
		t.Parallel()

		s := newStore(t.Cleanup)
		ctx := context.Background()

		require.Error(t, s.Commit(ctx, 1, BlockHash(1)))
		require.NoError(t, s.Commit(ctx, 0, BlockHash(0)))

		// Idempotent.
		require.NoError(t, s.Commit(ctx, 0, BlockHash(0)))
		require.Error(t, s.Commit(ctx, 0, BlockHash(9)))
		require.Error(t, s.Commit(ctx, 1, nil))
	})
}

// BlockHash returns a deterministic 32-byte hash for the given block number.
func BlockHash(n uint64) []byte {
	return fmt.Appendf(nil, "%032x", n)[:32]
}
