package tmconsensustest

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gordian-engine/grpbft/gtx"
	"github.com/gordian-engine/grpbft/tm/tmconsensus"
)

// PendingBlock is an in-memory [tmconsensus.PendingBlock]
// that caches a transaction root the way a real block does.
type PendingBlock struct {
	Txs []*gtx.Transaction

	// Changes counts calls to NoteChange.
	Changes int

	root      common.Hash
	rootValid bool
}

var _ tmconsensus.PendingBlock = (*PendingBlock)(nil)

// NewPendingBlock returns a block holding n ordinary transactions.
func NewPendingBlock(n int) *PendingBlock {
	return &PendingBlock{Txs: OrdinaryTransactions(n)}
}

func (b *PendingBlock) TransactionCount() int { return len(b.Txs) }

func (b *PendingBlock) AppendTransaction(tx *gtx.Transaction) {
	b.Txs = append(b.Txs, tx)
	b.rootValid = false
}

func (b *PendingBlock) ReplaceTransaction(i int, tx *gtx.Transaction) error {
	if i < 0 || i >= len(b.Txs) {
		return fmt.Errorf("transaction index %d out of range [0, %d)", i, len(b.Txs))
	}
	b.Txs[i] = tx
	return nil
}

func (b *PendingBlock) NoteChange() {
	b.Changes++
	b.rootValid = false
}

// TxRoot returns the cached digest over the transaction hashes,
// computing it if the cache was invalidated.
// A ReplaceTransaction without a following NoteChange leaves the cache stale.
func (b *PendingBlock) TxRoot() common.Hash {
	if b.rootValid {
		return b.root
	}
	b.root = ComputeTxRoot(b.Txs)
	b.rootValid = true
	return b.root
}

// ComputeTxRoot is the uncached digest used by [PendingBlock.TxRoot].
func ComputeTxRoot(txs []*gtx.Transaction) common.Hash {
	hashes := make([][]byte, len(txs))
	for i, tx := range txs {
		h, err := tx.Hash()
		if err != nil {
			panic(fmt.Errorf("failed to hash transaction %d: %w", i, err))
		}
		hashes[i] = h.Bytes()
	}
	return crypto.Keccak256Hash(hashes...)
}

// OrdinaryTransactions returns n distinct unsigned transfer transactions.
func OrdinaryTransactions(n int) []*gtx.Transaction {
	out := make([]*gtx.Transaction, n)
	for i := range out {
		out[i] = &gtx.Transaction{
			Nonce:    uint64(i),
			GasPrice: new(big.Int),
			Gas:      21_000,
			To:       common.BigToAddress(big.NewInt(int64(i + 1))),
			Value:    big.NewInt(1),
		}
	}
	return out
}
