package tmrotate

import (
	"errors"
	"fmt"

	"github.com/gordian-engine/grpbft/gtx"
	"github.com/gordian-engine/grpbft/tm/tmconsensus"
)

// InsertMode describes how [InsertRotationTx] placed the transaction.
type InsertMode uint8

const (
	_ InsertMode = iota // Zero value reserved.

	// The block had room and grew by one transaction.
	InsertAppended

	// The block was full and its last transaction was replaced.
	InsertOverwritten
)

func (m InsertMode) String() string {
	switch m {
	case InsertAppended:
		return "appended"
	case InsertOverwritten:
		return "overwritten"
	default:
		return fmt.Sprintf("InsertMode(%d)", uint8(m))
	}
}

// InsertRotationTx places tx in blk.
//
// If blk holds fewer than maxTxs transactions, tx is appended.
// Otherwise the last transaction is replaced with tx
// and blk is told its transaction list changed.
// On error, blk is left unmodified.
func InsertRotationTx(blk tmconsensus.PendingBlock, maxTxs uint64, tx *gtx.Transaction) (InsertMode, error) {
	if tx == nil {
		return 0, errors.New("nil rotation transaction")
	}

	n := blk.TransactionCount()
	if uint64(n) < maxTxs {
		blk.AppendTransaction(tx)
		return InsertAppended, nil
	}

	if n == 0 {
		return 0, fmt.Errorf("block cannot hold any transactions (max %d)", maxTxs)
	}

	if err := blk.ReplaceTransaction(n-1, tx); err != nil {
		return 0, fmt.Errorf("failed to overwrite last transaction: %w", err)
	}
	blk.NoteChange()
	return InsertOverwritten, nil
}
