package tmconsensus

import (
	"encoding/hex"

	"github.com/gordian-engine/grpbft/gtx"
)

// ChainHead is a snapshot of the latest committed block.
type ChainHead struct {
	Number uint64
	Hash   []byte
}

// HexHash returns the lowercase hex encoding of the head's hash, without a 0x prefix.
func (h ChainHead) HexHash() string {
	return hex.EncodeToString(h.Hash)
}

// PendingBlock is the block under construction by the sealing pipeline.
//
// The sealing goroutine owns the pending block for the duration of a round;
// implementations need not be safe for concurrent use.
type PendingBlock interface {
	TransactionCount() int

	// AppendTransaction adds tx after the last transaction
	// and refreshes any cached values derived from the transaction list.
	AppendTransaction(tx *gtx.Transaction)

	// ReplaceTransaction overwrites the transaction at index i.
	// It does not refresh derived values; callers must follow with NoteChange.
	// An out of range index returns an error without modifying the block.
	ReplaceTransaction(i int, tx *gtx.Transaction) error

	// NoteChange invalidates cached values derived from the transaction list,
	// such as the transaction root.
	NoteChange()
}
