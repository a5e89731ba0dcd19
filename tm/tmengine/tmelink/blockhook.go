package tmelink

import (
	"context"

	"github.com/gordian-engine/grpbft/tm/tmconsensus"
)

// BlockHook is called by the sealing pipeline once per block-assembly cycle,
// after the pending block has been filled from the transaction pool
// and before the block is proposed.
//
// This gives an extension an opportunity to add system transactions to the block.
// A false result tells the pipeline that the hook could not complete its work for this block;
// the hook must leave the block unmodified in that case.
type BlockHook interface {
	AfterHandleBlock(context.Context, tmconsensus.PendingBlock) bool
}

// BlockHookFunc allows converting a standalone function
// into a [BlockHook].
type BlockHookFunc func(context.Context, tmconsensus.PendingBlock) bool

// AfterHandleBlock implements [BlockHook].
func (f BlockHookFunc) AfterHandleBlock(ctx context.Context, b tmconsensus.PendingBlock) bool {
	return f(ctx, b)
}

// NopBlockHook is a [BlockHook] that does nothing and always succeeds.
var NopBlockHook BlockHook = BlockHookFunc(func(context.Context, tmconsensus.PendingBlock) bool {
	return true
})
