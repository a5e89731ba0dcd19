package tmrotate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/gordian-engine/grpbft/gcrypto/gvrf"
	"github.com/gordian-engine/grpbft/gtx"
	"github.com/gordian-engine/grpbft/tm/tmconsensus"
	"github.com/gordian-engine/grpbft/tm/tmengine/tmelink"
	"github.com/gordian-engine/grpbft/tm/tmstore"
)

var (
	// ErrRotationUnsupported is returned from [NewSealer]
	// when the engine has no rotation capability.
	ErrRotationUnsupported = errors.New("engine does not support working sealer rotation")

	// ErrProofGeneration wraps VRF proof failures during a round.
	ErrProofGeneration = errors.New("failed to generate VRF proof")
)

// SealerConfig is the configuration for [NewSealer].
type SealerConfig struct {
	// Log defaults to [slog.Default] when nil.
	Log *slog.Logger

	// Engine must be initialized and must support rotation.
	Engine tmconsensus.Engine

	ChainStore tmstore.ChainStore
	TxPool     tmconsensus.TxPool

	// BaseCapacity is the capacity policy of the plain PBFT sealer,
	// consulted by [Sealer.MaxTxsSizeSealedInnerBlock].
	BaseCapacity tmelink.CapacityPolicy

	// VRF defaults to [gvrf.BLS] when nil.
	VRF gvrf.Scheme

	ChainID uint64

	// Metrics is optional.
	Metrics *Metrics
}

// Sealer is the rotation extension of a PBFT sealer for one consensus group.
//
// Its methods are called from the group's sealing goroutine
// and are not safe for concurrent use.
type Sealer struct {
	log  *slog.Logger
	name string

	group  string
	engine tmconsensus.RotationEngine
	store  tmstore.ChainStore
	base   tmelink.CapacityPolicy
	vrf    gvrf.Scheme
	gen    *gtx.Generator
	id     *Identity
	m      *Metrics
}

var (
	_ tmelink.BlockHook      = (*Sealer)(nil)
	_ tmelink.CapacityPolicy = (*Sealer)(nil)
)

// NewSealer initializes the rotation extension.
//
// Any returned error means the node must not start sealing:
// other validators could not verify this node's proofs.
func NewSealer(cfg SealerConfig) (*Sealer, error) {
	if cfg.Engine == nil {
		return nil, errors.New("NewSealer: Engine required")
	}
	if cfg.ChainStore == nil {
		return nil, errors.New("NewSealer: ChainStore required")
	}
	if cfg.TxPool == nil {
		return nil, errors.New("NewSealer: TxPool required")
	}
	if cfg.BaseCapacity == nil {
		return nil, errors.New("NewSealer: BaseCapacity required")
	}

	re, ok := cfg.Engine.RotationEngine()
	if !ok || re == nil {
		return nil, ErrRotationUnsupported
	}

	log := cfg.Log
	if log == nil {
		log = slog.Default()
	}
	scheme := cfg.VRF
	if scheme == nil {
		scheme = gvrf.BLS{}
	}

	group := strconv.FormatUint(re.GroupID(), 10)
	name := "rPBFTSeal-" + group
	log = log.With("sealer", name)

	gen := gtx.NewGenerator(gtx.GeneratorConfig{
		GroupID:          re.GroupID(),
		ChainID:          cfg.ChainID,
		BlockLimitWindow: cfg.TxPool.MaxBlockLimit() / 2,
	})

	id, err := NewIdentity(scheme, re.NodeIndex(), re.Signer())
	if err != nil {
		log.Error("Failed to initialize the VRF public key", "err", err)
		return nil, err
	}

	log.Info("Initialized rotating sealer", "vrf_pub_key", id.VRFPublicKey)

	return &Sealer{
		log:  log,
		name: name,

		group:  group,
		engine: re,
		store:  cfg.ChainStore,
		base:   cfg.BaseCapacity,
		vrf:    scheme,
		gen:    gen,
		id:     id,
		m:      cfg.Metrics,
	}, nil
}

// Name identifies the sealer in logs, as "rPBFTSeal-<group>".
func (s *Sealer) Name() string {
	return s.name
}

// VRFPublicKey returns the hex-encoded VRF public key derived at initialization.
func (s *Sealer) VRFPublicKey() string {
	return s.id.VRFPublicKey
}

// GeneratorConfig returns the configuration of the rotation transaction generator.
func (s *Sealer) GeneratorConfig() gtx.GeneratorConfig {
	return s.gen.Config()
}

// Close wipes the retained VRF secret.
// Rounds after Close fail without modifying the block.
func (s *Sealer) Close() {
	s.id.Wipe()
}

// AfterHandleBlock implements [tmelink.BlockHook].
//
// If the engine requires a rotation, it places a rotation transaction in blk
// and reports whether that succeeded.
// Failures are logged and leave blk unmodified.
func (s *Sealer) AfterHandleBlock(ctx context.Context, blk tmconsensus.PendingBlock) bool {
	if !s.engine.ShouldRotateSealers() {
		s.m.round(s.group, "skipped")
		return true
	}

	if err := s.generateTransactionForRotating(ctx, blk); err != nil {
		var se stageError
		stage := "unknown"
		if errors.As(err, &se) {
			stage = se.stage
		}

		if errors.Is(err, ErrProofGeneration) {
			s.log.Warn("Failed to generate rotation transaction", "reason", err)
		} else {
			s.log.Error("Failed to generate rotation transaction", "stage", stage, "reason", err)
		}

		s.m.failure(s.group, stage)
		s.m.round(s.group, "failed")
		return false
	}

	s.m.round(s.group, "rotated")
	return true
}

func (s *Sealer) generateTransactionForRotating(ctx context.Context, blk tmconsensus.PendingBlock) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = stageError{stage: "panic", err: fmt.Errorf("panic while generating rotation transaction: %v", r)}
		}
	}()

	if err := ctx.Err(); err != nil {
		return stageError{stage: "head", err: err}
	}

	head, err := tmstore.LoadChainHead(ctx, s.store)
	if err != nil {
		return stageError{stage: "head", err: err}
	}

	tx, _, err := GenerateRotationTx(ctx, s.vrf, s.gen, s.id, head)
	if err != nil {
		stage := "build"
		if errors.Is(err, ErrProofGeneration) {
			stage = "proof"
		}
		return stageError{stage: stage, err: err}
	}

	// Insertion is the only step that touches blk, so it must stay last.
	mode, err := InsertRotationTx(blk, s.engine.MaxBlockTransactions(), tx)
	if err != nil {
		return stageError{stage: "insert", err: err}
	}
	s.m.insertion(s.group, mode)

	if s.log.Enabled(ctx, slog.LevelDebug) {
		s.log.Debug(
			"Generated rotation transaction",
			"node_idx", s.id.NodeIndex,
			"height", head.Number,
			"hash", abridged(head.HexHash()),
			"node_id", abridged(fmt.Sprintf("%x", s.id.Signer.PubKey().PubKeyBytes())),
			"insert", mode,
		)
	}

	return nil
}

// MaxTxsSizeSealedInnerBlock implements [tmelink.CapacityPolicy].
//
// While a rotation is pending, it keeps one slot of the hard cap free
// for the rotation transaction.
func (s *Sealer) MaxTxsSizeSealedInnerBlock() uint64 {
	base := s.base.MaxTxsSizeSealedInnerBlock()
	if !s.engine.ShouldRotateSealers() {
		return base
	}

	maxTxs := s.engine.MaxBlockTransactions()
	if base >= maxTxs {
		if maxTxs == 0 {
			return 0
		}
		return maxTxs - 1
	}
	return base
}

type stageError struct {
	stage string
	err   error
}

func (e stageError) Error() string {
	return e.err.Error()
}

func (e stageError) Unwrap() error {
	return e.err
}

func abridged(s string) string {
	if len(s) <= 8 {
		return s
	}
	return s[:8] + "…"
}
