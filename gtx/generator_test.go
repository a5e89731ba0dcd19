package gtx_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gordian-engine/grpbft/gcrypto"
	"github.com/gordian-engine/grpbft/gcrypto/gcryptotest"
	"github.com/gordian-engine/grpbft/gtx"
	"github.com/stretchr/testify/require"
)

var testMethod = gtx.MustParseMethod("rotateWorkingSealer(string,string,string)")

var testAddr = common.HexToAddress("0x0000000000000000000000000000000000001010")

func TestGenerator_GenerateCall(t *testing.T) {
	t.Parallel()

	g := gtx.NewGenerator(gtx.GeneratorConfig{
		GroupID:          3,
		ChainID:          7,
		BlockLimitWindow: 500,
	})
	require.Equal(t, uint64(gtx.DefaultGas), g.Config().Gas)

	signer := gcryptotest.DeterministicSecp256k1Signers(1)[0]

	tx, err := g.GenerateCall(context.Background(), testMethod, 41, testAddr, signer, "pk", "msg", "proof")
	require.NoError(t, err)

	require.Equal(t, uint64(41), tx.Nonce)
	require.Equal(t, uint64(541), tx.BlockLimit)
	require.Equal(t, uint64(3), tx.GroupID)
	require.Equal(t, uint64(7), tx.ChainID)
	require.Equal(t, testAddr, tx.To)
	require.Zero(t, tx.Value.Sign())

	args, err := testMethod.Unpack(tx.Data)
	require.NoError(t, err)
	require.Equal(t, []any{"pk", "msg", "proof"}, args)

	sender, err := tx.Sender()
	require.NoError(t, err)
	require.True(t, signer.PubKey().Equal(sender))
}

func TestGenerator_GenerateCall_deterministic(t *testing.T) {
	t.Parallel()

	g := gtx.NewGenerator(gtx.GeneratorConfig{BlockLimitWindow: 1})
	signer := gcryptotest.DeterministicSecp256k1Signers(1)[0]
	ctx := context.Background()

	tx1, err := g.GenerateCall(ctx, testMethod, 9, testAddr, signer, "a", "b", "c")
	require.NoError(t, err)
	tx2, err := g.GenerateCall(ctx, testMethod, 9, testAddr, signer, "a", "b", "c")
	require.NoError(t, err)

	h1, err := tx1.Hash()
	require.NoError(t, err)
	h2, err := tx2.Hash()
	require.NoError(t, err)
	require.Equal(t, h1, h2)
}

func TestGenerator_GenerateCall_blockLimitSaturates(t *testing.T) {
	t.Parallel()

	g := gtx.NewGenerator(gtx.GeneratorConfig{BlockLimitWindow: 10})
	signer := gcryptotest.DeterministicSecp256k1Signers(1)[0]

	tx, err := g.GenerateCall(context.Background(), testMethod, math.MaxUint64-1, testAddr, signer, "a", "b", "c")
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint64), tx.BlockLimit)
}

type failingSigner struct {
	gcrypto.Secp256k1Signer
}

func (failingSigner) Sign(context.Context, []byte) ([]byte, error) {
	return nil, errors.New("hsm unavailable")
}

func TestGenerator_GenerateCall_errors(t *testing.T) {
	t.Parallel()

	g := gtx.NewGenerator(gtx.GeneratorConfig{})
	ctx := context.Background()
	signer := gcryptotest.DeterministicSecp256k1Signers(1)[0]

	_, err := g.GenerateCall(ctx, testMethod, 1, testAddr, nil, "a", "b", "c")
	require.ErrorContains(t, err, "nil signer")

	_, err = g.GenerateCall(ctx, testMethod, 1, testAddr, signer, "a")
	require.ErrorContains(t, err, "failed to pack")

	_, err = g.GenerateCall(ctx, testMethod, 1, testAddr, failingSigner{signer}, "a", "b", "c")
	require.ErrorContains(t, err, "hsm unavailable")
}
