package gtx_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gordian-engine/grpbft/gtx"
	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	t.Parallel()

	m, err := gtx.ParseMethod("rotateWorkingSealer(string,string,string)")
	require.NoError(t, err)

	require.Equal(t, "rotateWorkingSealer", m.Name)
	require.Len(t, m.Inputs, 3)
	require.Equal(t, crypto.Keccak256([]byte("rotateWorkingSealer(string,string,string)"))[:4], m.ID)

	empty, err := gtx.ParseMethod("ping()")
	require.NoError(t, err)
	require.Empty(t, empty.Inputs)
}

func TestParseMethod_invalid(t *testing.T) {
	t.Parallel()

	for _, sig := range []string{
		"",
		"noParens",
		"(string)",
		"f(string",
		"f(notatype)",
		"f(uint)", // Not canonical; uint256 is.
	} {
		_, err := gtx.ParseMethod(sig)
		require.Errorf(t, err, "signature %q", sig)
	}

	require.Panics(t, func() { gtx.MustParseMethod("bad") })
}

func TestMethod_PackUnpack(t *testing.T) {
	t.Parallel()

	m := gtx.MustParseMethod("rotateWorkingSealer(string,string,string)")

	data, err := m.Pack("pk", "message", "proof")
	require.NoError(t, err)
	require.Equal(t, m.ID, data[:4])

	args, err := m.Unpack(data)
	require.NoError(t, err)
	require.Equal(t, []any{"pk", "message", "proof"}, args)

	_, err = m.Pack("too", "few")
	require.Error(t, err)

	other := gtx.MustParseMethod("other(string,string,string)")
	_, err = other.Unpack(data)
	require.ErrorContains(t, err, "does not target")
}
