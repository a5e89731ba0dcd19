package gtx

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Method is a callable contract method parsed from its canonical signature,
// such as "rotateWorkingSealer(string,string,string)".
type Method struct {
	abi.Method
}

// ParseMethod parses a canonical method signature.
// Argument types must be canonical ABI type names without spaces or names.
func ParseMethod(sig string) (Method, error) {
	open := strings.IndexByte(sig, '(')
	if open <= 0 || !strings.HasSuffix(sig, ")") {
		return Method{}, fmt.Errorf("malformed method signature %q", sig)
	}

	name := sig[:open]
	rawArgs := sig[open+1 : len(sig)-1]

	var inputs abi.Arguments
	if rawArgs != "" {
		for i, ts := range strings.Split(rawArgs, ",") {
			typ, err := abi.NewType(ts, "", nil)
			if err != nil {
				return Method{}, fmt.Errorf("method %q argument %d: %w", name, i, err)
			}
			inputs = append(inputs, abi.Argument{Name: "arg" + strconv.Itoa(i), Type: typ})
		}
	}

	m := abi.NewMethod(name, name, abi.Function, "nonpayable", false, false, inputs, nil)
	if m.Sig != sig {
		return Method{}, fmt.Errorf("method signature %q is not canonical (want %q)", sig, m.Sig)
	}
	return Method{Method: m}, nil
}

// MustParseMethod is like [ParseMethod] but panics on error.
// It is intended for package-level method constants.
func MustParseMethod(sig string) Method {
	m, err := ParseMethod(sig)
	if err != nil {
		panic(err)
	}
	return m
}

// Pack returns the call data for invoking m with args.
func (m Method) Pack(args ...any) ([]byte, error) {
	packed, err := m.Inputs.Pack(args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack arguments for %s: %w", m.Sig, err)
	}

	out := make([]byte, 0, len(m.ID)+len(packed))
	out = append(out, m.ID...)
	return append(out, packed...), nil
}

// Unpack decodes call data produced by [Method.Pack].
// It fails if the selector does not belong to m.
func (m Method) Unpack(data []byte) ([]any, error) {
	if len(data) < len(m.ID) || !bytes.Equal(data[:len(m.ID)], m.ID) {
		return nil, fmt.Errorf("call data does not target %s", m.Sig)
	}
	args, err := m.Inputs.Unpack(data[len(m.ID):])
	if err != nil {
		return nil, fmt.Errorf("failed to unpack arguments for %s: %w", m.Sig, err)
	}
	return args, nil
}
