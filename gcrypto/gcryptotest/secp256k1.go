package gcryptotest

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gordian-engine/grpbft/gcrypto"
)

var muSigners sync.RWMutex
var generatedSigners []gcrypto.Secp256k1Signer

// DeterministicSecp256k1Signers returns n secp256k1 signers
// whose secrets are derived only from their index.
// Signers are cached across calls.
func DeterministicSecp256k1Signers(n int) []gcrypto.Secp256k1Signer {
	res := optimisticLoadSigners(n)

	if len(res) >= n {
		return res
	}

	muSigners.Lock()
	defer muSigners.Unlock()

	// Another writer may have filled the cache before we acquired the lock.
	for i := len(generatedSigners); i < n; i++ {
		generatedSigners = append(generatedSigners, generateOneSigner(i))
	}

	for i := len(res); i < n; i++ {
		res = append(res, generatedSigners[i])
	}

	return res
}

func optimisticLoadSigners(n int) []gcrypto.Secp256k1Signer {
	res := make([]gcrypto.Secp256k1Signer, 0, n)

	muSigners.RLock()
	defer muSigners.RUnlock()

	for i, s := range generatedSigners {
		if i >= n {
			break
		}

		res = append(res, s)
	}

	return res
}

func generateOneSigner(i int) gcrypto.Secp256k1Signer {
	var secret [gcrypto.Secp256k1SecretLen]byte
	secret[0] = 0x5e // Keep every secret well away from zero.
	binary.BigEndian.PutUint64(secret[24:32], uint64(i))

	priv, err := crypto.ToECDSA(secret[:])
	if err != nil {
		panic(fmt.Errorf("failed to make secp256k1 signer %d: %w", i, err))
	}

	return gcrypto.NewSecp256k1Signer(priv)
}
