package gtx

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/gordian-engine/grpbft/gcrypto"
)

// Transaction is a message call carried in a block.
//
// BlockLimit is the highest block number at which the transaction
// may still be included; the pool rejects it afterwards.
type Transaction struct {
	Nonce      uint64
	GasPrice   *big.Int
	Gas        uint64
	To         common.Address
	Value      *big.Int
	Data       []byte
	BlockLimit uint64
	ChainID    uint64
	GroupID    uint64

	// Signature is the 65-byte [R || S || V] secp256k1 signature
	// over SigningHash.
	Signature []byte
}

// SigningPayload returns the RLP encoding of every field except the signature.
func (tx *Transaction) SigningPayload() ([]byte, error) {
	return rlp.EncodeToBytes([]any{
		tx.Nonce,
		bigOrZero(tx.GasPrice),
		tx.Gas,
		tx.To,
		bigOrZero(tx.Value),
		tx.Data,
		tx.BlockLimit,
		tx.ChainID,
		tx.GroupID,
	})
}

// SigningHash is keccak256 of [Transaction.SigningPayload].
func (tx *Transaction) SigningHash() (common.Hash, error) {
	p, err := tx.SigningPayload()
	if err != nil {
		return common.Hash{}, err
	}
	return crypto.Keccak256Hash(p), nil
}

// Hash is keccak256 of the full RLP encoding, signature included.
func (tx *Transaction) Hash() (common.Hash, error) {
	b, err := tx.MarshalBinary()
	if err != nil {
		return common.Hash{}, err
	}
	return crypto.Keccak256Hash(b), nil
}

// MarshalBinary returns the RLP encoding of tx.
func (tx *Transaction) MarshalBinary() ([]byte, error) {
	c := *tx
	c.GasPrice = bigOrZero(c.GasPrice)
	c.Value = bigOrZero(c.Value)
	return rlp.EncodeToBytes(&c)
}

// UnmarshalBinary decodes an RLP-encoded transaction into tx.
func (tx *Transaction) UnmarshalBinary(b []byte) error {
	if err := rlp.DecodeBytes(b, tx); err != nil {
		return fmt.Errorf("failed to decode transaction: %w", err)
	}
	return nil
}

// Sender recovers the public key that produced the signature.
func (tx *Transaction) Sender() (gcrypto.Secp256k1PubKey, error) {
	if len(tx.Signature) != crypto.SignatureLength {
		return gcrypto.Secp256k1PubKey{}, errors.New("transaction is not signed")
	}
	h, err := tx.SigningHash()
	if err != nil {
		return gcrypto.Secp256k1PubKey{}, err
	}
	pub, err := crypto.SigToPub(h.Bytes(), tx.Signature)
	if err != nil {
		return gcrypto.Secp256k1PubKey{}, fmt.Errorf("failed to recover sender: %w", err)
	}
	return gcrypto.Secp256k1PubKey(*pub), nil
}

func bigOrZero(b *big.Int) *big.Int {
	if b == nil {
		return new(big.Int)
	}
	return b
}
