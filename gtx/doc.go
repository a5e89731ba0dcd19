// Package gtx builds signed system call transactions.
//
// Call data follows the Solidity ABI (a 4-byte selector followed by the encoded arguments),
// and transactions are RLP-encoded and signed over keccak256 of their unsigned fields.
package gtx
