// Package creating builds new units out of the chosen parents.
package creating

import (
	"bytes"
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"gitlab.com/alephledger/creator-go/pkg/gomel"
)

// NewUnit constructs a unit of the given round, created by creator, with the given parents.
// The hash depends only on the creator, the round and the parents, so every process
// computing it from the same data obtains the same value.
func NewUnit(creator gomel.NodeIndex, round gomel.Round, parents map[gomel.NodeIndex]gomel.Hash) *gomel.Unit {
	u := &gomel.Unit{
		Round:   round,
		Creator: creator,
		Parents: parents,
	}
	u.Hash = ComputeHash(u)
	return u
}

// ComputeHash returns the hash of the unit computed from its creator, round and parents.
func ComputeHash(u *gomel.Unit) gomel.Hash {
	var (
		result gomel.Hash
		data   bytes.Buffer
	)
	buf := make([]byte, 2)
	binary.LittleEndian.PutUint16(buf, uint16(u.Creator))
	data.Write(buf)
	binary.LittleEndian.PutUint16(buf, uint16(u.Round))
	data.Write(buf)
	for _, ix := range u.ParentCreators() {
		binary.LittleEndian.PutUint16(buf, uint16(ix))
		data.Write(buf)
		h := u.Parents[ix]
		data.Write(h[:])
	}
	sha3.ShakeSum128(result[:], data.Bytes())
	return result
}
