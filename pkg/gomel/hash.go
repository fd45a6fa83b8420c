package gomel

import "encoding/base64"

// Hash is a type storing hash values, usually used to identify units.
type Hash [HashLength]byte

// Short returns a shortened version of the hash for easy viewing.
func (h *Hash) Short() string {
	return base64.StdEncoding.EncodeToString(h[:8])
}
