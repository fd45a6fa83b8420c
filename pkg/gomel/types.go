// Package gomel defines the vocabulary shared by all the components that take part in creating units.
//
// The main notions defined in this package are:
//  1. The unit, a vertex of the dag produced by a single process in a single round.
//  2. The notification emitted whenever this process creates a new unit.
//  3. The quorum arithmetic every process relies on when picking parents.
//  4. The errors that terminate the creation task.
package gomel

// HashLength is the size of hashes of units.
const HashLength = 32

// NodeIndex identifies a member of the committee. Valid values are in [0, NodeCount).
type NodeIndex uint16

// NodeCount is the number of members of the committee.
type NodeCount uint16

// Round is the layer of the dag a unit belongs to.
type Round uint16

// InRange checks if the index points to a member of a committee of the given size.
func (ix NodeIndex) InRange(n NodeCount) bool {
	return uint16(ix) < uint16(n)
}
