package gomel

import "sort"

// Unit is a vertex of the dag. It is immutable once built.
// A unit of round 0 has no parents. A unit of round r > 0 has parents of round r-1,
// at most one per creator, including the unit of round r-1 made by its own creator.
type Unit struct {
	Hash    Hash
	Round   Round
	Creator NodeIndex
	Parents map[NodeIndex]Hash
}

// Dealing checks if u is a unit of round 0.
func (u *Unit) Dealing() bool {
	return u.Round == 0
}

// ParentCreators returns the creators of parents of u in increasing order.
func (u *Unit) ParentCreators() []NodeIndex {
	result := make([]NodeIndex, 0, len(u.Parents))
	for ix := range u.Parents {
		result = append(result, ix)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// ParentHashes returns hashes of parents of u ordered by their creators.
func (u *Unit) ParentHashes() []Hash {
	creators := u.ParentCreators()
	result := make([]Hash, len(creators))
	for i, ix := range creators {
		result[i] = u.Parents[ix]
	}
	return result
}

// Predecessor returns the hash of the parent of u made by the creator of u.
func (u *Unit) Predecessor() (Hash, bool) {
	h, ok := u.Parents[u.Creator]
	return h, ok
}
