package gomel

// MinimalQuorum is the minimal number of distinct creators among the parents of a unit
// of a positive round, floor(2N/3)+1. Any two such sets of parents intersect on at least
// one honest member as long as at most floor((N-1)/3) members are byzantine.
func MinimalQuorum(n NodeCount) int {
	return 2*int(n)/3 + 1
}

// IsQuorum checks if subsetSize distinct creators form a quorum among n members.
func IsQuorum(n NodeCount, subsetSize int) bool {
	return subsetSize >= MinimalQuorum(n)
}

// MaxFaulty is the number of byzantine members a committee of size n tolerates.
func MaxFaulty(n NodeCount) int {
	if n == 0 {
		return 0
	}
	return (int(n) - 1) / 3
}
