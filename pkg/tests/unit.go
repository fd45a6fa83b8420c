// Package tests contains helpers for testing unit creation: unit builders, a text format for dags and an in-process committee.
package tests

import (
	"gitlab.com/alephledger/creator-go/pkg/creating"
	"gitlab.com/alephledger/creator-go/pkg/gomel"
)

// DealingUnits returns dealing units of all nProc members, indexed by creator.
func DealingUnits(nProc gomel.NodeCount) []*gomel.Unit {
	result := make([]*gomel.Unit, nProc)
	for ix := range result {
		result[ix] = creating.NewUnit(gomel.NodeIndex(ix), 0, map[gomel.NodeIndex]gomel.Hash{})
	}
	return result
}

// NextRound returns units of all nProc members built on top of all the given units.
// The given units must be of the same round and indexed by creator.
func NextRound(prev []*gomel.Unit) []*gomel.Unit {
	result := make([]*gomel.Unit, len(prev))
	for ix := range result {
		parents := make(map[gomel.NodeIndex]gomel.Hash, len(prev))
		for _, u := range prev {
			parents[u.Creator] = u.Hash
		}
		result[ix] = creating.NewUnit(gomel.NodeIndex(ix), prev[0].Round+1, parents)
	}
	return result
}

// Rounds returns a dag in which every member created a unit on each of the given number of rounds,
// using all the units of the previous round as parents. The result is indexed by round and then creator.
func Rounds(nProc gomel.NodeCount, rounds int) [][]*gomel.Unit {
	if rounds == 0 {
		return nil
	}
	result := [][]*gomel.Unit{DealingUnits(nProc)}
	for r := 1; r < rounds; r++ {
		result = append(result, NextRound(result[r-1]))
	}
	return result
}
