package tests

import (
	"fmt"
	"io"
	"sort"

	"gitlab.com/alephledger/creator-go/pkg/gomel"
)

// WriteDag writes a description of the given units in the following format:
//
// The 1st line contains an integer N - the number of processes.
// Then there is one line per unit in the following format:
//  C-R [Parents]
// Where
//  (1) C is the Creator of a unit,
//  (2) R is the Round of a unit,
//  (3) Parents is the list of units separated by a single space encoded in the same C-R format
// Units are written round by round, so every unit appears after its parents.
func WriteDag(writer io.Writer, nProc gomel.NodeCount, units []*gomel.Unit) error {
	if _, err := fmt.Fprintf(writer, "%d\n", nProc); err != nil {
		return err
	}
	sorted := make([]*gomel.Unit, len(units))
	copy(sorted, units)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Round != sorted[j].Round {
			return sorted[i].Round < sorted[j].Round
		}
		return sorted[i].Creator < sorted[j].Creator
	})
	for _, u := range sorted {
		if _, err := fmt.Fprintf(writer, "%d-%d", u.Creator, u.Round); err != nil {
			return err
		}
		for _, c := range u.ParentCreators() {
			if _, err := fmt.Fprintf(writer, " %d-%d", c, u.Round-1); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(writer, "\n"); err != nil {
			return err
		}
	}
	return nil
}
