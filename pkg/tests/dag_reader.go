package tests

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"gitlab.com/alephledger/creator-go/pkg/creating"
	"gitlab.com/alephledger/creator-go/pkg/gomel"
)

type unitID struct {
	creator gomel.NodeIndex
	round   gomel.Round
}

func parseID(text string) (unitID, error) {
	var c, r uint16
	if _, err := fmt.Sscanf(text, "%d-%d", &c, &r); err != nil {
		return unitID{}, err
	}
	return unitID{gomel.NodeIndex(c), gomel.Round(r)}, nil
}

// ReadDag reads a dag description in the format produced by WriteDag.
// Lines starting with // are comments. Every unit above round 0 has to list the previous unit of its creator.
// Returns the number of processes and the units in the order they were read.
func ReadDag(reader io.Reader) (gomel.NodeCount, []*gomel.Unit, error) {
	scanner := bufio.NewScanner(reader)
	if !scanner.Scan() {
		return 0, nil, fmt.Errorf("missing number of processes")
	}
	var n uint16
	if _, err := fmt.Sscanf(scanner.Text(), "%d", &n); err != nil {
		return 0, nil, err
	}

	known := make(map[unitID]gomel.Hash)
	var units []*gomel.Unit
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		// skip comments
		if text == "" || strings.HasPrefix(text, "//") {
			continue
		}
		fields := strings.Fields(text)
		id, err := parseID(fields[0])
		if err != nil {
			return 0, nil, err
		}
		if !id.creator.InRange(gomel.NodeCount(n)) {
			return 0, nil, fmt.Errorf("unit %s: creator outside the committee", fields[0])
		}
		if _, ok := known[id]; ok {
			return 0, nil, fmt.Errorf("unit %s: duplicated", fields[0])
		}
		parents := make(map[gomel.NodeIndex]gomel.Hash)
		for _, f := range fields[1:] {
			pid, err := parseID(f)
			if err != nil {
				return 0, nil, err
			}
			if pid.round+1 != id.round {
				return 0, nil, fmt.Errorf("unit %s: parent %s from a wrong round", fields[0], f)
			}
			h, ok := known[pid]
			if !ok {
				return 0, nil, fmt.Errorf("unit %s: unknown parent %s", fields[0], f)
			}
			parents[pid.creator] = h
		}
		u := creating.NewUnit(id.creator, id.round, parents)
		if _, ok := u.Predecessor(); !u.Dealing() && !ok {
			return 0, nil, fmt.Errorf("unit %s: missing the parent made by its creator", fields[0])
		}
		known[id] = u.Hash
		units = append(units, u)
	}
	return gomel.NodeCount(n), units, scanner.Err()
}
