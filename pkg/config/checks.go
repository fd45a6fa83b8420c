package config

import (
	"strconv"

	"gitlab.com/alephledger/creator-go/pkg/gomel"
)

// Valid checks if a given config is in valid state for creating units.
func Valid(cnf Config) error {
	if cnf.NMembers == 0 {
		return gomel.NewConfigError("NMembers is 0")
	}
	if !cnf.NodeID.InRange(cnf.NMembers) {
		return gomel.NewConfigError("NodeID " + strconv.Itoa(int(cnf.NodeID)) + " is not below NMembers " + strconv.Itoa(int(cnf.NMembers)))
	}
	if cnf.CreateLag == nil {
		return gomel.NewConfigError("missing CreateLag")
	}
	if cnf.StallInterval <= 0 {
		return gomel.NewConfigError("StallInterval has to be positive")
	}
	return nil
}
