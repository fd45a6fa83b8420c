package config

import (
	"time"

	"gitlab.com/alephledger/creator-go/pkg/gomel"
)

// Config is everything the unit creation process needs to know to start.
type Config struct {
	// NodeID is the index of this process in the committee.
	NodeID gomel.NodeIndex
	// NMembers is the size of the committee.
	NMembers gomel.NodeCount
	// CreateLag governs how long to wait before creating a unit of a given round.
	CreateLag DelaySchedule
	// MaxRound is the first round for which no unit is created.
	MaxRound gomel.Round
	// StallInterval is how often to complain when the delay passed but a unit still cannot be created.
	StallInterval time.Duration
}

// Empty returns a configuration with the default stall interval and no delay.
// The committee parameters still need to be filled in.
func Empty() Config {
	return Config{
		CreateLag:     ZeroDelay,
		StallInterval: DefaultStallInterval * time.Second,
	}
}

// New translates params into a configuration.
func New(params Params) (Config, error) {
	lag, err := NewDelaySchedule(params)
	if err != nil {
		return Config{}, err
	}
	cnf := Config{
		NodeID:        gomel.NodeIndex(params.NodeID),
		NMembers:      gomel.NodeCount(params.NMembers),
		CreateLag:     lag,
		MaxRound:      gomel.Round(params.MaxRound),
		StallInterval: time.Duration(params.StallInterval) * time.Second,
	}
	return cnf, Valid(cnf)
}
