// Package creator contains the Creator, the state machine deciding when a new unit can be built and what its parents are.
package creator

import (
	"fmt"

	"github.com/rs/zerolog"

	"gitlab.com/alephledger/creator-go/pkg/creating"
	"gitlab.com/alephledger/creator-go/pkg/gomel"
	"gitlab.com/alephledger/creator-go/pkg/logging"
)

// Creator stores the units that were added to the local dag and uses them as parent candidates.
// For every round and every member of the committee it remembers at most one unit, the first one it sees.
// A unit of round r > 0 can be created when our own unit of round r-1 is known and
// more than 2/3 of the committee has a unit of round r-1.
//
// Creator is not safe for concurrent use. It is meant to be owned by a single goroutine.
type Creator struct {
	pid        gomel.NodeIndex
	nProc      gomel.NodeCount
	candidates [][]*gomel.Hash // candidates[round][creator]
	onRound    []int           // number of creators with a candidate on the given round
	created    gomel.Round     // highest round of our own unit, valid if hasCreated
	hasCreated bool
	log        zerolog.Logger
}

// New constructs a creator for the process pid in a committee of nProc members.
func New(pid gomel.NodeIndex, nProc gomel.NodeCount, log zerolog.Logger) *Creator {
	return &Creator{
		pid:   pid,
		nProc: nProc,
		log:   log,
	}
}

// AddUnit records u as a parent candidate for its round, unless some unit of the same creator
// and round is already known. Units of our own process also mark the round as created.
func (cr *Creator) AddUnit(u *gomel.Unit) {
	if !u.Creator.InRange(cr.nProc) {
		cr.log.Warn().
			Uint16(logging.Creator, uint16(u.Creator)).
			Uint16(logging.Round, uint16(u.Round)).
			Msg(logging.UnknownCreator)
		return
	}
	cr.log.Debug().
		Uint16(logging.Creator, uint16(u.Creator)).
		Uint16(logging.Round, uint16(u.Round)).
		Msg(logging.CreatorProcessingUnit)
	if !cr.record(u.Round, u.Creator, u.Hash) {
		cr.log.Debug().
			Uint16(logging.Creator, uint16(u.Creator)).
			Uint16(logging.Round, uint16(u.Round)).
			Str(logging.Hash, u.Hash.Short()).
			Msg(logging.DuplicatedUnit)
	}
}

// CanCreate checks if all the parents needed for a unit of the given round are known.
func (cr *Creator) CanCreate(round gomel.Round) bool {
	if round == 0 {
		return true
	}
	prev := int(round) - 1
	if prev >= len(cr.candidates) || cr.candidates[prev][cr.pid] == nil {
		return false
	}
	return gomel.IsQuorum(cr.nProc, cr.onRound[prev])
}

// IsBehind checks if we already have our own unit of the given round or a higher one.
func (cr *Creator) IsBehind(round gomel.Round) bool {
	return cr.hasCreated && cr.created >= round
}

// Round returns the highest round of our own unit, if there is any.
func (cr *Creator) Round() (gomel.Round, bool) {
	return cr.created, cr.hasCreated
}

// CreateUnit builds our unit of the given round. Its parents are all the known units of the
// previous round, ordered by their creators. The returned slice holds the hashes of parents in that order.
// It panics if CanCreate(round) is false.
func (cr *Creator) CreateUnit(round gomel.Round) (*gomel.Unit, []gomel.Hash) {
	if !cr.CanCreate(round) {
		panic(fmt.Sprintf("creator %d: not enough parents to create a unit of round %d", cr.pid, round))
	}
	parents := make(map[gomel.NodeIndex]gomel.Hash)
	if round > 0 {
		for ix, h := range cr.candidates[round-1] {
			if h != nil {
				parents[gomel.NodeIndex(ix)] = *h
			}
		}
	}
	u := creating.NewUnit(cr.pid, round, parents)
	cr.record(round, cr.pid, u.Hash)
	cr.log.Info().
		Uint16(logging.Round, uint16(round)).
		Int(logging.Size, len(parents)).
		Str(logging.Hash, u.Hash.Short()).
		Msg(logging.UnitCreated)
	return u, u.ParentHashes()
}

// record puts the hash as the candidate of the given creator on the given round.
// Returns false if that slot was already taken.
func (cr *Creator) record(round gomel.Round, creator gomel.NodeIndex, hash gomel.Hash) bool {
	for len(cr.candidates) <= int(round) {
		cr.candidates = append(cr.candidates, make([]*gomel.Hash, cr.nProc))
		cr.onRound = append(cr.onRound, 0)
	}
	if creator == cr.pid && (!cr.hasCreated || round > cr.created) {
		cr.created = round
		cr.hasCreated = true
	}
	if cr.candidates[round][creator] != nil {
		return false
	}
	h := hash
	cr.candidates[round][creator] = &h
	cr.onRound[round]++
	return true
}
