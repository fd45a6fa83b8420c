package create

import (
	"github.com/rs/zerolog"

	"gitlab.com/alephledger/creator-go/pkg/config"
	"gitlab.com/alephledger/creator-go/pkg/creator"
	"gitlab.com/alephledger/creator-go/pkg/gomel"
	"gitlab.com/alephledger/creator-go/pkg/logging"
)

// IO groups the channels the creation process communicates through.
type IO struct {
	// IncomingParents delivers all the units added to the local dag, including our own ones.
	IncomingParents <-chan *gomel.Unit
	// OutgoingUnits receives a CreatedPreUnit notification for every created unit.
	OutgoingUnits gomel.NotificationSender
}

// Run creates units for consecutive rounds, starting from the round received on startingRound
// and ending right before conf.MaxRound. Every unit of round r > 0 is built on top of
// more than 2/3 of the units of round r-1, our own one included.
// Units appear on io.OutgoingUnits in the order of their rounds, at most one per round.
//
// Run returns nil after it created units for all the rounds. Otherwise it returns the reason
// it stopped: ConfigError, StartingRoundUnavailable, InboundClosed, OutboundReceiverGone or Cancelled.
// None of them is retried. An invalid conf is reported before waiting for the starting round.
func Run(conf config.Config, io IO, startingRound <-chan gomel.Round, exit <-chan struct{}, log zerolog.Logger) error {
	if err := config.Valid(conf); err != nil {
		log.Error().Err(err).Str("where", "create.Run").Msg(logging.InvalidConfig)
		return err
	}
	cr := creator.New(conf.NodeID, conf.NMembers, log)

	var start gomel.Round
	select {
	case round, ok := <-startingRound:
		if !ok {
			log.Error().Msg(logging.StartingRoundMissing)
			return gomel.NewStartingRoundUnavailable()
		}
		start = round
	case <-exit:
		log.Info().Msg(logging.ExitSignal)
		return gomel.NewCancelled()
	}
	log.Debug().Uint16(logging.Round, uint16(start)).Msg(logging.CreatorStarted)

	for round := start; round < conf.MaxRound; round++ {
		if cr.IsBehind(round) {
			log.Debug().Uint16(logging.Round, uint16(round)).Msg(logging.RoundSkipped)
			continue
		}
		err := WaitUntilReady(round, cr, conf.CreateLag, conf.StallInterval, io.IncomingParents, exit, log)
		if err != nil {
			return err
		}
		if exited(exit) {
			log.Info().Uint16(logging.Round, uint16(round)).Msg(logging.ExitSignal)
			return gomel.NewCancelled()
		}
		// our own unit of this round could have arrived while we were waiting
		if cr.IsBehind(round) {
			log.Debug().Uint16(logging.Round, uint16(round)).Msg(logging.RoundSkipped)
			continue
		}
		unit, parents := cr.CreateUnit(round)
		n := gomel.Notification{
			Type:         gomel.CreatedPreUnit,
			Unit:         unit,
			ParentHashes: parents,
		}
		if err = io.OutgoingUnits.Send(n); err != nil {
			log.Warn().
				Uint16(logging.Round, uint16(round)).
				Stringer("type", n.Type).
				Str("where", "create.Send").
				Msg(logging.NotificationError)
			return gomel.NewOutboundReceiverGone(round, err)
		}
	}
	ev := log.Warn().Uint16(logging.Round, uint16(conf.MaxRound))
	if last, ok := cr.Round(); ok {
		ev = ev.Uint16(logging.Created, uint16(last))
	}
	ev.Msg(logging.RoundCeilingReached)
	return nil
}

func exited(exit <-chan struct{}) bool {
	select {
	case <-exit:
		return true
	default:
		return false
	}
}
