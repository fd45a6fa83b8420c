package create

import (
	"time"

	"github.com/rs/zerolog"

	"gitlab.com/alephledger/creator-go/pkg/config"
	"gitlab.com/alephledger/creator-go/pkg/creator"
	"gitlab.com/alephledger/creator-go/pkg/gomel"
	"gitlab.com/alephledger/creator-go/pkg/logging"
)

// WaitUntilReady blocks until the delay for the given round passed and cr is able to create a unit of that round.
// In the meantime every unit appearing on incoming is added to cr. Once ready, the units already
// buffered on incoming are added too, so they can become parents of the new unit.
// If the delay passed but the parents are still missing, a warning is logged every stallInterval.
// A non-positive stallInterval means the default one.
// Returns an InboundClosed error when incoming gets closed and a Cancelled error when exit gets closed.
func WaitUntilReady(round gomel.Round, cr *creator.Creator, createLag config.DelaySchedule, stallInterval time.Duration, incoming <-chan *gomel.Unit, exit <-chan struct{}, log zerolog.Logger) error {
	if stallInterval <= 0 {
		stallInterval = config.DefaultStallInterval * time.Second
	}
	delay := time.NewTimer(createLag(round))
	defer delay.Stop()
	delayPassed := false
	for !delayPassed || !cr.CanCreate(round) {
		select {
		case u, ok := <-incoming:
			if !ok {
				log.Info().Uint16(logging.Round, uint16(round)).Msg(logging.InboundClosed)
				return gomel.NewInboundClosed(round)
			}
			cr.AddUnit(u)
		case <-delay.C:
			if delayPassed {
				log.Warn().
					Uint16(logging.Round, uint16(round)).
					Dur(logging.Delay, stallInterval).
					Msg(logging.CreationStalled)
			} else {
				log.Debug().Uint16(logging.Round, uint16(round)).Msg(logging.DelayPassed)
			}
			delayPassed = true
			delay.Reset(stallInterval)
		case <-exit:
			log.Info().Uint16(logging.Round, uint16(round)).Msg(logging.ExitSignal)
			return gomel.NewCancelled()
		}
	}
	for n := len(incoming); n > 0; n-- {
		u, ok := <-incoming
		if !ok {
			break
		}
		cr.AddUnit(u)
	}
	return nil
}
