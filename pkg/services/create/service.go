// Package create implements the service creating new units.
package create

import (
	"sync"

	"github.com/rs/zerolog"

	"gitlab.com/alephledger/creator-go/pkg/config"
	"gitlab.com/alephledger/creator-go/pkg/gomel"
	"gitlab.com/alephledger/creator-go/pkg/logging"
)

// Service runs the unit creation process in its own goroutine.
type Service struct {
	conf          config.Config
	io            IO
	startingRound <-chan gomel.Round
	exitChan      chan struct{}
	done          chan struct{}
	exitOnce      sync.Once
	err           error
	log           zerolog.Logger
}

// NewService constructs a creating service with the given configuration.
// The service creates units starting from the round that appears on startingRound.
func NewService(conf config.Config, io IO, startingRound <-chan gomel.Round, log zerolog.Logger) *Service {
	return &Service{
		conf:          conf,
		io:            io,
		startingRound: startingRound,
		exitChan:      make(chan struct{}),
		done:          make(chan struct{}),
		log:           log.With().Int(logging.Service, logging.CreateService).Uint16(logging.PID, uint16(conf.NodeID)).Logger(),
	}
}

// Start checks the configuration and launches the creation process.
func (s *Service) Start() error {
	if err := config.Valid(s.conf); err != nil {
		return err
	}
	go func() {
		defer close(s.done)
		s.err = Run(s.conf, s.io, s.startingRound, s.exitChan, s.log)
		s.log.Info().Msg(logging.CreatorFinished)
	}()
	s.log.Info().Msg(logging.ServiceStarted)
	return nil
}

// Stop asks the creation process to exit and waits until it does. It must be called after a successful Start.
func (s *Service) Stop() {
	s.exitOnce.Do(func() { close(s.exitChan) })
	<-s.done
	s.log.Info().Msg(logging.ServiceStopped)
}

// Done returns a channel that gets closed when the creation process finishes.
func (s *Service) Done() <-chan struct{} {
	return s.done
}

// Err waits for the creation process to finish and returns the reason it did: nil if all the rounds were created.
func (s *Service) Err() error {
	<-s.done
	return s.err
}
