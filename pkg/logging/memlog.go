package logging

import (
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"gitlab.com/alephledger/creator-go/pkg/gomel"
)

type service struct {
	interval time.Duration
	ticker   *time.Ticker
	exitChan chan struct{}
	log      zerolog.Logger
	wg       sync.WaitGroup
}

// NewService constructs a new service that logs current total memory consumption every n seconds.
// For n equal to 0 the service does nothing.
func NewService(n int, log zerolog.Logger) gomel.Service {
	return &service{
		interval: time.Duration(n) * time.Second,
		exitChan: make(chan struct{}),
		log:      log.With().Int(Service, MemLogService).Logger(),
	}
}

func (s *service) Start() error {
	var ticker <-chan time.Time
	if s.interval > 0 {
		s.ticker = time.NewTicker(s.interval)
		ticker = s.ticker.C
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		var stats runtime.MemStats
		for {
			select {
			case <-s.exitChan:
				return
			case <-ticker:
				runtime.ReadMemStats(&stats)
				s.log.Info().Uint64(Memory, stats.Sys).Uint64(Size, stats.HeapAlloc).Msg(MemoryUsage)
			}
		}
	}()
	s.log.Info().Msg(ServiceStarted)
	return nil
}

func (s *service) Stop() {
	close(s.exitChan)
	s.wg.Wait()
	if s.ticker != nil {
		s.ticker.Stop()
	}
	s.log.Info().Msg(ServiceStopped)
}
