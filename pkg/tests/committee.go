package tests

import (
	"sync"

	"github.com/rs/zerolog"

	"gitlab.com/alephledger/creator-go/pkg/config"
	"gitlab.com/alephledger/creator-go/pkg/gomel"
	"gitlab.com/alephledger/creator-go/pkg/logging"
	"gitlab.com/alephledger/creator-go/pkg/notify"
	"gitlab.com/alephledger/creator-go/pkg/services/create"
)

// Committee runs creation services of all the members in a single process.
// Every created unit is delivered to every running member, its creator included,
// as if it was signed, disseminated and added to their dags.
type Committee struct {
	nProc    gomel.NodeCount
	services []*create.Service
	starts   []chan gomel.Round
	outgoing []*notify.Queue
	inbound  []*notify.Queue
	incoming []chan *gomel.Unit
	offline  map[gomel.NodeIndex]bool
	started  []bool
	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	mx       sync.Mutex
	created  [][]*gomel.Unit
	log      zerolog.Logger
}

// NewCommittee prepares a committee of nProc members creating units below maxRound with the given delay schedule.
// Members listed in offline never start, they model crashed processes.
// More offline members than the committee tolerates is allowed but logged, such a committee stalls after round 0.
func NewCommittee(nProc gomel.NodeCount, maxRound gomel.Round, lag config.DelaySchedule, log zerolog.Logger, offline ...gomel.NodeIndex) *Committee {
	c := &Committee{
		nProc:    nProc,
		services: make([]*create.Service, nProc),
		starts:   make([]chan gomel.Round, nProc),
		outgoing: make([]*notify.Queue, nProc),
		inbound:  make([]*notify.Queue, nProc),
		incoming: make([]chan *gomel.Unit, nProc),
		offline:  make(map[gomel.NodeIndex]bool),
		started:  make([]bool, nProc),
		stop:     make(chan struct{}),
		created:  make([][]*gomel.Unit, nProc),
		log:      log.With().Int(logging.Service, logging.NetworkService).Logger(),
	}
	for _, ix := range offline {
		c.offline[ix] = true
	}
	if len(c.offline) > gomel.MaxFaulty(nProc) {
		c.log.Warn().
			Int(logging.Offline, len(c.offline)).
			Int(logging.Size, int(nProc)).
			Msg(logging.TooManyOffline)
	}
	for ix := range c.services {
		pid := gomel.NodeIndex(ix)
		cnf := config.Empty()
		cnf.NodeID = pid
		cnf.NMembers = nProc
		cnf.MaxRound = maxRound
		cnf.CreateLag = lag
		c.starts[ix] = make(chan gomel.Round, 1)
		c.outgoing[ix] = notify.NewQueue()
		c.inbound[ix] = notify.NewQueue()
		c.incoming[ix] = make(chan *gomel.Unit)
		io := create.IO{IncomingParents: c.incoming[ix], OutgoingUnits: &recordingSender{c, pid}}
		c.services[ix] = create.NewService(cnf, io, c.starts[ix], log)
	}
	return c
}

// Start launches all the members that are not offline, each starting from the given round.
func (c *Committee) Start(startingRound gomel.Round) error {
	for ix := range c.services {
		if c.offline[gomel.NodeIndex(ix)] {
			continue
		}
		c.wg.Add(2)
		go c.disseminate(ix)
		go c.deliver(ix)
		if err := c.services[ix].Start(); err != nil {
			return err
		}
		c.started[ix] = true
		c.starts[ix] <- startingRound
		c.log.Info().Uint16(logging.PID, uint16(ix)).Msg(logging.ServiceStarted)
	}
	return nil
}

// Wait blocks until all the running members finish and returns the reasons they finished, indexed by member.
// Members that did not start have nil there.
func (c *Committee) Wait() []error {
	result := make([]error, c.nProc)
	for ix, s := range c.services {
		if c.started[ix] {
			result[ix] = s.Err()
		}
	}
	return result
}

// Stop stops all the members and the dissemination.
func (c *Committee) Stop() {
	c.stopOnce.Do(func() {
		for ix, s := range c.services {
			if c.started[ix] {
				s.Stop()
			}
		}
		close(c.stop)
		pending := 0
		for ix := range c.services {
			pending += c.outgoing[ix].Len() + c.inbound[ix].Len()
			c.outgoing[ix].Close()
			c.inbound[ix].Close()
		}
		c.wg.Wait()
		c.log.Info().Int(logging.Size, pending).Msg(logging.ServiceStopped)
	})
}

// Created returns the units created by the given member, in the order they were created.
func (c *Committee) Created(pid gomel.NodeIndex) []*gomel.Unit {
	c.mx.Lock()
	defer c.mx.Unlock()
	result := make([]*gomel.Unit, len(c.created[pid]))
	copy(result, c.created[pid])
	return result
}

// Units returns all the units created by all the members.
func (c *Committee) Units() []*gomel.Unit {
	c.mx.Lock()
	defer c.mx.Unlock()
	var result []*gomel.Unit
	for _, units := range c.created {
		result = append(result, units...)
	}
	return result
}

// disseminate passes units created by the given member to all the running members.
func (c *Committee) disseminate(ix int) {
	defer c.wg.Done()
	for n := range c.outgoing[ix].Out() {
		for jx := range c.inbound {
			if c.offline[gomel.NodeIndex(jx)] {
				continue
			}
			// a closed queue means the committee is stopping
			c.inbound[jx].Send(n)
		}
	}
}

// deliver feeds the given member with the units disseminated to it.
func (c *Committee) deliver(ix int) {
	defer c.wg.Done()
	for n := range c.inbound[ix].Out() {
		select {
		case c.incoming[ix] <- n.Unit:
		case <-c.stop:
			return
		}
	}
}

// recordingSender remembers the units created by a member before passing them on for dissemination.
type recordingSender struct {
	c   *Committee
	pid gomel.NodeIndex
}

func (rs *recordingSender) Send(n gomel.Notification) error {
	if err := rs.c.outgoing[rs.pid].Send(n); err != nil {
		return err
	}
	rs.c.mx.Lock()
	rs.c.created[rs.pid] = append(rs.c.created[rs.pid], n.Unit)
	rs.c.mx.Unlock()
	return nil
}
