package create_test

import (
	"strings"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"

	"gitlab.com/alephledger/creator-go/pkg/config"
	"gitlab.com/alephledger/creator-go/pkg/gomel"
	"gitlab.com/alephledger/creator-go/pkg/logging"
	. "gitlab.com/alephledger/creator-go/pkg/services/create"
	"gitlab.com/alephledger/creator-go/pkg/tests"
)

var _ = Describe("Run", func() {
	var (
		cnf      config.Config
		incoming chan *gomel.Unit
		exit     chan struct{}
		rec      *recorder
		io       IO
		log      zerolog.Logger
	)

	run := func(start <-chan gomel.Round) <-chan error {
		done := make(chan error, 1)
		go func() {
			done <- Run(cnf, io, start, exit, log)
		}()
		return done
	}

	BeforeEach(func() {
		cnf = config.Empty()
		cnf.NodeID = 0
		cnf.NMembers = 4
		cnf.MaxRound = 2
		incoming = make(chan *gomel.Unit, 20)
		exit = make(chan struct{})
		rec = &recorder{}
		io = IO{IncomingParents: incoming, OutgoingUnits: rec}
		log = zerolog.Nop()
	})

	Describe("with all the dealing units of other members known", func() {
		It("should create a dealing unit and then a unit with all dealing units as parents", func() {
			dealing := tests.DealingUnits(cnf.NMembers)
			for _, u := range dealing[1:] {
				incoming <- u
			}
			var err error
			Eventually(run(startingRound(0))).Should(Receive(&err))
			Expect(err).NotTo(HaveOccurred())

			sent := rec.notifications()
			Expect(sent).To(HaveLen(2))

			Expect(sent[0].Type).To(Equal(gomel.CreatedPreUnit))
			Expect(sent[0].Unit.Round).To(Equal(gomel.Round(0)))
			Expect(sent[0].Unit.Creator).To(Equal(gomel.NodeIndex(0)))
			Expect(sent[0].Unit.Parents).To(BeEmpty())
			Expect(sent[0].ParentHashes).To(BeEmpty())

			Expect(sent[1].Unit.Round).To(Equal(gomel.Round(1)))
			Expect(sent[1].ParentHashes).To(Equal([]gomel.Hash{
				sent[0].Unit.Hash, dealing[1].Hash, dealing[2].Hash, dealing[3].Hash,
			}))
			Expect(sent[1].Unit.Parents).To(HaveKeyWithValue(gomel.NodeIndex(0), sent[0].Unit.Hash))
		})
	})

	Describe("with the inbound channel closed before the delay passed", func() {
		It("should create nothing and report InboundClosed", func() {
			cnf.CreateLag = config.ConstantDelay(time.Hour)
			close(incoming)
			var err error
			Eventually(run(startingRound(0))).Should(Receive(&err))
			Expect(err).To(BeAssignableToTypeOf(&gomel.InboundClosed{}))
			Expect(rec.notifications()).To(BeEmpty())
		})
	})

	Describe("with the starting round equal to the maximal round", func() {
		It("should finish cleanly without waiting", func() {
			var out syncBuffer
			log = zerolog.New(&out)
			cnf.CreateLag = config.ConstantDelay(time.Hour)
			io.IncomingParents = nil
			var err error
			Eventually(run(startingRound(cnf.MaxRound))).Should(Receive(&err))
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.notifications()).To(BeEmpty())
			Expect(out.String()).To(ContainSubstring(logging.RoundCeilingReached))
		})
	})

	Describe("reaching the maximal round", func() {
		It("should report the last created round", func() {
			var out syncBuffer
			log = zerolog.New(&out)
			cnf.MaxRound = 1
			var err error
			Eventually(run(startingRound(0))).Should(Receive(&err))
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.rounds()).To(Equal([]gomel.Round{0}))
			Expect(out.String()).To(ContainSubstring(`"` + logging.Created + `":0,"message":"` + logging.RoundCeilingReached + `"`))
		})
	})

	Describe("without the starting round", func() {
		It("should report StartingRoundUnavailable", func() {
			start := make(chan gomel.Round)
			close(start)
			var err error
			Eventually(run(start)).Should(Receive(&err))
			Expect(err).To(BeAssignableToTypeOf(&gomel.StartingRoundUnavailable{}))
			Expect(rec.notifications()).To(BeEmpty())
		})

		It("should exit when asked to while waiting for it", func() {
			done := run(make(chan gomel.Round))
			Consistently(done).ShouldNot(Receive())
			close(exit)
			Eventually(done).Should(Receive(BeAssignableToTypeOf(&gomel.Cancelled{})))
		})
	})

	Describe("receiving the exit signal while waiting for parents", func() {
		It("should not create anything afterwards", func() {
			cnf.MaxRound = 10
			done := run(startingRound(0))
			Eventually(rec.rounds).Should(Equal([]gomel.Round{0}))
			Consistently(done).ShouldNot(Receive())
			close(exit)
			Eventually(done).Should(Receive(BeAssignableToTypeOf(&gomel.Cancelled{})))
			for _, u := range tests.DealingUnits(cnf.NMembers)[1:] {
				incoming <- u
			}
			Consistently(rec.rounds).Should(Equal([]gomel.Round{0}))
		})
	})

	Describe("when the receiver of notifications is gone", func() {
		It("should report OutboundReceiverGone", func() {
			var out syncBuffer
			log = zerolog.New(&out)
			rec.gone = true
			var err error
			Eventually(run(startingRound(0))).Should(Receive(&err))
			Expect(err).To(BeAssignableToTypeOf(&gomel.OutboundReceiverGone{}))
			Expect(err.(*gomel.OutboundReceiverGone).Round).To(Equal(gomel.Round(0)))
			Expect(out.String()).To(ContainSubstring(`"type":"CreatedPreUnit"`))
		})
	})

	Describe("resuming after units of ours were already created", func() {
		It("should skip the rounds we are behind on", func() {
			cnf.MaxRound = 3
			for _, round := range tests.Rounds(cnf.NMembers, 2) {
				for _, u := range round {
					incoming <- u
				}
			}
			var err error
			Eventually(run(startingRound(0))).Should(Receive(&err))
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.rounds()).To(Equal([]gomel.Round{2}))
			Expect(rec.notifications()[0].ParentHashes).To(HaveLen(int(cnf.NMembers)))
		})

		It("should not wait for rounds already created", func() {
			cnf.MaxRound = 2
			cnf.CreateLag = func(round gomel.Round) time.Duration {
				if round == 0 {
					return 0
				}
				return time.Hour
			}
			for _, u := range tests.Rounds(cnf.NMembers, 2)[1] {
				incoming <- u
			}
			var err error
			Eventually(run(startingRound(0))).Should(Receive(&err))
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.notifications()).To(BeEmpty())
		})
	})

	Describe("with an invalid config", func() {
		It("should refuse a zero stall interval before reading the starting round", func() {
			cnf.StallInterval = 0
			start := make(chan gomel.Round)
			var err error
			Eventually(run(start)).Should(Receive(&err))
			Expect(err).To(BeAssignableToTypeOf(&gomel.ConfigError{}))
			Expect(rec.notifications()).To(BeEmpty())
		})

		It("should refuse a node outside the committee", func() {
			cnf.NodeID = gomel.NodeIndex(cnf.NMembers)
			for _, u := range tests.DealingUnits(cnf.NMembers) {
				incoming <- u
			}
			var err error
			Eventually(run(startingRound(0))).Should(Receive(&err))
			Expect(err).To(BeAssignableToTypeOf(&gomel.ConfigError{}))
			Expect(rec.notifications()).To(BeEmpty())
		})

		It("should refuse a missing delay schedule", func() {
			cnf.CreateLag = nil
			Eventually(run(startingRound(0))).Should(Receive(BeAssignableToTypeOf(&gomel.ConfigError{})))
		})
	})

	Describe("with a slow delay schedule", func() {
		It("should log the stalled creation without aborting", func() {
			var out syncBuffer
			log = zerolog.New(&out)
			cnf.MaxRound = 5
			cnf.StallInterval = 10 * time.Millisecond
			done := run(startingRound(0))
			Eventually(func() bool {
				return strings.Contains(out.String(), `"message":"`+logging.CreationStalled+`"`)
			}).Should(BeTrue())
			Consistently(done).ShouldNot(Receive())
			Expect(rec.rounds()).To(Equal([]gomel.Round{0}))
			close(exit)
			Eventually(done).Should(Receive())
		})
	})
})
