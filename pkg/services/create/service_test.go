package create_test

import (
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"

	"gitlab.com/alephledger/creator-go/pkg/config"
	"gitlab.com/alephledger/creator-go/pkg/gomel"
	"gitlab.com/alephledger/creator-go/pkg/notify"
	. "gitlab.com/alephledger/creator-go/pkg/services/create"
)

var _ = Describe("Service", func() {
	var (
		cnf      config.Config
		incoming chan *gomel.Unit
		queue    *notify.Queue
		start    chan gomel.Round
		service  *Service
	)

	BeforeEach(func() {
		cnf = config.Empty()
		cnf.NodeID = 1
		cnf.NMembers = 4
		cnf.MaxRound = 10
		incoming = make(chan *gomel.Unit)
		queue = notify.NewQueue()
		start = make(chan gomel.Round, 1)
		service = NewService(cnf, IO{IncomingParents: incoming, OutgoingUnits: queue}, start, zerolog.Nop())
	})

	AfterEach(func() {
		queue.Close()
	})

	It("should refuse to start with an invalid config", func() {
		cnf.NodeID = 4
		service = NewService(cnf, IO{IncomingParents: incoming, OutgoingUnits: queue}, start, zerolog.Nop())
		Expect(service.Start()).To(BeAssignableToTypeOf(&gomel.ConfigError{}))
	})

	It("should create a dealing unit and record the exit as the reason to stop", func() {
		Expect(service.Start()).To(Succeed())
		start <- 0
		var n gomel.Notification
		Eventually(queue.Out()).Should(Receive(&n))
		Expect(n.Unit.Creator).To(Equal(gomel.NodeIndex(1)))
		Expect(n.Unit.Round).To(Equal(gomel.Round(0)))
		service.Stop()
		Expect(service.Done()).To(BeClosed())
		Expect(service.Err()).To(BeAssignableToTypeOf(&gomel.Cancelled{}))
	})

	It("should record the receiver being gone", func() {
		queue.Close()
		Expect(service.Start()).To(Succeed())
		start <- 0
		Eventually(service.Done(), time.Second).Should(BeClosed())
		Expect(service.Err()).To(BeAssignableToTypeOf(&gomel.OutboundReceiverGone{}))
		service.Stop()
	})
})
