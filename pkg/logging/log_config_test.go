package logging

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Logger", func() {
	var dir string

	BeforeEach(func() {
		var err error
		dir, err = ioutil.TempDir("", "logging")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(dir)
	})

	It("should write short JSON events to the given file", func() {
		path := filepath.Join(dir, "log.json")
		log, err := NewLogger(LogConfig{Level: 0, Path: path})
		Expect(err).NotTo(HaveOccurred())
		log.Info().Uint16(Round, 3).Msg(UnitCreated)
		content, err := ioutil.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(content)).To(ContainSubstring(`"E":"genesis"`))
		Expect(string(content)).To(ContainSubstring(`"L":"1","R":3`))
		Expect(string(content)).To(ContainSubstring(`"E":"U"`))
	})

	It("should write human readable events when asked to", func() {
		path := filepath.Join(dir, "log.txt")
		log, err := NewLogger(LogConfig{Level: 1, Path: path, Human: true})
		Expect(err).NotTo(HaveOccurred())
		log.Debug().Msg(DelayPassed)
		log.Warn().Uint16(Round, 7).Msg(RoundCeilingReached)
		content, err := ioutil.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(content)).To(HavePrefix("Beginning of time at"))
		Expect(string(content)).NotTo(ContainSubstring(eventTypeDict[DelayPassed]))
		Expect(string(content)).To(ContainSubstring("round = 7"))
		Expect(string(content)).To(ContainSubstring(eventTypeDict[RoundCeilingReached]))
	})

	It("should fail for a file that cannot be created", func() {
		_, err := NewLogger(LogConfig{Path: filepath.Join(dir, "missing", "log.json")})
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Memory logging service", func() {
	It("should start and stop", func() {
		s := NewService(0, zerolog.Nop())
		Expect(s.Start()).To(Succeed())
		s.Stop()
	})
})
