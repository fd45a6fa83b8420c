package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"strconv"
	"strings"
	"time"

	"gitlab.com/alephledger/creator-go/pkg/config"
	"gitlab.com/alephledger/creator-go/pkg/gomel"
	"gitlab.com/alephledger/creator-go/pkg/logging"
	"gitlab.com/alephledger/creator-go/pkg/tests"
)

type cliOptions struct {
	paramsFilename  string
	logFilename     string
	dagFilename     string
	cpuProfFilename string
	memProfFilename string
	offline         string
	members         int
	rounds          int
	delay           float64
	human           bool
}

func getOptions() cliOptions {
	var result cliOptions
	flag.StringVar(&result.paramsFilename, "params", "", "a .toml or .json file with process parameters")
	flag.StringVar(&result.logFilename, "log", "stdout", "the name of the log file, stdout or stderr")
	flag.StringVar(&result.dagFilename, "dag", "", "the name of the file to write the created dag to")
	flag.StringVar(&result.cpuProfFilename, "cpuprof", "", "the name of the file with cpu-profile results")
	flag.StringVar(&result.memProfFilename, "memprof", "", "the name of the file with mem-profile results")
	flag.StringVar(&result.offline, "offline", "", "comma separated indices of members that never start")
	flag.IntVar(&result.members, "members", 0, "number of members of the committee (overrides params)")
	flag.IntVar(&result.rounds, "rounds", 0, "number of rounds to create, starting from the dealing round (overrides params)")
	flag.Float64Var(&result.delay, "delay", -1, "constant delay in milliseconds before every round (overrides params)")
	flag.BoolVar(&result.human, "human", false, "write the log in the human readable form")
	flag.Parse()
	return result
}

func getParams(options cliOptions) (config.Params, error) {
	params := config.NewDefaultParams()
	if options.paramsFilename != "" {
		var err error
		params, err = config.LoadParamsFile(options.paramsFilename)
		if err != nil {
			return params, err
		}
	}
	if options.members < 0 || options.members > math.MaxUint16 {
		return params, fmt.Errorf("number of members %d outside [1, %d]", options.members, math.MaxUint16)
	}
	if options.members != 0 {
		params.NMembers = uint16(options.members)
	}
	if options.rounds < 0 || options.rounds > math.MaxUint16 {
		return params, fmt.Errorf("number of rounds %d outside [1, %d]", options.rounds, math.MaxUint16)
	}
	if options.rounds != 0 {
		params.MaxRound = uint16(options.rounds)
	}
	if math.IsNaN(options.delay) || math.IsInf(options.delay, 0) {
		return params, fmt.Errorf("delay %v is not a number of milliseconds", options.delay)
	}
	if options.delay >= 0 {
		params.DelaySchedule = "constant"
		params.CreateDelay = options.delay
	}
	if options.human {
		params.LogHuman = true
	}
	return params, nil
}

func getOffline(list string, n uint16) ([]gomel.NodeIndex, error) {
	var result []gomel.NodeIndex
	if list == "" {
		return result, nil
	}
	for _, s := range strings.Split(list, ",") {
		ix, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return nil, err
		}
		if ix < 0 || ix >= int(n) {
			return nil, fmt.Errorf("member %d outside the committee", ix)
		}
		result = append(result, gomel.NodeIndex(ix))
	}
	return result, nil
}

func main() {
	options := getOptions()

	if options.cpuProfFilename != "" {
		f, err := os.Create(options.cpuProfFilename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Creating cpu-profile file \"%s\" failed because: %s.\n", options.cpuProfFilename, err.Error())
		} else {
			defer f.Close()
			if err := pprof.StartCPUProfile(f); err != nil {
				fmt.Fprintf(os.Stderr, "Cpu-profile failed to start because: %s", err.Error())
			}
			defer pprof.StopCPUProfile()
		}
	}

	params, err := getParams(options)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid params because: %s.\n", err.Error())
		return
	}
	cnf, err := config.New(params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration because: %s.\n", err.Error())
		return
	}
	offline, err := getOffline(options.offline, params.NMembers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid list of offline members because: %s.\n", err.Error())
		return
	}

	log, err := logging.NewLogger(logging.LogConfig{
		Level:    params.LogLevel,
		Path:     options.logFilename,
		DiodeBuf: params.LogBuffer,
		TimeUnit: time.Millisecond,
		Human:    params.LogHuman,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Creating log file \"%s\" failed because: %s.\n", options.logFilename, err.Error())
		return
	}
	memlog := logging.NewService(params.LogMemInterval, log)
	memlog.Start()
	defer memlog.Stop()

	committee := tests.NewCommittee(cnf.NMembers, cnf.MaxRound, cnf.CreateLag, log, offline...)
	// nobody has units of earlier rounds, so a fresh committee always starts from the dealing round
	if err := committee.Start(0); err != nil {
		fmt.Fprintf(os.Stderr, "Starting the committee failed because: %s.\n", err.Error())
		committee.Stop()
		return
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	finished := make(chan []error, 1)
	go func() { finished <- committee.Wait() }()
	select {
	case errs := <-finished:
		for ix, err := range errs {
			if err != nil {
				fmt.Fprintf(os.Stderr, "Member %d stopped because: %s.\n", ix, err.Error())
			}
		}
	case <-interrupt:
		fmt.Fprintln(os.Stdout, "Interrupted, stopping...")
	}
	committee.Stop()

	for ix := 0; ix < int(cnf.NMembers); ix++ {
		fmt.Fprintf(os.Stdout, "Member %d created %d units.\n", ix, len(committee.Created(gomel.NodeIndex(ix))))
	}

	if options.dagFilename != "" {
		f, err := os.Create(options.dagFilename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Creating dag file \"%s\" failed because: %s.\n", options.dagFilename, err.Error())
		} else {
			defer f.Close()
			if err := tests.WriteDag(f, cnf.NMembers, committee.Units()); err != nil {
				fmt.Fprintf(os.Stderr, "Writing the dag failed because: %s.\n", err.Error())
			}
		}
	}

	if options.memProfFilename != "" {
		f, err := os.Create(options.memProfFilename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Creating mem-profile file \"%s\" failed because: %s.\n", options.memProfFilename, err.Error())
		} else {
			defer f.Close()
			runtime.GC()
			if err := pprof.WriteHeapProfile(f); err != nil {
				fmt.Fprintf(os.Stderr, "Mem-profile failed to start because: %s", err.Error())
			}
		}
	}

	fmt.Fprintf(os.Stdout, "All done!\n")
}
