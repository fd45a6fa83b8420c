// Package logging sets up zerolog the way all the components expect it and translates the logs to a human readable form.
package logging

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/diode"
)

// LogConfig describes configuration of logger
type LogConfig struct {
	// Log level: 0-debug 1-info 2-warn 3-error 4-fatal 5-panic
	Level int

	// Path to the logfile. "stdout" or "stderr" are possible too.
	Path string

	// The size of diode buffer. 0 disables the diode. Recommended big.
	DiodeBuf int

	// The smallest unit of time (recommended time.Millisecond)
	TimeUnit time.Duration

	// Whether to write the log in the human readable form instead of JSON.
	Human bool
}

// NewLogger creates a zerolog logger based on given LogConfig.
// It changes zerolog globals (field names, time format, level format), so it should be called once at the very beginning.
// The logger is then passed to every component, which adds its own context with
//		log.With().Int(logging.Service, logging.CreateService).Logger()
func NewLogger(lc LogConfig) (zerolog.Logger, error) {
	var (
		output io.Writer
		err    error
	)

	switch lc.Path {
	case "stdout":
		output = os.Stdout

	case "stderr":
		output = os.Stderr

	default:
		output, err = os.Create(lc.Path)
		if err != nil {
			return zerolog.Logger{}, err
		}
	}

	if lc.Human {
		output = NewDecoder(output)
	}

	// enable diode
	if lc.DiodeBuf > 0 {
		output = diode.NewWriter(output, lc.DiodeBuf, 0, func(missed int) {
			fmt.Fprintf(os.Stderr, "WARNING: Dropped %d log entries\n", missed)
		})
	}

	timeUnit := lc.TimeUnit
	if timeUnit <= 0 {
		timeUnit = time.Millisecond
	}

	// short names of compulsory fields to save some space
	zerolog.TimestampFieldName = Time
	zerolog.LevelFieldName = Level
	zerolog.MessageFieldName = Event

	log := zerolog.New(output).With().Timestamp().Logger().Level(zerolog.Level(lc.Level))

	// log the beginning of time
	genesis := time.Now()
	log.Log().Str(Genesis, genesis.Format(time.RFC3339Nano)).Msg(Genesis)

	// time logged as integer starting at 0, with the chosen unit
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.TimestampFunc = func() time.Time {
		return time.Unix(int64(time.Since(genesis)/timeUnit), 0)
	}

	// make level names single character
	zerolog.LevelFieldMarshalFunc = func(l zerolog.Level) string {
		return strconv.Itoa(int(l))
	}

	return log, nil
}
