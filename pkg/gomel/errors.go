package gomel

import "strconv"

// ConfigError is returned when a provided configuration can not be parsed or is not valid.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string {
	return "ConfigError: " + e.msg
}

// NewConfigError constructs a ConfigError from a given msg.
func NewConfigError(msg string) *ConfigError {
	return &ConfigError{msg}
}

// StartingRoundUnavailable is returned when the source of the starting round was closed without providing a value.
type StartingRoundUnavailable struct{}

func (e *StartingRoundUnavailable) Error() string {
	return "starting round not provided"
}

// NewStartingRoundUnavailable constructs a StartingRoundUnavailable error.
func NewStartingRoundUnavailable() *StartingRoundUnavailable {
	return &StartingRoundUnavailable{}
}

// InboundClosed is returned when the stream of incoming parents ended while waiting for the given round.
type InboundClosed struct {
	Round Round
}

func (e *InboundClosed) Error() string {
	return "incoming parents channel closed while waiting for round " + strconv.Itoa(int(e.Round))
}

// NewInboundClosed constructs an InboundClosed error for the given round.
func NewInboundClosed(round Round) *InboundClosed {
	return &InboundClosed{round}
}

// OutboundReceiverGone is returned when a notification about a created unit could not be delivered.
type OutboundReceiverGone struct {
	Round Round
	Err   error
}

func (e *OutboundReceiverGone) Error() string {
	return "notification send error at round " + strconv.Itoa(int(e.Round)) + ": " + e.Err.Error()
}

// Unwrap returns the error reported by the notification sender.
func (e *OutboundReceiverGone) Unwrap() error {
	return e.Err
}

// NewOutboundReceiverGone constructs an OutboundReceiverGone error for the given round and cause.
func NewOutboundReceiverGone(round Round, err error) *OutboundReceiverGone {
	return &OutboundReceiverGone{round, err}
}

// Cancelled is returned when the creation task received an exit signal.
// It is not a failure, just the reason the task stopped.
type Cancelled struct{}

func (e *Cancelled) Error() string {
	return "received exit signal"
}

// NewCancelled constructs a Cancelled error.
func NewCancelled() *Cancelled {
	return &Cancelled{}
}
