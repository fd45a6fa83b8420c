// Package config reads the parameters of the unit creation process and turns them into its configuration.
package config

const (
	// DefaultStallInterval is the number of seconds after which a process still unable to create a unit starts complaining.
	DefaultStallInterval = 30 * 60
)

// Params represents a set of process parameters adjustable via JSON or TOML config files.
type Params struct {
	// Index of this process in the committee.
	NodeID uint16 `json:"node_id" toml:"node_id"`

	// Number of processes in the committee.
	NMembers uint16 `json:"n_members" toml:"n_members"`

	// Units are created for rounds below this one.
	MaxRound uint16 `json:"max_round" toml:"max_round"`

	// Name of the delay schedule: "constant" or "exponential".
	DelaySchedule string `json:"delay_schedule" toml:"delay_schedule"`

	// Delay (in milliseconds) before creating a unit of a round.
	// For the exponential schedule it is the delay used before the slowdown starts.
	CreateDelay float64 `json:"create_delay" toml:"create_delay"`

	// The round from which the exponential schedule starts slowing down.
	SlowdownStart uint16 `json:"slowdown_start" toml:"slowdown_start"`

	// Every round after SlowdownStart multiplies the delay by this factor.
	SlowdownBase float64 `json:"slowdown_base" toml:"slowdown_base"`

	// How long (in seconds) after the delay passed we wait for parents before logging that creation is stalled.
	StallInterval int `json:"stall_interval" toml:"stall_interval"`

	// Log level: 0-debug 1-info 2-warn 3-error 4-fatal 5-panic.
	LogLevel int `json:"log_level" toml:"log_level"`

	// The size of log diode buffer in bytes. 0 disables the diode. Recommended at least 100k.
	LogBuffer int `json:"log_buffer" toml:"log_buffer"`

	// How often (in seconds) to log the memory usage. 0 to disable.
	LogMemInterval int `json:"log_mem_interval" toml:"log_mem_interval"`

	// Whether to write the log in the human readable form or in JSON.
	LogHuman bool `json:"log_human" toml:"log_human"`
}

// NewDefaultParams returns default set of parameters.
func NewDefaultParams() Params {
	result := Params{

		NodeID: 0,

		NMembers: 4,

		MaxRound: 5000,

		DelaySchedule: "exponential",

		CreateDelay: 500,

		SlowdownStart: 3000,

		SlowdownBase: 1.005,

		StallInterval: DefaultStallInterval,

		LogLevel: 1,

		LogBuffer: 100000,

		LogMemInterval: 10,

		LogHuman: false,
	}
	return result
}
