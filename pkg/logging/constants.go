package logging

// Shortcuts for event types.
// Any event that happens multiple times should have a single character representation
const (
	ServiceStarted        = "start"
	ServiceStopped        = "stop"
	UnitCreated           = "U"
	CreatorProcessingUnit = "A"
	DuplicatedUnit        = "D"
	DelayPassed           = "P"
	RoundSkipped          = "K"
	CreationStalled       = "Z"
	MemoryUsage           = "M"
	UnknownCreator        = "unknown creator"
	CreatorStarted        = "creator started"
	StartingRoundMissing  = "starting round missing"
	InboundClosed         = "inbound closed"
	ExitSignal            = "exit signal"
	NotificationError     = "notification send error"
	RoundCeilingReached   = "round ceiling reached"
	CreatorFinished       = "creator finished"
	InvalidConfig         = "invalid config"
	TooManyOffline        = "too many offline members"
)

// eventTypeDict maps short event names to human readable form
var eventTypeDict = map[string]string{
	UnitCreated:           "new unit created",
	CreatorProcessingUnit: "creator received a unit",
	DuplicatedUnit:        "unit of that creator and round already known",
	DelayPassed:           "creation delay passed",
	RoundSkipped:          "already created a unit of that round, skipping",
	CreationStalled:       "more than the stall interval passed since the delay, still not enough parents",
	MemoryUsage:           "memory usage",
	UnknownCreator:        "unit creator outside the committee, ignoring",
	CreatorStarted:        "creator starting",
	StartingRoundMissing:  "starting round not provided, exiting",
	InboundClosed:         "incoming parents channel closed, exiting",
	ExitSignal:            "received exit signal",
	NotificationError:     "notification send error, exiting",
	RoundCeilingReached:   "maximum round reached, not creating another unit",
	CreatorFinished:       "creator finished",
	InvalidConfig:         "configuration rejected, exiting",
	TooManyOffline:        "more members offline than tolerated, rounds past the dealing one will stall",
}

// Field names
const (
	Time    = "T"
	Level   = "L"
	Event   = "E"
	Service = "S"
	Size    = "N"
	Round   = "R"
	Creator = "C"
	PID     = "P"
	Delay   = "D"
	Memory  = "M"
	Hash    = "H"
	Offline = "O"
	Created = "X"
)

// fieldNameDict maps short field names to human readable form
var fieldNameDict = map[string]string{
	Time:    "time",
	Level:   "level",
	Event:   "event",
	Service: "service",
	Size:    "size",
	Round:   "round",
	Creator: "creator",
	PID:     "PID",
	Delay:   "delay",
	Memory:  "memory",
	Hash:    "hash",
	Offline: "offline",
	Created: "last created round",
}

// Service types
const (
	CreateService int = iota
	NetworkService
	MemLogService
)

// serviceTypeDict maps integer service types to human readable names
var serviceTypeDict = map[int]string{
	CreateService:  "CREATE",
	NetworkService: "NETWORK",
	MemLogService:  "MEMLOG",
}

// Genesis was better with Phil Collins
const Genesis = "genesis"
