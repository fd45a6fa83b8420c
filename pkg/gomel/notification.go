package gomel

// NotificationType distinguishes events emitted by the creation task.
type NotificationType int

const (
	// CreatedPreUnit is emitted whenever this process creates a new unit.
	// The unit still needs to be signed and disseminated.
	CreatedPreUnit NotificationType = iota
)

func (t NotificationType) String() string {
	switch t {
	case CreatedPreUnit:
		return "CreatedPreUnit"
	default:
		return "Unknown"
	}
}

// Notification is an event produced for the components downstream of unit creation.
type Notification struct {
	Type NotificationType
	// Unit is the created unit.
	Unit *Unit
	// ParentHashes lists hashes of parents of Unit ordered by their creators.
	ParentHashes []Hash
}

// NotificationSender accepts notifications without blocking.
// Send fails once nobody is going to receive the notifications anymore.
type NotificationSender interface {
	Send(Notification) error
}
