package sim

// Cycle counts clock edges since the start of the simulation. The whole
// simulation runs in a single clock domain, so a cycle number fully orders
// all events.
type Cycle uint64

// An Event is something going to happen in the future.
type Event interface {
	// Cycle returns the cycle at which the event should happen.
	Cycle() Cycle

	// Handler returns the handler that should handle the event.
	Handler() Handler

	// IsSecondary tells if the event is a secondary event. Secondary events
	// are handled after all same-cycle primary events are handled.
	IsSecondary() bool
}

// EventBase provides the basic fields and getters for other events.
type EventBase struct {
	ID        string
	cycle     Cycle
	handler   Handler
	secondary bool
}

// NewEventBase creates a new EventBase.
func NewEventBase(cycle Cycle, handler Handler) *EventBase {
	e := new(EventBase)
	e.ID = GetIDGenerator().Generate()
	e.cycle = cycle
	e.handler = handler
	e.secondary = false
	return e
}

// Cycle returns the cycle at which the event is going to happen.
func (e EventBase) Cycle() Cycle {
	return e.cycle
}

// Handler returns the handler to handle the event.
func (e EventBase) Handler() Handler {
	return e.handler
}

// IsSecondary returns true if the event is a secondary event.
func (e EventBase) IsSecondary() bool {
	return e.secondary
}

// A Handler defines a domain for the events.
//
// One event is always constrained to one Handler, which means the event can
// only be scheduled by one handler and can only directly modify that handler.
type Handler interface {
	Handle(e Event) error
}
