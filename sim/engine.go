package sim

// CycleTeller can be used to get the current cycle.
type CycleTeller interface {
	CurrentCycle() Cycle
}

// EventScheduler can be used to schedule future events.
type EventScheduler interface {
	Schedule(e Event)
}

// A SimulationEndHandler is a handler that is called after the simulation
// ends.
type SimulationEndHandler interface {
	Handle(now Cycle)
}

// An Engine is a unit that keeps the discrete event simulation run.
type Engine interface {
	Hookable
	CycleTeller
	EventScheduler

	// Run will process all the events until the simulation finishes.
	Run() error

	// Pause will pause the simulation until Continue is called.
	Pause()

	// Continue will continue the paused simulation.
	Continue()

	// RegisterSimulationEndHandler registers a handler that performs some
	// actions after the simulation is finished.
	RegisterSimulationEndHandler(handler SimulationEndHandler)

	// Finished invokes all the registered SimulationEndHandler.
	Finished()
}
