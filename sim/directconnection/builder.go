package directconnection

import "github.com/sarchlab/clockmem/sim"

// Builder can help build direct connections.
type Builder struct {
	engine sim.Engine
}

// MakeBuilder creates a new Builder.
func MakeBuilder() Builder {
	return Builder{}
}

// WithEngine sets the engine that the connection uses.
func (b Builder) WithEngine(e sim.Engine) Builder {
	b.engine = e
	return b
}

// Build creates a new Comp.
func (b Builder) Build(name string) *Comp {
	c := new(Comp)
	c.TickingComponent = sim.NewSecondaryTickingComponent(name, b.engine, c)
	return c
}
