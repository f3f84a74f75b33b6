package fifo

import (
	"github.com/sarchlab/clockmem/sim"
)

// Builder can build FIFO components.
type Builder struct {
	engine     sim.Engine
	capacity   int
	width      int
	topBufSize int
}

// MakeBuilder returns a new Builder with the default configuration: 16
// one-byte slots.
func MakeBuilder() Builder {
	return Builder{
		capacity:   16,
		width:      1,
		topBufSize: 4,
	}
}

// WithEngine sets the engine that drives the component.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithCapacity sets the number of slots.
func (b Builder) WithCapacity(capacity int) Builder {
	b.capacity = capacity
	return b
}

// WithWidth sets the element width in bytes.
func (b Builder) WithWidth(width int) Builder {
	b.width = width
	return b
}

// WithTopBufSize sets the size of the top port buffers.
func (b Builder) WithTopBufSize(topBufSize int) Builder {
	b.topBufSize = topBufSize
	return b
}

// Build creates a new Comp.
func (b Builder) Build(name string) *Comp {
	c := &Comp{
		ctrl: NewController(name+".Ctrl", b.capacity, b.width),
	}

	c.TickingComponent = sim.NewTickingComponent(name, b.engine, c)

	c.topPort = sim.NewPort(c, b.topBufSize, b.topBufSize, name+".TopPort")
	c.AddPort("Top", c.topPort)

	return c
}
