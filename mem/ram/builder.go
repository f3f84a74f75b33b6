package ram

import (
	"github.com/sarchlab/clockmem/mem"
	"github.com/sarchlab/clockmem/sim"
)

// Builder can build RAM components.
type Builder struct {
	engine     sim.Engine
	latency    int
	capacity   uint64
	topBufSize int
	storage    *mem.Storage
}

// MakeBuilder returns a new Builder with the default configuration.
func MakeBuilder() Builder {
	return Builder{
		latency:    1,
		capacity:   4 * mem.KB,
		topBufSize: 16,
	}
}

// WithEngine sets the engine that drives the component.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithLatency sets the number of cycles between sampling a request and
// sending its response.
func (b Builder) WithLatency(latency int) Builder {
	b.latency = latency
	return b
}

// WithNewStorage makes the builder allocate a new storage of the given
// capacity in bytes.
func (b Builder) WithNewStorage(capacity uint64) Builder {
	b.capacity = capacity
	return b
}

// WithStorage sets an externally provided storage.
func (b Builder) WithStorage(storage *mem.Storage) Builder {
	b.storage = storage
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
		Latency: b.latency,
	}

	c.TickingComponent = sim.NewTickingComponent(name, b.engine, c)

	if b.storage == nil {
		c.Storage = mem.NewStorage(b.capacity)
	} else {
		c.Storage = b.storage
	}

	c.topPort = sim.NewPort(c, b.topBufSize, b.topBufSize, name+".TopPort")
	c.AddPort("Top", c.topPort)

	return c
}
