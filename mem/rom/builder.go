package rom

import (
	"log"

	"github.com/sarchlab/clockmem/mem"
	"github.com/sarchlab/clockmem/sim"
)

// Builder can build ROM components.
type Builder struct {
	engine     sim.Engine
	latency    int
	capacity   uint64
	topBufSize int
	image      []byte
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

// WithCapacity sets the capacity of the ROM in bytes.
func (b Builder) WithCapacity(capacity uint64) Builder {
	b.capacity = capacity
	return b
}

// WithImage sets the initial contents, loaded at address 0.
func (b Builder) WithImage(image []byte) Builder {
	b.image = image
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

	c.storage = mem.NewStorage(b.capacity)
	if len(b.image) > 0 {
		err := c.storage.Write(0, b.image)
		if err != nil {
			log.Panic(err)
		}
	}

	c.topPort = sim.NewPort(c, b.topBufSize, b.topBufSize, name+".TopPort")
	c.AddPort("Top", c.topPort)

	return c
}
