// Package fifo provides a clocked, fixed-capacity first-in-first-out buffer.
//
// The central type is the Controller, a synchronous state machine that
// advances one clock edge at a time through its Step function. A Comp wraps
// the controller as a ticking component so that it can be driven by the
// simulation engine and talk to other components through ports.
package fifo

import (
	"log"

	"github.com/sarchlab/clockmem/sim"
)

// HookPosStep marks the completion of one controller step. The hook item is
// a StepTrace describing the inputs and the post-edge outputs of the step.
var HookPosStep = &sim.HookPos{Name: "FIFO Step"}

// HookPosWriteDropped marks a write request that arrived while the
// controller was full and was silently dropped.
var HookPosWriteDropped = &sim.HookPos{Name: "FIFO Write Dropped"}

// HookPosReadIgnored marks a read request that arrived while the controller
// was empty and was silently ignored.
var HookPosReadIgnored = &sim.HookPos{Name: "FIFO Read Ignored"}

// StepInput is the set of signals sampled at one clock edge.
type StepInput struct {
	// Reset dominates all other inputs. A step with Reset set restores the
	// initial state regardless of the other signals.
	Reset bool

	// WriteEnable requests that DataIn is enqueued this cycle.
	WriteEnable bool

	// ReadEnable requests that the oldest element is dequeued this cycle.
	ReadEnable bool

	// DataIn is the element to enqueue. It must be exactly Width bytes long
	// when WriteEnable is set.
	DataIn []byte
}

// StepOutput is the post-edge state exposed after one clock edge.
type StepOutput struct {
	// DataOut is the element returned by the most recent admitted read. It
	// holds its previous (stale) value across cycles without an admitted
	// read.
	DataOut []byte

	Full  bool
	Empty bool
	Count int
}

// StepTrace is the flattened record of one step, suitable for data
// recording.
type StepTrace struct {
	Controller  string
	Step        uint64
	Reset       bool
	WriteEnable bool
	ReadEnable  bool
	DataIn      string
	DataOut     string
	Full        bool
	Empty       bool
	Count       int
}

// A Controller is a fixed-capacity circular buffer with independent write
// and read cursors, an occupancy counter, and derived full/empty status.
// All state is committed atomically by Step, which models one clock edge.
//
// Write and read admission uses the full/empty flags as they were at the end
// of the previous step, not flags recomputed from the in-flight counter.
// This one-cycle-stale admission check reproduces the latched-signal
// behavior of the hardware design and is pinned down by the package tests.
type Controller struct {
	sim.HookableBase

	name     string
	capacity int
	width    int

	storage   []byte
	writePtr  int
	readPtr   int
	count     int
	dataOut   []byte
	stepCount uint64

	// Admission flags latched from the previous step's output.
	wasFull  bool
	wasEmpty bool
}

// NewController creates a controller with the given number of slots and
// element width in bytes. Both must be positive.
func NewController(name string, capacity, width int) *Controller {
	sim.NameMustBeValid(name)

	if capacity <= 0 {
		log.Panicf("fifo capacity must be positive, got %d", capacity)
	}

	if width <= 0 {
		log.Panicf("fifo element width must be positive, got %d", width)
	}

	return &Controller{
		name:     name,
		capacity: capacity,
		width:    width,
		storage:  make([]byte, capacity*width),
		dataOut:  make([]byte, width),
		wasEmpty: true,
	}
}

// Name returns the name of the controller.
func (c *Controller) Name() string {
	return c.name
}

// Capacity returns the number of slots.
func (c *Controller) Capacity() int {
	return c.capacity
}

// Width returns the element width in bytes.
func (c *Controller) Width() int {
	return c.width
}

// Count returns the number of occupied slots as of the last step.
func (c *Controller) Count() int {
	return c.count
}

// Full returns the full flag as of the last step.
func (c *Controller) Full() bool {
	return c.wasFull
}

// Empty returns the empty flag as of the last step.
func (c *Controller) Empty() bool {
	return c.wasEmpty
}

// Output returns the post-edge state as of the last step.
func (c *Controller) Output() StepOutput {
	out := StepOutput{
		DataOut: make([]byte, c.width),
		Full:    c.wasFull,
		Empty:   c.wasEmpty,
		Count:   c.count,
	}
	copy(out.DataOut, c.dataOut)

	return out
}

// Step advances the controller by one clock edge. It samples all inputs,
// commits the next storage contents, cursors, counter, and flags, and
// returns the post-edge outputs.
func (c *Controller) Step(in StepInput) StepOutput {
	if in.Reset {
		c.reset()
	} else {
		c.advance(in)
	}

	out := c.Output()

	if c.NumHooks() > 0 {
		c.InvokeHook(sim.HookCtx{
			Domain: c,
			Pos:    HookPosStep,
			Item:   c.trace(in, out),
		})
	}

	c.stepCount++

	return out
}

func (c *Controller) reset() {
	c.writePtr = 0
	c.readPtr = 0
	c.count = 0
	c.wasFull = false
	c.wasEmpty = true

	for i := range c.dataOut {
		c.dataOut[i] = 0
	}
}

func (c *Controller) advance(in StepInput) {
	writeAdmitted := in.WriteEnable && !c.wasFull
	readAdmitted := in.ReadEnable && !c.wasEmpty

	if writeAdmitted {
		c.dataInMustBeValid(in.DataIn)
		copy(c.storage[c.writePtr*c.width:], in.DataIn[:c.width])
		c.writePtr = (c.writePtr + 1) % c.capacity
	} else if in.WriteEnable {
		c.InvokeHook(sim.HookCtx{
			Domain: c,
			Pos:    HookPosWriteDropped,
			Item:   in,
		})
	}

	if readAdmitted {
		copy(c.dataOut, c.storage[c.readPtr*c.width:(c.readPtr+1)*c.width])
		c.readPtr = (c.readPtr + 1) % c.capacity
	} else if in.ReadEnable {
		c.InvokeHook(sim.HookCtx{
			Domain: c,
			Pos:    HookPosReadIgnored,
			Item:   in,
		})
	}

	// A same-cycle admitted read and write are both honored and net to
	// zero occupancy change.
	switch {
	case writeAdmitted && !readAdmitted:
		c.count++
	case readAdmitted && !writeAdmitted:
		c.count--
	}

	// The flags below are derived from the just-updated counter. They feed
	// the admission check of the next step, not of this one.
	c.wasFull = c.count == c.capacity
	c.wasEmpty = c.count == 0
}

func (c *Controller) dataInMustBeValid(data []byte) {
	if len(data) != c.width {
		log.Panicf("fifo %s expects %d-byte elements, got %d bytes",
			c.name, c.width, len(data))
	}
}

func (c *Controller) trace(in StepInput, out StepOutput) StepTrace {
	return StepTrace{
		Controller:  c.name,
		Step:        c.stepCount,
		Reset:       in.Reset,
		WriteEnable: in.WriteEnable,
		ReadEnable:  in.ReadEnable,
		DataIn:      hexString(in.DataIn),
		DataOut:     hexString(out.DataOut),
		Full:        out.Full,
		Empty:       out.Empty,
		Count:       out.Count,
	}
}
