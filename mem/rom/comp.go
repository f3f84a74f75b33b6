// Package rom provides a read-only memory component. The contents are
// supplied once, before the first read, by an external loader through the
// builder; there is no write path at all.
package rom

import (
	"log"
	"reflect"

	"github.com/sarchlab/clockmem/mem"
	"github.com/sarchlab/clockmem/sim"
)

type readRespondEvent struct {
	*sim.EventBase
	req *mem.ReadReq
}

func newReadRespondEvent(cycle sim.Cycle, handler sim.Handler,
	req *mem.ReadReq,
) *readRespondEvent {
	return &readRespondEvent{sim.NewEventBase(cycle, handler), req}
}

// Comp models a ROM block with fixed-latency reads. A write request is a
// hard fault: the ROM contract has no write operation, so receiving one
// means the sender is miswired.
type Comp struct {
	*sim.TickingComponent

	topPort sim.Port
	storage *mem.Storage
	Latency int
}

// Handle defines how the Comp handles events.
func (c *Comp) Handle(e sim.Event) error {
	switch e := e.(type) {
	case *readRespondEvent:
		return c.handleReadRespondEvent(e)
	case sim.TickEvent:
		return c.TickingComponent.Handle(e)
	default:
		log.Panicf("cannot handle event of %s", reflect.TypeOf(e))
	}

	return nil
}

// Tick samples one request from the top port.
func (c *Comp) Tick() bool {
	msg := c.topPort.RetrieveIncoming()
	if msg == nil {
		return false
	}

	switch msg := msg.(type) {
	case *mem.ReadReq:
		c.handleReadReq(msg)
		return true
	default:
		log.Panicf("rom %s cannot handle request of type %s",
			c.Name(), reflect.TypeOf(msg))
	}

	return false
}

func (c *Comp) handleReadReq(req *mem.ReadReq) {
	cycleToSchedule := c.CurrentCycle() + sim.Cycle(c.Latency)
	respondEvent := newReadRespondEvent(cycleToSchedule, c, req)
	c.Engine.Schedule(respondEvent)
}

func (c *Comp) handleReadRespondEvent(e *readRespondEvent) error {
	req := e.req

	data, err := c.storage.Read(req.Address, req.AccessByteSize)
	if err != nil {
		log.Panic(err)
	}

	rsp := mem.DataReadyRspBuilder{}.
		WithSrc(c.topPort).
		WithDst(req.Src).
		WithRspTo(req.ID).
		WithData(data).
		Build()

	networkErr := c.topPort.Send(rsp)
	if networkErr != nil {
		retry := newReadRespondEvent(c.CurrentCycle()+1, c, req)
		c.Engine.Schedule(retry)
		return nil
	}

	c.TickLater()

	return nil
}
