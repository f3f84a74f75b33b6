// Package ram provides a randomly addressable memory component with
// synchronous, fixed-latency read and write.
package ram

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

type writeRespondEvent struct {
	*sim.EventBase
	req *mem.WriteReq
}

func newWriteRespondEvent(cycle sim.Cycle, handler sim.Handler,
	req *mem.WriteReq,
) *writeRespondEvent {
	return &writeRespondEvent{sim.NewEventBase(cycle, handler), req}
}

// Comp models a RAM block. A read returns the contents at the requested
// address as of the cycle the request was sampled; a write takes effect
// before its WriteDoneRsp is visible. Both complete a fixed number of
// cycles after the request is sampled (default 1, the latched single-cycle
// contract).
type Comp struct {
	*sim.TickingComponent

	topPort sim.Port
	Storage *mem.Storage
	Latency int
}

// Handle defines how the Comp handles events.
func (c *Comp) Handle(e sim.Event) error {
	switch e := e.(type) {
	case *readRespondEvent:
		return c.handleReadRespondEvent(e)
	case *writeRespondEvent:
		return c.handleWriteRespondEvent(e)
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
	case *mem.WriteReq:
		c.handleWriteReq(msg)
		return true
	default:
		log.Panicf("cannot handle request of type %s", reflect.TypeOf(msg))
	}

	return false
}

func (c *Comp) handleReadReq(req *mem.ReadReq) {
	cycleToSchedule := c.CurrentCycle() + sim.Cycle(c.Latency)
	respondEvent := newReadRespondEvent(cycleToSchedule, c, req)
	c.Engine.Schedule(respondEvent)
}

func (c *Comp) handleWriteReq(req *mem.WriteReq) {
	cycleToSchedule := c.CurrentCycle() + sim.Cycle(c.Latency)
	respondEvent := newWriteRespondEvent(cycleToSchedule, c, req)
	c.Engine.Schedule(respondEvent)
}

func (c *Comp) handleReadRespondEvent(e *readRespondEvent) error {
	req := e.req

	data, err := c.Storage.Read(req.Address, req.AccessByteSize)
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

func (c *Comp) handleWriteRespondEvent(e *writeRespondEvent) error {
	req := e.req

	rsp := mem.WriteDoneRspBuilder{}.
		WithSrc(c.topPort).
		WithDst(req.Src).
		WithRspTo(req.ID).
		Build()

	networkErr := c.topPort.Send(rsp)
	if networkErr != nil {
		retry := newWriteRespondEvent(c.CurrentCycle()+1, c, req)
		c.Engine.Schedule(retry)
		return nil
	}

	err := c.Storage.Write(req.Address, req.Data)
	if err != nil {
		log.Panic(err)
	}

	c.TickLater()

	return nil
}
