package fifo

import (
	"log"
	"reflect"

	"github.com/sarchlab/clockmem/sim"
)

// Comp wraps a Controller as a ticking component. Each tick, it samples at
// most one enqueue and one dequeue request from its top port, forms the step
// input, and advances the controller by one clock edge.
//
// The component provides no arbitration. Multiple producers or consumers
// must serialize their requests externally into one request tuple per cycle.
type Comp struct {
	*sim.TickingComponent

	topPort sim.Port
	ctrl    *Controller
}

// Controller returns the wrapped controller.
func (c *Comp) Controller() *Controller {
	return c.ctrl
}

// Tick advances the FIFO by one clock edge if any request is pending.
func (c *Comp) Tick() bool {
	var (
		in      StepInput
		deq     *DequeueReq
		sampled bool
	)

sampling:
	for {
		head := c.topPort.PeekIncoming()
		if head == nil {
			break
		}

		switch msg := head.(type) {
		case *ResetReq:
			if in.Reset {
				break sampling
			}
			in.Reset = true
		case *EnqueueReq:
			if in.WriteEnable {
				break sampling
			}
			in.WriteEnable = true
			in.DataIn = msg.Data
		case *DequeueReq:
			// Hold the request until the response can go out. The port is
			// in order, so later requests wait behind it.
			if deq != nil || !c.topPort.CanSend() {
				break sampling
			}
			deq = msg
			in.ReadEnable = true
		default:
			log.Panicf("cannot handle request of type %s",
				reflect.TypeOf(head))
		}

		c.topPort.RetrieveIncoming()
		sampled = true
	}

	if !sampled {
		return false
	}

	wasEmpty := c.ctrl.Empty()
	out := c.ctrl.Step(in)

	// A dequeue rejected by the empty controller is silently dropped, the
	// same way a full controller drops an enqueue.
	if deq != nil && !in.Reset && !wasEmpty {
		rsp := DequeueRspBuilder{}.
			WithSrc(c.topPort).
			WithDst(deq.Src).
			WithRspTo(deq.ID).
			WithData(out.DataOut).
			Build()

		err := c.topPort.Send(rsp)
		if err != nil {
			log.Panic("fifo dequeue response dropped")
		}
	}

	return true
}
