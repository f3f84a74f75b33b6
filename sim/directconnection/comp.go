// Package directconnection provides a latency-free connection between ports.
package directconnection

import (
	"github.com/sarchlab/clockmem/sim"
)

// Comp is a DirectConnection that connects components without latency.
type Comp struct {
	*sim.TickingComponent

	nextPortID int
	ports      []sim.Port
}

// PlugIn marks the port as connected to this DirectConnection.
func (c *Comp) PlugIn(port sim.Port) {
	c.Lock()
	defer c.Unlock()

	c.ports = append(c.ports, port)

	port.SetConnection(c)
}

// Unplug marks the port as no longer connected to this DirectConnection.
func (c *Comp) Unplug(_ sim.Port) {
	panic("not implemented")
}

// NotifyAvailable is called by a port to notify that the connection can
// deliver to the port again.
func (c *Comp) NotifyAvailable(p sim.Port) {
	for _, port := range c.ports {
		if port == p {
			continue
		}

		port.NotifyAvailable()
	}

	c.TickNow()
}

// NotifySend is called by a port to notify that the connection can start
// to tick now.
func (c *Comp) NotifySend() {
	c.TickNow()
}

// Tick updates the states of the connection and delivers messages.
func (c *Comp) Tick() bool {
	madeProgress := false

	for i := 0; i < len(c.ports); i++ {
		portID := (i + c.nextPortID) % len(c.ports)
		port := c.ports[portID]
		madeProgress = c.forwardMany(port) || madeProgress
	}

	c.nextPortID = (c.nextPortID + 1) % len(c.ports)
	return madeProgress
}

func (c *Comp) forwardMany(port sim.Port) bool {
	madeProgress := false

	for {
		head := port.PeekOutgoing()
		if head == nil {
			break
		}

		err := head.Meta().Dst.Deliver(head)
		if err != nil {
			break
		}

		if c.NumHooks() > 0 {
			c.InvokeHook(sim.HookCtx{
				Domain: c,
				Pos:    sim.HookPosConnDeliver,
				Item:   head,
			})
		}

		madeProgress = true
		port.RetrieveOutgoing()
	}

	return madeProgress
}
