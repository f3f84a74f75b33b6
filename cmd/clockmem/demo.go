package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sarchlab/clockmem/datarecording"
	"github.com/sarchlab/clockmem/mem/fifo"
	"github.com/sarchlab/clockmem/sim"
	"github.com/sarchlab/clockmem/sim/directconnection"
	"github.com/sarchlab/clockmem/simulation"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a message-driven producer/consumer demo",
	Long: `Demo builds a FIFO component, connects a driver agent to it, and
replays a small producer/consumer exchange through the event-driven engine.
The dequeued elements are printed in arrival order.`,
	Run: runDemo,
}

var (
	demoMonitor     bool
	demoMonitorPort int
	demoOutput      string
)

func init() {
	demoCmd.Flags().BoolVar(&demoMonitor, "monitor", false,
		"start the monitoring server")
	demoCmd.Flags().IntVar(&demoMonitorPort, "monitor-port",
		envInt("CLOCKMEM_MONITOR_PORT", 0),
		"port number of the monitoring server, 0 for random")
	demoCmd.Flags().StringVar(&demoOutput, "output", "",
		"name of the recording database, without extension")

	rootCmd.AddCommand(demoCmd)
}

type demoOp struct {
	reset   bool
	enqueue bool
	dequeue bool
	data    byte
}

// demoAgent sends one scripted request tuple per cycle and collects the
// dequeue responses. Messages that cannot leave the port stay pending so
// that no message of an op is ever sent twice.
type demoAgent struct {
	*sim.TickingComponent

	topPort sim.Port
	dst     sim.Port

	ops      []demoOp
	pending  []sim.Msg
	received []byte
}

func newDemoAgent(engine sim.Engine, ops []demoOp) *demoAgent {
	a := &demoAgent{ops: ops}
	a.TickingComponent = sim.NewTickingComponent("Agent", engine, a)
	a.topPort = sim.NewPort(a, 4, 4, "Agent.TopPort")
	a.AddPort("Top", a.topPort)

	return a
}

func (a *demoAgent) Tick() bool {
	madeProgress := a.collectResponses()

	if len(a.pending) == 0 && len(a.ops) > 0 {
		a.pending = a.opMessages(a.ops[0])
		a.ops = a.ops[1:]
	}

	for len(a.pending) > 0 {
		err := a.topPort.Send(a.pending[0])
		if err != nil {
			return madeProgress
		}

		a.pending = a.pending[1:]
		madeProgress = true
	}

	return madeProgress
}

func (a *demoAgent) collectResponses() bool {
	madeProgress := false

	for {
		msg := a.topPort.RetrieveIncoming()
		if msg == nil {
			break
		}

		rsp := msg.(*fifo.DequeueRsp)
		a.received = append(a.received, rsp.Data...)
		madeProgress = true
	}

	return madeProgress
}

func (a *demoAgent) opMessages(op demoOp) []sim.Msg {
	var msgs []sim.Msg

	if op.reset {
		msgs = append(msgs, fifo.ResetReqBuilder{}.
			WithSrc(a.topPort).
			WithDst(a.dst).
			Build())
	}

	if op.enqueue {
		msgs = append(msgs, fifo.EnqueueReqBuilder{}.
			WithSrc(a.topPort).
			WithDst(a.dst).
			WithData([]byte{op.data}).
			Build())
	}

	if op.dequeue {
		msgs = append(msgs, fifo.DequeueReqBuilder{}.
			WithSrc(a.topPort).
			WithDst(a.dst).
			Build())
	}

	return msgs
}

func runDemo(_ *cobra.Command, _ []string) {
	builder := simulation.MakeBuilder().WithOutputFileName(demoOutput)
	if !demoMonitor {
		builder = builder.WithoutMonitoring()
	}
	if demoMonitorPort != 0 {
		builder = builder.WithMonitorPort(demoMonitorPort)
	}

	s := builder.Build()
	defer s.Terminate()

	engine := s.GetEngine()

	fifoComp := fifo.MakeBuilder().
		WithEngine(engine).
		WithCapacity(4).
		WithWidth(1).
		Build("FIFO")
	s.RegisterComponent(fifoComp)

	logger := datarecording.NewStepLogger(s.GetDataRecorder(), "fifo_steps")
	fifoComp.Controller().AcceptHook(logger)

	ops := []demoOp{
		{reset: true},
		{enqueue: true, data: 0x11},
		{enqueue: true, data: 0x22},
		{enqueue: true, dequeue: true, data: 0x33},
		{dequeue: true},
		{dequeue: true},
	}

	agent := newDemoAgent(engine, ops)
	agent.dst = fifoComp.GetPortByName("Top")
	s.RegisterComponent(agent)

	conn := directconnection.MakeBuilder().WithEngine(engine).Build("Conn")
	conn.PlugIn(agent.GetPortByName("Top"))
	conn.PlugIn(fifoComp.GetPortByName("Top"))

	agent.TickLater()

	err := engine.Run()
	if err != nil {
		panic(err)
	}
	engine.Finished()

	fmt.Printf("dequeued elements: %x\n", agent.received)
	fmt.Printf("final count: %d, cycles: %d\n",
		fifoComp.Controller().Count(), engine.CurrentCycle())
}
