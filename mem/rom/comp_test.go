package rom

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/clockmem/mem"
	"github.com/sarchlab/clockmem/sim"
	"github.com/sarchlab/clockmem/sim/directconnection"
)

// requester sends its prepared requests one per cycle and collects the
// responses.
type requester struct {
	*sim.TickingComponent

	port     sim.Port
	toSend   []sim.Msg
	received []sim.Msg
}

func newRequester(name string, engine sim.Engine) *requester {
	r := &requester{}
	r.TickingComponent = sim.NewTickingComponent(name, engine, r)
	r.port = sim.NewPort(r, 4, 4, name+".Port")
	r.AddPort("Port", r.port)

	return r
}

func (r *requester) Tick() bool {
	madeProgress := false

	for {
		msg := r.port.RetrieveIncoming()
		if msg == nil {
			break
		}

		r.received = append(r.received, msg)
		madeProgress = true
	}

	if len(r.toSend) > 0 {
		err := r.port.Send(r.toSend[0])
		if err == nil {
			r.toSend = r.toSend[1:]
			madeProgress = true
		}
	}

	return madeProgress
}

var _ = Describe("Comp", func() {
	var (
		engine *sim.SerialEngine
		rom    *Comp
		agent  *requester
	)

	BeforeEach(func() {
		engine = sim.NewSerialEngine()

		rom = MakeBuilder().
			WithEngine(engine).
			WithCapacity(1 * mem.KB).
			WithImage([]byte{0xde, 0xad, 0xbe, 0xef}).
			Build("ROM")

		agent = newRequester("Agent", engine)

		conn := directconnection.MakeBuilder().
			WithEngine(engine).
			Build("Conn")
		conn.PlugIn(agent.port)
		conn.PlugIn(rom.GetPortByName("Top"))
	})

	It("should serve reads from the image", func() {
		readReq := mem.ReadReqBuilder{}.
			WithSrc(agent.port).
			WithDst(rom.GetPortByName("Top")).
			WithAddress(0).
			WithByteSize(4).
			Build()
		agent.toSend = append(agent.toSend, readReq)

		agent.TickLater()
		err := engine.Run()
		Expect(err).To(BeNil())

		Expect(agent.received).To(HaveLen(1))

		dataReady := agent.received[0].(*mem.DataReadyRsp)
		Expect(dataReady.RespondTo).To(Equal(readReq.ID))
		Expect(dataReady.Data).To(Equal([]byte{0xde, 0xad, 0xbe, 0xef}))
	})

	It("should return zeros beyond the image", func() {
		readReq := mem.ReadReqBuilder{}.
			WithSrc(agent.port).
			WithDst(rom.GetPortByName("Top")).
			WithAddress(0x100).
			WithByteSize(2).
			Build()
		agent.toSend = append(agent.toSend, readReq)

		agent.TickLater()
		err := engine.Run()
		Expect(err).To(BeNil())

		dataReady := agent.received[0].(*mem.DataReadyRsp)
		Expect(dataReady.Data).To(Equal([]byte{0, 0}))
	})

	It("should treat a write request as a hard fault", func() {
		writeReq := mem.WriteReqBuilder{}.
			WithSrc(agent.port).
			WithDst(rom.GetPortByName("Top")).
			WithAddress(0).
			WithData([]byte{1}).
			Build()
		agent.toSend = append(agent.toSend, writeReq)

		agent.TickLater()

		Expect(func() { _ = engine.Run() }).To(Panic())
	})
})
