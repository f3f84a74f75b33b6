package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"
)

var _ = Describe("TickScheduler", func() {
	var (
		mockCtrl  *gomock.Controller
		engine    *MockEngine
		handler   *MockHandler
		scheduler *TickScheduler
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		engine = NewMockEngine(mockCtrl)
		handler = NewMockHandler(mockCtrl)
		scheduler = NewTickScheduler(handler, engine)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should schedule a tick at the current cycle", func() {
		engine.EXPECT().CurrentCycle().Return(Cycle(10))
		engine.EXPECT().
			Schedule(gomock.Any()).
			Do(func(e Event) {
				Expect(e.Cycle()).To(Equal(Cycle(10)))
				Expect(e.IsSecondary()).To(BeFalse())
			})

		scheduler.TickNow()
	})

	It("should schedule a tick at the next cycle", func() {
		engine.EXPECT().CurrentCycle().Return(Cycle(10))
		engine.EXPECT().
			Schedule(gomock.Any()).
			Do(func(e Event) {
				Expect(e.Cycle()).To(Equal(Cycle(11)))
			})

		scheduler.TickLater()
	})

	It("should not schedule the same cycle twice", func() {
		engine.EXPECT().CurrentCycle().Return(Cycle(10)).Times(2)
		engine.EXPECT().Schedule(gomock.Any()).Times(1)

		scheduler.TickLater()
		scheduler.TickLater()
	})

	It("should schedule secondary ticks from a secondary scheduler", func() {
		scheduler = NewSecondaryTickScheduler(handler, engine)

		engine.EXPECT().CurrentCycle().Return(Cycle(10))
		engine.EXPECT().
			Schedule(gomock.Any()).
			Do(func(e Event) {
				Expect(e.IsSecondary()).To(BeTrue())
			})

		scheduler.TickNow()
	})
})

var _ = Describe("TickingComponent", func() {
	var (
		mockCtrl *gomock.Controller
		engine   *MockEngine
		ticker   *MockTicker
		comp     *TickingComponent
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		engine = NewMockEngine(mockCtrl)
		ticker = NewMockTicker(mockCtrl)
		comp = NewTickingComponent("Comp", engine, ticker)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should keep ticking while making progress", func() {
		ticker.EXPECT().Tick().Return(true)
		engine.EXPECT().CurrentCycle().Return(Cycle(4))
		engine.EXPECT().
			Schedule(gomock.Any()).
			Do(func(e Event) {
				Expect(e.Cycle()).To(Equal(Cycle(5)))
			})

		err := comp.Handle(MakeTickEvent(comp, 4))

		Expect(err).To(BeNil())
	})

	It("should stop ticking when no progress is made", func() {
		ticker.EXPECT().Tick().Return(false)

		err := comp.Handle(MakeTickEvent(comp, 4))

		Expect(err).To(BeNil())
	})
})
