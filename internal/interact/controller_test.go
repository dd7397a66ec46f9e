package interact_test

import (
	"github.com/go-gl/mathgl/mgl64"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gravbox/internal/control"
	"github.com/san-kum/gravbox/internal/input"
	"github.com/san-kum/gravbox/internal/interact"
	"github.com/san-kum/gravbox/internal/sim"
)

var _ = Describe("Controller", func() {
	var (
		world *sim.World
		panel *control.Panel
		ctrl  *interact.Controller
	)

	handle := func(evs ...input.Event) bool {
		quit := false
		for _, ev := range evs {
			if ctrl.Handle(world, panel, ev) {
				quit = true
			}
		}
		return quit
	}

	BeforeEach(func() {
		world = sim.NewWorld()
		panel = control.NewPanel(control.DefaultLayout(700))
		ctrl = interact.NewController(interact.DefaultConfig(700))
	})

	Describe("creation gesture", func() {
		It("creates a body at the pointer with the current size and mass", func() {
			handle(input.Down(200, 150))

			Expect(world.Len()).To(Equal(1))
			b := world.Bodies()[0]
			Expect(b.Pos).To(Equal(mgl64.Vec2{200, 150}))
			Expect(b.Mass).To(Equal(225.0))
			Expect(b.Radius).To(Equal(15.0))
			Expect(b.Vel).To(Equal(mgl64.Vec2{}))
			Expect(ctrl.Armed()).To(BeTrue())
			Expect(ctrl.Pending().Body).To(BeIdenticalTo(b))
		})

		It("truncates the size slider to a whole radius", func() {
			Expect(panel.SetParam("size", 22.7)).To(Succeed())
			handle(input.Down(10, 10))
			Expect(world.Bodies()[0].Radius).To(Equal(22.0))
		})

		It("sets the launch velocity from the drag vector on release", func() {
			handle(input.Down(100, 100), input.Move(130, 60), input.Up(150, 80))

			b := world.Bodies()[0]
			Expect(b.Vel.X()).To(BeNumerically("~", 5.0, 1e-12))
			Expect(b.Vel.Y()).To(BeNumerically("~", -2.0, 1e-12))
			Expect(ctrl.Armed()).To(BeFalse())
		})

		It("gives a click without drag zero velocity", func() {
			handle(input.Down(300, 300), input.Up(300, 300))
			Expect(world.Bodies()[0].Vel).To(Equal(mgl64.Vec2{}))
		})

		It("exposes the aim line while armed", func() {
			_, _, ok := ctrl.Preview()
			Expect(ok).To(BeFalse())

			handle(input.Down(100, 100), input.Move(160, 120))
			start, end, ok := ctrl.Preview()
			Expect(ok).To(BeTrue())
			Expect(start).To(Equal(mgl64.Vec2{100, 100}))
			Expect(end).To(Equal(mgl64.Vec2{160, 120}))
		})

		It("tracks the cursor whether or not a gesture is armed", func() {
			handle(input.Move(30, 40))
			Expect(ctrl.Cursor()).To(Equal(mgl64.Vec2{30, 40}))

			handle(input.Down(100, 100), input.Up(120, 90))
			Expect(ctrl.Cursor()).To(Equal(mgl64.Vec2{120, 90}))
		})
	})

	Describe("control band", func() {
		It("does not arm on a pointer-down inside the band", func() {
			handle(input.Down(800, 650))
			Expect(world.Len()).To(BeZero())
			Expect(ctrl.Armed()).To(BeFalse())
		})

		It("treats the band edge as part of the band", func() {
			handle(input.Down(800, 600))
			Expect(world.Len()).To(BeZero())
		})

		It("drags a knob above the band and arms a gesture from the same press", func() {
			pos := mgl64.Vec2{panel.Size.KnobX(), 575}
			Expect(pos.Y()).To(BeNumerically("<", 600))

			handle(input.Event{Kind: input.PointerDown, Pos: pos})
			Expect(panel.Size.Dragging()).To(BeTrue())
			Expect(ctrl.Armed()).To(BeTrue())
			Expect(world.Len()).To(Equal(1))
			Expect(world.Bodies()[0].Pos).To(Equal(pos))
		})

		It("lets both systems observe the same stream", func() {
			handle(input.Event{Kind: input.PointerDown, Pos: panel.Mass.Knob()}, input.Move(250, 620), input.Up(250, 620))
			Expect(panel.Mass.Value()).To(Equal(2000.0))

			handle(input.Down(400, 300), input.Up(400, 300))
			Expect(world.Bodies()[0].Mass).To(Equal(2000.0))
		})
	})

	Describe("pointer-up without a gesture", func() {
		It("is a no-op", func() {
			Expect(func() { handle(input.Up(10, 10)) }).NotTo(Panic())
			Expect(world.Len()).To(BeZero())
		})
	})

	Describe("reset", func() {
		It("clears every body", func() {
			handle(input.Down(10, 10), input.Up(10, 10), input.Down(20, 20), input.Up(20, 20))
			Expect(world.Len()).To(Equal(2))

			handle(input.Key('r'))
			Expect(world.Len()).To(BeZero())
		})

		It("abandons an armed gesture and ignores the following pointer-up", func() {
			handle(input.Down(100, 100))
			pending := ctrl.Pending().Body

			handle(input.Key('r'))
			Expect(world.Len()).To(BeZero())
			Expect(ctrl.Armed()).To(BeFalse())

			Expect(func() { handle(input.Up(200, 200)) }).NotTo(Panic())
			Expect(world.Len()).To(BeZero())
			Expect(pending.Vel).To(Equal(mgl64.Vec2{}))
		})

		It("ignores other keys", func() {
			handle(input.Down(10, 10), input.Up(10, 10), input.Key('x'))
			Expect(world.Len()).To(Equal(1))
		})
	})

	Describe("quit", func() {
		It("reports quit and leaves state alone", func() {
			handle(input.Down(10, 10), input.Up(10, 10))
			Expect(handle(input.QuitEvent())).To(BeTrue())
			Expect(world.Len()).To(Equal(1))
		})
	})
})
