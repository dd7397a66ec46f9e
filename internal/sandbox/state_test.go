package sandbox_test

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gravbox/internal/config"
	"github.com/san-kum/gravbox/internal/input"
	"github.com/san-kum/gravbox/internal/physics"
	"github.com/san-kum/gravbox/internal/render"
	"github.com/san-kum/gravbox/internal/sandbox"
	"github.com/san-kum/gravbox/internal/sim"
)

type countingSurface struct {
	circles, lines, texts int
	firstLine             colorful.Color
}

func (c *countingSurface) Circle(mgl64.Vec2, float64, colorful.Color) { c.circles++ }
func (c *countingSurface) Line(_, _ mgl64.Vec2, col colorful.Color, _ float64) {
	if c.lines == 0 {
		c.firstLine = col
	}
	c.lines++
}
func (c *countingSurface) Text(string, mgl64.Vec2, colorful.Color) { c.texts++ }

var _ = Describe("State", func() {
	var st *sandbox.State

	BeforeEach(func() {
		st = sandbox.New(config.Default())
	})

	It("steps exactly once per frame", func() {
		Expect(st.Frame(nil)).To(BeFalse())
		Expect(st.Frame(nil)).To(BeFalse())
		Expect(st.Ticks).To(Equal(2))
	})

	It("integrates a body created in the same frame", func() {
		st.Frame([]input.Event{input.Down(100, 100), input.Up(110, 100)})

		Expect(st.World.Len()).To(Equal(1))
		b := st.World.Bodies()[0]
		Expect(b.Trail.Len()).To(Equal(1))
		Expect(b.Pos.X()).To(BeNumerically("~", 100+1*0.05, 1e-12))
	})

	It("stops without stepping on quit", func() {
		Expect(st.Frame([]input.Event{input.QuitEvent(), input.Down(10, 10)})).To(BeTrue())
		Expect(st.Ticks).To(BeZero())
		Expect(st.World.Len()).To(BeZero())
	})

	It("reads gravity from the slider every tick", func() {
		st.World.Add(physics.NewBody(mgl64.Vec2{0, 0}, 1000, 10, 0))
		probe := physics.NewBody(mgl64.Vec2{100, 0}, 1, 5, 0)
		st.World.Add(probe)

		Expect(st.Controls.SetParam("gravity", 300)).To(Succeed())
		st.Step()
		Expect(probe.Vel.X()).To(BeNumerically("~", -300*1000/10000.0*st.Dt, 1e-6))
	})

	It("notifies observers after each step", func() {
		var seen []int
		st.AddObserver(sim.ObserverFunc(func(_ []*physics.Body, step int) {
			seen = append(seen, step)
		}))
		st.Frame(nil)
		st.Frame(nil)
		Expect(seen).To(Equal([]int{1, 2}))
	})

	It("seeds a preset and moves the gravity slider", func() {
		p, err := config.GetPreset("orbit")
		Expect(err).NotTo(HaveOccurred())
		st.Seed(p)
		Expect(st.World.Len()).To(Equal(3))
		Expect(st.Gravity()).To(BeNumerically("~", 100, 1e-9))
	})

	It("draws the aim line first while a gesture is armed", func() {
		st.Frame([]input.Event{input.Down(100, 100), input.Move(150, 150)})

		surf := &countingSurface{}
		st.Draw(surf)
		Expect(surf.lines).To(Equal(4))
		Expect(surf.firstLine).To(Equal(render.Red))
		Expect(surf.texts).To(Equal(3))
		// one trail dot + body + three knobs
		Expect(surf.circles).To(Equal(5))
	})
})
