package engine

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/san-kum/springlist/internal/phys"
)

// End-to-end interaction scripts over 50-high items with spacing 10,
// matching the geometry the rest of the suite uses.

func TestScenarioPointerReorder(t *testing.T) {
	g := NewWithT(t)
	e, _ := newTestEngine(t, 3, AxisVertical)
	runUntilIdle(t, e, 100)

	var committed [][]int
	e.OnReorder(func(order []int) { committed = append(committed, order) })

	g.Expect(e.PointerDown(0, phys.Vec{X: 50, Y: 25})).To(BeTrue())
	e.PointerMove(phys.Vec{X: 50, Y: 70})
	for i := 0; i < 240; i++ {
		e.Tick(testDt)
	}

	g.Expect(e.Order()).To(Equal([]int{1, 0, 2}), "order should change before release")
	g.Expect(committed).To(BeEmpty(), "notification must wait for release")

	e.PointerUp()
	g.Expect(committed).To(HaveLen(1))
	g.Expect(committed[0]).To(Equal([]int{1, 0, 2}))
}

func TestScenarioKeyboardSwapThenCancel(t *testing.T) {
	g := NewWithT(t)
	e, _ := newTestEngine(t, 3, AxisVertical)

	var calls int
	e.OnReorder(func([]int) { calls++ })

	g.Expect(e.KeyToggle(0)).To(BeTrue())
	g.Expect(e.KeyMove(+1)).To(BeTrue())
	g.Expect(e.Order()).To(Equal([]int{1, 0, 2}))

	g.Expect(e.KeyCancel()).To(BeTrue())
	g.Expect(e.Order()).To(Equal([]int{0, 1, 2}), "cancel must be lossless")
	g.Expect(calls).To(BeZero())
}

func TestScenarioItemCountChangeMidIdle(t *testing.T) {
	g := NewWithT(t)
	e, world := newTestEngine(t, 3, AxisVertical)
	runUntilIdle(t, e, 100)
	g.Expect(e.Active()).To(BeFalse())

	e.SetItems(fixedMeasures(4, 100, 50))

	g.Expect(e.Active()).To(BeTrue(), "re-initialization must re-arm the driver")
	g.Expect(world.Len()).To(Equal(4))
	g.Expect(e.Snapshot().Targets).To(HaveLen(4))

	runUntilIdle(t, e, 100)
	g.Expect(e.Order()).To(Equal([]int{0, 1, 2, 3}))
}
