package engine

import (
	"math"
	"testing"

	"github.com/san-kum/springlist/internal/phys"
)

type recordingObserver struct {
	residuals []float64
}

func (r *recordingObserver) OnTick(residual float64, dragging bool) {
	r.residuals = append(r.residuals, residual)
}

func TestSettleConvergence(t *testing.T) {
	e, world := newTestEngine(t, 3, AxisVertical)
	obs := &recordingObserver{}
	e.AddObserver(obs)

	pos := phys.Vec{Y: 200}
	world.SetState(phys.BodyID(0), phys.StateOverride{Position: &pos})

	ticks := runUntilIdle(t, e, 600)
	if ticks == 0 {
		t.Fatal("expected settling to take at least one tick")
	}

	st, _ := world.State(phys.BodyID(0))
	if st.Position.Y != 0 || st.Velocity.Y != 0 {
		t.Errorf("expected exact snap onto target, got pos %f vel %f", st.Position.Y, st.Velocity.Y)
	}

	// critically damped: the residual never grows on the way down
	for i := 1; i < len(obs.residuals); i++ {
		if obs.residuals[i] > obs.residuals[i-1]+1e-6 {
			t.Errorf("residual increased at tick %d: %f -> %f", i, obs.residuals[i-1], obs.residuals[i])
			break
		}
	}

	if e.Active() {
		t.Error("expected idle driver after convergence")
	}
	if e.Tick(testDt) {
		t.Error("expected idle tick to report inactive")
	}
}

func TestIdleImpliesExactRest(t *testing.T) {
	e, world := newTestEngine(t, 3, AxisVertical)

	// several displacements so at least one body enters the epsilon
	// band mid-step rather than on a tick boundary
	for i, y := range []float64{200, 37.3, 141.9} {
		st, _ := world.State(phys.BodyID(i))
		pos := phys.Vec{Y: st.Position.Y + y}
		world.SetState(phys.BodyID(i), phys.StateOverride{Position: &pos})
	}

	runUntilIdle(t, e, 900)

	snap := e.Snapshot()
	for item, target := range snap.Targets {
		st, _ := world.State(e.bodies[item])
		if st.Position != target {
			t.Errorf("item %d: idle with position %v, want exactly %v", item, st.Position, target)
		}
		if (st.Velocity != phys.Vec{}) {
			t.Errorf("item %d: idle with velocity %v, want zero", item, st.Velocity)
		}
	}

	// the published frame must reflect the snapped state, not the
	// pre-snap integration result
	out := e.Output()
	for item, target := range snap.Targets {
		if out[item].Position != target {
			t.Errorf("item %d: output %v, want %v", item, out[item].Position, target)
		}
	}
}

func TestSettleSnapBand(t *testing.T) {
	e, world := newTestEngine(t, 2, AxisVertical)

	// inside both epsilon bands: one tick must snap exactly
	pos := phys.Vec{Y: 0.05}
	vel := phys.Vec{Y: 0.05}
	world.SetState(phys.BodyID(0), phys.StateOverride{Position: &pos, Velocity: &vel})

	e.Tick(testDt)

	st, _ := world.State(phys.BodyID(0))
	if st.Position.Y != 0 {
		t.Errorf("expected snapped position 0, got %f", st.Position.Y)
	}
	if st.Velocity.Y != 0 {
		t.Errorf("expected snapped velocity 0, got %f", st.Velocity.Y)
	}
}

func TestSettleMissingTargetDampsVelocity(t *testing.T) {
	e, world := newTestEngine(t, 2, AxisVertical)

	delete(e.targets, e.bodies[0])
	vel := phys.Vec{Y: 100}
	world.SetState(phys.BodyID(0), phys.StateOverride{Velocity: &vel})

	for i := 0; i < 10; i++ {
		e.Tick(testDt)
	}

	st, _ := world.State(phys.BodyID(0))
	if math.Abs(st.Velocity.Y) >= 100 {
		t.Errorf("expected velocity damped without a target, got %f", st.Velocity.Y)
	}
}

func TestSettleAllItemsConvergeAfterReorder(t *testing.T) {
	e, world := newTestEngine(t, 4, AxisVertical)

	e.KeyToggle(0)
	for i := 0; i < 3; i++ {
		e.KeyMove(+1)
	}
	e.KeyToggle(0) // commit [1,2,3,0]

	runUntilIdle(t, e, 900)

	snap := e.Snapshot()
	for item, target := range snap.Targets {
		st, _ := world.State(e.bodies[item])
		if math.Abs(st.Position.Y-target.Y) > DefaultPositionEpsilon {
			t.Errorf("item %d: expected position near %f, got %f", item, target.Y, st.Position.Y)
		}
	}
}
