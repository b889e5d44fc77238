package phys

import (
	"math"
	"testing"
)

func TestWorldLifecycle(t *testing.T) {
	w := NewWorld()

	a := w.Create(BodyDef{Position: Vec{X: 1, Y: 2}, Mass: 1})
	b := w.Create(BodyDef{Position: Vec{X: 3, Y: 4}, Mass: 2})

	if w.Len() != 2 {
		t.Errorf("expected 2 bodies, got %d", w.Len())
	}
	if a == b {
		t.Error("expected distinct ids")
	}

	st, ok := w.State(a)
	if !ok {
		t.Fatal("expected state for body a")
	}
	if st.Position != (Vec{X: 1, Y: 2}) {
		t.Errorf("expected position {1 2}, got %v", st.Position)
	}

	w.Remove(a)
	if w.Len() != 1 {
		t.Errorf("expected 1 body after remove, got %d", w.Len())
	}
	if _, ok := w.State(a); ok {
		t.Error("expected no state for removed body")
	}
}

func TestWorldUnknownIDNoOps(t *testing.T) {
	w := NewWorld()
	id := w.Create(BodyDef{Mass: 1})
	w.Remove(id)

	// none of these may panic or create state
	w.ApplyForce(id, Vec{X: 10})
	pos := Vec{X: 5}
	w.SetState(id, StateOverride{Position: &pos})
	w.Remove(id)

	if _, ok := w.State(id); ok {
		t.Error("expected no state after remove")
	}
	states := w.States()
	if len(states) != 0 {
		t.Errorf("expected empty state map, got %d entries", len(states))
	}
}

func TestWorldForceIntegration(t *testing.T) {
	w := NewWorld()
	id := w.Create(BodyDef{Mass: 2})

	w.ApplyForce(id, Vec{X: 4})
	w.Step(0.5)

	st, _ := w.State(id)
	// a = F/m = 2, v = a*dt = 1, p = v*dt = 0.5
	if math.Abs(st.Velocity.X-1.0) > 1e-9 {
		t.Errorf("expected velocity 1.0, got %f", st.Velocity.X)
	}
	if math.Abs(st.Position.X-0.5) > 1e-9 {
		t.Errorf("expected position 0.5, got %f", st.Position.X)
	}

	// force accumulator must be cleared after the step
	w.Step(0.5)
	st, _ = w.State(id)
	if math.Abs(st.Velocity.X-1.0) > 1e-9 {
		t.Errorf("expected velocity unchanged without force, got %f", st.Velocity.X)
	}
}

func TestWorldForceAccumulates(t *testing.T) {
	w := NewWorld()
	id := w.Create(BodyDef{Mass: 1})

	w.ApplyForce(id, Vec{X: 1})
	w.ApplyForce(id, Vec{X: 2})
	w.Step(1)

	st, _ := w.State(id)
	if math.Abs(st.Velocity.X-3.0) > 1e-9 {
		t.Errorf("expected accumulated velocity 3.0, got %f", st.Velocity.X)
	}
}

func TestWorldSetStatePartial(t *testing.T) {
	w := NewWorld()
	id := w.Create(BodyDef{Position: Vec{X: 1, Y: 1}})
	vel := Vec{X: 7}
	w.SetState(id, StateOverride{Velocity: &vel})

	st, _ := w.State(id)
	if st.Position != (Vec{X: 1, Y: 1}) {
		t.Errorf("expected position untouched, got %v", st.Position)
	}
	if st.Velocity != (Vec{X: 7}) {
		t.Errorf("expected velocity {7 0}, got %v", st.Velocity)
	}
}

func TestWorldRejectsInvalidInput(t *testing.T) {
	w := NewWorld()
	id := w.Create(BodyDef{Mass: 1})

	w.ApplyForce(id, Vec{X: math.NaN()})
	w.Step(1)
	st, _ := w.State(id)
	if st.Velocity.X != 0 {
		t.Errorf("expected NaN force ignored, got velocity %f", st.Velocity.X)
	}

	bad := Vec{X: math.Inf(1)}
	w.SetState(id, StateOverride{Position: &bad})
	st, _ = w.State(id)
	if st.Position.X != 0 {
		t.Errorf("expected Inf position ignored, got %f", st.Position.X)
	}
}

func TestWorldDefaultMass(t *testing.T) {
	w := NewWorld()
	id := w.Create(BodyDef{Mass: -3})
	b, _ := w.Body(id)
	if b.Mass() != DefaultMass {
		t.Errorf("expected default mass for invalid input, got %f", b.Mass())
	}
}

func TestBodyCenter(t *testing.T) {
	w := NewWorld()
	id := w.Create(BodyDef{Position: Vec{X: 10, Y: 20}, Extent: Vec{X: 4, Y: 6}})
	b, _ := w.Body(id)
	if b.Center() != (Vec{X: 12, Y: 23}) {
		t.Errorf("expected center {12 23}, got %v", b.Center())
	}
}
