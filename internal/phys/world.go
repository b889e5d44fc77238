package phys

import "sort"

type World struct {
	bodies     map[BodyID]*Body
	integrator Integrator
	nextID     BodyID
}

func NewWorld() *World {
	return &World{
		bodies:     make(map[BodyID]*Body),
		integrator: NewSemiImplicitEuler(),
	}
}

func (w *World) SetIntegrator(i Integrator) {
	if i != nil {
		w.integrator = i
	}
}

func (w *World) Create(def BodyDef) BodyID {
	id := w.nextID
	w.nextID++
	w.bodies[id] = newBody(id, def)
	return id
}

func (w *World) Remove(id BodyID) {
	delete(w.bodies, id)
	if v, ok := w.integrator.(*VelocityVerlet); ok {
		v.forget(id)
	}
}

func (w *World) Len() int { return len(w.bodies) }

func (w *World) Body(id BodyID) (*Body, bool) {
	b, ok := w.bodies[id]
	return b, ok
}

// ApplyForce accumulates f onto the body. Unknown ids are ignored.
func (w *World) ApplyForce(id BodyID, f Vec) {
	if b, ok := w.bodies[id]; ok {
		b.applyForce(f)
	}
}

func (w *World) State(id BodyID) (BodyState, bool) {
	b, ok := w.bodies[id]
	if !ok {
		return BodyState{}, false
	}
	return BodyState{Position: b.position, Velocity: b.velocity}, true
}

func (w *World) States() map[BodyID]BodyState {
	out := make(map[BodyID]BodyState, len(w.bodies))
	for id, b := range w.bodies {
		out[id] = BodyState{Position: b.position, Velocity: b.velocity}
	}
	return out
}

// SetState overwrites only the fields set in o. Unknown ids are ignored.
func (w *World) SetState(id BodyID, o StateOverride) {
	b, ok := w.bodies[id]
	if !ok {
		return
	}
	if o.Position != nil && o.Position.IsValid() {
		b.position = *o.Position
	}
	if o.Velocity != nil && o.Velocity.IsValid() {
		b.velocity = *o.Velocity
	}
}

// Step integrates every body by dt and clears force accumulators.
// Bodies are stepped in id order so runs are reproducible.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}
	ids := make([]BodyID, 0, len(w.bodies))
	for id := range w.bodies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		b := w.bodies[id]
		w.integrator.Step(b, dt)
		b.force = Vec{}
	}
}
