package phys

// Integrator advances one body by dt using its accumulated force.
// The force accumulator is cleared by the world after each step.
type Integrator interface {
	Step(b *Body, dt float64)
}

// SemiImplicitEuler updates velocity before position, which keeps
// stiff spring systems from gaining energy the way explicit Euler does.
type SemiImplicitEuler struct{}

func NewSemiImplicitEuler() *SemiImplicitEuler {
	return &SemiImplicitEuler{}
}

func (e *SemiImplicitEuler) Step(b *Body, dt float64) {
	b.velocity = b.velocity.Add(b.acceleration().Scale(dt))
	b.position = b.position.Add(b.velocity.Scale(dt))
}

// VelocityVerlet averages the previous and current acceleration for the
// velocity update. The previous acceleration is cached per body id.
type VelocityVerlet struct {
	prevAcc map[BodyID]Vec
}

func NewVelocityVerlet() *VelocityVerlet {
	return &VelocityVerlet{prevAcc: make(map[BodyID]Vec)}
}

func (v *VelocityVerlet) Step(b *Body, dt float64) {
	acc := b.acceleration()
	prev, ok := v.prevAcc[b.id]
	if !ok {
		prev = acc
	}

	b.position = b.position.Add(b.velocity.Scale(dt)).Add(prev.Scale(0.5 * dt * dt))
	b.velocity = b.velocity.Add(prev.Add(acc).Scale(0.5 * dt))
	v.prevAcc[b.id] = acc
}

func (v *VelocityVerlet) forget(id BodyID) {
	delete(v.prevAcc, id)
}
