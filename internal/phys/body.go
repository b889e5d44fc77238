package phys

const DefaultMass = 1.0

type BodyID int

// BodyDef describes a body at creation time.
type BodyDef struct {
	Position Vec
	Extent   Vec
	Mass     float64
	Tag      any
}

// BodyState is the kinematic state reported back to callers.
type BodyState struct {
	Position Vec
	Velocity Vec
}

// StateOverride replaces only the fields that are non-nil.
type StateOverride struct {
	Position *Vec
	Velocity *Vec
}

type Body struct {
	Tag any

	id          BodyID
	position    Vec
	velocity    Vec
	force       Vec
	mass        float64
	massInverse float64
	extent      Vec
}

func newBody(id BodyID, def BodyDef) *Body {
	mass := def.Mass
	if mass <= 0 {
		mass = DefaultMass
	}
	return &Body{
		Tag:         def.Tag,
		id:          id,
		position:    def.Position,
		mass:        mass,
		massInverse: 1 / mass,
		extent:      def.Extent,
	}
}

func (b *Body) ID() BodyID    { return b.id }
func (b *Body) Position() Vec { return b.position }
func (b *Body) Velocity() Vec { return b.velocity }
func (b *Body) Extent() Vec   { return b.extent }
func (b *Body) Mass() float64 { return b.mass }

// Center returns the body's midpoint, position being its leading corner.
func (b *Body) Center() Vec {
	return b.position.Add(b.extent.Scale(0.5))
}

func (b *Body) applyForce(f Vec) {
	if !f.IsValid() {
		return
	}
	b.force = b.force.Add(f)
}

func (b *Body) acceleration() Vec {
	return b.force.Scale(b.massInverse)
}
