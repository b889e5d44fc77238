package engine

import (
	"math"

	"github.com/san-kum/springlist/internal/phys"
)

// Tick runs one cooperative frame: apply settle forces for every
// non-dragged body, run the pointer drag step if one is active, step
// the world, then derive and publish visual output. All force
// application happens before any state is read back for output, so a
// frame's visuals are consistent with that frame's physics step.
//
// It reports whether the engine still wants another tick. An idle
// engine (everything at rest, no interaction) returns false without
// touching the world.
func (e *Engine) Tick(dt float64) bool {
	if e.world == nil || len(e.bodies) == 0 {
		return false
	}
	if !e.armed && e.drag == nil {
		return false
	}

	pre := e.world.States()
	e.settleStep(pre)
	if e.drag != nil && e.drag.kind == DragPointer {
		e.pointerStep(pre)
	}

	e.world.Step(dt)

	post := e.world.States()
	residual, moving := e.restCheck(post)
	for _, obs := range e.observers {
		obs.OnTick(residual, e.drag != nil)
	}
	e.deriveOutput(post)

	e.armed = moving || e.drag != nil
	return e.armed
}

// restCheck returns the worst position residual over settling bodies
// and whether anything is still in motion. A body the step carried
// into both epsilon bands is snapped exactly onto its target here, so
// the driver never disarms with a body off-target: the snap and the
// rest decision act on the same post-step state.
func (e *Engine) restCheck(states map[phys.BodyID]phys.BodyState) (float64, bool) {
	exempt := phys.BodyID(-1)
	if e.drag != nil && e.drag.kind == DragPointer {
		exempt = e.drag.body
	}

	residual := 0.0
	moving := false
	for _, id := range e.bodies {
		st, ok := states[id]
		if !ok {
			continue
		}
		target, hasTarget := e.targets[id]
		if id == exempt || !hasTarget {
			if math.Abs(st.Velocity.X) >= e.opts.VelocityEpsilon || math.Abs(st.Velocity.Y) >= e.opts.VelocityEpsilon {
				moving = true
			}
			continue
		}

		dx := target.X - st.Position.X
		dy := target.Y - st.Position.Y
		if r := math.Max(math.Abs(dx), math.Abs(dy)); r > residual {
			residual = r
		}

		if math.Abs(dx) < e.opts.PositionEpsilon && math.Abs(dy) < e.opts.PositionEpsilon &&
			math.Abs(st.Velocity.X) < e.opts.VelocityEpsilon && math.Abs(st.Velocity.Y) < e.opts.VelocityEpsilon {
			if st.Position != target || st.Velocity != (phys.Vec{}) {
				snap := target
				zero := phys.Vec{}
				e.world.SetState(id, phys.StateOverride{Position: &snap, Velocity: &zero})
				states[id] = phys.BodyState{Position: target}
			}
			continue
		}
		moving = true
	}
	return residual, moving
}

// deriveOutput rebuilds the per-item visual batch and publishes it
// only when it differs from the previous one.
func (e *Engine) deriveOutput(states map[phys.BodyID]phys.BodyState) {
	out := make([]VisualOutput, len(e.bodies))
	for i, id := range e.bodies {
		st, ok := states[id]
		if !ok {
			st.Position = e.targets[id]
		}
		v := VisualOutput{Position: st.Position, Scale: 1, Cursor: CursorGrab}
		if e.drag != nil && e.drag.item == i {
			v.Lift = e.opts.Lift
			v.Scale = 1 + e.opts.ScaleDelta
			v.Shadow = e.opts.Shadow
			v.ZIndex = 1
			v.Cursor = CursorGrabbing
			v.Dragged = true
		}
		out[i] = v
	}
	e.publish(out)
}

func (e *Engine) publish(out []VisualOutput) {
	if equalOutputs(out, e.output) {
		return
	}
	e.output = out
	e.outputVersion++
}

func equalOutputs(a, b []VisualOutput) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
