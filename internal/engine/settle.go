package engine

import (
	"math"

	"github.com/san-kum/springlist/internal/phys"
)

// settleStep applies one frame of spring force toward each body's
// slot target. A body inside both the position and velocity epsilon
// bands is snapped exactly onto its target with velocity zeroed, so
// micro-oscillation can never keep the driver armed. A pointer-dragged
// body is exempt; it is driven by pointerStep instead.
func (e *Engine) settleStep(states map[phys.BodyID]phys.BodyState) {
	exempt := phys.BodyID(-1)
	if e.drag != nil && e.drag.kind == DragPointer {
		exempt = e.drag.body
	}

	for _, id := range e.bodies {
		if id == exempt {
			continue
		}
		st, ok := states[id]
		if !ok {
			e.diag.StaleBodies++
			continue
		}
		target, ok := e.targets[id]
		if !ok {
			// No destination yet (mid-reinitialization): bleed
			// velocity so the body cannot drift unbounded.
			e.world.ApplyForce(id, st.Velocity.Scale(-e.opts.Settle.Friction))
			continue
		}

		dx := target.X - st.Position.X
		dy := target.Y - st.Position.Y
		if math.Abs(dx) < e.opts.PositionEpsilon && math.Abs(dy) < e.opts.PositionEpsilon &&
			math.Abs(st.Velocity.X) < e.opts.VelocityEpsilon && math.Abs(st.Velocity.Y) < e.opts.VelocityEpsilon {
			snap := target
			zero := phys.Vec{}
			e.world.SetState(id, phys.StateOverride{Position: &snap, Velocity: &zero})
			continue
		}

		e.world.ApplyForce(id, phys.Vec{
			X: dx*e.opts.Settle.Tension - st.Velocity.X*e.opts.Settle.Friction,
			Y: dy*e.opts.Settle.Tension - st.Velocity.Y*e.opts.Settle.Friction,
		})
	}
}
