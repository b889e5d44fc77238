package engine

import "github.com/san-kum/springlist/internal/phys"

// recomputeTargets rebuilds every body's slot target by walking the
// display order and accumulating extent + spacing along the primary
// axis. The cross axis is always 0. Must run after any order or
// extent change.
func (e *Engine) recomputeTargets() {
	offset := 0.0
	for _, item := range e.order {
		id := e.bodies[item]
		var target phys.Vec
		if e.opts.Axis.primaryVertical() {
			target.Y = offset
		} else {
			target.X = offset
		}
		e.targets[id] = target
		offset += e.extents[id].along(e.opts.Axis) + e.opts.Spacing
	}
}
