package engine

import "github.com/san-kum/springlist/internal/phys"

// PointerDown starts a pointer drag on item at the given input
// position. It reports false when another interaction is active, the
// item has no live body, or the grab point lies outside the item's
// bounds. A successful grab captures the interaction exclusively
// until PointerUp.
func (e *Engine) PointerDown(item int, at phys.Vec) bool {
	if e.world == nil || e.drag != nil || !at.IsValid() {
		return false
	}
	if item < 0 || item >= len(e.bodies) {
		return false
	}
	id := e.bodies[item]
	st, ok := e.world.State(id)
	if !ok {
		return false
	}
	ext := e.extents[id]
	if at.X < st.Position.X || at.X > st.Position.X+ext.Width ||
		at.Y < st.Position.Y || at.Y > st.Position.Y+ext.Height {
		return false
	}

	e.drag = &dragState{
		kind:        DragPointer,
		item:        item,
		body:        id,
		orderBefore: cloneOrder(e.order),
		grabOffset:  at.Sub(st.Position),
		pointer:     at,
	}
	e.armed = true
	return true
}

// PointerMove records the latest input position. Forces are applied
// on the next tick, not here, so event rate never outruns the
// simulation.
func (e *Engine) PointerMove(at phys.Vec) {
	if e.drag == nil || e.drag.kind != DragPointer {
		return
	}
	if at.IsValid() {
		e.drag.pointer = at
	}
}

// PointerUp releases the drag and commits the interaction. The
// previously dragged body re-enters the settling pool with its
// kinematic state intact.
func (e *Engine) PointerUp() {
	if e.drag == nil || e.drag.kind != DragPointer {
		return
	}
	e.finish()
}

// pointerStep runs once per tick while a pointer drag is active: pull
// the dragged body toward the pointer with the stiffer drag spring,
// then splice it into a new slot if its center crossed a neighbor
// threshold.
func (e *Engine) pointerStep(states map[phys.BodyID]phys.BodyState) {
	d := e.drag
	st, ok := states[d.body]
	if !ok {
		e.diag.StaleBodies++
		return
	}

	want := d.pointer.Sub(d.grabOffset)
	var f phys.Vec
	if e.opts.Axis.dragX() {
		f.X = (want.X-st.Position.X)*e.opts.Drag.Tension - st.Velocity.X*e.opts.Drag.Friction
	} else {
		f.X = -st.Velocity.X * e.opts.Drag.Friction
	}
	if e.opts.Axis.dragY() {
		f.Y = (want.Y-st.Position.Y)*e.opts.Drag.Tension - st.Velocity.Y*e.opts.Drag.Friction
	} else {
		f.Y = -st.Velocity.Y * e.opts.Drag.Friction
	}
	e.world.ApplyForce(d.body, f)

	ext := e.extents[d.body]
	var center float64
	if e.opts.Axis.primaryVertical() {
		center = st.Position.Y + ext.Height/2
	} else {
		center = st.Position.X + ext.Width/2
	}

	slot := e.slotForCenter(center)
	cur := slotOf(e.order, d.item)
	if slot != cur && cur >= 0 {
		e.splice(cur, slot)
		// Everyone else gets a fresh target; the dragged body's own
		// entry is pointer-driven and ignored until release.
		e.recomputeTargets()
	}
}

// slotForCenter walks the display order accumulating each non-dragged
// item's extent + spacing; the dragged item belongs in the first slot
// whose cumulative threshold exceeds its center, or the last slot if
// none does.
func (e *Engine) slotForCenter(center float64) int {
	threshold := 0.0
	slot := 0
	for _, item := range e.order {
		if item == e.drag.item {
			continue
		}
		id := e.bodies[item]
		threshold += e.extents[id].along(e.opts.Axis) + e.opts.Spacing
		if center < threshold {
			return slot
		}
		slot++
	}
	return len(e.order) - 1
}

// splice moves the item at slot from to slot to with a single
// remove + insert.
func (e *Engine) splice(from, to int) {
	item := e.order[from]
	e.order = append(e.order[:from], e.order[from+1:]...)
	e.order = append(e.order, 0)
	copy(e.order[to+1:], e.order[to:])
	e.order[to] = item
}
