package engine

// KeyToggle starts a keyboard drag on item, or commits the active
// keyboard drag when pressed again on the same item. Activation while
// any other interaction is active is ignored.
func (e *Engine) KeyToggle(item int) bool {
	if e.world == nil {
		return false
	}
	if e.drag != nil {
		if e.drag.kind == DragKeyboard && e.drag.item == item {
			e.finish()
			return true
		}
		return false
	}
	if item < 0 || item >= len(e.bodies) {
		return false
	}
	if _, ok := e.world.State(e.bodies[item]); !ok {
		return false
	}

	e.drag = &dragState{
		kind:        DragKeyboard,
		item:        item,
		body:        e.bodies[item],
		orderBefore: cloneOrder(e.order),
	}
	e.armed = true
	return true
}

// KeyMove swaps the keyboard-dragged item with its neighbor delta
// slots away (-1 previous, +1 next). No swap happens at the list
// boundary. Unlike the pointer case, the dragged item keeps settling
// toward its new slot's target; there is no input position to follow.
func (e *Engine) KeyMove(delta int) bool {
	if e.drag == nil || e.drag.kind != DragKeyboard {
		return false
	}
	cur := slotOf(e.order, e.drag.item)
	next := cur + delta
	if cur < 0 || next < 0 || next >= len(e.order) {
		return false
	}
	e.order[cur], e.order[next] = e.order[next], e.order[cur]
	e.recomputeTargets()
	e.armed = true
	return true
}

// KeyCancel reverts the order to its state at activation and ends the
// keyboard drag without firing the order-change callback.
func (e *Engine) KeyCancel() bool {
	if e.drag == nil || e.drag.kind != DragKeyboard {
		return false
	}
	e.order = cloneOrder(e.drag.orderBefore)
	e.recomputeTargets()
	e.drag = nil
	e.armed = true
	return true
}
