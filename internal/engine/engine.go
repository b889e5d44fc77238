package engine

import "github.com/san-kum/springlist/internal/phys"

const (
	DefaultSpacing        = 10.0
	DefaultMass           = 1.0
	DefaultSettleTension  = 170.0
	DefaultSettleFriction = 26.0
	DefaultDragTension    = 300.0
	DefaultDragFriction   = 30.0

	DefaultPositionEpsilon = 0.1
	DefaultVelocityEpsilon = 0.1

	DefaultLift       = 8.0
	DefaultScaleDelta = 0.05
	DefaultShadow     = 16.0
)

type Options struct {
	Spacing float64
	Axis    Axis
	Mass    float64

	Settle Spring
	Drag   Spring

	Lift       float64
	ScaleDelta float64
	Shadow     float64

	FallbackExtent  Extent
	PositionEpsilon float64
	VelocityEpsilon float64
}

func DefaultOptions() Options {
	return Options{
		Spacing:         DefaultSpacing,
		Axis:            AxisVertical,
		Mass:            DefaultMass,
		Settle:          Spring{Tension: DefaultSettleTension, Friction: DefaultSettleFriction},
		Drag:            Spring{Tension: DefaultDragTension, Friction: DefaultDragFriction},
		Lift:            DefaultLift,
		ScaleDelta:      DefaultScaleDelta,
		Shadow:          DefaultShadow,
		FallbackExtent:  Extent{Width: 100, Height: 50},
		PositionEpsilon: DefaultPositionEpsilon,
		VelocityEpsilon: DefaultVelocityEpsilon,
	}
}

type Engine struct {
	opts  Options
	world BodyWorld

	order   []int                     // slot -> original index
	bodies  []phys.BodyID             // original index -> body
	extents map[phys.BodyID]Extent    // measured at (re)initialization
	targets map[phys.BodyID]phys.Vec  // recomputed on order/extent change
	drag    *dragState                // nil while idle

	armed         bool
	output        []VisualOutput
	outputVersion int

	onReorder func([]int)
	observers []Observer
	diag      Diagnostics
}

// New creates an engine against world. A nil world yields a degraded
// engine: no bodies, static output, every interaction rejected.
func New(world BodyWorld, opts Options) *Engine {
	if opts.Mass <= 0 {
		opts.Mass = DefaultMass
	}
	if opts.PositionEpsilon <= 0 {
		opts.PositionEpsilon = DefaultPositionEpsilon
	}
	if opts.VelocityEpsilon <= 0 {
		opts.VelocityEpsilon = DefaultVelocityEpsilon
	}
	if !opts.FallbackExtent.valid() {
		opts.FallbackExtent = DefaultOptions().FallbackExtent
	}
	return &Engine{
		opts:    opts,
		world:   world,
		extents: make(map[phys.BodyID]Extent),
		targets: make(map[phys.BodyID]phys.Vec),
	}
}

// OnReorder registers the order-change callback. It is invoked with
// the full committed order exactly once per committed interaction,
// and never when the committed order matches the order at grab time.
func (e *Engine) OnReorder(fn func([]int)) { e.onReorder = fn }

func (e *Engine) AddObserver(o Observer) {
	if o != nil {
		e.observers = append(e.observers, o)
	}
}

// SetItems (re)initializes the engine for the given measurement
// handles. Bodies are recreated only when the item count changes, so
// in-flight motion survives incidental re-measurement. The frame
// driver is re-armed either way.
func (e *Engine) SetItems(measures []Measure) {
	if e.world == nil {
		e.staticOutput(measures)
		return
	}

	if len(measures) != len(e.bodies) {
		e.teardownBodies()
		e.initBodies(measures)
	} else {
		for i, id := range e.bodies {
			e.extents[id] = e.readExtent(measures[i])
		}
		e.recomputeTargets()
	}
	e.armed = true
}

func (e *Engine) initBodies(measures []Measure) {
	n := len(measures)
	e.order = make([]int, n)
	e.bodies = make([]phys.BodyID, n)

	exts := make([]Extent, n)
	for i := range measures {
		e.order[i] = i
		exts[i] = e.readExtent(measures[i])
	}

	// Place each body directly on its slot target so a fresh list
	// starts at rest instead of flying in from the origin.
	offset := 0.0
	for i := 0; i < n; i++ {
		var pos phys.Vec
		if e.opts.Axis.primaryVertical() {
			pos.Y = offset
		} else {
			pos.X = offset
		}
		id := e.world.Create(phys.BodyDef{
			Position: pos,
			Extent:   exts[i].vec(),
			Mass:     e.opts.Mass,
			Tag:      i,
		})
		e.bodies[i] = id
		e.extents[id] = exts[i]
		offset += exts[i].along(e.opts.Axis) + e.opts.Spacing
	}
	e.recomputeTargets()
}

func (e *Engine) teardownBodies() {
	// Removing the dragged item's body ends the interaction with it.
	e.drag = nil
	for _, id := range e.bodies {
		e.world.Remove(id)
	}
	e.order = nil
	e.bodies = nil
	e.extents = make(map[phys.BodyID]Extent)
	e.targets = make(map[phys.BodyID]phys.Vec)
	e.output = nil
}

// Close removes all bodies and clears interaction state.
func (e *Engine) Close() {
	if e.world == nil {
		return
	}
	e.teardownBodies()
	e.armed = false
}

func (e *Engine) readExtent(m Measure) Extent {
	if m != nil {
		if ext, ok := m(); ok && ext.valid() {
			return ext
		}
	}
	e.diag.FallbackExtents++
	return e.opts.FallbackExtent
}

// staticOutput serves the degraded no-simulator mode: items sit on
// their layout offsets and never move.
func (e *Engine) staticOutput(measures []Measure) {
	out := make([]VisualOutput, len(measures))
	offset := 0.0
	for i := range measures {
		ext := e.readExtent(measures[i])
		v := VisualOutput{Scale: 1, Cursor: CursorGrab}
		if e.opts.Axis.primaryVertical() {
			v.Position.Y = offset
		} else {
			v.Position.X = offset
		}
		out[i] = v
		offset += ext.along(e.opts.Axis) + e.opts.Spacing
	}
	e.order = make([]int, len(measures))
	for i := range e.order {
		e.order[i] = i
	}
	e.bodies = nil
	e.publish(out)
}

func (e *Engine) Len() int { return len(e.order) }

// Order returns a copy of the current display order.
func (e *Engine) Order() []int { return cloneOrder(e.order) }

// Active reports whether another tick is wanted.
func (e *Engine) Active() bool { return e.armed || e.drag != nil }

func (e *Engine) Diagnostics() Diagnostics { return e.diag }

// Output returns a copy of the last published visual batch, indexed
// by original index.
func (e *Engine) Output() []VisualOutput {
	out := make([]VisualOutput, len(e.output))
	copy(out, e.output)
	return out
}

// OutputVersion increments only when a published batch differs from
// the previous one.
func (e *Engine) OutputVersion() int { return e.outputVersion }

func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Order:       cloneOrder(e.order),
		Targets:     make(map[int]phys.Vec, len(e.bodies)),
		DraggedItem: -1,
		Resting:     !e.Active(),
	}
	for i, id := range e.bodies {
		if t, ok := e.targets[id]; ok {
			s.Targets[i] = t
		}
	}
	if e.drag != nil {
		s.Drag = e.drag.kind
		s.DraggedItem = e.drag.item
	}
	return s
}

func cloneOrder(order []int) []int {
	c := make([]int, len(order))
	copy(c, order)
	return c
}

func equalOrders(a, b []int) bool {
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

func slotOf(order []int, item int) int {
	for slot, it := range order {
		if it == item {
			return slot
		}
	}
	return -1
}

// finish commits the active interaction: the callback fires only if
// the order actually changed since grab time.
func (e *Engine) finish() {
	changed := !equalOrders(e.order, e.drag.orderBefore)
	e.drag = nil
	e.armed = true
	if changed && e.onReorder != nil {
		e.onReorder(cloneOrder(e.order))
	}
}
