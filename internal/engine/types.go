package engine

import (
	"math"

	"github.com/san-kum/springlist/internal/phys"
)

// Axis selects which direction the list lays out and reorders along.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
	AxisBoth
)

func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisBoth:
		return "both"
	default:
		return "vertical"
	}
}

// primaryVertical reports whether slot layout runs along Y.
// AxisBoth drags freely on both axes but lays out vertically.
func (a Axis) primaryVertical() bool {
	return a != AxisHorizontal
}

func (a Axis) dragX() bool { return a == AxisHorizontal || a == AxisBoth }
func (a Axis) dragY() bool { return a == AxisVertical || a == AxisBoth }

// Extent is an item's measured size.
type Extent struct {
	Width  float64
	Height float64
}

func (e Extent) valid() bool {
	// NaN compares false against everything, so this also rejects NaN.
	return e.Width > 0 && e.Height > 0 &&
		!math.IsInf(e.Width, 0) && !math.IsInf(e.Height, 0)
}

func (e Extent) vec() phys.Vec { return phys.Vec{X: e.Width, Y: e.Height} }

func (e Extent) along(a Axis) float64 {
	if a.primaryVertical() {
		return e.Height
	}
	return e.Width
}

// Measure reads one item's extent. It reports false when the
// measurement is unavailable; the engine then uses the fallback extent.
type Measure func() (Extent, bool)

// Spring holds spring force coefficients.
type Spring struct {
	Tension  float64
	Friction float64
}

// DragKind tags the active interaction, if any.
type DragKind int

const (
	DragNone DragKind = iota
	DragPointer
	DragKeyboard
)

func (k DragKind) String() string {
	switch k {
	case DragPointer:
		return "pointer"
	case DragKeyboard:
		return "keyboard"
	default:
		return "none"
	}
}

// dragState exists only while an interaction is active. Exactly one
// interaction may be active at a time; kind is never DragNone here.
type dragState struct {
	kind        DragKind
	item        int
	body        phys.BodyID
	orderBefore []int
	grabOffset  phys.Vec // pointer only
	pointer     phys.Vec // pointer only, latest input position
}

// Cursor is the pointer affordance for an item.
type Cursor string

const (
	CursorGrab     Cursor = "grab"
	CursorGrabbing Cursor = "grabbing"
)

// VisualOutput is the per-item render state derived each tick.
// It is never authoritative; the engine rebuilds it from body state.
type VisualOutput struct {
	Position phys.Vec
	Lift     float64
	Scale    float64
	Shadow   float64
	ZIndex   int
	Cursor   Cursor
	Dragged  bool
}

// Diagnostics counts faults the engine recovered from internally.
type Diagnostics struct {
	FallbackExtents int
	StaleBodies     int
}

// Snapshot is a read-only view of engine state for callers and tests.
type Snapshot struct {
	Order       []int
	Targets     map[int]phys.Vec
	Drag        DragKind
	DraggedItem int
	Resting     bool
}

// Observer is notified once per tick with the frame's worst
// position residual over settling bodies.
type Observer interface {
	OnTick(residual float64, dragging bool)
}

// BodyWorld is the simulator contract the engine runs against.
// phys.World satisfies it; tests may substitute their own.
type BodyWorld interface {
	Create(def phys.BodyDef) phys.BodyID
	Remove(id phys.BodyID)
	ApplyForce(id phys.BodyID, f phys.Vec)
	State(id phys.BodyID) (phys.BodyState, bool)
	States() map[phys.BodyID]phys.BodyState
	SetState(id phys.BodyID, o phys.StateOverride)
	Step(dt float64)
}
