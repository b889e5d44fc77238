// Package engine animates a reorderable list with spring physics.
//
// Each list item is backed by one rigid body in a [BodyWorld]. Items
// settle toward slot targets computed from the current display order;
// a pointer drag pulls one body with a stiffer spring and splices it
// into a new slot when its center crosses a neighbor threshold, while
// a keyboard drag swaps slots one step at a time. The engine runs one
// synchronous simulation step per [Engine.Tick] and goes idle when
// every body is at rest and no interaction is active.
//
// Items are identified by original index: their position in the
// caller's stable sequence, unchanged as the display order permutes.
// The order-change callback fires once per committed interaction, and
// only when the committed order differs from the order at grab time.
package engine
