// Package phys provides the rigid-body world the list engine runs against.
//
// Bodies are axis-aligned rectangles with position, velocity, and mass.
// Callers accumulate forces with [World.ApplyForce]; the world consumes
// them on the next [World.Step] using its configured [Integrator]:
//
//   - [SemiImplicitEuler]: default, stable for stiff springs
//   - [VelocityVerlet]: second-order, for smoother trajectories
//
// The world never decides where bodies should go. It only integrates
// whatever forces its caller applied since the previous step. Queries
// and forces against an id that is no longer tracked are no-ops.
package phys
