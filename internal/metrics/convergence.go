// Package metrics observes engine ticks for convergence analysis.
package metrics

import "math"

// Convergence implements engine.Observer. It records the worst
// position residual per tick and the tick at which the list first
// came to rest after the last disturbance.
type Convergence struct {
	name    string
	epsilon float64

	ticks       int
	restTick    int
	maxResidual float64
	last        float64
	series      []float64
}

func NewConvergence(epsilon float64) *Convergence {
	return &Convergence{
		name:     "convergence",
		epsilon:  epsilon,
		restTick: -1,
	}
}

func (c *Convergence) Name() string { return c.name }

func (c *Convergence) OnTick(residual float64, dragging bool) {
	c.ticks++
	c.last = residual
	c.series = append(c.series, residual)
	if residual > c.maxResidual {
		c.maxResidual = residual
	}
	if dragging || residual >= c.epsilon {
		// Still disturbed; rest, if already marked, no longer holds.
		c.restTick = -1
		return
	}
	if c.restTick < 0 {
		c.restTick = c.ticks
	}
}

// Ticks returns the number of observed ticks.
func (c *Convergence) Ticks() int { return c.ticks }

// RestTick returns the tick at which the residual last dropped below
// epsilon and stayed there, or -1 if the list never came to rest.
func (c *Convergence) RestTick() int { return c.restTick }

func (c *Convergence) MaxResidual() float64 { return c.maxResidual }
func (c *Convergence) Residual() float64    { return c.last }

// Series returns the per-tick residuals, for plotting.
func (c *Convergence) Series() []float64 { return c.series }

// Monotone reports whether the residual never increased after tick
// from (useful for critically damped settles).
func (c *Convergence) Monotone(from int) bool {
	for i := from + 1; i < len(c.series); i++ {
		if c.series[i] > c.series[i-1]+1e-9 {
			return false
		}
	}
	return true
}

func (c *Convergence) Reset() {
	c.ticks = 0
	c.restTick = -1
	c.maxResidual = 0
	c.last = math.NaN()
	c.series = c.series[:0]
}
