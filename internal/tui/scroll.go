package tui

import "github.com/charmbracelet/harmonica"

// scrollSpring eases the viewport offset toward a target instead of
// jumping, so keeping the dragged row in view feels continuous.
type scrollSpring struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
}

func newScrollSpring(fps int) scrollSpring {
	return scrollSpring{spring: harmonica.NewSpring(harmonica.FPS(fps), 8.0, 1.0)}
}

func (s *scrollSpring) setTarget(t float64) { s.target = t }

func (s *scrollSpring) step() float64 {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	return s.pos
}

func (s *scrollSpring) settled() bool {
	d := s.pos - s.target
	return d < 0.05 && d > -0.05 && s.vel < 0.05 && s.vel > -0.05
}
