package core

// Speed bounds for the simulation tick rate, in ticks per second.
const (
	SpeedMin  = 5
	SpeedMax  = 120
	SpeedStep = 5
)

// Session holds the run-state of one interactive sitting: whether the
// simulation is advancing and how fast. It replaces loose booleans scattered
// across the frame loop and is owned by the loop that drives the sim.
type Session struct {
	Paused bool
	Speed  int
}

// NewSession returns a session in its initial state: paused, at the given
// speed clamped into [SpeedMin, SpeedMax].
func NewSession(speed int) *Session {
	return &Session{Paused: true, Speed: clampSpeed(speed)}
}

// TogglePause flips between the Paused and Running states.
func (s *Session) TogglePause() {
	s.Paused = !s.Paused
}

// Faster raises the tick rate by one step, saturating at SpeedMax.
// It returns the new speed.
func (s *Session) Faster() int {
	s.Speed = clampSpeed(s.Speed + SpeedStep)
	return s.Speed
}

// Slower lowers the tick rate by one step, saturating at SpeedMin.
// It returns the new speed.
func (s *Session) Slower() int {
	s.Speed = clampSpeed(s.Speed - SpeedStep)
	return s.Speed
}

func clampSpeed(v int) int {
	if v < SpeedMin {
		return SpeedMin
	}
	if v > SpeedMax {
		return SpeedMax
	}
	return v
}
