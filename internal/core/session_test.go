package core

import "testing"

func TestSessionStartsPaused(t *testing.T) {
	s := NewSession(10)
	if !s.Paused {
		t.Fatalf("new session should start paused")
	}
	if s.Speed != 10 {
		t.Fatalf("speed = %d, expected 10", s.Speed)
	}

	s.TogglePause()
	if s.Paused {
		t.Fatalf("session still paused after toggle")
	}
	s.TogglePause()
	if !s.Paused {
		t.Fatalf("session not paused after second toggle")
	}
}

func TestSpeedStepsAndClamps(t *testing.T) {
	s := NewSession(10)
	if got := s.Faster(); got != 15 {
		t.Fatalf("Faster from 10 = %d, expected 15", got)
	}
	if got := s.Slower(); got != 10 {
		t.Fatalf("Slower from 15 = %d, expected 10", got)
	}

	s.Speed = SpeedMax
	if got := s.Faster(); got != SpeedMax {
		t.Fatalf("Faster at max = %d, expected %d", got, SpeedMax)
	}

	s.Speed = SpeedMin
	if got := s.Slower(); got != SpeedMin {
		t.Fatalf("Slower at min = %d, expected %d", got, SpeedMin)
	}
}

func TestNewSessionClampsSpeed(t *testing.T) {
	if s := NewSession(0); s.Speed != SpeedMin {
		t.Fatalf("speed = %d, expected %d", s.Speed, SpeedMin)
	}
	if s := NewSession(500); s.Speed != SpeedMax {
		t.Fatalf("speed = %d, expected %d", s.Speed, SpeedMax)
	}
}
