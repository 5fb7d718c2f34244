package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract the frame loop needs from an automaton.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// CellToggler is implemented by sims whose cells can be flipped directly,
// e.g. by mouse input. Out-of-bounds coordinates are ignored.
type CellToggler interface {
	ToggleCell(x, y int)
}

// SpawnLatch is implemented by sims that support a random-revival mode.
type SpawnLatch interface {
	SetSpawning(on bool)
	Spawning() bool
}

// AliveCounter reports the number of live cells in the current generation.
type AliveCounter interface {
	AliveCount() int
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
