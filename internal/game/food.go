package game

import (
	"math/rand"

	"github.com/yurikov/termsnake/internal/core"
)

// Spawner places food on random unoccupied cells.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner creates a spawner drawing from the given source.
func NewSpawner(rng *rand.Rand) *Spawner {
	return &Spawner{rng: rng}
}

// Spawn draws uniformly random cells inside gridW x gridH until one outside
// occupied is found. Known limitation: the loop does not terminate when the
// board is fully occupied; callers must guarantee at least one free cell.
func (sp *Spawner) Spawn(gridW, gridH int, occupied func(core.Point) bool) core.Point {
	for {
		p := core.Point{
			X: sp.rng.Intn(gridW),
			Y: sp.rng.Intn(gridH),
		}
		if !occupied(p) {
			return p
		}
	}
}
