package game

import (
	"math/rand"
	"testing"

	"github.com/yurikov/termsnake/internal/core"
)

func TestSpawnNeverLandsOnOccupiedCells(t *testing.T) {
	sp := NewSpawner(rand.New(rand.NewSource(1)))

	// Block the left half of a 10x10 grid.
	occupied := func(p core.Point) bool { return p.X < 5 }

	for i := 0; i < 1000; i++ {
		p := sp.Spawn(10, 10, occupied)
		if occupied(p) {
			t.Fatalf("Spawn returned occupied cell %v on trial %d", p, i)
		}
		if !p.In(10, 10) {
			t.Fatalf("Spawn returned out-of-bounds cell %v on trial %d", p, i)
		}
	}
}

func TestSpawnDeterministicForSeed(t *testing.T) {
	free := func(core.Point) bool { return false }

	a := NewSpawner(rand.New(rand.NewSource(42)))
	b := NewSpawner(rand.New(rand.NewSource(42)))

	for i := 0; i < 50; i++ {
		pa := a.Spawn(40, 18, free)
		pb := b.Spawn(40, 18, free)
		if pa != pb {
			t.Fatalf("Spawn sequence diverged at step %d: %v vs %v", i, pa, pb)
		}
	}
}

func TestSpawnFindsLastFreeCell(t *testing.T) {
	sp := NewSpawner(rand.New(rand.NewSource(7)))
	free := core.Point{X: 3, Y: 2}

	p := sp.Spawn(5, 5, func(q core.Point) bool { return q != free })
	if p != free {
		t.Errorf("Spawn = %v, expected the only free cell %v", p, free)
	}
}
