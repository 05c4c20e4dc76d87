package sim

import "testing"

func TestSpawnFoundersDeterministic(t *testing.T) {
	place := func() []Position {
		w, _ := NewWorld(16, 8, DefaultParams())
		NewSpawner(8).SpawnFounders(w, 6)
		positions := make([]Position, 0, w.Population())
		for _, a := range w.Agents {
			positions = append(positions, a.Pos)
		}
		return positions
	}

	a, b := place(), place()
	if len(a) != len(b) {
		t.Fatalf("founder counts diverged: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("founder %d placed at %+v then %+v", i, a[i], b[i])
		}
	}
}

func TestSpawnFoundersCountAndBounds(t *testing.T) {
	w, _ := NewWorld(12, 3, DefaultParams())
	events := NewSpawner(3).SpawnFounders(w, 8)

	if w.Population() != 8 {
		t.Errorf("population = %d, want 8", w.Population())
	}
	if len(events) != 8 {
		t.Errorf("got %d birth events, want 8", len(events))
	}
	for _, a := range w.Agents {
		if a.Pos.X < 0 || a.Pos.X >= 12 || a.Pos.Y < 0 || a.Pos.Y >= 12 {
			t.Errorf("founder %d placed out of bounds at %+v", a.ID, a.Pos)
		}
	}
}

func TestSpawnFoundersDistinctCells(t *testing.T) {
	w, _ := NewWorld(12, 3, DefaultParams())
	NewSpawner(3).SpawnFounders(w, 8)

	seen := make(map[Position]bool)
	for _, a := range w.Agents {
		if seen[a.Pos] {
			t.Errorf("two founders share cell %+v", a.Pos)
		}
		seen[a.Pos] = true
	}
}

func TestFertilityRange(t *testing.T) {
	s := NewSpawner(5)
	for x := 0; x < 30; x++ {
		for y := 0; y < 30; y++ {
			f := s.Fertility(x, y, 30)
			if f < 0 || f > 1 {
				t.Fatalf("fertility(%d,%d) = %v out of [0,1]", x, y, f)
			}
		}
	}
}
