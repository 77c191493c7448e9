package world

import (
	"context"
	"errors"
	"testing"
)

func newTestStore(t *testing.T, opts StoreOptions) *Store {
	t.Helper()
	s, err := NewStore(NewSource(0), opts)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func TestGetTileMatchesGenerator(t *testing.T) {
	s := newTestStore(t, StoreOptions{})
	c := NewClassifier(NewSource(0), nil)
	gen := NewGenerator(NewSource(0))

	for y := -40; y < 40; y += 3 {
		for x := -40; x < 40; x += 3 {
			want := gen.Generate(x, y, c.BiomeAt(x, y, Overworld))
			if got := s.GetTile(x, y, Overworld); got != want {
				t.Errorf("GetTile(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestGetTileCachesOnce(t *testing.T) {
	s := newTestStore(t, StoreOptions{})
	first := s.GetTile(2, 3, Overworld)
	for i := 0; i < 5; i++ {
		if got := s.GetTile(2, 3, Overworld); got != first {
			t.Fatalf("GetTile changed from %v to %v", first, got)
		}
	}
	if stats := s.Stats(); stats.Generated != 1 || stats.Overrides != 0 {
		t.Errorf("Expected 1 generated cell and no overrides, got %+v", stats)
	}
}

func TestOverridePersistence(t *testing.T) {
	// A tiny cache forces constant eviction of generated cells.
	s := newTestStore(t, StoreOptions{CacheSize: 4})
	s.SetTile(5, 5, Overworld, TileBrick)

	for i := 0; i < 200; i++ {
		s.GetTile(i, -i, Overworld)
		if got := s.GetTile(5, 5, Overworld); got != TileBrick {
			t.Fatalf("Override lost after %d reads: got %v", i, got)
		}
	}
	if !s.IsOverridden(5, 5, Overworld) {
		t.Error("Expected (5, 5) to be overridden")
	}

	s.SetTile(5, 5, Overworld, TileGrass)
	if got := s.GetTile(5, 5, Overworld); got != TileGrass {
		t.Errorf("Expected second override to win, got %v", got)
	}
}

func TestDimensionsAreIndependent(t *testing.T) {
	s := newTestStore(t, StoreOptions{})
	before := s.GetTile(1, 1, Overworld)
	s.SetTile(1, 1, Nether, TileBrick)

	if got := s.GetTile(1, 1, Overworld); got != before {
		t.Errorf("Overworld cell changed after writing to the Nether: %v -> %v", before, got)
	}
	if got := s.GetTile(1, 1, Nether); got != TileBrick {
		t.Errorf("Expected Nether override, got %v", got)
	}
	if s.IsOverridden(1, 1, Overworld) {
		t.Error("Overworld cell should not be overridden")
	}
}

func TestEvictedCellsRegenerateIdentically(t *testing.T) {
	bounded := newTestStore(t, StoreOptions{CacheSize: 10})
	reference := newTestStore(t, StoreOptions{})

	for round := 0; round < 2; round++ {
		for x := -50; x < 50; x++ {
			if bounded.GetTile(x, 7, Overworld) != reference.GetTile(x, 7, Overworld) {
				t.Fatalf("Round %d: cell (%d, 7) differs after eviction", round, x)
			}
		}
	}
	if n := bounded.Stats().Generated; n > 10 {
		t.Errorf("Expected at most 10 cached cells, got %d", n)
	}
	if n := reference.Stats().Generated; n != 100 {
		t.Errorf("Expected 100 cached cells in unbounded store, got %d", n)
	}
}

func TestGetNPC(t *testing.T) {
	types := []string{"merchant", "farmer", "wizard"}
	s := newTestStore(t, StoreOptions{NPCTypes: types})

	s.SetTile(3, 3, Overworld, TileBrick)
	if npc := s.GetNPC(3, 3, Overworld); npc != nil {
		t.Fatalf("Expected no NPC on a brick tile, got %+v", npc)
	}

	s.SetTile(4, 4, Overworld, TileNPC)
	npc := s.GetNPC(4, 4, Overworld)
	if npc == nil {
		t.Fatal("Expected an NPC on the marker tile")
	}
	valid := false
	for _, typ := range types {
		if npc.Type == typ {
			valid = true
		}
	}
	if !valid {
		t.Errorf("NPC type %q is not in the catalog", npc.Type)
	}
	if npc.X != 4 || npc.Y != 4 || npc.Dim != Overworld {
		t.Errorf("Unexpected NPC position %+v", npc)
	}

	// Assignment is permanent even if the marker is later overwritten.
	s.SetTile(4, 4, Overworld, TileGrass)
	if again := s.GetNPC(4, 4, Overworld); again != npc {
		t.Errorf("Expected the cached NPC, got %+v", again)
	}
	if n := s.Stats().NPCs; n != 1 {
		t.Errorf("Expected 1 cached NPC, got %d", n)
	}
}

func TestGetNPCStableAcrossStores(t *testing.T) {
	types := []string{"merchant", "farmer", "wizard", "blacksmith", "adventurer"}
	a := newTestStore(t, StoreOptions{NPCTypes: types})
	b := newTestStore(t, StoreOptions{NPCTypes: types})

	for x := 0; x < 20; x++ {
		a.SetTile(x, -x, Overworld, TileNPC)
		b.SetTile(x, -x, Overworld, TileNPC)
		if a.GetNPC(x, -x, Overworld).Type != b.GetNPC(x, -x, Overworld).Type {
			t.Errorf("NPC type at (%d, %d) differs between stores", x, -x)
		}
	}
}

func TestGetNPCEmptyCatalog(t *testing.T) {
	s := newTestStore(t, StoreOptions{})
	s.SetTile(0, 0, Overworld, TileNPC)
	if npc := s.GetNPC(0, 0, Overworld); npc != nil {
		t.Errorf("Expected nil NPC with an empty catalog, got %+v", npc)
	}
}

func TestNPCKeyIncludesDimension(t *testing.T) {
	a := NPC{Type: "wizard", X: 1, Y: 2, Dim: Overworld}
	b := NPC{Type: "wizard", X: 1, Y: 2, Dim: Nether}
	if a.Key() == b.Key() {
		t.Errorf("Expected distinct keys, both were %q", a.Key())
	}
}

func TestWarm(t *testing.T) {
	s := newTestStore(t, StoreOptions{})
	s.SetTile(0, 0, Overworld, TileBrick)

	area := RectAround(0, 0, 5)
	n, err := s.Warm(context.Background(), Overworld, area)
	if err != nil {
		t.Fatalf("Warm: %v", err)
	}
	if n != area.Area()-1 {
		t.Errorf("Expected %d cells installed, got %d", area.Area()-1, n)
	}
	if got := s.GetTile(0, 0, Overworld); got != TileBrick {
		t.Errorf("Warm overwrote an override: got %v", got)
	}

	reference := newTestStore(t, StoreOptions{})
	for y := area.Y; y < area.Y+area.Height; y++ {
		for x := area.X; x < area.X+area.Width; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if s.GetTile(x, y, Overworld) != reference.GetTile(x, y, Overworld) {
				t.Errorf("Warmed cell (%d, %d) differs from lazy generation", x, y)
			}
		}
	}

	again, err := s.Warm(context.Background(), Overworld, area)
	if err != nil {
		t.Fatalf("Warm: %v", err)
	}
	if again != 0 {
		t.Errorf("Expected second warm to install nothing, got %d", again)
	}
}

func TestWarmCancelled(t *testing.T) {
	s := newTestStore(t, StoreOptions{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Warm(ctx, Overworld, RectAround(0, 0, 3))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestWarmEmptyArea(t *testing.T) {
	s := newTestStore(t, StoreOptions{})
	n, err := s.Warm(context.Background(), Overworld, Rect{})
	if err != nil || n != 0 {
		t.Errorf("Expected no-op warm, got %d, %v", n, err)
	}
}

func TestRect(t *testing.T) {
	r := RectAround(10, -4, 2)
	if r.Area() != 25 {
		t.Errorf("Expected area 25, got %d", r.Area())
	}
	if cx, cy := r.Center(); cx != 10 || cy != -4 {
		t.Errorf("Expected center (10, -4), got (%d, %d)", cx, cy)
	}
	if !r.Contains(8, -6) || !r.Contains(12, -2) || r.Contains(13, -4) {
		t.Error("Contains reported wrong bounds")
	}
}

func TestWarmConcurrentWithWrites(t *testing.T) {
	s := newTestStore(t, StoreOptions{CacheSize: 64})
	area := RectAround(0, 0, 10)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := -10; i <= 10; i++ {
			s.SetTile(i, i, Overworld, TileBrick)
			s.GetTile(-i, i, Overworld)
		}
	}()
	if _, err := s.Warm(context.Background(), Overworld, area); err != nil {
		t.Fatalf("Warm() error = %v", err)
	}
	<-done

	for i := -10; i <= 10; i++ {
		if got := s.GetTile(i, i, Overworld); got != TileBrick {
			t.Errorf("GetTile(%d, %d) = %v, want override kept", i, i, got)
		}
	}
	if got := s.Stats().Generated; got > 64 {
		t.Errorf("Generated = %d, want at most the cache size", got)
	}
}
