package world

import (
	"testing"

	"github.com/samdwyer/wildlands/internal/item"
)

func TestTileCatalogComplete(t *testing.T) {
	seen := make(map[string]Tile)
	for _, tile := range AllTiles() {
		id := tile.ID()
		if id == "" || id == "unknown" {
			t.Errorf("Tile %d has no identifier", int(tile))
		}
		if prev, ok := seen[id]; ok {
			t.Errorf("Tiles %d and %d share identifier %q", int(prev), int(tile), id)
		}
		seen[id] = tile
	}
}

func TestHazardsAreNotWalkable(t *testing.T) {
	for _, tile := range AllTiles() {
		if tile.IsHazardous() && tile.IsWalkable() {
			t.Errorf("Tile %v is both hazardous and walkable", tile)
		}
	}
}

func TestTileAttributes(t *testing.T) {
	tests := []struct {
		tile        Tile
		walkable    bool
		collectible bool
		mineable    bool
		yield       item.Type
		trigger     Trigger
	}{
		{TileGrass, true, false, false, item.None, TriggerNone},
		{TileFlower, true, true, false, item.Flower, TriggerNone},
		{TileTree, false, false, true, item.Wood, TriggerNone},
		{TileStone, false, false, true, item.Stone, TriggerNone},
		{TileGoldOre, false, false, true, item.Gold, TriggerNone},
		{TileTreasure, true, true, false, item.Treasure, TriggerTreasure},
		{TileKey, true, true, false, item.Key, TriggerKey},
		{TileCrystal, true, true, false, item.Crystal, TriggerCrystal},
		{TileQuestionBlock, true, false, false, item.None, TriggerMystery},
		{TilePortal, true, false, false, item.None, TriggerPortal},
		{TileNPC, true, false, false, item.None, TriggerNPC},
		{TileLava, false, false, false, item.None, TriggerNone},
	}

	for _, tt := range tests {
		if got := tt.tile.IsWalkable(); got != tt.walkable {
			t.Errorf("%v.IsWalkable() = %v, want %v", tt.tile, got, tt.walkable)
		}
		if got := tt.tile.IsCollectible(); got != tt.collectible {
			t.Errorf("%v.IsCollectible() = %v, want %v", tt.tile, got, tt.collectible)
		}
		if got := tt.tile.IsMineable(); got != tt.mineable {
			t.Errorf("%v.IsMineable() = %v, want %v", tt.tile, got, tt.mineable)
		}
		if got := tt.tile.Yield(); got != tt.yield {
			t.Errorf("%v.Yield() = %v, want %v", tt.tile, got, tt.yield)
		}
		if got := tt.tile.Trigger(); got != tt.trigger {
			t.Errorf("%v.Trigger() = %v, want %v", tt.tile, got, tt.trigger)
		}
	}
}

func TestSpeedFactor(t *testing.T) {
	if got := TileIce.SpeedFactor(); got != 0.7 {
		t.Errorf("Expected ice speed 0.7, got %v", got)
	}
	if got := TileGrass.SpeedFactor(); got != 1 {
		t.Errorf("Expected grass speed 1, got %v", got)
	}
}

func TestUnknownTileIsInert(t *testing.T) {
	info := Tile(-1).Info()
	if info.ID != "unknown" || info.Walkable || info.Hazardous {
		t.Errorf("Unexpected info for out-of-range tile: %+v", info)
	}
}
