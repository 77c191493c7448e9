package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/wildlands/internal/entity"
	"github.com/samdwyer/wildlands/internal/gamedata"
	"github.com/samdwyer/wildlands/internal/item"
	"github.com/samdwyer/wildlands/internal/world"
)

// fakeWorld is a flat world of one tile and one biome with a few
// hand-placed cells.
type fakeWorld struct {
	fill  world.Tile
	biome world.Biome
	cells map[[2]int]world.Tile
	npc   string
}

func (w *fakeWorld) GetTile(x, y int, _ world.Dimension) world.Tile {
	if t, ok := w.cells[[2]int{x, y}]; ok {
		return t
	}
	return w.fill
}

func (w *fakeWorld) BiomeAt(_, _ int, _ world.Dimension) world.Biome { return w.biome }

func (w *fakeWorld) GetNPC(x, y int, dim world.Dimension) *world.NPC {
	if w.GetTile(x, y, dim) != world.TileNPC || w.npc == "" {
		return nil
	}
	return &world.NPC{Type: w.npc, X: x, Y: y, Dim: dim}
}

const (
	screenW = 80
	screenH = 24
)

func newTestRenderer(t *testing.T) (*Renderer, tcell.SimulationScreen, *gamedata.Catalog) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	sim.SetSize(screenW, screenH)
	t.Cleanup(sim.Fini)

	catalog := gamedata.MustLoadCatalog()
	return NewRenderer(NewScreenFrom(sim), catalog), sim, catalog
}

func newFrame(w *fakeWorld) Frame {
	p := entity.NewPlayer(3, 50, 24)
	p.AddItem(item.Wood, 10)
	p.AddItem(item.Axe, 1)
	return Frame{
		World:      w,
		Player:     p,
		Dimension:  world.Overworld,
		Discovered: []world.Biome{world.BiomeGrassland},
	}
}

func rowText(sim tcell.SimulationScreen, y int) string {
	var b strings.Builder
	for x := 0; x < screenW; x++ {
		r, _, _, _ := sim.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func screenText(sim tcell.SimulationScreen) string {
	var b strings.Builder
	for y := 0; y < screenH; y++ {
		b.WriteString(rowText(sim, y))
		b.WriteByte('\n')
	}
	return b.String()
}

func TestRenderPlayerAtViewportCenter(t *testing.T) {
	r, sim, _ := newTestRenderer(t)
	f := newFrame(&fakeWorld{fill: world.TileGrass, biome: world.BiomeGrassland})
	f.Player.SetPosition(10, -4)

	r.Render(f)

	top, height, ox, oy := r.Viewport(10, -4)
	px, py := 10-ox, top+(-4-oy)
	if py < top || py >= top+height {
		t.Fatalf("player row %d outside viewport [%d, %d)", py, top, top+height)
	}
	if got, _, _, _ := sim.GetContent(px, py); got != PlayerGlyph {
		t.Errorf("cell at player = %q, want %q", got, PlayerGlyph)
	}
}

func TestRenderTileGlyphsAndBackground(t *testing.T) {
	r, sim, catalog := newTestRenderer(t)
	w := &fakeWorld{
		fill:  world.TileGrass,
		biome: world.BiomeDesert,
		cells: map[[2]int]world.Tile{{1, 0}: world.TilePortal},
	}
	r.Render(newFrame(w))

	top, _, ox, oy := r.Viewport(0, 0)
	glyph, _, style, _ := sim.GetContent(1-ox, top-oy)

	want := catalog.Tiles.GetByID("portal").GlyphRune()
	if glyph != want {
		t.Errorf("portal glyph = %q, want %q", glyph, want)
	}
	_, bg, _ := style.Decompose()
	if wantBG := catalog.Biomes.GetByID("desert").BackgroundColor(); bg != wantBG {
		t.Errorf("background = %v, want desert tint %v", bg, wantBG)
	}
}

func TestRenderNPCUsesTypeGlyph(t *testing.T) {
	r, sim, catalog := newTestRenderer(t)
	w := &fakeWorld{
		fill:  world.TileGrass,
		biome: world.BiomeGrassland,
		cells: map[[2]int]world.Tile{{0, 1}: world.TileNPC},
		npc:   "wizard",
	}
	r.Render(newFrame(w))

	top, _, ox, oy := r.Viewport(0, 0)
	glyph, _, _, _ := sim.GetContent(-ox, top+1-oy)
	if want := catalog.NPCs.GetByID("wizard").GlyphRune(); glyph != want {
		t.Errorf("NPC glyph = %q, want %q", glyph, want)
	}
}

func TestRenderUnknownTileFallsBack(t *testing.T) {
	r, sim, _ := newTestRenderer(t)
	w := &fakeWorld{
		fill:  world.TileGrass,
		biome: world.BiomeGrassland,
		cells: map[[2]int]world.Tile{{1, 0}: world.Tile(-1)},
	}
	r.Render(newFrame(w))

	top, _, ox, oy := r.Viewport(0, 0)
	if glyph, _, _, _ := sim.GetContent(1-ox, top-oy); glyph != '?' {
		t.Errorf("unknown tile glyph = %q, want '?'", glyph)
	}
}

func TestRenderHUD(t *testing.T) {
	r, sim, _ := newTestRenderer(t)
	f := newFrame(&fakeWorld{fill: world.TileGrass, biome: world.BiomeGrassland})
	f.Player.Score = 1234
	f.Player.Health = 2
	f.NPCsMet = 3
	f.Messages = []string{"one", "two", "three", "four"}

	r.Render(f)

	hud := rowText(sim, 0)
	for _, want := range []string{"Score 1234", "Coins 50", "♥♥♡", "NPCs 3"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}
	if status := rowText(sim, 1); !strings.Contains(status, "Grassland") || !strings.Contains(status, "Overworld") {
		t.Errorf("status row = %q", status)
	}

	hotbar := rowText(sim, screenH-footerRows)
	if !strings.Contains(hotbar, "1:=10") {
		t.Errorf("hotbar %q should show 10 wood in slot 1", hotbar)
	}

	text := screenText(sim)
	if strings.Contains(text, "one") {
		t.Error("only the last three messages should be shown")
	}
	for _, want := range []string{"two", "three", "four"} {
		if !strings.Contains(text, want) {
			t.Errorf("screen missing message %q", want)
		}
	}
}

func TestRenderOverlays(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *Frame)
		want  []string
	}{
		{
			name:  "dialogue",
			setup: func(f *Frame) { f.Dialogue = &Dialogue{NPCType: "merchant", Line: "Fine wares for sale!"} },
			want:  []string{"Merchant", "Fine wares for sale!", "Space: next"},
		},
		{
			name:  "map",
			setup: func(f *Frame) { f.ShowMap = true },
			want:  []string{"Biomes 1/14", "???"},
		},
		{
			name:  "inventory",
			setup: func(f *Frame) { f.ShowInventory = true },
			want:  []string{"Inventory 2/24", "Wood", "x10"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, sim, _ := newTestRenderer(t)
			f := newFrame(&fakeWorld{fill: world.TileGrass, biome: world.BiomeGrassland})
			tt.setup(&f)

			r.Render(f)
			text := screenText(sim)

			for _, want := range tt.want {
				if !strings.Contains(text, want) {
					t.Errorf("screen missing %q", want)
				}
			}
		})
	}
}

func TestHearts(t *testing.T) {
	tests := []struct {
		health, max int
		want        string
	}{
		{3, 3, "♥♥♥"},
		{1, 3, "♥♡♡"},
		{0, 3, "♡♡♡"},
		{-1, 2, "♡♡"},
		{5, 2, "♥♥"},
	}
	for _, tt := range tests {
		if got := hearts(tt.health, tt.max); got != tt.want {
			t.Errorf("hearts(%d, %d) = %q, want %q", tt.health, tt.max, got, tt.want)
		}
	}
}
