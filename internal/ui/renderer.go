package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/wildlands/internal/entity"
	"github.com/samdwyer/wildlands/internal/gamedata"
	"github.com/samdwyer/wildlands/internal/world"
)

// Layout rows.
const (
	hudRows      = 2
	messageRows  = 3
	footerRows   = 1 + messageRows // hotbar + messages
	dialogueRows = 5
)

// PlayerGlyph marks the player in the viewport.
const PlayerGlyph = '☺'

// WorldView is the read side of the world the renderer draws.
type WorldView interface {
	GetTile(x, y int, dim world.Dimension) world.Tile
	BiomeAt(x, y int, dim world.Dimension) world.Biome
	GetNPC(x, y int, dim world.Dimension) *world.NPC
}

var _ WorldView = (*world.Store)(nil)

// Dialogue is the open conversation shown in the dialogue box.
type Dialogue struct {
	NPCType string
	Line    string
}

// Frame is everything drawn in one frame.
type Frame struct {
	World     WorldView
	Player    *entity.Player
	Dimension world.Dimension

	Messages   []string
	Discovered []world.Biome
	NPCsMet    int

	Dialogue      *Dialogue // nil when no dialogue is open
	ShowMap       bool
	ShowInventory bool
}

type cellStyle struct {
	glyph rune
	fg    tcell.Color
}

var missingStyle = cellStyle{glyph: '?', fg: tcell.ColorWhite}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	catalog *gamedata.Catalog

	tiles       map[world.Tile]cellStyle
	npcs        map[string]cellStyle
	backgrounds map[world.Biome]tcell.Color
}

// NewRenderer creates a renderer for the given screen. Tile, NPC and biome
// colors are resolved once from the catalog; anything missing or malformed
// is drawn as a white '?' on black.
func NewRenderer(screen *Screen, catalog *gamedata.Catalog) *Renderer {
	r := &Renderer{
		screen:      screen,
		catalog:     catalog,
		tiles:       make(map[world.Tile]cellStyle),
		npcs:        make(map[string]cellStyle),
		backgrounds: make(map[world.Biome]tcell.Color),
	}
	for _, t := range world.AllTiles() {
		if def := catalog.Tiles.GetByID(t.ID()); def != nil {
			r.tiles[t] = cellStyle{glyph: def.GlyphRune(), fg: def.TCellColor()}
		}
	}
	for _, def := range catalog.NPCs.All() {
		r.npcs[def.ID] = cellStyle{glyph: def.GlyphRune(), fg: def.TCellColor()}
	}
	for _, b := range world.AllBiomes() {
		if def := catalog.Biomes.GetByID(b.ID()); def != nil {
			r.backgrounds[b] = def.BackgroundColor()
		}
	}
	return r
}

// Render draws one complete frame.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()

	r.drawWorld(f)
	r.drawHUD(f)
	r.drawHotbar(f.Player.Inventory)
	r.drawMessages(f.Messages)

	if f.ShowInventory {
		r.drawInventory(f.Player.Inventory)
	}
	if f.Dialogue != nil {
		r.drawDialogue(*f.Dialogue)
	}
	if f.ShowMap {
		r.drawMap(f.Discovered)
	}

	r.screen.Show()
}

// Viewport returns the screen rows used for the world and the world
// coordinate drawn at the top-left cell for a player at (px, py).
func (r *Renderer) Viewport(px, py int) (top, height, originX, originY int) {
	w, h := r.screen.Size()
	height = max(0, h-hudRows-footerRows)
	return hudRows, height, px - w/2, py - height/2
}

// =============================================================================
// World
// =============================================================================

func (r *Renderer) drawWorld(f Frame) {
	w, _ := r.screen.Size()
	top, height, ox, oy := r.Viewport(f.Player.X, f.Player.Y)

	for sy := 0; sy < height; sy++ {
		for sx := 0; sx < w; sx++ {
			x, y := ox+sx, oy+sy
			cs, bg := r.cellAt(f, x, y)
			style := tcell.StyleDefault.Foreground(cs.fg).Background(bg)
			if x == f.Player.X && y == f.Player.Y {
				style = style.Foreground(tcell.ColorYellow).Bold(true)
				cs.glyph = PlayerGlyph
			}
			r.screen.SetContent(sx, top+sy, cs.glyph, style)
		}
	}
}

func (r *Renderer) cellAt(f Frame, x, y int) (cellStyle, tcell.Color) {
	tile := f.World.GetTile(x, y, f.Dimension)
	biome := f.World.BiomeAt(x, y, f.Dimension)

	bg, ok := r.backgrounds[biome]
	if !ok {
		bg = tcell.ColorBlack
	}
	if f.Dimension.IsAlternate() {
		bg = gamedata.Shade(bg, 0.3)
	}

	if tile == world.TileNPC {
		if npc := f.World.GetNPC(x, y, f.Dimension); npc != nil {
			if cs, ok := r.npcs[npc.Type]; ok {
				return cs, bg
			}
		}
	}
	if cs, ok := r.tiles[tile]; ok {
		return cs, bg
	}
	return missingStyle, bg
}

// =============================================================================
// HUD
// =============================================================================

func (r *Renderer) drawHUD(f Frame) {
	p := f.Player
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)

	key := "-"
	if p.HasKey {
		key = "yes"
	}
	x := r.screen.DrawText(0, 0, fmt.Sprintf("Score %d  Coins %d  ", p.Score, p.Coins), style)
	x = r.screen.DrawText(x, 0, hearts(p.Health, p.MaxHealth), style.Foreground(tcell.ColorRed))
	r.screen.DrawText(x, 0, fmt.Sprintf("  Energy %d/%d  Key %s  NPCs %d",
		p.Energy, p.MaxEnergy, key, f.NPCsMet), style)

	biome := f.World.BiomeAt(p.X, p.Y, f.Dimension)
	name := biome.ID()
	biomeStyle := style
	if def := r.catalog.Biomes.GetByID(biome.ID()); def != nil {
		name = def.Name
		biomeStyle = style.Foreground(def.TCellColor())
	}
	x = r.screen.DrawText(0, 1, name, biomeStyle)
	r.screen.DrawText(x, 1, fmt.Sprintf("  %s  (%d, %d)", f.Dimension.Name(), p.X, p.Y), style)
}

// hearts renders health as filled and empty hearts.
func hearts(health, maxHealth int) string {
	health = max(0, min(health, maxHealth))
	return strings.Repeat("♥", health) + strings.Repeat("♡", maxHealth-health)
}

func (r *Renderer) drawHotbar(inv *entity.Inventory) {
	_, h := r.screen.Size()
	y := h - footerRows
	hotbar := inv.Hotbar()

	x := 0
	for slot := 0; slot < entity.HotbarSize; slot++ {
		label := fmt.Sprintf(" %d:    ", slot+1)
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
		if slot < len(hotbar) {
			label = fmt.Sprintf(" %d:%c%-3d", slot+1, r.itemGlyph(hotbar[slot].Item.ID()), hotbar[slot].Quantity)
		}
		if slot == inv.SelectedSlot() {
			style = style.Reverse(true)
		}
		x = r.screen.DrawText(x, y, label, style)
	}
}

func (r *Renderer) itemGlyph(id string) rune {
	if def := r.catalog.Items.GetByID(id); def != nil {
		return def.GlyphRune()
	}
	return missingStyle.glyph
}

func (r *Renderer) drawMessages(msgs []string) {
	_, h := r.screen.Size()
	if len(msgs) > messageRows {
		msgs = msgs[len(msgs)-messageRows:]
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorLightGray).Background(tcell.ColorBlack)
	for i, msg := range msgs {
		r.screen.DrawText(0, h-messageRows+i, msg, style)
	}
}

// =============================================================================
// Overlays
// =============================================================================

func (r *Renderer) drawBox(x, y, w, h int, title string, style tcell.Style) {
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			ch := ' '
			switch {
			case (row == 0 || row == h-1) && (col == 0 || col == w-1):
				ch = '+'
			case row == 0 || row == h-1:
				ch = '-'
			case col == 0 || col == w-1:
				ch = '|'
			}
			r.screen.SetContent(x+col, y+row, ch, style)
		}
	}
	if title != "" {
		r.screen.DrawText(x+2, y, " "+title+" ", style.Bold(true))
	}
}

func (r *Renderer) drawDialogue(d Dialogue) {
	w, h := r.screen.Size()
	boxW := min(w-2, 60)
	x := (w - boxW) / 2
	y := h - footerRows - dialogueRows

	name, fg := d.NPCType, tcell.ColorWhite
	if def := r.catalog.NPCs.GetByID(d.NPCType); def != nil {
		name, fg = def.Name, def.TCellColor()
	}

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	r.drawBox(x, y, boxW, dialogueRows, name, style.Foreground(fg))
	r.screen.DrawText(x+2, y+2, d.Line, style)
	r.screen.DrawText(x+2, y+dialogueRows-1, " Space: next  Esc: close ", style.Dim(true))
}

func (r *Renderer) drawMap(discovered []world.Biome) {
	seen := make(map[world.Biome]bool, len(discovered))
	for _, b := range discovered {
		seen[b] = true
	}

	biomes := world.AllBiomes()
	w, h := r.screen.Size()
	boxW, boxH := 32, len(biomes)+2
	x, y := (w-boxW)/2, max(0, (h-boxH)/2)

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	r.drawBox(x, y, boxW, boxH, fmt.Sprintf("Biomes %d/%d", len(seen), len(biomes)), style)

	for i, b := range biomes {
		name, fg := b.ID(), tcell.ColorWhite
		if def := r.catalog.Biomes.GetByID(b.ID()); def != nil {
			name, fg = def.Name, def.TCellColor()
		}
		if !seen[b] {
			name, fg = "???", gamedata.Grey(fg)
		}
		row := y + 1 + i
		r.screen.SetContent(x+2, row, '■', style.Foreground(fg))
		r.screen.DrawText(x+4, row, name, style.Foreground(fg))
	}
}

func (r *Renderer) drawInventory(inv *entity.Inventory) {
	w, h := r.screen.Size()
	stacks := inv.Stacks()
	boxW := 26
	boxH := min(max(3, len(stacks)+2), max(3, h-hudRows-footerRows))
	x, y := max(0, w-boxW), hudRows

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	r.drawBox(x, y, boxW, boxH, fmt.Sprintf("Inventory %d/%d", inv.Used(), inv.Capacity()), style)

	for i, s := range stacks {
		if i >= boxH-2 {
			break
		}
		name := s.Item.ID()
		if def := r.catalog.Items.GetByID(name); def != nil {
			name = def.Name
		}
		line := fmt.Sprintf("%c %-15s x%d", r.itemGlyph(s.Item.ID()), name, s.Quantity)
		r.screen.DrawText(x+2, y+1+i, line, style)
	}
}
