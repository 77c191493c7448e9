package gamedata

import (
	"io/fs"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// BiomeDef holds the display metadata of a biome.
type BiomeDef struct {
	ID         string `json:"id"`         // Matches world.Biome.ID() (e.g., "grassland")
	Name       string `json:"name"`       // Display name (e.g., "Grassland")
	Icon       string `json:"icon"`       // Shown on the discovered-biomes map
	Color      string `json:"color"`      // Hex color of the map entry
	Background string `json:"background"` // Hex color tint behind tiles of this biome
}

// Key returns the biome identifier.
func (b BiomeDef) Key() string { return b.ID }

// TCellColor returns the map color as a tcell.Color.
func (b *BiomeDef) TCellColor() tcell.Color {
	return colorOr(b.Color, tcell.ColorWhite)
}

// BackgroundColor returns the tile background tint as a tcell.Color.
func (b *BiomeDef) BackgroundColor() tcell.Color {
	return colorOr(b.Background, tcell.ColorBlack)
}

// BiomesFile represents the structure of biomes.json.
type BiomesFile struct {
	Biomes []BiomeDef `json:"biomes"`
}

func loadBiomes(fsys fs.FS) ([]BiomeDef, error) {
	file, err := LoadFS[BiomesFile](fsys, "biomes.json")
	if err != nil {
		return nil, err
	}
	return file.Biomes, nil
}

// NPCDef defines an NPC type: its name, look and dialogue lines.
type NPCDef struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Icon     string   `json:"icon"`
	Glyph    string   `json:"glyph"`
	Color    string   `json:"color"`
	Dialogue []string `json:"dialogue"`
}

// Key returns the NPC type identifier.
func (n NPCDef) Key() string { return n.ID }

// GlyphRune returns the glyph as a rune for rendering.
func (n *NPCDef) GlyphRune() rune { return glyphRune(n.Glyph) }

// TCellColor returns the color as a tcell.Color.
func (n *NPCDef) TCellColor() tcell.Color {
	return colorOr(n.Color, tcell.ColorWhite)
}

// Line returns dialogue line i, wrapping around the end of the script.
func (n *NPCDef) Line(i int) string {
	if len(n.Dialogue) == 0 {
		return "..."
	}
	i %= len(n.Dialogue)
	if i < 0 {
		i += len(n.Dialogue)
	}
	return n.Dialogue[i]
}

// NPCsFile represents the structure of npcs.json.
type NPCsFile struct {
	NPCs []NPCDef `json:"npcs"`
}

func loadNPCs(fsys fs.FS) ([]NPCDef, error) {
	file, err := LoadFS[NPCsFile](fsys, "npcs.json")
	if err != nil {
		return nil, err
	}
	return file.NPCs, nil
}

// ItemDef defines an inventory item and, for consumables, its effect.
type ItemDef struct {
	ID       string `json:"id"`       // Matches item.Type.ID() (e.g., "apple")
	Name     string `json:"name"`     // Display name
	Glyph    string `json:"glyph"`    // Hotbar glyph
	MaxStack int    `json:"maxStack"` // Units per inventory slot

	Consumable            bool   `json:"consumable,omitempty"`
	Heal                  int    `json:"heal,omitempty"`
	Energy                int    `json:"energy,omitempty"`
	RequiresMissingHealth bool   `json:"requiresMissingHealth,omitempty"` // refuse use at full health
	Message               string `json:"message,omitempty"`
}

// Key returns the item identifier.
func (d ItemDef) Key() string { return d.ID }

// GlyphRune returns the glyph as a rune for rendering.
func (d *ItemDef) GlyphRune() rune { return glyphRune(d.Glyph) }

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Items []ItemDef `json:"items"`
}

func loadItems(fsys fs.FS) ([]ItemDef, error) {
	file, err := LoadFS[ItemsFile](fsys, "items.json")
	if err != nil {
		return nil, err
	}
	return file.Items, nil
}

// TileStyle is how a tile is drawn in the terminal.
type TileStyle struct {
	ID    string `json:"id"`    // Matches world.Tile.ID()
	Glyph string `json:"glyph"` // Single character
	Color string `json:"color"` // Hex foreground color
}

// Key returns the tile identifier.
func (s TileStyle) Key() string { return s.ID }

// GlyphRune returns the glyph as a rune for rendering.
func (s *TileStyle) GlyphRune() rune { return glyphRune(s.Glyph) }

// TCellColor returns the foreground color as a tcell.Color.
func (s *TileStyle) TCellColor() tcell.Color {
	return colorOr(s.Color, tcell.ColorWhite)
}

// TilesFile represents the structure of tiles.json.
type TilesFile struct {
	Tiles []TileStyle `json:"tiles"`
}

func loadTileStyles(fsys fs.FS) ([]TileStyle, error) {
	file, err := LoadFS[TilesFile](fsys, "tiles.json")
	if err != nil {
		return nil, err
	}
	return file.Tiles, nil
}

// glyphRune decodes the first rune of s, or '?' when s is empty or invalid.
func glyphRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return '?'
	}
	return r
}

// colorOr parses hex, substituting fallback for malformed values.
func colorOr(hex string, fallback tcell.Color) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		return fallback
	}
	return color
}
