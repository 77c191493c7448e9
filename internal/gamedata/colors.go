package gamedata

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	c, err := parseHex(hex)
	if err != nil {
		return tcell.ColorDefault, err
	}
	return toTCell(c), nil
}

// MustParseHexColor converts a hex color string to tcell.Color, panicking on error.
func MustParseHexColor(hex string) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return color
}

// Blend mixes two colors in Lab space. t=0 returns a, t=1 returns b.
// Non-RGB colors are returned unchanged.
func Blend(a, b tcell.Color, t float64) tcell.Color {
	ca, ok := fromTCell(a)
	if !ok {
		return a
	}
	cb, ok := fromTCell(b)
	if !ok {
		return a
	}
	return toTCell(ca.BlendLab(cb, t).Clamped())
}

// Shade darkens a color toward black by amount in [0, 1].
func Shade(c tcell.Color, amount float64) tcell.Color {
	return Blend(c, tcell.NewRGBColor(0, 0, 0), amount)
}

// Grey returns the Lab lightness of c as a neutral grey, used for map
// entries the player has not discovered yet.
func Grey(c tcell.Color) tcell.Color {
	cc, ok := fromTCell(c)
	if !ok {
		return c
	}
	l, _, _ := cc.Lab()
	return toTCell(colorful.Lab(l, 0, 0).Clamped())
}

func parseHex(hex string) (colorful.Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return colorful.Color{}, fmt.Errorf("invalid hex color length: %s", hex)
	}
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}
	return c, nil
}

func fromTCell(c tcell.Color) (colorful.Color, bool) {
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return colorful.Color{}, false
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, true
}

func toTCell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
