package world

import "fmt"

// NPC is a non-player character resident on an NPC marker tile. NPCs never
// move or despawn.
type NPC struct {
	Type string // catalog identifier, e.g. "merchant"
	X, Y int
	Dim  Dimension
}

// Key returns the identity used to remember whether the player has met this
// NPC.
func (n NPC) Key() string {
	return fmt.Sprintf("%s@%d,%d,%s", n.Type, n.X, n.Y, n.Dim)
}

// pickNPCType selects a catalog entry for the NPC at (x, y). The draw is
// coordinate-seeded so it is stable across restarts.
func pickNPCType(src Source, x, y int, types []string) (string, bool) {
	if len(types) == 0 {
		return "", false
	}
	i := int(src.At(x, y, SaltNPC) * float64(len(types)))
	if i >= len(types) {
		i = len(types) - 1
	}
	return types[i], true
}
