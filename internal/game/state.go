// Package game holds the play session, the player interaction rules and the
// terminal game loop.
package game

// Mode is the input mode of a session. Any mode other than ModeExplore is a
// modal that blocks movement.
type Mode int

const (
	// ModeExplore is the default mode where the player walks the world.
	ModeExplore Mode = iota
	// ModeDialogue shows the active NPC's current line.
	ModeDialogue
	// ModeMap shows the discovered-biomes overlay.
	ModeMap
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeExplore:
		return "explore"
	case ModeDialogue:
		return "dialogue"
	case ModeMap:
		return "map"
	default:
		return "unknown"
	}
}

// IsModal reports whether the mode takes exclusive input priority.
func (m Mode) IsModal() bool {
	return m != ModeExplore
}
