// Package gamedata holds the static catalogs the game draws from: biome
// display metadata, NPC types and dialogue, item definitions and tile styles.
package gamedata

import "embed"

// dataFS holds the catalog JSON files shipped inside the binary.
//
//go:embed *.json
var dataFS embed.FS
