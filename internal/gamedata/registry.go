package gamedata

import (
	"fmt"
	"io/fs"
)

// keyed is implemented by every definition type held in a Registry.
type keyed interface {
	Key() string
}

// Registry holds loaded definitions in file order and indexes them by ID.
type Registry[T keyed] struct {
	index map[string]int
	all   []T
}

// NewRegistry creates a registry from loaded definitions. Later duplicates
// of an ID shadow earlier ones in lookups.
func NewRegistry[T keyed](defs []T) *Registry[T] {
	r := &Registry[T]{
		index: make(map[string]int, len(defs)),
		all:   defs,
	}
	for i := range defs {
		r.index[defs[i].Key()] = i
	}
	return r
}

// GetByID returns the definition with the given ID, or nil if not found.
func (r *Registry[T]) GetByID(id string) *T {
	i, ok := r.index[id]
	if !ok {
		return nil
	}
	return &r.all[i]
}

// All returns all definitions.
func (r *Registry[T]) All() []T {
	return r.all
}

// IDs returns every definition ID in file order.
func (r *Registry[T]) IDs() []string {
	ids := make([]string, len(r.all))
	for i := range r.all {
		ids[i] = r.all[i].Key()
	}
	return ids
}

// Count returns the number of definitions in the registry.
func (r *Registry[T]) Count() int {
	return len(r.all)
}

// loadRegistry builds a registry from one data file, rejecting empty
// catalogs and duplicate IDs.
func loadRegistry[T keyed](fsys fs.FS, filename string, load func(fs.FS) ([]T, error)) (*Registry[T], error) {
	defs, err := load(fsys)
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("no definitions loaded from %s", filename)
	}
	seen := make(map[string]bool, len(defs))
	for _, def := range defs {
		if seen[def.Key()] {
			return nil, fmt.Errorf("duplicate id %q in %s", def.Key(), filename)
		}
		seen[def.Key()] = true
	}
	return NewRegistry(defs), nil
}

// =============================================================================
// Catalog
// =============================================================================

// Catalog bundles every static data registry the game needs.
type Catalog struct {
	Biomes *Registry[BiomeDef]
	NPCs   *Registry[NPCDef]
	Items  *Registry[ItemDef]
	Tiles  *Registry[TileStyle]
}

// LoadCatalog loads all embedded registries.
func LoadCatalog() (*Catalog, error) {
	return LoadCatalogFS(dataFS)
}

// LoadCatalogFS loads all registries from the JSON files in fsys.
func LoadCatalogFS(fsys fs.FS) (*Catalog, error) {
	biomes, err := loadRegistry(fsys, "biomes.json", loadBiomes)
	if err != nil {
		return nil, err
	}
	npcs, err := loadRegistry(fsys, "npcs.json", loadNPCs)
	if err != nil {
		return nil, err
	}
	items, err := loadRegistry(fsys, "items.json", loadItems)
	if err != nil {
		return nil, err
	}
	tiles, err := loadRegistry(fsys, "tiles.json", loadTileStyles)
	if err != nil {
		return nil, err
	}
	return &Catalog{Biomes: biomes, NPCs: npcs, Items: items, Tiles: tiles}, nil
}

// MustLoadCatalog loads all embedded registries, panicking on error.
func MustLoadCatalog() *Catalog {
	catalog, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return catalog
}
