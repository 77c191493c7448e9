package world

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/samdwyer/wildlands/internal/telemetry"
)

// CellKey identifies one world cell. The same (X, Y) in two dimensions are
// unrelated cells.
type CellKey struct {
	X, Y int
	Dim  Dimension
}

// cellCache holds generated, non-override cells. Entries may be dropped at
// any time because they can be regenerated identically.
type cellCache interface {
	Get(key CellKey) (Tile, bool)
	Add(key CellKey, tile Tile) bool
	Len() int
}

// mapCache is the unbounded cellCache.
type mapCache map[CellKey]Tile

func (m mapCache) Get(key CellKey) (Tile, bool) {
	t, ok := m[key]
	return t, ok
}

func (m mapCache) Add(key CellKey, tile Tile) bool {
	m[key] = tile
	return false
}

func (m mapCache) Len() int { return len(m) }

// StoreOptions configures a Store.
type StoreOptions struct {
	// CacheSize bounds the number of generated cells kept in memory. Zero
	// keeps every generated cell. Overrides are never counted or evicted.
	CacheSize int

	// BiomeTable replaces DefaultBiomeTable when non-nil.
	BiomeTable []BiomeThreshold

	// NPCTypes is the ordered NPC catalog drawn from when placing NPCs.
	NPCTypes []string
}

// StoreStats reports the size of each store partition.
type StoreStats struct {
	Overrides int
	Generated int
	NPCs      int
}

// Store is the lazily populated, mutable world. Reads fill on miss and
// writes always win.
type Store struct {
	mu         sync.Mutex
	src        Source
	classifier *Classifier
	gen        *Generator
	overrides  map[CellKey]Tile
	generated  cellCache
	npcs       map[CellKey]*NPC
	npcTypes   []string
}

// NewStore creates an empty world store over the given noise source.
func NewStore(src Source, opts StoreOptions) (*Store, error) {
	var generated cellCache = mapCache{}
	if opts.CacheSize > 0 {
		c, err := lru.New[CellKey, Tile](opts.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create cell cache: %w", err)
		}
		generated = c
	}

	return &Store{
		src:        src,
		classifier: NewClassifier(src, opts.BiomeTable),
		gen:        NewGenerator(src),
		overrides:  make(map[CellKey]Tile),
		generated:  generated,
		npcs:       make(map[CellKey]*NPC),
		npcTypes:   append([]string(nil), opts.NPCTypes...),
	}, nil
}

// Source returns the noise source shared by the store's generators.
func (s *Store) Source() Source { return s.src }

// BiomeAt returns the biome at (x, y) in the given dimension.
func (s *Store) BiomeAt(x, y int, dim Dimension) Biome {
	return s.classifier.BiomeAt(x, y, dim)
}

// GetTile returns the tile at (x, y). An override wins; otherwise the
// generated tile is cached and returned.
func (s *Store) GetTile(x, y int, dim Dimension) Tile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getTileLocked(CellKey{X: x, Y: y, Dim: dim})
}

func (s *Store) getTileLocked(key CellKey) Tile {
	if t, ok := s.overrides[key]; ok {
		return t
	}
	if t, ok := s.generated.Get(key); ok {
		return t
	}
	t := s.generate(key)
	s.generated.Add(key, t)
	return t
}

func (s *Store) generate(key CellKey) Tile {
	biome := s.classifier.BiomeAt(key.X, key.Y, key.Dim)
	return s.gen.Generate(key.X, key.Y, biome)
}

// SetTile installs tile as the permanent value of (x, y).
func (s *Store) SetTile(x, y int, dim Dimension, tile Tile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[CellKey{X: x, Y: y, Dim: dim}] = tile
}

// IsOverridden reports whether (x, y) holds a player-written tile.
func (s *Store) IsOverridden(x, y int, dim Dimension) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.overrides[CellKey{X: x, Y: y, Dim: dim}]
	return ok
}

// GetNPC returns the NPC resident at (x, y), or nil if the cell is not an
// NPC marker. The NPC type is assigned once and never changes.
func (s *Store) GetNPC(x, y int, dim Dimension) *NPC {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := CellKey{X: x, Y: y, Dim: dim}
	if npc, ok := s.npcs[key]; ok {
		return npc
	}
	if s.getTileLocked(key) != TileNPC {
		return nil
	}
	typ, ok := pickNPCType(s.src, x, y, s.npcTypes)
	if !ok {
		return nil
	}
	npc := &NPC{Type: typ, X: x, Y: y, Dim: dim}
	s.npcs[key] = npc
	return npc
}

// Stats returns the current partition sizes.
func (s *Store) Stats() StoreStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return StoreStats{
		Overrides: len(s.overrides),
		Generated: s.generated.Len(),
		NPCs:      len(s.npcs),
	}
}

// Warm pre-generates every cell of area in parallel. Rows are generated
// without holding the lock; installation skips cells that already have a
// value, so an override or an earlier fill always wins. It returns the number
// of cells installed.
func (s *Store) Warm(ctx context.Context, dim Dimension, area Rect) (int, error) {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "world.warm")
	defer span.End()

	if area.Area() == 0 {
		return 0, nil
	}

	var (
		installedMu sync.Mutex
		installed   int
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for row := 0; row < area.Height; row++ {
		y := area.Y + row
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			tiles := make([]Tile, area.Width)
			for col := range tiles {
				tiles[col] = s.generate(CellKey{X: area.X + col, Y: y, Dim: dim})
			}

			n := s.install(dim, area.X, y, tiles)
			installedMu.Lock()
			installed += n
			installedMu.Unlock()
			return nil
		})
	}
	err := g.Wait()

	span.SetAttributes(
		attribute.String("world.dimension", string(dim)),
		attribute.Int("world.cells_requested", area.Area()),
		attribute.Int("world.cells_generated", installed),
	)
	if err != nil {
		span.RecordError(err)
		return installed, fmt.Errorf("failed to warm %s: %w", dim, err)
	}
	return installed, nil
}

// install adds one generated row, skipping cells that already hold a value.
func (s *Store) install(dim Dimension, x0, y int, tiles []Tile) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for i, t := range tiles {
		key := CellKey{X: x0 + i, Y: y, Dim: dim}
		if _, ok := s.overrides[key]; ok {
			continue
		}
		if _, ok := s.generated.Get(key); ok {
			continue
		}
		s.generated.Add(key, t)
		n++
	}
	return n
}
