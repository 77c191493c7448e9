package world

import "math"

// band maps rolls at or below upTo to a tile.
type band struct {
	upTo float64
	tile Tile
}

// bands is an ordered threshold table; the first matching band wins.
type bands []band

// pick returns the tile of the first band that contains r.
func (bs bands) pick(r float64) (Tile, bool) {
	for _, b := range bs {
		if r <= b.upTo {
			return b.tile, true
		}
	}
	return TileGrass, false
}

// pickOr returns the first matching tile, or fallback when no band matches.
func (bs bands) pickOr(r float64, fallback Tile) Tile {
	if t, ok := bs.pick(r); ok {
		return t
	}
	return fallback
}

// sample holds the noise channels shared by every biome rule for one cell.
type sample struct {
	x, y   int
	r      float64 // per-tile roll
	small  float64 // 2×2 patches
	medium float64 // 3×3 patches
	large  float64 // 5×5 patches
}

// Generator deterministically produces the tile for a coordinate and biome.
type Generator struct {
	src Source
}

// NewGenerator creates a generator drawing from the given noise source.
func NewGenerator(src Source) *Generator {
	return &Generator{src: src}
}

// Generate returns the procedurally generated tile at (x, y) for the biome.
// It is pure: the same arguments always produce the same tile.
func (g *Generator) Generate(x, y int, biome Biome) Tile {
	s := sample{
		x:      x,
		y:      y,
		r:      g.src.At(x, y, SaltTile),
		small:  g.src.Patch(x, y, 2, SaltPatchSmall),
		medium: g.src.Patch(x, y, 3, SaltPatchMedium),
		large:  g.src.Patch(x, y, 5, SaltPatchLarge),
	}

	switch biome {
	case BiomeGrassland:
		return g.grassland(s)
	case BiomeDesert:
		return g.desert(s)
	case BiomeTundra:
		return g.tundra(s)
	case BiomeForest:
		return g.forest(s)
	case BiomeVolcanic:
		return g.volcanic(s)
	case BiomeOcean:
		return g.ocean(s)
	case BiomeSwamp:
		return g.swamp(s)
	case BiomeMountain:
		return g.mountain(s)
	case BiomeJungle:
		return g.jungle(s)
	case BiomeMushroom, BiomeMushroomForest:
		return g.mushroom(s)
	case BiomeCrystalCave:
		return g.crystalCave(s)
	case BiomeWasteland:
		return g.wasteland(s)
	case BiomeFactory:
		return g.factory(s)
	default:
		return TileGrass
	}
}

// GroundTile returns the walkable tile a cell reverts to once its contents
// are collected or mined.
func GroundTile(biome Biome) Tile {
	switch biome {
	case BiomeDesert:
		return TileDesertSand
	case BiomeTundra:
		return TileSnow
	case BiomeVolcanic:
		return TileObsidian
	case BiomeOcean:
		return TileSand
	case BiomeMountain:
		return TileStoneBlock
	case BiomeJungle, BiomeWasteland:
		return TileDirt
	case BiomeMushroom, BiomeMushroomForest:
		return TileMushroomBlock
	case BiomeCrystalCave:
		return TileDarkStone
	case BiomeFactory:
		return TileFactoryFloor
	default:
		return TileGrass
	}
}

// pathStrength widens paths near the origin so the start area is easy to
// travel. The result is clamped to [0.1, 0.6].
func pathStrength(x, y int) float64 {
	s := 0.4 - float64(abs(x)+abs(y))/1000
	return math.Max(0.1, math.Min(0.6, s))
}

// onMeadowPath reports whether (x, y) lies on the winding grassland dirt path.
func (g *Generator) onMeadowPath(x, y int) bool {
	fx, fy := float64(x), float64(y)
	p1 := math.Sin(fx*0.2) * math.Cos(fy*0.2)
	p2 := math.Sin(fx*0.1) * math.Cos(fy*0.15)
	p3 := g.src.Patch(x, y, 2, SaltPathEdge) * 0.3
	return math.Abs(p1+p2+p3) < 0.2+pathStrength(x, y)
}

// forestTrail is the signed distance-like field whose zero set is the forest trail.
func forestTrail(x, y int) float64 {
	fx, fy := float64(x), float64(y)
	return (math.Sin(fx*0.15) + math.Cos(fy*0.15) + math.Sin(fx*0.05+fy*0.03)*0.5) / 2.5
}

// oreVein reports whether (x, y) lies on a mountain ore vein.
func oreVein(x, y int) bool {
	fx, fy := float64(x), float64(y)
	return math.Abs(math.Sin(fx*0.3+fy*0.1)+math.Cos(fy*0.25-fx*0.05)) < 0.15
}

// lavaRiver reports whether (x, y) lies on a volcanic lava channel.
func lavaRiver(x, y int) bool {
	fx, fy := float64(x), float64(y)
	return math.Abs(math.Sin(fx*0.12)*math.Cos(fy*0.09)+math.Sin((fx+fy)*0.05)*0.5) < 0.08
}

// crystalSeam reports whether (x, y) lies on a crystal seam in the caves.
func crystalSeam(x, y int) bool {
	fx, fy := float64(x), float64(y)
	return math.Abs(math.Sin(fx*0.25+fy*0.15)*math.Cos(fy*0.2)) < 0.08
}

// mushroomCanopy is a smooth 0..1 field that clusters mushroom growth.
func mushroomCanopy(x, y int) float64 {
	fx, fy := float64(x), float64(y)
	return (math.Sin(fx*0.2)*math.Cos(fy*0.2) + 1) / 2
}
