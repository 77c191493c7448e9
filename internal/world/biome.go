package world

// Biome is a named terrain category governing which tiles can generate.
type Biome int

const (
	BiomeGrassland Biome = iota
	BiomeDesert
	BiomeTundra
	BiomeForest
	BiomeVolcanic
	BiomeOcean
	BiomeSwamp
	BiomeMountain
	BiomeJungle
	BiomeMushroom
	BiomeCrystalCave
	BiomeWasteland
	BiomeMushroomForest
	BiomeFactory

	biomeCount
)

var biomeIDs = [biomeCount]string{
	BiomeGrassland:      "grassland",
	BiomeDesert:         "desert",
	BiomeTundra:         "tundra",
	BiomeForest:         "forest",
	BiomeVolcanic:       "volcanic",
	BiomeOcean:          "ocean",
	BiomeSwamp:          "swamp",
	BiomeMountain:       "mountain",
	BiomeJungle:         "jungle",
	BiomeMushroom:       "mushroom",
	BiomeCrystalCave:    "crystal_cave",
	BiomeWasteland:      "wasteland",
	BiomeMushroomForest: "mushroom_forest",
	BiomeFactory:        "factory",
}

// ID returns the biome identifier used for data lookup.
func (b Biome) ID() string {
	if b < 0 || b >= biomeCount {
		return "unknown"
	}
	return biomeIDs[b]
}

// String returns the biome identifier.
func (b Biome) String() string {
	return b.ID()
}

// AllBiomes returns every biome in declaration order.
func AllBiomes() []Biome {
	biomes := make([]Biome, 0, biomeCount)
	for b := Biome(0); b < biomeCount; b++ {
		biomes = append(biomes, b)
	}
	return biomes
}

// RegionSize is the edge length of the square block of overworld tiles that
// shares one biome roll.
const RegionSize = 30

// BiomeThreshold is one band of the biome roll: rolls at or below Below map
// to Biome unless an earlier band already matched.
type BiomeThreshold struct {
	Below float64
	Biome Biome
}

// DefaultBiomeTable is the overworld biome roll. Rolls above the last band
// fall back to Grassland.
var DefaultBiomeTable = []BiomeThreshold{
	{Below: 0.10, Biome: BiomeDesert},
	{Below: 0.20, Biome: BiomeTundra},
	{Below: 0.35, Biome: BiomeForest},
	{Below: 0.40, Biome: BiomeVolcanic},
	{Below: 0.50, Biome: BiomeOcean},
	{Below: 0.60, Biome: BiomeSwamp},
	{Below: 0.70, Biome: BiomeMountain},
	{Below: 0.80, Biome: BiomeJungle},
	{Below: 0.85, Biome: BiomeMushroom},
	{Below: 0.90, Biome: BiomeWasteland},
}

// Grove is the rare per-tile override that turns Grassland into a mushroom
// forest inside a ring around the origin.
type Grove struct {
	MinAbs    int     // exclusive lower bound on |x| and |y|
	MaxAbs    int     // exclusive upper bound on |x| and |y|
	Threshold float64 // noise must exceed this
}

// DefaultGrove matches the ring 50 < |x|,|y| < 150.
var DefaultGrove = Grove{MinAbs: 50, MaxAbs: 150, Threshold: 0.7}

// Contains reports whether (x, y) lies inside the grove window.
func (g Grove) Contains(x, y int) bool {
	ax, ay := abs(x), abs(y)
	return ax > g.MinAbs && ay > g.MinAbs && ax < g.MaxAbs && ay < g.MaxAbs
}

// Classifier maps world coordinates to biomes.
type Classifier struct {
	src   Source
	table []BiomeThreshold
	grove Grove
}

// NewClassifier creates a classifier using the given threshold table. A nil
// table selects DefaultBiomeTable. The table is copied.
func NewClassifier(src Source, table []BiomeThreshold) *Classifier {
	if table == nil {
		table = DefaultBiomeTable
	}
	return &Classifier{
		src:   src,
		table: append([]BiomeThreshold(nil), table...),
		grove: DefaultGrove,
	}
}

// Table returns a copy of the threshold table in evaluation order.
func (c *Classifier) Table() []BiomeThreshold {
	return append([]BiomeThreshold(nil), c.table...)
}

// Region returns the region coordinates containing (x, y).
func Region(x, y int) (int, int) {
	return floorDiv(x, RegionSize), floorDiv(y, RegionSize)
}

// BiomeAt returns the biome at (x, y) in the given dimension. Alternate
// dimensions have a single fixed biome; the overworld rolls once per region.
func (c *Classifier) BiomeAt(x, y int, dim Dimension) Biome {
	if dim != Overworld {
		if b, ok := dim.fixedBiome(); ok {
			return b
		}
	}

	rx, ry := Region(x, y)
	r := c.src.At(rx, ry, SaltBiome)
	for _, band := range c.table {
		if r <= band.Below {
			return band.Biome
		}
	}

	if c.grove.Contains(x, y) && c.src.At(x, y, SaltMushroomWood) > c.grove.Threshold {
		return BiomeMushroomForest
	}
	return BiomeGrassland
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
