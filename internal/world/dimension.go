package world

// Dimension identifies an independent coordinate space.
type Dimension string

const (
	Overworld     Dimension = "overworld"
	CrystalCave   Dimension = "crystal_cave"
	Nether        Dimension = "nether"
	MushroomRealm Dimension = "mushroom"
)

// AlternateDimensions lists the realms reachable through portals, in the
// order used for the portal destination roll.
var AlternateDimensions = []Dimension{CrystalCave, Nether, MushroomRealm}

// Name returns the display name of the dimension.
func (d Dimension) Name() string {
	switch d {
	case Overworld:
		return "Overworld"
	case CrystalCave:
		return "Crystal Cave"
	case Nether:
		return "The Nether"
	case MushroomRealm:
		return "Mushroom Realm"
	default:
		return "Unknown"
	}
}

// IsAlternate reports whether d is one of the portal-only realms.
func (d Dimension) IsAlternate() bool {
	for _, alt := range AlternateDimensions {
		if d == alt {
			return true
		}
	}
	return false
}

// fixedBiome returns the single biome bound to an alternate dimension.
func (d Dimension) fixedBiome() (Biome, bool) {
	switch d {
	case CrystalCave:
		return BiomeCrystalCave, true
	case Nether:
		return BiomeVolcanic, true
	case MushroomRealm:
		return BiomeMushroom, true
	default:
		return BiomeGrassland, false
	}
}

// PortalDestination picks the alternate dimension a portal at (x, y) leads
// to. The three realms split the roll evenly.
func PortalDestination(src Source, x, y int) Dimension {
	r := src.At(x, y, SaltPortal)
	switch {
	case r < 0.33:
		return CrystalCave
	case r < 0.66:
		return Nether
	default:
		return MushroomRealm
	}
}
