package world

import "math"

// Noise salts. Each generation purpose that shares a coordinate uses its own
// salt so the draws stay decorrelated.
const (
	SaltTile          = 0
	SaltMushroomWood  = 3
	SaltPatchMedium   = 111 // 3×3 patches
	SaltPathEdge      = 123
	SaltPatchLarge    = 222 // 5×5 patches
	SaltPatchSmall    = 333 // 2×2 patches
	SaltOreKind       = 444
	SaltPathGap       = 456
	SaltMysteryBlock  = 777
	SaltPathFlower    = 789
	SaltPathFlowerAlt = 101
	SaltNPC           = 7777
	SaltPortal        = 9999
	SaltBiome         = 12345
)

// Noise returns a deterministic pseudo-random value in [0, 1) for the given
// integer coordinate and seed. It is a pure function: no state, no global RNG.
func Noise(x, y, seed int) float64 {
	n := math.Sin(float64(x)*12.9898+float64(y)*78.233+float64(seed)) * 43758.5453
	v := n - math.Floor(n)
	// Rounding can push tiny negative inputs up to exactly 1.
	if v >= 1 || v < 0 {
		return 0
	}
	return v
}

// Source is a seeded noise source. The zero value is the default world.
type Source struct {
	Seed int
}

// NewSource creates a noise source for the given world seed.
func NewSource(seed int64) Source {
	return Source{Seed: int(seed)}
}

// At draws the noise value for (x, y) under the given salt.
func (s Source) At(x, y, salt int) float64 {
	return Noise(x, y, s.Seed+salt)
}

// Patch draws a noise value on a coarser grid so that every size×size block
// of tiles shares one value. Division floors, so blocks are exact tile counts
// on both sides of the origin.
func (s Source) Patch(x, y, size, salt int) float64 {
	return s.At(floorDiv(x, size), floorDiv(y, size), salt)
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
