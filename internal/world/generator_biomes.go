package world

import "math"

// =============================================================================
// Threshold tables
// =============================================================================

var (
	grasslandRare = bands{
		{0.005, TileTreasure},
		{0.008, TileQuestionBlock},
		{0.010, TilePortal},
		{0.011, TileKey},
		{0.013, TileNPC},
	}

	forestRare = bands{{0.02, TileTreasure}, {0.04, TilePortal}}
	forestBulk = bands{
		{0.20, TileTree},
		{0.35, TileTreePine},
		{0.45, TileBush},
		{0.50, TileFlower},
	}

	mountainRare = bands{{0.01, TileCrystal}, {0.03, TileTreasure}, {0.05, TilePortal}}
	mountainBulk = bands{{0.40, TileStone}, {0.50, TileDarkStone}}
	mountainOre  = bands{{0.05, TileDiamondOre}, {0.25, TileGoldOre}}

	mushroomRare = bands{{0.01, TileTreasure}, {0.02, TileCrystal}, {0.03, TilePortal}}
	mushroomTree = bands{
		{0.12, TileMushroomTree1},
		{0.24, TileMushroomTree2},
		{0.36, TileMushroomTree3},
	}
	mushroomCluster = bands{
		{0.10, TileMushroom1},
		{0.20, TileMushroom2},
		{0.25, TileMushroomRed},
		{0.30, TileMushroomBlue},
	}
	mushroomBush = bands{
		{0.35, TileMushroomBush1},
		{0.40, TileMushroomBush2},
		{0.45, TileMushroomBush3},
		{0.50, TileMushroomBush4},
	}
	mushroomDecor = bands{
		{0.55, TileStoneBlock},
		{0.60, TileBush},
		{0.62, TileCrate},
		{0.64, TileSign},
		{0.66, TileStone},
	}

	tundraRare = bands{{0.02, TileTreasure}, {0.04, TilePortal}, {0.06, TileCrystal}}
	tundraBulk = bands{
		{0.15, TileSnowTree1},
		{0.30, TileSnowTree2},
		{0.35, TileSnowman},
		{0.38, TileIgloo},
		{0.41, TileIceBox},
		{0.44, TileCrate},
		{0.46, TileSign},
		{0.50, TileIce},
		{0.52, TileStone},
	}

	volcanicRare = bands{{0.02, TileTreasure}, {0.03, TilePortal}, {0.05, TileCrystal}}
	volcanicBulk = bands{{0.30, TileLava}, {0.40, TileObsidian}, {0.45, TileDarkStone}}

	oceanRare = bands{{0.02, TileTreasure}, {0.03, TilePortal}}
	oceanBulk = bands{
		{0.40, TileWater},
		{0.50, TileCoral},
		{0.55, TileLilyPad},
		{0.60, TileSand},
	}

	swampRare = bands{{0.02, TileTreasure}, {0.04, TilePortal}}
	swampBulk = bands{
		{0.15, TileVine},
		{0.30, TileLilyPad},
		{0.40, TileMushroomBlue},
		{0.50, TileWater},
		{0.59, TileDirt},
		{0.69, TileGrass},
	}

	jungleRare = bands{
		{0.020, TileTreasure},
		{0.040, TilePortal},
		{0.060, TileCrystal},
		{0.065, TileNPC},
	}
	jungleBulk = bands{
		{0.20, TileTree},
		{0.35, TileVine},
		{0.45, TileBush},
		{0.50, TileFlower},
		{0.61, TileGrass},
	}

	wastelandRare = bands{{0.02, TileTreasure}, {0.04, TilePortal}, {0.06, TileCrystal}}
	wastelandBulk = bands{
		{0.40, TileDarkStone},
		{0.50, TileStone},
		{0.55, TileObsidian},
		{0.71, TileStoneBlock},
	}

	factoryRare = bands{{0.01, TileTreasure}, {0.02, TilePortal}}
	factoryBulk = bands{
		{0.10, TileFactoryPipe},
		{0.20, TileFactoryGear},
		{0.30, TileFactoryBox},
		{0.35, TileFactoryCrate},
		{0.40, TileFactoryBarrel},
		{0.45, TileFactorySaw},
		{0.50, TileFactorySwitch},
		{0.55, TileFactoryDoorOpen},
		{0.56, TileFactoryDoorClosed},
		{0.65, TileFactoryWall},
		{0.90, TileFactoryFloor},
	}

	desertRare = bands{{0.010, TileTreasure}, {0.020, TilePortal}, {0.025, TileNPC}}
	desertBulk = bands{
		{0.10, TileDesertGrass1},
		{0.20, TileDesertGrass2},
		{0.30, TileDesertBush1},
		{0.40, TileDesertBush2},
		{0.45, TileDesertTree},
		{0.50, TileDesertCactus1},
		{0.55, TileDesertCactus2},
		{0.60, TileDesertCactus3},
		{0.65, TileDesertRock},
		{0.70, TileDesertSkeleton},
		{0.75, TileDesertSign},
		{0.80, TileDesertSignArrow},
	}

	caveRare = bands{{0.02, TileTreasure}, {0.03, TilePortal}}
	caveBulk = bands{{0.06, TileCrystal}, {0.25, TileStone}, {0.32, TileObsidian}}
)

// =============================================================================
// Biome rules
// =============================================================================

func (g *Generator) grassland(s sample) Tile {
	if t, ok := grasslandRare.pick(s.r); ok {
		return t
	}
	if s.medium < 0.15 && s.large < 0.4 {
		return TileWater
	}
	if s.medium > 0.7 && s.r < 0.4 {
		return TileTree
	}
	if s.small > 0.8 && s.r < 0.3 {
		return TileFlower
	}
	if g.onMeadowPath(s.x, s.y) {
		if g.src.At(s.x, s.y, SaltPathGap) < 0.9 {
			return TileDirt
		}
		if g.src.At(s.x, s.y, SaltPathFlower) < 0.1 {
			if g.src.At(s.x, s.y, SaltPathFlowerAlt) < 0.3 {
				return TileFlower
			}
			return TileGrass
		}
	}
	return TileGrass
}

func (g *Generator) forest(s sample) Tile {
	if t, ok := forestRare.pick(s.r); ok {
		return t
	}

	const trailWidth, mushroomZone = 0.2, 0.1
	pn := math.Abs(forestTrail(s.x, s.y))
	switch {
	case pn < trailWidth:
		if pn > trailWidth*0.7 && g.src.At(s.x, s.y, SaltPathEdge) < 0.3 {
			return TileMushroomRed
		}
		return TileDirt
	case pn < trailWidth+mushroomZone:
		if g.src.At(s.x, s.y, SaltPathGap) < 0.7 {
			return TileMushroomRed
		}
	}

	return forestBulk.pickOr(s.r, TileGrass)
}

func (g *Generator) mountain(s sample) Tile {
	if t, ok := mountainRare.pick(s.r); ok {
		return t
	}
	if oreVein(s.x, s.y) && s.r <= 0.40 {
		return mountainOre.pickOr(g.src.At(s.x, s.y, SaltOreKind), TileIronOre)
	}
	return mountainBulk.pickOr(s.r, TileStoneBlock)
}

func (g *Generator) mushroom(s sample) Tile {
	if t, ok := mushroomRare.pick(s.r); ok {
		return t
	}

	canopy := mushroomCanopy(s.x, s.y)
	if canopy > 0.7 {
		if t, ok := mushroomTree.pick(s.r); ok {
			return t
		}
	}
	if canopy > 0.3 && canopy < 0.8 {
		if t, ok := mushroomCluster.pick(s.r); ok {
			return t
		}
	}
	if canopy > 0.4 {
		if t, ok := mushroomBush.pick(s.r); ok {
			return t
		}
	}
	if t, ok := mushroomDecor.pick(s.r); ok {
		return t
	}

	switch {
	case canopy > 0.6:
		return TileMushroomBlock
	case canopy > 0.3:
		if s.r < 0.7 {
			return TileDirt
		}
		return TileMushroomBlock
	default:
		if s.r < 0.6 {
			return TileMushroomBlock
		}
		return TileDirt
	}
}

func (g *Generator) tundra(s sample) Tile {
	if t, ok := tundraRare.pick(s.r); ok {
		return t
	}
	if s.large < 0.12 {
		return TileIce
	}
	return tundraBulk.pickOr(s.r, TileSnow)
}

func (g *Generator) volcanic(s sample) Tile {
	if t, ok := volcanicRare.pick(s.r); ok {
		return t
	}
	if lavaRiver(s.x, s.y) {
		return TileLava
	}
	return volcanicBulk.pickOr(s.r, TileStone)
}

func (g *Generator) ocean(s sample) Tile {
	if t, ok := oceanRare.pick(s.r); ok {
		return t
	}
	if s.large > 0.85 && s.medium > 0.5 {
		return TileSand
	}
	return oceanBulk.pickOr(s.r, TileWater)
}

func (g *Generator) swamp(s sample) Tile {
	if t, ok := swampRare.pick(s.r); ok {
		return t
	}
	return swampBulk.pickOr(s.r, TileWater)
}

func (g *Generator) jungle(s sample) Tile {
	if t, ok := jungleRare.pick(s.r); ok {
		return t
	}
	return jungleBulk.pickOr(s.r, TileDirt)
}

func (g *Generator) wasteland(s sample) Tile {
	if t, ok := wastelandRare.pick(s.r); ok {
		return t
	}
	return wastelandBulk.pickOr(s.r, TileDirt)
}

func (g *Generator) factory(s sample) Tile {
	if t, ok := factoryRare.pick(s.r); ok {
		return t
	}
	return factoryBulk.pickOr(s.r, TileFactoryAcid)
}

func (g *Generator) desert(s sample) Tile {
	if t, ok := desertRare.pick(s.r); ok {
		return t
	}
	if s.large < 0.06 && s.medium < 0.5 {
		return TileWater
	}
	return desertBulk.pickOr(s.r, TileDesertSand)
}

func (g *Generator) crystalCave(s sample) Tile {
	if t, ok := caveRare.pick(s.r); ok {
		return t
	}
	if crystalSeam(s.x, s.y) && s.r <= 0.25 {
		return TileCrystal
	}
	return caveBulk.pickOr(s.r, TileDarkStone)
}
