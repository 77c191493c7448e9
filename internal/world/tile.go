// Package world provides the procedural tile world: seeded noise, biome
// classification, per-biome tile generation and the mutable world store.
package world

import "github.com/samdwyer/wildlands/internal/item"

// Tile identifies the contents of a single world cell.
type Tile int

const (
	TileGrass Tile = iota
	TileDirt
	TileStone
	TileWater
	TileTree
	TileFlower
	TileTreasure
	TileKey
	TileBrick
	TileQuestionBlock
	TileIce
	TileSnow
	TileSand
	TileCactus
	TileLava
	TileObsidian
	TilePortal
	TileCrystal
	TileMushroomBlock
	TileLilyPad
	TileVine
	TileDarkStone
	TileCoral
	TileNPC
	TileMushroomRed
	TileMushroomBlue
	TileBush
	TileCrate
	TileSign
	TileStoneBlock
	TileTreePine
	TileTreeOak
	TileTreeMushroom
	TileSnowman
	TileIgloo
	TileIceBox
	TileSnowTree1
	TileSnowTree2
	TileMushroomTree1
	TileMushroomTree2
	TileMushroomTree3
	TileMushroom1
	TileMushroom2
	TileMushroomBush1
	TileMushroomBush2
	TileMushroomBush3
	TileMushroomBush4
	TileIronOre
	TileGoldOre
	TileDiamondOre

	TileFactoryFloor
	TileFactoryWall
	TileFactoryPipe
	TileFactoryGear
	TileFactoryBox
	TileFactoryCrate
	TileFactoryBarrel
	TileFactoryAcid
	TileFactorySaw
	TileFactorySwitch
	TileFactoryDoorOpen
	TileFactoryDoorClosed

	TileDesertSand
	TileDesertGrass1
	TileDesertGrass2
	TileDesertBush1
	TileDesertBush2
	TileDesertTree
	TileDesertCactus1
	TileDesertCactus2
	TileDesertCactus3
	TileDesertRock
	TileDesertSkeleton
	TileDesertSign
	TileDesertSignArrow

	tileCount
)

// Trigger is the special behaviour a tile has when the player steps on it.
type Trigger int

const (
	TriggerNone Trigger = iota
	TriggerPortal
	TriggerNPC
	TriggerTreasure
	TriggerCrystal
	TriggerMystery
	TriggerKey
)

// TileInfo holds the static attributes of a tile type.
type TileInfo struct {
	ID        string
	Walkable  bool
	Hazardous bool
	Slow      bool      // slows movement (ice, water)
	Yield     item.Type // item granted on pickup or when mined
	Tool      item.Type // tool required to mine; None for step-on pickups
	Trigger   Trigger
}

var tileInfo = [tileCount]TileInfo{
	TileGrass:         {ID: "grass", Walkable: true},
	TileDirt:          {ID: "dirt", Walkable: true},
	TileStone:         {ID: "stone", Yield: item.Stone, Tool: item.Pickaxe},
	TileWater:         {ID: "water", Hazardous: true, Slow: true},
	TileTree:          {ID: "tree", Yield: item.Wood, Tool: item.Axe},
	TileFlower:        {ID: "flower", Walkable: true, Yield: item.Flower},
	TileTreasure:      {ID: "treasure", Walkable: true, Yield: item.Treasure, Trigger: TriggerTreasure},
	TileKey:           {ID: "key", Walkable: true, Yield: item.Key, Trigger: TriggerKey},
	TileBrick:         {ID: "brick", Walkable: true},
	TileQuestionBlock: {ID: "question_block", Walkable: true, Trigger: TriggerMystery},
	TileIce:           {ID: "ice", Walkable: true, Slow: true},
	TileSnow:          {ID: "snow", Walkable: true},
	TileSand:          {ID: "sand", Walkable: true},
	TileCactus:        {ID: "cactus"},
	TileLava:          {ID: "lava", Hazardous: true},
	TileObsidian:      {ID: "obsidian", Walkable: true},
	TilePortal:        {ID: "portal", Walkable: true, Trigger: TriggerPortal},
	TileCrystal:       {ID: "crystal", Walkable: true, Yield: item.Crystal, Trigger: TriggerCrystal},
	TileMushroomBlock: {ID: "mushroom_block", Walkable: true},
	TileLilyPad:       {ID: "lily_pad", Walkable: true},
	TileVine:          {ID: "vine"},
	TileDarkStone:     {ID: "dark_stone", Walkable: true},
	TileCoral:         {ID: "coral"},
	TileNPC:           {ID: "npc", Walkable: true, Trigger: TriggerNPC},
	TileMushroomRed:   {ID: "mushroom_red", Walkable: true, Yield: item.MushroomRed},
	TileMushroomBlue:  {ID: "mushroom_blue", Walkable: true, Yield: item.MushroomBlue},
	TileBush:          {ID: "bush", Walkable: true},
	TileCrate:         {ID: "crate", Walkable: true},
	TileSign:          {ID: "sign", Walkable: true},
	TileStoneBlock:    {ID: "stone_block", Walkable: true},
	TileTreePine:      {ID: "tree_pine", Yield: item.Wood, Tool: item.Axe},
	TileTreeOak:       {ID: "tree_oak", Yield: item.Wood, Tool: item.Axe},
	TileTreeMushroom:  {ID: "tree_mushroom"},
	TileSnowman:       {ID: "snowman", Walkable: true},
	TileIgloo:         {ID: "igloo", Walkable: true},
	TileIceBox:        {ID: "ice_box", Walkable: true},
	TileSnowTree1:     {ID: "snow_tree_1", Walkable: true},
	TileSnowTree2:     {ID: "snow_tree_2", Walkable: true},
	TileMushroomTree1: {ID: "mushroom_tree_1"},
	TileMushroomTree2: {ID: "mushroom_tree_2"},
	TileMushroomTree3: {ID: "mushroom_tree_3"},
	TileMushroom1:     {ID: "mushroom_1", Walkable: true},
	TileMushroom2:     {ID: "mushroom_2", Walkable: true},
	TileMushroomBush1: {ID: "mushroom_bush_1", Walkable: true},
	TileMushroomBush2: {ID: "mushroom_bush_2", Walkable: true},
	TileMushroomBush3: {ID: "mushroom_bush_3", Walkable: true},
	TileMushroomBush4: {ID: "mushroom_bush_4", Walkable: true},
	TileIronOre:       {ID: "iron_ore", Yield: item.Iron, Tool: item.Pickaxe},
	TileGoldOre:       {ID: "gold_ore", Yield: item.Gold, Tool: item.Pickaxe},
	TileDiamondOre:    {ID: "diamond_ore", Yield: item.Diamond, Tool: item.Pickaxe},

	TileFactoryFloor:      {ID: "factory_floor", Walkable: true},
	TileFactoryWall:       {ID: "factory_wall"},
	TileFactoryPipe:       {ID: "factory_pipe"},
	TileFactoryGear:       {ID: "factory_gear"},
	TileFactoryBox:        {ID: "factory_box", Walkable: true},
	TileFactoryCrate:      {ID: "factory_crate", Walkable: true},
	TileFactoryBarrel:     {ID: "factory_barrel"},
	TileFactoryAcid:       {ID: "factory_acid", Hazardous: true},
	TileFactorySaw:        {ID: "factory_saw", Hazardous: true},
	TileFactorySwitch:     {ID: "factory_switch", Walkable: true},
	TileFactoryDoorOpen:   {ID: "factory_door_open", Walkable: true},
	TileFactoryDoorClosed: {ID: "factory_door_closed"},

	TileDesertSand:      {ID: "desert_sand", Walkable: true},
	TileDesertGrass1:    {ID: "desert_grass_1", Walkable: true},
	TileDesertGrass2:    {ID: "desert_grass_2", Walkable: true},
	TileDesertBush1:     {ID: "desert_bush_1", Walkable: true},
	TileDesertBush2:     {ID: "desert_bush_2", Walkable: true},
	TileDesertTree:      {ID: "desert_tree"},
	TileDesertCactus1:   {ID: "desert_cactus_1"},
	TileDesertCactus2:   {ID: "desert_cactus_2"},
	TileDesertCactus3:   {ID: "desert_cactus_3"},
	TileDesertRock:      {ID: "desert_rock"},
	TileDesertSkeleton:  {ID: "desert_skeleton"},
	TileDesertSign:      {ID: "desert_sign", Walkable: true},
	TileDesertSignArrow: {ID: "desert_sign_arrow", Walkable: true},
}

// Info returns the static attributes of the tile. Out-of-range values get
// the attributes of an impassable, unnamed tile.
func (t Tile) Info() TileInfo {
	if t < 0 || t >= tileCount {
		return TileInfo{ID: "unknown"}
	}
	return tileInfo[t]
}

// ID returns the tile identifier used for style lookup.
func (t Tile) ID() string { return t.Info().ID }

// String returns the tile identifier.
func (t Tile) String() string { return t.ID() }

// IsWalkable returns true if the player may occupy the tile.
func (t Tile) IsWalkable() bool { return t.Info().Walkable }

// IsHazardous returns true if stepping toward the tile damages the player.
func (t Tile) IsHazardous() bool { return t.Info().Hazardous }

// Yield returns the item the tile grants, or item.None.
func (t Tile) Yield() item.Type { return t.Info().Yield }

// IsCollectible returns true if stepping onto the tile picks up an item.
func (t Tile) IsCollectible() bool {
	info := t.Info()
	return info.Walkable && info.Yield != item.None
}

// IsMineable returns true if the tile can be harvested with a tool.
func (t Tile) IsMineable() bool {
	info := t.Info()
	return info.Tool != item.None && info.Yield != item.None
}

// Trigger returns the tile's special behaviour.
func (t Tile) Trigger() Trigger { return t.Info().Trigger }

// SpeedFactor returns the relative movement speed on the tile.
func (t Tile) SpeedFactor() float64 {
	if t.Info().Slow {
		return 0.7
	}
	return 1
}

// AllTiles returns every tile in declaration order.
func AllTiles() []Tile {
	tiles := make([]Tile, 0, tileCount)
	for t := Tile(0); t < tileCount; t++ {
		tiles = append(tiles, t)
	}
	return tiles
}
