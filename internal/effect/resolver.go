// Package effect resolves what happens to the player when a tile is stepped
// on, mined or used as a hazard, and when an inventory item is consumed.
package effect

import (
	"fmt"
	"strings"

	"github.com/samdwyer/wildlands/internal/gamedata"
	"github.com/samdwyer/wildlands/internal/item"
	"github.com/samdwyer/wildlands/internal/world"
)

// HazardDamage is the damage dealt by bumping into a hazardous tile.
const HazardDamage = 1

// Actor is anything tile and item effects can be applied to.
type Actor interface {
	// Vitals
	GetHealth() int
	GetMaxHealth() int

	// Mutations
	TakeDamage(amount int) int    // Returns actual damage taken
	Heal(amount int) int          // Returns actual amount healed
	RestoreEnergy(amount int) int // Returns actual energy restored
	AddCoins(amount int)
	AddScore(amount int)
	GrantKey()

	// Inventory
	AddItem(t item.Type, quantity int) bool // All-or-nothing
	HasTool(t item.Type) bool
}

// Result contains the outcome of resolving an effect.
type Result struct {
	Success bool // false means nothing changed

	Item     item.Type  // Item granted, or item.None
	Replace  world.Tile // Tile to write back when Replaced is set
	Replaced bool

	Coins    int
	Score    int
	Healed   int
	Energy   int
	Damage   int
	Messages []string // Human-readable descriptions, oldest first
}

func (r *Result) say(format string, args ...any) {
	r.Messages = append(r.Messages, fmt.Sprintf(format, args...))
}

func (r *Result) replace(t world.Tile) {
	r.Replace = t
	r.Replaced = true
}

// Resolver calculates and applies tile and item effects.
type Resolver struct {
	src   world.Source
	items *gamedata.Registry[gamedata.ItemDef]
}

// NewResolver creates a resolver. The noise source drives the mystery
// block roll; items supplies display names and consumable effects and may be
// nil.
func NewResolver(src world.Source, items *gamedata.Registry[gamedata.ItemDef]) *Resolver {
	return &Resolver{src: src, items: items}
}

// ItemName returns the display name of an item.
func (r *Resolver) ItemName(t item.Type) string {
	if r.items != nil {
		if def := r.items.GetByID(t.ID()); def != nil && def.Name != "" {
			return def.Name
		}
	}
	return strings.ReplaceAll(t.ID(), "_", " ")
}

// ResolveStep applies the effects of stepping onto a walkable tile at
// (x, y). ground is the tile a collected cell reverts to.
//
// A collectible is only taken, and its tile only cleared, when the actor
// accepts the item; a refused pickup leaves every reward untouched.
func (r *Resolver) ResolveStep(tile world.Tile, x, y int, ground world.Tile, actor Actor) Result {
	res := Result{Success: true}

	if tile.IsCollectible() {
		yield := tile.Yield()
		if !actor.AddItem(yield, 1) {
			return Result{Messages: []string{"Inventory full!"}}
		}
		res.Item = yield
		res.replace(ground)
		res.say("Collected %s", strings.ToLower(r.ItemName(yield)))
	}

	switch tile.Trigger() {
	case world.TriggerTreasure:
		r.reward(&res, actor, 10, 100)
		res.replace(ground)
	case world.TriggerCrystal:
		r.reward(&res, actor, 25, 250)
		res.replace(ground)
	case world.TriggerKey:
		actor.GrantKey()
		actor.AddScore(200)
		res.Score += 200
		res.replace(ground)
		res.say("Got Key!")
	case world.TriggerMystery:
		if r.src.At(x, y, world.SaltMysteryBlock) < 0.5 {
			r.reward(&res, actor, 5, 50)
		} else {
			res.Healed = actor.Heal(1)
			res.say("+1 Life!")
		}
		res.replace(world.TileBrick)
	}

	return res
}

func (r *Resolver) reward(res *Result, actor Actor, coins, score int) {
	actor.AddCoins(coins)
	actor.AddScore(score)
	res.Coins += coins
	res.Score += score
	res.say("+%d Coins!", coins)
}

// ResolveHazard applies hazard damage for bumping into tile. Health never
// drops below zero.
func (r *Resolver) ResolveHazard(tile world.Tile, actor Actor) Result {
	if !tile.IsHazardous() {
		return Result{}
	}
	res := Result{Success: true, Damage: actor.TakeDamage(HazardDamage)}
	if tile == world.TileLava {
		res.say("Burning!")
	} else {
		res.say("Ouch!")
	}
	return res
}

// ResolveMine harvests a mineable tile with the tool from the actor's
// hotbar. Trees and plain stone revert to ground; ore nodes become stone.
func (r *Resolver) ResolveMine(tile world.Tile, ground world.Tile, actor Actor) Result {
	if !tile.IsMineable() {
		return Result{Messages: []string{"Nothing to mine here."}}
	}

	info := tile.Info()
	if !actor.HasTool(info.Tool) {
		if info.Tool == item.Axe {
			return Result{Messages: []string{"You need an axe to chop trees!"}}
		}
		return Result{Messages: []string{fmt.Sprintf("You need a %s to mine %s!",
			strings.ToLower(r.ItemName(info.Tool)), strings.ToLower(r.ItemName(info.Yield)))}}
	}
	if !actor.AddItem(info.Yield, 1) {
		return Result{Messages: []string{"Inventory full!"}}
	}

	res := Result{Success: true, Item: info.Yield}
	switch tile {
	case world.TileIronOre, world.TileGoldOre, world.TileDiamondOre:
		res.replace(world.TileStone)
	default:
		res.replace(ground)
	}
	if info.Tool == item.Axe {
		res.say("Chopped %s +1", strings.ToLower(r.ItemName(info.Yield)))
	} else {
		res.say("Mined %s +1", strings.ToLower(r.ItemName(info.Yield)))
	}
	return res
}

// UseItem applies a consumable's effect. The caller removes the consumed
// unit when the result succeeds.
func (r *Resolver) UseItem(t item.Type, actor Actor) Result {
	var def *gamedata.ItemDef
	if r.items != nil {
		def = r.items.GetByID(t.ID())
	}
	if def == nil || !def.Consumable {
		return Result{Messages: []string{fmt.Sprintf("Can't use %s.", strings.ToLower(r.ItemName(t)))}}
	}
	if def.RequiresMissingHealth && actor.GetHealth() >= actor.GetMaxHealth() {
		return Result{Messages: []string{"Health is already full!"}}
	}

	res := Result{Success: true, Item: t}
	res.Healed = actor.Heal(def.Heal)
	res.Energy = actor.RestoreEnergy(def.Energy)
	if def.Message != "" {
		res.say("%s", def.Message)
	} else {
		res.say("Used %s.", strings.ToLower(def.Name))
	}
	return res
}
