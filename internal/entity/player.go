// Package entity provides the player and the inventory it carries.
package entity

import (
	"github.com/samdwyer/wildlands/internal/effect"
	"github.com/samdwyer/wildlands/internal/item"
)

// DefaultMaxEnergy is the player's energy ceiling.
const DefaultMaxEnergy = 100

// Player is the explorer: position, vitals, wallet and inventory.
type Player struct {
	X, Y int // Position in the current dimension

	Health, MaxHealth int
	Energy, MaxEnergy int
	Coins             int
	Score             int
	HasKey            bool

	Inventory *Inventory
}

// NewPlayer creates a player at the origin with full health and energy.
func NewPlayer(health, coins, capacity int) *Player {
	return &Player{
		Health:    health,
		MaxHealth: health,
		Energy:    DefaultMaxEnergy,
		MaxEnergy: DefaultMaxEnergy,
		Coins:     coins,
		Inventory: NewInventory(capacity),
	}
}

// Move updates the player position by the given delta.
func (p *Player) Move(dx, dy int) {
	p.X += dx
	p.Y += dy
}

// SetPosition places the player at (x, y).
func (p *Player) SetPosition(x, y int) {
	p.X = x
	p.Y = y
}

// Position returns the current x, y coordinates.
func (p *Player) Position() (int, int) {
	return p.X, p.Y
}

// =============================================================================
// effect.Actor implementation
// =============================================================================

// GetHealth returns current health.
func (p *Player) GetHealth() int { return p.Health }

// GetMaxHealth returns maximum health.
func (p *Player) GetMaxHealth() int { return p.MaxHealth }

// IsAlive returns true if the player has health remaining.
func (p *Player) IsAlive() bool { return p.Health > 0 }

// TakeDamage reduces health, never below zero, and returns actual damage taken.
func (p *Player) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > p.Health {
		actual = p.Health
	}
	p.Health -= actual
	return actual
}

// Heal restores health and returns actual amount healed.
func (p *Player) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if p.Health+actual > p.MaxHealth {
		actual = p.MaxHealth - p.Health
	}
	p.Health += actual
	return actual
}

// RestoreEnergy restores energy and returns actual amount restored.
func (p *Player) RestoreEnergy(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if p.Energy+actual > p.MaxEnergy {
		actual = p.MaxEnergy - p.Energy
	}
	p.Energy += actual
	return actual
}

// AddCoins adds to the coin purse.
func (p *Player) AddCoins(amount int) { p.Coins += amount }

// AddScore adds to the score.
func (p *Player) AddScore(amount int) { p.Score += amount }

// GrantKey gives the player the key permanently.
func (p *Player) GrantKey() { p.HasKey = true }

// AddItem stores items in the inventory; see Inventory.Add.
func (p *Player) AddItem(t item.Type, quantity int) bool {
	return p.Inventory.Add(t, quantity)
}

// HasTool reports whether the tool is in the hotbar.
func (p *Player) HasTool(t item.Type) bool {
	return p.Inventory.HotbarHas(t)
}

// Ensure Player implements effect.Actor
var _ effect.Actor = (*Player)(nil)
