package entity

import (
	"testing"

	"github.com/samdwyer/wildlands/internal/item"
)

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(3, 50, 24)
	if p.Health != 3 || p.MaxHealth != 3 {
		t.Errorf("Expected 3/3 health, got %d/%d", p.Health, p.MaxHealth)
	}
	if p.Energy != DefaultMaxEnergy || p.Coins != 50 {
		t.Errorf("Unexpected starting energy %d or coins %d", p.Energy, p.Coins)
	}
	if x, y := p.Position(); x != 0 || y != 0 {
		t.Errorf("Expected origin, got (%d, %d)", x, y)
	}
	if p.Inventory.Capacity() != 24 {
		t.Errorf("Expected 24 slots, got %d", p.Inventory.Capacity())
	}
}

func TestPlayerTakeDamageClamps(t *testing.T) {
	p := NewPlayer(3, 0, 1)

	if got := p.TakeDamage(2); got != 2 || p.Health != 1 {
		t.Errorf("Expected 2 damage leaving 1, got %d leaving %d", got, p.Health)
	}
	if got := p.TakeDamage(5); got != 1 || p.Health != 0 {
		t.Errorf("Expected clamp at zero, got %d leaving %d", got, p.Health)
	}
	if p.IsAlive() {
		t.Error("Expected player at zero health to be dead")
	}
	if got := p.TakeDamage(-1); got != 0 {
		t.Errorf("Negative damage should be ignored, got %d", got)
	}
}

func TestPlayerHealAndEnergy(t *testing.T) {
	p := NewPlayer(3, 0, 1)
	p.Health = 1
	p.Energy = 90

	if got := p.Heal(5); got != 2 || p.Health != 3 {
		t.Errorf("Expected heal of 2 to max, got %d (health %d)", got, p.Health)
	}
	if got := p.RestoreEnergy(40); got != 10 || p.Energy != DefaultMaxEnergy {
		t.Errorf("Expected energy restore of 10, got %d (energy %d)", got, p.Energy)
	}
}

func TestPlayerWallet(t *testing.T) {
	p := NewPlayer(3, 50, 1)
	p.AddCoins(10)
	p.AddScore(100)
	p.GrantKey()
	if p.Coins != 60 || p.Score != 100 || !p.HasKey {
		t.Errorf("Unexpected wallet: coins=%d score=%d key=%v", p.Coins, p.Score, p.HasKey)
	}
}

func TestPlayerMoveAndTools(t *testing.T) {
	p := NewPlayer(3, 0, 2)
	p.Move(1, -1)
	p.Move(0, -1)
	if p.X != 1 || p.Y != -2 {
		t.Errorf("Expected (1, -2), got (%d, %d)", p.X, p.Y)
	}

	if p.HasTool(item.Axe) {
		t.Error("Expected no axe yet")
	}
	if !p.AddItem(item.Axe, 1) || !p.HasTool(item.Axe) {
		t.Error("Expected axe on the hotbar after adding it")
	}
}
