package entity

import "github.com/samdwyer/wildlands/internal/item"

// DefaultMaxStack is the stack limit for items without an explicit limit.
const DefaultMaxStack = 99

// HotbarSize is the number of leading inventory slots reachable by number keys.
const HotbarSize = 8

// Stack is one occupied inventory slot.
type Stack struct {
	Item     item.Type
	Quantity int
}

// Inventory is a bounded multiset of item stacks. Slots are kept in
// insertion order and never contain empty stacks.
type Inventory struct {
	capacity int
	limits   map[item.Type]int
	stacks   []Stack
	selected int
}

// NewInventory creates an empty inventory with the given number of slots.
func NewInventory(capacity int) *Inventory {
	if capacity < 0 {
		capacity = 0
	}
	return &Inventory{
		capacity: capacity,
		limits:   make(map[item.Type]int),
		stacks:   make([]Stack, 0, capacity),
	}
}

// SetStackLimit overrides the per-slot limit for one item type.
func (inv *Inventory) SetStackLimit(t item.Type, limit int) {
	if limit > 0 {
		inv.limits[t] = limit
	}
}

func (inv *Inventory) stackLimit(t item.Type) int {
	if limit, ok := inv.limits[t]; ok {
		return limit
	}
	return DefaultMaxStack
}

// Capacity returns the number of slots.
func (inv *Inventory) Capacity() int { return inv.capacity }

// Used returns the number of occupied slots.
func (inv *Inventory) Used() int { return len(inv.stacks) }

// Add stores quantity units of t, topping up existing stacks before opening
// new slots. It is all-or-nothing: when the units do not fit, the inventory
// is left unchanged and Add returns false.
func (inv *Inventory) Add(t item.Type, quantity int) bool {
	if t == item.None || quantity <= 0 {
		return false
	}
	limit := inv.stackLimit(t)

	room := (inv.capacity - len(inv.stacks)) * limit
	for _, s := range inv.stacks {
		if s.Item == t {
			room += limit - s.Quantity
		}
	}
	if room < quantity {
		return false
	}

	for i := range inv.stacks {
		if quantity == 0 {
			break
		}
		if inv.stacks[i].Item != t || inv.stacks[i].Quantity >= limit {
			continue
		}
		n := min(quantity, limit-inv.stacks[i].Quantity)
		inv.stacks[i].Quantity += n
		quantity -= n
	}
	for quantity > 0 {
		n := min(quantity, limit)
		inv.stacks = append(inv.stacks, Stack{Item: t, Quantity: n})
		quantity -= n
	}
	return true
}

// Remove takes quantity units of t, draining the last stacks first. It
// returns false and changes nothing when there are not enough units.
func (inv *Inventory) Remove(t item.Type, quantity int) bool {
	if quantity <= 0 || inv.Count(t) < quantity {
		return false
	}
	for i := len(inv.stacks) - 1; i >= 0 && quantity > 0; i-- {
		if inv.stacks[i].Item != t {
			continue
		}
		n := min(quantity, inv.stacks[i].Quantity)
		inv.stacks[i].Quantity -= n
		quantity -= n
		if inv.stacks[i].Quantity == 0 {
			inv.stacks = append(inv.stacks[:i], inv.stacks[i+1:]...)
		}
	}
	return true
}

// Count returns the total units of t across all stacks.
func (inv *Inventory) Count(t item.Type) int {
	total := 0
	for _, s := range inv.stacks {
		if s.Item == t {
			total += s.Quantity
		}
	}
	return total
}

// Has reports whether at least quantity units of t are held.
func (inv *Inventory) Has(t item.Type, quantity int) bool {
	return inv.Count(t) >= quantity
}

// Stacks returns a copy of the occupied slots in order.
func (inv *Inventory) Stacks() []Stack {
	return append([]Stack(nil), inv.stacks...)
}

// Hotbar returns the stacks in the first HotbarSize slots.
func (inv *Inventory) Hotbar() []Stack {
	n := min(HotbarSize, len(inv.stacks))
	return append([]Stack(nil), inv.stacks[:n]...)
}

// HotbarHas reports whether t sits in one of the hotbar slots.
func (inv *Inventory) HotbarHas(t item.Type) bool {
	for _, s := range inv.Hotbar() {
		if s.Item == t {
			return true
		}
	}
	return false
}

// Select makes slot the selected hotbar slot. Out-of-range slots are ignored.
func (inv *Inventory) Select(slot int) {
	if slot >= 0 && slot < HotbarSize {
		inv.selected = slot
	}
}

// SelectedSlot returns the selected hotbar slot index.
func (inv *Inventory) SelectedSlot() int { return inv.selected }

// Selected returns the stack in the selected slot, if the slot is occupied.
func (inv *Inventory) Selected() (Stack, bool) {
	if inv.selected < len(inv.stacks) {
		return inv.stacks[inv.selected], true
	}
	return Stack{}, false
}
