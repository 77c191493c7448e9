// Package item defines the closed set of inventory item types.
package item

// Type identifies a kind of inventory item.
type Type int

const (
	None Type = iota

	// Tools
	Axe
	Pickaxe
	Hoe
	WateringCan
	Sword
	Shovel

	// Resources
	Wood
	Stone
	Iron
	Gold
	Diamond
	MushroomRed
	MushroomBlue
	Flower

	// Consumables
	Apple
	Bread
	HealthPotion
	SpeedPotion

	// Special
	Key
	Treasure
	Crystal

	typeCount
)

var typeIDs = [typeCount]string{
	None:         "none",
	Axe:          "axe",
	Pickaxe:      "pickaxe",
	Hoe:          "hoe",
	WateringCan:  "watering_can",
	Sword:        "sword",
	Shovel:       "shovel",
	Wood:         "wood",
	Stone:        "stone",
	Iron:         "iron",
	Gold:         "gold",
	Diamond:      "diamond",
	MushroomRed:  "mushroom_red",
	MushroomBlue: "mushroom_blue",
	Flower:       "flower",
	Apple:        "apple",
	Bread:        "bread",
	HealthPotion: "health_potion",
	SpeedPotion:  "speed_potion",
	Key:          "key",
	Treasure:     "treasure",
	Crystal:      "crystal",
}

// ID returns the identifier used to look up the item's definition.
func (t Type) ID() string {
	if t < 0 || t >= typeCount {
		return "unknown"
	}
	return typeIDs[t]
}

// String returns the item identifier.
func (t Type) String() string {
	return t.ID()
}

// IsTool reports whether the item is a tool.
func (t Type) IsTool() bool {
	return t >= Axe && t <= Shovel
}

// FromID returns the item type with the given identifier.
func FromID(id string) (Type, bool) {
	for t := Type(0); t < typeCount; t++ {
		if typeIDs[t] == id {
			return t, true
		}
	}
	return None, false
}

// All returns every item type except None.
func All() []Type {
	types := make([]Type, 0, typeCount-1)
	for t := Axe; t < typeCount; t++ {
		types = append(types, t)
	}
	return types
}
