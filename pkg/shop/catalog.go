package shop

import "github.com/jwebster45206/tower-client/pkg/world"

// Item is one line of a shop catalog.
type Item struct {
	Name        string
	Price       int
	Description string
}

var common = []Item{
	{Name: "Healing Potion", Price: 50, Description: "Restores 2d4+2 HP."},
	{Name: "Rations (5 days)", Price: 25, Description: "Dry bread, cheese and jerky."},
	{Name: "Torch", Price: 1, Description: "Burns for an hour."},
	{Name: "Rope, 50 ft", Price: 10, Description: "Hempen and reliable."},
}

var byFloor = map[world.FloorID][]Item{
	1: {
		{Name: "Shortsword", Price: 100, Description: "A plain, well-balanced blade."},
		{Name: "Leather Armor", Price: 100, Description: "AC 11 + Dex."},
	},
	2: {
		{Name: "Fishing Spear", Price: 80, Description: "Reaches over the gunwale."},
		{Name: "Oilskin Cloak", Price: 60, Description: "Keeps the marsh off your back."},
	},
	3: {
		{Name: "Fireproof Boots", Price: 400, Description: "Needed for the Molten Depths."},
		{Name: "Steel Longsword", Price: 250, Description: "Forged in Ember Hold."},
		{Name: "Chain Mail", Price: 750, Description: "AC 16, heavy."},
	},
}

// Catalog returns what the shop on floor id sells: common goods first.
func Catalog(id world.FloorID) []Item {
	items := make([]Item, 0, len(common)+len(byFloor[id]))
	items = append(items, common...)
	return append(items, byFloor[id]...)
}
