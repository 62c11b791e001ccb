package world

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrUnknownFloor = errors.New("unknown floor")
	ErrUnknownArea  = errors.New("unknown area")
)

// FloorID identifies a floor of the tower.
type FloorID int

// AreaType classifies an area; facility panels only appear in towns.
type AreaType string

const (
	AreaTown    AreaType = "town"
	AreaField   AreaType = "field"
	AreaDungeon AreaType = "dungeon"
)

// Area is a place on a floor the player can stand in.
type Area struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        AreaType `json:"type"`
	Description string   `json:"description,omitempty"`
}

// Floor is an entry of the static floor registry. The first area of every
// floor is its town, where the player arrives after a floor change.
type Floor struct {
	ID    FloorID `json:"id"`
	Name  string  `json:"name"`
	Areas []Area  `json:"areas"`
}

var floors = []Floor{
	{
		ID:   1,
		Name: "Floor 1 - Starting Town",
		Areas: []Area{
			{ID: "f1-town", Name: "Starting Town", Type: AreaTown, Description: "A quiet town at the foot of the tower."},
			{ID: "f1-meadow", Name: "Windy Meadow", Type: AreaField, Description: "Rolling grass and slow slimes."},
			{ID: "f1-cellar", Name: "Old Cellar", Type: AreaDungeon, Description: "Damp stairs lead under the mill."},
		},
	},
	{
		ID:   2,
		Name: "Floor 2 - Riverside",
		Areas: []Area{
			{ID: "f2-town", Name: "Riverside", Type: AreaTown, Description: "A fishing village on the tower's inner river."},
			{ID: "f2-marsh", Name: "Reed Marsh", Type: AreaField, Description: "Mud, frogs and the occasional bandit."},
		},
	},
	{
		ID:   3,
		Name: "Floor 3 - Ember Hold",
		Areas: []Area{
			{ID: "f3-town", Name: "Ember Hold", Type: AreaTown, Description: "A forge town built into cooling lava."},
			{ID: "f3-caldera", Name: "Caldera", Type: AreaField, Description: "Ash plains under a red sky."},
			{ID: "f3-depths", Name: "Molten Depths", Type: AreaDungeon, Description: "Only fire-proof boots survive the walk."},
		},
	},
}

// Floors returns the floor registry in ascending order.
func Floors() []Floor {
	return slices.Clone(floors)
}

// FindFloor looks a floor up by id.
func FindFloor(id FloorID) (Floor, bool) {
	for _, f := range floors {
		if f.ID == id {
			return f, true
		}
	}
	return Floor{}, false
}

// Area returns the area with the given id on this floor.
func (f Floor) Area(id string) (Area, error) {
	for _, a := range f.Areas {
		if a.ID == id {
			return a, nil
		}
	}
	return Area{}, fmt.Errorf("%w: %q on floor %d", ErrUnknownArea, id, f.ID)
}

// Town returns the arrival area of the floor.
func (f Floor) Town() Area {
	for _, a := range f.Areas {
		if a.Type == AreaTown {
			return a
		}
	}
	if len(f.Areas) > 0 {
		return f.Areas[0]
	}
	return Area{}
}
