package world

import "fmt"

// Map tracks where the player currently is. It is mutated only from the UI
// event loop.
type Map struct {
	floor Floor
	area  Area
}

// NewMap places the player on floorID. An empty areaID means the floor's town.
func NewMap(floorID FloorID, areaID string) (*Map, error) {
	f, ok := FindFloor(floorID)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFloor, floorID)
	}

	area := f.Town()
	if areaID != "" {
		a, err := f.Area(areaID)
		if err != nil {
			return nil, err
		}
		area = a
	}

	return &Map{floor: f, area: area}, nil
}

func (m *Map) CurrentFloor() Floor { return m.floor }
func (m *Map) CurrentArea() Area   { return m.area }

// InTown reports whether the current area is a town.
func (m *Map) InTown() bool {
	return m.area.Type == AreaTown
}

// ChangeFloor moves the player to the town of another floor.
func (m *Map) ChangeFloor(id FloorID) error {
	f, ok := FindFloor(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownFloor, id)
	}
	m.floor = f
	m.area = f.Town()
	return nil
}

// EnterArea moves the player to another area of the current floor.
func (m *Map) EnterArea(id string) error {
	a, err := m.floor.Area(id)
	if err != nil {
		return err
	}
	m.area = a
	return nil
}
