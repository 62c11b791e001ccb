package town

import (
	"errors"

	"github.com/jwebster45206/tower-client/pkg/world"
)

var ErrNoMap = errors.New("town panel requires a map")

// MapContext is the part of the world map the town panel reads and drives.
type MapContext interface {
	CurrentFloor() world.Floor
	CurrentArea() world.Area
	ChangeFloor(id world.FloorID) error
}

// Panel holds the interaction state of the town facility grid: which card is
// expanded and which dialog is open.
type Panel struct {
	world      MapContext
	facilities []Facility
	expandedID string
	dialog     DialogState
}

func NewPanel(m MapContext) (*Panel, error) {
	if m == nil {
		return nil, ErrNoMap
	}
	return &Panel{
		world:      m,
		facilities: Facilities(),
	}, nil
}

// Visible reports whether the panel renders at all. Outside towns it is empty.
func (p *Panel) Visible() bool {
	return p.world.CurrentArea().Type == world.AreaTown
}

func (p *Panel) Facilities() []Facility { return p.facilities }
func (p *Panel) Dialog() DialogState    { return p.dialog }
func (p *Panel) CurrentFloor() world.Floor {
	return p.world.CurrentFloor()
}

// Expanded returns the id of the expanded card, or "" when none is.
func (p *Panel) Expanded() string { return p.expandedID }

// Facility looks up a facility by id.
func (p *Panel) Facility(id string) (Facility, bool) {
	for _, f := range p.facilities {
		if f.ID == id {
			return f, true
		}
	}
	return Facility{}, false
}

// Hover expands the card under the pointer, collapsing any other.
func (p *Panel) Hover(id string) {
	p.expandedID = id
}

// Leave collapses the expanded card when the pointer leaves it.
func (p *Panel) Leave() {
	p.expandedID = ""
}

// ToggleExpand handles a click on a card body.
func (p *Panel) ToggleExpand(id string) {
	if p.expandedID == id {
		p.expandedID = ""
		return
	}
	p.expandedID = id
}

// ClickFacility handles a click on a facility button. Disabled facilities
// ignore clicks.
func (p *Panel) ClickFacility(f Facility) {
	if f.Disabled {
		return
	}

	switch f.Action {
	case ActionOpenFloorDialog:
		p.dialog = DialogState{Kind: DialogFloors, Open: true}
	case ActionOpenShopDialog:
		p.dialog = DialogState{Kind: DialogShop, Open: true}
	case ActionInert:
	}
}

// SelectFloor starts the floor change confirmation for id. An id missing
// from the registry leaves TargetFloor nil, which shows the floor list again.
func (p *Panel) SelectFloor(id world.FloorID) {
	p.dialog.Kind = DialogFloors
	p.dialog.Open = true
	p.dialog.TargetFloor = nil
	if f, ok := world.FindFloor(id); ok {
		p.dialog.TargetFloor = &f
	}
}

// ConfirmFloorChange changes to the target floor and closes the dialog. The
// dialog is closed even when the map rejects the change; that error is
// returned. Kind is left as it was.
func (p *Panel) ConfirmFloorChange() error {
	var err error
	if p.dialog.TargetFloor != nil {
		err = p.world.ChangeFloor(p.dialog.TargetFloor.ID)
	}
	p.dialog.Open = false
	p.dialog.TargetFloor = nil
	return err
}

// CancelFloorChange closes the confirmation without changing floors.
func (p *Panel) CancelFloorChange() {
	p.dialog.Open = false
	p.dialog.TargetFloor = nil
}

// CloseDialog dismisses whichever dialog is open.
func (p *Panel) CloseDialog() {
	p.dialog = DialogState{}
}
