package town

import "github.com/jwebster45206/tower-client/pkg/world"

// DialogKind identifies which facility dialog the state refers to.
type DialogKind int

const (
	DialogNone DialogKind = iota
	DialogFloors
	DialogShop
)

func (k DialogKind) String() string {
	switch k {
	case DialogFloors:
		return "floors"
	case DialogShop:
		return "shop"
	default:
		return "none"
	}
}

// DialogState controls the single modal dialog of the town panel.
// TargetFloor is only ever set together with Kind == DialogFloors.
type DialogState struct {
	Kind        DialogKind
	Open        bool
	TargetFloor *world.Floor
}

// FloorSelectOpen reports whether the full floor list dialog is shown.
func (d DialogState) FloorSelectOpen() bool {
	return d.Kind == DialogFloors && d.Open && d.TargetFloor == nil
}

// ConfirmOpen reports whether the floor change confirmation is shown.
func (d DialogState) ConfirmOpen() bool {
	return d.Kind == DialogFloors && d.Open && d.TargetFloor != nil
}

func (d DialogState) ShopOpen() bool {
	return d.Kind == DialogShop && d.Open
}

// AnyOpen reports whether some dialog is on screen.
func (d DialogState) AnyOpen() bool {
	return d.FloorSelectOpen() || d.ConfirmOpen() || d.ShopOpen()
}
