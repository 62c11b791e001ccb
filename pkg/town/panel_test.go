package town

import (
	"errors"
	"testing"

	"github.com/jwebster45206/tower-client/pkg/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockMap records ChangeFloor calls for assertions.
type mockMap struct {
	floor           world.Floor
	area            world.Area
	ChangeFloorFunc func(id world.FloorID) error

	ChangeFloorCalls []world.FloorID
}

func newMockMap(areaType world.AreaType) *mockMap {
	f, _ := world.FindFloor(1)
	return &mockMap{
		floor: f,
		area:  world.Area{ID: "here", Name: "Here", Type: areaType},
	}
}

func (m *mockMap) CurrentFloor() world.Floor { return m.floor }
func (m *mockMap) CurrentArea() world.Area   { return m.area }

func (m *mockMap) ChangeFloor(id world.FloorID) error {
	m.ChangeFloorCalls = append(m.ChangeFloorCalls, id)
	if m.ChangeFloorFunc != nil {
		return m.ChangeFloorFunc(id)
	}
	return nil
}

func newTestPanel(t *testing.T, areaType world.AreaType) (*Panel, *mockMap) {
	t.Helper()
	m := newMockMap(areaType)
	p, err := NewPanel(m)
	require.NoError(t, err)
	return p, m
}

func facility(t *testing.T, p *Panel, id string) Facility {
	t.Helper()
	f, ok := p.Facility(id)
	require.True(t, ok, "facility %q missing", id)
	return f
}

func TestNewPanel_RequiresMap(t *testing.T) {
	_, err := NewPanel(nil)
	assert.ErrorIs(t, err, ErrNoMap)
}

func TestPanel_VisibleOnlyInTown(t *testing.T) {
	tests := []struct {
		area world.AreaType
		want bool
	}{
		{world.AreaTown, true},
		{world.AreaField, false},
		{world.AreaDungeon, false},
		{"", false},
	}
	for _, tt := range tests {
		p, _ := newTestPanel(t, tt.area)
		assert.Equal(t, tt.want, p.Visible(), "area type %q", tt.area)
	}
}

func TestPanel_ExpandIsExclusive(t *testing.T) {
	p, _ := newTestPanel(t, world.AreaTown)

	p.Hover("floors")
	assert.Equal(t, "floors", p.Expanded())

	p.Hover("shop")
	assert.Equal(t, "shop", p.Expanded(), "hovering B collapses A")

	p.ToggleExpand("inn")
	assert.Equal(t, "inn", p.Expanded(), "clicking B collapses A")

	p.ToggleExpand("inn")
	assert.Equal(t, "", p.Expanded(), "clicking the expanded card collapses it")

	p.Hover("mail")
	p.Leave()
	assert.Equal(t, "", p.Expanded())
}

func TestPanel_ClickDisabledFacilityIsNoop(t *testing.T) {
	p, _ := newTestPanel(t, world.AreaTown)

	for _, f := range p.Facilities() {
		if !f.Disabled {
			continue
		}
		before := p.Dialog()
		p.ClickFacility(f)
		assert.Equal(t, before, p.Dialog(), "disabled %q changed dialog state", f.ID)
		assert.NotEmpty(t, f.Tooltip, "disabled %q should explain itself", f.ID)
	}

	// A disabled facility is ignored even if its action would open a dialog.
	f := facility(t, p, "shop")
	f.Disabled = true
	p.ClickFacility(f)
	assert.Equal(t, DialogState{}, p.Dialog())
}

func TestPanel_ClickOpensDialogByAction(t *testing.T) {
	p, _ := newTestPanel(t, world.AreaTown)

	p.ClickFacility(facility(t, p, "floors"))
	assert.Equal(t, DialogState{Kind: DialogFloors, Open: true}, p.Dialog())
	assert.True(t, p.Dialog().FloorSelectOpen())
	assert.False(t, p.Dialog().ConfirmOpen())

	p.ClickFacility(facility(t, p, "shop"))
	assert.Equal(t, DialogState{Kind: DialogShop, Open: true}, p.Dialog())
	assert.True(t, p.Dialog().ShopOpen())

	p.CloseDialog()
	assert.Equal(t, DialogState{}, p.Dialog())

	p.ClickFacility(Facility{ID: "well", Action: ActionInert})
	assert.Equal(t, DialogState{}, p.Dialog(), "inert facility does nothing")
}

func TestPanel_SelectThenConfirm(t *testing.T) {
	p, m := newTestPanel(t, world.AreaTown)

	p.ClickFacility(facility(t, p, "floors"))
	p.SelectFloor(2)

	d := p.Dialog()
	require.NotNil(t, d.TargetFloor)
	assert.Equal(t, world.FloorID(2), d.TargetFloor.ID)
	assert.True(t, d.ConfirmOpen())
	assert.False(t, d.FloorSelectOpen(), "confirmation and selection are exclusive")

	require.NoError(t, p.ConfirmFloorChange())
	assert.Equal(t, []world.FloorID{2}, m.ChangeFloorCalls)

	d = p.Dialog()
	assert.False(t, d.Open)
	assert.Nil(t, d.TargetFloor)
	assert.Equal(t, DialogFloors, d.Kind, "kind is retained after confirmation")
	assert.False(t, d.AnyOpen())
}

func TestPanel_SelectThenCancel(t *testing.T) {
	p, m := newTestPanel(t, world.AreaTown)

	p.SelectFloor(3)
	p.CancelFloorChange()

	assert.Empty(t, m.ChangeFloorCalls)
	d := p.Dialog()
	assert.False(t, d.Open)
	assert.Nil(t, d.TargetFloor)
	assert.Equal(t, DialogFloors, d.Kind)
}

func TestPanel_SelectUnknownFloorShowsList(t *testing.T) {
	p, m := newTestPanel(t, world.AreaTown)

	p.SelectFloor(404)
	d := p.Dialog()
	assert.Nil(t, d.TargetFloor)
	assert.True(t, d.FloorSelectOpen())

	require.NoError(t, p.ConfirmFloorChange())
	assert.Empty(t, m.ChangeFloorCalls, "no target, no floor change")
}

func TestPanel_ConfirmClosesEvenWhenMapFails(t *testing.T) {
	p, m := newTestPanel(t, world.AreaTown)
	boom := errors.New("boom")
	m.ChangeFloorFunc = func(world.FloorID) error { return boom }

	p.SelectFloor(1)
	err := p.ConfirmFloorChange()
	assert.ErrorIs(t, err, boom)
	assert.False(t, p.Dialog().Open)
	assert.Len(t, m.ChangeFloorCalls, 1)
}

func TestPanel_WithRealMap(t *testing.T) {
	m, err := world.NewMap(1, "")
	require.NoError(t, err)
	p, err := NewPanel(m)
	require.NoError(t, err)

	p.SelectFloor(3)
	require.NoError(t, p.ConfirmFloorChange())
	assert.Equal(t, world.FloorID(3), m.CurrentFloor().ID)
	assert.True(t, p.Visible())

	require.NoError(t, m.EnterArea("f3-caldera"))
	assert.False(t, p.Visible())
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "open_floor_dialog", ActionOpenFloorDialog.String())
	assert.Equal(t, "open_shop_dialog", ActionOpenShopDialog.String())
	assert.Equal(t, "inert", ActionInert.String())
	assert.Equal(t, "floors", DialogFloors.String())
	assert.Equal(t, "none", DialogNone.String())
}
