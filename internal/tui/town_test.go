package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jwebster45206/tower-client/pkg/town"
	"github.com/jwebster45206/tower-client/pkg/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTownView(t *testing.T, width int) (TownView, *world.Map) {
	t.Helper()
	m, err := world.NewMap(1, "")
	require.NoError(t, err)
	p, err := town.NewPanel(m)
	require.NoError(t, err)
	return NewTownView(p, DefaultKeyMap()).SetSize(width, 30), m
}

func TestGridColumns(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{30, 1},
		{49, 1},
		{50, 2},
		{75, 2},
		{76, 3},
		{99, 3},
		{100, 4},
		{200, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, gridColumns(tt.width), "width %d", tt.width)
	}
}

func TestTownView_CardsDoNotOverlap(t *testing.T) {
	v, _ := newTestTownView(t, 80)
	v.panel.Hover("floors")

	_, rects := v.renderGrid()
	require.Len(t, rects, len(v.panel.Facilities()))
	for i, a := range rects {
		for _, b := range rects[i+1:] {
			overlap := a.x < b.x+b.w && b.x < a.x+a.w && a.y < b.y+b.h && b.y < a.y+a.h
			assert.False(t, overlap, "%s overlaps %s", a.id, b.id)
		}
	}
}

func TestTownView_KeyboardCursorHovers(t *testing.T) {
	v, _ := newTestTownView(t, 120)

	v, _ = v.HandleKey(keyPress("right"))
	assert.Equal(t, "shop", v.panel.Expanded())

	v, _ = v.HandleKey(keyPress("down"))
	assert.Equal(t, "arena", v.panel.Expanded(), "down moves one row of four")

	v, _ = v.HandleKey(keyPress("down"))
	assert.Equal(t, "arena", v.panel.Expanded(), "cursor stops at the last row")

	v, _ = v.HandleKey(keyPress("esc"))
	assert.Equal(t, "", v.panel.Expanded())

	v, _ = v.HandleKey(keyPress(" "))
	assert.Equal(t, "arena", v.panel.Expanded())
}

func TestTownView_QuickFloorSwitch(t *testing.T) {
	v, _ := newTestTownView(t, 120)

	v, _ = v.HandleKey(keyPress("3"))
	assert.False(t, v.panel.Dialog().AnyOpen(), "quick switch needs the floors card expanded")

	v, _ = v.HandleKey(keyPress(" "))
	require.Equal(t, "floors", v.panel.Expanded())
	assert.Contains(t, v.View(), "Floor 3 - Ember Hold")

	v, _ = v.HandleKey(keyPress("3"))
	d := v.panel.Dialog()
	require.True(t, d.ConfirmOpen())
	assert.Equal(t, world.FloorID(3), d.TargetFloor.ID)

	dialog, ok := v.DialogView()
	require.True(t, ok)
	assert.Contains(t, dialog, "Teleport to Floor 3 - Ember Hold?")
}

func TestTownView_ConfirmChangesFloor(t *testing.T) {
	v, m := newTestTownView(t, 120)
	v.panel.SelectFloor(2)

	v, _ = v.HandleKey(keyPress("y"))
	assert.Equal(t, world.FloorID(2), m.CurrentFloor().ID)
	assert.False(t, v.panel.Dialog().AnyOpen())

	_, ok := v.DialogView()
	assert.False(t, ok)
}

func TestTownView_ShopDialog(t *testing.T) {
	v, _ := newTestTownView(t, 120)

	v, _ = v.HandleKey(keyPress("right"))
	v, _ = v.HandleKey(keyPress("enter"))
	require.True(t, v.panel.Dialog().ShopOpen())

	dialog, ok := v.DialogView()
	require.True(t, ok)
	assert.Contains(t, dialog, "Healing Potion")

	v, _ = v.HandleKey(keyPress("esc"))
	assert.False(t, v.panel.Dialog().AnyOpen())
}

func TestTownView_DisabledCardShowsTooltip(t *testing.T) {
	v, _ := newTestTownView(t, 120)
	f, ok := v.panel.Facility("inn")
	require.True(t, ok)
	require.True(t, f.Disabled)

	v.panel.Hover("inn")
	assert.Contains(t, v.View(), f.Tooltip[:10])

	v.panel.ClickFacility(f)
	assert.False(t, v.panel.Dialog().AnyOpen())
}

func TestTownView_MouseHoverAndLeave(t *testing.T) {
	v, _ := newTestTownView(t, 120)
	_, rects := v.renderGrid()
	shop := rects[1]

	v, _ = v.HandleMouse(tea.MouseMsg{Action: tea.MouseActionMotion}, shop.x+1, shop.y+1)
	assert.Equal(t, "shop", v.panel.Expanded())

	v, _ = v.HandleMouse(tea.MouseMsg{Action: tea.MouseActionMotion}, -1, -1)
	assert.Equal(t, "", v.panel.Expanded())
}

func TestTownView_HiddenOutsideTown(t *testing.T) {
	v, m := newTestTownView(t, 120)
	require.NoError(t, m.EnterArea("f1-cellar"))

	assert.Empty(t, v.View())
	_, ok := v.DialogView()
	assert.False(t, ok)

	v, cmd := v.HandleKey(keyPress("enter"))
	assert.Nil(t, cmd)
	assert.False(t, v.panel.Dialog().AnyOpen())
}

func TestTownView_ClickQuickSwitchLine(t *testing.T) {
	v, _ := newTestTownView(t, 120)
	_, rects := v.renderGrid()
	floors := rects[0]

	v, _ = v.HandleMouse(tea.MouseMsg{Action: tea.MouseActionMotion}, floors.x+3, floors.y+1)
	require.Equal(t, "floors", v.panel.Expanded())

	_, rects = v.renderGrid()
	floors = rects[0]
	require.Equal(t, len(world.Floors()), floors.quickCount)

	// Third line of the list is floor 3.
	press := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	v, _ = v.HandleMouse(press, floors.x+3, floors.quickTop+2)

	d := v.panel.Dialog()
	require.True(t, d.ConfirmOpen())
	assert.Equal(t, world.FloorID(3), d.TargetFloor.ID)
	assert.Equal(t, "", v.panel.Expanded(), "the click also reaches the card")
}

func TestTownView_CollapsedCardHasNoQuickSwitchRows(t *testing.T) {
	v, _ := newTestTownView(t, 120)
	_, rects := v.renderGrid()

	_, ok := rects[0].quickFloor(rects[0].y + 2)
	assert.False(t, ok)
}

func TestTownView_HoverAgainAfterKeyboardLeave(t *testing.T) {
	v, _ := newTestTownView(t, 120)
	_, rects := v.renderGrid()
	shop := rects[1]
	motion := tea.MouseMsg{Action: tea.MouseActionMotion}

	v, _ = v.HandleMouse(motion, shop.x+1, shop.y+1)
	require.Equal(t, "shop", v.panel.Expanded())

	v, _ = v.HandleKey(keyPress("esc"))
	require.Equal(t, "", v.panel.Expanded())

	v, _ = v.HandleMouse(motion, shop.x+2, shop.y+1)
	assert.Equal(t, "shop", v.panel.Expanded())
}

func TestTownView_HoverAgainAfterDialogCloses(t *testing.T) {
	v, _ := newTestTownView(t, 120)
	_, rects := v.renderGrid()
	shop := rects[1]
	motion := tea.MouseMsg{Action: tea.MouseActionMotion}
	press := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}

	v, _ = v.HandleMouse(motion, shop.x+1, shop.buttonRow())
	v, _ = v.HandleMouse(press, shop.x+1, shop.buttonRow())
	require.True(t, v.panel.Dialog().ShopOpen())

	v, _ = v.HandleKey(keyPress("esc"))
	require.False(t, v.panel.Dialog().AnyOpen())

	v, _ = v.HandleMouse(motion, shop.x+1, shop.y+1)
	assert.Equal(t, "shop", v.panel.Expanded())
}
