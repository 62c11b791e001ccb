package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jwebster45206/tower-client/pkg/shop"
	"github.com/jwebster45206/tower-client/pkg/town"
	"github.com/jwebster45206/tower-client/pkg/world"
	"github.com/muesli/reflow/wordwrap"
)

const (
	shopWidth  = 56
	shopHeight = 12
)

// cardRect is where a facility card was drawn, relative to the grid origin.
type cardRect struct {
	id   string
	x, y int
	w, h int

	// Rows of the quick floor switch, when the card shows one.
	quickTop   int
	quickCount int
}

func (r cardRect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// buttonRow is the row of the facility button inside the card.
func (r cardRect) buttonRow() int { return r.y + 1 }

// quickFloor returns the index of the quick-switch line at row y.
func (r cardRect) quickFloor(y int) (int, bool) {
	i := y - r.quickTop
	if r.quickCount == 0 || i < 0 || i >= r.quickCount {
		return 0, false
	}
	return i, true
}

// TownView draws the town facility grid and its dialogs and turns input
// into town.Panel transitions.
type TownView struct {
	panel *town.Panel
	keys  KeyMap

	width  int
	height int

	cursor      int
	floorCursor int
	mouseOver   string
	shop        viewport.Model
}

func NewTownView(p *town.Panel, keys KeyMap) TownView {
	vp := viewport.New(shopWidth, shopHeight)
	vp.MouseWheelEnabled = true
	return TownView{
		panel: p,
		keys:  keys,
		shop:  vp,
	}
}

func (v TownView) Panel() *town.Panel { return v.panel }

// SetSize sets the space available to the grid.
func (v TownView) SetSize(width, height int) TownView {
	v.width = width
	v.height = height
	return v
}

// gridColumns mirrors the 1/2/3/4 column breakpoints of the facility grid.
func gridColumns(width int) int {
	switch {
	case width < 50:
		return 1
	case width < 76:
		return 2
	case width < 100:
		return 3
	default:
		return 4
	}
}

func (v TownView) columns() int { return gridColumns(v.width) }

func statusCmd(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	return func() tea.Msg { return statusMsg{err: err} }
}

// HandleKey routes a key to the open dialog, or to the grid when none is.
func (v TownView) HandleKey(msg tea.KeyMsg) (TownView, tea.Cmd) {
	if !v.panel.Visible() {
		return v, nil
	}

	d := v.panel.Dialog()
	switch {
	case d.ConfirmOpen():
		switch {
		case key.Matches(msg, v.keys.Confirm):
			return v, statusCmd(v.panel.ConfirmFloorChange())
		case key.Matches(msg, v.keys.Cancel):
			v.panel.CancelFloorChange()
		}
		return v, nil

	case d.FloorSelectOpen():
		floors := world.Floors()
		switch {
		case key.Matches(msg, v.keys.Up):
			if v.floorCursor > 0 {
				v.floorCursor--
			}
		case key.Matches(msg, v.keys.Down):
			if v.floorCursor < len(floors)-1 {
				v.floorCursor++
			}
		case key.Matches(msg, v.keys.Select):
			v.panel.SelectFloor(floors[v.floorCursor].ID)
		case key.Matches(msg, v.keys.Back):
			v.panel.CloseDialog()
		}
		return v, nil

	case d.ShopOpen():
		if key.Matches(msg, v.keys.Back) {
			v.panel.CloseDialog()
			return v, nil
		}
		var cmd tea.Cmd
		v.shop, cmd = v.shop.Update(msg)
		return v, cmd
	}

	facilities := v.panel.Facilities()
	cols := v.columns()
	switch {
	case key.Matches(msg, v.keys.Left):
		v = v.moveCursor(-1)
	case key.Matches(msg, v.keys.Right):
		v = v.moveCursor(1)
	case key.Matches(msg, v.keys.Up):
		v = v.moveCursor(-cols)
	case key.Matches(msg, v.keys.Down):
		v = v.moveCursor(cols)
	case key.Matches(msg, v.keys.Expand):
		v.panel.ToggleExpand(facilities[v.cursor].ID)
	case key.Matches(msg, v.keys.Select):
		v = v.clickFacility(facilities[v.cursor])
	case key.Matches(msg, v.keys.Back):
		v.mouseOver = ""
		v.panel.Leave()
	case key.Matches(msg, v.keys.QuickOne):
		v.quickSwitch(msg.String())
	}
	return v, nil
}

func (v TownView) moveCursor(delta int) TownView {
	n := len(v.panel.Facilities())
	next := v.cursor + delta
	if next < 0 || next >= n {
		return v
	}
	v.cursor = next
	v.panel.Hover(v.panel.Facilities()[next].ID)
	return v
}

func (v TownView) clickFacility(f town.Facility) TownView {
	v.panel.ClickFacility(f)
	d := v.panel.Dialog()
	if d.AnyOpen() {
		v.mouseOver = ""
	}
	if d.FloorSelectOpen() {
		v.floorCursor = v.currentFloorIndex()
	}
	if d.ShopOpen() {
		v.shop.SetContent(renderCatalog(shop.Catalog(v.panel.CurrentFloor().ID), shopWidth))
		v.shop.GotoTop()
	}
	return v
}

// quickSwitch handles the number keys of the quick floor switch, which is
// only shown inside the expanded floors card.
func (v TownView) quickSwitch(k string) {
	f, ok := v.panel.Facility(v.panel.Expanded())
	if !ok || f.Extra != town.ExtraQuickFloorSwitch || f.Disabled {
		return
	}
	var n int
	if _, err := fmt.Sscanf(k, "%d", &n); err != nil {
		return
	}
	floors := world.Floors()
	if n < 1 || n > len(floors) {
		return
	}
	v.panel.SelectFloor(floors[n-1].ID)
}

func (v TownView) currentFloorIndex() int {
	cur := v.panel.CurrentFloor().ID
	for i, f := range world.Floors() {
		if f.ID == cur {
			return i
		}
	}
	return 0
}

// HandleMouse processes a pointer event given in grid coordinates.
func (v TownView) HandleMouse(msg tea.MouseMsg, x, y int) (TownView, tea.Cmd) {
	if !v.panel.Visible() {
		return v, nil
	}
	if v.panel.Dialog().ShopOpen() {
		var cmd tea.Cmd
		v.shop, cmd = v.shop.Update(msg)
		return v, cmd
	}
	if v.panel.Dialog().AnyOpen() {
		return v, nil
	}

	_, rects := v.renderGrid()
	var hit *cardRect
	for i := range rects {
		if rects[i].contains(x, y) {
			hit = &rects[i]
			break
		}
	}

	switch {
	case hit != nil && hit.id != v.mouseOver:
		v.mouseOver = hit.id
		v.panel.Hover(hit.id)
	case hit == nil && v.mouseOver != "":
		v.mouseOver = ""
		v.panel.Leave()
	}

	if hit == nil || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return v, nil
	}

	f, _ := v.panel.Facility(hit.id)
	if y == hit.buttonRow() {
		v = v.clickFacility(f)
	} else if i, ok := hit.quickFloor(y); ok {
		v.panel.SelectFloor(world.Floors()[i].ID)
		v.mouseOver = ""
	}
	v.panel.ToggleExpand(hit.id)
	return v, nil
}

// View renders the facility grid, or nothing outside a town.
func (v TownView) View() string {
	if !v.panel.Visible() {
		return ""
	}
	grid, _ := v.renderGrid()
	return grid
}

func (v TownView) renderGrid() (string, []cardRect) {
	facilities := v.panel.Facilities()
	cols := v.columns()
	width := max(v.width, 20)
	cardW := (width - (cols - 1)) / cols

	var (
		rows  []string
		rects []cardRect
		y     int
	)
	for start := 0; start < len(facilities); start += cols {
		end := min(start+cols, len(facilities))
		cells := make([]string, 0, 2*cols)
		rowH := 0
		for i, f := range facilities[start:end] {
			card := v.renderCard(f, cardW)
			h := lipgloss.Height(card)
			rowH = max(rowH, h)
			r := cardRect{id: f.ID, x: i * (cardW + 1), y: y, w: cardW, h: h}
			if v.showsQuickSwitch(f) {
				// Below the top border and the button line.
				r.quickTop = y + 2
				r.quickCount = len(world.Floors())
			}
			rects = append(rects, r)
			if i > 0 {
				cells = append(cells, " ")
			}
			cells = append(cells, card)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		y += rowH
	}
	return strings.Join(rows, "\n"), rects
}

func (v TownView) renderCard(f town.Facility, w int) string {
	expanded := v.panel.Expanded() == f.ID
	inner := max(w-4, 4) // border + padding

	style := cardStyle
	switch {
	case f.Disabled:
		style = cardDisabledStyle
	case expanded:
		style = cardExpandedStyle
	}

	button := f.Icon + " " + f.Label
	if !f.Disabled {
		button = facilityButtonStyle.Render(button)
	}
	lines := []string{button}

	if expanded {
		if f.Disabled && f.Tooltip != "" {
			lines = append(lines, tooltipStyle.Render(wordwrap.String(f.Tooltip, inner)))
		}
		if v.showsQuickSwitch(f) {
			lines = append(lines, v.renderQuickFloorSwitch(inner))
		}
		lines = append(lines,
			separatorStyle.Render(strings.Repeat("─", inner)),
			wordwrap.String(f.Description, inner),
		)
	}

	return style.Width(w - 2).Render(strings.Join(lines, "\n"))
}

func (v TownView) showsQuickSwitch(f town.Facility) bool {
	return v.panel.Expanded() == f.ID && f.Extra == town.ExtraQuickFloorSwitch && !f.Disabled
}

func (v TownView) renderQuickFloorSwitch(width int) string {
	cur := v.panel.CurrentFloor().ID
	var b strings.Builder
	for i, f := range world.Floors() {
		marker := " "
		if f.ID == cur {
			marker = "•"
		}
		line := fmt.Sprintf("%s%d %s", marker, i+1, f.Name)
		b.WriteString(lipgloss.NewStyle().MaxWidth(width).Render(line))
		if i < len(world.Floors())-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// DialogView renders the open dialog, if any.
func (v TownView) DialogView() (string, bool) {
	if !v.panel.Visible() {
		return "", false
	}
	d := v.panel.Dialog()
	switch {
	case d.ConfirmOpen():
		return v.renderConfirm(d.TargetFloor), true
	case d.FloorSelectOpen():
		return v.renderFloorSelect(), true
	case d.ShopOpen():
		return v.renderShop(), true
	}
	return "", false
}

func (v TownView) renderFloorSelect() string {
	cur := v.panel.CurrentFloor().ID
	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Floor Teleport"))
	content.WriteString("\n\n")
	for i, f := range world.Floors() {
		label := f.Name
		if f.ID == cur {
			label += " (here)"
		}
		if i == v.floorCursor {
			content.WriteString(modalSelectedItemStyle.Render("▶ " + label))
		} else {
			content.WriteString(modalItemStyle.Render("  " + label))
		}
		content.WriteString("\n")
	}
	content.WriteString("\n")
	content.WriteString(promptStyle.Render("Use ↑/↓ to navigate, Enter to select, Esc to close"))
	return modalStyle.Width(60).Render(content.String())
}

func (v TownView) renderConfirm(target *world.Floor) string {
	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Confirm Teleport"))
	content.WriteString("\n\n")
	content.WriteString(fmt.Sprintf("Teleport to %s?", target.Name))
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to confirm, N to cancel"))
	return modalStyle.Width(50).Render(content.String())
}

func (v TownView) renderShop() string {
	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Shop"))
	content.WriteString("\n\n")
	content.WriteString(v.shop.View())
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Use ↑/↓ to scroll, Esc to close"))
	return modalStyle.Width(shopWidth + 4).Render(content.String())
}

func renderCatalog(items []shop.Item, width int) string {
	var b strings.Builder
	for _, it := range items {
		price := fmt.Sprintf("%d gp", it.Price)
		name := lipgloss.NewStyle().Width(width - len(price)).Render(it.Name)
		b.WriteString(name + price + "\n")
		b.WriteString(promptStyle.Render(wordwrap.String("  "+it.Description, width)) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
