package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jwebster45206/tower-client/pkg/layout"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MenuItem is one entry of the navigation drawer.
type MenuItem struct {
	ID   layout.PanelID
	Text string
	Icon string
}

// MenuClickMsg is sent when a drawer entry is chosen.
type MenuClickMsg struct {
	Item MenuItem
}

var menuIcons = map[layout.PanelID]string{
	layout.PanelCharacter: "☺",
	layout.PanelInventory: "▣",
	layout.PanelTown:      "⌂",
	layout.PanelMap:       "◎",
	layout.PanelQuests:    "✦",
	layout.PanelSettings:  "≡",
}

// MenuItems returns the drawer entries in display order.
func MenuItems() []MenuItem {
	title := cases.Title(language.English)
	items := make([]MenuItem, 0, len(menuIcons))
	for _, id := range layout.Panels() {
		items = append(items, MenuItem{ID: id, Text: title.String(string(id)), Icon: menuIcons[id]})
	}
	return items
}

// NavigationDrawer renders the side menu. It only reflects the shared layout
// state and reports selections upward as MenuClickMsg.
type NavigationDrawer struct {
	layout   *layout.State
	keys     KeyMap
	items    []MenuItem
	cursor   int
	hovering bool
}

func NewNavigationDrawer(ls *layout.State, keys KeyMap) (NavigationDrawer, error) {
	if ls == nil {
		return NavigationDrawer{}, layout.ErrNoLayout
	}
	return NavigationDrawer{
		layout: ls,
		keys:   keys,
		items:  MenuItems(),
	}, nil
}

func (n NavigationDrawer) Items() []MenuItem { return n.items }
func (n NavigationDrawer) Cursor() int       { return n.cursor }

// Visible reports whether the drawer occupies screen space.
func (n NavigationDrawer) Visible() bool {
	if n.layout.IsMobileView() {
		return n.layout.Drawer().MobileOpen
	}
	return true
}

// Width is the number of columns the drawer takes, zero when hidden.
func (n NavigationDrawer) Width() int {
	if !n.Visible() {
		return 0
	}
	d := n.layout.Drawer()
	if n.layout.IsMobileView() {
		return d.Config().ExpandedWidth
	}
	return d.CurrentWidth()
}

func (n NavigationDrawer) showLabels() bool {
	return n.layout.IsMobileView() || n.layout.Drawer().IsExpanded()
}

func (n NavigationDrawer) click(i int) tea.Cmd {
	if i < 0 || i >= len(n.items) {
		return nil
	}
	item := n.items[i]
	return func() tea.Msg { return MenuClickMsg{Item: item} }
}

// Focus moves the keyboard cursor onto the entry for id.
func (n NavigationDrawer) Focus(id layout.PanelID) NavigationDrawer {
	for i, item := range n.items {
		if item.ID == id {
			n.cursor = i
		}
	}
	return n
}

// HandleKey processes keys while the menu has focus.
func (n NavigationDrawer) HandleKey(msg tea.KeyMsg) (NavigationDrawer, tea.Cmd) {
	switch {
	case key.Matches(msg, n.keys.Up):
		if n.cursor > 0 {
			n.cursor--
		}
	case key.Matches(msg, n.keys.Down):
		if n.cursor < len(n.items)-1 {
			n.cursor++
		}
	case key.Matches(msg, n.keys.Select):
		return n, n.click(n.cursor)
	case key.Matches(msg, n.keys.Pin):
		if !n.layout.IsMobileView() {
			n.layout.Drawer().TogglePin()
		}
	}
	return n, nil
}

// Row layout inside the drawer, relative to its top: the toolbar, then one
// row per item; the pin control sits on the last row.
const drawerItemsTop = 1

// HandleMouse reacts to pointer events. top is the screen row where the
// drawer starts and height its row count. It reports whether the event was
// inside the drawer.
func (n NavigationDrawer) HandleMouse(msg tea.MouseMsg, top, height int) (NavigationDrawer, tea.Cmd, bool) {
	inside := n.Visible() && msg.X < n.Width() && msg.Y >= top && msg.Y < top+height

	if !n.layout.IsMobileView() {
		if inside && !n.hovering {
			n.hovering = true
			n.layout.Drawer().Expand(true)
		} else if !inside && n.hovering {
			n.hovering = false
			n.layout.Drawer().Expand(false)
		}
	}

	if !inside {
		return n, nil, false
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return n, nil, true
	}

	row := msg.Y - top
	switch {
	case row == 0 && n.layout.IsMobileView():
		n.layout.Drawer().Toggle()
		n.layout.CloseMenu()
	case row >= drawerItemsTop && row < drawerItemsTop+len(n.items):
		n.cursor = row - drawerItemsTop
		return n, n.click(n.cursor), true
	case row == height-1 && !n.layout.IsMobileView():
		n.layout.Drawer().TogglePin()
	}
	return n, nil, true
}

// View renders the drawer with the entry for selected highlighted.
func (n NavigationDrawer) View(selected layout.PanelID, height int) string {
	if !n.Visible() || height <= 0 {
		return ""
	}
	width := n.Width()
	inner := width - 1 // right border
	labels := n.showLabels()
	mobile := n.layout.IsMobileView()

	lines := make([]string, 0, height)

	toolbar := ""
	if mobile {
		toolbar = lipgloss.PlaceHorizontal(inner, lipgloss.Right, "[x]")
	}
	lines = append(lines, toolbar)

	for i, item := range n.items {
		text := " " + item.Icon
		if labels {
			text += "  " + item.Text
		}
		style := menuItemStyle
		if item.ID == selected {
			style = menuSelectedStyle
		}
		if i == n.cursor && n.layout.IsMenuOpen() {
			style = style.Inherit(menuCursorStyle)
		}
		lines = append(lines, style.Width(inner).MaxWidth(inner).Render(text))
	}

	for len(lines) < height-1 {
		lines = append(lines, "")
	}
	if !mobile && len(lines) < height {
		lines = append(lines, n.pinControl())
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	return drawerStyle.Width(inner).Height(height).Render(strings.Join(lines, "\n"))
}

func (n NavigationDrawer) pinControl() string {
	d := n.layout.Drawer()
	switch {
	case d.Pinned && n.showLabels():
		return pinnedStyle.Render(" ● pinned")
	case d.Pinned:
		return pinnedStyle.Render(" ●")
	case n.showLabels():
		return promptStyle.Render(" ○ pin")
	default:
		return promptStyle.Render(" ○")
	}
}
