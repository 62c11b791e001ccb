package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jwebster45206/tower-client/pkg/actor"
	"github.com/jwebster45206/tower-client/pkg/layout"
	"github.com/jwebster45206/tower-client/pkg/world"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var placeholderText = map[layout.PanelID]string{
	layout.PanelInventory: "Your pack is sorted by the quartermaster in town. Nothing to manage here yet.",
	layout.PanelQuests:    "The quest board is still being painted. Check back after the next floor opens.",
	layout.PanelSettings:  "Settings are read from the config file and TOWER_* environment variables.",
}

func renderPanelTitle(id layout.PanelID) string {
	return titleStyle.Render(strings.ToUpper(string(id)))
}

// renderCharacter draws the character sheet. With two columns the ability
// scores and the pack sit side by side; on one column they stack.
func renderCharacter(pc *actor.PC, width, columns int) string {
	if pc == nil {
		return promptStyle.Render("No character loaded.")
	}
	s := pc.Spec
	title := cases.Title(language.English)

	var sheet strings.Builder
	sheet.WriteString(fmt.Sprintf("%s  %s\n", titleStyle.Render(s.Name), promptStyle.Render(s.Pronouns)))
	sheet.WriteString(fmt.Sprintf("Level %d %s %s\n\n", s.Level, s.Race, s.Class))
	sheet.WriteString(fmt.Sprintf("HP %d/%d   AC %d\n\n", pc.Actor.HP(), pc.Actor.MaxHP(), pc.Actor.AC()))
	for _, st := range pc.Stats() {
		sheet.WriteString(fmt.Sprintf("%-14s %2d (%+d)\n", title.String(st.Name), st.Score, st.Modifier))
	}

	var pack strings.Builder
	pack.WriteString(titleStyle.Render("Pack") + "\n")
	if len(s.Inventory) == 0 {
		pack.WriteString(promptStyle.Render("Empty") + "\n")
	}
	for _, item := range s.Inventory {
		pack.WriteString("• " + item + "\n")
	}

	colW := width
	if columns > 1 {
		colW = (width - 2) / 2
	}
	left := lipgloss.NewStyle().Width(colW).Render(strings.TrimRight(sheet.String(), "\n"))
	right := lipgloss.NewStyle().Width(colW).Render(strings.TrimRight(pack.String(), "\n"))

	var body string
	if columns > 1 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, left, "", right)
	}

	if s.Description != "" {
		body += "\n\n" + promptStyle.Render(wordwrap.String(s.Description, width))
	}
	return body
}

func renderPlaceholder(id layout.PanelID, width int) string {
	return promptStyle.Render(wordwrap.String(placeholderText[id], width))
}

// MapView is the map overlay: it lists the areas of the current floor and
// moves the player between them.
type MapView struct {
	world  *world.Map
	keys   KeyMap
	cursor int
}

func NewMapView(m *world.Map, keys KeyMap) MapView {
	return MapView{world: m, keys: keys}
}

// Reset puts the cursor on the current area.
func (v MapView) Reset() MapView {
	v.cursor = 0
	cur := v.world.CurrentArea().ID
	for i, a := range v.world.CurrentFloor().Areas {
		if a.ID == cur {
			v.cursor = i
		}
	}
	return v
}

func (v MapView) Cursor() int { return v.cursor }

// HandleKey moves the cursor and enters areas. closed reports that the
// overlay asked to be dismissed.
func (v MapView) HandleKey(msg tea.KeyMsg) (m MapView, cmd tea.Cmd, closed bool) {
	areas := v.world.CurrentFloor().Areas
	switch {
	case key.Matches(msg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(msg, v.keys.Down):
		if v.cursor < len(areas)-1 {
			v.cursor++
		}
	case key.Matches(msg, v.keys.Select):
		if err := v.world.EnterArea(areas[v.cursor].ID); err != nil {
			return v, statusCmd(err), false
		}
		return v, nil, true
	case key.Matches(msg, v.keys.Back):
		return v, nil, true
	}
	return v, nil, false
}

func (v MapView) View() string {
	floor := v.world.CurrentFloor()
	cur := v.world.CurrentArea().ID

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render(floor.Name))
	content.WriteString("\n\n")
	for i, a := range floor.Areas {
		label := fmt.Sprintf("%s [%s]", a.Name, a.Type)
		if a.ID == cur {
			label += " ◆"
		}
		if i == v.cursor {
			content.WriteString(modalSelectedItemStyle.Render("▶ " + label))
		} else {
			content.WriteString(modalItemStyle.Render("  " + label))
		}
		content.WriteString("\n")
	}
	if a := floor.Areas[v.cursor]; a.Description != "" {
		content.WriteString("\n")
		content.WriteString(promptStyle.Render(wordwrap.String(a.Description, 46)))
		content.WriteString("\n")
	}
	content.WriteString("\n")
	content.WriteString(promptStyle.Render("Use ↑/↓ to navigate, Enter to travel, Esc to close"))
	return modalStyle.Width(50).Render(content.String())
}
