package layout

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// PanelID names a content region selectable from the navigation drawer.
type PanelID string

const (
	PanelCharacter PanelID = "character"
	PanelInventory PanelID = "inventory"
	PanelTown      PanelID = "town"
	PanelMap       PanelID = "map"
	PanelQuests    PanelID = "quests"
	PanelSettings  PanelID = "settings"
)

// DefaultPanel is shown at startup and after a modal panel is closed.
const DefaultPanel = PanelCharacter

var ErrUnknownPanel = errors.New("unknown panel")

var knownPanels = []PanelID{
	PanelCharacter,
	PanelInventory,
	PanelTown,
	PanelMap,
	PanelQuests,
	PanelSettings,
}

// Panels in this set render as an overlay dialog rather than inline content.
var modalPanels = []PanelID{PanelMap}

// Panels returns every known panel id in menu order.
func Panels() []PanelID {
	return slices.Clone(knownPanels)
}

// IsModalPanel reports whether id is rendered as a modal overlay.
func IsModalPanel(id PanelID) bool {
	return slices.Contains(modalPanels, id)
}

// Known reports whether id belongs to the closed set of panels.
func (id PanelID) Known() bool {
	return slices.Contains(knownPanels, id)
}

// ParsePanelID validates a panel id read from config or a restored session.
func ParsePanelID(s string) (PanelID, error) {
	id := PanelID(strings.ToLower(strings.TrimSpace(s)))
	if !id.Known() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPanel, s)
	}
	return id, nil
}
