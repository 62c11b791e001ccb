package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jwebster45206/tower-client/pkg/layout"
	"github.com/jwebster45206/tower-client/pkg/world"
)

// Session is the persisted part of a client session: enough to put the
// player back where they were with the same layout.
type Session struct {
	ID        uuid.UUID      `json:"id"`
	Panel     layout.PanelID `json:"panel"`
	Pinned    bool           `json:"pinned,omitempty"`
	FloorID   world.FloorID  `json:"floor_id"`
	AreaID    string         `json:"area_id,omitempty"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// New starts a fresh session on the first floor's town.
func New() *Session {
	return &Session{
		ID:      uuid.New(),
		Panel:   layout.DefaultPanel,
		FloorID: world.Floors()[0].ID,
	}
}

// Capture snapshots the live layout and map into a session value.
func Capture(id uuid.UUID, ls *layout.State, m *world.Map) Session {
	panel := ls.CurrentPanel()
	if ls.IsModalOpen() || !panel.Known() {
		// Overlays are transient; resume on the panel underneath.
		panel = layout.DefaultPanel
	}
	return Session{
		ID:      id,
		Panel:   panel,
		Pinned:  ls.Drawer().Pinned,
		FloorID: m.CurrentFloor().ID,
		AreaID:  m.CurrentArea().ID,
	}
}

// Restore applies a saved session to a fresh layout state and builds the map.
func (s *Session) Restore(ls *layout.State) (*world.Map, error) {
	panel, err := layout.ParsePanelID(string(s.Panel))
	if err != nil {
		return nil, fmt.Errorf("failed to restore session %s: %w", s.ID, err)
	}
	m, err := world.NewMap(s.FloorID, s.AreaID)
	if err != nil {
		return nil, fmt.Errorf("failed to restore session %s: %w", s.ID, err)
	}

	ls.SwitchPanel(panel)
	if s.Pinned && !ls.Drawer().Pinned {
		ls.Drawer().TogglePin()
	}
	return m, nil
}
