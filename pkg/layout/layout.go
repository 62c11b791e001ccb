package layout

import (
	"context"
	"errors"
)

// ErrNoLayout is returned when a component is wired without a layout state.
var ErrNoLayout = errors.New("layout state is not configured: components must be created with a *layout.State")

// State holds the shared layout flags for one client session. It is created
// once at startup and handed to every component that reads or mutates it.
// All methods must be called from the UI event loop.
type State struct {
	mobileView   bool
	menuOpen     bool
	currentPanel PanelID
	modalOpen    bool
	drawer       Drawer
}

// ContentStyle is the presentation decision derived from the layout flags.
type ContentStyle struct {
	Dimmed  bool // menu is open over the content
	Columns int
}

// New returns a layout state showing the default panel with the menu closed.
func New(drawer DrawerConfig) *State {
	return &State{
		currentPanel: DefaultPanel,
		drawer:       newDrawer(drawer),
	}
}

// IsMobileView reports whether the terminal is below the mobile breakpoint.
func (s *State) IsMobileView() bool { return s.mobileView }

// IsMenuOpen reports whether the navigation menu has focus.
func (s *State) IsMenuOpen() bool { return s.menuOpen }

// CurrentPanel is the panel shown in the content area or as the overlay.
func (s *State) CurrentPanel() PanelID { return s.currentPanel }

// IsModalOpen reports whether a modal panel covers the content area.
func (s *State) IsModalOpen() bool { return s.modalOpen }

// Drawer exposes the drawer state for the navigation drawer.
func (s *State) Drawer() *Drawer { return &s.drawer }

// ToggleMenu opens the menu when closed and closes it when open.
func (s *State) ToggleMenu() {
	s.menuOpen = !s.menuOpen
}

// CloseMenu closes the menu; it is a no-op when already closed.
func (s *State) CloseMenu() {
	s.menuOpen = false
}

// SwitchPanel makes id the current panel. Modal panels also open the modal
// overlay, and on a narrow terminal the menu is closed.
func (s *State) SwitchPanel(id PanelID) {
	s.currentPanel = id
	s.modalOpen = IsModalPanel(id)
	if s.mobileView {
		s.menuOpen = false
	}
}

// CloseModal dismisses the modal overlay. A modal current panel falls back
// to the default panel so the content area never points at an overlay.
func (s *State) CloseModal() {
	s.modalOpen = false
	if IsModalPanel(s.currentPanel) {
		s.currentPanel = DefaultPanel
	}
}

// SetMobileView records the viewport class. Entering the mobile view
// closes the menu.
func (s *State) SetMobileView(mobile bool) {
	s.mobileView = mobile
	if mobile {
		s.menuOpen = false
	}
}

// IsModalPanel reports whether id is rendered as a modal overlay.
func (s *State) IsModalPanel(id PanelID) bool {
	return IsModalPanel(id)
}

// ContentStyle derives how the main content area should be drawn.
func (s *State) ContentStyle() ContentStyle {
	cs := ContentStyle{
		Dimmed:  s.menuOpen,
		Columns: 2,
	}
	if s.mobileView {
		cs.Columns = 1
	}
	return cs
}

type ctxKey struct{}

// NewContext returns a copy of ctx carrying s.
func NewContext(ctx context.Context, s *State) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the layout state attached by NewContext, or
// ErrNoLayout when the caller is outside the owning scope.
func FromContext(ctx context.Context) (*State, error) {
	s, ok := ctx.Value(ctxKey{}).(*State)
	if !ok || s == nil {
		return nil, ErrNoLayout
	}
	return s, nil
}
