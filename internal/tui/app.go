package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/jwebster45206/tower-client/internal/events"
	"github.com/jwebster45206/tower-client/pkg/actor"
	"github.com/jwebster45206/tower-client/pkg/layout"
	"github.com/jwebster45206/tower-client/pkg/session"
	"github.com/jwebster45206/tower-client/pkg/storage"
	"github.com/jwebster45206/tower-client/pkg/town"
	"github.com/jwebster45206/tower-client/pkg/world"
)

const (
	DefaultMobileBreakpoint = 80

	// Screen rows: header, body, help footer. Inside the body the panel
	// title and a blank line come before the panel content.
	headerRows  = 1
	footerRows  = 1
	contentTop  = headerRows + 2
	saveTimeout = 2 * time.Second
)

var ErrNoWorld = errors.New("tui: no world map")

// Deps is everything the root model needs. Layout and World are required.
type Deps struct {
	Layout           *layout.State
	World            *world.Map
	PC               *actor.PC
	Store            storage.Storage
	Publisher        events.Publisher
	Logger           *slog.Logger
	SessionID        uuid.UUID
	MobileBreakpoint int
}

// App is the root bubbletea model.
// https://github.com/charmbracelet/bubbletea
type App struct {
	layout     *layout.State
	world      *world.Map
	pc         *actor.PC
	store      storage.Storage
	publisher  events.Publisher
	logger     *slog.Logger
	sessionID  uuid.UUID
	breakpoint int

	keys    KeyMap
	help    help.Model
	nav     NavigationDrawer
	town    TownView
	mapView MapView

	width  int
	height int
	ready  bool

	status    string
	statusErr bool

	showQuitModal bool
}

func NewApp(d Deps) (App, error) {
	if d.Layout == nil {
		return App{}, layout.ErrNoLayout
	}
	if d.World == nil {
		return App{}, ErrNoWorld
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.MobileBreakpoint <= 0 {
		d.MobileBreakpoint = DefaultMobileBreakpoint
	}

	keys := DefaultKeyMap()
	nav, err := NewNavigationDrawer(d.Layout, keys)
	if err != nil {
		return App{}, err
	}
	tp, err := town.NewPanel(d.World)
	if err != nil {
		return App{}, err
	}

	return App{
		layout:     d.Layout,
		world:      d.World,
		pc:         d.PC,
		store:      d.Store,
		publisher:  d.Publisher,
		logger:     d.Logger,
		sessionID:  d.SessionID,
		breakpoint: d.MobileBreakpoint,
		keys:       keys,
		help:       help.New(),
		nav:        nav.Focus(d.Layout.CurrentPanel()),
		town:       NewTownView(tp, keys),
		mapView:    NewMapView(d.World, keys).Reset(),
	}, nil
}

func (m App) Layout() *layout.State { return m.layout }
func (m App) Town() TownView         { return m.town }
func (m App) Status() string         { return m.status }

// Init persists the session once so a fresh id can be resumed.
func (m App) Init() tea.Cmd {
	return m.saveSession(m.snapshot())
}

// Update applies msg, then saves the session and publishes events for
// whatever it changed.
func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	prevPanel := m.layout.CurrentPanel()
	prev := m.snapshot()

	next, cmd := m.update(msg)
	return next, tea.Batch(cmd, next.sync(prevPanel, prev))
}

func (m App) update(msg tea.Msg) (App, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		if m.showQuitModal {
			return m.updateQuitModal(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.showQuitModal {
			return m, nil
		}
		return m.handleMouse(msg)

	case MenuClickMsg:
		return m.selectPanel(msg.Item.ID), nil

	case statusMsg:
		if msg.err != nil {
			m.logger.Error("Action failed", "error", msg.err)
			return m.setStatus(msg.err.Error(), true), nil
		}
		return m.setStatus(msg.text, false), nil

	case sessionSavedMsg:
		if msg.err != nil {
			m.logger.Error("Failed to save session", "session_id", m.sessionID.String(), "error", msg.err)
			return m.setStatus("session not saved", true), nil
		}

	case eventPublishedMsg:
		if msg.err != nil {
			m.logger.Warn("Failed to publish event", "event", msg.event, "error", msg.err)
		}

	case clipboardMsg:
		if msg.err != nil {
			m.logger.Warn("Failed to copy session id", "error", msg.err)
			return m.setStatus("clipboard unavailable", true), nil
		}
		return m.setStatus("session id copied", false), nil
	}
	return m, nil
}

func (m App) setStatus(text string, isErr bool) App {
	m.status = text
	m.statusErr = isErr
	return m
}

func (m App) resize(width, height int) App {
	m.width = width
	m.height = height
	m.ready = true

	mobile := width < m.breakpoint
	if mobile != m.layout.IsMobileView() {
		m.layout.Drawer().MobileOpen = false
	}
	m.layout.SetMobileView(mobile)

	m.help.Width = width
	m.town = m.town.SetSize(m.contentWidth(), m.bodyHeight()-2)
	return m
}

func (m App) bodyHeight() int {
	return max(m.height-headerRows-footerRows, 1)
}

// contentX is the first screen column of the content area.
func (m App) contentX() int {
	if w := m.nav.Width(); w > 0 {
		return w + 1
	}
	return 0
}

func (m App) contentWidth() int {
	return max(m.width-m.contentX(), 1)
}

// setMenuFocus gives the drawer or the content the keyboard. On a narrow
// terminal the overlay drawer follows the focus; docked, focus expands it
// the way hovering does.
func (m App) setMenuFocus(open bool) App {
	if open != m.layout.IsMenuOpen() {
		m.layout.ToggleMenu()
	}
	d := m.layout.Drawer()
	if m.layout.IsMobileView() {
		d.MobileOpen = open
	} else {
		d.Expand(open)
	}
	if open {
		m.nav = m.nav.Focus(m.layout.CurrentPanel())
	}
	m.town = m.town.SetSize(m.contentWidth(), m.bodyHeight()-2)
	return m
}

func (m App) selectPanel(id layout.PanelID) App {
	m.layout.SwitchPanel(id)
	if m.layout.IsMobileView() {
		m.layout.Drawer().MobileOpen = false
	}
	if m.layout.IsMenuOpen() {
		m = m.setMenuFocus(false)
	}
	if m.layout.IsModalOpen() {
		m.mapView = m.mapView.Reset()
	}
	m.town = m.town.SetSize(m.contentWidth(), m.bodyHeight()-2)
	return m
}

func (m App) handleKey(msg tea.KeyMsg) (App, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.showQuitModal = true
		return m, nil
	case key.Matches(msg, m.keys.Menu) && !m.overlayOpen():
		return m.setMenuFocus(!m.layout.IsMenuOpen()), nil
	}

	if m.layout.IsMenuOpen() {
		if key.Matches(msg, m.keys.Back) {
			return m.setMenuFocus(false), nil
		}
		var cmd tea.Cmd
		m.nav, cmd = m.nav.HandleKey(msg)
		return m, cmd
	}

	if m.layout.IsModalOpen() {
		var (
			cmd    tea.Cmd
			closed bool
		)
		m.mapView, cmd, closed = m.mapView.HandleKey(msg)
		if closed {
			m.layout.CloseModal()
		}
		return m, cmd
	}

	switch m.layout.CurrentPanel() {
	case layout.PanelTown:
		if !key.Matches(msg, m.keys.Pin) || m.town.Panel().Dialog().AnyOpen() {
			var cmd tea.Cmd
			m.town, cmd = m.town.HandleKey(msg)
			return m, cmd
		}
	case layout.PanelCharacter:
		if key.Matches(msg, m.keys.CopyID) {
			return m, copySessionID(m.sessionID)
		}
	}

	if key.Matches(msg, m.keys.Pin) && !m.layout.IsMobileView() {
		m.layout.Drawer().TogglePin()
		m.town = m.town.SetSize(m.contentWidth(), m.bodyHeight()-2)
	}
	return m, nil
}

func (m App) updateQuitModal(msg tea.KeyMsg) (App, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEnter:
		return m, tea.Quit
	case tea.KeyEsc:
		m.showQuitModal = false
		return m, nil
	}
	switch msg.String() {
	case "y", "Y":
		return m, tea.Quit
	case "n", "N":
		m.showQuitModal = false
	}
	return m, nil
}

// overlayOpen reports whether the map or a town dialog covers the body.
// The drawer is not drawn then, so it takes no input.
func (m App) overlayOpen() bool {
	if m.layout.IsModalOpen() {
		return true
	}
	_, ok := m.townDialog()
	return ok
}

func isLeftPress(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
}

func (m App) handleMouse(msg tea.MouseMsg) (App, tea.Cmd) {
	if m.overlayOpen() {
		if m.layout.IsModalOpen() {
			return m, nil
		}
		var cmd tea.Cmd
		m.town, cmd = m.town.HandleMouse(msg, msg.X-m.contentX(), msg.Y-contentTop)
		return m, cmd
	}

	// The hamburger in the header opens the overlay drawer.
	if m.layout.IsMobileView() && msg.Y == 0 && msg.X < 2 && isLeftPress(msg) {
		return m.setMenuFocus(!m.layout.IsMenuOpen()), nil
	}

	var (
		cmd    tea.Cmd
		inside bool
	)
	m.nav, cmd, inside = m.nav.HandleMouse(msg, headerRows, m.bodyHeight())
	m.town = m.town.SetSize(m.contentWidth(), m.bodyHeight()-2)
	if inside {
		if m.layout.CurrentPanel() == layout.PanelTown {
			m.town, _ = m.town.HandleMouse(tea.MouseMsg{Action: tea.MouseActionMotion}, -1, -1)
		}
		return m, cmd
	}

	// Outside the overlay drawer is its backdrop: a press dismisses the
	// drawer and nothing reaches the content beneath.
	if m.layout.IsMobileView() && m.layout.Drawer().MobileOpen {
		if isLeftPress(msg) {
			m = m.setMenuFocus(false)
		}
		return m, cmd
	}

	if m.layout.CurrentPanel() != layout.PanelTown {
		return m, cmd
	}

	var townCmd tea.Cmd
	m.town, townCmd = m.town.HandleMouse(msg, msg.X-m.contentX(), msg.Y-contentTop)
	return m, tea.Batch(cmd, townCmd)
}

func (m App) snapshot() session.Session {
	return session.Capture(m.sessionID, m.layout, m.world)
}

// sync compares the state before and after an update and emits the
// resulting save and publish commands.
func (m App) sync(prevPanel layout.PanelID, prev session.Session) tea.Cmd {
	cur := m.snapshot()
	var cmds []tea.Cmd

	if cur.FloorID != prev.FloorID {
		from, to := int(prev.FloorID), int(cur.FloorID)
		cmds = append(cmds, m.publish(string(events.EventTypeFloorChanged), func(ctx context.Context, p events.Publisher) error {
			return p.PublishFloorChanged(ctx, m.sessionID, from, to)
		}))
	} else if cur.AreaID != prev.AreaID {
		area := m.world.CurrentArea()
		cmds = append(cmds, m.publish(string(events.EventTypeAreaEntered), func(ctx context.Context, p events.Publisher) error {
			return p.PublishAreaEntered(ctx, m.sessionID, area.ID, string(area.Type))
		}))
	}

	if panel := m.layout.CurrentPanel(); panel != prevPanel {
		cmds = append(cmds, m.publish(string(events.EventTypePanelSwitched), func(ctx context.Context, p events.Publisher) error {
			return p.PublishPanelSwitched(ctx, m.sessionID, string(panel))
		}))
	}

	if cur != prev {
		cmds = append(cmds, m.saveSession(cur))
	}
	return tea.Batch(cmds...)
}

func (m App) saveSession(s session.Session) tea.Cmd {
	if m.store == nil {
		return nil
	}
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		return sessionSavedMsg{err: store.SaveSession(ctx, &s)}
	}
}

func (m App) publish(event string, fn func(context.Context, events.Publisher) error) tea.Cmd {
	if m.publisher == nil {
		return nil
	}
	p := m.publisher
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		return eventPublishedMsg{event: event, err: fn(ctx, p)}
	}
}

func copySessionID(id uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{err: clipboard.WriteAll(id.String())}
	}
}

func (m App) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}
	if m.showQuitModal {
		return m.renderQuitModal()
	}

	bodyH := m.bodyHeight()
	var body string
	switch {
	case m.layout.IsModalOpen():
		body = lipgloss.Place(m.width, bodyH, lipgloss.Center, lipgloss.Center, m.mapView.View(), lipgloss.WithWhitespaceChars(" "))
	default:
		if dialog, ok := m.townDialog(); ok {
			body = lipgloss.Place(m.width, bodyH, lipgloss.Center, lipgloss.Center, dialog, lipgloss.WithWhitespaceChars(" "))
			break
		}
		body = m.renderContent(bodyH)
		if drawer := m.nav.View(m.layout.CurrentPanel(), bodyH); drawer != "" {
			body = lipgloss.JoinHorizontal(lipgloss.Top, drawer, " ", body)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		lipgloss.NewStyle().Height(bodyH).MaxHeight(bodyH).Render(body),
		m.help.View(m.keys),
	)
}

func (m App) townDialog() (string, bool) {
	if m.layout.CurrentPanel() != layout.PanelTown {
		return "", false
	}
	return m.town.DialogView()
}

func (m App) renderHeader() string {
	var left strings.Builder
	if m.layout.IsMobileView() {
		left.WriteString("☰ ")
	}
	left.WriteString("TOWER")
	floor, area := m.world.CurrentFloor(), m.world.CurrentArea()
	left.WriteString(fmt.Sprintf("  %s · %s", floor.Name, area.Name))

	right := m.sessionID.String()[:8]
	if m.status != "" {
		style := noticeStyle
		if m.statusErr {
			style = errorStyle
		}
		right = style.Render(m.status) + "  " + right
	}

	gap := max(m.width-lipgloss.Width(left.String())-lipgloss.Width(right), 1)
	return headerStyle.Width(m.width).MaxWidth(m.width).Render(left.String() + strings.Repeat(" ", gap) + right)
}

func (m App) renderContent(height int) string {
	width := m.contentWidth()
	id := m.layout.CurrentPanel()

	var panel string
	switch id {
	case layout.PanelTown:
		panel = m.town.View()
		if panel == "" {
			panel = promptStyle.Render(fmt.Sprintf("%s has no town services. Open the map to travel.", m.world.CurrentArea().Name))
		}
	case layout.PanelCharacter:
		panel = renderCharacter(m.pc, width, m.layout.ContentStyle().Columns)
	default:
		panel = renderPlaceholder(id, width)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, renderPanelTitle(id), "", panel)
	if m.layout.ContentStyle().Dimmed {
		content = dimStyle.Render(content)
	}
	return lipgloss.NewStyle().Width(width).MaxWidth(width).Height(height).MaxHeight(height).Render(content)
}

func (m App) renderQuitModal() string {
	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Leave the Tower?"))
	content.WriteString("\n\n")
	content.WriteString("Your session is saved and can be resumed later.")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue, or Ctrl+C to force quit"))

	modal := modalStyle.Width(50).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}
