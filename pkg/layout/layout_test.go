package layout

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	s := New(DefaultDrawerConfig)

	assert.Equal(t, PanelCharacter, s.CurrentPanel())
	assert.False(t, s.IsMenuOpen())
	assert.False(t, s.IsModalOpen())
	assert.False(t, s.IsMobileView())
}

func TestState_ToggleAndCloseMenu(t *testing.T) {
	s := New(DefaultDrawerConfig)

	s.ToggleMenu()
	assert.True(t, s.IsMenuOpen())
	s.ToggleMenu()
	assert.False(t, s.IsMenuOpen())

	s.ToggleMenu()
	s.CloseMenu()
	assert.False(t, s.IsMenuOpen())
	s.CloseMenu()
	assert.False(t, s.IsMenuOpen(), "closing a closed menu stays closed")
}

func TestState_SwitchPanelModalFlag(t *testing.T) {
	ids := append(Panels(), PanelID("unregistered"), PanelID(""))

	for _, id := range ids {
		t.Run(string(id), func(t *testing.T) {
			s := New(DefaultDrawerConfig)
			s.SwitchPanel(id)

			assert.Equal(t, id, s.CurrentPanel())
			assert.Equal(t, id == PanelMap, s.IsModalOpen())
		})
	}
}

func TestState_SwitchPanelClosesMenuOnlyOnMobile(t *testing.T) {
	tests := []struct {
		name     string
		mobile   bool
		wantOpen bool
	}{
		{name: "docked keeps menu open", mobile: false, wantOpen: true},
		{name: "mobile closes menu", mobile: true, wantOpen: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(DefaultDrawerConfig)
			s.SetMobileView(tt.mobile)
			s.ToggleMenu()
			require.True(t, s.IsMenuOpen())

			s.SwitchPanel(PanelTown)
			assert.Equal(t, tt.wantOpen, s.IsMenuOpen())
		})
	}
}

func TestState_CloseModal(t *testing.T) {
	t.Run("modal panel falls back to character", func(t *testing.T) {
		s := New(DefaultDrawerConfig)
		s.SwitchPanel(PanelMap)
		require.True(t, s.IsModalOpen())

		s.CloseModal()
		assert.False(t, s.IsModalOpen())
		assert.Equal(t, PanelCharacter, s.CurrentPanel())
	})

	t.Run("inline panel is kept", func(t *testing.T) {
		s := New(DefaultDrawerConfig)
		s.SwitchPanel(PanelTown)

		s.CloseModal()
		assert.False(t, s.IsModalOpen())
		assert.Equal(t, PanelTown, s.CurrentPanel())
	})
}

func TestState_SetMobileViewAlwaysClosesMenu(t *testing.T) {
	for _, menuOpen := range []bool{true, false} {
		for _, wasMobile := range []bool{true, false} {
			s := New(DefaultDrawerConfig)
			s.mobileView = wasMobile
			s.menuOpen = menuOpen

			s.SetMobileView(true)
			assert.True(t, s.IsMobileView())
			assert.False(t, s.IsMenuOpen(), "menuOpen=%v wasMobile=%v", menuOpen, wasMobile)
		}
	}

	s := New(DefaultDrawerConfig)
	s.ToggleMenu()
	s.SetMobileView(false)
	assert.True(t, s.IsMenuOpen(), "leaving mobile view does not touch the menu")
}

func TestState_IsModalPanel(t *testing.T) {
	s := New(DefaultDrawerConfig)
	assert.True(t, s.IsModalPanel(PanelMap))
	assert.False(t, s.IsModalPanel(PanelCharacter))
	assert.False(t, s.IsModalPanel("nope"))
}

func TestState_ContentStyle(t *testing.T) {
	s := New(DefaultDrawerConfig)
	assert.Equal(t, ContentStyle{Dimmed: false, Columns: 2}, s.ContentStyle())

	s.ToggleMenu()
	assert.Equal(t, ContentStyle{Dimmed: true, Columns: 2}, s.ContentStyle())

	s.SetMobileView(true)
	assert.Equal(t, ContentStyle{Dimmed: false, Columns: 1}, s.ContentStyle())
}

func TestParsePanelID(t *testing.T) {
	id, err := ParsePanelID(" Town ")
	require.NoError(t, err)
	assert.Equal(t, PanelTown, id)

	_, err = ParsePanelID("guildhall")
	assert.True(t, errors.Is(err, ErrUnknownPanel))
}

func TestFromContext(t *testing.T) {
	_, err := FromContext(context.Background())
	assert.ErrorIs(t, err, ErrNoLayout)

	s := New(DefaultDrawerConfig)
	got, err := FromContext(NewContext(context.Background(), s))
	require.NoError(t, err)
	assert.Same(t, s, got)
}
