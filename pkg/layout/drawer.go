package layout

// DrawerConfig holds the two widths, in terminal columns, the docked drawer
// moves between.
type DrawerConfig struct {
	CollapsedWidth int
	ExpandedWidth  int
}

// DefaultDrawerConfig matches the widths used when nothing is configured.
var DefaultDrawerConfig = DrawerConfig{
	CollapsedWidth: 6,
	ExpandedWidth:  24,
}

// Drawer is the side navigation surface state.
type Drawer struct {
	MobileOpen bool
	Expanded   bool
	Pinned     bool

	cfg DrawerConfig
}

func newDrawer(cfg DrawerConfig) Drawer {
	if cfg.CollapsedWidth <= 0 {
		cfg.CollapsedWidth = DefaultDrawerConfig.CollapsedWidth
	}
	if cfg.ExpandedWidth < cfg.CollapsedWidth {
		cfg.ExpandedWidth = cfg.CollapsedWidth
	}
	return Drawer{cfg: cfg}
}

func (d *Drawer) Config() DrawerConfig { return d.cfg }

// Toggle opens or dismisses the overlay drawer used on narrow terminals.
func (d *Drawer) Toggle() {
	d.MobileOpen = !d.MobileOpen
}

// TogglePin pins or unpins the docked drawer. Pinning expands it.
func (d *Drawer) TogglePin() {
	d.Pinned = !d.Pinned
	if d.Pinned {
		d.Expanded = true
	}
}

// Expand reacts to the pointer entering (true) or leaving (false) the docked
// drawer. A pinned drawer ignores hover and stays expanded.
func (d *Drawer) Expand(hover bool) {
	if d.Pinned {
		d.Expanded = true
		return
	}
	d.Expanded = hover
}

// IsExpanded reports whether labels should be shown.
func (d *Drawer) IsExpanded() bool {
	return d.Expanded || d.Pinned
}

// CurrentWidth is the width the docked drawer occupies right now.
func (d *Drawer) CurrentWidth() int {
	if d.IsExpanded() {
		return d.cfg.ExpandedWidth
	}
	return d.cfg.CollapsedWidth
}
