package town

import "slices"

// Action is what an enabled facility does when it is clicked.
type Action int

const (
	ActionInert Action = iota
	ActionOpenFloorDialog
	ActionOpenShopDialog
)

func (a Action) String() string {
	switch a {
	case ActionOpenFloorDialog:
		return "open_floor_dialog"
	case ActionOpenShopDialog:
		return "open_shop_dialog"
	default:
		return "inert"
	}
}

// Extra is an additional control rendered inside an expanded facility card.
type Extra int

const (
	ExtraNone Extra = iota
	ExtraQuickFloorSwitch
)

// Facility is a static town location descriptor.
type Facility struct {
	ID          string
	Label       string
	Icon        string
	Description string
	Disabled    bool
	Tooltip     string // shown for disabled facilities
	Action      Action
	Extra       Extra
}

var facilities = []Facility{
	{
		ID:          "floors",
		Label:       "Floor Teleport",
		Icon:        "⇅",
		Description: "Travel to another unlocked town.",
		Action:      ActionOpenFloorDialog,
		Extra:       ExtraQuickFloorSwitch,
	},
	{
		ID:          "shop",
		Label:       "Shop",
		Icon:        "¤",
		Description: "Buy supplies and equipment.",
		Action:      ActionOpenShopDialog,
	},
	{
		ID:          "quest",
		Label:       "Quest Guild",
		Icon:        "§",
		Description: "Accept and turn in quests.",
		Disabled:    true,
		Tooltip:     "The guild is sorting its quest board...",
	},
	{
		ID:          "inn",
		Label:       "Inn",
		Icon:        "☾",
		Description: "Rest and recover.",
		Disabled:    true,
		Tooltip:     "The inn is being cleaned...",
	},
	{
		ID:          "blacksmith",
		Label:       "Blacksmith",
		Icon:        "⚒",
		Description: "Upgrade and repair equipment.",
		Disabled:    true,
		Tooltip:     "The smith is tidying the tools...",
	},
	{
		ID:          "arena",
		Label:       "Arena",
		Icon:        "⚔",
		Description: "Fight other players.",
		Disabled:    true,
		Tooltip:     "The arena is being prepared...",
	},
	{
		ID:          "storage",
		Label:       "Storage",
		Icon:        "▤",
		Description: "Store your items.",
		Disabled:    true,
		Tooltip:     "The keeper is taking stock...",
	},
	{
		ID:          "mail",
		Label:       "Mailbox",
		Icon:        "✉",
		Description: "Send and receive mail and items.",
		Disabled:    true,
		Tooltip:     "The postman is sorting letters...",
	},
}

// Facilities returns the town facilities in display order.
func Facilities() []Facility {
	return slices.Clone(facilities)
}
