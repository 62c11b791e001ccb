package actor

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"github.com/jwebster45206/d20"
)

// Stats5e represents the six core ability scores
type Stats5e struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// CoreStats lists the ability score keys in sheet order.
var CoreStats = []string{"strength", "dexterity", "constitution", "intelligence", "wisdom", "charisma"}

// ToAttributes converts Stats5e to a map for d20.Actor compatibility
func (s *Stats5e) ToAttributes() map[string]int {
	return map[string]int{
		"strength":     s.Strength,
		"dexterity":    s.Dexterity,
		"constitution": s.Constitution,
		"intelligence": s.Intelligence,
		"wisdom":       s.Wisdom,
		"charisma":     s.Charisma,
	}
}

// PCSpec is the serializable specification for the player character
type PCSpec struct {
	ID              string         `json:"id"`
	Name            string         `json:"name,omitempty"`
	Class           string         `json:"class,omitempty"`
	Level           int            `json:"level,omitempty"`
	Race            string         `json:"race,omitempty"`
	Pronouns        string         `json:"pronouns,omitempty"`
	Description     string         `json:"description,omitempty"`
	Stats           Stats5e        `json:"stats,omitempty"`
	HP              int            `json:"hp,omitempty"`     // Current HP
	MaxHP           int            `json:"max_hp,omitempty"` // Maximum HP
	AC              int            `json:"ac,omitempty"`
	CombatModifiers map[string]int `json:"combat_modifiers,omitempty"`
	Attributes      map[string]int `json:"attributes,omitempty"` // Skills, proficiencies, etc.
	Inventory       []string       `json:"inventory,omitempty"`
}

// PC is the runtime representation of the player character
type PC struct {
	Spec  *PCSpec
	Actor *d20.Actor // Built at runtime from PCSpec
}

// DefaultPCSpec is used when no character file is configured.
func DefaultPCSpec() *PCSpec {
	return &PCSpec{
		ID:          "wanderer",
		Name:        "Wanderer",
		Class:       "Fighter",
		Level:       1,
		Race:        "Human",
		Pronouns:    "they/them",
		Description: "A newcomer to the tower with a borrowed sword.",
		Stats: Stats5e{
			Strength:     15,
			Dexterity:    13,
			Constitution: 14,
			Intelligence: 10,
			Wisdom:       12,
			Charisma:     8,
		},
		HP:        12,
		MaxHP:     12,
		AC:        15,
		Inventory: []string{"shortsword", "leather armor", "2 healing potions"},
	}
}

// NewPCFromSpec creates a PC from a PCSpec
func NewPCFromSpec(spec *PCSpec) (*PC, error) {
	if spec == nil {
		return nil, fmt.Errorf("spec cannot be nil")
	}

	allAttrs := spec.Stats.ToAttributes()
	maps.Copy(allAttrs, spec.Attributes)

	actor, err := d20.NewActor(spec.ID).
		WithHP(spec.MaxHP).
		WithAC(spec.AC).
		WithAttributes(allAttrs).
		WithCombatModifiers(spec.CombatModifiers).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build actor: %w", err)
	}

	// Set current HP if different from max
	if spec.HP != spec.MaxHP && spec.HP > 0 {
		if err := actor.SetHP(spec.HP); err != nil {
			return nil, fmt.Errorf("failed to set HP: %w", err)
		}
	}

	return &PC{Spec: spec, Actor: actor}, nil
}

// LoadPC loads a PC from a JSON file and builds its d20.Actor.
// The filename (without .json extension) overrides any ID in the JSON
func LoadPC(path string) (*PC, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read PC file: %w", err)
	}

	var spec PCSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal PC spec: %w", err)
	}

	spec.ID = strings.TrimSuffix(filepath.Base(path), ".json")

	return NewPCFromSpec(&spec)
}

// Stat is one labelled ability score with its modifier.
type Stat struct {
	Name     string
	Score    int
	Modifier int
}

// Stats reads the core ability scores back from the actor.
func (pc *PC) Stats() []Stat {
	out := make([]Stat, 0, len(CoreStats))
	for _, key := range CoreStats {
		score, _ := pc.Actor.Attribute(key)
		out = append(out, Stat{Name: key, Score: score, Modifier: AbilityModifier(score)})
	}
	return out
}

// AbilityModifier is floor((score-10)/2).
func AbilityModifier(score int) int {
	d := score - 10
	if d < 0 {
		return (d - 1) / 2
	}
	return d / 2
}
