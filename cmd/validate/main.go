package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jwebster45206/tower-client/pkg/actor"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <character.json>...\n", os.Args[0])
		os.Exit(1)
	}

	failed := false
	for _, filename := range os.Args[1:] {
		validator := &CharacterValidator{}
		if err := validator.validateFile(filename); err != nil {
			fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
			failed = true
			continue
		}
		fmt.Printf("%s is valid!\n", filename)
	}
	if failed {
		os.Exit(1)
	}
}

type CharacterValidator struct {
	errors []string
}

func (v *CharacterValidator) validateFile(filename string) error {
	fmt.Printf("Validating %s...\n", filename)

	baseName := filepath.Base(filename)
	if !strings.HasSuffix(baseName, ".json") {
		return fmt.Errorf("character file must have .json extension: %s", baseName)
	}

	nameWithoutExt := strings.TrimSuffix(baseName, ".json")
	if !isValidID(nameWithoutExt) {
		return fmt.Errorf("character filename '%s' must be lowercase snake_case (e.g., sir_roland.json, not Sir-Roland.json)", baseName)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	if !json.Valid(data) {
		return fmt.Errorf("file %s contains invalid JSON", filename)
	}

	var spec actor.PCSpec
	decoder := json.NewDecoder(strings.NewReader(string(data)))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&spec); err != nil {
		return fmt.Errorf("file %s failed strict JSON unmarshaling: %w", filename, err)
	}
	spec.ID = nameWithoutExt

	v.errors = nil
	v.validateSpec(&spec)
	if len(v.errors) > 0 {
		return fmt.Errorf("validation errors in %s:\n%s", filename, strings.Join(v.errors, "\n"))
	}

	// The client builds the same actor at startup.
	if _, err := actor.NewPCFromSpec(&spec); err != nil {
		return fmt.Errorf("file %s does not build a character: %w", filename, err)
	}
	return nil
}

func (v *CharacterValidator) validateSpec(spec *actor.PCSpec) {
	if strings.TrimSpace(spec.Name) == "" {
		v.addError("name is required")
	}
	if spec.Level < 0 || spec.Level > 20 {
		v.addError(fmt.Sprintf("level %d is outside 1-20", spec.Level))
	}

	if spec.MaxHP <= 0 {
		v.addError("max_hp must be positive")
	}
	if spec.HP < 0 || spec.HP > spec.MaxHP {
		v.addError(fmt.Sprintf("hp %d must be between 0 and max_hp %d", spec.HP, spec.MaxHP))
	}
	if spec.AC <= 0 {
		v.addError("ac must be positive")
	}

	for name, score := range spec.Stats.ToAttributes() {
		if score < 1 || score > 30 {
			v.addError(fmt.Sprintf("%s score %d is outside 1-30", name, score))
		}
	}

	for name := range spec.Attributes {
		if !isValidID(name) {
			v.addError(fmt.Sprintf("attribute '%s' should be lowercase snake_case", name))
		}
	}
	for name := range spec.CombatModifiers {
		if !isValidID(name) {
			v.addError(fmt.Sprintf("combat modifier '%s' should be lowercase snake_case", name))
		}
	}
}

func (v *CharacterValidator) addError(msg string) {
	v.errors = append(v.errors, "  - "+msg)
}

var validIDRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)

func isValidID(id string) bool {
	return validIDRegex.MatchString(id)
}
