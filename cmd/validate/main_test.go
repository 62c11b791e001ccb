package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCharacter = `{
	"name": "Sir Roland",
	"class": "Paladin",
	"level": 3,
	"stats": {"strength": 16, "dexterity": 10, "constitution": 14, "intelligence": 8, "wisdom": 12, "charisma": 15},
	"hp": 20,
	"max_hp": 28,
	"ac": 18,
	"attributes": {"athletics": 5}
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateFile(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  string
		wantErr  string
	}{
		{name: "valid", filename: "sir_roland.json", content: validCharacter},
		{name: "wrong extension", filename: "sir_roland.txt", content: validCharacter, wantErr: ".json extension"},
		{name: "bad filename", filename: "Sir-Roland.json", content: validCharacter, wantErr: "snake_case"},
		{name: "invalid json", filename: "broken.json", content: `{"name":`, wantErr: "invalid JSON"},
		{name: "unknown field", filename: "extra.json", content: `{"name":"x","max_hp":1,"ac":1,"mana":3}`, wantErr: "strict JSON"},
		{
			name:     "hp above max",
			filename: "overfull.json",
			content:  `{"name":"x","hp":9,"max_hp":5,"ac":10,"stats":{"strength":10,"dexterity":10,"constitution":10,"intelligence":10,"wisdom":10,"charisma":10}}`,
			wantErr:  "hp 9 must be between",
		},
		{
			name:     "score out of range",
			filename: "giant.json",
			content:  `{"name":"x","hp":5,"max_hp":5,"ac":10,"stats":{"strength":40,"dexterity":10,"constitution":10,"intelligence":10,"wisdom":10,"charisma":10}}`,
			wantErr:  "strength score 40",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.filename, tt.content)
			err := (&CharacterValidator{}).validateFile(path)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
