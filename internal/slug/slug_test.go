package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Hello World", "hello-world"},
		{"accents stripped", "Tango Argentino Berlín", "tango-argentino-berlin"},
		{"whitespace runs and punctuation", "  Múltiples   Espacios!!", "multiples-espacios"},
		{"mixed case", "La Huella del Caminante", "la-huella-del-caminante"},
		{"underscore kept", "snake_case name", "snake_case-name"},
		{"hyphens collapsed", "a -- b", "a-b"},
		{"leading and trailing hyphens", "-dash-", "dash"},
		{"only punctuation", "!!! ???", ""},
		{"only emoji", "🎸🎶", ""},
		{"empty", "", ""},
		{"german umlauts", "Müller Straße", "muller-strae"},
		{"numbers kept", "Festival 2023", "festival-2023"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.input))
		})
	}
}

func TestMakeIdempotent(t *testing.T) {
	inputs := []string{
		"Tango Argentino Berlín",
		"  Múltiples   Espacios!!",
		"already-a-slug",
		"Festival 2023",
		"",
	}
	for _, s := range inputs {
		once := Make(s)
		assert.Equal(t, once, Make(once), "Make should be idempotent for %q", s)
	}
}
