package input

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-pong/engine"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		name    string
		want    Binding
		wantErr bool
	}{
		{"w", Binding{Key: tcell.KeyRune, Rune: 'w'}, false},
		{"K", Binding{Key: tcell.KeyRune, Rune: 'k'}, false},
		{"up", Binding{Key: tcell.KeyUp}, false},
		{"Down", Binding{Key: tcell.KeyDown}, false},
		{"space", Binding{Key: tcell.KeyRune, Rune: ' '}, false},
		{"pgdn", Binding{Key: tcell.KeyPgDn}, false},
		{"q", Binding{}, true},
		{"hyperspace", Binding{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKey(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKey(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseKey(%q) = %+v, want %+v", tt.name, got, tt.want)
			}
		})
	}
}

func TestLoadKeyTableOverrides(t *testing.T) {
	kt, err := LoadKeyTable(map[string][]string{
		"p2_up":   {"i", "pgup"},
		"p2_down": {"k"},
	})
	if err != nil {
		t.Fatalf("LoadKeyTable failed: %v", err)
	}

	a, ok := kt.Lookup(tcell.KeyRune, 'i')
	if !ok || a != engine.ActionP2Up {
		t.Errorf("Expected i -> p2_up, got %v (%v)", a, ok)
	}
	a, ok = kt.Lookup(tcell.KeyPgUp, 0)
	if !ok || a != engine.ActionP2Up {
		t.Errorf("Expected pgup -> p2_up, got %v (%v)", a, ok)
	}
	if _, ok := kt.Lookup(tcell.KeyUp, 0); ok {
		t.Error("Expected default Up binding to be replaced")
	}
	// Untouched actions keep defaults
	if a, ok := kt.Lookup(tcell.KeyRune, 'w'); !ok || a != engine.ActionP1Up {
		t.Errorf("Expected default w -> p1_up, got %v (%v)", a, ok)
	}
}

func TestLoadKeyTableErrors(t *testing.T) {
	_, err := LoadKeyTable(map[string][]string{"serve": {"x"}})
	if err == nil || !strings.Contains(err.Error(), "unknown action") {
		t.Errorf("Expected unknown action error, got %v", err)
	}

	_, err = LoadKeyTable(map[string][]string{"p1_up": {"nope"}})
	if err == nil || !strings.Contains(err.Error(), "p1_up") {
		t.Errorf("Expected key error naming the action, got %v", err)
	}
}

func TestIsQuit(t *testing.T) {
	if !IsQuit(tcell.KeyEscape, 0) || !IsQuit(tcell.KeyCtrlC, 0) || !IsQuit(tcell.KeyRune, 'q') {
		t.Error("Expected Esc, Ctrl-C and q to quit")
	}
	if IsQuit(tcell.KeyRune, 'w') || IsQuit(tcell.KeyUp, 0) {
		t.Error("Expected game keys to not quit")
	}
}
