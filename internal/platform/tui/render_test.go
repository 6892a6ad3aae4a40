package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestRenderScreenPlainMatchesString(t *testing.T) {
	s := core.NewScreen(6, 3)
	s.DrawText(1, 1, "flap", core.ColorDefault)

	if got, want := RenderScreen(s), s.String(); got != want {
		t.Errorf("RenderScreen() = %q, want %q", got, want)
	}
}

func TestRenderScreenKeepsRowsAndRunes(t *testing.T) {
	s := core.NewScreen(8, 2)
	s.DrawText(0, 0, "ab", core.ColorHUD)
	s.DrawText(2, 0, "cd", core.ColorPipe)
	s.DrawText(4, 1, "xy", core.ColorBird)

	out := RenderScreen(s)
	if n := strings.Count(out, "\n"); n != 1 {
		t.Fatalf("expected 2 rows, got %d newlines", n)
	}
	for _, want := range []string{"ab", "cd", "xy"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q is missing %q", out, want)
		}
	}
}
