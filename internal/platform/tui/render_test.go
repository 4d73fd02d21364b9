package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-match3/internal/core"
)

func TestRenderScreenKeepsLayout(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(2, 0, '●', core.ColorPink)
	s.SetColored(3, 0, '●', core.ColorPink)
	s.DrawTextColored(0, 1, "xyz", core.Color(99))

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, expected 2", len(lines))
	}
	for _, want := range []string{"ab", "●●", "xyz"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q is missing %q", out, want)
		}
	}
}
