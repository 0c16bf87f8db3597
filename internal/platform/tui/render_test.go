package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-checkers/internal/core"
)

func TestRenderScreenPlainText(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	if err := s.Paint(3, 1, 'x', core.ColorBlue); err != nil {
		t.Fatal(err)
	}

	got := RenderScreen(s)
	if got != s.String() {
		t.Errorf("RenderScreen() = %q, want %q", got, s.String())
	}
}

func TestRenderScreenColors(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI256)
	t.Cleanup(func() { lipgloss.SetColorProfile(termenv.Ascii) })

	s := core.NewScreen(4, 1)
	if err := s.Paint(1, 0, ' ', core.ColorBlue); err != nil {
		t.Fatal(err)
	}

	got := RenderScreen(s)
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("expected ANSI escapes in %q", got)
	}
	if strings.Count(got, "\n") != 0 {
		t.Errorf("single row rendered as %d lines", strings.Count(got, "\n")+1)
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText() = %q", got)
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("centerText() overflow = %q", got)
	}
}
