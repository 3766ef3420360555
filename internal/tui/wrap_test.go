package tui

import (
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestLayoutWordsColumnMajor(t *testing.T) {
	words := []string{"kij", "kos", "kot", "psy", "żuk"}
	lines := layoutWords(words, 12)
	// cell width 5: (12+2)/5 = 2 columns, 3 rows.
	want := []string{
		"kij  psy",
		"kos  żuk",
		"kot",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestLayoutWordsFitsWidth(t *testing.T) {
	words := make([]string, 0, 50)
	for i := 0; i < 50; i++ {
		words = append(words, "łódź")
	}
	width := 33
	for _, line := range layoutWords(words, width) {
		if w := runewidth.StringWidth(line); w > width {
			t.Fatalf("line %q is %d wide, limit %d", line, w, width)
		}
	}
}

func TestLayoutWordsNarrowTerminal(t *testing.T) {
	lines := layoutWords([]string{"abcdef", "gh"}, 3)
	if len(lines) != 2 || lines[0] != "abcdef" || lines[1] != "gh" {
		t.Fatalf("expected one word per line, got %q", lines)
	}
}

func TestLayoutWordsEmpty(t *testing.T) {
	if lines := layoutWords(nil, 80); lines != nil {
		t.Fatalf("expected nil, got %q", lines)
	}
}
