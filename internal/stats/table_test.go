package stats

import (
	"testing"

	"github.com/verte-zerg/slotword/internal/model"
)

func TestLengthTableAlignsColumns(t *testing.T) {
	counts := []model.LengthCount{
		{Length: 3, Count: 39},
		{Length: 12, Count: 1},
	}

	lines := lengthTable(counts, 40)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Length Words  Share" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "     3    39 97.50%" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "    12     1  2.50%" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestLengthTableEmptyTotal(t *testing.T) {
	lines := lengthTable([]model.LengthCount{{Length: 4, Count: 0}}, 0)
	if len(lines) != 2 || lines[1] != "     4     0  0.00%" {
		t.Fatalf("unexpected lines: %q", lines)
	}
}
