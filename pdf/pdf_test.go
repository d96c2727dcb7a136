package pdf

import (
	"testing"

	"xournalpp/model"
)

func TestMemoryImplementsPdfBackground(t *testing.T) {
	var bg model.PdfBackground = &Memory{
		Path:  "bg.pdf",
		Sizes: [][2]float64{{595.28, 841.89}, {841.89, 595.28}},
	}
	if bg.PageCount() != 2 {
		t.Fatalf("page count = %d, want 2", bg.PageCount())
	}
	w, h, err := bg.PageSize(1)
	if err != nil {
		t.Fatalf("PageSize(1) failed: %v", err)
	}
	if w != 841.89 || h != 595.28 {
		t.Errorf("page 1 size = (%v, %v), want (841.89, 595.28)", w, h)
	}
	if bg.Filepath() != "bg.pdf" {
		t.Errorf("filepath = %q, want bg.pdf", bg.Filepath())
	}
}

func TestMemoryPageSizeOutOfRange(t *testing.T) {
	m := &Memory{Sizes: [][2]float64{{100, 100}}}
	if _, _, err := m.PageSize(1); err == nil {
		t.Fatalf("expected error for page 1 of a 1-page table")
	}
	if _, _, err := m.PageSize(-1); err == nil {
		t.Fatalf("expected error for a negative page")
	}
}
