package views

import "testing"

func TestPaginator_Paging(t *testing.T) {
	p := NewPaginator(3)
	p.SetTotal(7)

	if start, end := p.VisibleRange(); start != 0 || end != 3 {
		t.Errorf("VisibleRange() = %d,%d, want 0,3", start, end)
	}
	if p.TotalPages() != 3 {
		t.Errorf("TotalPages() = %d, want 3", p.TotalPages())
	}

	for range 3 {
		p.CursorDown()
	}
	if p.Cursor() != 3 || p.CurrentPage() != 2 {
		t.Errorf("cursor=%d page=%d, want 3 and 2", p.Cursor(), p.CurrentPage())
	}

	if !p.NextPage() {
		t.Fatal("NextPage() = false, want true")
	}
	if start, end := p.VisibleRange(); start != 6 || end != 7 {
		t.Errorf("VisibleRange() = %d,%d, want 6,7", start, end)
	}
	if p.NextPage() {
		t.Error("NextPage() on last page = true")
	}
	if p.CursorDown() {
		t.Error("CursorDown() past the end = true")
	}

	p.PrevPage()
	if p.Cursor() != 3 {
		t.Errorf("Cursor() after PrevPage = %d, want 3", p.Cursor())
	}
}

func TestPaginator_SetTotalClampsCursor(t *testing.T) {
	p := NewPaginator(10)
	p.SetTotal(5)
	p.SetCursor(4)

	p.SetTotal(2)
	if p.Cursor() != 1 {
		t.Errorf("Cursor() = %d, want 1", p.Cursor())
	}

	p.SetTotal(0)
	if p.Cursor() != 0 {
		t.Errorf("Cursor() on empty list = %d, want 0", p.Cursor())
	}
}

func TestPaginator_SetPageSizeKeepsCursorVisible(t *testing.T) {
	p := NewPaginator(10)
	p.SetTotal(20)
	p.SetCursor(12)

	p.SetPageSize(5)
	start, end := p.VisibleRange()
	if p.Cursor() < start || p.Cursor() >= end {
		t.Errorf("cursor %d outside visible range %d-%d", p.Cursor(), start, end)
	}
}
