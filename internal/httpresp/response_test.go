package httpresp

import "testing"

func TestNewPagination(t *testing.T) {
	p := NewPagination(25, 2, 10)
	if p.TotalPages != 3 {
		t.Fatalf("25 registros a 10 por página son 3 páginas, obtuve %d", p.TotalPages)
	}
	if !p.HasNextPage || !p.HasPrevPage {
		t.Fatalf("página intermedia debe tener siguiente y anterior: %+v", p)
	}

	p = NewPagination(30, 3, 10)
	if p.TotalPages != 3 || p.HasNextPage || !p.HasPrevPage {
		t.Fatalf("última página exacta mal calculada: %+v", p)
	}

	p = NewPagination(0, 1, 10)
	if p.TotalPages != 0 || p.HasNextPage || p.HasPrevPage {
		t.Fatalf("sin registros no hay páginas: %+v", p)
	}
}
