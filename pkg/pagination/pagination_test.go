package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func ctxWithQuery(query string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestFromContext_Defaults(t *testing.T) {
	p := FromContext(ctxWithQuery(""))
	if p.Limit != DefaultLimit {
		t.Errorf("expected default limit %d, got %d", DefaultLimit, p.Limit)
	}
	if p.Offset != 0 {
		t.Errorf("expected offset 0, got %d", p.Offset)
	}
}

func TestFromContext_Explicit(t *testing.T) {
	p := FromContext(ctxWithQuery("limit=5&offset=10"))
	if p.Limit != 5 || p.Offset != 10 {
		t.Errorf("unexpected params: %+v", p)
	}
}

func TestFromContext_CapsLimit(t *testing.T) {
	p := FromContext(ctxWithQuery("limit=5000"))
	if p.Limit != MaxLimit {
		t.Errorf("expected cap at %d, got %d", MaxLimit, p.Limit)
	}
}

func TestFromContext_NegativeOffset(t *testing.T) {
	p := FromContext(ctxWithQuery("offset=-3"))
	if p.Offset != 0 {
		t.Errorf("expected offset clamped to 0, got %d", p.Offset)
	}
}

func TestPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	got := Page(items, Params{Limit: 2, Offset: 0})
	if len(got) != 2 || got[0] != 1 {
		t.Errorf("unexpected first page: %v", got)
	}

	got = Page(items, Params{Limit: 2, Offset: 4})
	if len(got) != 1 || got[0] != 5 {
		t.Errorf("unexpected last page: %v", got)
	}

	got = Page(items, Params{Limit: 2, Offset: 10})
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil page, got %v", got)
	}

	got = Page[int](nil, Params{Limit: 2, Offset: 0})
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil page for nil input, got %v", got)
	}
}

func TestNewResponse_HasMore(t *testing.T) {
	r := NewResponse([]int{1, 2}, 10, 2, 0)
	if !r.HasMore {
		t.Error("expected has_more true")
	}
	r = NewResponse([]int{1, 2}, 2, 2, 0)
	if r.HasMore {
		t.Error("expected has_more false")
	}
}

func TestHasNextAndNextOffset(t *testing.T) {
	p := Params{Limit: 20, Offset: 20}
	if !p.HasNext(100) {
		t.Error("expected next page")
	}
	if p.NextOffset() != 40 {
		t.Errorf("expected next offset 40, got %d", p.NextOffset())
	}
	if p.HasNext(40) {
		t.Error("expected no next page at end")
	}
}
