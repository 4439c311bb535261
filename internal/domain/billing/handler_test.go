package billing

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hms/hms/pkg/pagination"
)

func newTestHandler() (*Handler, *echo.Echo) {
	h := NewHandler(newTestService())
	e := echo.New()
	return h, e
}

func TestHandler_CreateBill(t *testing.T) {
	h, e := newTestHandler()
	body := `{"patientId":"p1","items":[{"description":"X-ray","amount":120},{"description":"Consultation","amount":80}]}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateBill(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	var b Bill
	if err := json.Unmarshal(rec.Body.Bytes(), &b); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if b.Total != 200 || b.Status != StatusPending {
		t.Errorf("unexpected created bill: %+v", b)
	}
}

func TestHandler_PayBill(t *testing.T) {
	h, e := newTestHandler()
	created, _ := h.svc.CreateBill(context.Background(), &Bill{
		PatientID: "p1", Items: []Item{{Description: "X-ray", Amount: 120}},
	})

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(created.ID)

	if err := h.PayBill(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var b Bill
	json.Unmarshal(rec.Body.Bytes(), &b)
	if b.Status != StatusPaid || b.PaidAt == "" {
		t.Errorf("unexpected paid bill: %+v", b)
	}
}

func TestHandler_UpdateBill_PaidToPendingConflicts(t *testing.T) {
	h, e := newTestHandler()
	created, _ := h.svc.CreateBill(context.Background(), &Bill{PatientID: "p1"})
	if _, err := h.svc.MarkAsPaid(context.Background(), created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"status":"pending"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(created.ID)

	err := h.UpdateBill(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusConflict {
		t.Errorf("expected 409, got %v", err)
	}
}

func TestHandler_ListBills_StatusFilter(t *testing.T) {
	h, e := newTestHandler()
	ctx := context.Background()
	b1, _ := h.svc.CreateBill(ctx, &Bill{PatientID: "p1"})
	h.svc.CreateBill(ctx, &Bill{PatientID: "p2"})
	h.svc.MarkAsPaid(ctx, b1.ID)

	req := httptest.NewRequest(http.MethodGet, "/?status=paid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListBills(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var resp pagination.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Total != 1 {
		t.Errorf("expected 1 paid bill, got %d", resp.Total)
	}
}

func TestHandler_ListBills_StatusAllReturnsEverything(t *testing.T) {
	h, e := newTestHandler()
	ctx := context.Background()
	b1, _ := h.svc.CreateBill(ctx, &Bill{PatientID: "p1"})
	h.svc.CreateBill(ctx, &Bill{PatientID: "p2"})
	h.svc.MarkAsPaid(ctx, b1.ID)

	req := httptest.NewRequest(http.MethodGet, "/?status=all", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListBills(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp pagination.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Total != 2 {
		t.Errorf("expected all 2 bills, got %d", resp.Total)
	}
}

func TestHandler_GetBill_NotFound(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.GetBill(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}
