package appointment

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

func TestHandler_CreateAppointment(t *testing.T) {
	h, e := newTestHandler()
	body := `{"patientId":"p1","doctorId":"d1","date":"2024-03-10","time":"10:30"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateAppointment(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	var a Appointment
	if err := json.Unmarshal(rec.Body.Bytes(), &a); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if a.ID == "" || a.Status != StatusScheduled {
		t.Errorf("unexpected created appointment: %+v", a)
	}
}

func TestHandler_CreateAppointment_MissingPatient(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"doctorId":"d1","date":"2024-03-10"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreateAppointment(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandler_CompleteThenCancelConflicts(t *testing.T) {
	h, e := newTestHandler()
	created, err := h.svc.CreateAppointment(context.Background(), &Appointment{
		PatientID: "p1", DoctorID: "d1", Date: "2024-03-10",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(created.ID)
	if err := h.CompleteAppointment(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var a Appointment
	json.Unmarshal(rec.Body.Bytes(), &a)
	if a.Status != StatusCompleted {
		t.Errorf("status = %q, want %q", a.Status, StatusCompleted)
	}

	req = httptest.NewRequest(http.MethodPost, "/", nil)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(created.ID)
	cerr := h.CancelAppointment(c)
	he, ok := cerr.(*echo.HTTPError)
	if !ok || he.Code != http.StatusConflict {
		t.Errorf("expected 409, got %v", cerr)
	}
}

func TestHandler_ListAppointments_Filters(t *testing.T) {
	h, e := newTestHandler()
	ctx := context.Background()
	for _, a := range []*Appointment{
		{PatientID: "p1", DoctorID: "d1", Date: "2024-03-10"},
		{PatientID: "p2", DoctorID: "d1", Date: "2024-03-11"},
		{PatientID: "p1", DoctorID: "d2", Date: "2024-03-12"},
	} {
		if _, err := h.svc.CreateAppointment(ctx, a); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/?patient_id=p1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.ListAppointments(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var resp pagination.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Total != 2 {
		t.Errorf("patient_id filter: expected 2, got %d", resp.Total)
	}

	req = httptest.NewRequest(http.MethodGet, "/?from=2024-03-11&to=2024-03-11", nil)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	if err := h.ListAppointments(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Total != 1 {
		t.Errorf("date range filter: expected 1, got %d", resp.Total)
	}
}

func TestHandler_ListAppointments_StatusAllReturnsEverything(t *testing.T) {
	h, e := newTestHandler()
	ctx := context.Background()
	a1, _ := h.svc.CreateAppointment(ctx, &Appointment{PatientID: "p1", DoctorID: "d1", Date: "2024-03-10"})
	h.svc.CreateAppointment(ctx, &Appointment{PatientID: "p2", DoctorID: "d1", Date: "2024-03-11"})
	if _, err := h.svc.Complete(ctx, a1.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/?status=all", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListAppointments(c); err != nil {
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
		t.Errorf("expected all 2 appointments, got %d", resp.Total)
	}
}

func TestHandler_GetAppointment_NotFound(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.GetAppointment(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}
