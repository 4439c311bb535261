package prescription

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

func TestHandler_CreatePrescription(t *testing.T) {
	h, e := newTestHandler()
	body := `{"patientId":"p1","doctorId":"d1","diagnosis":"Sinusitis","medications":[{"name":"Amoxicillin","dosage":"500mg","duration":"7 days"}]}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreatePrescription(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	var p Prescription
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if p.ID == "" || p.Date == "" {
		t.Errorf("unexpected created prescription: %+v", p)
	}
}

func TestHandler_CreatePrescription_MissingDoctor(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"patientId":"p1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreatePrescription(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandler_ListPrescriptions_SearchAndFilter(t *testing.T) {
	h, e := newTestHandler()
	ctx := context.Background()
	h.svc.CreatePrescription(ctx, &Prescription{
		PatientID: "p1", DoctorID: "d1", Diagnosis: "Sinusitis",
		Medications: []Medication{{Name: "Amoxicillin"}},
	})
	h.svc.CreatePrescription(ctx, &Prescription{
		PatientID: "p2", DoctorID: "d1", Diagnosis: "Hypertension",
		Medications: []Medication{{Name: "Lisinopril"}},
	})

	req := httptest.NewRequest(http.MethodGet, "/?q=amoxi", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.ListPrescriptions(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var resp pagination.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Total != 1 {
		t.Errorf("search: expected 1, got %d", resp.Total)
	}

	req = httptest.NewRequest(http.MethodGet, "/?doctor_id=d1", nil)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	if err := h.ListPrescriptions(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Total != 2 {
		t.Errorf("doctor filter: expected 2, got %d", resp.Total)
	}
}

func TestHandler_GetPrescription_NotFound(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.GetPrescription(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}
