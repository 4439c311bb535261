package patient

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/hms/hms/internal/platform/memstore"
)

func testOpts() memstore.Options {
	n := 0
	return memstore.Options{
		NewID: func() string { n++; return fmt.Sprintf("p%d", n) },
		Now:   func() time.Time { return time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC) },
	}
}

func newTestService(seed ...*Patient) *Service {
	return NewService(NewMemRepo(testOpts(), seed))
}

func TestCreatePatient_AssignsIDAndDefaults(t *testing.T) {
	svc := newTestService()
	p, err := svc.CreatePatient(context.Background(), &Patient{Name: "John Doe"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID == "" {
		t.Error("expected id to be assigned")
	}
	if p.MedicalHistory == nil || len(p.MedicalHistory) != 0 {
		t.Errorf("expected empty medical history, got %v", p.MedicalHistory)
	}
	if p.CreatedAt.IsZero() {
		t.Error("expected createdAt stamp")
	}
}

func TestCreatePatient_RequiresName(t *testing.T) {
	svc := newTestService()
	if _, err := svc.CreatePatient(context.Background(), &Patient{Name: "  "}); err == nil {
		t.Error("expected error for missing name")
	}
}

func TestCreateThenGet_RoundTrips(t *testing.T) {
	svc := newTestService()
	created, err := svc.CreatePatient(context.Background(), &Patient{
		Name:           "Jane Roe",
		Email:          "jane@example.com",
		MedicalHistory: []string{"Asthma"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := svc.GetPatient(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(created, got) {
		t.Errorf("round trip mismatch: created %+v, got %+v", created, got)
	}
}

func TestGetPatient_NotFound(t *testing.T) {
	svc := newTestService()
	_, err := svc.GetPatient(context.Background(), "missing")
	if !errors.Is(err, memstore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListPatients_InsertionOrderAndIdempotent(t *testing.T) {
	svc := newTestService()
	for _, name := range []string{"A", "B", "C"} {
		if _, err := svc.CreatePatient(context.Background(), &Patient{Name: name}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	first, err := svc.ListPatients(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.ListPatients(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != 3 {
		t.Fatalf("expected 3 patients, got %d", len(first))
	}
	for i, name := range []string{"A", "B", "C"} {
		if first[i].Name != name {
			t.Errorf("expected %s at position %d, got %s", name, i, first[i].Name)
		}
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical results for consecutive lists")
	}
}

func TestListPatients_ReturnsCopies(t *testing.T) {
	svc := newTestService()
	created, _ := svc.CreatePatient(context.Background(), &Patient{Name: "Original", MedicalHistory: []string{"Flu"}})

	items, _ := svc.ListPatients(context.Background())
	items[0].Name = "Mutated"
	items[0].MedicalHistory[0] = "Mutated"

	got, _ := svc.GetPatient(context.Background(), created.ID)
	if got.Name != "Original" || got.MedicalHistory[0] != "Flu" {
		t.Error("caller mutation leaked into the store")
	}
}

func TestUpdatePatient_PartialMerge(t *testing.T) {
	svc := newTestService()
	created, _ := svc.CreatePatient(context.Background(), &Patient{Name: "Jane", Email: "jane@example.com", Phone: "555-0100"})

	email := "jane.roe@example.com"
	updated, err := svc.UpdatePatient(context.Background(), created.ID, Update{Email: &email})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Email != email {
		t.Errorf("expected updated email, got %s", updated.Email)
	}
	if updated.Name != "Jane" || updated.Phone != "555-0100" {
		t.Error("untouched fields changed")
	}
	if updated.UpdatedAt == nil {
		t.Error("expected updatedAt stamp")
	}
}

func TestUpdatePatient_NotFound(t *testing.T) {
	svc := newTestService()
	name := "X"
	_, err := svc.UpdatePatient(context.Background(), "missing", Update{Name: &name})
	if !errors.Is(err, memstore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdatePatient_RejectsEmptyName(t *testing.T) {
	svc := newTestService()
	created, _ := svc.CreatePatient(context.Background(), &Patient{Name: "Jane"})
	empty := ""
	if _, err := svc.UpdatePatient(context.Background(), created.ID, Update{Name: &empty}); err == nil {
		t.Error("expected error for empty name")
	}
}

func TestDeletePatient(t *testing.T) {
	svc := newTestService()
	created, _ := svc.CreatePatient(context.Background(), &Patient{Name: "Jane"})

	if err := svc.DeletePatient(context.Background(), created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.GetPatient(context.Background(), created.ID); !errors.Is(err, memstore.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	items, _ := svc.ListPatients(context.Background())
	if len(items) != 0 {
		t.Errorf("expected empty collection, got %d records", len(items))
	}
}

func TestDeletePatient_NotFound(t *testing.T) {
	svc := newTestService()
	if err := svc.DeletePatient(context.Background(), "missing"); !errors.Is(err, memstore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSearchPatients(t *testing.T) {
	svc := newTestService()
	svc.CreatePatient(context.Background(), &Patient{Name: "Sarah Connor", Email: "sarah@example.com", Phone: "555-0101"})
	svc.CreatePatient(context.Background(), &Patient{Name: "Kyle Reese", Email: "kyle@example.com", Phone: "555-0202"})

	got, err := svc.SearchPatients(context.Background(), "SARAH")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Sarah Connor" {
		t.Errorf("unexpected search result: %v", got)
	}

	got, _ = svc.SearchPatients(context.Background(), "0202")
	if len(got) != 1 || got[0].Name != "Kyle Reese" {
		t.Errorf("expected phone match, got %v", got)
	}

	got, _ = svc.SearchPatients(context.Background(), "")
	if len(got) != 2 {
		t.Errorf("expected full collection for empty query, got %d", len(got))
	}
}

func TestSeededRepoKeepsIDsAndOrder(t *testing.T) {
	seed := []*Patient{
		{ID: "fixture-1", Name: "First"},
		{ID: "fixture-2", Name: "Second"},
	}
	svc := NewService(NewMemRepo(testOpts(), seed))
	items, err := svc.ListPatients(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 || items[0].ID != "fixture-1" || items[1].ID != "fixture-2" {
		t.Errorf("unexpected seeded collection: %v", items)
	}
}
