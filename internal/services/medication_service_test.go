package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/terraincognita07/potsy/internal/models"
	"gorm.io/gorm"
)

type stubMedicationRepo struct {
	medications map[uint]models.Medication
	nextID      uint
}

func newStubMedicationRepo() *stubMedicationRepo {
	return &stubMedicationRepo{medications: map[uint]models.Medication{}}
}

func (stub *stubMedicationRepo) List() ([]models.Medication, error) {
	result := make([]models.Medication, 0, len(stub.medications))
	for id := uint(1); id <= stub.nextID; id++ {
		if medication, ok := stub.medications[id]; ok {
			result = append(result, medication)
		}
	}
	return result, nil
}

func (stub *stubMedicationRepo) ListActive() ([]models.Medication, error) {
	all, _ := stub.List()
	result := make([]models.Medication, 0, len(all))
	for _, medication := range all {
		if medication.Active {
			result = append(result, medication)
		}
	}
	return result, nil
}

func (stub *stubMedicationRepo) FindByID(id uint) (models.Medication, error) {
	medication, ok := stub.medications[id]
	if !ok {
		return models.Medication{}, gorm.ErrRecordNotFound
	}
	return medication, nil
}

func (stub *stubMedicationRepo) Create(medication *models.Medication) error {
	stub.nextID++
	medication.ID = stub.nextID
	stub.medications[medication.ID] = *medication
	return nil
}

func (stub *stubMedicationRepo) Save(medication *models.Medication) error {
	stub.medications[medication.ID] = *medication
	return nil
}

func (stub *stubMedicationRepo) Delete(id uint) (bool, error) {
	if _, ok := stub.medications[id]; !ok {
		return false, nil
	}
	delete(stub.medications, id)
	return true, nil
}

func strPtr(value string) *string { return &value }

func boolPtr(value bool) *bool { return &value }

func TestMedicationServiceCreateDefaultsActive(t *testing.T) {
	service := NewMedicationService(newStubMedicationRepo())
	start := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

	medication, err := service.Create(MedicationInput{
		Name:      strPtr("Midodrine"),
		Dosage:    strPtr("5mg"),
		Frequency: strPtr("three times daily"),
		TimeOfDay: []string{"morning", "noon"},
		StartDate: &start,
	})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if !medication.Active || medication.ReminderEnabled {
		t.Fatalf("expected active without reminders, got %#v", medication)
	}
	if medication.ReminderTimes == nil {
		t.Fatal("expected reminder times to default to an empty list")
	}
}

func TestMedicationServiceCreateReportsAllMissingFields(t *testing.T) {
	service := NewMedicationService(newStubMedicationRepo())

	_, err := service.Create(MedicationInput{})
	var validationErr *models.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	for _, want := range []string{"name is required", "dosage is required", "frequency is required", "at least one time of day is required", "startDate is required"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in %q", want, err.Error())
		}
	}
}

func TestMedicationServicePartialUpdate(t *testing.T) {
	repo := newStubMedicationRepo()
	service := NewMedicationService(repo)
	start := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

	created, err := service.Create(MedicationInput{
		Name:      strPtr("Fludrocortisone"),
		Dosage:    strPtr("0.1mg"),
		Frequency: strPtr("daily"),
		TimeOfDay: []string{"morning"},
		StartDate: &start,
	})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	updated, err := service.Update(created.ID, MedicationInput{Active: boolPtr(false), Dosage: strPtr("0.2mg")})
	if err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}
	if updated.Active || updated.Dosage != "0.2mg" || updated.Name != "Fludrocortisone" {
		t.Fatalf("unexpected update result %#v", updated)
	}

	active, err := service.List(true)
	if err != nil {
		t.Fatalf("List(active) unexpected error: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("expected no active medications, got %d", len(active))
	}

	before := start.AddDate(0, 0, -1)
	if _, err := service.Update(created.ID, MedicationInput{EndDate: &before}); err == nil {
		t.Fatal("expected end date before start date to be rejected")
	}
}

func TestMedicationServiceNotFound(t *testing.T) {
	service := NewMedicationService(newStubMedicationRepo())

	if _, err := service.Update(7, MedicationInput{}); !errors.Is(err, ErrMedicationNotFound) {
		t.Fatalf("expected ErrMedicationNotFound from Update, got %v", err)
	}
	if err := service.Delete(7); !errors.Is(err, ErrMedicationNotFound) {
		t.Fatalf("expected ErrMedicationNotFound from Delete, got %v", err)
	}
}
