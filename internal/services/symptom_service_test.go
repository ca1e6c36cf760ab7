package services

import (
	"errors"
	"testing"
	"time"

	"github.com/terraincognita07/potsy/internal/analytics"
	"github.com/terraincognita07/potsy/internal/models"
	"gorm.io/gorm"
)

type stubSymptomRepo struct {
	symptoms  []models.Symptom
	createErr error
	listErr   error
	creates   int
}

func (stub *stubSymptomRepo) List() ([]models.Symptom, error) {
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	return append([]models.Symptom(nil), stub.symptoms...), nil
}

func (stub *stubSymptomRepo) ListBetween(from time.Time, to time.Time) ([]models.Symptom, error) {
	result := make([]models.Symptom, 0)
	for _, symptom := range stub.symptoms {
		if !symptom.Date.Before(from) && !symptom.Date.After(to) {
			result = append(result, symptom)
		}
	}
	return result, nil
}

func (stub *stubSymptomRepo) FindByID(id uint) (models.Symptom, error) {
	for _, symptom := range stub.symptoms {
		if symptom.ID == id {
			return symptom, nil
		}
	}
	return models.Symptom{}, gorm.ErrRecordNotFound
}

func (stub *stubSymptomRepo) FindByClientID(clientID string) (models.Symptom, error) {
	for _, symptom := range stub.symptoms {
		if symptom.ClientID == clientID {
			return symptom, nil
		}
	}
	return models.Symptom{}, gorm.ErrRecordNotFound
}

func (stub *stubSymptomRepo) Create(symptom *models.Symptom) error {
	stub.creates++
	if stub.createErr != nil {
		return stub.createErr
	}
	symptom.ID = uint(len(stub.symptoms) + 1)
	stub.symptoms = append(stub.symptoms, *symptom)
	return nil
}

func (stub *stubSymptomRepo) Delete(id uint) (bool, error) {
	for index, symptom := range stub.symptoms {
		if symptom.ID == id {
			stub.symptoms = append(stub.symptoms[:index], stub.symptoms[index+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func validSymptomInput() models.SymptomInput {
	severity := 7
	duration := 2.0
	return models.SymptomInput{
		Name:         "Headache",
		Severity:     &severity,
		Duration:     &duration,
		DurationType: models.DurationHours,
		Triggers:     []string{"Stress"},
	}
}

func TestSymptomServiceCreateAssignsIdentifiers(t *testing.T) {
	repo := &stubSymptomRepo{}
	service := NewSymptomService(repo)

	symptom, created, err := service.Create(validSymptomInput(), time.Now())
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if !created || symptom.ID == 0 || symptom.ClientID == "" {
		t.Fatalf("expected created symptom with ids, got created=%v %#v", created, symptom)
	}
}

func TestSymptomServiceCreateDedupesByClientID(t *testing.T) {
	repo := &stubSymptomRepo{}
	service := NewSymptomService(repo)

	input := validSymptomInput()
	input.ClientID = "9d7a3c52-1c7e-4a55-8f27-6f1f0f5d0c11"

	first, created, err := service.Create(input, time.Now())
	if err != nil || !created {
		t.Fatalf("first Create() = created %v, err %v", created, err)
	}
	second, created, err := service.Create(input, time.Now())
	if err != nil {
		t.Fatalf("second Create() unexpected error: %v", err)
	}
	if created || second.ID != first.ID {
		t.Fatalf("expected existing symptom %d to be returned, got created=%v id=%d", first.ID, created, second.ID)
	}
	if repo.creates != 1 {
		t.Fatalf("expected one insert, got %d", repo.creates)
	}
}

func TestSymptomServiceCreateRejectsInvalidInput(t *testing.T) {
	repo := &stubSymptomRepo{}
	service := NewSymptomService(repo)

	input := validSymptomInput()
	severity := 0
	input.Severity = &severity

	_, _, err := service.Create(input, time.Now())
	var validationErr *models.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if repo.creates != 0 {
		t.Fatal("expected repository not to be called")
	}
}

func TestSymptomServiceCreateWrapsRepositoryFailure(t *testing.T) {
	service := NewSymptomService(&stubSymptomRepo{createErr: errors.New("disk full")})

	_, _, err := service.Create(validSymptomInput(), time.Now())
	if !errors.Is(err, ErrCreateSymptomFailed) {
		t.Fatalf("expected ErrCreateSymptomFailed, got %v", err)
	}
}

func TestSymptomServiceGetAndDeleteNotFound(t *testing.T) {
	service := NewSymptomService(&stubSymptomRepo{})

	if _, err := service.Get(42); !errors.Is(err, ErrSymptomNotFound) {
		t.Fatalf("expected ErrSymptomNotFound from Get, got %v", err)
	}
	if err := service.Delete(42); !errors.Is(err, ErrSymptomNotFound) {
		t.Fatalf("expected ErrSymptomNotFound from Delete, got %v", err)
	}
}

func TestSymptomServiceListRangeRejectsInvalidDates(t *testing.T) {
	service := NewSymptomService(&stubSymptomRepo{})

	if _, err := service.ListRange("yesterday", "2026-01-01", time.UTC); !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
}

func TestSymptomServiceInsights(t *testing.T) {
	now := time.Date(2026, time.April, 15, 12, 0, 0, 0, time.UTC)
	repo := &stubSymptomRepo{symptoms: []models.Symptom{
		{ID: 1, Name: "Dizziness", Severity: 8, Date: now.Add(-time.Hour), Triggers: []string{"Heat"}},
		{ID: 2, Name: "Dizziness", Severity: 2, Date: now.AddDate(0, 0, -40)},
	}}
	service := NewSymptomService(repo)

	insights, err := service.Insights(analytics.PeriodMonth, now, time.UTC)
	if err != nil {
		t.Fatalf("Insights() unexpected error: %v", err)
	}
	if insights.Total != 1 || insights.Bands.Severe != 1 || len(insights.TopTriggers) != 1 {
		t.Fatalf("unexpected insights %+v", insights)
	}

	failing := NewSymptomService(&stubSymptomRepo{listErr: errors.New("boom")})
	if _, err := failing.Insights(analytics.PeriodWeek, now, time.UTC); !errors.Is(err, ErrListSymptomsFailed) {
		t.Fatalf("expected ErrListSymptomsFailed, got %v", err)
	}
}
