package db

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/terraincognita07/potsy/internal/models"
	"gorm.io/gorm"
)

func newRepositoriesForTest(t *testing.T) *Repositories {
	t.Helper()
	return NewRepositories(openSQLiteForTest(t, filepath.Join(t.TempDir(), "potsy-repos.db")))
}

func TestSymptomRepositoryListBetweenIsInclusive(t *testing.T) {
	repos := newRepositoriesForTest(t)

	base := time.Date(2026, time.May, 10, 12, 0, 0, 0, time.UTC)
	for index, offset := range []time.Duration{-time.Hour, 0, 24 * time.Hour, 48 * time.Hour} {
		symptom := models.Symptom{
			ClientID:     fmt.Sprintf("client-%d", index),
			Name:         "Dizziness",
			Severity:     4,
			Duration:     10,
			DurationType: models.DurationMinutes,
			Date:         base.Add(offset),
			Triggers:     []string{},
		}
		if err := repos.Symptoms.Create(&symptom); err != nil {
			t.Fatalf("create symptom: %v", err)
		}
	}

	symptoms, err := repos.Symptoms.ListBetween(base, base.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("list between: %v", err)
	}
	if len(symptoms) != 2 {
		t.Fatalf("expected 2 symptoms on the inclusive bounds, got %d", len(symptoms))
	}
	if !symptoms[0].Date.Equal(base) {
		t.Fatalf("expected ascending order, got first date %v", symptoms[0].Date)
	}
}

func TestSymptomRepositoryClientIDIsUnique(t *testing.T) {
	repos := newRepositoriesForTest(t)

	first := models.Symptom{ClientID: "same", Name: "Fatigue", Severity: 5, Duration: 1, DurationType: models.DurationDays, Date: time.Now()}
	if err := repos.Symptoms.Create(&first); err != nil {
		t.Fatalf("create first: %v", err)
	}
	second := first
	second.ID = 0
	if err := repos.Symptoms.Create(&second); err == nil {
		t.Fatal("expected unique violation on duplicate client id")
	}

	found, err := repos.Symptoms.FindByClientID("same")
	if err != nil {
		t.Fatalf("find by client id: %v", err)
	}
	if found.ID != first.ID {
		t.Fatalf("expected id %d, got %d", first.ID, found.ID)
	}
}

func TestSymptomRepositoryDeleteReportsMissing(t *testing.T) {
	repos := newRepositoriesForTest(t)

	deleted, err := repos.Symptoms.Delete(999)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted {
		t.Fatal("expected no row to be deleted")
	}
	if _, err := repos.Symptoms.FindByID(999); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record not found, got %v", err)
	}
}

func TestCatalogRepositoryFindOrCreateDedupesByKey(t *testing.T) {
	repos := newRepositoriesForTest(t)

	created, isNew, err := repos.Triggers.FindOrCreate(models.CatalogItem{Name: "Stress", NameKey: "stress"})
	if err != nil || !isNew {
		t.Fatalf("expected new trigger, got new=%v err=%v", isNew, err)
	}
	again, isNew, err := repos.Triggers.FindOrCreate(models.CatalogItem{Name: "stress", NameKey: "stress"})
	if err != nil {
		t.Fatalf("find or create: %v", err)
	}
	if isNew || again.ID != created.ID || again.Name != "Stress" {
		t.Fatalf("expected existing trigger %#v, got %#v (new=%v)", created, again, isNew)
	}

	count, err := repos.CommonSymptoms.Count()
	if err != nil {
		t.Fatalf("count common symptoms: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected common symptoms table to be independent, got %d", count)
	}
}

func TestSingletonRepositoriesUpsert(t *testing.T) {
	repos := newRepositoriesForTest(t)

	if _, err := repos.Profile.Find(); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected missing profile, got %v", err)
	}
	profile := models.UserProfile{Name: "Alex", Conditions: []string{"POTS"}}
	if err := repos.Profile.Save(&profile); err != nil {
		t.Fatalf("save profile: %v", err)
	}
	profile.Diagnosis = "POTS"
	if err := repos.Profile.Save(&profile); err != nil {
		t.Fatalf("update profile: %v", err)
	}
	loaded, err := repos.Profile.Find()
	if err != nil {
		t.Fatalf("find profile: %v", err)
	}
	if loaded.Name != "Alex" || loaded.Diagnosis != "POTS" {
		t.Fatalf("unexpected profile %#v", loaded)
	}

	recommendation := models.DefaultSaltRecommendation()
	recommendation.DailyTarget = 4
	if err := repos.Salt.SaveRecommendation(&recommendation); err != nil {
		t.Fatalf("save recommendation: %v", err)
	}
	stored, err := repos.Salt.FindRecommendation()
	if err != nil {
		t.Fatalf("find recommendation: %v", err)
	}
	if stored.DailyTarget != 4 || stored.MinDailyAmount != models.DefaultSaltMinDailyAmount {
		t.Fatalf("unexpected recommendation %#v", stored)
	}
}

func TestMedicationRepositoryListActive(t *testing.T) {
	repos := newRepositoriesForTest(t)

	for _, active := range []bool{true, false, true} {
		medication := models.Medication{Name: "Fludrocortisone", Dosage: "0.1mg", Frequency: "daily", StartDate: time.Now(), Active: active}
		if err := repos.Medications.Create(&medication); err != nil {
			t.Fatalf("create medication: %v", err)
		}
	}

	active, err := repos.Medications.ListActive()
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("expected 2 active medications, got %d", len(active))
	}
}
