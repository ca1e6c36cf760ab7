// Package reconcile pushes symptoms written while offline to the remote store.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/terraincognita07/potsy/internal/localcache"
	"github.com/terraincognita07/potsy/internal/models"
)

type LocalStore interface {
	Symptoms(ctx context.Context) []localcache.Record
	UpdateSymptoms(ctx context.Context, fn func([]localcache.Record) ([]localcache.Record, error)) error
	LastSync(ctx context.Context) (time.Time, bool, error)
	SetLastSync(ctx context.Context, at time.Time) error
}

type Remote interface {
	CreateSymptom(ctx context.Context, input models.SymptomInput) (models.Symptom, bool, error)
}

// Invalidator drops memoized reads after records change state.
type Invalidator interface {
	Invalidate(keys ...string)
}

type Report struct {
	RunID         string    `json:"runId"`
	NothingToSync bool      `json:"nothingToSync"`
	Pushed        int       `json:"pushed"`
	Duplicates    int       `json:"duplicates"`
	Failed        int       `json:"failed"`
	LastSync      time.Time `json:"lastSync,omitzero"`
}

type Status struct {
	Pending  int        `json:"pending"`
	Synced   int        `json:"synced"`
	LastSync *time.Time `json:"lastSync"`
}

type Reconciler struct {
	local       LocalStore
	remote      Remote
	invalidator Invalidator
	invalidate  []string
	now         func() time.Time
}

// New builds a Reconciler. keys are passed to invalidator whenever a run marks
// at least one record.
func New(local LocalStore, remote Remote, invalidator Invalidator, keys ...string) *Reconciler {
	return &Reconciler{
		local:       local,
		remote:      remote,
		invalidator: invalidator,
		invalidate:  keys,
		now:         time.Now,
	}
}

// Run pushes every pending record. The remote store dedupes by client id, so a
// record pushed twice is never duplicated there.
func (reconciler *Reconciler) Run(ctx context.Context) (Report, error) {
	report := Report{RunID: ulid.Make().String()}

	pending := make([]localcache.Record, 0)
	for _, record := range reconciler.local.Symptoms(ctx) {
		if record.Pending() {
			pending = append(pending, record)
		}
	}
	if len(pending) == 0 {
		report.NothingToSync = true
		return report, nil
	}

	log.Printf("potsyctl: sync %s: pushing %d records", report.RunID, len(pending))

	accepted := make(map[string]uint, len(pending))
	var pushErr error
	for _, record := range pending {
		remoteSymptom, created, err := reconciler.remote.CreateSymptom(ctx, inputFromRecord(record))
		if err != nil {
			report.Failed++
			pushErr = errors.Join(pushErr, fmt.Errorf("symptom %s: %w", record.ClientID, err))
			continue
		}
		if !created {
			report.Duplicates++
		}
		accepted[record.ClientID] = remoteSymptom.ID
		report.Pushed++
	}

	if len(accepted) > 0 {
		syncedAt := reconciler.now().UTC()
		err := reconciler.local.UpdateSymptoms(ctx, func(records []localcache.Record) ([]localcache.Record, error) {
			for i := range records {
				if !records[i].Pending() {
					continue
				}
				if remoteID, ok := accepted[records[i].ClientID]; ok {
					records[i].MarkSynced(remoteID, syncedAt)
				}
			}
			return records, nil
		})
		if err != nil {
			return report, fmt.Errorf("mark synced records: %w", err)
		}
		reconciler.invalidateQueries()
	}

	if pushErr != nil {
		log.Printf("potsyctl: sync %s: %d pushed, %d failed", report.RunID, report.Pushed, report.Failed)
		return report, &SyncError{
			Operation: "push",
			Pushed:    report.Pushed,
			Failed:    report.Failed,
			Err:       pushErr,
		}
	}

	report.LastSync = reconciler.now().UTC()
	if err := reconciler.local.SetLastSync(ctx, report.LastSync); err != nil {
		return report, fmt.Errorf("record last sync: %w", err)
	}
	log.Printf("potsyctl: sync %s: %d pushed", report.RunID, report.Pushed)
	return report, nil
}

// Prune removes records the remote store has already accepted and returns how
// many were dropped.
func (reconciler *Reconciler) Prune(ctx context.Context) (int, error) {
	removed := 0
	err := reconciler.local.UpdateSymptoms(ctx, func(records []localcache.Record) ([]localcache.Record, error) {
		kept := make([]localcache.Record, 0, len(records))
		for _, record := range records {
			if record.Pending() {
				kept = append(kept, record)
				continue
			}
			removed++
		}
		return kept, nil
	})
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		reconciler.invalidateQueries()
	}
	return removed, nil
}

func (reconciler *Reconciler) Status(ctx context.Context) (Status, error) {
	status := Status{}
	for _, record := range reconciler.local.Symptoms(ctx) {
		if record.Pending() {
			status.Pending++
		} else {
			status.Synced++
		}
	}

	lastSync, ok, err := reconciler.local.LastSync(ctx)
	if err != nil {
		return status, err
	}
	if ok {
		status.LastSync = &lastSync
	}
	return status, nil
}

func (reconciler *Reconciler) invalidateQueries() {
	if reconciler.invalidator == nil || len(reconciler.invalidate) == 0 {
		return
	}
	reconciler.invalidator.Invalidate(reconciler.invalidate...)
}

func inputFromRecord(record localcache.Record) models.SymptomInput {
	severity := record.Severity
	duration := record.Duration
	date := record.Date
	return models.SymptomInput{
		ClientID:            record.ClientID,
		Name:                record.Name,
		Severity:            &severity,
		Duration:            &duration,
		DurationType:        record.DurationType,
		Date:                &date,
		Triggers:            record.Triggers,
		Notes:               record.Notes,
		ReliefMethods:       record.ReliefMethods,
		ReliefEffectiveness: record.ReliefEffectiveness,
	}
}
