// Package offline routes symptom writes to the local cache or the remote
// store depending on the offline setting, and serves the merged read used by
// every view.
package offline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/potsy/internal/localcache"
	"github.com/terraincognita07/potsy/internal/models"
	"golang.org/x/text/cases"
)

var (
	ErrInvalidSymptom = errors.New("could not save symptom")
	ErrLocalWrite     = errors.New("could not save symptom locally")
	ErrRemoteWrite    = errors.New("could not save symptom to the server")
)

type Destination string

const (
	DestinationLocal  Destination = "local"
	DestinationRemote Destination = "remote"
)

type ModeSource interface {
	OfflineMode() bool
}

type LocalStore interface {
	StoreSymptom(ctx context.Context, record localcache.Record) error
	Symptoms(ctx context.Context) []localcache.Record
	Triggers(ctx context.Context) ([]string, error)
	SetTriggers(ctx context.Context, names []string) error
	CommonSymptoms(ctx context.Context) ([]string, error)
	SetCommonSymptoms(ctx context.Context, names []string) error
	AddTriggerNames(ctx context.Context, names []string) ([]string, error)
}

type RemoteStore interface {
	CreateSymptom(ctx context.Context, input models.SymptomInput) (models.Symptom, bool, error)
	ListSymptoms(ctx context.Context) ([]models.Symptom, error)
	ListTriggers(ctx context.Context) ([]models.CatalogItem, error)
	ListCommonSymptoms(ctx context.Context) ([]models.CatalogItem, error)
	EnsureTrigger(ctx context.Context, name string) (models.CatalogItem, error)
}

type Result struct {
	Symptom     models.Symptom
	Destination Destination
}

// Entry is one row of the merged symptom read. Pending entries exist only in
// the local cache.
type Entry struct {
	models.Symptom
	Pending bool `json:"pending"`
}

type Writer struct {
	mode     ModeSource
	local    LocalStore
	remote   RemoteStore
	queries  *QueryCache
	notifier Notifier
	now      func() time.Time

	idMu        sync.Mutex
	lastLocalID int64
}

func NewWriter(mode ModeSource, local LocalStore, remote RemoteStore, queries *QueryCache, notifier Notifier) *Writer {
	if queries == nil {
		queries = NewQueryCache(0, 0)
	}
	if notifier == nil {
		notifier = discardNotifier{}
	}
	return &Writer{
		mode:     mode,
		local:    local,
		remote:   remote,
		queries:  queries,
		notifier: notifier,
		now:      time.Now,
	}
}

func (writer *Writer) Queries() *QueryCache {
	return writer.queries
}

// Submit validates input once and stores it in exactly one place: the local
// cache when offline mode is on, the remote store otherwise.
func (writer *Writer) Submit(ctx context.Context, input models.SymptomInput) (Result, error) {
	if strings.TrimSpace(input.ClientID) == "" {
		input.ClientID = uuid.NewString()
	}
	if err := input.Validate(); err != nil {
		err = fmt.Errorf("%w: %w", ErrInvalidSymptom, err)
		writer.notifyFailure(err)
		return Result{}, err
	}

	if writer.mode.OfflineMode() {
		return writer.submitLocal(ctx, input)
	}
	return writer.submitRemote(ctx, input)
}

func (writer *Writer) submitLocal(ctx context.Context, input models.SymptomInput) (Result, error) {
	symptom := input.ToSymptom(writer.now())
	symptom.ID = writer.nextLocalID()
	symptom.CreatedAt = writer.now().UTC()

	if err := writer.local.StoreSymptom(ctx, localcache.Record{Symptom: symptom}); err != nil {
		err = fmt.Errorf("%w: %w", ErrLocalWrite, err)
		writer.notifyFailure(err)
		return Result{}, err
	}
	writer.queries.Invalidate(QuerySymptoms)

	if len(symptom.Triggers) > 0 {
		added, err := writer.local.AddTriggerNames(ctx, symptom.Triggers)
		if err != nil {
			log.Printf("potsyctl: record trigger names locally: %v", err)
		} else if len(added) > 0 {
			writer.queries.Invalidate(QueryTriggers)
		}
	}

	writer.notifier.Notify(Notice{
		Kind:        NoticeSuccess,
		Title:       "Saved locally, will sync",
		Description: fmt.Sprintf("%s (severity %d) is stored on this device.", symptom.Name, symptom.Severity),
	})
	return Result{Symptom: symptom, Destination: DestinationLocal}, nil
}

func (writer *Writer) submitRemote(ctx context.Context, input models.SymptomInput) (Result, error) {
	symptom, _, err := writer.remote.CreateSymptom(ctx, input)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrRemoteWrite, err)
		writer.notifyFailure(err)
		return Result{}, err
	}
	writer.queries.Invalidate(QuerySymptoms)

	if writer.ensureRemoteTriggers(ctx, symptom.Triggers) {
		writer.queries.Invalidate(QueryTriggers)
	}

	writer.notifier.Notify(Notice{
		Kind:        NoticeSuccess,
		Title:       "Symptom added",
		Description: fmt.Sprintf("%s (severity %d) was saved.", symptom.Name, symptom.Severity),
	})
	return Result{Symptom: symptom, Destination: DestinationRemote}, nil
}

// ensureRemoteTriggers creates the trigger names the remote catalog lacks.
// Failures are logged; the symptom itself is already stored.
func (writer *Writer) ensureRemoteTriggers(ctx context.Context, names []string) bool {
	if len(names) == 0 {
		return false
	}
	items, err := writer.remote.ListTriggers(ctx)
	if err != nil {
		log.Printf("potsyctl: list remote triggers: %v", err)
		return false
	}

	fold := cases.Fold()
	known := make(map[string]struct{}, len(items))
	for _, item := range items {
		known[fold.String(strings.TrimSpace(item.Name))] = struct{}{}
	}

	created := false
	for _, name := range names {
		key := fold.String(strings.TrimSpace(name))
		if _, ok := known[key]; ok {
			continue
		}
		if _, err := writer.remote.EnsureTrigger(ctx, name); err != nil {
			log.Printf("potsyctl: create trigger %q: %v", name, err)
			continue
		}
		known[key] = struct{}{}
		created = true
	}
	return created
}

func (writer *Writer) notifyFailure(err error) {
	writer.notifier.Notify(Notice{
		Kind:        NoticeError,
		Title:       "Could not save symptom",
		Description: err.Error(),
	})
}

// nextLocalID hands out UnixMilli placeholders that strictly increase within
// the process.
func (writer *Writer) nextLocalID() uint {
	writer.idMu.Lock()
	defer writer.idMu.Unlock()

	id := writer.now().UnixMilli()
	if id <= writer.lastLocalID {
		id = writer.lastLocalID + 1
	}
	writer.lastLocalID = id
	return uint(id)
}

// Symptoms returns the merged view ordered by date. Offline mode reads the
// local cache only. Online it combines remote records with local pending
// ones, deduplicated by client id, and falls back to the local cache when the
// remote store cannot be reached.
func (writer *Writer) Symptoms(ctx context.Context) []Entry {
	if cached, ok := writer.queries.Get(QuerySymptoms); ok {
		if entries, ok := cached.([]Entry); ok {
			return entries
		}
	}

	records := writer.local.Symptoms(ctx)
	var entries []Entry
	if writer.mode.OfflineMode() {
		entries = localEntries(records)
	} else if remote, err := writer.remote.ListSymptoms(ctx); err != nil {
		log.Printf("potsyctl: list remote symptoms, showing local records: %v", err)
		entries = localEntries(records)
	} else {
		entries = mergeEntries(remote, records)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
	writer.queries.Set(QuerySymptoms, entries)
	return entries
}

// Triggers lists trigger names, mirroring the remote catalog into the local
// cache whenever it is reachable.
func (writer *Writer) Triggers(ctx context.Context) ([]string, error) {
	return writer.catalog(ctx, QueryTriggers, writer.remote.ListTriggers, writer.local.Triggers, writer.local.SetTriggers)
}

// CommonSymptoms lists the symptom name suggestions the same way.
func (writer *Writer) CommonSymptoms(ctx context.Context) ([]string, error) {
	return writer.catalog(ctx, QueryCommonSymptoms, writer.remote.ListCommonSymptoms, writer.local.CommonSymptoms, writer.local.SetCommonSymptoms)
}

func (writer *Writer) catalog(
	ctx context.Context,
	key string,
	listRemote func(context.Context) ([]models.CatalogItem, error),
	readLocal func(context.Context) ([]string, error),
	mirror func(context.Context, []string) error,
) ([]string, error) {
	if cached, ok := writer.queries.Get(key); ok {
		if names, ok := cached.([]string); ok {
			return names, nil
		}
	}

	if !writer.mode.OfflineMode() {
		items, err := listRemote(ctx)
		if err == nil {
			names := make([]string, 0, len(items))
			for _, item := range items {
				names = append(names, item.Name)
			}
			if err := mirror(ctx, names); err != nil {
				log.Printf("potsyctl: mirror %s: %v", key, err)
			}
			writer.queries.Set(key, names)
			return names, nil
		}
		log.Printf("potsyctl: list remote %s, showing local names: %v", key, err)
	}

	names, err := readLocal(ctx)
	if err != nil {
		return nil, err
	}
	writer.queries.Set(key, names)
	return names, nil
}

// SymptomsOf strips the pending flag for analytics.
func SymptomsOf(entries []Entry) []models.Symptom {
	symptoms := make([]models.Symptom, 0, len(entries))
	for _, entry := range entries {
		symptoms = append(symptoms, entry.Symptom)
	}
	return symptoms
}

func localEntries(records []localcache.Record) []Entry {
	entries := make([]Entry, 0, len(records))
	for _, record := range records {
		symptom := record.Symptom
		if record.RemoteID != nil {
			symptom.ID = *record.RemoteID
		}
		entries = append(entries, Entry{Symptom: symptom, Pending: record.Pending()})
	}
	return entries
}

func mergeEntries(remote []models.Symptom, records []localcache.Record) []Entry {
	entries := make([]Entry, 0, len(remote)+len(records))
	seen := make(map[string]struct{}, len(remote))
	for _, symptom := range remote {
		if symptom.ClientID != "" {
			seen[symptom.ClientID] = struct{}{}
		}
		entries = append(entries, Entry{Symptom: symptom})
	}
	for _, record := range records {
		if !record.Pending() {
			continue
		}
		if _, ok := seen[record.ClientID]; ok {
			continue
		}
		entries = append(entries, Entry{Symptom: record.Symptom, Pending: true})
	}
	return entries
}
