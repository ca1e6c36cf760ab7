package localcache

import (
	"time"

	"github.com/terraincognita07/potsy/internal/models"
)

const (
	KeySymptoms       = "symptoms"
	KeyTriggers       = "triggers"
	KeyCommonSymptoms = "common_symptoms"
	KeyLastSync       = "last_sync"
)

// Record is a symptom as held on the client. SyncedAt and RemoteID are set
// once the remote store has accepted it.
type Record struct {
	models.Symptom
	SyncedAt *time.Time `json:"syncedAt,omitempty"`
	RemoteID *uint      `json:"remoteId,omitempty"`
}

func (record Record) Pending() bool {
	return record.SyncedAt == nil
}

// MarkSynced records acceptance by the remote store under remoteID.
func (record *Record) MarkSynced(remoteID uint, at time.Time) {
	syncedAt := at.UTC()
	record.SyncedAt = &syncedAt
	record.RemoteID = &remoteID
}
