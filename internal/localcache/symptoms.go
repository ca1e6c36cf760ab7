package localcache

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
)

// Symptoms returns every cached record. A failed read or a corrupt value
// yields an empty list so callers can always render.
func (cache *Cache) Symptoms(ctx context.Context) []Record {
	records := make([]Record, 0)
	found, err := cache.Get(ctx, KeySymptoms, &records)
	if err != nil {
		log.Printf("localcache: read symptoms: %v", err)
		return []Record{}
	}
	if !found {
		return []Record{}
	}
	return records
}

// StoreSymptom appends record to the cached list.
func (cache *Cache) StoreSymptom(ctx context.Context, record Record) error {
	return cache.UpdateSymptoms(ctx, func(records []Record) ([]Record, error) {
		return append(records, record), nil
	})
}

func (cache *Cache) ClearSymptoms(ctx context.Context) error {
	return cache.Put(ctx, KeySymptoms, []Record{})
}

// ClearAll empties the symptom list and drops the trigger and common-symptom
// mirrors and the last sync time in one transaction.
func (cache *Cache) ClearAll(ctx context.Context) error {
	return cache.mutate(ctx, "clear", KeySymptoms, func(tx *sql.Tx) error {
		if err := cache.write(ctx, tx, KeySymptoms, []byte("[]")); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM kv WHERE namespace = ? AND key IN (?, ?, ?)`,
			cache.namespace, KeyTriggers, KeyCommonSymptoms, KeyLastSync)
		return err
	})
}

// UpdateSymptoms replaces the cached list with the result of fn, reading and
// writing inside one transaction. A corrupt stored list is reported rather
// than overwritten.
func (cache *Cache) UpdateSymptoms(ctx context.Context, fn func([]Record) ([]Record, error)) error {
	return cache.mutate(ctx, "update", KeySymptoms, func(tx *sql.Tx) error {
		records := make([]Record, 0)
		raw, found, err := cache.readFrom(ctx, tx, KeySymptoms)
		if err != nil {
			return err
		}
		if found {
			if err := json.Unmarshal(raw, &records); err != nil {
				return fmt.Errorf("%w: %v", ErrCorrupt, err)
			}
		}

		updated, err := fn(records)
		if err != nil {
			return err
		}
		if updated == nil {
			updated = []Record{}
		}
		encoded, err := json.Marshal(updated)
		if err != nil {
			return err
		}
		return cache.write(ctx, tx, KeySymptoms, encoded)
	})
}
