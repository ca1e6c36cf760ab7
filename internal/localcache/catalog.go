package localcache

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

func (cache *Cache) Triggers(ctx context.Context) ([]string, error) {
	return cache.names(ctx, KeyTriggers)
}

func (cache *Cache) SetTriggers(ctx context.Context, names []string) error {
	return cache.Put(ctx, KeyTriggers, dedupeNames(nil, names))
}

func (cache *Cache) CommonSymptoms(ctx context.Context) ([]string, error) {
	return cache.names(ctx, KeyCommonSymptoms)
}

func (cache *Cache) SetCommonSymptoms(ctx context.Context, names []string) error {
	return cache.Put(ctx, KeyCommonSymptoms, dedupeNames(nil, names))
}

// AddTriggerNames appends the names not already cached, comparing
// case-insensitively, and returns the ones it added.
func (cache *Cache) AddTriggerNames(ctx context.Context, names []string) ([]string, error) {
	added := make([]string, 0)
	err := cache.mutate(ctx, "update", KeyTriggers, func(tx *sql.Tx) error {
		existing := make([]string, 0)
		raw, found, err := cache.readFrom(ctx, tx, KeyTriggers)
		if err != nil {
			return err
		}
		if found {
			if err := json.Unmarshal(raw, &existing); err != nil {
				return fmt.Errorf("%w: %v", ErrCorrupt, err)
			}
		}

		merged := dedupeNames(existing, names)
		added = append(added, merged[len(existing):]...)
		if len(added) == 0 {
			return nil
		}
		encoded, err := json.Marshal(merged)
		if err != nil {
			return err
		}
		return cache.write(ctx, tx, KeyTriggers, encoded)
	})
	if err != nil {
		return nil, err
	}
	return added, nil
}

func (cache *Cache) names(ctx context.Context, key string) ([]string, error) {
	names := make([]string, 0)
	if _, err := cache.Get(ctx, key, &names); err != nil {
		return nil, err
	}
	return names, nil
}

// dedupeNames keeps existing as is and appends each trimmed candidate whose
// folded form is new.
func dedupeNames(existing []string, candidates []string) []string {
	fold := cases.Fold()
	seen := make(map[string]struct{}, len(existing)+len(candidates))
	merged := make([]string, 0, len(existing)+len(candidates))
	for _, name := range existing {
		seen[fold.String(strings.TrimSpace(name))] = struct{}{}
		merged = append(merged, name)
	}
	for _, name := range candidates {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		key := fold.String(trimmed)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		merged = append(merged, trimmed)
	}
	return merged
}
