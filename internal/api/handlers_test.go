package api

import (
	"testing"
	"time"
)

func TestNewHandlerRequiresDatabase(t *testing.T) {
	handler, err := NewHandler(nil, time.UTC)
	if err == nil || handler != nil {
		t.Fatalf("expected nil handler and error, got %#v (%v)", handler, err)
	}
}

func TestNewHandlerWiresEveryService(t *testing.T) {
	_, handler := newTestApp(t)

	if handler.repositories == nil ||
		handler.symptomService == nil ||
		handler.triggerService == nil ||
		handler.commonSymptomService == nil ||
		handler.medicationService == nil ||
		handler.profileService == nil ||
		handler.saltService == nil ||
		handler.exportService == nil ||
		handler.now == nil ||
		handler.location == nil {
		t.Fatalf("expected every dependency to be wired, got %#v", handler)
	}
}
