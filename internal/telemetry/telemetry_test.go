package telemetry

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestSessionIDIsUUID(t *testing.T) {
	id := SessionID()
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("SessionID() = %q is not a UUID: %v", id, err)
	}
	if SessionID() != id {
		t.Error("SessionID() should be stable for the process")
	}
}

func TestTracerWithoutSetup(t *testing.T) {
	// Without Setup the global provider is a no-op, so spans are safe to
	// create and end.
	_, span := Tracer("test").Start(context.Background(), "test.span")
	defer span.End()
	if span.SpanContext().IsValid() {
		t.Error("span from the default provider should not be recorded")
	}
}

func TestNoopTracer(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "noop.span")
	defer span.End()
	if span.IsRecording() {
		t.Error("NoopTracer span should not record")
	}
}

func TestSetupRejectsBadRatio(t *testing.T) {
	for _, ratio := range []float64{-0.1, 1.5} {
		if _, err := Setup(context.Background(), Options{SampleRatio: ratio}); err == nil {
			t.Errorf("Setup() with ratio %v should fail", ratio)
		}
	}
}

func TestNewResourceCarriesSessionID(t *testing.T) {
	res, err := newResource(context.Background())
	if err != nil {
		t.Fatalf("newResource() error = %v", err)
	}
	found := false
	for _, kv := range res.Attributes() {
		if kv.Key == "session.id" && kv.Value.AsString() == SessionID() {
			found = true
		}
	}
	if !found {
		t.Error("resource should carry session.id")
	}
}
