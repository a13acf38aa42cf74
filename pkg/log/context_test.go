package log_test

import (
	"context"
	"testing"

	"tidewriter/pkg/log"
)

func TestWithRequestID_RoundTrip(t *testing.T) {
	// Arrange
	ctx := log.WithRequestID(context.Background(), "abc-123")

	// Act
	got := log.RequestIDFromContext(ctx)

	// Assert
	if got != "abc-123" {
		t.Errorf("got %q, want abc-123", got)
	}
}

func TestRequestIDFromContext_Missing_ReturnsEmpty(t *testing.T) {
	// Act
	got := log.RequestIDFromContext(context.Background())

	// Assert
	if got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestWithFields_MergesWithExisting(t *testing.T) {
	// Arrange
	ctx := log.WithFields(context.Background(), "a", 1)
	ctx = log.WithFields(ctx, "b", 2)

	// Act
	fields := log.FieldsFromContext(ctx)

	// Assert
	if fields["a"] != 1 {
		t.Errorf("a: got %v, want 1", fields["a"])
	}
	if fields["b"] != 2 {
		t.Errorf("b: got %v, want 2", fields["b"])
	}
}

func TestWithFields_LaterValueWins(t *testing.T) {
	// Arrange
	ctx := log.WithFields(context.Background(), "season", "spring")
	ctx = log.WithFields(ctx, "season", "summer")

	// Act
	fields := log.FieldsFromContext(ctx)

	// Assert
	if fields["season"] != "summer" {
		t.Errorf("season: got %v, want summer", fields["season"])
	}
}
