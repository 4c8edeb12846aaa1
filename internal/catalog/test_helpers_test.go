package catalog

import (
	"context"
	"io"
	"log/slog"
	"testing"
)

var drivers = []string{DriverCGO, DriverPureGo}

// createTestStore opens a seeded catalog that is closed when the test ends.
func createTestStore(t *testing.T, driver string) *Store {
	t.Helper()
	s, err := Open(context.Background(), Options{Driver: driver, Logger: discardLogger()})
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// openWithSeed opens a catalog from an alternate seed document.
func openWithSeed(t *testing.T, seed string) (*Store, error) {
	t.Helper()
	s, err := Open(context.Background(), Options{Logger: discardLogger(), seed: []byte(seed)})
	if err == nil {
		t.Cleanup(func() { s.Close() })
	}
	return s, err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
