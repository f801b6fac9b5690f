// Package testutil provides test utilities and helpers.
package testutil

import (
	"context"
	"os"
	"sync"
	"testing"

	"helix/internal/corpus"
	"helix/internal/db"
	"helix/internal/query"
)

// TestDB connects to the database named by TEST_DATABASE_URL and runs the
// migrations. The test is skipped when the variable is unset.
func TestDB(t *testing.T) *db.DB {
	t.Helper()

	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("Skipping integration test: TEST_DATABASE_URL not set")
	}

	database, err := db.New(context.Background(), connString)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
	t.Cleanup(database.Close)

	if err := database.RunMigrations(connString); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	return database
}

// LocalService returns a query service over the built-in corpus that answers
// from local templates.
func LocalService(t *testing.T) *query.Service {
	t.Helper()
	c := corpus.Default()
	return query.NewService(c, query.NewLocalProducer(c, nil), query.DefaultRecordLimit, nil)
}

// StubGenerator is a query.Generator returning a fixed completion or error.
type StubGenerator struct {
	Text string
	Err  error

	mu    sync.Mutex
	calls int
}

func (g *StubGenerator) Name() string { return "stub" }

func (g *StubGenerator) Generate(_ context.Context, _, _ string) (string, error) {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()
	return g.Text, g.Err
}

// Calls returns how many times Generate ran.
func (g *StubGenerator) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

// DelegatedService returns a query service over the built-in corpus that
// delegates to gen.
func DelegatedService(t *testing.T, gen query.Generator) *query.Service {
	t.Helper()
	return query.NewService(corpus.Default(), query.NewDelegatedProducer(gen, nil), query.DefaultRecordLimit, nil)
}
