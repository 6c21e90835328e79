package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"

	"yadtamar_backend/test/helpers"
)

var (
	globalTestServer *helpers.TestServer
	globalTestDB     *helpers.TestDatabase
	setupErr         error
	serverOnce       sync.Once
	uploadDir        string
)

// GetTestServer starts Postgres and the router on first use and resets the
// tables before every test. Integration tests are skipped with -short or
// when no database can be started.
func GetTestServer(t *testing.T) *helpers.TestServer {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test skipped in -short mode")
	}

	serverOnce.Do(func() {
		log.Println("--- [GetTestServer] starting test database ---")
		globalTestDB, setupErr = helpers.NewTestDatabase(context.Background())
		if setupErr != nil {
			return
		}
		globalTestServer, setupErr = helpers.NewTestServer(globalTestDB, uploadDir)
	})
	if setupErr != nil {
		t.Skipf("integration database unavailable: %v", setupErr)
	}

	globalTestDB.Reset(t)
	globalTestServer.Mailer.Reset()
	return globalTestServer
}

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "yadtamar-uploads-*")
	if err != nil {
		log.Fatalf("failed to create upload dir: %v", err)
	}
	uploadDir = dir

	code := m.Run()

	if globalTestServer != nil {
		globalTestServer.Close()
	}
	if globalTestDB != nil {
		globalTestDB.Close(context.Background())
	}
	os.RemoveAll(dir)
	os.Exit(code)
}
