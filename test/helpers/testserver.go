package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"yadtamar_backend/internal/app"
	"yadtamar_backend/internal/auth"
	"yadtamar_backend/internal/config"
	"yadtamar_backend/internal/email"
	"yadtamar_backend/internal/storage"

	"github.com/gin-gonic/gin"
)

const testJWTSecret = "integration-secret"

// RecordingDispatcher keeps every dispatched email for assertions.
type RecordingDispatcher struct {
	mu       sync.Mutex
	messages []email.Message
}

func (d *RecordingDispatcher) Dispatch(_ context.Context, msg email.Message) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.messages = append(d.messages, msg)
	return nil
}

func (d *RecordingDispatcher) Messages() []email.Message {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]email.Message(nil), d.messages...)
}

func (d *RecordingDispatcher) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.messages = nil
}

type TestServer struct {
	Server *httptest.Server
	DB     *TestDatabase
	Mailer *RecordingDispatcher
	Tokens *auth.TokenManager
}

// NewTestServer builds the real router on top of db.
func NewTestServer(db *TestDatabase, uploadDir string) (*TestServer, error) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = testJWTSecret
	cfg.JWT.TTL = 60
	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = uploadDir
	cfg.Storage.BaseURL = "/uploads"
	cfg.Storage.MaxSize = 1 << 20

	store, err := storage.NewStorage(storage.ConfigFromApp(cfg))
	if err != nil {
		return nil, err
	}

	mailer := &RecordingDispatcher{}
	router := app.SetupRouter(cfg, &app.Deps{
		Gorm:    db.Gorm,
		Pool:    db.Pool,
		SQLX:    db.SQLX,
		Storage: store,
		Mailer:  mailer,
	})

	return &TestServer{
		Server: httptest.NewServer(router),
		DB:     db,
		Mailer: mailer,
		Tokens: auth.NewTokenManager(testJWTSecret, time.Hour),
	}, nil
}

func (ts *TestServer) Close() {
	ts.Server.Close()
}

// TokenFor issues a bearer token without going through signin.
func (ts *TestServer) TokenFor(t *testing.T, userID, role string) string {
	t.Helper()
	token, err := ts.Tokens.GenerateToken(userID, role)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	return token
}

func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()
	url := ts.Server.URL + path

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("failed to send request: %v", err)
	}
	defer res.Body.Close()

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return res, string(resBodyBytes)
}
