//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/seo-review-backend/internal/adapter/postgres"
	"github.com/heartmarshall/seo-review-backend/internal/adapter/postgres/metadata"
	"github.com/heartmarshall/seo-review-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/heartmarshall/seo-review-backend/internal/adapter/postgres/user"
	authpkg "github.com/heartmarshall/seo-review-backend/internal/auth"
	"github.com/heartmarshall/seo-review-backend/internal/config"
	"github.com/heartmarshall/seo-review-backend/internal/domain"
	"github.com/heartmarshall/seo-review-backend/internal/importer"
	authsvc "github.com/heartmarshall/seo-review-backend/internal/service/auth"
	"github.com/heartmarshall/seo-review-backend/internal/service/review"
	"github.com/heartmarshall/seo-review-backend/internal/transport/rest"
)

// testServer wraps the full HTTP stack backed by a real PostgreSQL container.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	logger *slog.Logger
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:    "test-secret-at-least-32-chars-long!!",
			JWTIssuer:    "seo-review-test",
			SessionTTL:   time.Hour,
			CookieName:   "session",
			PasswordCost: 4,
		},
		Review: config.ReviewConfig{
			DefaultPageSize: 10,
			MaxPageSize:     200,
			ExportPrefix:    "seo-metadata-export",
		},
		Metrics: config.MetricsConfig{Enabled: false},
		CORS:    config.CORSConfig{AllowedOrigins: "*"},
	}

	jwtMgr := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.SessionTTL)
	authService := authsvc.NewService(logger, userrepo.New(pool), jwtMgr, cfg.Auth)
	reviewService := review.NewService(logger, metadata.New(pool), postgres.NewTxManager(pool), nil, cfg.Review)

	handler := rest.NewRouter(rest.RouterDeps{
		Metadata: rest.NewMetadataHandler(reviewService, logger),
		Auth:     rest.NewAuthHandler(authService, cfg.Auth, logger),
		Health:   rest.NewHealthHandler(pool, nil, "e2e"),
		Tokens:   authService,
		Config:   cfg,
		Logger:   logger,
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool, logger: logger}
}

// importCSV loads rows through the importer, replacing existing records.
func (ts *testServer) importCSV(t *testing.T, csv string) importer.Result {
	t.Helper()
	imp := importer.New(ts.logger, metadata.New(ts.Pool), postgres.NewTxManager(ts.Pool), nil)
	res, err := imp.Run(t.Context(), importer.Config{Replace: true, BatchSize: 2}, strings.NewReader(csv))
	require.NoError(t, err)
	return res
}

// login seeds a reviewer and signs in, returning the bearer token.
func (ts *testServer) login(t *testing.T) (string, domain.User) {
	t.Helper()
	u := testhelper.SeedUser(t, ts.Pool)

	status, body := ts.do(t, http.MethodPost, "/api/auth/login", "",
		map[string]string{"email": u.Email, "password": testhelper.DefaultPassword})
	require.Equal(t, http.StatusOK, status, "login: %v", body)

	token, ok := body["token"].(string)
	require.True(t, ok, "expected token in login response")
	return token, u
}

// do sends a JSON request and decodes a JSON response.
func (ts *testServer) do(t *testing.T, method, path, token string, payload any) (int, map[string]any) {
	t.Helper()

	resp := ts.raw(t, method, path, token, payload)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func (ts *testServer) raw(t *testing.T, method, path, token string, payload any) *http.Response {
	t.Helper()

	var r io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(t.Context(), method, ts.URL+path, r)
	require.NoError(t, err)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	return resp
}
