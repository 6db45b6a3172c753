// Package testserver runs the full taskboard stack on an in-memory database
// for end-to-end tests.
package testserver

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rpggio/taskboard/internal/app"
	"github.com/rpggio/taskboard/internal/config"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Now is the fixed clock every test server runs on: Wednesday 2024-01-10 09:30 UTC.
var Now = time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)

type TestServer struct {
	Server *httptest.Server
	App    *app.App
	Config config.Config
}

// Options tweak the configuration before the stack is built.
type Options struct {
	AuthDisabled bool
	RedisURL     string
}

func New(t *testing.T, opts Options) *TestServer {
	t.Helper()

	cfg := config.Default()
	cfg.DB.Path = ":memory:"
	cfg.Auth.Enabled = !opts.AuthDisabled
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Redis.URL = opts.RedisURL

	a, err := app.New(context.Background(), cfg, nil,
		app.WithClock(func() time.Time { return Now }),
		app.WithHashCost(bcrypt.MinCost),
	)
	require.NoError(t, err)

	server := httptest.NewServer(a.Handler())

	t.Cleanup(func() {
		server.Close()
		_ = a.Close()
	})

	return &TestServer{Server: server, App: a, Config: cfg}
}

// SignUp registers a user and returns a bearer token for it.
func (ts *TestServer) SignUp(t *testing.T, email, password string) string {
	t.Helper()

	resp := ts.Do(t, http.MethodPost, "/api/auth/signup", "", map[string]string{"email": email, "password": password})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(resp.Body))

	resp = ts.Do(t, http.MethodPost, "/api/auth/signin", "", map[string]string{"email": email, "password": password})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Body))

	var result struct {
		Token string `json:"token"`
	}
	resp.Decode(t, &result)
	require.NotEmpty(t, result.Token)
	return result.Token
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Body       []byte
}

// Decode unmarshals the body into v.
func (r Response) Decode(t *testing.T, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.Body, v), string(r.Body))
}

// Do sends body as JSON with an optional bearer token.
func (ts *TestServer) Do(t *testing.T, method, path, token string, body any) Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return Response{StatusCode: resp.StatusCode, Body: data}
}
