package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/mindmate/internal/common"
	"github.com/dmitrijs2005/mindmate/internal/logging"
	"github.com/dmitrijs2005/mindmate/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	user    *models.User
	created bool
	err     error

	gotEmail, gotPassword string
	calls                 int
}

func (f *fakeAuth) Authenticate(ctx context.Context, email, password string) (*models.User, bool, error) {
	f.calls++
	f.gotEmail, f.gotPassword = email, password
	return f.user, f.created, f.err
}

func newTestServer(a Authenticator) *HTTPServer {
	return NewHTTPServer(":0", logging.Discard(), a, Options{Collection: "nodes", CORSOrigin: "*", ShutdownTimeout: time.Second})
}

func do(t *testing.T, s *HTTPServer, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

var joined = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestAuthenticate_Created(t *testing.T) {
	fa := &fakeAuth{user: &models.User{ID: "u1", Email: "a@b.com", PasswordHash: "hash", JoinedDate: joined}, created: true}
	rec := do(t, newTestServer(fa), http.MethodPost, "/api/nodes", `{"email":"a@b.com","password":"pw1"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"New user created","user":{"_id":"u1","email":"a@b.com","joinedDate":"2024-01-01T00:00:00Z"}}`, rec.Body.String())
	assert.Equal(t, "a@b.com", fa.gotEmail)
	assert.Equal(t, "pw1", fa.gotPassword)
}

func TestAuthenticate_LoginSuccessful(t *testing.T) {
	fa := &fakeAuth{user: &models.User{ID: "u1", Email: "a@b.com", PasswordHash: "hash", JoinedDate: joined}}
	rec := do(t, newTestServer(fa), http.MethodPost, "/api/nodes", `{"email":"a@b.com","password":"pw1"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Login successful", body["message"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "u1", user["_id"])
	assert.NotContains(t, rec.Body.String(), "hash")
}

func TestAuthenticate_InvalidPassword(t *testing.T) {
	fa := &fakeAuth{err: common.ErrorUnauthorized}
	rec := do(t, newTestServer(fa), http.MethodPost, "/api/nodes", `{"email":"a@b.com","password":"nope"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid password"}`, rec.Body.String())
}

func TestAuthenticate_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing password", `{"email":"a@b.com"}`},
		{"missing email", `{"password":"pw"}`},
		{"empty strings", `{"email":"","password":""}`},
		{"not json", `email=a`},
		{"empty body", ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fa := &fakeAuth{}
			rec := do(t, newTestServer(fa), http.MethodPost, "/api/nodes", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"Email and password are required"}`, rec.Body.String())
			assert.Zero(t, fa.calls)
		})
	}
}

func TestAuthenticate_ValidationFromService(t *testing.T) {
	fa := &fakeAuth{err: common.ErrorValidation}
	rec := do(t, newTestServer(fa), http.MethodPost, "/api/nodes", `{"email":"a@b.com","password":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthenticate_PasswordTooLong(t *testing.T) {
	fa := &fakeAuth{err: common.ErrorPasswordTooLong}
	body := `{"email":"a@b.com","password":"` + strings.Repeat("p", 80) + `"}`
	rec := do(t, newTestServer(fa), http.MethodPost, "/api/nodes", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Password must be at most 72 bytes"}`, rec.Body.String())
	assert.Equal(t, strings.Repeat("p", 80), fa.gotPassword)
}

func TestAuthenticate_InternalError(t *testing.T) {
	fa := &fakeAuth{err: errors.New("db error: connection refused")}
	rec := do(t, newTestServer(fa), http.MethodPost, "/api/nodes", `{"email":"a@b.com","password":"pw"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"db error: connection refused"}`, rec.Body.String())
}

func TestAuthenticate_CustomCollection(t *testing.T) {
	fa := &fakeAuth{user: &models.User{ID: "u1", Email: "a@b.com"}}
	s := NewHTTPServer(":0", logging.Discard(), fa, Options{Collection: "users"})

	assert.Equal(t, http.StatusOK, do(t, s, http.MethodPost, "/api/users", `{"email":"a@b.com","password":"pw"}`).Code)
	assert.Equal(t, http.StatusNotFound, do(t, s, http.MethodPost, "/api/nodes", `{"email":"a@b.com","password":"pw"}`).Code)
}

func TestHealthAndRoot(t *testing.T) {
	s := newTestServer(&fakeAuth{})

	rec := do(t, s, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	rec = do(t, s, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "MindMate")
}

func TestRequestID(t *testing.T) {
	s := newTestServer(&fakeAuth{})

	rec := do(t, s, http.MethodGet, "/health", "")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, "abc", rec.Header().Get("X-Request-ID"))
}

func TestCORS_Preflight(t *testing.T) {
	s := NewHTTPServer(":0", logging.Discard(), &fakeAuth{}, Options{Collection: "nodes", CORSOrigin: "http://localhost:5173"})

	req := httptest.NewRequest(http.MethodOptions, "/api/nodes", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}
