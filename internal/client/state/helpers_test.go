package state

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/mindmate/internal/client/client"
	"github.com/dmitrijs2005/mindmate/internal/client/models"
	"github.com/dmitrijs2005/mindmate/internal/client/store"
	"github.com/stretchr/testify/require"
)

// fakeServer mimics the auth endpoint: unknown emails are registered,
// known ones must match the stored password.
type fakeServer struct {
	mu       sync.Mutex
	users    map[string]*models.User
	pw       map[string]string
	created  int
	calls    int
	err      error
	override *client.AuthResponse
}

func newFakeServer() *fakeServer {
	return &fakeServer{users: map[string]*models.User{}, pw: map[string]string{}}
}

func (f *fakeServer) Authenticate(ctx context.Context, email, password string) (*client.AuthResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.override != nil {
		return f.override, nil
	}
	if email == "" || password == "" {
		return &client.AuthResponse{Error: "Email and password are required", StatusCode: 400}, nil
	}

	u, ok := f.users[email]
	if !ok {
		f.created++
		u = &models.User{ID: "user-" + email, Email: email, JoinedDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
		f.users[email] = u
		f.pw[email] = password
		return &client.AuthResponse{Message: "New user created", User: cloneUser(u), StatusCode: 201}, nil
	}
	if f.pw[email] != password {
		return &client.AuthResponse{Error: "Invalid password", StatusCode: 401}, nil
	}
	return &client.AuthResponse{Message: "Login successful", User: cloneUser(u), StatusCode: 200}, nil
}

func (f *fakeServer) Ping(ctx context.Context) error { return f.err }

func cloneUser(u *models.User) *models.User {
	c := *u
	return &c
}

// memStore is an in-memory store.Store with switchable failures.
type memStore struct {
	mu      sync.Mutex
	data    map[string][]byte
	getErr  error
	setErr  error
	delErr  error
	sets    int
	deletes int
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (m *memStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (m *memStore) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets++
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *memStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletes++
	if m.delErr != nil {
		return m.delErr
	}
	delete(m.data, key)
	return nil
}

func (m *memStore) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok
}

var _ store.Store = (*memStore)(nil)

// sqliteStore opens a real in-memory SQLite Persisted Store.
func sqliteStore(t *testing.T) store.Store {
	t.Helper()
	s, db, err := store.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return s
}

// fixedClock returns a clock that advances by step on every call.
func fixedClock(start time.Time, step time.Duration) func() time.Time {
	var mu sync.Mutex
	cur := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t := cur
		cur = cur.Add(step)
		return t
	}
}

var errNetwork = errors.New("dial tcp 127.0.0.1:5000: connect: connection refused")
