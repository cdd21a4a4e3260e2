// Package localstate persists the client's durable state (credential pair,
// theme preference, sidebar flag) in a small sqlite key/value table. The
// store is the single owner of that state: everything else reads and writes
// through it and can subscribe to change notifications.
package localstate

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"
)

// Well-known keys.
const (
	KeyCredentials = "auth_tokens"
	KeyTheme       = "theme"
	KeySidebar     = "sidebar_collapsed"
)

// Credentials is the stored token pair. Absence means unauthenticated.
type Credentials struct {
	AccessToken  string `json:"access"`
	RefreshToken string `json:"refresh"`
}

const schema = `
CREATE TABLE IF NOT EXISTS state (
    key   TEXT PRIMARY KEY,
    value BLOB NOT NULL
);`

type Store struct {
	db *sql.DB

	mu   sync.Mutex
	subs []func(key string)
}

// Open opens (creating if needed) the state database at dsn.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init state db: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Subscribe registers fn to be called with the key of every subsequent
// change. Callbacks run synchronously on the mutating goroutine.
func (s *Store) Subscribe(fn func(key string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Store) notify(key string) {
	s.mu.Lock()
	subs := make([]func(string), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()
	for _, fn := range subs {
		fn(key)
	}
}

// Get returns the stored value for key, or nil when the key is absent.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM state WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get state[%s]: %w", key, err)
	}
	return value, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set state[%s]: %w", key, err)
	}
	s.notify(key)
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM state WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete state[%s]: %w", key, err)
	}
	s.notify(key)
	return nil
}

// Credentials returns the stored token pair, or nil when logged out.
func (s *Store) Credentials(ctx context.Context) (*Credentials, error) {
	data, err := s.Get(ctx, KeyCredentials)
	if err != nil || data == nil {
		return nil, err
	}
	var c Credentials
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("corrupt credential record: %w", err)
	}
	return &c, nil
}

// SetCredentials replaces the stored token pair wholesale.
func (s *Store) SetCredentials(ctx context.Context, c *Credentials) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return s.Set(ctx, KeyCredentials, data)
}

// ClearCredentials removes the token pair, returning the store to the
// unauthenticated state.
func (s *Store) ClearCredentials(ctx context.Context) error {
	return s.Delete(ctx, KeyCredentials)
}

// Theme returns the saved theme name, or "" when none was saved.
func (s *Store) Theme(ctx context.Context) (string, error) {
	data, err := s.Get(ctx, KeyTheme)
	return string(data), err
}

func (s *Store) SetTheme(ctx context.Context, theme string) error {
	return s.Set(ctx, KeyTheme, []byte(theme))
}

// SidebarCollapsed reports the saved sidebar flag; absent means expanded.
func (s *Store) SidebarCollapsed(ctx context.Context) (bool, error) {
	data, err := s.Get(ctx, KeySidebar)
	return string(data) == "1", err
}

func (s *Store) SetSidebarCollapsed(ctx context.Context, collapsed bool) error {
	v := []byte("0")
	if collapsed {
		v = []byte("1")
	}
	return s.Set(ctx, KeySidebar, v)
}
