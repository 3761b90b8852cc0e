// Package cache provides a user-scoped key/value store backed by SQLite.
// It uses the pure-Go SQLite driver via GORM.
//
// Every key is namespaced by the owning user's identity, so one on-device
// database can hold state for multiple accounts without leaking values
// between them. Values are opaque serialized blobs; the store never
// interprets drill or group structure.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// ErrMiss is returned when a key has no cached value for the current user,
// or the cached blob cannot be decoded into the requested type.
var ErrMiss = errors.New("cache miss")

// Entry is one namespaced blob row.
type Entry struct {
	UserID    string    `gorm:"primaryKey;size:128"`
	Key       string    `gorm:"primaryKey;size:128"`
	Value     []byte    `gorm:"type:blob"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM.
func (Entry) TableName() string {
	return "cache_entries"
}

// Config holds store configuration options.
type Config struct {
	Path  string
	Debug bool
}

// DefaultConfig returns sensible defaults.
func DefaultConfig(path string) Config {
	return Config{Path: path}
}

// Store is the on-device cache, scoped to the active user identity. The
// scope can be moved to another account with SetUser; entries for other
// users stay in place.
type Store struct {
	db   *gorm.DB
	path string

	mu     sync.RWMutex
	userID string
}

// New opens (creating if necessary) the cache database for the given user.
func New(cfg Config, userID string) (*Store, error) {
	if userID == "" {
		return nil, errors.New("cache requires a user identity")
	}

	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	logLevel := logger.Silent
	if cfg.Debug {
		logLevel = logger.Info
	}

	// DELETE journal mode keeps transaction handling simple with the
	// pure-Go SQLite driver.
	dsn := fmt.Sprintf("%s?_pragma=journal_mode(DELETE)&_pragma=busy_timeout(5000)", cfg.Path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 logger.Default.LogMode(logLevel),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}

	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("migrate cache: %w", err)
	}

	return &Store{db: db, userID: userID, path: cfg.Path}, nil
}

// UserID returns the identity this store is scoped to.
func (s *Store) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

// SetUser re-scopes the store to a different account, typically after the
// active user changed underneath a long-lived process.
func (s *Store) SetUser(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = userID
}

// Path returns the cache database file path.
func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// put stores a raw blob under the current user's namespace. Writes are
// idempotent re-serializations of the same logical value, so last-write-wins
// is acceptable without external locking.
func (s *Store) put(key Key, value []byte) error {
	entry := Entry{UserID: s.UserID(), Key: string(key), Value: value}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

// get retrieves the raw blob for a key under the current user's namespace.
func (s *Store) get(key Key) ([]byte, error) {
	var entry Entry
	err := s.db.Where("user_id = ? AND key = ?", s.UserID(), string(key)).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("read cache entry: %w", err)
	}
	return entry.Value, nil
}

// ClearKey removes a single key for the current user.
func (s *Store) ClearKey(key Key) error {
	return s.db.Delete(&Entry{}, "user_id = ? AND key = ?", s.UserID(), string(key)).Error
}

// ClearUser removes every key for the current user without disturbing
// entries cached by other accounts on this device.
func (s *Store) ClearUser() error {
	return s.db.Delete(&Entry{}, "user_id = ?", s.UserID()).Error
}

// Put JSON-serializes a value and stores it under the key.
func Put[T any](s *Store, key Key, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.put(key, data)
}

// Get retrieves and decodes a value. A missing key or a blob that does not
// decode into T is reported as ErrMiss, never as a hard failure; callers
// fall back to defaults.
func Get[T any](s *Store, key Key) (T, error) {
	var value T
	data, err := s.get(key)
	if err != nil {
		return value, err
	}
	if err := json.Unmarshal(data, &value); err != nil {
		return value, ErrMiss
	}
	return value, nil
}
