// SPDX-License-Identifier: MIT
package sessions

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/thatcatcamp/focusmap/internal/metrics"
	"github.com/thatcatcamp/focusmap/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned for ids with no stored session
	ErrNotFound = errors.New("session not found")
	// ErrNotStored is returned when saving a preview session
	ErrNotStored = errors.New("session was never stored")
	// ErrInvalidMaxIdle is returned for a prune window that would match
	// every session
	ErrInvalidMaxIdle = errors.New("max idle must be positive")
)

// Store keeps sessions in memory and their selections in the database
type Store struct {
	db      *gorm.DB
	factory *Factory

	mu   sync.Mutex
	live map[string]*Session
}

// NewStore creates a store backed by database
func NewStore(database *gorm.DB, factory *Factory) (*Store, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if factory == nil {
		return nil, errors.New("session factory is required")
	}
	return &Store{
		db:      database,
		factory: factory,
		live:    make(map[string]*Session),
	}, nil
}

// Create starts a new session with a random id
func (st *Store) Create() (*Session, error) {
	s, err := st.factory.New(uuid.NewString())
	if err != nil {
		return nil, err
	}

	rec := s.Record()
	if err := st.db.Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	st.remember(s)
	return s, nil
}

// Preview returns a session showing the default map. It is neither stored
// nor cached, so visitors that never change the map cost nothing.
func (st *Store) Preview() (*Session, error) {
	return st.factory.New("")
}

// Get returns the live session for id, restoring it from the database
// after a restart.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.Lock()
	s, ok := st.live[id]
	st.mu.Unlock()
	if ok {
		return s, nil
	}

	var rec models.MapSession
	if err := st.db.First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	s, err := st.factory.Restore(rec)
	if err != nil {
		return nil, err
	}
	return st.remember(s), nil
}

// Save writes the session's selection back to the database
func (st *Store) Save(s *Session) error {
	rec := s.Record()
	if rec.ID == "" {
		return ErrNotStored
	}
	err := st.db.Model(&models.MapSession{ID: rec.ID}).Updates(map[string]interface{}{
		"department":   rec.Department,
		"municipality": rec.Municipality,
		"base_layer":   rec.BaseLayer,
		"selections":   rec.Selections,
	}).Error
	if err != nil {
		return fmt.Errorf("failed to save session %s: %w", rec.ID, err)
	}
	return nil
}

// Prune deletes sessions untouched for longer than maxIdle
func (st *Store) Prune(maxIdle time.Duration) (int64, error) {
	if maxIdle <= 0 {
		return 0, ErrInvalidMaxIdle
	}
	cutoff := time.Now().Add(-maxIdle)

	var ids []string
	if err := st.db.Model(&models.MapSession{}).Where("updated_at < ?", cutoff).Pluck("id", &ids).Error; err != nil {
		return 0, fmt.Errorf("failed to list idle sessions: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	res := st.db.Where("id IN ?", ids).Delete(&models.MapSession{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete idle sessions: %w", res.Error)
	}

	st.mu.Lock()
	for _, id := range ids {
		delete(st.live, id)
	}
	metrics.SessionsActive.Set(float64(len(st.live)))
	st.mu.Unlock()

	metrics.SessionsPrunedTotal.Add(float64(res.RowsAffected))
	return res.RowsAffected, nil
}

// Count returns the number of stored sessions
func (st *Store) Count() (int64, error) {
	var n int64
	if err := st.db.Model(&models.MapSession{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// remember caches s unless another request restored the same id first
func (st *Store) remember(s *Session) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	if existing, ok := st.live[s.ID]; ok {
		return existing
	}
	st.live[s.ID] = s
	metrics.SessionsActive.Set(float64(len(st.live)))
	return s
}
