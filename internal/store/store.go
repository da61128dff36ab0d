// Package store is the process-lifetime, in-memory registry of users and
// consultation records. It is volatile by design: nothing survives a
// restart, and the only bulk removal is the explicit clear-all used by the
// admin panel and tests.
package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jmcastillo/zodiac-prophecy-backend/internal/models"
)

// ErrUserNotFound is returned by GetUserByID for unknown identifiers.
var ErrUserNotFound = errors.New("user not found")

// Memory maps user IDs to users and keeps an append-only consultation log.
// All methods are safe for concurrent use; consultation snapshots copy the
// log, so a snapshot may or may not include appends in flight.
type Memory struct {
	mu            sync.RWMutex
	users         map[string]models.User
	consultations []models.ConsultationRecord
}

func NewMemory() *Memory {
	return &Memory{users: make(map[string]models.User)}
}

// SaveUser persists the user, assigning an identifier first if it has none,
// and returns the stored copy. The identifier pairs a millisecond timestamp
// with a uuid fragment so concurrent saves never collide. The in-memory
// implementation cannot fail; the error is part of the persistence contract
// the registration transaction commits against.
func (m *Memory) SaveUser(u models.User) (models.User, error) {
	if u.ID == "" {
		u.ID = generateUserID()
	}

	m.mu.Lock()
	m.users[u.ID] = u
	m.mu.Unlock()

	return u, nil
}

// DeleteUser removes a user by ID. It exists for the transaction's rollback
// path and reports whether anything was removed.
func (m *Memory) DeleteUser(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[id]; !ok {
		return false
	}
	delete(m.users, id)
	return true
}

// GetUserByID looks up a user; ErrUserNotFound on a miss.
func (m *Memory) GetUserByID(id string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return u, nil
}

// UserExists reports whether the identifier is registered.
func (m *Memory) UserExists(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.users[id]
	return ok
}

// GetAllUsers returns a snapshot of every registered user.
func (m *Memory) GetAllUsers() []models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out
}

// AddConsultation appends a record to the consultation log.
func (m *Memory) AddConsultation(r models.ConsultationRecord) error {
	m.mu.Lock()
	m.consultations = append(m.consultations, r)
	m.mu.Unlock()
	return nil
}

// GetAllConsultations returns a snapshot copy of the consultation log.
func (m *Memory) GetAllConsultations() []models.ConsultationRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.ConsultationRecord, len(m.consultations))
	copy(out, m.consultations)
	return out
}

// ClearAllData atomically empties both the user map and the consultation
// log.
func (m *Memory) ClearAllData() {
	m.mu.Lock()
	m.users = make(map[string]models.User)
	m.consultations = nil
	m.mu.Unlock()
}

func generateUserID() string {
	return fmt.Sprintf("USER_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
