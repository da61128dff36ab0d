package services

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jmcastillo/zodiac-prophecy-backend/internal/models"
)

// FeedConn is the minimal interface a feed subscriber's WebSocket connection
// must satisfy.
type FeedConn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// FeedEvent is the payload pushed to admin subscribers when a registration
// commits.
type FeedEvent struct {
	Type         string                     `json:"type"`
	Consultation models.ConsultationSummary `json:"consultation"`
}

// ConsultationFeed is a registry of admin WebSocket connections that
// receives every committed consultation. Broadcasts are synchronous and
// best-effort: a connection that fails a write is dropped.
type ConsultationFeed struct {
	mu    sync.RWMutex
	conns map[string]FeedConn
	log   *zap.SugaredLogger
}

func NewConsultationFeed(logger *zap.Logger) *ConsultationFeed {
	return &ConsultationFeed{
		conns: make(map[string]FeedConn),
		log:   logger.Sugar(),
	}
}

// Register adds a subscriber connection and returns its handle for
// Unregister.
func (f *ConsultationFeed) Register(conn FeedConn) string {
	id := uuid.NewString()

	f.mu.Lock()
	f.conns[id] = conn
	f.mu.Unlock()

	return id
}

// Unregister removes a subscriber. The caller owns closing the connection.
func (f *ConsultationFeed) Unregister(id string) {
	f.mu.Lock()
	delete(f.conns, id)
	f.mu.Unlock()
}

// Broadcast pushes a committed consultation to every subscriber. Writes that
// fail evict the subscriber; slow admin panels must not wedge registration.
func (f *ConsultationFeed) Broadcast(r models.ConsultationRecord) {
	event := FeedEvent{Type: "consultation", Consultation: r.Summary()}

	f.mu.Lock()
	defer f.mu.Unlock()
	for id, conn := range f.conns {
		if err := conn.WriteJSON(event); err != nil {
			f.log.Warnw("dropping feed subscriber", "id", id, "error", err)
			conn.Close()
			delete(f.conns, id)
		}
	}
}

// Close drops and closes every subscriber. Used on shutdown and in tests.
func (f *ConsultationFeed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, conn := range f.conns {
		conn.Close()
		delete(f.conns, id)
	}
}

// Subscribers reports the current subscriber count.
func (f *ConsultationFeed) Subscribers() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.conns)
}
