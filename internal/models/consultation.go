package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ConsultationRecord is an immutable log entry binding a user snapshot to the
// zodiac sign computed at registration time. Records are only ever appended;
// the sole removal path is the admin clear-all operation.
type ConsultationRecord struct {
	User       User      `json:"user"`
	ZodiacSign string    `json:"zodiacSign"`
	ProphecyID string    `json:"prophecyId"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewConsultationRecord snapshots the user and stamps the record with the
// sign the classifier computes for the user's birth month and day. Taking the
// classifier as a function keeps the stamped sign and any later recomputation
// in agreement by construction.
func NewConsultationRecord(u User, classify func(month, day int) string) ConsultationRecord {
	return ConsultationRecord{
		User:       u,
		ZodiacSign: classify(u.Month, u.Day),
		ProphecyID: generateProphecyID(),
		Timestamp:  time.Now(),
	}
}

// generateProphecyID combines a millisecond timestamp with a random uuid
// fragment so concurrent registrations never collide.
func generateProphecyID() string {
	return fmt.Sprintf("PROPHECY_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// ConsultationSummary is the admin-panel view of a record.
type ConsultationSummary struct {
	Name       string `json:"name"`
	Gender     string `json:"gender"`
	Birthdate  string `json:"birthdate"`
	ZodiacSign string `json:"zodiacSign"`
	Timestamp  string `json:"timestamp"`
	ProphecyID string `json:"prophecyId"`
}

// Summary flattens the record for admin listings and JSON export.
func (r ConsultationRecord) Summary() ConsultationSummary {
	name := r.User.Surname + ", " + r.User.FirstName
	if r.User.MiddleInitial != "" {
		name += " " + r.User.MiddleInitial
	}
	return ConsultationSummary{
		Name:       strings.TrimSpace(name),
		Gender:     r.User.Gender,
		Birthdate:  fmt.Sprintf("%d/%d/%d", r.User.Month, r.User.Day, r.User.Year),
		ZodiacSign: r.ZodiacSign,
		Timestamp:  r.Timestamp.Format(timestampLayout),
		ProphecyID: r.ProphecyID,
	}
}

// CSVRow renders the record in the admin export column order.
func (r ConsultationRecord) CSVRow() []string {
	return append(r.User.CSVRow(), r.ZodiacSign, r.Timestamp.Format(timestampLayout))
}
