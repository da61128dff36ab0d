// Package services carries the pieces between the HTTP handlers and the
// store: the registration transaction, admin aggregates, exports and the
// live consultation feed.
package services

import (
	"go.uber.org/zap"

	"github.com/jmcastillo/zodiac-prophecy-backend/internal/models"
)

// RegistrationStore is the slice of the store the registration transaction
// commits against. Narrowing it here lets tests inject failing
// implementations without touching the real store.
type RegistrationStore interface {
	SaveUser(u models.User) (models.User, error)
	DeleteUser(id string) bool
	UserExists(id string) bool
	AddConsultation(r models.ConsultationRecord) error
}

// CommitResult is the explicit outcome of a commit attempt. There is no
// error-driven control flow here: a failed registration is an expected path
// and the caller only needs the flags.
type CommitResult struct {
	Committed         bool
	RollbackAttempted bool
	RollbackSucceeded bool
}

// RegistrationTransaction pairs persisting a user with appending their
// consultation record as one best-effort unit. State machine: pending ->
// committed, or pending -> rolled back. A crash between the two steps can
// still leave a persisted user without a record; that window is a documented
// weak point of the in-memory design, not something this type closes.
type RegistrationTransaction struct {
	store    RegistrationStore
	classify func(month, day int) string
	log      *zap.SugaredLogger

	user   models.User
	saved  models.User
	record models.ConsultationRecord
	result CommitResult
}

// NewRegistrationTransaction prepares a pending transaction for the
// candidate user. The classifier stamps the consultation record's zodiac
// sign during commit.
func NewRegistrationTransaction(st RegistrationStore, classify func(month, day int) string, logger *zap.Logger, u models.User) *RegistrationTransaction {
	return &RegistrationTransaction{
		store:    st,
		classify: classify,
		log:      logger.Sugar(),
		user:     u,
	}
}

// Commit persists the user (assigning an identifier) and appends the
// consultation record. On any failure it attempts a best-effort rollback,
// logs the rollback outcome and reports false. Commit never panics and
// never surfaces an error to the caller.
func (t *RegistrationTransaction) Commit() bool {
	saved, err := t.store.SaveUser(t.user)
	if err != nil {
		t.rollback(err)
		return false
	}
	t.saved = saved

	record := models.NewConsultationRecord(saved, t.classify)
	if err := t.store.AddConsultation(record); err != nil {
		t.rollback(err)
		return false
	}

	t.record = record
	t.result.Committed = true
	return true
}

// rollback reverses the user persistence if it happened. Failures are
// logged, never propagated.
func (t *RegistrationTransaction) rollback(cause error) {
	t.log.Warnw("registration transaction failed, rolling back", "error", cause, "surname", t.user.Surname)
	t.result.RollbackAttempted = true

	if t.saved.ID == "" {
		// Nothing was persisted; there is nothing to reverse.
		t.result.RollbackSucceeded = true
		return
	}
	if !t.store.UserExists(t.saved.ID) {
		t.result.RollbackSucceeded = true
		return
	}
	if t.store.DeleteUser(t.saved.ID) {
		t.result.RollbackSucceeded = true
		return
	}
	t.log.Errorw("rollback failed", "userId", t.saved.ID)
}

// IsCompleted reports whether the commit reached the committed state.
func (t *RegistrationTransaction) IsCompleted() bool { return t.result.Committed }

// IsRolledBack reports whether a rollback was attempted and succeeded.
func (t *RegistrationTransaction) IsRolledBack() bool { return t.result.RollbackSucceeded }

// Result returns the full commit outcome.
func (t *RegistrationTransaction) Result() CommitResult { return t.result }

// User returns the persisted user, identifier included. Only meaningful
// after a successful Commit.
func (t *RegistrationTransaction) User() models.User { return t.saved }

// Record returns the consultation record appended by Commit.
func (t *RegistrationTransaction) Record() models.ConsultationRecord { return t.record }
