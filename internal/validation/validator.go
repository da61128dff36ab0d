// Package validation checks registration candidates against the field
// presence and format rules. It is pure: no storage, no clock beyond the
// year upper bound.
package validation

import (
	"regexp"
	"strings"
	"time"

	"github.com/jmcastillo/zodiac-prophecy-backend/internal/models"
)

// MinYear is the oldest accepted birth year. The upper bound is the current
// calendar year.
const MinYear = 1920

// namePattern accepts upper-case letters and spaces only.
var namePattern = regexp.MustCompile(`^[A-Z\s]*$`)

// UserValidator validates registration candidates. Only one implementation
// exists; the struct keeps the call sites injectable for tests.
type UserValidator struct{}

func NewUserValidator() *UserValidator {
	return &UserValidator{}
}

// Validate reports whether the candidate passes every rule. It is defined as
// "Errors returns nothing" so the boolean and message paths can never drift.
func (v *UserValidator) Validate(u models.User) bool {
	return len(v.Errors(u)) == 0
}

// Errors evaluates every rule independently and returns all violated rules'
// messages, not just the first. Day is only range-checked: day=31 in a
// 30-day month and Feb 29 outside leap years are accepted. That calendar
// looseness is documented behavior; tightening it would change which
// registrations succeed.
func (v *UserValidator) Errors(u models.User) []string {
	var errs []string

	if strings.TrimSpace(u.Surname) == "" {
		errs = append(errs, "Surname is required")
	} else if !namePattern.MatchString(u.Surname) {
		errs = append(errs, "Surname must contain only uppercase letters and spaces")
	}
	if strings.TrimSpace(u.FirstName) == "" {
		errs = append(errs, "First name is required")
	} else if !namePattern.MatchString(u.FirstName) {
		errs = append(errs, "First name must contain only uppercase letters and spaces")
	}
	if strings.TrimSpace(u.Gender) == "" {
		errs = append(errs, "Gender is required")
	}
	if u.Month < 1 || u.Month > 12 {
		errs = append(errs, "Invalid month")
	}
	if u.Day < 1 || u.Day > 31 {
		errs = append(errs, "Invalid day")
	}
	if u.Year < MinYear || u.Year > time.Now().Year() {
		errs = append(errs, "Invalid year")
	}

	return errs
}
