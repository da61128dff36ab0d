// Package zodiac implements the deterministic prophecy engine: date-range
// sign classification, seeded text composition and the engine tying them
// together. Everything here is pure relative to its inputs; nothing touches
// storage or the network.
package zodiac

import (
	"time"

	"github.com/jmcastillo/zodiac-prophecy-backend/internal/models"
)

// Generator is the capability the HTTP layer consumes: full prophecy
// generation plus standalone sign classification for stamping consultation
// records.
type Generator interface {
	Generate(u models.User, date time.Time) models.Prophecy
	Sign(month, day int) string
}

// Engine is the only Generator implementation in this repo.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Generate produces the complete prophecy for a user on a date: the main
// text from the base seed and the four category texts from the base seed
// offset by 1 through 4. Calling it twice with the same user, date and
// 4-hour time bucket yields byte-identical output.
func (e *Engine) Generate(u models.User, date time.Time) models.Prophecy {
	sign := Sign(u.Month, u.Day)
	seed := DeriveSeed(u, date)

	return models.Prophecy{
		ZodiacSign:  sign,
		Main:        Compose("main", sign, seed, date),
		Love:        Compose("love", sign, seed+1, date),
		Career:      Compose("career", sign, seed+2, date),
		Health:      Compose("health", sign, seed+3, date),
		Money:       Compose("money", sign, seed+4, date),
		GeneratedAt: time.Now(),
	}
}

// Sign satisfies Generator with the package-level classifier.
func (e *Engine) Sign(month, day int) string {
	return Sign(month, day)
}
