package models

import "time"

// Prophecy carries the five generated text fields for one consultation.
// Prophecies are built fresh on every request and never persisted.
type Prophecy struct {
	ZodiacSign  string    `json:"zodiacSign"`
	Main        string    `json:"main"`
	Love        string    `json:"love"`
	Career      string    `json:"career"`
	Health      string    `json:"health"`
	Money       string    `json:"money"`
	GeneratedAt time.Time `json:"-"`
}
