package models

import (
	"fmt"
	"time"
)

// timestampLayout matches the export format shown in the admin panel.
const timestampLayout = "2006-01-02 15:04:05"

// User holds the identity and birth facts submitted at registration.
// ID is empty until the user has been persisted by the store.
type User struct {
	ID            string    `json:"id"`
	Surname       string    `json:"surname"`
	FirstName     string    `json:"firstName"`
	MiddleInitial string    `json:"middleInitial,omitempty"`
	Suffix        string    `json:"suffix,omitempty"`
	Gender        string    `json:"gender"`
	Month         int       `json:"month"`
	Day           int       `json:"day"`
	Year          int       `json:"year"`
	CreatedAt     time.Time `json:"timestamp"`
}

// NewUser builds an unpersisted user stamped with the current time.
func NewUser(surname, firstName, middleInitial, suffix, gender string, month, day, year int) User {
	return User{
		Surname:       surname,
		FirstName:     firstName,
		MiddleInitial: middleInitial,
		Suffix:        suffix,
		Gender:        gender,
		Month:         month,
		Day:           day,
		Year:          year,
		CreatedAt:     time.Now(),
	}
}

// CSVRow renders the user in the admin export column order.
func (u User) CSVRow() []string {
	return []string{
		u.Surname, u.FirstName, u.MiddleInitial, u.Suffix, u.Gender,
		fmt.Sprintf("%d", u.Month), fmt.Sprintf("%d", u.Day), fmt.Sprintf("%d", u.Year),
	}
}
