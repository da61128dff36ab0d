package services

import (
	"time"

	"github.com/jmcastillo/zodiac-prophecy-backend/internal/models"
)

// Stats are the admin-panel aggregates over the consultation log.
type Stats struct {
	TotalUsers         int `json:"totalUsers"`
	MaleUsers          int `json:"maleUsers"`
	FemaleUsers        int `json:"femaleUsers"`
	TodayConsultations int `json:"todayConsultations"`
}

// ComputeStats aggregates a consultation snapshot. "Today" means the same
// calendar day as now in now's location.
func ComputeStats(records []models.ConsultationRecord, now time.Time) Stats {
	s := Stats{TotalUsers: len(records)}
	today := now.Format("2006-01-02")

	for _, r := range records {
		switch r.User.Gender {
		case "MALE":
			s.MaleUsers++
		case "FEMALE":
			s.FemaleUsers++
		}
		if r.Timestamp.Format("2006-01-02") == today {
			s.TodayConsultations++
		}
	}
	return s
}
