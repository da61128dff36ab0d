package services

import (
	"bytes"
	"encoding/csv"

	"github.com/jmcastillo/zodiac-prophecy-backend/internal/models"
)

// csvHeader is the admin export column order.
var csvHeader = []string{
	"Surname", "First Name", "Middle Initial", "Suffix", "Gender",
	"Month", "Day", "Year", "Zodiac Sign", "Consultation Time",
}

// ConsultationsCSV renders the consultation log as a CSV document for the
// admin export download.
func ConsultationsCSV(records []models.ConsultationRecord) string {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write(csvHeader)
	for _, r := range records {
		w.Write(r.CSVRow())
	}
	w.Flush()

	return buf.String()
}

// Summaries flattens the consultation log into the admin JSON listing.
// The slice is always non-nil so the endpoint encodes [] instead of null.
func Summaries(records []models.ConsultationRecord) []models.ConsultationSummary {
	out := make([]models.ConsultationSummary, 0, len(records))
	for _, r := range records {
		out = append(out, r.Summary())
	}
	return out
}
