package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ConsultationSuite struct {
	suite.Suite
}

func TestConsultationSuite(t *testing.T) {
	suite.Run(t, new(ConsultationSuite))
}

func (s *ConsultationSuite) TestRecordStampsClassifiedSign() {
	u := NewUser("CRUZ", "ANA", "", "", "FEMALE", 7, 15, 1995)
	classified := ""
	r := NewConsultationRecord(u, func(month, day int) string {
		s.Equal(7, month)
		s.Equal(15, day)
		classified = "Cancer"
		return classified
	})

	s.Equal("Cancer", r.ZodiacSign)
	s.Equal(classified, r.ZodiacSign)
	s.Equal(u.Surname, r.User.Surname)
	s.False(r.Timestamp.IsZero())
}

func (s *ConsultationSuite) TestProphecyIDFormat() {
	r := NewConsultationRecord(NewUser("CRUZ", "ANA", "", "", "FEMALE", 7, 15, 1995),
		func(int, int) string { return "Cancer" })

	s.True(strings.HasPrefix(r.ProphecyID, "PROPHECY_"))
	s.Len(strings.Split(r.ProphecyID, "_"), 3)
}

func (s *ConsultationSuite) TestProphecyIDsDoNotCollide() {
	classify := func(int, int) string { return "Cancer" }
	u := NewUser("CRUZ", "ANA", "", "", "FEMALE", 7, 15, 1995)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewConsultationRecord(u, classify).ProphecyID
		s.False(seen[id], "duplicate prophecy id %s", id)
		seen[id] = true
	}
}

func TestSummaryNameOmitsEmptyMiddleInitial(t *testing.T) {
	u := NewUser("CRUZ", "ANA", "", "", "FEMALE", 7, 15, 1995)
	r := NewConsultationRecord(u, func(int, int) string { return "Cancer" })

	assert.Equal(t, "CRUZ, ANA", r.Summary().Name)
}

func TestSummaryNameIncludesMiddleInitial(t *testing.T) {
	u := NewUser("CRUZ", "ANA", "B", "JR", "FEMALE", 7, 15, 1995)
	r := NewConsultationRecord(u, func(int, int) string { return "Cancer" })

	sum := r.Summary()
	require.Equal(t, "CRUZ, ANA B", sum.Name)
	assert.Equal(t, "7/15/1995", sum.Birthdate)
}
