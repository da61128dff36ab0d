package zodiac

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmcastillo/zodiac-prophecy-backend/internal/models"
)

func TestEngine_GenerateDeterministicWithinBucket(t *testing.T) {
	engine := NewEngine()
	u := seedUser()

	a := engine.Generate(u, time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC))
	b := engine.Generate(u, time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC))

	assert.Equal(t, a.ZodiacSign, b.ZodiacSign)
	assert.Equal(t, a.Main, b.Main)
	assert.Equal(t, a.Love, b.Love)
	assert.Equal(t, a.Career, b.Career)
	assert.Equal(t, a.Health, b.Health)
	assert.Equal(t, a.Money, b.Money)
}

func TestEngine_CrossDayVariation(t *testing.T) {
	engine := NewEngine()
	u := seedUser()

	changed := 0
	const days = 30
	for i := 0; i < days; i++ {
		d1 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC).AddDate(0, 0, i)
		d2 := d1.AddDate(0, 0, 1)

		a := engine.Generate(u, d1)
		b := engine.Generate(u, d2)
		if a.Main != b.Main || a.Love != b.Love || a.Career != b.Career ||
			a.Health != b.Health || a.Money != b.Money {
			changed++
		}
	}

	// Crossing a day boundary changes at least one field with high
	// probability; demand it for nearly every sampled pair.
	assert.GreaterOrEqual(t, changed, days-2)
}

func TestEngine_RegistrationScenario(t *testing.T) {
	engine := NewEngine()
	u := models.User{
		Surname:   "CRUZ",
		FirstName: "ANA",
		Gender:    "FEMALE",
		Month:     7,
		Day:       15,
		Year:      1995,
	}

	p := engine.Generate(u, time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))

	assert.Equal(t, "Cancer", p.ZodiacSign)
	require.NotEmpty(t, p.Main)
	assert.Equal(t, strings.ToUpper(p.Main), p.Main)
	assert.True(t, strings.HasPrefix(p.Love, "\U0001F495 "))
	assert.True(t, strings.HasPrefix(p.Career, "\U0001F680 "))
	assert.True(t, strings.HasPrefix(p.Health, "\U0001F4AA "))
	assert.True(t, strings.HasPrefix(p.Money, "\U0001F4B0 "))
}

func TestEngine_SignMatchesClassifier(t *testing.T) {
	engine := NewEngine()
	assert.Equal(t, Sign(12, 25), engine.Sign(12, 25))
}
