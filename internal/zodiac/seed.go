package zodiac

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/jmcastillo/zodiac-prophecy-backend/internal/models"
)

// dateLayout is the calendar-date component of every seed string.
const dateLayout = "2006-01-02"

// hashString reduces a composite string to a non-negative integer with
// 32-bit FNV-1a. The same hash is used for seed derivation and for the
// composer's second-stage category seeds; prophecy reproducibility depends
// on it never changing. The sign flip happens in int64 space so the result
// is non-negative for every input.
func hashString(s string) int {
	h := fnv.New32a()
	h.Write([]byte(s))
	v := int64(int32(h.Sum32()))
	if v < 0 {
		v = -v
	}
	return int(v)
}

// DeriveSeed computes the deterministic base seed for a user on a given
// date. The composite mixes identity, birth date, calendar date, weekday,
// ISO week number, a 4-hour time bucket and the day of month, so the seed
// is stable within one bucket of one day and expected to change across
// bucket or day boundaries. This is reproducible on purpose, not random.
func DeriveSeed(u models.User, date time.Time) int {
	dateString := date.Format(dateLayout)
	_, weekOfYear := date.ISOWeek()

	composite := fmt.Sprintf("%s%s%d%d%d%s%d%d",
		u.Surname, u.FirstName, u.Month, u.Day, u.Year,
		dateString, int(date.Weekday()), weekOfYear)

	// Six buckets per day gives controlled intra-day variation.
	timeBucket := date.Hour() / 4

	return hashString(fmt.Sprintf("%s%d%d", composite, timeBucket, date.Day()))
}
