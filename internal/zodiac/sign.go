package zodiac

// signRange is one inclusive date range spanning a month boundary.
type signRange struct {
	name                 string
	startMonth, startDay int
	endMonth, endDay     int
}

var signRanges = []signRange{
	{"Capricorn", 12, 22, 1, 19},
	{"Aquarius", 1, 20, 2, 18},
	{"Pisces", 2, 19, 3, 20},
	{"Aries", 3, 21, 4, 19},
	{"Taurus", 4, 20, 5, 20},
	{"Gemini", 5, 21, 6, 20},
	{"Cancer", 6, 21, 7, 22},
	{"Leo", 7, 23, 8, 22},
	{"Virgo", 8, 23, 9, 22},
	{"Libra", 9, 23, 10, 22},
	{"Scorpio", 10, 23, 11, 21},
	{"Sagittarius", 11, 22, 12, 21},
}

// Sign maps a birth month and day to one of the twelve zodiac sign names.
// The ranges are disjoint and exhaustive over month 1-12, day 1-31, so
// evaluation order does not matter; anything that somehow falls outside
// every range resolves to Capricorn. The function does not check calendar
// correctness (day=31 in a 30-day month classifies like any other day) --
// range validation is the validator's job, and even it only checks 1-31.
func Sign(month, day int) string {
	for _, r := range signRanges {
		if (month == r.startMonth && day >= r.startDay) || (month == r.endMonth && day <= r.endDay) {
			return r.name
		}
	}
	return "Capricorn"
}
