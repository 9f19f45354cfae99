/*
calendar.go - Calendar-driven patron demand

PURPOSE:
  Maps a day of the year to the expected number of patrons served. The
  cafeteria closes on weekends and on published non-operating dates;
  otherwise demand follows seasonal intensity bands (academic semesters
  run hot, summer and recesses run cold) plus a narrow uniform jitter so
  runs are not perfectly deterministic repeats.

CONFIGURATION, NOT CONSTANTS:
  Closures and bands are plain data supplied at construction, so tests can
  swap the calendar. DefaultCalendar() encodes the 2025 reference year.

BAND SEMANTICS:
  Bands are inclusive month/day ranges. They must be contiguous and
  non-overlapping by construction; if they were to overlap, the last
  matching band in declared order wins. Days covered by no band use
  DefaultFactor.
*/
package sim

import "time"

// MonthDay is a calendar date without a year.
type MonthDay struct {
	Month time.Month
	Day   int
}

func (md MonthDay) ordinal() int { return int(md.Month)*100 + md.Day }

// SeasonBand is an inclusive [From, To] range of calendar days with a
// demand intensity factor.
type SeasonBand struct {
	Name   string
	From   MonthDay
	To     MonthDay
	Factor float64
}

func (b SeasonBand) contains(md MonthDay) bool {
	o := md.ordinal()
	return b.From.ordinal() <= o && o <= b.To.ordinal()
}

// CalendarConfig describes the operating calendar of the cafeteria.
type CalendarConfig struct {
	ReferenceYear int
	Closures      []MonthDay
	Bands         []SeasonBand
	DefaultFactor float64
}

// Demand intensity factors of the reference year.
const (
	factorSummerLow      = 0.063
	factorFirstSemester  = 0.214
	factorJuly           = 0.110
	factorSecondSemester = 0.201
	factorLowSeason      = 0.073
)

// DefaultCalendar returns the 2025 reference operating calendar.
func DefaultCalendar() *CalendarConfig {
	return &CalendarConfig{
		ReferenceYear: 2025,
		Closures: []MonthDay{
			{time.January, 1}, {time.January, 9},
			{time.March, 1}, {time.March, 2}, {time.March, 3}, {time.March, 4}, {time.March, 5},
			{time.April, 17}, {time.April, 18}, {time.April, 19},
			{time.May, 1},
			{time.November, 3}, {time.November, 4}, {time.November, 5},
			{time.November, 10}, {time.November, 28},
			{time.December, 8}, {time.December, 25},
		},
		Bands: []SeasonBand{
			// January 31 sits between the summer sessions and is billed at
			// the low-season default.
			{Name: "summer-low", From: MonthDay{time.January, 1}, To: MonthDay{time.January, 30}, Factor: factorSummerLow},
			{Name: "summer-low", From: MonthDay{time.February, 1}, To: MonthDay{time.March, 30}, Factor: factorSummerLow},
			{Name: "first-semester", From: MonthDay{time.March, 31}, To: MonthDay{time.July, 12}, Factor: factorFirstSemester},
			{Name: "july-transitional", From: MonthDay{time.July, 13}, To: MonthDay{time.July, 31}, Factor: factorJuly},
			{Name: "second-semester", From: MonthDay{time.August, 18}, To: MonthDay{time.November, 28}, Factor: factorSecondSemester},
		},
		DefaultFactor: factorLowSeason,
	}
}

// Date resolves a 1-based day of the year to a concrete date in the
// reference year.
func (c *CalendarConfig) Date(dayOfYear int) time.Time {
	return time.Date(c.ReferenceYear, time.January, 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, dayOfYear-1)
}

// Factor returns the seasonal intensity factor for a calendar day.
// The last matching band in declared order wins.
func (c *CalendarConfig) Factor(md MonthDay) float64 {
	factor := c.DefaultFactor
	for _, b := range c.Bands {
		if b.contains(md) {
			factor = b.Factor
		}
	}
	return factor
}

// ExpectedPatrons returns the expected number of patrons served on the
// given day of the year. Zero on weekends and closures; otherwise
// floor(floor(population x factor) x jitter) with jitter ~ U(0.99, 1.02).
// Pure aside from the injected random source.
func (c *CalendarConfig) ExpectedPatrons(dayOfYear, population int, rng RandomSource) int {
	date := c.Date(dayOfYear)
	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return 0
	}
	md := MonthDay{Month: date.Month(), Day: date.Day()}
	for _, closure := range c.Closures {
		if closure == md {
			return 0
		}
	}

	base := int(float64(population) * c.Factor(md))
	jitter := rng.Uniform(0.99, 1.02)
	return int(float64(base) * jitter)
}
