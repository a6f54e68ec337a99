package timezone

import (
	"time"
	_ "time/tzdata"
)

const DefaultTimezone = "Europe/Bucharest"

const dateLayout = "2006-01-02"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

// Clock answers "what day is it" for the business timezone. Visibility and
// booking rules compare calendar dates in that zone, not in UTC.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

func NewClock(tz string) Clock {
	return Clock{loc: Location(tz), now: time.Now}
}

// FixedClock always reports at. Used by tests and replay tooling.
func FixedClock(tz string, at time.Time) Clock {
	return Clock{loc: Location(tz), now: func() time.Time { return at }}
}

func (c Clock) Location() *time.Location {
	if c.loc == nil {
		return Location(DefaultTimezone)
	}
	return c.loc
}

func (c Clock) Now() time.Time {
	now := time.Now
	if c.now != nil {
		now = c.now
	}
	return now().In(c.Location())
}

// Today is the current calendar date as YYYY-MM-DD.
func (c Clock) Today() string {
	return c.Now().Format(dateLayout)
}

// AddDays returns the date days after Today.
func (c Clock) AddDays(days int) string {
	return c.Now().AddDate(0, 0, days).Format(dateLayout)
}
