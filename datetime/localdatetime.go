// SPDX-License-Identifier: ice License 1.0

package datetime

import (
	"math"
	"strings"
	stdlibtime "time"

	"github.com/pkg/errors"

	"github.com/ice-blockchain/hijrah/calendar"
	"github.com/ice-blockchain/hijrah/clock"
	"github.com/ice-blockchain/hijrah/internal/sealed"
	"github.com/ice-blockchain/hijrah/internal/xmath"
	"github.com/ice-blockchain/hijrah/terror"
)

func LocalDateTimeOf(date calendar.Date, t LocalTime) LocalDateTime {
	return LocalDateTime{date: date, time: t}
}

func LocalDateTimeOfFields(year int64, month, day, hour, minute, second, nanosecond int) (LocalDateTime, error) {
	date, err := calendar.Of(year, month, day)
	if err != nil {
		return LocalDateTime{}, terror.Tag(err, localDateTimeName)
	}
	t, err := TimeOf(hour, minute, second, nanosecond)
	if err != nil {
		return LocalDateTime{}, terror.Tag(err, localDateTimeName)
	}

	return LocalDateTime{date: date, time: t}, nil
}

// LocalDateTimeOfInstant is the wall clock date-time t observes in loc. A nil loc keeps t's own location.
func LocalDateTimeOfInstant(t stdlibtime.Time, loc *stdlibtime.Location) (LocalDateTime, error) {
	if loc != nil {
		t = t.In(loc)
	}
	date, err := calendar.FromTime(t)
	if err != nil {
		return LocalDateTime{}, terror.Tag(errors.Wrapf(err, "failed to convert %v", t), localDateTimeName)
	}

	return LocalDateTime{date: date, time: TimeOfHost(t)}, nil
}

func NowLocalDateTime(c clock.Clock) (LocalDateTime, error) {
	return LocalDateTimeOfInstant(c.Now(), c.Location())
}

func (LocalDateTime) Chronology() calendar.Chronology {
	return calendar.Hijrah
}

func (LocalDateTime) Seal(sealed.Token) {}

func (l LocalDateTime) IsZero() bool {
	return l.date.IsZero()
}

func (l LocalDateTime) Date() calendar.Date {
	return l.date
}

func (l LocalDateTime) Time() LocalTime {
	return l.time
}

func (l LocalDateTime) WithDate(date calendar.Date) LocalDateTime {
	return LocalDateTime{date: date, time: l.time}
}

func (l LocalDateTime) WithTime(t LocalTime) LocalDateTime {
	return LocalDateTime{date: l.date, time: t}
}

// Plus moves date based units through the calendar and time based ones on the nanosecond line,
// carrying whole days into the date.
func (l LocalDateTime) Plus(amount int64, unit calendar.Unit) (LocalDateTime, error) {
	if l.IsZero() {
		return LocalDateTime{}, zeroValue(localDateTimeName)
	}
	if !unit.IsTimeBased() {
		date, err := l.date.Plus(amount, unit)
		if err != nil {
			return LocalDateTime{}, terror.Tag(err, localDateTimeName)
		}

		return LocalDateTime{date: date, time: l.time}, nil
	}
	if amount == 0 {
		return l, nil
	}
	unitNanos := int64(unit.Duration())
	perDay := nanosPerDay / unitNanos
	nanoOfDay := l.time.NanoOfDay() + xmath.FloorMod(amount, perDay)*unitNanos
	days := xmath.FloorDiv(amount, perDay) + xmath.FloorDiv(nanoOfDay, nanosPerDay)
	date, err := l.date.PlusDays(days)
	if err != nil {
		return LocalDateTime{}, terror.Tag(err, localDateTimeName)
	}

	return LocalDateTime{date: date, time: fromNanoOfDay(xmath.FloorMod(nanoOfDay, nanosPerDay))}, nil
}

func (l LocalDateTime) Minus(amount int64, unit calendar.Unit) (LocalDateTime, error) {
	if amount == math.MinInt64 {
		ldt, err := l.Plus(math.MaxInt64, unit)
		if err != nil {
			return LocalDateTime{}, err
		}

		return ldt.Plus(1, unit)
	}

	return l.Plus(-amount, unit)
}

func (l LocalDateTime) PlusYears(years int64) (LocalDateTime, error) {
	return l.Plus(years, calendar.Years)
}

func (l LocalDateTime) PlusMonths(months int64) (LocalDateTime, error) {
	return l.Plus(months, calendar.Months)
}

func (l LocalDateTime) PlusWeeks(weeks int64) (LocalDateTime, error) {
	return l.Plus(weeks, calendar.Weeks)
}

func (l LocalDateTime) PlusDays(days int64) (LocalDateTime, error) {
	return l.Plus(days, calendar.Days)
}

func (l LocalDateTime) PlusHours(hours int64) (LocalDateTime, error) {
	return l.Plus(hours, calendar.Hours)
}

func (l LocalDateTime) PlusMinutes(minutes int64) (LocalDateTime, error) {
	return l.Plus(minutes, calendar.Minutes)
}

func (l LocalDateTime) PlusSeconds(seconds int64) (LocalDateTime, error) {
	return l.Plus(seconds, calendar.Seconds)
}

func (l LocalDateTime) PlusNanos(nanos int64) (LocalDateTime, error) {
	return l.Plus(nanos, calendar.Nanoseconds)
}

func (l LocalDateTime) AtOffset(offset Offset) OffsetDateTime {
	return OffsetDateTime{dateTime: l, offset: offset}
}

// AtZone resolves l against the rules of loc. Gaps and overlaps are settled the way time.Date settles them.
func (l LocalDateTime) AtZone(loc *stdlibtime.Location) (ZonedDateTime, error) {
	return ZonedDateTimeOf(l, loc)
}

func (l LocalDateTime) ToEpochSecond(offset Offset) int64 {
	return l.date.ToEpochDay()*secondsPerDay + l.time.SecondOfDay() - int64(offset.seconds)
}

// host is the same wall clock reading in loc, as resolved by the host calendar.
func (l LocalDateTime) host(loc *stdlibtime.Location) stdlibtime.Time {
	year, month, day := l.date.ToTime(stdlibtime.UTC).Date()

	return stdlibtime.Date(year, month, day, l.time.Hour(), l.time.Minute(), l.time.Second(), l.time.Nanosecond(), loc)
}

func (l LocalDateTime) CompareTo(other LocalDateTime) int {
	if c := l.date.CompareTo(other.date); c != 0 {
		return c
	}

	return l.time.CompareTo(other.time)
}

func (l LocalDateTime) IsBefore(other LocalDateTime) bool {
	return l.CompareTo(other) < 0
}

func (l LocalDateTime) IsAfter(other LocalDateTime) bool {
	return l.CompareTo(other) > 0
}

func (l LocalDateTime) IsEqual(other LocalDateTime) bool {
	return l.CompareTo(other) == 0
}

func (l LocalDateTime) String() string {
	if l.IsZero() {
		return ""
	}

	return l.date.String() + "T" + l.time.String()
}

func ParseLocalDateTime(text string) (LocalDateTime, error) {
	datePart, timePart, found := strings.Cut(text, "T")
	if !found {
		return LocalDateTime{}, unparseable(localDateTimeName, text, errors.New("expected date'T'time"))
	}
	date, err := calendar.Parse(datePart)
	if err != nil {
		return LocalDateTime{}, terror.Tag(err, localDateTimeName)
	}
	t, err := ParseTime(timePart)
	if err != nil {
		return LocalDateTime{}, terror.Tag(err, localDateTimeName)
	}

	return LocalDateTime{date: date, time: t}, nil
}
