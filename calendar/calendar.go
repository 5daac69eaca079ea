// SPDX-License-Identifier: ice License 1.0

package calendar

import (
	"cmp"
	"fmt"
	"math"
	"strconv"
	"strings"
	stdlibtime "time"

	"github.com/pkg/errors"

	"github.com/ice-blockchain/hijrah/clock"
	"github.com/ice-blockchain/hijrah/internal/sealed"
	"github.com/ice-blockchain/hijrah/log"
	"github.com/ice-blockchain/hijrah/terror"
)

const temporalName = "Date"

func Of(year int64, month, day int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, invalidDate(year, month, day, "year out of range [%v, %v]", MinYear, MaxYear)
	}
	if month < 1 || month > monthsPerYear {
		return Date{}, invalidDate(year, month, day, "month %v out of range [1, %v]", month, monthsPerYear)
	}
	if length := LengthOfMonth(year, month); day < 1 || day > length {
		return Date{}, invalidDate(year, month, day, "day %v out of range [1, %v]", day, length)
	}

	return newDate(year, month, day), nil
}

func MustOf(year int64, month, day int) Date {
	date, err := Of(year, month, day)
	log.Panic(err) //nolint:revive // That's the point.

	return date
}

func OfYearDay(year int64, dayOfYear int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, invalidDate(year, 0, dayOfYear, "year out of range [%v, %v]", MinYear, MaxYear)
	}
	if length := LengthOfYear(year); dayOfYear < 1 || dayOfYear > length {
		return Date{}, invalidDate(year, 0, dayOfYear, "day of year %v out of range [1, %v]", dayOfYear, length)
	}

	return OfEpochDay(toEpochDay(year, 1, 1) + int64(dayOfYear-1))
}

func OfEpochDay(epochDay int64) (Date, error) {
	if epochDay < MinEpochDay || epochDay > MaxEpochDay {
		return Date{}, terror.New(
			errors.Wrapf(ErrArithmeticOverflow, "epoch day %v out of range [%v, %v]", epochDay, MinEpochDay, MaxEpochDay),
			map[string]any{terror.TemporalKey: temporalName, "epochDay": epochDay},
		)
	}

	return newDate(fromEpochDay(epochDay)), nil
}

// Now is the current date in the clock's location.
func Now(c clock.Clock) (Date, error) {
	return FromTime(c.Now().In(c.Location()))
}

// FromTime returns the Hijrah date of the wall clock date of t, in t's own location.
func FromTime(t stdlibtime.Time) (Date, error) {
	year, month, day := t.Date()
	midnight := stdlibtime.Date(year, month, day, 0, 0, 0, 0, stdlibtime.UTC)

	return OfEpochDay(floorDiv(midnight.Unix(), secondsPerDay))
}

func newDate(year int64, month, day int) Date {
	era := EraStandard
	if year < MinStandardYear {
		era = EraEarly
	}

	return Date{era: era, year: int32(year), month: uint8(month), day: uint8(day)} //nolint:gosec // Validated by the callers.
}

func invalidDate(year int64, month, day int, format string, args ...any) error {
	return terror.New(
		errors.Wrapf(ErrInvalidDate, format, args...),
		map[string]any{terror.TemporalKey: temporalName, "year": year, "month": month, "day": day},
	)
}

func (Date) Chronology() Chronology {
	return Hijrah
}

func (Date) Seal(sealed.Token) {}

func (d Date) IsZero() bool {
	return d.month == 0
}

func (d Date) Era() Era {
	return d.era
}

func (d Date) Year() int64 {
	return int64(d.year)
}

func (d Date) Month() int {
	return int(d.month)
}

func (d Date) Day() int {
	return int(d.day)
}

// DayOfYear is 0 for the zero Date.
func (d Date) DayOfYear() int {
	if d.IsZero() {
		return 0
	}

	return int(monthStart[d.month-1]) + int(d.day)
}

func (d Date) Weekday() stdlibtime.Weekday {
	return stdlibtime.Weekday(floorMod(d.ToEpochDay()+unixWeekday, daysPerWeek))
}

func (d Date) IsLeapYear() bool {
	return IsLeapYear(d.Year())
}

func (d Date) LengthOfMonth() int {
	return LengthOfMonth(d.Year(), d.Month())
}

func (d Date) LengthOfYear() int {
	return LengthOfYear(d.Year())
}

// ToEpochDay of the zero Date is the day before MinEpochDay, so it sorts before every valid date.
func (d Date) ToEpochDay() int64 {
	if d.IsZero() {
		return MinEpochDay - 1
	}

	return toEpochDay(d.Year(), d.Month(), d.Day())
}

// ToTime returns the start of the day in loc, as computed by the host calendar.
// The zero Date maps to the zero host time.
func (d Date) ToTime(loc *stdlibtime.Location) stdlibtime.Time {
	if d.IsZero() {
		return stdlibtime.Time{}
	}
	year, month, day := stdlibtime.Unix(d.ToEpochDay()*secondsPerDay, 0).UTC().Date()

	return stdlibtime.Date(year, month, day, 0, 0, 0, 0, loc)
}

// CompareTo orders by era, then year, month and day.
func (d Date) CompareTo(other Date) int {
	switch {
	case d.era != other.era:
		return cmp.Compare(d.era, other.era)
	case d.year != other.year:
		return cmp.Compare(d.year, other.year)
	case d.month != other.month:
		return cmp.Compare(d.month, other.month)
	default:
		return cmp.Compare(d.day, other.day)
	}
}

func (d Date) IsBefore(other Date) bool {
	return d.CompareTo(other) < 0
}

func (d Date) IsAfter(other Date) bool {
	return d.CompareTo(other) > 0
}

func (d Date) IsEqual(other Date) bool {
	return d.CompareTo(other) == 0
}

func (d Date) Plus(amount int64, unit Unit) (Date, error) {
	if d.IsZero() {
		return Date{}, errZeroDate()
	}
	var (
		scaled int64
		err    error
	)
	switch unit { //nolint:exhaustive // Time based units are rejected below.
	case Days:
		return d.PlusDays(amount)
	case Weeks:
		return d.PlusWeeks(amount)
	case Months:
		return d.PlusMonths(amount)
	case Years:
		return d.PlusYears(amount)
	case Decades:
		scaled, err = multiplyExact(amount, 10) //nolint:gomnd // Years per decade.
	case Centuries:
		scaled, err = multiplyExact(amount, 100) //nolint:gomnd // Years per century.
	case Millennia:
		scaled, err = multiplyExact(amount, 1000) //nolint:gomnd // Years per millennium.
	default:
		return Date{}, errors.Wrapf(ErrUnsupportedUnit, "%v can't be added to a date", unit)
	}
	if err != nil {
		return Date{}, d.overflow(err)
	}

	return d.PlusYears(scaled)
}

func (d Date) Minus(amount int64, unit Unit) (Date, error) {
	if amount == math.MinInt64 {
		date, err := d.Plus(math.MaxInt64, unit)
		if err != nil {
			return Date{}, err
		}

		return date.Plus(1, unit)
	}

	return d.Plus(-amount, unit)
}

func (d Date) PlusDays(days int64) (Date, error) {
	if d.IsZero() {
		return Date{}, errZeroDate()
	}
	if days == 0 {
		return d, nil
	}
	epochDay, err := addExact(d.ToEpochDay(), days)
	if err != nil {
		return Date{}, d.overflow(err)
	}

	return OfEpochDay(epochDay)
}

func (d Date) PlusWeeks(weeks int64) (Date, error) {
	if d.IsZero() {
		return Date{}, errZeroDate()
	}
	days, err := multiplyExact(weeks, daysPerWeek)
	if err != nil {
		return Date{}, d.overflow(err)
	}

	return d.PlusDays(days)
}

// PlusMonths keeps the day of month, clamped to the length of the resulting month.
func (d Date) PlusMonths(months int64) (Date, error) {
	if d.IsZero() {
		return Date{}, errZeroDate()
	}
	if months == 0 {
		return d, nil
	}
	monthCount, err := addExact(d.Year()*monthsPerYear+int64(d.month-1), months)
	if err != nil {
		return Date{}, d.overflow(err)
	}

	return d.resolve(floorDiv(monthCount, monthsPerYear), int(floorMod(monthCount, monthsPerYear))+1)
}

// PlusYears keeps month and day, clamping the 30th of the 12th month when the target year is not a leap year.
func (d Date) PlusYears(years int64) (Date, error) {
	if d.IsZero() {
		return Date{}, errZeroDate()
	}
	if years == 0 {
		return d, nil
	}
	year, err := addExact(d.Year(), years)
	if err != nil {
		return Date{}, d.overflow(err)
	}

	return d.resolve(year, d.Month())
}

func (d Date) resolve(year int64, month int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, d.overflow(errors.Errorf("year %v out of range [%v, %v]", year, MinYear, MaxYear))
	}

	return newDate(year, month, min(d.Day(), LengthOfMonth(year, month))), nil
}

func errZeroDate() error {
	return terror.New(
		errors.Wrap(ErrInvalidDate, "the zero Date has no position in the calendar"),
		map[string]any{terror.TemporalKey: temporalName},
	)
}

func (d Date) overflow(err error) error {
	return terror.New(
		errors.Wrapf(ErrArithmeticOverflow, "%v: %v", d, err),
		map[string]any{terror.TemporalKey: temporalName},
	)
}

func (d Date) WithYear(year int64) (Date, error) {
	return Of(year, d.Month(), d.Day())
}

func (d Date) WithMonth(month int) (Date, error) {
	return Of(d.Year(), month, d.Day())
}

func (d Date) WithDayOfMonth(day int) (Date, error) {
	return Of(d.Year(), d.Month(), day)
}

func (d Date) WithDayOfYear(dayOfYear int) (Date, error) {
	return OfYearDay(d.Year(), dayOfYear)
}

// String renders yyyy-MM-dd using the proleptic year, signed when below 1.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	year := d.Year()
	sign := ""
	if year < 0 {
		sign, year = "-", -year
	}

	return fmt.Sprintf("%v%0*d-%02d-%02d", sign, minDigitsYear, year, d.month, d.day)
}

// Parse reads the yyyy-MM-dd form produced by String.
func Parse(text string) (Date, error) {
	body, sign := text, int64(1)
	switch {
	case strings.HasPrefix(body, "-"):
		body, sign = body[1:], -1
	case strings.HasPrefix(body, "+"):
		body = body[1:]
	}
	parts := strings.Split(body, "-")
	if len(parts) != 3 || len(parts[0]) < minDigitsYear || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return Date{}, unparseable(text, errors.New("expected yyyy-MM-dd"))
	}
	year, err := ParseDigits(parts[0])
	if err != nil {
		return Date{}, unparseable(text, errors.Wrap(err, "year"))
	}
	month, err := ParseDigits(parts[1])
	if err != nil {
		return Date{}, unparseable(text, errors.Wrap(err, "month"))
	}
	day, err := ParseDigits(parts[2])
	if err != nil {
		return Date{}, unparseable(text, errors.Wrap(err, "day"))
	}

	return Of(sign*year, int(month), int(day))
}

// ParseDigits parses an unsigned run of ASCII digits.
func ParseDigits(text string) (int64, error) {
	if text == "" || strings.IndexFunc(text, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return 0, errors.Errorf("%q is not a number", text)
	}
	val, err := strconv.ParseInt(text, 10, 64)

	return val, errors.Wrapf(err, "failed to parse %q", text)
}

func unparseable(text string, cause error) error {
	return terror.New(
		errors.Wrapf(ErrUnparseable, "%q: %v", text, cause),
		map[string]any{terror.TemporalKey: temporalName, terror.InputKey: text},
	)
}

func (e Era) String() string {
	switch e {
	case EraEarly:
		return "EARLY"
	case EraStandard:
		return "AH"
	default:
		return ""
	}
}

func (c Chronology) String() string {
	return string(c)
}
