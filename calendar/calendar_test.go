// SPDX-License-Identifier: ice License 1.0

package calendar

import (
	"math"
	"testing"
	stdlibtime "time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ice-blockchain/hijrah/clock"
	"github.com/ice-blockchain/hijrah/terror"
)

func TestOf(t *testing.T) {
	t.Parallel()
	date, err := Of(1446, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1446), date.Year())
	assert.Equal(t, 10, date.Month())
	assert.Equal(t, 1, date.Day())
	assert.Equal(t, EraStandard, date.Era())
	assert.Equal(t, Hijrah, date.Chronology())
	assert.Equal(t, 267, date.DayOfYear())

	leapEnd, err := Of(1445, 12, 30)
	require.NoError(t, err)
	assert.True(t, leapEnd.IsLeapYear())
	assert.Equal(t, 355, leapEnd.DayOfYear())

	for _, invalid := range [][3]int64{
		{1446, 0, 1},
		{1446, 13, 1},
		{1446, 1, 0},
		{1446, 1, 31},
		{1446, 2, 30},
		{1446, 12, 30},
		{MaxYear + 1, 1, 1},
		{MinYear - 1, 1, 1},
	} {
		_, err = Of(invalid[0], int(invalid[1]), int(invalid[2]))
		require.ErrorIs(t, err, ErrInvalidDate, "%v", invalid)
		assert.Equal(t, "Date", terror.Temporal(err))
	}
	assert.Panics(t, func() { MustOf(1446, 2, 30) })
}

func TestEra(t *testing.T) {
	t.Parallel()
	assert.Equal(t, EraEarly, MustOf(MinStandardYear-1, 12, 29).Era())
	assert.Equal(t, EraStandard, MustOf(MinStandardYear, 1, 1).Era())
	assert.Equal(t, EraEarly, MustOf(1, 1, 1).Era())
	assert.Equal(t, EraEarly, MustOf(-5, 3, 7).Era())
	assert.Equal(t, "EARLY", EraEarly.String())
	assert.Equal(t, "AH", EraStandard.String())

	lastEarly, err := OfEpochDay(EraBoundaryEpochDay - 1)
	require.NoError(t, err)
	firstStandard, err := OfEpochDay(EraBoundaryEpochDay)
	require.NoError(t, err)
	assert.Equal(t, MustOf(1299, 12, 29), lastEarly)
	assert.Equal(t, MustOf(1300, 1, 1), firstStandard)
	assert.True(t, lastEarly.IsBefore(firstStandard))
	assert.True(t, firstStandard.IsAfter(lastEarly))
}

func TestKnownEpochDays(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		date     Date
		epochDay int64
	}{
		{MustOf(1, 1, 1), -492_148},
		{MustOf(0, 12, 29), -492_149},
		{MustOf(-1, 1, 1), -492_857},
		{MustOf(1300, 1, 1), -31_826},
		{MustOf(1299, 12, 29), -31_827},
		{MustOf(1446, 1, 1), 19_912},
		{MustOf(1446, 10, 1), 20_178},
	} {
		assert.Equal(t, tc.epochDay, tc.date.ToEpochDay(), tc.date.String())
		date, err := OfEpochDay(tc.epochDay)
		require.NoError(t, err)
		assert.Equal(t, tc.date, date)
	}
	assert.Equal(t, int64(-31_826), EraBoundaryEpochDay)
}

func TestEpochDayRoundTrip(t *testing.T) {
	t.Parallel()
	var previous Date
	for epochDay := EraBoundaryEpochDay - 3*daysPerCycle; epochDay <= EraBoundaryEpochDay+3*daysPerCycle; epochDay++ {
		date, err := OfEpochDay(epochDay)
		require.NoError(t, err)
		require.Equal(t, epochDay, date.ToEpochDay())
		roundTripped, err := Of(date.Year(), date.Month(), date.Day())
		require.NoError(t, err)
		require.Equal(t, date, roundTripped)
		if !previous.IsZero() {
			require.True(t, previous.IsBefore(date), "%v !< %v", previous, date)
			require.Equal(t, previous.ToEpochDay()+1, epochDay)
		}
		previous = date
	}
	for _, epochDay := range []int64{MinEpochDay, MinEpochDay + 1, -492_148 - 1, 0, MaxEpochDay - 1, MaxEpochDay} {
		date, err := OfEpochDay(epochDay)
		require.NoError(t, err)
		assert.Equal(t, epochDay, date.ToEpochDay())
	}
	assert.Equal(t, MustOf(MinYear, 1, 1), mustOfEpochDay(t, MinEpochDay))
	assert.Equal(t, MustOf(MaxYear, 12, 30), mustOfEpochDay(t, MaxEpochDay))
	_, err := OfEpochDay(MaxEpochDay + 1)
	require.ErrorIs(t, err, ErrArithmeticOverflow)
	_, err = OfEpochDay(MinEpochDay - 1)
	require.ErrorIs(t, err, ErrArithmeticOverflow)
}

func TestMonotonicity(t *testing.T) {
	t.Parallel()
	dates := []Date{
		MustOf(-100, 12, 29),
		MustOf(-1, 1, 1),
		MustOf(0, 6, 15),
		MustOf(1, 1, 1),
		MustOf(1299, 12, 29),
		MustOf(1300, 1, 1),
		MustOf(1445, 12, 30),
		MustOf(1446, 1, 1),
		MustOf(1600, 12, 30),
	}
	for ix := 1; ix < len(dates); ix++ {
		assert.Less(t, dates[ix-1].ToEpochDay(), dates[ix].ToEpochDay())
		assert.Equal(t, -1, dates[ix-1].CompareTo(dates[ix]))
		assert.Equal(t, 1, dates[ix].CompareTo(dates[ix-1]))
		assert.True(t, dates[ix].IsEqual(dates[ix]))
	}
}

func TestLengthOfMonth(t *testing.T) {
	t.Parallel()
	leapYearsOfCycle := map[int64]bool{2: true, 5: true, 7: true, 10: true, 13: true, 16: true, 18: true, 21: true, 24: true, 26: true, 29: true}
	for year := int64(-60); year <= 1500; year++ {
		yearOfCycle := floorMod(year-1, yearsPerCycle) + 1
		require.Equal(t, leapYearsOfCycle[yearOfCycle], IsLeapYear(year), "%v", year)
		days := 0
		for month := 1; month <= 12; month++ {
			length := LengthOfMonth(year, month)
			require.Contains(t, []int{29, 30}, length)
			days += length
		}
		if IsLeapYear(year) {
			require.Equal(t, 30, LengthOfMonth(year, 12))
			require.Equal(t, 355, LengthOfYear(year))
		} else {
			require.Equal(t, 29, LengthOfMonth(year, 12))
			require.Equal(t, 354, LengthOfYear(year))
		}
		require.Equal(t, LengthOfYear(year), days)
	}
	assert.Zero(t, LengthOfMonth(1446, 0))
	assert.Zero(t, LengthOfMonth(1446, 13))
}

func TestPlus(t *testing.T) {
	t.Parallel()
	assertPlus(t, MustOf(1300, 1, 1), MustOf(1299, 12, 29), 1, Days)
	assertPlus(t, MustOf(1299, 12, 29), MustOf(1300, 1, 1), -1, Days)
	assertPlus(t, MustOf(1446, 1, 8), MustOf(1446, 1, 1), 1, Weeks)
	assertPlus(t, MustOf(1446, 2, 29), MustOf(1446, 1, 30), 1, Months)
	assertPlus(t, MustOf(1447, 1, 29), MustOf(1446, 12, 29), 1, Months)
	assertPlus(t, MustOf(1445, 11, 30), MustOf(1446, 1, 30), -2, Months)
	assertPlus(t, MustOf(1446, 12, 29), MustOf(1445, 12, 30), 1, Years)
	assertPlus(t, MustOf(1299, 5, 5), MustOf(1309, 5, 5), -1, Decades)
	assertPlus(t, MustOf(1346, 5, 5), MustOf(1446, 5, 5), -1, Centuries)
	assertPlus(t, MustOf(446, 5, 5), MustOf(1446, 5, 5), -1, Millennia)
	assertPlus(t, MustOf(-554, 5, 5), MustOf(1446, 5, 5), -2, Millennia)

	date := MustOf(1446, 10, 1)
	_, err := date.Plus(1, Hours)
	require.ErrorIs(t, err, ErrUnsupportedUnit)
	_, err = date.PlusYears(MaxYear)
	require.ErrorIs(t, err, ErrArithmeticOverflow)
	_, err = date.PlusDays(math.MaxInt64)
	require.ErrorIs(t, err, ErrArithmeticOverflow)
	_, err = date.Minus(math.MinInt64, Days)
	require.ErrorIs(t, err, ErrArithmeticOverflow)
	_, err = date.Plus(math.MaxInt64, Millennia)
	require.ErrorIs(t, err, ErrArithmeticOverflow)
	minusOne, err := date.Minus(1, Days)
	require.NoError(t, err)
	assert.Equal(t, MustOf(1446, 9, 30), minusOne)
	same, err := date.PlusMonths(0)
	require.NoError(t, err)
	assert.Equal(t, date, same)
}

func TestWith(t *testing.T) {
	t.Parallel()
	date := MustOf(1446, 1, 30)
	withYear, err := date.WithYear(1200)
	require.NoError(t, err)
	assert.Equal(t, EraEarly, withYear.Era())
	_, err = date.WithMonth(2)
	require.ErrorIs(t, err, ErrInvalidDate)
	withDay, err := date.WithDayOfMonth(15)
	require.NoError(t, err)
	assert.Equal(t, MustOf(1446, 1, 15), withDay)
	withDayOfYear, err := date.WithDayOfYear(267)
	require.NoError(t, err)
	assert.Equal(t, MustOf(1446, 10, 1), withDayOfYear)
	_, err = date.WithDayOfYear(355)
	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestHostConversions(t *testing.T) {
	t.Parallel()
	riyadh := stdlibtime.FixedZone("AST", 3*60*60)
	date, err := FromTime(stdlibtime.Date(2025, stdlibtime.March, 31, 23, 30, 0, 0, riyadh))
	require.NoError(t, err)
	assert.Equal(t, MustOf(1446, 10, 1), date)
	assert.Equal(t, stdlibtime.Monday, date.Weekday())
	assert.Equal(t, stdlibtime.Date(2025, stdlibtime.March, 31, 0, 0, 0, 0, riyadh), date.ToTime(riyadh))
	assert.Equal(t, stdlibtime.Date(1882, stdlibtime.November, 12, 0, 0, 0, 0, stdlibtime.UTC), MustOf(1300, 1, 1).ToTime(stdlibtime.UTC))
	assert.Equal(t, stdlibtime.Thursday, mustOfEpochDay(t, 0).Weekday())
	early, err := FromTime(MustOf(-5, 3, 7).ToTime(stdlibtime.UTC))
	require.NoError(t, err)
	assert.Equal(t, MustOf(-5, 3, 7), early)

	fixed := clock.Fixed(stdlibtime.Date(2025, stdlibtime.March, 31, 22, 0, 0, 0, stdlibtime.UTC), riyadh)
	today, err := Now(fixed)
	require.NoError(t, err)
	assert.Equal(t, MustOf(1446, 10, 2), today)
	today, err = Now(clock.Fixed(fixed.Now(), stdlibtime.UTC))
	require.NoError(t, err)
	assert.Equal(t, MustOf(1446, 10, 1), today)
}

func TestStringAndParse(t *testing.T) {
	t.Parallel()
	for text, date := range map[string]Date{
		"1446-10-01":  MustOf(1446, 10, 1),
		"1299-12-29":  MustOf(1299, 12, 29),
		"0001-01-01":  MustOf(1, 1, 1),
		"0000-06-15":  MustOf(0, 6, 15),
		"-0005-03-07": MustOf(-5, 3, 7),
	} {
		assert.Equal(t, text, date.String())
		parsed, err := Parse(text)
		require.NoError(t, err)
		assert.Equal(t, date, parsed)
	}
	parsed, err := Parse("+1446-10-01")
	require.NoError(t, err)
	assert.Equal(t, MustOf(1446, 10, 1), parsed)
	assert.Empty(t, Date{}.String())
	for _, invalid := range []string{"", "1446", "1446-1-01", "1446-10-1", "146-10-01", "1446-1a-01", "1446/10/01", "1446-10-01T00"} {
		_, err = Parse(invalid)
		require.ErrorIs(t, err, ErrUnparseable, invalid)
	}
	_, err = Parse("1446-02-30")
	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestErrorData(t *testing.T) {
	t.Parallel()
	_, err := Of(1446, 2, 30)
	tErr := terror.As(err)
	require.NotNil(t, tErr)
	assert.Equal(t, map[string]any{terror.TemporalKey: "Date", "year": int64(1446), "month": 2, "day": 30}, tErr.Data)
	assert.True(t, errors.Is(err, ErrInvalidDate))
	assert.False(t, errors.Is(err, ErrArithmeticOverflow))
}

func TestChronology(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Hijrah-tabular", Hijrah.String())
	assert.Equal(t, Hijrah, MustOf(1446, 10, 1).Chronology())
	assert.NotEqual(t, ISO, Hijrah)
}

func TestZeroDate(t *testing.T) {
	t.Parallel()
	var zero Date
	for _, unit := range []Unit{Days, Weeks, Months, Years, Decades} {
		_, err := zero.Plus(1, unit)
		require.ErrorIs(t, err, ErrInvalidDate, unit)
		assert.Equal(t, "Date", terror.Temporal(err))
		_, err = zero.Minus(1, unit)
		require.ErrorIs(t, err, ErrInvalidDate, unit)
	}
	for _, plus := range []func(int64) (Date, error){zero.PlusDays, zero.PlusWeeks, zero.PlusMonths, zero.PlusYears} {
		moved, err := plus(1)
		require.ErrorIs(t, err, ErrInvalidDate)
		assert.True(t, moved.IsZero())
		_, err = plus(0)
		require.ErrorIs(t, err, ErrInvalidDate)
	}

	assert.Equal(t, MinEpochDay-1, zero.ToEpochDay())
	assert.Equal(t, 0, zero.DayOfYear())
	assert.True(t, zero.ToTime(stdlibtime.UTC).IsZero())
	earliest := mustOfEpochDay(t, MinEpochDay)
	assert.True(t, zero.IsBefore(earliest))
	assert.Less(t, zero.ToEpochDay(), earliest.ToEpochDay())
	assert.True(t, zero.IsEqual(Date{}))
}

func assertPlus(tb testing.TB, expected, start Date, amount int64, unit Unit) {
	tb.Helper()
	actual, err := start.Plus(amount, unit)
	require.NoError(tb, err)
	assert.Equal(tb, expected, actual, "%v + %v %v", start, amount, unit)
	back, err := actual.Minus(amount, unit)
	require.NoError(tb, err)
	if unit == Days || unit == Weeks {
		assert.Equal(tb, start, back)
	}
}

func mustOfEpochDay(tb testing.TB, epochDay int64) Date {
	tb.Helper()
	date, err := OfEpochDay(epochDay)
	require.NoError(tb, err)

	return date
}
