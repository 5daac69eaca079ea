// SPDX-License-Identifier: ice License 1.0

package calendar

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/ice-blockchain/hijrah/internal/xmath"
)

// IsLeapYear reports whether year has 355 days.
// Years 2, 5, 7, 10, 13, 16, 18, 21, 24, 26 and 29 of every 30-year cycle are leap years.
func IsLeapYear(year int64) bool {
	return floorMod(14+11*year, yearsPerCycle) < 11 //nolint:gomnd // Closed form of the cycle pattern above.
}

func LengthOfYear(year int64) int {
	if IsLeapYear(year) {
		return int(monthStart[monthsPerYear]) + 1
	}

	return int(monthStart[monthsPerYear])
}

// LengthOfMonth is 30 for odd months, 29 for even ones, and 30 for the 12th month of a leap year.
// It returns 0 for a month outside 1-12.
func LengthOfMonth(year int64, month int) int {
	switch {
	case month < 1 || month > monthsPerYear:
		return 0
	case month == monthsPerYear && IsLeapYear(year):
		return longMonthDays
	case month%2 == 1:
		return longMonthDays
	default:
		return shortMonthDays
	}
}

func buildCycleYearStart() [yearsPerCycle + 1]int64 {
	var starts [yearsPerCycle + 1]int64
	for i := 1; i <= yearsPerCycle; i++ {
		starts[i] = starts[i-1] + int64(LengthOfYear(int64(i)))
	}
	if starts[yearsPerCycle] != daysPerCycle {
		panic(errors.Errorf("cycle table is broken: %v days instead of %v", starts[yearsPerCycle], daysPerCycle))
	}

	return starts
}

// toEpochDay expects already validated fields.
func toEpochDay(year int64, month, day int) int64 {
	cycle, yearOfCycle := floorDiv(year-1, yearsPerCycle), floorMod(year-1, yearsPerCycle)

	return hijrahEpochDay + cycle*daysPerCycle + cycleYearStart[yearOfCycle] + monthStart[month-1] + int64(day-1)
}

// fromEpochDay expects epochDay within [MinEpochDay, MaxEpochDay].
func fromEpochDay(epochDay int64) (year int64, month, day int) {
	sinceEpoch := epochDay - hijrahEpochDay
	cycle, dayOfCycle := floorDiv(sinceEpoch, daysPerCycle), floorMod(sinceEpoch, daysPerCycle)
	yearOfCycle := sort.Search(yearsPerCycle, func(ix int) bool { return cycleYearStart[ix+1] > dayOfCycle })
	dayOfYear := dayOfCycle - cycleYearStart[yearOfCycle]
	// The 30th day of a leap year's 12th month falls past monthStart[12], hence the search is capped at the 12th month.
	monthIx := sort.Search(monthsPerYear-1, func(ix int) bool { return monthStart[ix+1] > dayOfYear })

	return cycle*yearsPerCycle + int64(yearOfCycle) + 1, monthIx + 1, int(dayOfYear-monthStart[monthIx]) + 1
}

func floorDiv(x, y int64) int64 {
	return xmath.FloorDiv(x, y)
}

func floorMod(x, y int64) int64 {
	return xmath.FloorMod(x, y)
}

func addExact(x, y int64) (int64, error) {
	sum, ok := xmath.AddExact(x, y)
	if !ok {
		return 0, errors.Wrapf(ErrArithmeticOverflow, "%v + %v", x, y)
	}

	return sum, nil
}

func multiplyExact(x, y int64) (int64, error) {
	product, ok := xmath.MultiplyExact(x, y)
	if !ok {
		return 0, errors.Wrapf(ErrArithmeticOverflow, "%v * %v", x, y)
	}

	return product, nil
}
