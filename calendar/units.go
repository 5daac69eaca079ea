// SPDX-License-Identifier: ice License 1.0

package calendar

import (
	stdlibtime "time"
)

func (u Unit) IsTimeBased() bool {
	return u >= Nanoseconds && u <= HalfDays
}

func (u Unit) IsDateBased() bool {
	return u >= Days && u <= Millennia
}

// Duration is the exact length of a time based unit, 0 for date based ones.
func (u Unit) Duration() stdlibtime.Duration {
	switch u { //nolint:exhaustive // Date based units have no exact duration.
	case Nanoseconds:
		return stdlibtime.Nanosecond
	case Microseconds:
		return stdlibtime.Microsecond
	case Milliseconds:
		return stdlibtime.Millisecond
	case Seconds:
		return stdlibtime.Second
	case Minutes:
		return stdlibtime.Minute
	case Hours:
		return stdlibtime.Hour
	case HalfDays:
		return 12 * stdlibtime.Hour //nolint:gomnd // .
	default:
		return 0
	}
}

func (u Unit) String() string {
	switch u {
	case Nanoseconds:
		return "Nanos"
	case Microseconds:
		return "Micros"
	case Milliseconds:
		return "Millis"
	case Seconds:
		return "Seconds"
	case Minutes:
		return "Minutes"
	case Hours:
		return "Hours"
	case HalfDays:
		return "HalfDays"
	case Days:
		return "Days"
	case Weeks:
		return "Weeks"
	case Months:
		return "Months"
	case Years:
		return "Years"
	case Decades:
		return "Decades"
	case Centuries:
		return "Centuries"
	case Millennia:
		return "Millennia"
	default:
		return "Unknown"
	}
}
