// SPDX-License-Identifier: ice License 1.0

package datetime

import (
	"cmp"
	stdlibtime "time"

	"github.com/pkg/errors"

	"github.com/ice-blockchain/hijrah/log"
	"github.com/ice-blockchain/hijrah/terror"
)

func TimeOf(hour, minute, second, nanosecond int) (LocalTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 ||
		nanosecond < 0 || int64(nanosecond) >= nanosPerSecond {
		return LocalTime{}, terror.New(
			errors.Wrapf(ErrInvalidTime, "%02d:%02d:%02d.%09d", hour, minute, second, nanosecond),
			map[string]any{
				terror.TemporalKey: localTimeName,
				"hour":             hour,
				"minute":           minute,
				"second":           second,
				"nanosecond":       nanosecond,
			},
		)
	}

	return LocalTime{hour: uint8(hour), minute: uint8(minute), second: uint8(second), nanosecond: int32(nanosecond)}, nil //nolint:gosec // Validated.
}

func MustTimeOf(hour, minute, second, nanosecond int) LocalTime {
	t, err := TimeOf(hour, minute, second, nanosecond)
	log.Panic(err) //nolint:revive // That's the point.

	return t
}

func TimeOfNanoOfDay(nanoOfDay int64) (LocalTime, error) {
	if nanoOfDay < 0 || nanoOfDay >= nanosPerDay {
		return LocalTime{}, terror.New(
			errors.Wrapf(ErrInvalidTime, "nano of day %v out of range [0, %v)", nanoOfDay, nanosPerDay),
			map[string]any{terror.TemporalKey: localTimeName, "nanoOfDay": nanoOfDay},
		)
	}

	return fromNanoOfDay(nanoOfDay), nil
}

// TimeOfHost is the wall clock time of t, in t's own location.
func TimeOfHost(t stdlibtime.Time) LocalTime {
	hour, minute, second := t.Clock()

	return LocalTime{hour: uint8(hour), minute: uint8(minute), second: uint8(second), nanosecond: int32(t.Nanosecond())} //nolint:gosec // Host clock ranges.
}

func fromNanoOfDay(nanoOfDay int64) LocalTime {
	d := stdlibtime.Duration(nanoOfDay)

	//nolint:gosec // Each field is already reduced to its range.
	return LocalTime{
		hour:       uint8(d / stdlibtime.Hour),
		minute:     uint8(d % stdlibtime.Hour / stdlibtime.Minute),
		second:     uint8(d % stdlibtime.Minute / stdlibtime.Second),
		nanosecond: int32(d % stdlibtime.Second),
	}
}

func (t LocalTime) Hour() int {
	return int(t.hour)
}

func (t LocalTime) Minute() int {
	return int(t.minute)
}

func (t LocalTime) Second() int {
	return int(t.second)
}

func (t LocalTime) Nanosecond() int {
	return int(t.nanosecond)
}

func (t LocalTime) NanoOfDay() int64 {
	return int64(t.hour)*int64(stdlibtime.Hour) +
		int64(t.minute)*int64(stdlibtime.Minute) +
		int64(t.second)*nanosPerSecond +
		int64(t.nanosecond)
}

func (t LocalTime) SecondOfDay() int64 {
	return t.NanoOfDay() / nanosPerSecond
}

func (t LocalTime) CompareTo(other LocalTime) int {
	return cmp.Compare(t.NanoOfDay(), other.NanoOfDay())
}

func (t LocalTime) IsBefore(other LocalTime) bool {
	return t.CompareTo(other) < 0
}

func (t LocalTime) IsAfter(other LocalTime) bool {
	return t.CompareTo(other) > 0
}

// Host is the same wall clock time on 0001-01-01 UTC, for host layouts.
func (t LocalTime) Host() stdlibtime.Time {
	return stdlibtime.Date(1, stdlibtime.January, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), stdlibtime.UTC)
}

// String renders HH:mm:ss with the shortest fraction that keeps the precision.
func (t LocalTime) String() string {
	return t.Host().Format(timeLayout)
}

func ParseTime(text string) (LocalTime, error) {
	parsed, err := stdlibtime.Parse(timeLayout, text)
	if err != nil {
		return LocalTime{}, unparseable(localTimeName, text, err)
	}

	return TimeOfHost(parsed), nil
}
