// SPDX-License-Identifier: ice License 1.0

package datetime

import (
	"cmp"
	stdlibtime "time"

	"github.com/pkg/errors"

	"github.com/ice-blockchain/hijrah/calendar"
	"github.com/ice-blockchain/hijrah/clock"
	"github.com/ice-blockchain/hijrah/internal/sealed"
	"github.com/ice-blockchain/hijrah/terror"
)

func OffsetDateTimeOf(dateTime LocalDateTime, offset Offset) OffsetDateTime {
	return OffsetDateTime{dateTime: dateTime, offset: offset}
}

// OffsetDateTimeOfInstant is t observed at the given offset.
func OffsetDateTimeOfInstant(t stdlibtime.Time, offset Offset) (OffsetDateTime, error) {
	ldt, err := LocalDateTimeOfInstant(t, offset.Location())
	if err != nil {
		return OffsetDateTime{}, terror.Tag(err, offsetDateTimeName)
	}

	return OffsetDateTime{dateTime: ldt, offset: offset}, nil
}

// NowOffsetDateTime is the current instant at the offset the clock's zone observes now.
func NowOffsetDateTime(c clock.Clock) (OffsetDateTime, error) {
	now := c.Now().In(c.Location())

	return OffsetDateTimeOfInstant(now, OffsetOfTime(now))
}

func (OffsetDateTime) Chronology() calendar.Chronology {
	return calendar.Hijrah
}

func (OffsetDateTime) Seal(sealed.Token) {}

func (o OffsetDateTime) IsZero() bool {
	return o.dateTime.IsZero()
}

func (o OffsetDateTime) LocalDateTime() LocalDateTime {
	return o.dateTime
}

func (o OffsetDateTime) Date() calendar.Date {
	return o.dateTime.date
}

func (o OffsetDateTime) Time() LocalTime {
	return o.dateTime.time
}

func (o OffsetDateTime) Offset() Offset {
	return o.offset
}

func (o OffsetDateTime) ToOffsetDate() OffsetDate {
	return OffsetDate{date: o.dateTime.date, offset: o.offset}
}

func (o OffsetDateTime) ToEpochSecond() int64 {
	return o.dateTime.ToEpochSecond(o.offset)
}

// Instant is the host time o denotes, located in a fixed zone of o's offset.
// The zero value denotes the zero host time.
func (o OffsetDateTime) Instant() stdlibtime.Time {
	if o.IsZero() {
		return stdlibtime.Time{}
	}

	return stdlibtime.Unix(o.ToEpochSecond(), int64(o.dateTime.time.nanosecond)).In(o.offset.Location())
}

// Plus runs on the local timeline and keeps the offset.
func (o OffsetDateTime) Plus(amount int64, unit calendar.Unit) (OffsetDateTime, error) {
	ldt, err := o.dateTime.Plus(amount, unit)
	if err != nil {
		return OffsetDateTime{}, terror.Tag(err, offsetDateTimeName)
	}

	return OffsetDateTime{dateTime: ldt, offset: o.offset}, nil
}

func (o OffsetDateTime) Minus(amount int64, unit calendar.Unit) (OffsetDateTime, error) {
	ldt, err := o.dateTime.Minus(amount, unit)
	if err != nil {
		return OffsetDateTime{}, terror.Tag(err, offsetDateTimeName)
	}

	return OffsetDateTime{dateTime: ldt, offset: o.offset}, nil
}

func (o OffsetDateTime) WithOffsetSameInstant(offset Offset) (OffsetDateTime, error) {
	if offset == o.offset {
		return o, nil
	}

	return OffsetDateTimeOfInstant(o.Instant(), offset)
}

func (o OffsetDateTime) AtZoneSameInstant(loc *stdlibtime.Location) (ZonedDateTime, error) {
	return ZonedDateTimeOfInstant(o.Instant(), loc)
}

// compareInstant puts zero values before every instant.
func (o OffsetDateTime) compareInstant(other OffsetDateTime) int {
	if o.IsZero() || other.IsZero() {
		return compareZero(o.IsZero(), other.IsZero())
	}
	if c := cmp.Compare(o.ToEpochSecond(), other.ToEpochSecond()); c != 0 {
		return c
	}

	return cmp.Compare(o.dateTime.time.nanosecond, other.dateTime.time.nanosecond)
}

// CompareTo orders by instant, then by local date-time, so it is consistent with Equal.
func (o OffsetDateTime) CompareTo(other OffsetDateTime) int {
	if c := o.compareInstant(other); c != 0 {
		return c
	}

	return o.dateTime.CompareTo(other.dateTime)
}

func (o OffsetDateTime) IsBefore(other OffsetDateTime) bool {
	return o.compareInstant(other) < 0
}

func (o OffsetDateTime) IsAfter(other OffsetDateTime) bool {
	return o.compareInstant(other) > 0
}

// IsEqual compares instants only: the same moment at different offsets is equal.
func (o OffsetDateTime) IsEqual(other OffsetDateTime) bool {
	return o.compareInstant(other) == 0
}

// Equal requires the same local date-time and the same offset.
func (o OffsetDateTime) Equal(other OffsetDateTime) bool {
	return o == other
}

func (o OffsetDateTime) String() string {
	if o.IsZero() {
		return ""
	}

	return o.dateTime.String() + o.offset.String()
}

func ParseOffsetDateTime(text string) (OffsetDateTime, error) {
	split := offsetIndex(text, 1)
	if split < 0 {
		return OffsetDateTime{}, unparseable(offsetDateTimeName, text, errors.New("expected date-time followed by an offset"))
	}
	ldt, err := ParseLocalDateTime(text[:split])
	if err != nil {
		return OffsetDateTime{}, terror.Tag(err, offsetDateTimeName)
	}
	offset, err := ParseOffset(text[split:])
	if err != nil {
		return OffsetDateTime{}, terror.Tag(err, offsetDateTimeName)
	}

	return OffsetDateTime{dateTime: ldt, offset: offset}, nil
}
