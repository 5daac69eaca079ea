// SPDX-License-Identifier: ice License 1.0

package datetime

import (
	"cmp"
	"strings"

	"github.com/pkg/errors"

	"github.com/ice-blockchain/hijrah/calendar"
	"github.com/ice-blockchain/hijrah/clock"
	"github.com/ice-blockchain/hijrah/internal/sealed"
	"github.com/ice-blockchain/hijrah/terror"
)

func OffsetDateOf(date calendar.Date, offset Offset) OffsetDate {
	return OffsetDate{date: date, offset: offset}
}

// NowOffsetDate is the current date at the offset the clock's zone observes now.
func NowOffsetDate(c clock.Clock) (OffsetDate, error) {
	now := c.Now().In(c.Location())
	date, err := calendar.FromTime(now)
	if err != nil {
		return OffsetDate{}, terror.Tag(err, offsetDateName)
	}

	return OffsetDate{date: date, offset: OffsetOfTime(now)}, nil
}

func (OffsetDate) Chronology() calendar.Chronology {
	return calendar.Hijrah
}

func (OffsetDate) Seal(sealed.Token) {}

func (o OffsetDate) IsZero() bool {
	return o.date.IsZero()
}

func (o OffsetDate) Date() calendar.Date {
	return o.date
}

func (o OffsetDate) Offset() Offset {
	return o.offset
}

func (o OffsetDate) AtTime(t LocalTime) OffsetDateTime {
	return OffsetDateTime{dateTime: LocalDateTime{date: o.date, time: t}, offset: o.offset}
}

func (o OffsetDate) Plus(amount int64, unit calendar.Unit) (OffsetDate, error) {
	date, err := o.date.Plus(amount, unit)
	if err != nil {
		return OffsetDate{}, terror.Tag(err, offsetDateName)
	}

	return OffsetDate{date: date, offset: o.offset}, nil
}

func (o OffsetDate) Minus(amount int64, unit calendar.Unit) (OffsetDate, error) {
	date, err := o.date.Minus(amount, unit)
	if err != nil {
		return OffsetDate{}, terror.Tag(err, offsetDateName)
	}

	return OffsetDate{date: date, offset: o.offset}, nil
}

func (o OffsetDate) startOfDay() int64 {
	return o.date.ToEpochDay()*secondsPerDay - int64(o.offset.seconds)
}

func (o OffsetDate) compareStartOfDay(other OffsetDate) int {
	if o.IsZero() || other.IsZero() {
		return compareZero(o.IsZero(), other.IsZero())
	}

	return cmp.Compare(o.startOfDay(), other.startOfDay())
}

// CompareTo orders by the instant the day starts at, then by the local date.
func (o OffsetDate) CompareTo(other OffsetDate) int {
	if c := o.compareStartOfDay(other); c != 0 {
		return c
	}

	return o.date.CompareTo(other.date)
}

func (o OffsetDate) IsBefore(other OffsetDate) bool {
	return o.compareStartOfDay(other) < 0
}

func (o OffsetDate) IsAfter(other OffsetDate) bool {
	return o.compareStartOfDay(other) > 0
}

func (o OffsetDate) IsEqual(other OffsetDate) bool {
	return o.compareStartOfDay(other) == 0
}

func (o OffsetDate) String() string {
	if o.IsZero() {
		return ""
	}

	return o.date.String() + o.offset.String()
}

func ParseOffsetDate(text string) (OffsetDate, error) {
	split := offsetIndex(text, 1)
	if split < 0 {
		return OffsetDate{}, unparseable(offsetDateName, text, errors.New("expected date followed by an offset"))
	}
	date, err := calendar.Parse(text[:split])
	if err != nil {
		return OffsetDate{}, terror.Tag(err, offsetDateName)
	}
	offset, err := ParseOffset(text[split:])
	if err != nil {
		return OffsetDate{}, terror.Tag(err, offsetDateName)
	}

	return OffsetDate{date: date, offset: offset}, nil
}

// offsetIndex finds where a trailing offset starts, ignoring the first skip bytes (a leading year sign).
func offsetIndex(text string, skip int) int {
	if len(text) <= skip {
		return -1
	}
	if ix := strings.LastIndexAny(text[skip:], "Zz"); ix >= 0 {
		return ix + skip
	}
	ix := strings.LastIndexAny(text[skip:], "+-")
	if ix < 0 {
		return -1
	}
	// Date separators are dashes as well, a date ends with -dd while an offset starts with -HH:.
	if rest := text[skip+ix:]; !strings.Contains(rest, ":") {
		return -1
	}

	return ix + skip
}
