// SPDX-License-Identifier: ice License 1.0

package datetime

import (
	"cmp"
	"strings"
	stdlibtime "time"

	"github.com/pkg/errors"

	"github.com/ice-blockchain/hijrah/calendar"
	"github.com/ice-blockchain/hijrah/clock"
	"github.com/ice-blockchain/hijrah/internal/sealed"
	"github.com/ice-blockchain/hijrah/log"
	"github.com/ice-blockchain/hijrah/terror"
)

// ZonedDateTimeOf resolves a local date-time against the rules of loc (UTC if nil).
// A local time inside a gap or an overlap is settled by time.Date.
func ZonedDateTimeOf(ldt LocalDateTime, loc *stdlibtime.Location) (ZonedDateTime, error) {
	if ldt.IsZero() {
		return ZonedDateTime{}, zeroValue(zonedDateTimeName)
	}
	if loc == nil {
		loc = stdlibtime.UTC
	}

	return ZonedDateTimeOfInstant(ldt.host(loc), loc)
}

// ZonedDateTimeOfInstant is t observed in loc. A nil loc keeps t's own location.
// A zone LoadZone can't find by name, like time.FixedZone("AST", ...), is replaced by the fixed zone of its offset at t.
func ZonedDateTimeOfInstant(t stdlibtime.Time, loc *stdlibtime.Location) (ZonedDateTime, error) {
	if loc == nil {
		loc = t.Location()
	}
	t = t.In(loc)
	loc = portable(loc, t)
	t = t.In(loc)
	ldt, err := LocalDateTimeOfInstant(t, nil)
	if err != nil {
		return ZonedDateTime{}, terror.Tag(err, zonedDateTimeName)
	}

	return ZonedDateTime{zone: loc, dateTime: ldt, offset: OffsetOfTime(t)}, nil
}

func NowZonedDateTime(c clock.Clock) (ZonedDateTime, error) {
	return ZonedDateTimeOfInstant(c.Now(), c.Location())
}

// LoadZone accepts IANA names, UTC, Local and the fixed offsets Offset.String renders.
func LoadZone(name string) (*stdlibtime.Location, error) {
	if offset, err := ParseOffset(name); err == nil {
		return offset.Location(), nil
	}
	loc, err := stdlibtime.LoadLocation(name)
	if err != nil {
		return nil, terror.New(
			errors.Wrapf(ErrUnknownZone, "%q: %v", name, err),
			map[string]any{terror.TemporalKey: zonedDateTimeName, terror.InputKey: name},
		)
	}

	return loc, nil
}

// portable keeps loc only when LoadZone resolves its name to the same offset at t.
func portable(loc *stdlibtime.Location, t stdlibtime.Time) *stdlibtime.Location {
	name, offset := loc.String(), OffsetOfTime(t)
	if name != "" {
		loaded, known := loadableZones.Load(name)
		if !known {
			if zone, err := LoadZone(name); err == nil {
				loaded, _ = loadableZones.LoadOrStore(name, zone)
			}
		}
		if zone, ok := loaded.(*stdlibtime.Location); ok && OffsetOfTime(t.In(zone)) == offset {
			return loc
		}
	}
	log.Debug("zone can't be loaded back by name, using its offset instead", name, offset)

	return offset.Location()
}

func (ZonedDateTime) Chronology() calendar.Chronology {
	return calendar.Hijrah
}

func (ZonedDateTime) Seal(sealed.Token) {}

func (z ZonedDateTime) IsZero() bool {
	return z.dateTime.IsZero()
}

func (z ZonedDateTime) Zone() *stdlibtime.Location {
	if z.zone == nil {
		return stdlibtime.UTC
	}

	return z.zone
}

// Offset is derived from the zone rules at this instant.
func (z ZonedDateTime) Offset() Offset {
	return z.offset
}

func (z ZonedDateTime) LocalDateTime() LocalDateTime {
	return z.dateTime
}

func (z ZonedDateTime) Date() calendar.Date {
	return z.dateTime.date
}

func (z ZonedDateTime) Time() LocalTime {
	return z.dateTime.time
}

func (z ZonedDateTime) ToOffsetDateTime() OffsetDateTime {
	return OffsetDateTime{dateTime: z.dateTime, offset: z.offset}
}

func (z ZonedDateTime) ToEpochSecond() int64 {
	return z.dateTime.ToEpochSecond(z.offset)
}

func (z ZonedDateTime) Instant() stdlibtime.Time {
	return z.ToOffsetDateTime().Instant().In(z.Zone())
}

// Plus moves date based units on the local timeline and re-resolves the zone,
// while time based units move the instant.
func (z ZonedDateTime) Plus(amount int64, unit calendar.Unit) (ZonedDateTime, error) {
	if unit.IsTimeBased() {
		odt, err := z.ToOffsetDateTime().Plus(amount, unit)
		if err != nil {
			return ZonedDateTime{}, terror.Tag(err, zonedDateTimeName)
		}

		return ZonedDateTimeOfInstant(odt.Instant(), z.Zone())
	}
	ldt, err := z.dateTime.Plus(amount, unit)
	if err != nil {
		return ZonedDateTime{}, terror.Tag(err, zonedDateTimeName)
	}

	return ZonedDateTimeOf(ldt, z.Zone())
}

func (z ZonedDateTime) Minus(amount int64, unit calendar.Unit) (ZonedDateTime, error) {
	if unit.IsTimeBased() {
		odt, err := z.ToOffsetDateTime().Minus(amount, unit)
		if err != nil {
			return ZonedDateTime{}, terror.Tag(err, zonedDateTimeName)
		}

		return ZonedDateTimeOfInstant(odt.Instant(), z.Zone())
	}
	ldt, err := z.dateTime.Minus(amount, unit)
	if err != nil {
		return ZonedDateTime{}, terror.Tag(err, zonedDateTimeName)
	}

	return ZonedDateTimeOf(ldt, z.Zone())
}

func (z ZonedDateTime) WithZoneSameInstant(loc *stdlibtime.Location) (ZonedDateTime, error) {
	return ZonedDateTimeOfInstant(z.Instant(), loc)
}

func (z ZonedDateTime) CompareTo(other ZonedDateTime) int {
	if c := z.ToOffsetDateTime().CompareTo(other.ToOffsetDateTime()); c != 0 {
		return c
	}

	return cmp.Compare(z.Zone().String(), other.Zone().String())
}

func (z ZonedDateTime) IsBefore(other ZonedDateTime) bool {
	return z.ToOffsetDateTime().IsBefore(other.ToOffsetDateTime())
}

func (z ZonedDateTime) IsAfter(other ZonedDateTime) bool {
	return z.ToOffsetDateTime().IsAfter(other.ToOffsetDateTime())
}

func (z ZonedDateTime) IsEqual(other ZonedDateTime) bool {
	return z.ToOffsetDateTime().IsEqual(other.ToOffsetDateTime())
}

// Equal requires the same local date-time, offset and zone name.
func (z ZonedDateTime) Equal(other ZonedDateTime) bool {
	return z.dateTime == other.dateTime && z.offset == other.offset && z.Zone().String() == other.Zone().String()
}

func (z ZonedDateTime) String() string {
	if z.IsZero() {
		return ""
	}

	return z.ToOffsetDateTime().String() + "[" + z.Zone().String() + "]"
}

// ParseZonedDateTime reads date'T'time+offset[zone]. The offset pins the instant, the zone is then applied to it.
func ParseZonedDateTime(text string) (ZonedDateTime, error) {
	open := strings.LastIndexByte(text, '[')
	if open < 0 || !strings.HasSuffix(text, "]") {
		return ZonedDateTime{}, unparseable(zonedDateTimeName, text, errors.New("expected a trailing [zone]"))
	}
	loc, err := LoadZone(text[open+1 : len(text)-1])
	if err != nil {
		return ZonedDateTime{}, err
	}
	odt, err := ParseOffsetDateTime(text[:open])
	if err != nil {
		return ZonedDateTime{}, terror.Tag(err, zonedDateTimeName)
	}

	return ZonedDateTimeOfInstant(odt.Instant(), loc)
}
