// SPDX-License-Identifier: ice License 1.0

package datetime

import (
	"github.com/pkg/errors"

	"github.com/ice-blockchain/hijrah/calendar"
	"github.com/ice-blockchain/hijrah/terror"
)

// DateFrom extracts the Hijrah date of any Hijrah value.
// Values of another chronology, host times included, fail with calendar.ErrChronologyMismatch.
func DateFrom(value any) (calendar.Date, error) {
	temporal, err := hijrah(value, "Date")
	if err != nil {
		return calendar.Date{}, err
	}
	switch typed := temporal.(type) {
	case calendar.Date:
		return typed, nil
	case LocalDateTime:
		return typed.date, nil
	case OffsetDate:
		return typed.date, nil
	case OffsetDateTime:
		return typed.dateTime.date, nil
	case ZonedDateTime:
		return typed.dateTime.date, nil
	}

	return calendar.Date{}, unsupported(temporal, "Date")
}

func LocalDateTimeFrom(value any) (LocalDateTime, error) {
	temporal, err := hijrah(value, localDateTimeName)
	if err != nil {
		return LocalDateTime{}, err
	}
	switch typed := temporal.(type) {
	case LocalDateTime:
		return typed, nil
	case OffsetDateTime:
		return typed.dateTime, nil
	case ZonedDateTime:
		return typed.dateTime, nil
	case calendar.Date, OffsetDate:
	}

	return LocalDateTime{}, unsupported(temporal, localDateTimeName)
}

func OffsetDateFrom(value any) (OffsetDate, error) {
	temporal, err := hijrah(value, offsetDateName)
	if err != nil {
		return OffsetDate{}, err
	}
	switch typed := temporal.(type) {
	case OffsetDate:
		return typed, nil
	case OffsetDateTime:
		return typed.ToOffsetDate(), nil
	case ZonedDateTime:
		return typed.ToOffsetDateTime().ToOffsetDate(), nil
	case calendar.Date, LocalDateTime:
	}

	return OffsetDate{}, unsupported(temporal, offsetDateName)
}

func OffsetDateTimeFrom(value any) (OffsetDateTime, error) {
	temporal, err := hijrah(value, offsetDateTimeName)
	if err != nil {
		return OffsetDateTime{}, err
	}
	switch typed := temporal.(type) {
	case OffsetDateTime:
		return typed, nil
	case ZonedDateTime:
		return typed.ToOffsetDateTime(), nil
	case calendar.Date, LocalDateTime, OffsetDate:
	}

	return OffsetDateTime{}, unsupported(temporal, offsetDateTimeName)
}

// ZonedDateTimeFrom upgrades an OffsetDateTime into the fixed zone of its offset.
func ZonedDateTimeFrom(value any) (ZonedDateTime, error) {
	temporal, err := hijrah(value, zonedDateTimeName)
	if err != nil {
		return ZonedDateTime{}, err
	}
	switch typed := temporal.(type) {
	case ZonedDateTime:
		return typed, nil
	case OffsetDateTime:
		return ZonedDateTimeOfInstant(typed.Instant(), typed.offset.Location())
	case calendar.Date, LocalDateTime, OffsetDate:
	}

	return ZonedDateTime{}, unsupported(temporal, zonedDateTimeName)
}

func hijrah(value any, target string) (calendar.Temporal, error) {
	if temporal, ok := value.(calendar.Temporal); ok && !isZero(temporal) {
		return temporal, nil
	}
	chronology := calendar.Chronology("unknown")
	if chronological, ok := value.(calendar.Chronological); ok {
		chronology = chronological.Chronology()
	}
	if chronology == calendar.Hijrah {
		return nil, unsupported(value, target)
	}

	return nil, terror.New(
		errors.Wrapf(calendar.ErrChronologyMismatch, "%T of chronology %v can't be converted to a Hijrah %v", value, chronology, target),
		map[string]any{terror.TemporalKey: target, terror.InputKey: value},
	)
}

func isZero(temporal calendar.Temporal) bool {
	zeroer, ok := temporal.(interface{ IsZero() bool })

	return ok && zeroer.IsZero()
}

func zeroValue(target string) error {
	return terror.New(
		errors.Wrapf(calendar.ErrInvalidDate, "the zero %v has no position in the calendar", target),
		map[string]any{terror.TemporalKey: target},
	)
}

// compareZero orders zero values before every other value.
func compareZero(zero, otherZero bool) int {
	switch {
	case zero == otherZero:
		return 0
	case zero:
		return -1
	default:
		return 1
	}
}

func unsupported(value any, target string) error {
	return terror.New(
		errors.Wrapf(calendar.ErrUnsupportedTemporal, "%T carries no %v", value, target),
		map[string]any{terror.TemporalKey: target, terror.InputKey: value},
	)
}
