// SPDX-License-Identifier: ice License 1.0

// Package datetime composes calendar.Date with a time of day, a fixed offset or a named zone.
// Date fields go through package calendar, everything else is delegated to the standard time package.
package datetime

import (
	"database/sql"
	"database/sql/driver"
	"sync"
	stdlibtime "time"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/ice-blockchain/hijrah/calendar"
)

// Public API.

var (
	ErrInvalidTime   = errors.New("invalid time of day")
	ErrInvalidOffset = errors.New("invalid offset")
	ErrUnknownZone   = errors.New("unknown zone")

	//nolint:gochecknoglobals // Immutable constants.
	UTC = Offset{}
	//nolint:gochecknoglobals // Immutable constants.
	Midnight = LocalTime{}
	//nolint:gochecknoglobals,gomnd // Immutable constants.
	Noon = LocalTime{hour: 12}
)

type (
	// Offset is a fixed distance from UTC, within +-18h. The zero value is UTC.
	Offset struct {
		seconds int32
	}
	// LocalTime is a time of day with nanosecond precision. The zero value is midnight.
	LocalTime struct {
		hour       uint8
		minute     uint8
		second     uint8
		nanosecond int32
	}
	// LocalDateTime is a Hijrah date with a time of day, without any offset or zone.
	LocalDateTime struct {
		date calendar.Date
		time LocalTime
	}
	// OffsetDate is a Hijrah date pinned to a fixed offset.
	OffsetDate struct {
		date   calendar.Date
		offset Offset
	}
	// OffsetDateTime is an instant expressed as a Hijrah local date-time plus the offset it was observed at.
	OffsetDateTime struct {
		dateTime LocalDateTime
		offset   Offset
	}
	// ZonedDateTime is an instant in a named zone. Its offset is always the one the zone rules give for that instant.
	ZonedDateTime struct {
		zone     *stdlibtime.Location
		dateTime LocalDateTime
		offset   Offset
	}
)

// Private API.

const (
	nanosPerSecond = int64(stdlibtime.Second)
	nanosPerDay    = int64(24 * stdlibtime.Hour)
	secondsPerDay  = int64(24 * 60 * 60)
	maxOffset      = 18 * 60 * 60
	timeLayout     = "15:04:05.999999999"

	localTimeFields      = 4
	localDateTimeFields  = 7
	offsetDateFields     = 4
	offsetDateTimeFields = 8
	zonedDateTimeFields  = 9

	localTimeName      = "LocalTime"
	offsetName         = "Offset"
	localDateTimeName  = "LocalDateTime"
	offsetDateName     = "OffsetDate"
	offsetDateTimeName = "OffsetDateTime"
	zonedDateTimeName  = "ZonedDateTime"
)

var (
	_ calendar.Temporal = LocalDateTime{}
	_ calendar.Temporal = OffsetDate{}
	_ calendar.Temporal = OffsetDateTime{}
	_ calendar.Temporal = ZonedDateTime{}

	_ json.MarshalerContext   = (*LocalTime)(nil)
	_ json.UnmarshalerContext = (*LocalTime)(nil)
	_ json.MarshalerContext   = (*Offset)(nil)
	_ json.UnmarshalerContext = (*Offset)(nil)
	_ json.MarshalerContext   = (*LocalDateTime)(nil)
	_ json.UnmarshalerContext = (*LocalDateTime)(nil)
	_ json.MarshalerContext   = (*OffsetDate)(nil)
	_ json.UnmarshalerContext = (*OffsetDate)(nil)
	_ json.MarshalerContext   = (*OffsetDateTime)(nil)
	_ json.UnmarshalerContext = (*OffsetDateTime)(nil)
	_ json.MarshalerContext   = (*ZonedDateTime)(nil)
	_ json.UnmarshalerContext = (*ZonedDateTime)(nil)

	_ msgpack.CustomEncoder = (*LocalTime)(nil)
	_ msgpack.CustomDecoder = (*LocalTime)(nil)
	_ msgpack.CustomEncoder = (*Offset)(nil)
	_ msgpack.CustomDecoder = (*Offset)(nil)
	_ msgpack.CustomEncoder = (*LocalDateTime)(nil)
	_ msgpack.CustomDecoder = (*LocalDateTime)(nil)
	_ msgpack.CustomEncoder = (*OffsetDate)(nil)
	_ msgpack.CustomDecoder = (*OffsetDate)(nil)
	_ msgpack.CustomEncoder = (*OffsetDateTime)(nil)
	_ msgpack.CustomDecoder = (*OffsetDateTime)(nil)
	_ msgpack.CustomEncoder = (*ZonedDateTime)(nil)
	_ msgpack.CustomDecoder = (*ZonedDateTime)(nil)

	_ sql.Scanner   = (*LocalDateTime)(nil)
	_ driver.Valuer = (*LocalDateTime)(nil)
	_ sql.Scanner   = (*OffsetDateTime)(nil)
	_ driver.Valuer = (*OffsetDateTime)(nil)
	_ sql.Scanner   = (*ZonedDateTime)(nil)
	_ driver.Valuer = (*ZonedDateTime)(nil)

	_ pgtype.TimestampScanner   = (*LocalDateTime)(nil)
	_ pgtype.TimestampValuer    = (*LocalDateTime)(nil)
	_ pgtype.TimestamptzScanner = (*OffsetDateTime)(nil)
	_ pgtype.TimestamptzValuer  = (*OffsetDateTime)(nil)

	_ interface{ MarshalBinary() ([]byte, error) } = (*ZonedDateTime)(nil)
	_ interface{ UnmarshalBinary([]byte) error }   = (*ZonedDateTime)(nil)
	_ interface{ MarshalText() ([]byte, error) }   = (*ZonedDateTime)(nil)
	_ interface{ UnmarshalText([]byte) error }     = (*ZonedDateTime)(nil)

	//nolint:gochecknoglobals // Zones LoadZone already resolved, by name.
	loadableZones sync.Map
)
