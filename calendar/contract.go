// SPDX-License-Identifier: ice License 1.0

// Package calendar models Hijrah dates on the tabular 30-year lunar cycle and their
// bijection with the epoch day shared with the host time package.
package calendar

import (
	"database/sql"
	"database/sql/driver"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/ice-blockchain/hijrah/internal/sealed"
)

// Public API.

const (
	Hijrah Chronology = "Hijrah-tabular"
	ISO    Chronology = "ISO"

	// MinStandardYear is the first year the reference host chronology (Umm al-Qura) supports natively.
	// Every year before it belongs to EraEarly.
	MinStandardYear = 1300
	// MaxYear is the last year the reference host chronology supports.
	MaxYear = 1600
	MinYear = -999_999_999
)

const (
	EraEarly Era = iota + 1
	EraStandard
)

const (
	Nanoseconds Unit = iota + 1
	Microseconds
	Milliseconds
	Seconds
	Minutes
	Hours
	HalfDays
	Days
	Weeks
	Months
	Years
	Decades
	Centuries
	Millennia
)

var (
	ErrInvalidDate         = errors.New("invalid hijrah date")
	ErrChronologyMismatch  = errors.New("chronology mismatch")
	ErrArithmeticOverflow  = errors.New("arithmetic overflow")
	ErrUnsupportedUnit     = errors.New("unsupported unit")
	ErrUnparseable         = errors.New("unparseable text")
	ErrUnsupportedTemporal = errors.New("unsupported temporal")

	//nolint:gochecknoglobals // Immutable range bounds, derived from the cycle tables.
	MinEpochDay = toEpochDay(MinYear, 1, 1)
	//nolint:gochecknoglobals // Immutable range bounds, derived from the cycle tables.
	MaxEpochDay = toEpochDay(MaxYear, monthsPerYear, LengthOfMonth(MaxYear, monthsPerYear))
	// EraBoundaryEpochDay is the first epoch day of EraStandard.
	//nolint:gochecknoglobals // Immutable range bounds, derived from the cycle tables.
	EraBoundaryEpochDay = toEpochDay(MinStandardYear, 1, 1)
)

type (
	Chronology string
	Era        uint8
	Unit       uint8

	// Chronological is anything that can tell which calendar system its fields are expressed in.
	Chronological interface {
		Chronology() Chronology
	}

	// Temporal is the closed set of Hijrah values: Date plus the composites of package datetime.
	// Seal can only be satisfied inside this module.
	//
	//sumtype:decl
	Temporal interface {
		Chronological
		Seal(sealed.Token)
	}

	// Date is an immutable Hijrah calendar date. The zero value is not a valid date, see IsZero.
	Date struct {
		era   Era
		year  int32
		month uint8
		day   uint8
	}
)

// Private API.

const (
	// Epoch day of 1 Muharram 1 AH (civil epoch, 16 July 622 Julian).
	hijrahEpochDay = -492_148
	yearsPerCycle  = 30
	daysPerCycle   = 10_631
	monthsPerYear  = 12
	daysPerWeek    = 7
	shortMonthDays = 29
	longMonthDays  = 30
	secondsPerDay  = 86_400
	minDigitsYear  = 4
	unixWeekday    = 4 // 1970-01-01 was a Thursday.
)

var (
	_ Temporal                                     = Date{}
	_ msgpack.CustomEncoder                        = (*Date)(nil)
	_ msgpack.CustomDecoder                        = (*Date)(nil)
	_ json.UnmarshalerContext                      = (*Date)(nil)
	_ json.MarshalerContext                        = (*Date)(nil)
	_ sql.Scanner                                  = (*Date)(nil)
	_ driver.Valuer                                = (*Date)(nil)
	_ pgtype.DateScanner                           = (*Date)(nil)
	_ pgtype.DateValuer                            = (*Date)(nil)
	_ interface{ MarshalBinary() ([]byte, error) } = (*Date)(nil)
	_ interface{ MarshalText() ([]byte, error) }   = (*Date)(nil)
	_ interface{ UnmarshalBinary([]byte) error }   = (*Date)(nil)
	_ interface{ UnmarshalText([]byte) error }     = (*Date)(nil)

	//nolint:gochecknoglobals // Immutable lookup tables.
	monthStart = [monthsPerYear + 1]int64{0, 30, 59, 89, 118, 148, 177, 207, 236, 266, 295, 325, 354}
	//nolint:gochecknoglobals // Immutable lookup table, built once.
	cycleYearStart = buildCycleYearStart()
)
