// SPDX-License-Identifier: ice License 1.0

// Package format picks, for any Hijrah value, the one ISO-like pattern it is written with,
// and formats 12-hour clock times with locale specific day period markers.
package format

import (
	"golang.org/x/text/language"

	"github.com/ice-blockchain/hijrah/calendar"
	"github.com/ice-blockchain/hijrah/datetime"
)

// Public API.

const (
	KindDate Kind = iota + 1
	KindLocalDateTime
	KindOffsetDate
	KindOffsetDateTime
	KindZonedDateTime
)

var (
	ErrUnsupportedTemporal = calendar.ErrUnsupportedTemporal

	//nolint:gochecknoglobals // Immutable formatters.
	ISODate = &Formatter{
		kind:    KindDate,
		pattern: "yyyy-MM-dd",
		format: func(value any) (string, error) {
			date, err := datetime.DateFrom(value)

			return date.String(), err
		},
		parse: func(text string) (calendar.Temporal, error) { return calendar.Parse(text) },
	}
	//nolint:gochecknoglobals // Immutable formatters.
	ISOLocalDateTime = &Formatter{
		kind:    KindLocalDateTime,
		pattern: "yyyy-MM-dd'T'HH:mm:ss[.SSSSSSSSS]",
		format: func(value any) (string, error) {
			ldt, err := datetime.LocalDateTimeFrom(value)

			return ldt.String(), err
		},
		parse: func(text string) (calendar.Temporal, error) { return datetime.ParseLocalDateTime(text) },
	}
	//nolint:gochecknoglobals // Immutable formatters.
	ISOOffsetDate = &Formatter{
		kind:    KindOffsetDate,
		pattern: "yyyy-MM-ddXXX",
		format: func(value any) (string, error) {
			od, err := datetime.OffsetDateFrom(value)

			return od.String(), err
		},
		parse: func(text string) (calendar.Temporal, error) { return datetime.ParseOffsetDate(text) },
	}
	//nolint:gochecknoglobals // Immutable formatters.
	ISOOffsetDateTime = &Formatter{
		kind:    KindOffsetDateTime,
		pattern: "yyyy-MM-dd'T'HH:mm:ss[.SSSSSSSSS]XXX",
		format: func(value any) (string, error) {
			odt, err := datetime.OffsetDateTimeFrom(value)

			return odt.String(), err
		},
		parse: func(text string) (calendar.Temporal, error) { return datetime.ParseOffsetDateTime(text) },
	}
	//nolint:gochecknoglobals // Immutable formatters.
	ISOZonedDateTime = &Formatter{
		kind:    KindZonedDateTime,
		pattern: "yyyy-MM-dd'T'HH:mm:ss[.SSSSSSSSS]XXX'['VV']'",
		format: func(value any) (string, error) {
			zdt, err := datetime.ZonedDateTimeFrom(value)

			return zdt.String(), err
		},
		parse: func(text string) (calendar.Temporal, error) { return datetime.ParseZonedDateTime(text) },
	}
)

type (
	Kind uint8

	// Formatter writes and reads one kind of Hijrah value. Format accepts any value the kind can be derived from.
	Formatter struct {
		format  func(value any) (string, error)
		parse   func(text string) (calendar.Temporal, error)
		pattern string
		kind    Kind
	}

	// Clock12 writes times of day as h:mm:ss[.fraction] followed by the day period marker of its locale.
	Clock12 struct {
		am, pm string
		locale language.Tag
	}
)

// Private API.

const (
	applicationYAMLKey = "hijrah/format"
	clock12Layout      = "3:04:05.999999999 PM"
	clock12Pattern     = "h:mm:ss[.SSSSSSSSS] a"
	hostAM             = "AM"
	hostPM             = "PM"
)

var (
	//nolint:gochecknoglobals // Immutable lookup, the first tag is the fallback.
	supportedLocales = []language.Tag{
		language.English,
		language.Arabic,
		language.Persian,
		language.Urdu,
		language.Turkish,
		language.Indonesian,
		language.Malay,
	}
	//nolint:gochecknoglobals // Immutable lookup, aligned with supportedLocales.
	dayPeriods = [][2]string{
		{hostAM, hostPM},
		{"ص", "م"},
		{"ق.ظ.", "ب.ظ."},
		{hostAM, hostPM},
		{"ÖÖ", "ÖS"},
		{hostAM, hostPM},
		{"PG", "PTG"},
	}
	//nolint:gochecknoglobals // Immutable matcher.
	localeMatcher = language.NewMatcher(supportedLocales)
	//nolint:gochecknoglobals // Loaded once, at runtime.
	defaultLocale string
)

type (
	config struct {
		Locale string `yaml:"locale" mapstructure:"locale"`
	}
)
