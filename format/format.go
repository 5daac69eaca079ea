// SPDX-License-Identifier: ice License 1.0

package format

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/ice-blockchain/hijrah/calendar"
	"github.com/ice-blockchain/hijrah/datetime"
	"github.com/ice-blockchain/hijrah/log"
	"github.com/ice-blockchain/hijrah/terror"
)

// RecommendedFormatter returns the formatter a Hijrah value is written with.
// Anything outside calendar.Temporal, foreign dates included, fails with ErrUnsupportedTemporal.
func RecommendedFormatter(value any) (*Formatter, error) {
	temporal, ok := value.(calendar.Temporal)
	if !ok {
		return nil, terror.New(
			errors.Wrapf(ErrUnsupportedTemporal, "no formatter for %T", value),
			map[string]any{terror.InputKey: value},
		)
	}
	switch temporal.(type) {
	case calendar.Date:
		return ISODate, nil
	case datetime.LocalDateTime:
		return ISOLocalDateTime, nil
	case datetime.OffsetDate:
		return ISOOffsetDate, nil
	case datetime.OffsetDateTime:
		return ISOOffsetDateTime, nil
	case datetime.ZonedDateTime:
		return ISOZonedDateTime, nil
	}

	return nil, terror.New(errors.Wrapf(ErrUnsupportedTemporal, "no formatter for %T", value), map[string]any{terror.InputKey: value})
}

// Format writes value with its recommended formatter.
func Format(value any) (string, error) {
	formatter, err := RecommendedFormatter(value)
	if err != nil {
		return "", err
	}

	return formatter.Format(value.(calendar.Temporal)) //nolint:forcetypeassert // Checked by RecommendedFormatter.
}

// ParseAny tries every formatter, most specific first, and returns the first value that parses.
func ParseAny(text string) (calendar.Temporal, error) {
	var errs []error
	for _, formatter := range []*Formatter{ISOZonedDateTime, ISOOffsetDateTime, ISOLocalDateTime, ISOOffsetDate, ISODate} {
		temporal, err := formatter.Parse(text)
		if err == nil {
			return temporal, nil
		}
		log.Debug("format mismatch", formatter.Kind(), text, err)
		errs = append(errs, err)
	}

	return nil, terror.New(
		multierror.Append(errors.Wrapf(calendar.ErrUnparseable, "%q matches no Hijrah format", text), errs...),
		map[string]any{terror.InputKey: text},
	)
}

func (f *Formatter) Kind() Kind {
	return f.kind
}

func (f *Formatter) Pattern() string {
	return f.pattern
}

func (f *Formatter) Format(value calendar.Temporal) (string, error) {
	text, err := f.format(value)
	if err != nil {
		return "", errors.Wrapf(err, "failed to format %T as %v", value, f.kind)
	}

	return text, nil
}

func (f *Formatter) Parse(text string) (calendar.Temporal, error) {
	temporal, err := f.parse(text)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %q as %v", text, f.kind)
	}

	return temporal, nil
}

func (f *Formatter) String() string {
	return f.pattern
}

func (k Kind) String() string {
	switch k {
	case KindDate:
		return "Date"
	case KindLocalDateTime:
		return "LocalDateTime"
	case KindOffsetDate:
		return "OffsetDate"
	case KindOffsetDateTime:
		return "OffsetDateTime"
	case KindZonedDateTime:
		return "ZonedDateTime"
	default:
		return "Unknown"
	}
}
