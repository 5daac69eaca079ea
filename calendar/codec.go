// SPDX-License-Identifier: ice License 1.0

package calendar

import (
	"context"
	"database/sql/driver"
	stdlibtime "time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/ice-blockchain/hijrah/internal/textcodec"
)

const dateFields = 3

func (d Date) MarshalJSON(_ context.Context) ([]byte, error) {
	return textcodec.Quote(d.String(), d.IsZero())
}

func (d *Date) UnmarshalJSON(_ context.Context, bytes []byte) error {
	text, ok, err := textcodec.Unquote(bytes)
	if err != nil || !ok {
		*d = Date{}

		return errors.Wrap(err, "failed to Date.UnmarshalJSON")
	}

	return d.UnmarshalText([]byte(text))
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = Date{}

		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return errors.Wrap(err, "failed to Date.UnmarshalText")
	}
	*d = parsed

	return nil
}

func (d Date) EncodeMsgpack(enc *msgpack.Encoder) error {
	if d.IsZero() {
		return errors.Wrap(enc.EncodeNil(), "failed to EncodeNil")
	}
	if err := enc.EncodeArrayLen(dateFields); err != nil {
		return errors.Wrap(err, "failed to EncodeArrayLen")
	}

	return errors.Wrap(d.EncodeMsgpackFields(enc), "failed to Date.EncodeMsgpackFields")
}

// EncodeMsgpackFields writes year, month and day without any framing, for composites embedding a date.
func (d Date) EncodeMsgpackFields(enc *msgpack.Encoder) error {
	for _, field := range [dateFields]int64{d.Year(), int64(d.month), int64(d.day)} {
		if err := enc.EncodeInt(field); err != nil {
			return errors.Wrapf(err, "failed to EncodeInt %v", field)
		}
	}

	return nil
}

func (d *Date) DecodeMsgpack(dec *msgpack.Decoder) error {
	fields, err := dec.DecodeArrayLen()
	if err != nil {
		return errors.Wrap(err, "failed to DecodeArrayLen")
	}
	if fields == -1 {
		*d = Date{}

		return nil
	}
	if fields != dateFields {
		return errors.Wrapf(ErrUnparseable, "expected %v date fields, got %v", dateFields, fields)
	}
	*d, err = DecodeMsgpackFields(dec)

	return err
}

// DecodeMsgpackFields is the counterpart of Date.EncodeMsgpackFields.
func DecodeMsgpackFields(dec *msgpack.Decoder) (Date, error) {
	var fields [dateFields]int64
	for ix := range fields {
		val, err := dec.DecodeInt64()
		if err != nil {
			return Date{}, errors.Wrapf(err, "failed to DecodeInt64 date field #%v", ix)
		}
		fields[ix] = val
	}

	return Of(fields[0], int(fields[1]), int(fields[2]))
}

func (d Date) MarshalBinary() ([]byte, error) {
	bytes, err := msgpack.Marshal(d)

	return bytes, errors.Wrap(err, "failed to msgpack.Marshal date")
}

func (d *Date) UnmarshalBinary(data []byte) error {
	if len(data) == 0 {
		*d = Date{}

		return nil
	}

	return errors.Wrap(msgpack.Unmarshal(data, d), "failed to msgpack.Unmarshal date")
}

func (d *Date) Scan(src any) error {
	if t, isTime := src.(stdlibtime.Time); isTime {
		return errors.Wrap(d.ScanDate(pgtype.Date{Time: t, Valid: true}), "failed to scan time.Time")
	}
	text, ok, err := textcodec.Text(src)
	if err != nil || !ok {
		*d = Date{}

		return errors.Wrap(err, "failed to Date.Scan")
	}

	return d.UnmarshalText([]byte(text))
}

func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil //nolint:nilnil // Null column.
	}

	return d.String(), nil
}

// ScanDate maps a postgres date column onto the Hijrah date of the same day.
func (d *Date) ScanDate(val pgtype.Date) error {
	if !val.Valid {
		*d = Date{}

		return nil
	}
	if val.InfinityModifier != pgtype.Finite {
		return errors.Wrapf(ErrArithmeticOverflow, "%v date can't be represented", val.InfinityModifier)
	}
	date, err := FromTime(val.Time)
	if err != nil {
		return errors.Wrapf(err, "failed to convert %v", val.Time)
	}
	*d = date

	return nil
}

func (d Date) DateValue() (pgtype.Date, error) {
	if d.IsZero() {
		return pgtype.Date{}, nil
	}

	return pgtype.Date{Time: d.ToTime(stdlibtime.UTC), Valid: true}, nil
}
