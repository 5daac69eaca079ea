// SPDX-License-Identifier: ice License 1.0

package datetime

import (
	"context"
	"database/sql/driver"
	stdlibtime "time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/ice-blockchain/hijrah/calendar"
	"github.com/ice-blockchain/hijrah/internal/textcodec"
	"github.com/ice-blockchain/hijrah/terror"
)

func (t LocalTime) MarshalJSON(_ context.Context) ([]byte, error) {
	return textcodec.Quote(t.String(), false)
}

func (t *LocalTime) UnmarshalJSON(_ context.Context, bytes []byte) error {
	return unmarshalJSON(bytes, t, "LocalTime.UnmarshalJSON")
}

func (t LocalTime) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *LocalTime) UnmarshalText(text []byte) error {
	return unmarshalText(text, t, ParseTime)
}

func (t LocalTime) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(localTimeFields); err != nil {
		return errors.Wrap(err, "failed to EncodeArrayLen")
	}

	return t.encodeMsgpackFields(enc)
}

func (t LocalTime) encodeMsgpackFields(enc *msgpack.Encoder) error {
	return encodeInts(enc, int64(t.hour), int64(t.minute), int64(t.second), int64(t.nanosecond))
}

func (t *LocalTime) DecodeMsgpack(dec *msgpack.Decoder) error {
	isNil, err := decodeArrayLen(dec, localTimeFields, localTimeName)
	if err != nil || isNil {
		*t = Midnight

		return err
	}
	*t, err = decodeTimeFields(dec)

	return err
}

func decodeTimeFields(dec *msgpack.Decoder) (LocalTime, error) {
	fields, err := decodeInts(dec, localTimeFields)
	if err != nil {
		return LocalTime{}, err
	}

	return TimeOf(int(fields[0]), int(fields[1]), int(fields[2]), int(fields[3]))
}

func (t LocalTime) MarshalBinary() ([]byte, error) {
	return marshalBinary(t)
}

func (t *LocalTime) UnmarshalBinary(data []byte) error {
	return unmarshalBinary(data, t)
}

func (t *LocalTime) Scan(src any) error {
	if host, isTime := src.(stdlibtime.Time); isTime {
		*t = TimeOfHost(host)

		return nil
	}

	return scanText(src, t)
}

func (t LocalTime) Value() (driver.Value, error) {
	return t.String(), nil
}

func (o Offset) MarshalJSON(_ context.Context) ([]byte, error) {
	return textcodec.Quote(o.String(), false)
}

func (o *Offset) UnmarshalJSON(_ context.Context, bytes []byte) error {
	return unmarshalJSON(bytes, o, "Offset.UnmarshalJSON")
}

func (o Offset) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Offset) UnmarshalText(text []byte) error {
	return unmarshalText(text, o, ParseOffset)
}

// EncodeMsgpack writes the total seconds as a plain integer.
func (o Offset) EncodeMsgpack(enc *msgpack.Encoder) error {
	return errors.Wrap(enc.EncodeInt(int64(o.seconds)), "failed to EncodeInt")
}

func (o *Offset) DecodeMsgpack(dec *msgpack.Decoder) error {
	seconds, err := dec.DecodeInt64()
	if err != nil {
		return errors.Wrap(err, "failed to DecodeInt64")
	}
	*o, err = OffsetOfSeconds(int(seconds))

	return err
}

func (o Offset) MarshalBinary() ([]byte, error) {
	return marshalBinary(o)
}

func (o *Offset) UnmarshalBinary(data []byte) error {
	return unmarshalBinary(data, o)
}

func (o *Offset) Scan(src any) error {
	return scanText(src, o)
}

func (o Offset) Value() (driver.Value, error) {
	return o.String(), nil
}

func (l LocalDateTime) MarshalJSON(_ context.Context) ([]byte, error) {
	return textcodec.Quote(l.String(), l.IsZero())
}

func (l *LocalDateTime) UnmarshalJSON(_ context.Context, bytes []byte) error {
	return unmarshalJSON(bytes, l, "LocalDateTime.UnmarshalJSON")
}

func (l LocalDateTime) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *LocalDateTime) UnmarshalText(text []byte) error {
	return unmarshalText(text, l, ParseLocalDateTime)
}

func (l LocalDateTime) EncodeMsgpack(enc *msgpack.Encoder) error {
	if l.IsZero() {
		return errors.Wrap(enc.EncodeNil(), "failed to EncodeNil")
	}
	if err := enc.EncodeArrayLen(localDateTimeFields); err != nil {
		return errors.Wrap(err, "failed to EncodeArrayLen")
	}

	return l.encodeMsgpackFields(enc)
}

func (l LocalDateTime) encodeMsgpackFields(enc *msgpack.Encoder) error {
	if err := l.date.EncodeMsgpackFields(enc); err != nil {
		return errors.Wrap(err, "failed to Date.EncodeMsgpackFields")
	}

	return l.time.encodeMsgpackFields(enc)
}

func (l *LocalDateTime) DecodeMsgpack(dec *msgpack.Decoder) error {
	isNil, err := decodeArrayLen(dec, localDateTimeFields, localDateTimeName)
	if err != nil || isNil {
		*l = LocalDateTime{}

		return err
	}
	*l, err = decodeLocalDateTimeFields(dec)

	return err
}

func decodeLocalDateTimeFields(dec *msgpack.Decoder) (LocalDateTime, error) {
	date, err := calendar.DecodeMsgpackFields(dec)
	if err != nil {
		return LocalDateTime{}, terror.Tag(err, localDateTimeName)
	}
	t, err := decodeTimeFields(dec)
	if err != nil {
		return LocalDateTime{}, terror.Tag(err, localDateTimeName)
	}

	return LocalDateTime{date: date, time: t}, nil
}

func (l LocalDateTime) MarshalBinary() ([]byte, error) {
	return marshalBinary(l)
}

func (l *LocalDateTime) UnmarshalBinary(data []byte) error {
	return unmarshalBinary(data, l)
}

func (l *LocalDateTime) Scan(src any) error {
	if host, isTime := src.(stdlibtime.Time); isTime {
		return l.ScanTimestamp(pgtype.Timestamp{Time: host, Valid: true})
	}

	return scanText(src, l)
}

func (l LocalDateTime) Value() (driver.Value, error) {
	if l.IsZero() {
		return nil, nil //nolint:nilnil // Null column.
	}

	return l.String(), nil
}

// ScanTimestamp maps a postgres timestamp (without time zone) onto the Hijrah date-time of the same wall clock.
func (l *LocalDateTime) ScanTimestamp(val pgtype.Timestamp) error {
	if !val.Valid {
		*l = LocalDateTime{}

		return nil
	}
	if val.InfinityModifier != pgtype.Finite {
		return terror.Tag(errors.Wrapf(calendar.ErrArithmeticOverflow, "%v timestamp can't be represented", val.InfinityModifier), localDateTimeName)
	}
	ldt, err := LocalDateTimeOfInstant(val.Time, nil)
	if err != nil {
		return err
	}
	*l = ldt

	return nil
}

func (l LocalDateTime) TimestampValue() (pgtype.Timestamp, error) {
	if l.IsZero() {
		return pgtype.Timestamp{}, nil
	}

	return pgtype.Timestamp{Time: l.host(stdlibtime.UTC), Valid: true}, nil
}

func (o OffsetDate) MarshalJSON(_ context.Context) ([]byte, error) {
	return textcodec.Quote(o.String(), o.IsZero())
}

func (o *OffsetDate) UnmarshalJSON(_ context.Context, bytes []byte) error {
	return unmarshalJSON(bytes, o, "OffsetDate.UnmarshalJSON")
}

func (o OffsetDate) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *OffsetDate) UnmarshalText(text []byte) error {
	return unmarshalText(text, o, ParseOffsetDate)
}

func (o OffsetDate) EncodeMsgpack(enc *msgpack.Encoder) error {
	if o.IsZero() {
		return errors.Wrap(enc.EncodeNil(), "failed to EncodeNil")
	}
	if err := enc.EncodeArrayLen(offsetDateFields); err != nil {
		return errors.Wrap(err, "failed to EncodeArrayLen")
	}
	if err := o.date.EncodeMsgpackFields(enc); err != nil {
		return errors.Wrap(err, "failed to Date.EncodeMsgpackFields")
	}

	return errors.Wrap(o.offset.EncodeMsgpack(enc), "failed to Offset.EncodeMsgpack")
}

func (o *OffsetDate) DecodeMsgpack(dec *msgpack.Decoder) error {
	isNil, err := decodeArrayLen(dec, offsetDateFields, offsetDateName)
	if err != nil || isNil {
		*o = OffsetDate{}

		return err
	}
	date, err := calendar.DecodeMsgpackFields(dec)
	if err != nil {
		return terror.Tag(err, offsetDateName)
	}
	var offset Offset
	if err = offset.DecodeMsgpack(dec); err != nil {
		return terror.Tag(err, offsetDateName)
	}
	*o = OffsetDate{date: date, offset: offset}

	return nil
}

func (o OffsetDate) MarshalBinary() ([]byte, error) {
	return marshalBinary(o)
}

func (o *OffsetDate) UnmarshalBinary(data []byte) error {
	return unmarshalBinary(data, o)
}

func (o *OffsetDate) Scan(src any) error {
	return scanText(src, o)
}

func (o OffsetDate) Value() (driver.Value, error) {
	if o.IsZero() {
		return nil, nil //nolint:nilnil // Null column.
	}

	return o.String(), nil
}

func (o OffsetDateTime) MarshalJSON(_ context.Context) ([]byte, error) {
	return textcodec.Quote(o.String(), o.IsZero())
}

func (o *OffsetDateTime) UnmarshalJSON(_ context.Context, bytes []byte) error {
	return unmarshalJSON(bytes, o, "OffsetDateTime.UnmarshalJSON")
}

func (o OffsetDateTime) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *OffsetDateTime) UnmarshalText(text []byte) error {
	return unmarshalText(text, o, ParseOffsetDateTime)
}

func (o OffsetDateTime) EncodeMsgpack(enc *msgpack.Encoder) error {
	if o.IsZero() {
		return errors.Wrap(enc.EncodeNil(), "failed to EncodeNil")
	}
	if err := enc.EncodeArrayLen(offsetDateTimeFields); err != nil {
		return errors.Wrap(err, "failed to EncodeArrayLen")
	}
	if err := o.dateTime.encodeMsgpackFields(enc); err != nil {
		return err
	}

	return errors.Wrap(o.offset.EncodeMsgpack(enc), "failed to Offset.EncodeMsgpack")
}

func (o *OffsetDateTime) DecodeMsgpack(dec *msgpack.Decoder) error {
	isNil, err := decodeArrayLen(dec, offsetDateTimeFields, offsetDateTimeName)
	if err != nil || isNil {
		*o = OffsetDateTime{}

		return err
	}
	ldt, err := decodeLocalDateTimeFields(dec)
	if err != nil {
		return terror.Tag(err, offsetDateTimeName)
	}
	var offset Offset
	if err = offset.DecodeMsgpack(dec); err != nil {
		return terror.Tag(err, offsetDateTimeName)
	}
	*o = OffsetDateTime{dateTime: ldt, offset: offset}

	return nil
}

func (o OffsetDateTime) MarshalBinary() ([]byte, error) {
	return marshalBinary(o)
}

func (o *OffsetDateTime) UnmarshalBinary(data []byte) error {
	return unmarshalBinary(data, o)
}

func (o *OffsetDateTime) Scan(src any) error {
	if host, isTime := src.(stdlibtime.Time); isTime {
		return o.ScanTimestamptz(pgtype.Timestamptz{Time: host, Valid: true})
	}

	return scanText(src, o)
}

func (o OffsetDateTime) Value() (driver.Value, error) {
	if o.IsZero() {
		return nil, nil //nolint:nilnil // Null column.
	}

	return o.String(), nil
}

// ScanTimestamptz keeps the offset of the location pgx decoded the instant into.
func (o *OffsetDateTime) ScanTimestamptz(val pgtype.Timestamptz) error {
	if !val.Valid {
		*o = OffsetDateTime{}

		return nil
	}
	if val.InfinityModifier != pgtype.Finite {
		return terror.Tag(errors.Wrapf(calendar.ErrArithmeticOverflow, "%v timestamptz can't be represented", val.InfinityModifier), offsetDateTimeName)
	}
	odt, err := OffsetDateTimeOfInstant(val.Time, OffsetOfTime(val.Time))
	if err != nil {
		return err
	}
	*o = odt

	return nil
}

func (o OffsetDateTime) TimestamptzValue() (pgtype.Timestamptz, error) {
	if o.IsZero() {
		return pgtype.Timestamptz{}, nil
	}

	return pgtype.Timestamptz{Time: o.Instant(), Valid: true}, nil
}

func (z ZonedDateTime) MarshalJSON(_ context.Context) ([]byte, error) {
	return textcodec.Quote(z.String(), z.IsZero())
}

func (z *ZonedDateTime) UnmarshalJSON(_ context.Context, bytes []byte) error {
	return unmarshalJSON(bytes, z, "ZonedDateTime.UnmarshalJSON")
}

func (z ZonedDateTime) MarshalText() ([]byte, error) {
	return []byte(z.String()), nil
}

func (z *ZonedDateTime) UnmarshalText(text []byte) error {
	return unmarshalText(text, z, ParseZonedDateTime)
}

func (z ZonedDateTime) EncodeMsgpack(enc *msgpack.Encoder) error {
	if z.IsZero() {
		return errors.Wrap(enc.EncodeNil(), "failed to EncodeNil")
	}
	if err := enc.EncodeArrayLen(zonedDateTimeFields); err != nil {
		return errors.Wrap(err, "failed to EncodeArrayLen")
	}
	if err := z.dateTime.encodeMsgpackFields(enc); err != nil {
		return err
	}
	if err := z.offset.EncodeMsgpack(enc); err != nil {
		return errors.Wrap(err, "failed to Offset.EncodeMsgpack")
	}

	return errors.Wrap(enc.EncodeString(z.Zone().String()), "failed to EncodeString")
}

// DecodeMsgpack restores the instant from the local fields and the offset, then applies the zone to it.
func (z *ZonedDateTime) DecodeMsgpack(dec *msgpack.Decoder) error {
	isNil, err := decodeArrayLen(dec, zonedDateTimeFields, zonedDateTimeName)
	if err != nil || isNil {
		*z = ZonedDateTime{}

		return err
	}
	ldt, err := decodeLocalDateTimeFields(dec)
	if err != nil {
		return terror.Tag(err, zonedDateTimeName)
	}
	var offset Offset
	if err = offset.DecodeMsgpack(dec); err != nil {
		return terror.Tag(err, zonedDateTimeName)
	}
	name, err := dec.DecodeString()
	if err != nil {
		return errors.Wrap(err, "failed to DecodeString")
	}
	loc, err := LoadZone(name)
	if err != nil {
		return err
	}
	*z, err = ZonedDateTimeOfInstant(ldt.AtOffset(offset).Instant(), loc)

	return err
}

func (z ZonedDateTime) MarshalBinary() ([]byte, error) {
	return marshalBinary(z)
}

func (z *ZonedDateTime) UnmarshalBinary(data []byte) error {
	return unmarshalBinary(data, z)
}

func (z *ZonedDateTime) Scan(src any) error {
	if host, isTime := src.(stdlibtime.Time); isTime {
		zdt, err := ZonedDateTimeOfInstant(host, nil)
		if err != nil {
			return err
		}
		*z = zdt

		return nil
	}

	return scanText(src, z)
}

func (z ZonedDateTime) Value() (driver.Value, error) {
	if z.IsZero() {
		return nil, nil //nolint:nilnil // Null column.
	}

	return z.String(), nil
}

type (
	textual interface {
		UnmarshalText(text []byte) error
	}
)

func unmarshalJSON[T any, PT interface {
	*T
	textual
}](bytes []byte, val PT, op string) error {
	text, ok, err := textcodec.Unquote(bytes)
	if err != nil || !ok {
		var zero T
		*val = zero

		return errors.Wrapf(err, "failed to %v", op)
	}

	return val.UnmarshalText([]byte(text))
}

func unmarshalText[T any](text []byte, val *T, parse func(string) (T, error)) error {
	if len(text) == 0 {
		var zero T
		*val = zero

		return nil
	}
	parsed, err := parse(string(text))
	if err != nil {
		return errors.Wrapf(err, "failed to unmarshal %T", val)
	}
	*val = parsed

	return nil
}

func scanText[T any, PT interface {
	*T
	textual
}](src any, val PT) error {
	text, ok, err := textcodec.Text(src)
	if err != nil || !ok {
		var zero T
		*val = zero

		return errors.Wrapf(err, "failed to scan %T", val)
	}

	return val.UnmarshalText([]byte(text))
}

func marshalBinary(val any) ([]byte, error) {
	bytes, err := msgpack.Marshal(val)

	return bytes, errors.Wrapf(err, "failed to msgpack.Marshal %T", val)
}

func unmarshalBinary[T any](data []byte, val *T) error {
	if len(data) == 0 {
		var zero T
		*val = zero

		return nil
	}

	return errors.Wrapf(msgpack.Unmarshal(data, val), "failed to msgpack.Unmarshal %T", val)
}

// decodeArrayLen reads the array header of a value with the given number of fields; isNil reports a nil value.
func decodeArrayLen(dec *msgpack.Decoder, fields int, temporal string) (isNil bool, err error) {
	length, err := dec.DecodeArrayLen()
	if err != nil {
		return false, errors.Wrap(err, "failed to DecodeArrayLen")
	}
	if length == -1 {
		return true, nil
	}
	if length != fields {
		return false, terror.New(
			errors.Wrapf(calendar.ErrUnparseable, "expected %v fields, got %v", fields, length),
			map[string]any{terror.TemporalKey: temporal},
		)
	}

	return false, nil
}

func encodeInts(enc *msgpack.Encoder, fields ...int64) error {
	for _, field := range fields {
		if err := enc.EncodeInt(field); err != nil {
			return errors.Wrapf(err, "failed to EncodeInt %v", field)
		}
	}

	return nil
}

func decodeInts(dec *msgpack.Decoder, count int) ([]int64, error) {
	fields := make([]int64, 0, count)
	for ix := range count {
		val, err := dec.DecodeInt64()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to DecodeInt64 field #%v", ix)
		}
		fields = append(fields, val)
	}

	return fields, nil
}
