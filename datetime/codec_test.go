// SPDX-License-Identifier: ice License 1.0

package datetime

import (
	"context"
	"database/sql/driver"
	"testing"
	stdlibtime "time"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/ice-blockchain/hijrah/calendar"
	"github.com/ice-blockchain/hijrah/clock"
	hijrahtesting "github.com/ice-blockchain/hijrah/testing"
)

type (
	appointment struct {
		Starts    LocalDateTime  `json:"starts"`
		Day       OffsetDate     `json:"day"`
		Confirmed OffsetDateTime `json:"confirmed"`
		Reminder  ZonedDateTime  `json:"reminder"`
		At        LocalTime      `json:"at"`
		Shift     Offset         `json:"shift"`
	}
)

func sampleAppointment(tb testing.TB, loc *stdlibtime.Location) *appointment {
	tb.Helper()
	starts := mustLocal(tb, 1446, 10, 1, 15, 0, 0, 500)
	reminder, err := ZonedDateTimeOf(mustLocal(tb, 1446, 10, 1, 12, 0, 0, 0), loc)
	require.NoError(tb, err)

	return &appointment{
		Starts:    starts,
		Day:       OffsetDateOf(calendar.MustOf(-5, 3, 7), mustOffset(tb, -5, -30)),
		Confirmed: starts.AtOffset(mustOffset(tb, 3, 0)),
		Reminder:  reminder,
		At:        MustTimeOf(16, 30, 15, 500_000_000),
		Shift:     mustOffset(tb, 3, 0),
	}
}

func (a *appointment) equal(other *appointment) bool {
	return a.Starts == other.Starts &&
		a.Day == other.Day &&
		a.Confirmed.Equal(other.Confirmed) &&
		a.Reminder.Equal(other.Reminder) &&
		a.At == other.At &&
		a.Shift == other.Shift
}

func TestJSON(t *testing.T) {
	t.Parallel()
	hijrahtesting.AssertSymmetricMarshallingUnmarshalling(t, sampleAppointment(t, stdlibtime.UTC), `{
		"starts": "1446-10-01T15:00:00.0000005",
		"day": "-0005-03-07-05:30",
		"confirmed": "1446-10-01T15:00:00.0000005+03:00",
		"reminder": "1446-10-01T12:00:00Z[UTC]",
		"at": "16:30:15.5",
		"shift": "+03:00"
	}`, `{"starts":null,"day":null,"confirmed":null,"reminder":null,"at":"00:00:00","shift":"Z"}`)

	hijrahtesting.AssertSymmetricMarshallingUnmarshalling(t, sampleAppointment(t, mustOffset(t, 3, 0).Location()), `{
		"starts": "1446-10-01T15:00:00.0000005",
		"day": "-0005-03-07-05:30",
		"confirmed": "1446-10-01T15:00:00.0000005+03:00",
		"reminder": "1446-10-01T12:00:00+03:00[+03:00]",
		"at": "16:30:15.5",
		"shift": "+03:00"
	}`, `{"starts":null,"day":null,"confirmed":null,"reminder":null,"at":"00:00:00","shift":"Z"}`)

	riyadh := sampleAppointment(t, mustLoad(t, "Asia/Riyadh"))
	encoded := hijrahtesting.MustMarshal(t, riyadh)
	assert.Contains(t, encoded, `"reminder":"1446-10-01T12:00:00+03:00[Asia/Riyadh]"`)
	assert.True(t, riyadh.equal(hijrahtesting.MustUnmarshal[appointment](t, encoded)))

	var decoded appointment
	require.Error(t, json.UnmarshalContext(context.Background(), []byte(`{"confirmed":"1446-10-01T15:00:00+19:00"}`), &decoded))
	require.Error(t, json.UnmarshalContext(context.Background(), []byte(`{"at":"24:00:00"}`), &decoded))
	require.Error(t, json.UnmarshalContext(context.Background(), []byte(`{"reminder":"1446-10-01T12:00:00Z[Nowhere/Town]"}`), &decoded))
}

func TestBinary(t *testing.T) {
	t.Parallel()
	for _, loc := range []*stdlibtime.Location{stdlibtime.UTC, mustOffset(t, -5, -30).Location(), mustLoad(t, "Asia/Riyadh"), mustLoad(t, "America/New_York")} {
		hijrahtesting.AssertSymmetricBinary(t, sampleAppointment(t, loc), (*appointment).equal)
	}
	hijrahtesting.AssertSymmetricBinary(t, new(appointment))

	early, err := ZonedDateTimeOf(mustLocal(t, -5, 3, 7, 1, 2, 3, 4), stdlibtime.UTC)
	require.NoError(t, err)
	binary, err := early.MarshalBinary()
	require.NoError(t, err)
	var decoded ZonedDateTime
	require.NoError(t, decoded.UnmarshalBinary(binary))
	assert.True(t, early.Equal(decoded))
	assert.Equal(t, calendar.EraEarly, decoded.Date().Era())

	bytes, err := msgpack.Marshal(mustLocal(t, 1446, 10, 1, 15, 0, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x97, 0xcd, 0x05, 0xa6, 0x0a, 0x01, 0x0f, 0x00, 0x00, 0x00}, bytes)
	var ldt LocalDateTime
	require.ErrorIs(t, msgpack.Unmarshal([]byte{0x93, 0xcd, 0x05, 0xa6, 0x0a, 0x01}, &ldt), calendar.ErrUnparseable)
	require.ErrorIs(t, msgpack.Unmarshal([]byte{0x97, 0xcd, 0x05, 0xa6, 0x0a, 0x01, 0x18, 0x00, 0x00, 0x00}, &ldt), ErrInvalidTime)
	require.NoError(t, ldt.UnmarshalBinary(nil))
	assert.True(t, ldt.IsZero())
}

func TestZoneWithoutLoadableName(t *testing.T) {
	t.Parallel()
	ast := stdlibtime.FixedZone("AST", 3*60*60)
	zdt, err := NowZonedDateTime(clock.Fixed(stdlibtime.Date(2025, stdlibtime.March, 31, 12, 0, 0, 0, stdlibtime.UTC), ast))
	require.NoError(t, err)
	assert.Equal(t, "+03:00", zdt.Zone().String())
	assert.Equal(t, "1446-10-01T15:00:00+03:00[+03:00]", zdt.String())

	var fromJSON ZonedDateTime
	encoded, err := json.MarshalContext(context.Background(), zdt)
	require.NoError(t, err)
	require.NoError(t, json.UnmarshalContext(context.Background(), encoded, &fromJSON))
	assert.True(t, zdt.Equal(fromJSON))

	var fromBinary ZonedDateTime
	binary, err := zdt.MarshalBinary()
	require.NoError(t, err)
	require.NoError(t, fromBinary.UnmarshalBinary(binary))
	assert.True(t, zdt.Equal(fromBinary))

	moved, err := zdt.WithZoneSameInstant(stdlibtime.FixedZone("", 0))
	require.NoError(t, err)
	assert.Equal(t, "1446-10-01T12:00:00Z[UTC]", moved.String())
	text, err := moved.MarshalText()
	require.NoError(t, err)
	var fromText ZonedDateTime
	require.NoError(t, fromText.UnmarshalText(text))
	assert.True(t, moved.Equal(fromText))
}

func TestText(t *testing.T) {
	t.Parallel()
	sample := sampleAppointment(t, mustLoad(t, "Asia/Riyadh"))
	text, err := sample.Reminder.MarshalText()
	require.NoError(t, err)
	var zdt ZonedDateTime
	require.NoError(t, zdt.UnmarshalText(text))
	assert.True(t, sample.Reminder.Equal(zdt))
	require.NoError(t, zdt.UnmarshalText(nil))
	assert.True(t, zdt.IsZero())

	text, err = sample.Day.MarshalText()
	require.NoError(t, err)
	var od OffsetDate
	require.NoError(t, od.UnmarshalText(text))
	assert.Equal(t, sample.Day, od)
}

func TestSQL(t *testing.T) {
	t.Parallel()
	sample := sampleAppointment(t, mustLoad(t, "Asia/Riyadh"))
	for _, tc := range []struct {
		valuer   driver.Valuer
		expected any
	}{
		{valuer: sample.Starts, expected: "1446-10-01T15:00:00.0000005"},
		{valuer: sample.Day, expected: "-0005-03-07-05:30"},
		{valuer: sample.Confirmed, expected: "1446-10-01T15:00:00.0000005+03:00"},
		{valuer: sample.Reminder, expected: "1446-10-01T12:00:00+03:00[Asia/Riyadh]"},
		{valuer: sample.At, expected: "16:30:15.5"},
		{valuer: sample.Shift, expected: "+03:00"},
		{valuer: ZonedDateTime{}, expected: nil},
	} {
		val, err := tc.valuer.Value()
		require.NoError(t, err)
		assert.Equal(t, tc.expected, val)
	}

	var scanned appointment
	require.NoError(t, scanned.Starts.Scan("1446-10-01T15:00:00.0000005"))
	require.NoError(t, scanned.Day.Scan([]byte("-0005-03-07-05:30")))
	require.NoError(t, scanned.Confirmed.Scan("1446-10-01T15:00:00.0000005+03:00"))
	require.NoError(t, scanned.Reminder.Scan("1446-10-01T12:00:00+03:00[Asia/Riyadh]"))
	require.NoError(t, scanned.At.Scan(stdlibtime.Date(2025, stdlibtime.March, 31, 16, 30, 15, 500_000_000, stdlibtime.UTC)))
	require.NoError(t, scanned.Shift.Scan("+03:00"))
	assert.True(t, sample.equal(&scanned))

	require.NoError(t, scanned.Reminder.Scan(stdlibtime.Date(2025, stdlibtime.March, 31, 12, 0, 0, 0, mustLoad(t, "Asia/Riyadh"))))
	assert.Equal(t, "1446-10-01T12:00:00+03:00[Asia/Riyadh]", scanned.Reminder.String())
	require.NoError(t, scanned.Starts.Scan(nil))
	assert.True(t, scanned.Starts.IsZero())
	require.Error(t, scanned.Confirmed.Scan(3.14))
}

func TestPgtype(t *testing.T) {
	t.Parallel()
	sample := sampleAppointment(t, stdlibtime.UTC)

	timestamp, err := sample.Starts.TimestampValue()
	require.NoError(t, err)
	assert.Equal(t, pgtype.Timestamp{Time: stdlibtime.Date(2025, stdlibtime.March, 31, 15, 0, 0, 500, stdlibtime.UTC), Valid: true}, timestamp)
	var ldt LocalDateTime
	require.NoError(t, ldt.ScanTimestamp(timestamp))
	assert.Equal(t, sample.Starts, ldt)
	require.NoError(t, ldt.ScanTimestamp(pgtype.Timestamp{}))
	assert.True(t, ldt.IsZero())
	require.ErrorIs(t, ldt.ScanTimestamp(pgtype.Timestamp{InfinityModifier: pgtype.NegativeInfinity, Valid: true}), calendar.ErrArithmeticOverflow)

	timestamptz, err := sample.Confirmed.TimestamptzValue()
	require.NoError(t, err)
	assert.True(t, timestamptz.Valid)
	assert.True(t, timestamptz.Time.Equal(stdlibtime.Date(2025, stdlibtime.March, 31, 12, 0, 0, 500, stdlibtime.UTC)))
	var odt OffsetDateTime
	require.NoError(t, odt.ScanTimestamptz(timestamptz))
	assert.True(t, sample.Confirmed.Equal(odt))
	require.NoError(t, odt.ScanTimestamptz(pgtype.Timestamptz{Time: timestamptz.Time.UTC(), Valid: true}))
	assert.True(t, sample.Confirmed.IsEqual(odt))
	assert.Equal(t, UTC, odt.Offset())

	timestamptz, err = OffsetDateTime{}.TimestamptzValue()
	require.NoError(t, err)
	assert.False(t, timestamptz.Valid)
}
