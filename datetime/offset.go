// SPDX-License-Identifier: ice License 1.0

package datetime

import (
	"fmt"
	"strings"
	stdlibtime "time"

	"github.com/pkg/errors"

	"github.com/ice-blockchain/hijrah/calendar"
	"github.com/ice-blockchain/hijrah/terror"
)

func OffsetOf(hours, minutes int) (Offset, error) {
	if (hours > 0 && minutes < 0) || (hours < 0 && minutes > 0) || minutes <= -60 || minutes >= 60 {
		return Offset{}, invalidOffset(hours*3600+minutes*60, "hours %v and minutes %v must share the sign", hours, minutes) //nolint:gomnd // .
	}

	return OffsetOfSeconds(hours*3600 + minutes*60) //nolint:gomnd // .
}

func OffsetOfSeconds(seconds int) (Offset, error) {
	if seconds < -maxOffset || seconds > maxOffset {
		return Offset{}, invalidOffset(seconds, "%v seconds out of range [%v, %v]", seconds, -maxOffset, maxOffset)
	}

	return Offset{seconds: int32(seconds)}, nil
}

// OffsetOfTime is the offset t's location observes at t.
func OffsetOfTime(t stdlibtime.Time) Offset {
	_, seconds := t.Zone()

	return Offset{seconds: int32(seconds)} //nolint:gosec // Host zones stay within +-18h.
}

func invalidOffset(seconds int, format string, args ...any) error {
	return terror.New(
		errors.Wrapf(ErrInvalidOffset, format, args...),
		map[string]any{terror.TemporalKey: offsetName, "seconds": seconds},
	)
}

func (o Offset) TotalSeconds() int {
	return int(o.seconds)
}

func (o Offset) IsZero() bool {
	return o.seconds == 0
}

// Location is a fixed host zone named after the offset. UTC maps onto time.UTC.
func (o Offset) Location() *stdlibtime.Location {
	if o.seconds == 0 {
		return stdlibtime.UTC
	}

	return stdlibtime.FixedZone(o.String(), int(o.seconds))
}

// String renders Z for UTC, +HH:mm otherwise and +HH:mm:ss when seconds are present.
func (o Offset) String() string {
	if o.seconds == 0 {
		return "Z"
	}
	sign, total := '+', int(o.seconds)
	if total < 0 {
		sign, total = '-', -total
	}
	hours, minutes, seconds := total/3600, total/60%60, total%60 //nolint:gomnd // .
	if seconds != 0 {
		return fmt.Sprintf("%c%02d:%02d:%02d", sign, hours, minutes, seconds)
	}

	return fmt.Sprintf("%c%02d:%02d", sign, hours, minutes)
}

// ParseOffset reads Z, +HH:mm or +HH:mm:ss.
func ParseOffset(text string) (Offset, error) {
	if text == "Z" || text == "z" {
		return UTC, nil
	}
	if len(text) < 1 || (text[0] != '+' && text[0] != '-') {
		return Offset{}, unparseable(offsetName, text, errors.New("expected a sign"))
	}
	parts := strings.Split(text[1:], ":")
	if len(parts) < 2 || len(parts) > 3 { //nolint:gomnd // HH:mm[:ss].
		return Offset{}, unparseable(offsetName, text, errors.New("expected +HH:mm[:ss]"))
	}
	total := 0
	for ix, multiplier := range []int{3600, 60, 1} { //nolint:gomnd // .
		if ix == len(parts) {
			break
		}
		if len(parts[ix]) != 2 { //nolint:gomnd // .
			return Offset{}, unparseable(offsetName, text, errors.Errorf("field #%v must have two digits", ix))
		}
		val, err := calendar.ParseDigits(parts[ix])
		if err != nil {
			return Offset{}, unparseable(offsetName, text, err)
		}
		if ix > 0 && val >= 60 { //nolint:gomnd // .
			return Offset{}, unparseable(offsetName, text, errors.Errorf("field #%v out of range", ix))
		}
		total += int(val) * multiplier
	}
	if text[0] == '-' {
		total = -total
	}

	return OffsetOfSeconds(total)
}

func unparseable(temporal, text string, cause error) error {
	return terror.New(
		errors.Wrapf(calendar.ErrUnparseable, "%q: %v", text, cause),
		map[string]any{terror.TemporalKey: temporal, terror.InputKey: text},
	)
}
