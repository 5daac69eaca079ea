// SPDX-License-Identifier: ice License 1.0

package validation

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/ice-blockchain/hijrah/calendar"
	"github.com/ice-blockchain/hijrah/clock"
	"github.com/ice-blockchain/hijrah/datetime"
	"github.com/ice-blockchain/hijrah/log"
	"github.com/ice-blockchain/hijrah/terror"
)

// Check compares value with the current value of the same kind, read from c.
// Zero values pass every rule, pair the tags with `required` to demand presence.
func Check(value calendar.Temporal, rule Rule, c clock.Clock) (bool, error) {
	switch typed := value.(type) {
	case calendar.Date:
		now, err := calendar.Now(c)

		return check(typed, now, err, rule)
	case datetime.LocalDateTime:
		now, err := datetime.NowLocalDateTime(c)

		return check(typed, now, err, rule)
	case datetime.OffsetDate:
		now, err := datetime.NowOffsetDate(c)

		return check(typed, now, err, rule)
	case datetime.OffsetDateTime:
		now, err := datetime.NowOffsetDateTime(c)

		return check(typed, now, err, rule)
	case datetime.ZonedDateTime:
		now, err := datetime.NowZonedDateTime(c)

		return check(typed, now, err, rule)
	}

	return false, terror.New(
		errors.Wrapf(calendar.ErrUnsupportedTemporal, "%T can't be validated", value),
		map[string]any{terror.InputKey: value},
	)
}

func check[T ordered[T]](value, now T, err error, rule Rule) (bool, error) {
	if err != nil {
		return false, errors.Wrap(err, "failed to read now")
	}
	if rule < Past || rule > FutureOrPresent {
		return false, errors.Wrapf(ErrUnknownRule, "%d", rule)
	}
	if value.IsZero() {
		return true, nil
	}
	switch rule {
	case Past:
		return value.IsBefore(now), nil
	case PastOrPresent:
		return value.IsBefore(now) || value.IsEqual(now), nil
	case Future:
		return value.IsAfter(now), nil
	default:
		return value.IsAfter(now) || value.IsEqual(now), nil
	}
}

// New registers the hijrah_* tags on a fresh validator, every check reading now from c.
func New(c clock.Clock) *Validator {
	v := &Validator{clock: c, validate: validator.New(validator.WithRequiredStructEnabled())}
	for tag, rule := range tags {
		log.Panic(errors.Wrapf(v.validate.RegisterValidation(tag, v.field(rule)), "failed to register %v", tag)) //nolint:revive // Static tags.
	}

	return v
}

func (v *Validator) field(rule Rule) validator.Func {
	return func(fl validator.FieldLevel) bool {
		if !fl.Field().CanInterface() {
			return false
		}
		temporal, ok := fl.Field().Interface().(calendar.Temporal)
		if !ok {
			log.Warn("not a Hijrah value", fl.StructFieldName(), fl.Field().Type().String(), rule)

			return false
		}
		valid, err := Check(temporal, rule, v.clock)
		if err != nil {
			log.Error(errors.Wrapf(err, "failed to check %v", fl.StructFieldName()))

			return false
		}
		log.Debug("checked", fl.StructFieldName(), temporal, rule, valid)

		return valid
	}
}

// Check is the package level Check with the validator's clock.
func (v *Validator) Check(value calendar.Temporal, rule Rule) (bool, error) {
	return Check(value, rule, v.clock)
}

func (v *Validator) Struct(ctx context.Context, s any) error {
	return errors.Wrapf(v.validate.StructCtx(ctx, s), "invalid %T", s)
}

// All validates every struct, collecting all the failures.
func (v *Validator) All(ctx context.Context, structs ...any) error {
	var errs []error
	for _, s := range structs {
		if err := v.Struct(ctx, s); err != nil {
			errs = append(errs, err)
		}
	}

	return multierror.Append(nil, errs...).ErrorOrNil()
}

func (r Rule) String() string {
	for tag, rule := range tags {
		if rule == r {
			return tag
		}
	}

	return "unknown"
}
