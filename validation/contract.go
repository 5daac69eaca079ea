// SPDX-License-Identifier: ice License 1.0

// Package validation checks Hijrah values against "now", as read from an injected clock,
// and exposes those checks as go-playground/validator struct tags.
package validation

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/ice-blockchain/hijrah/clock"
)

// Public API.

const (
	Past Rule = iota + 1
	PastOrPresent
	Future
	FutureOrPresent
)

const (
	TagPast            = "hijrah_past"
	TagPastOrPresent   = "hijrah_past_or_present"
	TagFuture          = "hijrah_future"
	TagFutureOrPresent = "hijrah_future_or_present"
)

var ErrUnknownRule = errors.New("unknown rule")

type (
	Rule uint8

	Validator struct {
		clock    clock.Clock
		validate *validator.Validate
	}
)

// Private API.

type (
	ordered[T any] interface {
		IsBefore(other T) bool
		IsAfter(other T) bool
		IsEqual(other T) bool
		IsZero() bool
	}
)

var (
	//nolint:gochecknoglobals // Immutable lookup.
	tags = map[string]Rule{
		TagPast:            Past,
		TagPastOrPresent:   PastOrPresent,
		TagFuture:          Future,
		TagFutureOrPresent: FutureOrPresent,
	}
)
