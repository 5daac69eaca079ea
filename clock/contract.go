// SPDX-License-Identifier: ice License 1.0

// Package clock is the only source of "now" for the Hijrah value types.
package clock

import (
	stdlibtime "time"
)

// Public API.

type (
	Clock interface {
		// Now is a pure read of the current instant.
		Now() stdlibtime.Time
		// Location is the zone local values are derived in.
		Location() *stdlibtime.Location
	}
)

// Private API.

const (
	applicationYAMLKey = "hijrah/clock"
)

var (
	_ Clock = (*system)(nil)
	_ Clock = (*fixed)(nil)
	_ Clock = (*offset)(nil)

	//nolint:gochecknoglobals // Loaded once, at runtime.
	defaultZone *stdlibtime.Location
)

type (
	system struct {
		loc *stdlibtime.Location
	}
	fixed struct {
		instant stdlibtime.Time
		loc     *stdlibtime.Location
	}
	offset struct {
		base Clock
		by   stdlibtime.Duration
	}
	config struct {
		Zone string `yaml:"zone" mapstructure:"zone"`
	}
)
