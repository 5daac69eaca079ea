// SPDX-License-Identifier: ice License 1.0

package clock

import (
	stdlibtime "time"

	"github.com/pkg/errors"

	appCfg "github.com/ice-blockchain/hijrah/config"
	"github.com/ice-blockchain/hijrah/log"
)

//nolint:gochecknoinits // We're initializing a global, default zone.
func init() {
	var cfg config
	appCfg.MustLoadFromKeyWithDefaults(applicationYAMLKey, &cfg, config{Zone: "UTC"})
	loc, err := stdlibtime.LoadLocation(cfg.Zone)
	log.Panic(errors.Wrapf(err, "failed to load zone %q", cfg.Zone)) //nolint:revive // That's the point.
	defaultZone = loc
}

// System reads the host wall clock and derives local values in loc.
func System(loc *stdlibtime.Location) Clock {
	if loc == nil {
		loc = stdlibtime.UTC
	}

	return &system{loc: loc}
}

// SystemDefaultZone is System in the zone configured under `hijrah/clock.zone`, UTC if none.
func SystemDefaultZone() Clock {
	return System(defaultZone)
}

func SystemUTC() Clock {
	return System(stdlibtime.UTC)
}

// Fixed always returns instant, useful for deterministic tests.
func Fixed(instant stdlibtime.Time, loc *stdlibtime.Location) Clock {
	if loc == nil {
		loc = stdlibtime.UTC
	}

	return &fixed{instant: instant, loc: loc}
}

// Offset shifts every reading of base by d.
func Offset(base Clock, d stdlibtime.Duration) Clock {
	if d == 0 {
		return base
	}

	return &offset{base: base, by: d}
}

func (s *system) Now() stdlibtime.Time {
	return stdlibtime.Now().In(s.loc)
}

func (s *system) Location() *stdlibtime.Location {
	return s.loc
}

func (f *fixed) Now() stdlibtime.Time {
	return f.instant.In(f.loc)
}

func (f *fixed) Location() *stdlibtime.Location {
	return f.loc
}

func (o *offset) Now() stdlibtime.Time {
	return o.base.Now().Add(o.by)
}

func (o *offset) Location() *stdlibtime.Location {
	return o.base.Location()
}
