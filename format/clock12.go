// SPDX-License-Identifier: ice License 1.0

package format

import (
	"strings"
	stdlibtime "time"

	"github.com/pkg/errors"
	"golang.org/x/text/language"

	"github.com/ice-blockchain/hijrah/calendar"
	appCfg "github.com/ice-blockchain/hijrah/config"
	"github.com/ice-blockchain/hijrah/datetime"
	"github.com/ice-blockchain/hijrah/terror"
)

//nolint:gochecknoinits // We're loading the default locale once.
func init() {
	var cfg config
	appCfg.MustLoadFromKeyWithDefaults(applicationYAMLKey, &cfg, config{Locale: language.English.String()})
	defaultLocale = cfg.Locale
}

// NewClock12 matches locale (a BCP 47 tag) against the supported ones, English being the fallback.
// An empty locale means the one configured under `hijrah/format.locale`.
func NewClock12(locale string) *Clock12 {
	if locale == "" {
		locale = defaultLocale
	}
	_, index, _ := localeMatcher.Match(language.Make(locale))
	if index < 0 || index >= len(dayPeriods) {
		index = 0
	}

	return &Clock12{locale: supportedLocales[index], am: dayPeriods[index][0], pm: dayPeriods[index][1]}
}

func (c *Clock12) Locale() language.Tag {
	return c.locale
}

func (*Clock12) Pattern() string {
	return clock12Pattern
}

func (c *Clock12) Format(t datetime.LocalTime) string {
	text := t.Host().Format(clock12Layout)
	if body, found := strings.CutSuffix(text, hostPM); found {
		return body + c.pm
	}

	return strings.TrimSuffix(text, hostAM) + c.am
}

func (c *Clock12) Parse(text string) (datetime.LocalTime, error) {
	host := text
	if body, found := strings.CutSuffix(text, " "+c.pm); found {
		host = body + " " + hostPM
	} else if body, found = strings.CutSuffix(text, " "+c.am); found {
		host = body + " " + hostAM
	}
	parsed, err := stdlibtime.Parse(clock12Layout, host)
	if err != nil {
		return datetime.LocalTime{}, terror.New(
			errors.Wrapf(calendar.ErrUnparseable, "%q: %v", text, err),
			map[string]any{terror.TemporalKey: "LocalTime", terror.InputKey: text},
		)
	}

	return datetime.TimeOfHost(parsed), nil
}
