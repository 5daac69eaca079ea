// SPDX-License-Identifier: ice License 1.0

// Package log is the structured logger of the module: zerolog when built with `-tags zerolog`, the standard logger otherwise.
package log

// Private API.

const (
	applicationYAMLKey = "logger"
)

type (
	cfg struct {
		Encoder string `yaml:"encoder" mapstructure:"encoder"`
		Level   string `yaml:"level" mapstructure:"level"`
	}
)

//nolint:gochecknoglobals // Immutable defaults.
var defaultCfg = cfg{Encoder: "console", Level: "info"}
