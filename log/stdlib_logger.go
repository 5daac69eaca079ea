// SPDX-License-Identifier: ice License 1.0
//go:build !zerolog

package log

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/ice-blockchain/hijrah/config"
)

const (
	debug = "debug"
	info  = "info"
	warn  = "warn"
	fault = "error"
)

// .
var (
	//nolint:gochecknoglobals // Immutable singleton.
	appCfg cfg
	//nolint:gochecknoglobals // Immutable lookup.
	severities = map[string]int{debug: 0, info: 1, warn: 2, fault: 3} //nolint:gomnd // Ordinal ranks.
)

//nolint:gochecknoinits // log is global, so it's initialization can be done in init
func init() {
	log.SetFlags(log.LstdFlags | log.Lmsgprefix | log.LUTC | log.Llongfile | log.Lmicroseconds)
	config.MustLoadFromKeyWithDefaults(applicationYAMLKey, &appCfg, defaultCfg)
}

func enabled(level string) bool {
	configured, found := severities[strings.ToLower(appCfg.Level)]
	if !found {
		configured = severities[info]
	}

	return severities[level] >= configured
}

func printf(level, msg string, fields ...any) {
	if !enabled(level) {
		return
	}
	vars := make([]string, 0, len(fields)+1)
	for i := 0; i <= len(fields); i++ {
		vars = append(vars, "%v")
	}

	vals := make([]any, 0, len(fields)+1)
	vals = append(vals, msg)
	vals = append(vals, fields...)

	//nolint:govet // The format is built right above.
	log.Output(3, fmt.Sprintf(fmt.Sprintf("%v:%v", strings.ToUpper(level), strings.Join(vars, " ")), vals...)) //nolint:errcheck,gomnd // Skips printf and its caller.
}

func Error(err error, fields ...any) {
	if err == nil {
		return
	}
	printf(fault, err.Error(), fields...)
}

func Debug(msg string, fields ...any) {
	printf(debug, msg, fields...)
}

func Info(msg string, fields ...any) {
	printf(info, msg, fields...)
}

func Warn(msg string, fields ...any) {
	printf(warn, msg, fields...)
}

func Fatal(anything any, fields ...any) {
	if anything == nil {
		return
	}
	defer os.Exit(1)
	Error(asError(anything), fields...)
}

func Panic(anything any, fields ...any) {
	if anything == nil {
		return
	}
	defer func() {
		panic(anything)
	}()
	Error(asError(anything), fields...)
}

func asError(anything any) error {
	switch obj := anything.(type) {
	case error:
		return obj
	case string:
		return errors.New(obj)
	default:
		return errors.Errorf("%#v", obj)
	}
}

func Level() string {
	return appCfg.Level
}
