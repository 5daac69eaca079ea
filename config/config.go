// SPDX-License-Identifier: ice License 1.0

// Package config reads the optional application.yaml (and .env) every other package takes its settings from.
package config

import (
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"runtime"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// EnvFile points to an explicit application.yaml, skipping the lookup.
	EnvFile       = "HIJRAH_CONFIG_FILE"
	dotEnvDepth   = 5
	configFileExt = "application.yaml"
)

//nolint:gochecknoinits // Because we load the configs once, for the whole runtime
func init() {
	dotEnvPath := `.env`
	for range dotEnvDepth {
		if err := godotenv.Load(dotEnvPath); err == nil {
			break
		}
		dotEnvPath = fmt.Sprintf(`../%v`, dotEnvPath)
	}
	loadFirstApplicationConfigFile()
}

func MustLoadFromKey(key string, cfg any) {
	if err := viper.UnmarshalKey(key, cfg); err != nil {
		log.Panic(errors.Wrapf(err, "failed to load config by key %q", key))
	}
}

// MustLoadFromKeyWithDefaults is MustLoadFromKey followed by filling every zero field of cfg from defaults.
func MustLoadFromKeyWithDefaults[T any](key string, cfg *T, defaults T) {
	MustLoadFromKey(key, cfg)
	if err := mergo.Merge(cfg, defaults); err != nil {
		log.Panic(errors.Wrapf(err, "failed to merge defaults for key %q", key))
	}
}

// loadFirstApplicationConfigFile is best effort: a library has to work with defaults only.
func loadFirstApplicationConfigFile() {
	for _, f := range findAllApplicationConfigFiles() {
		viper.SetConfigFile(f)
		if err := viper.ReadInConfig(); err == nil {
			return
		} else if !errors.Is(err, os.ErrNotExist) {
			log.Panic(errors.Wrapf(err, "failed to read %v", f))
		}
	}
}

func findAllApplicationConfigFiles() []string {
	if f := os.Getenv(EnvFile); f != "" {
		return []string{f}
	}
	var files []string
	var hints []string

	if p, err := os.Getwd(); err == nil {
		hints = append(hints, p)
	}
	if p, err := os.Executable(); err == nil {
		hints = append(hints, path.Dir(filepath.Join(p, "..")))
	}

	for _, dir := range hints {
		files = append(files, glob(filepath.Join(dir, ".testdata", configFileExt))...)
		files = append(files, glob(filepath.Join(dir, configFileExt))...)
	}
	//nolint:dogsled // Because those 3 blank identifiers are useless
	_, callerFile, _, _ := runtime.Caller(0)
	files = append(files, glob(filepath.Join(filepath.Dir(callerFile), "..", configFileExt))...)

	return files
}

func glob(pattern string) []string {
	files, err := filepath.Glob(pattern)
	if err != nil {
		log.Println(errors.Wrapf(err, "glob failed for [%v]", pattern))
	}

	return files
}
