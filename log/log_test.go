// SPDX-License-Identifier: ice License 1.0
//go:build !zerolog

package log

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

//nolint:paralleltest // Swaps the global standard logger output.
func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	assert.Equal(t, "info", Level())
	Debug("hidden")
	Info("converted", "1446-10-01")
	Warn("clamped", 29)
	Error(errors.New("boom"), "Date")
	Error(nil)
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "INFO:converted 1446-10-01")
	assert.Contains(t, out, "WARN:clamped 29")
	assert.Contains(t, out, "ERROR:boom Date")
	assert.Contains(t, out, "log_test.go")

	assert.NotPanics(t, func() { Panic(nil) })
	assert.PanicsWithValue(t, "stop", func() { Panic("stop") })
}
