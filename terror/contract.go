// SPDX-License-Identifier: ice License 1.0

package terror

// Public API.

const (
	// TemporalKey holds the name of the value type that attempted the failed operation.
	TemporalKey = "temporal"
	// InputKey holds the raw text or value that could not be handled.
	InputKey = "input"
)

type (
	Err struct {
		error
		Data map[string]any `json:"data"`
	}
)
