// SPDX-License-Identifier: ice License 1.0

// Package sealed closes calendar.Temporal: only packages of this module can name Token.
package sealed

type (
	Token struct{}
)
