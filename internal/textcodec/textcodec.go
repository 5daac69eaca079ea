// SPDX-License-Identifier: ice License 1.0

// Package textcodec holds the JSON string framing shared by every Hijrah value type.
package textcodec

import (
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// Quote renders val as a JSON string, or null when the value is the zero one.
func Quote(val string, zero bool) ([]byte, error) {
	if zero {
		return []byte("null"), nil
	}
	bytes, err := json.Marshal(val)

	return bytes, errors.Wrapf(err, "failed to quote %q", val)
}

// Unquote returns the string carried by a JSON value; ok is false for null and empty inputs.
func Unquote(data []byte) (val string, ok bool, err error) {
	if str := string(data); str == "null" || str == `""` || str == "" {
		return "", false, nil
	}
	if err = json.Unmarshal(data, &val); err != nil {
		return "", false, errors.Wrapf(err, "expected a json string, got %s", data)
	}

	return val, true, nil
}

// Text converts raw sql/text input into a string; ok is false for nil and empty inputs.
func Text(src any) (val string, ok bool, err error) {
	switch typed := src.(type) {
	case nil:
		return "", false, nil
	case string:
		return typed, typed != "", nil
	case []byte:
		return string(typed), len(typed) != 0, nil
	default:
		return "", false, errors.Errorf("unsupported source type %T", src)
	}
}
