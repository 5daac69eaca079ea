// SPDX-License-Identifier: ice License 1.0

package terror

import (
	"maps"

	"github.com/pkg/errors"
)

func New(err error, data map[string]any) *Err {
	return &Err{error: err, Data: data}
}

// Tag attaches the temporal type name to err, keeping the already collected data.
func Tag(err error, temporal string) error {
	if err == nil {
		return nil
	}
	data := map[string]any{TemporalKey: temporal}
	if tErr := As(err); tErr != nil {
		maps.Copy(data, tErr.Data)
		data[TemporalKey] = temporal
	}

	return New(err, data)
}

func As(err error) *Err {
	tErr := new(Err)
	if ok := errors.As(err, tErr); ok {
		return tErr
	}

	return nil
}

// Temporal returns the temporal type name err was tagged with, if any.
func Temporal(err error) string {
	if tErr := As(err); tErr != nil {
		if name, ok := tErr.Data[TemporalKey].(string); ok {
			return name
		}
	}

	return ""
}

func (e *Err) Is(er error) bool {
	return errors.Is(er, e.error)
}

func (e *Err) Unwrap() error {
	return e.error
}

func (e *Err) As(err any) bool {
	o, ok := err.(*Err)
	if ok {
		*o = *e
	}

	return ok
}
