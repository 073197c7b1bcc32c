package state

import (
	"fmt"
	"maps"
)

// Record is a flat key/value state record. Records handed out by a Store are
// shared and must be treated as read-only.
type Record map[string]any

// Merge returns a new record holding base overlaid with patch. Neither input
// is modified.
func Merge(base, patch Record) Record {
	out := make(Record, len(base)+len(patch))
	maps.Copy(out, base)
	maps.Copy(out, patch)
	return out
}

// Projection maps the State to the derived value a subscriber renders.
// Returning an error suppresses delivery for that notification.
type Projection[D any] func(Record) (D, error)

// Select adapts a projection that cannot fail.
func Select[D any](fn func(Record) D) Projection[D] {
	return func(r Record) (D, error) {
		return fn(r), nil
	}
}

// Key projects the value stored at name.
func Key[D any](name string) Projection[D] {
	return func(r Record) (D, error) {
		var zero D
		raw, ok := r[name]
		if !ok {
			return zero, fmt.Errorf("key %q not set", name)
		}
		v, ok := raw.(D)
		if !ok {
			return zero, fmt.Errorf("key %q holds %T, want %T", name, raw, zero)
		}
		return v, nil
	}
}

// Pick projects the sub-record holding the named keys. Missing keys are
// left out.
func Pick(names ...string) Projection[Record] {
	return func(r Record) (Record, error) {
		out := make(Record, len(names))
		for _, name := range names {
			if v, ok := r[name]; ok {
				out[name] = v
			}
		}
		return out, nil
	}
}

// Identity projects the State itself.
func Identity(r Record) (Record, error) {
	return r, nil
}

// orIdentity substitutes the identity projection for a nil one. D must be
// able to hold a Record.
func orIdentity[D any](project Projection[D]) Projection[D] {
	if project != nil {
		return project
	}
	return func(r Record) (D, error) {
		v, ok := any(r).(D)
		if !ok {
			return v, fmt.Errorf("identity projection cannot produce %T", v)
		}
		return v, nil
	}
}
