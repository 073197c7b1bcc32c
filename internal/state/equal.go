package state

import (
	"math"
	"reflect"
)

// ShallowEqual reports whether a and b are identical, or are records of the
// same type whose first-level entries are identical.
//
// Records are maps, structs, slices and arrays, optionally behind a single
// pointer. Entries are never compared structurally: maps, slices, pointers,
// funcs and channels are identical only when they share the same reference.
func ShallowEqual(a, b any) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if identical(va, vb) {
		return true
	}

	ra, rb := asRecord(va), asRecord(vb)
	if !ra.IsValid() || !rb.IsValid() || ra.Type() != rb.Type() {
		return false
	}

	switch ra.Kind() {
	case reflect.Map:
		if ra.Len() != rb.Len() {
			return false
		}
		iter := ra.MapRange()
		for iter.Next() {
			other := rb.MapIndex(iter.Key())
			if !other.IsValid() || !identical(iter.Value(), other) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := 0; i < ra.NumField(); i++ {
			if !identical(ra.Field(i), rb.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Slice, reflect.Array:
		if ra.Len() != rb.Len() {
			return false
		}
		for i := 0; i < ra.Len(); i++ {
			if !identical(ra.Index(i), rb.Index(i)) {
				return false
			}
		}
		return true
	}
	return false
}

// asRecord returns v (or the value it points to) when it has first-level
// entries to compare, and the zero Value otherwise.
func asRecord(v reflect.Value) reflect.Value {
	v = unwrap(v)
	if !v.IsValid() {
		return v
	}
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Map, reflect.Struct, reflect.Slice, reflect.Array:
		return v
	}
	return reflect.Value{}
}

// identical compares reference kinds by reference and treats NaN as equal to
// NaN. Structs and arrays apply the same rules per field or element.
func identical(x, y reflect.Value) bool {
	x, y = unwrap(x), unwrap(y)
	if !x.IsValid() || !y.IsValid() {
		return x.IsValid() == y.IsValid()
	}
	if x.Type() != y.Type() {
		return false
	}

	switch x.Kind() {
	case reflect.Map, reflect.Pointer, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return x.Pointer() == y.Pointer()
	case reflect.Slice:
		return x.Pointer() == y.Pointer() && x.Len() == y.Len()
	case reflect.Float32, reflect.Float64:
		fx, fy := x.Float(), y.Float()
		return fx == fy || (math.IsNaN(fx) && math.IsNaN(fy))
	case reflect.Struct:
		for i := 0; i < x.NumField(); i++ {
			if !identical(x.Field(i), y.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Array:
		for i := 0; i < x.Len(); i++ {
			if !identical(x.Index(i), y.Index(i)) {
				return false
			}
		}
		return true
	}

	return x.Equal(y)
}

func unwrap(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	return v
}
