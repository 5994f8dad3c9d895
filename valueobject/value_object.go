// Package valueobject implements structural equality and hashing for value
// objects: domain objects distinguished solely by the composition of their
// attribute values.
//
// Two instances are structurally equal when they have the same concrete type
// and every stored field compares equal, field by field. The field set of a
// type is its declared fields plus the fields promoted from value-embedded
// structs, and the same field set drives both Equal and Hash, so
// Equal(x, y) implies Hash(x) == Hash(y).
//
// The engine assumes acyclic values and is meant to be used by terminal
// concrete value types with fully defined fields.
package valueobject

import (
	"reflect"
)

// ValueObject as described in the DDD book.
// Value objects compare by the values of their attributes, they don't have an identity.
// Concrete value types typically implement SameValueAs by delegating to Equal.
type ValueObject[T any] interface {
	SameValueAs(other T) bool
}

// Equal reports whether x and y are structurally equal.
//
// Pointers that reference the same object are equal without further
// inspection; a nil and a non-nil pointer are never equal; two nil pointers
// are equal. Fields compare by their own value equality: both absent
// (nil pointer, interface, map or slice) is equal, one absent is not, and the
// first unequal field short-circuits the comparison.
func Equal[T any](x, y T) bool {
	return equalValue(reflect.ValueOf(x), reflect.ValueOf(y))
}

// NotEqual is the negation of Equal.
func NotEqual[T any](x, y T) bool {
	return !Equal(x, y)
}

// EqualAny is the untyped form of Equal. It reports false whenever the
// dynamic types of x and y differ, even if their field shapes coincide.
func EqualAny(x any, y any) bool {
	return equalValue(reflect.ValueOf(x), reflect.ValueOf(y))
}

func equalValue(x reflect.Value, y reflect.Value) bool {
	if !x.IsValid() || !y.IsValid() {
		return x.IsValid() == y.IsValid()
	}
	if x.Type() != y.Type() {
		return false
	}
	switch x.Kind() {
	case reflect.Pointer:
		if x.Pointer() == y.Pointer() {
			return true
		}
		if x.IsNil() || y.IsNil() {
			return false
		}
		return equalValue(x.Elem(), y.Elem())
	case reflect.Interface:
		if x.IsNil() || y.IsNil() {
			return x.IsNil() == y.IsNil()
		}
		return equalValue(x.Elem(), y.Elem())
	case reflect.Struct:
		for _, field := range _CachedStructInfo(x.Type()).Fields {
			if !equalValue(field.ValueOf(x), field.ValueOf(y)) {
				return false
			}
		}
		return true
	case reflect.Slice:
		if x.IsNil() != y.IsNil() {
			return false
		}
		if x.Len() != y.Len() {
			return false
		}
		if x.Pointer() == y.Pointer() {
			return true
		}
		for i := 0; i < x.Len(); i++ {
			if !equalValue(x.Index(i), y.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Array:
		for i := 0; i < x.Len(); i++ {
			if !equalValue(x.Index(i), y.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Map:
		if x.IsNil() != y.IsNil() {
			return false
		}
		if x.Len() != y.Len() {
			return false
		}
		if x.Pointer() == y.Pointer() {
			return true
		}
		iter := x.MapRange()
		for iter.Next() {
			yVal := y.MapIndex(iter.Key())
			if !yVal.IsValid() {
				return false
			}
			if !equalValue(iter.Value(), yVal) {
				return false
			}
		}
		return true
	case reflect.Bool:
		return x.Bool() == y.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return x.Int() == y.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return x.Uint() == y.Uint()
	case reflect.Float32, reflect.Float64:
		return x.Float() == y.Float()
	case reflect.Complex64, reflect.Complex128:
		return x.Complex() == y.Complex()
	case reflect.String:
		return x.String() == y.String()
	case reflect.Chan, reflect.UnsafePointer:
		return x.Pointer() == y.Pointer()
	case reflect.Func:
		// functions compare equal only when both are nil
		return x.IsNil() && y.IsNil()
	default:
		return false
	}
}
