package valueobject

import (
	"math"
	"reflect"

	"golang.org/x/exp/slices"
)

// Seed and multiplier of the field-folding hash. The values are fixed per
// build; only Equal(x, y) implying Hash(x) == Hash(y) is contractual.
const (
	hashSeed       = 17
	hashMultiplier = 59
)

// Hash computes a structural hash of x over the same field set Equal
// compares: start from the seed and fold each present field value as
// hash = hash*multiplier + fieldHash, in declaration order. Absent values
// (nil pointers, interfaces, maps and slices) contribute nothing. Map entries
// are folded in sorted entry-hash order, so the result is deterministic.
func Hash(x any) uint64 {
	return hashValue(reflect.ValueOf(x))
}

func hashValue(v reflect.Value) uint64 {
	if !v.IsValid() {
		return 0
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		return hashValue(v.Elem())
	case reflect.Struct:
		hash := uint64(hashSeed)
		for _, field := range _CachedStructInfo(v.Type()).Fields {
			fieldVal := field.ValueOf(v)
			if absentValue(fieldVal) {
				continue
			}
			hash = hash*hashMultiplier + hashValue(fieldVal)
		}
		return hash
	case reflect.Slice, reflect.Array:
		hash := uint64(hashSeed)
		for i := 0; i < v.Len(); i++ {
			elem := v.Index(i)
			if absentValue(elem) {
				continue
			}
			hash = hash*hashMultiplier + hashValue(elem)
		}
		return hash
	case reflect.Map:
		entries := make([]uint64, 0, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			entry := hashValue(iter.Key()) * hashMultiplier
			if !absentValue(iter.Value()) {
				entry += hashValue(iter.Value())
			}
			entries = append(entries, entry)
		}
		slices.Sort(entries)
		hash := uint64(hashSeed)
		for _, entry := range entries {
			hash = hash*hashMultiplier + entry
		}
		return hash
	case reflect.Bool:
		if v.Bool() {
			return 1
		}
		return 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return uint64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint()
	case reflect.Float32, reflect.Float64:
		return hashFloat(v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		return hashFloat(real(c))*hashMultiplier + hashFloat(imag(c))
	case reflect.String:
		return hashString(v.String())
	default:
		// chan, func, unsafe pointer
		return uint64(v.Pointer())
	}
}

func hashString(s string) uint64 {
	hash := uint64(hashSeed)
	for i := 0; i < len(s); i++ {
		hash = hash*hashMultiplier + uint64(s[i])
	}
	return hash
}

func hashFloat(f float64) uint64 {
	// +0 and -0 compare equal and must hash alike
	if f == 0 {
		return 0
	}
	return math.Float64bits(f)
}

func absentValue(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}
