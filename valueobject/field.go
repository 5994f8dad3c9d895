package valueobject

import (
	"reflect"
	"sync"

	"golang.org/x/exp/slices"
)

// _StructInfo describes the comparable shape of a struct type: every field
// declared on the type itself plus the fields promoted from value-embedded
// structs, in declaration order. Pointer embeds are not flattened, they stay
// ordinary fields so a nil embed keeps a well-defined meaning.
type _StructInfo struct {
	Type   reflect.Type
	Fields []*_FieldInfo
}

func (s *_StructInfo) Analysis() *_StructInfo {
	for i := 0; i < s.Type.NumField(); i++ {
		field := &_FieldInfo{StructField: s.Type.Field(i)}
		field.Indexes = slices.Clone(field.StructField.Index)
		// anonymous value embeds contribute their fields to the chain
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			for _, embedField := range _CachedStructInfo(field.Type).Fields {
				s.Fields = append(s.Fields, embedField.Clone().Unshift(field))
			}
			continue
		}
		s.Fields = append(s.Fields, field)
	}
	return s
}

type _FieldInfo struct {
	reflect.StructField
	Indexes []int
}

func (f *_FieldInfo) Clone() *_FieldInfo {
	return &_FieldInfo{StructField: f.StructField, Indexes: slices.Clone(f.Indexes)}
}

func (f *_FieldInfo) Unshift(parent *_FieldInfo) *_FieldInfo {
	f.Indexes = append(slices.Clone(parent.Indexes), f.Indexes...)
	return f
}

// ValueOf resolves the field on structVal, walking down the embed chain.
// The chain contains only value embeds, so no indirection is needed.
func (f *_FieldInfo) ValueOf(structVal reflect.Value) reflect.Value {
	fieldVal := structVal
	for _, i := range f.Indexes {
		fieldVal = fieldVal.Field(i)
	}
	return fieldVal
}

func _NewStructInfo(typ reflect.Type) *_StructInfo {
	return &_StructInfo{Type: typ, Fields: make([]*_FieldInfo, 0, typ.NumField())}
}

func _CachedStructInfo(typ reflect.Type) *_StructInfo {
	if f, ok := structCache.Load(typ); ok {
		return f.(*_StructInfo)
	}
	f, _ := structCache.LoadOrStore(typ, _NewStructInfo(typ).Analysis())
	return f.(*_StructInfo)
}

var structCache sync.Map
