package gomap

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/recfmt/go-rec/ir"
)

// ToValue converts a Go value to a format value using reflection.
func ToValue(v any) (ir.Value, error) {
	if v == nil {
		return ir.None(), nil
	}
	return toValueReflect(reflect.ValueOf(v), "")
}

// toValueReflect converts a reflect.Value to a format value. fieldPath
// is used for error reporting (e.g. "person.address.street").
func toValueReflect(val reflect.Value, fieldPath string) (ir.Value, error) {
	if !val.IsValid() {
		return ir.None(), nil
	}

	typ := val.Type()
	kind := typ.Kind()

	if kind == reflect.Ptr {
		if val.IsNil() {
			return ir.None(), nil
		}
		inner, err := toValueReflect(val.Elem(), fieldPath)
		if err != nil {
			return ir.Value{}, err
		}
		return ir.Some(inner), nil
	}

	switch kind {
	case reflect.String:
		return ir.FromString(val.String()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(val.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return ir.FromUint(val.Uint()), nil

	case reflect.Float32, reflect.Float64:
		return ir.FromFloat(val.Float()), nil

	case reflect.Bool:
		return ir.FromBool(val.Bool()), nil

	case reflect.Slice, reflect.Array:
		if typ.Elem().Kind() == reflect.Uint8 && kind == reflect.Slice {
			return ir.FromBytes(val.Bytes()), nil
		}
		return toValueSlice(val, fieldPath)

	case reflect.Map:
		return toValueMap(val, fieldPath)

	case reflect.Struct:
		return toValueStruct(val, fieldPath)

	case reflect.Interface:
		if val.IsNil() {
			return ir.None(), nil
		}
		return toValueReflect(val.Elem(), fieldPath)

	default:
		return ir.Value{}, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("unsupported type: %s", typ),
		}
	}
}

// toValueSlice converts a slice or array to an array value.
func toValueSlice(val reflect.Value, fieldPath string) (ir.Value, error) {
	length := val.Len()
	elements := make([]ir.Value, 0, length)

	for i := 0; i < length; i++ {
		elemPath := fmt.Sprintf("%s[%d]", fieldPath, i)
		elem, err := toValueReflect(val.Index(i), elemPath)
		if err != nil {
			return ir.Value{}, err
		}
		elements = append(elements, elem)
	}

	return ir.FromSlice(elements), nil
}

// toValueMap converts a Go map to a map value. Go map iteration is
// unordered, so entries are sorted by key to keep output deterministic.
func toValueMap(val reflect.Value, fieldPath string) (ir.Value, error) {
	if val.IsNil() {
		return ir.None(), nil
	}

	type entry struct {
		key, val ir.Value
	}
	entries := make([]entry, 0, val.Len())

	iter := val.MapRange()
	for iter.Next() {
		keyPath := fmt.Sprintf("%s[%v]", fieldPath, iter.Key().Interface())
		key, err := toValueReflect(iter.Key(), keyPath)
		if err != nil {
			return ir.Value{}, err
		}
		value, err := toValueReflect(iter.Value(), keyPath)
		if err != nil {
			return ir.Value{}, err
		}
		entries = append(entries, entry{key: key, val: value})
	}
	sort.Slice(entries, func(i, j int) bool {
		return ir.Compare(entries[i].key, entries[j].key) < 0
	})

	m := ir.NewMap(len(entries))
	for _, e := range entries {
		m.Insert(e.key, e.val)
	}
	return ir.FromMap(m), nil
}

// toValueStruct converts a Go struct to a named struct value with
// named fields. Embedded structs are flattened into the parent.
func toValueStruct(val reflect.Value, fieldPath string) (ir.Value, error) {
	typ := val.Type()
	fields := &ir.Fields{Named: true}

	if err := structFields(val, fieldPath, fields); err != nil {
		return ir.Value{}, err
	}
	return ir.FromStruct(&ir.Struct{Name: typ.Name(), Fields: fields}), nil
}

func structFields(val reflect.Value, fieldPath string, out *ir.Fields) error {
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		fieldVal := val.Field(i)

		if field.Anonymous && fieldVal.Kind() == reflect.Struct {
			if err := structFields(fieldVal, fieldPath, out); err != nil {
				return err
			}
			continue
		}

		info, err := fieldInfo(field)
		if err != nil {
			return err
		}
		if info.Omit {
			continue
		}
		if info.Optional && isNil(fieldVal) {
			continue
		}

		nextPath := info.OutName
		if fieldPath != "" {
			nextPath = fieldPath + "." + info.OutName
		}
		fv, err := toValueReflect(fieldVal, nextPath)
		if err != nil {
			return err
		}
		if _, ok := out.Get(info.OutName); ok {
			return &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("field name conflict: %q appears more than once", info.OutName),
			}
		}
		out.Set(info.OutName, fv)
	}
	return nil
}

func isNil(val reflect.Value) bool {
	switch val.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
		return val.IsNil()
	}
	return false
}
