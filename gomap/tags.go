package gomap

import (
	"reflect"
	"strings"
)

// FieldInfo holds field metadata extracted from `rec` struct tags.
type FieldInfo struct {
	// Name is the struct field name.
	Name string

	// OutName is the rendered field name (may differ via field=).
	OutName string

	// Type is the Go type of the field.
	Type reflect.Type

	// Omit drops the field entirely.
	Omit bool

	// Optional drops the field when its value is nil.
	Optional bool
}

// ParseStructTag parses a `rec` tag string into key-value pairs.
// Entries are comma-separated; bare words are flags with empty values:
// `rec:"field=age,optional"`.
func ParseStructTag(tag string) (map[string]string, error) {
	result := make(map[string]string)
	if tag == "" {
		return result, nil
	}
	for _, part := range strings.Split(tag, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, _ := strings.Cut(part, "=")
		result[key] = value
	}
	return result, nil
}

// fieldInfo extracts FieldInfo from a struct field, applying the `rec`
// tag if present.
func fieldInfo(field reflect.StructField) (*FieldInfo, error) {
	info := &FieldInfo{
		Name:    field.Name,
		OutName: field.Name,
		Type:    field.Type,
	}
	tag, ok := field.Tag.Lookup("rec")
	if !ok {
		return info, nil
	}
	if tag == "-" {
		info.Omit = true
		return info, nil
	}
	kvs, err := ParseStructTag(tag)
	if err != nil {
		return nil, err
	}
	for key, value := range kvs {
		switch key {
		case "field":
			if value == "" {
				return nil, &TagError{
					Field:   field.Name,
					Tag:     tag,
					Message: "field= requires a name",
				}
			}
			info.OutName = value
		case "omit":
			info.Omit = true
		case "optional":
			info.Optional = true
		default:
			return nil, &TagError{
				Field:   field.Name,
				Tag:     tag,
				Message: "unknown tag key " + key,
			}
		}
	}
	return info, nil
}
