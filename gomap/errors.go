package gomap

import "fmt"

// MarshalError represents an error during conversion to a value tree.
type MarshalError struct {
	FieldPath string // field path (e.g. "person.address.street")
	Message   string
	Err       error
}

func (e *MarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("marshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("marshal error: %s", e.Message)
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}

// TagError represents a malformed `rec` struct tag.
type TagError struct {
	Field   string
	Tag     string
	Message string
}

func (e *TagError) Error() string {
	return fmt.Sprintf("tag error on field %s (%q): %s", e.Field, e.Tag, e.Message)
}
