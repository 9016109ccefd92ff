// Package gomap converts native Go values into format values and text.
//
// # Usage
//
//	type User struct {
//	    Name string
//	    Age  int `rec:"field=age"`
//	}
//
//	// Build a value tree
//	v, err := gomap.ToValue(User{Name: "Alice", Age: 30})
//
//	// Or render text directly
//	s, err := gomap.Marshal(User{Name: "Alice", Age: 30})
//
// Conversion is reflection-based. Only exported struct fields are
// processed, matching encoding/json; the `rec` struct tag renames and
// omits fields.
//
// # Related Packages
//
//   - github.com/recfmt/go-rec/ir - value tree representation
//   - github.com/recfmt/go-rec/encode - text rendering
package gomap
