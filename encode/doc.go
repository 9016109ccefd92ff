// Package encode renders structured sources as rec format text.
//
// # Usage
//
//	// Render a value tree
//	v := ir.FromStruct(&ir.Struct{
//	    Name:   "Point",
//	    Fields: ir.NamedFields().Set("x", ir.FromInt(1)).Set("y", ir.FromInt(-2)),
//	})
//	text, err := encode.ToString(v)
//
//	// Render with options
//	text, err = encode.ToString(v, encode.DepthLimit(0))
//
// Any model.Marshaler renders the same way; a value tree is just one
// kind of source.
//
// # Related Packages
//
//   - github.com/recfmt/go-rec/ir - dynamic value trees
//   - github.com/recfmt/go-rec/model - the data-model protocol
package encode
