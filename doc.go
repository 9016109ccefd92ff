// Package rec is the core of the rec format, a human-readable textual
// notation for structured data: named records, maps, arrays and typed
// scalars.
//
//	Point(
//	    x: +1,
//	    y: -2,
//	)
//
// The root package holds the error model. Subpackages provide the
// rest of the core:
//
//   - num    — sign/magnitude integers and bit-pattern floats
//   - ir     — the dynamic Value tree, transcoding and schemaless
//     decoding
//   - model  — the generic data-model protocol (Writer, Marshaler,
//     Reader, Visitor)
//   - encode — the pretty-printing text serializer
//   - gomap  — reflection bridge from plain Go values to the protocol
package rec
