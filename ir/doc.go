// Package ir is the dynamic value tree of the rec format: a loosely
// typed representation capable of holding any instance of the generic
// data model.
//
// A Value is a pure tree. Every child is owned exclusively by its
// parent, cycles are structurally impossible, and trees are treated as
// immutable once built. Equality, ordering and hashing are structural,
// derived from kind plus payload; map insertion order is significant.
//
// Trees are built three ways: directly through the From* builders, by
// transcoding an arbitrary structured source with ToValue, or by
// absorbing a schemaless read-callback stream with Decode.
package ir
