// Package model defines the generic data-model protocol: the fixed
// set of primitive and compound callbacks any serializable or
// deserializable type is expected to support.
//
// The write half is Writer and Marshaler: a Marshaler describes one
// value to a Writer as a series of calls, recursing through the child
// Marshalers it hands to compound calls. The encode package implements
// Writer over formatted text; the ir package implements it over Value
// trees.
//
// The read half is Reader and Visitor: a Reader produces one value by
// driving a Visitor, which absorbs the callbacks and keeps whatever it
// builds internally. The ir package implements Visitor to build Value
// trees with no prior knowledge of the source's shape, and implements
// Reader on Value so a tree can be replayed as a callback stream.
package model
