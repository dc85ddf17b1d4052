// Package schema resolves a binding file into an immutable object graph.
//
// Resolution turns every property type name into either a primitive kind or
// a pointer to the canonical *Object of that name. Objects are resolved on
// demand and memoized, so an object referenced from several places is built
// once and shared. A property chain leading back to an object still under
// construction is reported as ErrCyclicType.
//
// Everything the emitters need to know beyond the declarations themselves
// (column counts, role dispatch tables, the set of used types) is derived
// here so that the C++ and Rust sides agree by construction.
package schema
