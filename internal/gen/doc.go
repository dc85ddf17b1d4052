// Package gen renders the four artifacts of a binding from a resolved
// schema.Config.
//
// Framework side:
//   - CppHeader: one QObject or QAbstractItemModel subclass per object
//   - CppSource: the class definitions calling into Rust through extern "C"
//
// Native side:
//   - RustInterface: extern "C" entry points, emitters, model handles and the
//     trait each object has to implement
//   - RustImplementation: a starter implementation, written only once
//
// Fixed blocks are text/template templates; the rest is written line by line
// into a code buffer. Output depends only on the configuration, so identical
// input yields identical bytes.
package gen
