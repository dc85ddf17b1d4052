// Package diagnostic provides structured errors, warnings and notes produced
// while loading and validating a binding schema.
//
// Every diagnostic carries a stable code, the object and member it concerns,
// and optional "did you mean" suggestions.
package diagnostic
