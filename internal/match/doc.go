// Package match ranks known names by similarity to an unknown one, so that a
// misspelled type or role in a binding file can be answered with "did you
// mean" suggestions.
package match
