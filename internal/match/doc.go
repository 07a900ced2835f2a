// Package match finds the closest known name for a misspelled one. It backs
// the "did you mean" hints of declaration validation and type lookups.
//
// Key functions:
//   - Normalize: folds case and drops separators
//   - Distance: edit distance between two names, in runes
//   - Closest: the best candidate above a similarity threshold
package match
