// Package diagnostic provides structured records of binding problems.
//
// Codes follow the binder's error taxonomy:
//   - unsupported-model: a bind root or sub-root of a shape that cannot be bound
//   - widget-type-mismatch: a value of the wrong type for a widget family
//   - accessor-failure: a getter, setter or direct field access failed
//   - parse-failure: text could not be coerced into the field type
//
// Declaration files use the same records for validation findings.
package diagnostic
