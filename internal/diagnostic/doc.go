// Package diagnostic provides structured errors and warnings produced while
// validating a data vector plan.
//
// Key capabilities:
//   - Non-positive and duplicate size reports
//   - Unknown branch order and empty identifier reports
//   - Collapsing all errors into a single error value
package diagnostic
