// Package grid provides the dense cell store behind a shared spreadsheet.
//
// What:
//
//   - Grid is a rows×cols block of text cells stored row-major in one flat slice.
//   - Unset cells are the empty string; there is no separate "missing" marker.
//   - Structural edits (InsertRowAfter, InsertColAfter) never touch the receiver:
//     they return a freshly allocated Grid, so a caller can build the next shape
//     off to the side and publish it with a single assignment.
//   - SwapRows and SwapCols exchange values in place; the shape is unchanged.
//
// Concurrency:
//
//   - Grid does no locking of its own. Distinct cells occupy distinct slice
//     elements, so concurrent At/Set on different cells are race-free; anything
//     touching the same cell, or the shape, must be serialized by the caller
//     (package sheet does this with its arbiter and partition locks).
//
// Errors:
//
//   - ErrBadShape:   rows or cols < 1.
//   - ErrOutOfRange: row, column or insertion index outside its valid range.
//   - ErrNoRows:     FromRows was given no rows.
package grid
