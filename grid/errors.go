// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// Every message is prefixed with "grid: ...". Methods wrap these with the
// method name and arguments via gridErrorf; callers match with errors.Is.

package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape has rows < 1 or cols < 1.
	ErrBadShape = errors.New("grid: invalid shape")

	// ErrOutOfRange indicates that a row, column or insertion index is outside valid bounds.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrNoRows indicates that FromRows received an empty record set.
	ErrNoRows = errors.New("grid: no rows")
)

// gridErrorf wraps err with the Grid method and its two integer arguments.
func gridErrorf(method string, a, b int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, a, b, err)
}
