// SPDX-License-Identifier: MIT
// Package sheet: sentinel error set.
// Cell and shape errors are shared with package grid so errors.Is matches
// either name. Public methods wrap them with the method and its arguments.

package sheet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/sharesheet/delimited"
	"github.com/katalvlaran/sharesheet/grid"
)

var (
	// ErrBadShape is returned by New when rows < 1 or cols < 1.
	ErrBadShape = grid.ErrBadShape

	// ErrOutOfRange indicates a row, column or insertion index outside the current shape.
	ErrOutOfRange = grid.ErrOutOfRange

	// ErrNotFound indicates that a Load source does not exist.
	ErrNotFound = errors.New("sheet: source not found")

	// ErrEmptySource indicates that a Load source held no rows.
	ErrEmptySource = delimited.ErrEmpty
)

// sheetErrorf wraps err as "Sheet.method(a,b,...): err".
func sheetErrorf(method string, err error, args ...int) error {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = strconv.Itoa(a)
	}

	return fmt.Errorf("Sheet.%s(%s): %w", method, strings.Join(parts, ","), err)
}
