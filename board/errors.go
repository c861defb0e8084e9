// SPDX-License-Identifier: MIT

package board

import "errors"

var (
	// ErrInvalidRadius indicates a board radius smaller than 1.
	ErrInvalidRadius = errors.New("board: radius must be >= 1")

	// ErrFrozenField indicates an attempt to mutate a field that belongs to a built board.
	ErrFrozenField = errors.New("board: field is frozen")

	// ErrInconsistentBoard indicates a broken adjacency or coordinate invariant.
	// It signals a defect, never a transient condition.
	ErrInconsistentBoard = errors.New("board: internal consistency failure")

	// ErrStartNotFound indicates a Walk start coordinate outside the board.
	ErrStartNotFound = errors.New("board: start field not found")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("board: invalid option supplied")
)
