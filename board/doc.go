// Package board builds the super-hex game board: an immutable, densely
// connected hexagon of fields whose values grow from the rim toward the center.
//
// What:
//
//   - Field: a graph node with axial coordinates, an integer value and six
//     directional neighbor links (nil = absent).
//   - Board: owns every Field of one hexagon and answers coordinate lookups.
//   - New grows the hexagon ring by ring from a single center field, links
//     each new field to the field that spawned it, then merges fields that
//     were discovered twice so each coordinate appears exactly once.
//
// Values:
//
//	radius 2:             1   1   1
//	                    1   2   2   1
//	                  1   2   3   2   1
//	                    1   2   2   1
//	                      1   1   1
//
// The center holds radius+1 and each ring outward is one less, so the rim is 1.
//
// Complexity:
//
//   - New:     O(R²) fields, O(R³) boundary scans, Memory: O(R²).
//   - FieldAt: O(1) via the coordinate index.
//   - Walk:    O(V), Memory: O(V).
//
// Errors:
//
//   - ErrInvalidRadius: radius < 1.
//   - hex.ErrUnknownDirection: unrecognized direction on neighbor get/set.
//   - ErrFrozenField: mutation of a field owned by a built board.
//   - ErrInconsistentBoard: adjacency invariant broken during or after construction.
//   - ErrStartNotFound, ErrOptionViolation: invalid Walk input.
package board
