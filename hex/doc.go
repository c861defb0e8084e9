// Package hex defines axial hex-grid coordinates and the closed vocabulary
// of the six neighbor directions used by the board package.
//
// What:
//
//   - Axial{Q, R}: two integer axes at 60° (see redblobgames "hexagons").
//   - Direction: TopLeft, TopRight, Left, Right, BottomLeft, BottomRight.
//   - Adjustment: direction → axial delta.
//   - Opposite:   direction → geometric inverse (an involution).
//
// Layout around a field at (0, 0):
//
//	    (0, -1)   (1, -1)
//
//	(-1, 0)  (0, 0)  (1, 0)
//
//	    (-1, 1)   (0, 1)
//
// All tables are package-level arrays and are never mutated at runtime.
//
// Errors:
//
//   - ErrUnknownDirection: a label or Direction value outside the six known ones.
package hex
