// SPDX-License-Identifier: MIT

package hex

import "fmt"

// Direction names one of the six neighbors of a hex field.
type Direction int

const (
	// TopLeft is the (0, -1) neighbor.
	TopLeft Direction = iota
	// TopRight is the (+1, -1) neighbor.
	TopRight
	// Left is the (-1, 0) neighbor.
	Left
	// Right is the (+1, 0) neighbor.
	Right
	// BottomLeft is the (-1, +1) neighbor.
	BottomLeft
	// BottomRight is the (0, +1) neighbor.
	BottomRight
)

// NumDirections is the size of the direction vocabulary.
const NumDirections = 6

var labels = [NumDirections]string{
	TopLeft:     "topleft",
	TopRight:    "topright",
	Left:        "left",
	Right:       "right",
	BottomLeft:  "bottomleft",
	BottomRight: "bottomright",
}

var adjustments = [NumDirections]Axial{
	TopLeft:     {Q: 0, R: -1},
	TopRight:    {Q: 1, R: -1},
	Left:        {Q: -1, R: 0},
	Right:       {Q: 1, R: 0},
	BottomLeft:  {Q: -1, R: 1},
	BottomRight: {Q: 0, R: 1},
}

var opposites = [NumDirections]Direction{
	TopLeft:     BottomRight,
	TopRight:    BottomLeft,
	Left:        Right,
	Right:       Left,
	BottomLeft:  TopRight,
	BottomRight: TopLeft,
}

// Directions returns the six directions in their fixed iteration order.
func Directions() [NumDirections]Direction {
	return [NumDirections]Direction{TopLeft, TopRight, Left, Right, BottomLeft, BottomRight}
}

// Valid reports whether d is one of the six recognized directions.
func (d Direction) Valid() bool { return d >= TopLeft && d <= BottomRight }

// String returns the lowercase label of d, e.g. "topleft".
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return labels[d]
}

// ParseDirection maps a label such as "bottomright" to its Direction.
// Returns ErrUnknownDirection for any other label.
func ParseDirection(label string) (Direction, error) {
	for d, l := range labels {
		if l == label {
			return Direction(d), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, label)
}

// Adjustment returns the axial delta one step in direction d.
func Adjustment(d Direction) (Axial, error) {
	if !d.Valid() {
		return Axial{}, fmt.Errorf("%w: %d", ErrUnknownDirection, int(d))
	}
	return adjustments[d], nil
}

// Opposite returns the geometric inverse of d.
// Opposite(Opposite(d)) == d for every valid d.
func Opposite(d Direction) (Direction, error) {
	if !d.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownDirection, int(d))
	}
	return opposites[d], nil
}

// Toward returns the direction whose adjustment equals delta, if any.
func Toward(delta Axial) (Direction, bool) {
	for d, adj := range adjustments {
		if adj == delta {
			return Direction(d), true
		}
	}
	return 0, false
}

// Inverse is the method form of Opposite for callers iterating over
// Directions(). An invalid d is returned unchanged.
func (d Direction) Inverse() Direction {
	if !d.Valid() {
		return d
	}
	return opposites[d]
}
