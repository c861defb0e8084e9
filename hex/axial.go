// SPDX-License-Identifier: MIT

package hex

import "fmt"

// Axial represents axial coordinates (q, r). The implicit third cube
// coordinate is s = -q - r.
type Axial struct {
	Q int
	R int
}

// Origin is the center of every board.
var Origin = Axial{}

// Add returns a+b in axial space.
func (a Axial) Add(b Axial) Axial { return Axial{Q: a.Q + b.Q, R: a.R + b.R} }

// Sub returns a-b in axial space.
func (a Axial) Sub(b Axial) Axial { return Axial{Q: a.Q - b.Q, R: a.R - b.R} }

// S returns the implicit third cube coordinate.
func (a Axial) S() int { return -a.Q - a.R }

// Neighbor returns the coordinate one step away in direction d.
// An invalid d yields a itself.
func (a Axial) Neighbor(d Direction) Axial {
	if !d.Valid() {
		return a
	}
	return a.Add(adjustments[d])
}

// Distance returns the ring distance from the origin: max(|q|, |r|, |q+r|).
func (a Axial) Distance() int {
	return max(abs(a.Q), abs(a.R), abs(a.Q+a.R))
}

// DistanceTo returns the hex distance between a and b.
func (a Axial) DistanceTo(b Axial) int { return a.Sub(b).Distance() }

// Within reports whether a lies inside the hexagon of the given radius
// centered at the origin.
func (a Axial) Within(radius int) bool { return a.Distance() <= radius }

// String formats a as "(q, r)".
func (a Axial) String() string { return fmt.Sprintf("(%d, %d)", a.Q, a.R) }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
