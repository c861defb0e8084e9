// SPDX-License-Identifier: MIT

package board

import (
	"fmt"

	"github.com/katalvlaran/superhex/hex"
)

// Board is a fully linked super-hex. It is immutable once returned by New
// and safe for concurrent readers.
type Board struct {
	radius int
	fields []*Field
	index  map[hex.Axial]int
}

// Radius returns the number of rings around the center.
func (b *Board) Radius() int { return b.radius }

// Len returns the number of fields.
func (b *Board) Len() int { return len(b.fields) }

// Fields returns every field, center first and then ring by ring.
// The slice is a copy; the fields themselves are frozen.
func (b *Board) Fields() []*Field {
	out := make([]*Field, len(b.fields))
	copy(out, b.fields)
	return out
}

// Center returns the field at the origin.
func (b *Board) Center() *Field { return b.fields[0] }

// FieldAt returns the field at c, or nil if c lies outside the board.
func (b *Board) FieldAt(c hex.Axial) *Field {
	i, ok := b.index[c]
	if !ok {
		return nil
	}
	return b.fields[i]
}

// Ring returns the fields at ring distance d from the center in
// construction order. Ring(0) is the center alone.
func (b *Board) Ring(d int) []*Field {
	if d < 0 || d > b.radius {
		return nil
	}
	var out []*Field
	for _, f := range b.fields {
		if f.coords.Distance() == d {
			out = append(out, f)
		}
	}
	return out
}

// Validate checks every board invariant:
//   - the field count is 3R²+3R+1 and coordinates are unique and inside the hexagon;
//   - each field's value is R+1 minus its ring distance;
//   - each link points at the field one step away and is mirrored back;
//   - links are absent exactly where the step leaves the hexagon.
//
// Returns a wrapped ErrInconsistentBoard on the first violation.
func (b *Board) Validate() error {
	if want := FieldCount(b.radius); len(b.fields) != want {
		return fmt.Errorf("%w: %d fields, want %d", ErrInconsistentBoard, len(b.fields), want)
	}
	if len(b.index) != len(b.fields) {
		return fmt.Errorf("%w: %d indexed coordinates for %d fields",
			ErrInconsistentBoard, len(b.index), len(b.fields))
	}
	for i, f := range b.fields {
		if j, ok := b.index[f.coords]; !ok || j != i {
			return fmt.Errorf("%w: %s is not indexed at %d", ErrInconsistentBoard, f.coords, i)
		}
		dist := f.coords.Distance()
		if dist > b.radius {
			return fmt.Errorf("%w: %s outside radius %d", ErrInconsistentBoard, f.coords, b.radius)
		}
		if want := b.radius + 1 - dist; f.value != want {
			return fmt.Errorf("%w: %s has value %d, want %d", ErrInconsistentBoard, f.coords, f.value, want)
		}
		if err := b.checkLinks(f); err != nil {
			return err
		}
	}
	return nil
}

func (b *Board) checkLinks(f *Field) error {
	for _, d := range hex.Directions() {
		n := f.neighbors[d]
		want := b.FieldAt(f.coords.Neighbor(d))
		if n != want {
			return fmt.Errorf("%w: %s %s links %v, want %v", ErrInconsistentBoard, f.coords, d, n, want)
		}
		if n != nil && n.neighbors[d.Inverse()] != f {
			return fmt.Errorf("%w: %s %s is not mirrored by %s", ErrInconsistentBoard, f.coords, d, n.coords)
		}
	}
	return nil
}
