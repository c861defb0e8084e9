// SPDX-License-Identifier: MIT

package board

import (
	"fmt"

	"github.com/katalvlaran/superhex/hex"
)

// builder holds the mutable state of one board under construction.
// fields is the deduplicated list in discovery order; index maps each
// coordinate to its position in fields.
type builder struct {
	radius int
	fields []*Field
	index  map[hex.Axial]int
}

// New builds a super-hex of the given radius with concentric values:
// the center holds radius+1 and the rim holds 1.
//
// Stages:
//  1. Place the center at the origin.
//  2. For each ring r in 1..radius, spawn a provisional field in every absent
//     direction of every known field, linked both ways to its spawner.
//  3. Merge the ring: new coordinates are adopted, duplicates fold their
//     links into the field already at that coordinate.
//  4. Stitch rim siblings, which no later ring can link.
//
// Returns ErrInvalidRadius for radius < 1 and ErrInconsistentBoard if the
// adjacency invariant is ever violated.
func New(radius int, opts ...Option) (*Board, error) {
	if radius < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRadius, radius)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := FieldCount(radius)
	b := &builder{
		radius: radius,
		fields: make([]*Field, 0, n),
		index:  make(map[hex.Axial]int, n),
	}
	b.adopt(&Field{coords: hex.Origin, value: radius + 1})

	for r := 1; r <= radius; r++ {
		if err := b.merge(b.spawnRing(r)); err != nil {
			return nil, fmt.Errorf("ring %d: %w", r, err)
		}
	}
	if err := b.stitchRim(); err != nil {
		return nil, err
	}

	for _, f := range b.fields {
		f.frozen = true
	}
	bd := &Board{radius: radius, fields: b.fields, index: b.index}
	if o.Validate {
		if err := bd.Validate(); err != nil {
			return nil, err
		}
	}
	return bd, nil
}

// FieldCount returns the number of fields of a super-hex with the given
// radius: 3R²+3R+1, or 0 for radius < 0.
func FieldCount(radius int) int {
	if radius < 0 {
		return 0
	}
	return 3*radius*radius + 3*radius + 1
}

// spawnRing creates the provisional fields of ring r. Fields of the same
// batch never see each other here; merge links them up.
func (b *builder) spawnRing(r int) []*Field {
	value := b.radius + 1 - r
	var batch []*Field
	for _, f := range b.fields {
		if !f.IsBoundary() {
			continue
		}
		for _, d := range hex.Directions() {
			if f.neighbors[d] != nil {
				continue
			}
			nf := &Field{coords: f.coords.Neighbor(d), value: value}
			nf.neighbors[d.Inverse()] = f
			f.neighbors[d] = nf
			batch = append(batch, nf)
		}
	}
	return batch
}

// merge folds a spawned batch into the deduplicated field list.
func (b *builder) merge(batch []*Field) error {
	for _, f := range batch {
		i, ok := b.index[f.coords]
		if !ok {
			b.adopt(f)
			continue
		}
		canon := b.fields[i]
		if canon.coords != f.coords || canon == f {
			return fmt.Errorf("%w: multiple fields at %s", ErrInconsistentBoard, f.coords)
		}
		if err := b.fold(canon, f); err != nil {
			return err
		}
	}
	return nil
}

// adopt appends f as the representative of its coordinate.
func (b *builder) adopt(f *Field) {
	b.index[f.coords] = len(b.fields)
	b.fields = append(b.fields, f)
}

// fold copies every link of dup that canon lacks and points dup's
// neighbors back at canon. A link that disagrees with the one canon already
// holds means two different fields claim the same coordinate.
func (b *builder) fold(canon, dup *Field) error {
	for _, d := range hex.Directions() {
		n := dup.neighbors[d]
		if n == nil {
			continue
		}
		switch cur := canon.neighbors[d]; {
		case cur == nil:
			canon.neighbors[d] = n
		case cur.coords != n.coords:
			return fmt.Errorf("%w: %s %s links %s and %s",
				ErrInconsistentBoard, canon.coords, d, cur.coords, n.coords)
		}
		if back := d.Inverse(); n.neighbors[back] == dup {
			n.neighbors[back] = canon
		}
	}
	return nil
}

// stitchRim links neighboring fields of the outermost ring to each other.
func (b *builder) stitchRim() error {
	for _, f := range b.fields {
		if f.coords.Distance() != b.radius {
			continue
		}
		for _, d := range hex.Directions() {
			if f.neighbors[d] != nil {
				continue
			}
			i, ok := b.index[f.coords.Neighbor(d)]
			if !ok {
				continue
			}
			n := b.fields[i]
			back := d.Inverse()
			if cur := n.neighbors[back]; cur != nil && cur != f {
				return fmt.Errorf("%w: %s %s already links %s",
					ErrInconsistentBoard, n.coords, back, cur.coords)
			}
			f.neighbors[d] = n
			n.neighbors[back] = f
		}
	}
	return nil
}
