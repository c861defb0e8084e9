// SPDX-License-Identifier: MIT

package board

import (
	"fmt"

	"github.com/katalvlaran/superhex/hex"
)

// Field is a single hex tile. Neighbor links are non-owning; the Board that
// built a field owns it and freezes it once construction finishes.
type Field struct {
	coords    hex.Axial
	value     int
	neighbors [hex.NumDirections]*Field
	frozen    bool
}

// FieldOption configures a Field in NewField. Invalid options are recorded
// and surfaced by NewField.
type FieldOption func(*fieldConfig)

type fieldConfig struct {
	coords    hex.Axial
	value     int
	neighbors map[hex.Direction]*Field
	err       error
}

// WithCoords sets the initial coordinates (default: the origin).
func WithCoords(c hex.Axial) FieldOption {
	return func(cfg *fieldConfig) { cfg.coords = c }
}

// WithValue sets the initial value (default: 0).
func WithValue(v int) FieldOption {
	return func(cfg *fieldConfig) { cfg.value = v }
}

// WithNeighbors sets a partial neighbor mapping. Directions not present stay
// absent; any key outside the six directions makes NewField fail with
// hex.ErrUnknownDirection.
func WithNeighbors(m map[hex.Direction]*Field) FieldOption {
	return func(cfg *fieldConfig) {
		if err := checkDirections(m); err != nil {
			if cfg.err == nil {
				cfg.err = err
			}
			return
		}
		cfg.neighbors = m
	}
}

// NewField creates a detached, mutable Field.
func NewField(opts ...FieldOption) (*Field, error) {
	var cfg fieldConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	f := &Field{coords: cfg.coords, value: cfg.value}
	for d, n := range cfg.neighbors {
		f.neighbors[d] = n
	}
	return f, nil
}

// Coords returns the axial coordinates of f.
func (f *Field) Coords() hex.Axial { return f.coords }

// SetCoords moves a detached field.
func (f *Field) SetCoords(c hex.Axial) error {
	if f.frozen {
		return ErrFrozenField
	}
	f.coords = c
	return nil
}

// Value returns the value of f.
func (f *Field) Value() int { return f.value }

// SetValue changes the value of a detached field.
func (f *Field) SetValue(v int) error {
	if f.frozen {
		return ErrFrozenField
	}
	f.value = v
	return nil
}

// Neighbor returns the field in direction d, or nil when there is none.
func (f *Field) Neighbor(d hex.Direction) (*Field, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", hex.ErrUnknownDirection, int(d))
	}
	return f.neighbors[d], nil
}

// SetNeighbor sets one neighbor link. Only the forward link is written;
// the caller is responsible for the back link.
func (f *Field) SetNeighbor(d hex.Direction, n *Field) error {
	if !d.Valid() {
		return fmt.Errorf("%w: %d", hex.ErrUnknownDirection, int(d))
	}
	if f.frozen {
		return ErrFrozenField
	}
	f.neighbors[d] = n
	return nil
}

// Neighbors returns a copy of all six links indexed by hex.Direction.
func (f *Field) Neighbors() [hex.NumDirections]*Field { return f.neighbors }

// SetNeighbors overwrites the links named in m and leaves the others alone.
// The whole mapping is validated before anything is written.
func (f *Field) SetNeighbors(m map[hex.Direction]*Field) error {
	if err := checkDirections(m); err != nil {
		return err
	}
	if f.frozen {
		return ErrFrozenField
	}
	for d, n := range m {
		f.neighbors[d] = n
	}
	return nil
}

// Degree returns the number of present neighbor links.
func (f *Field) Degree() int {
	n := 0
	for _, nb := range f.neighbors {
		if nb != nil {
			n++
		}
	}
	return n
}

// IsBoundary reports whether at least one neighbor link is absent.
func (f *Field) IsBoundary() bool { return f.Degree() < hex.NumDirections }

// String returns a short debug form, e.g. "<Coords: (0, 0), Value: 3>".
func (f *Field) String() string {
	return fmt.Sprintf("<Coords: %s, Value: %d>", f.coords, f.value)
}

func checkDirections(m map[hex.Direction]*Field) error {
	for d := range m {
		if !d.Valid() {
			return fmt.Errorf("%w: %d", hex.ErrUnknownDirection, int(d))
		}
	}
	return nil
}
