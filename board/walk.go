// SPDX-License-Identifier: MIT

package board

import (
	"context"
	"fmt"

	"github.com/katalvlaran/superhex/hex"
)

// WalkOption configures Board.Walk.
type WalkOption func(*WalkOptions)

// WalkOptions holds parameters and callbacks for a breadth-first walk.
type WalkOptions struct {
	// Ctx allows cancellation.
	Ctx context.Context

	// OnVisit is called for each field in visit order. Returning an error
	// aborts the walk.
	OnVisit func(f *Field, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this many steps.
	MaxDepth int

	err error
}

// DefaultWalkOptions returns a background context, a no-op OnVisit and no depth limit.
func DefaultWalkOptions() WalkOptions {
	return WalkOptions{
		Ctx:     context.Background(),
		OnVisit: func(*Field, int) error { return nil },
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) WalkOption {
	return func(o *WalkOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a visit callback.
func WithOnVisit(fn func(f *Field, depth int) error) WalkOption {
	return func(o *WalkOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the walk to d steps from the start.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) WalkOption {
	return func(o *WalkOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WalkResult holds the outcome of a walk:
//   - Order: fields in visit sequence.
//   - Depth: steps from the start, per coordinate.
//   - Parent: predecessor in the walk tree, per coordinate.
type WalkResult struct {
	Order  []*Field
	Depth  map[hex.Axial]int
	Parent map[hex.Axial]hex.Axial
}

// PathTo reconstructs the coordinates from the start to dest.
func (r *WalkResult) PathTo(dest hex.Axial) ([]hex.Axial, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("board: no path to %s", dest)
	}
	path := []hex.Axial{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

type walkItem struct {
	field *Field
	depth int
}

// Walk runs a breadth-first traversal over neighbor links starting at start.
// Neighbors are expanded in hex.Directions() order, so the visit order is
// deterministic. From the center, Depth equals ring distance.
func (b *Board) Walk(start hex.Axial, opts ...WalkOption) (*WalkResult, error) {
	o := DefaultWalkOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	root := b.FieldAt(start)
	if root == nil {
		return nil, fmt.Errorf("%w: %s", ErrStartNotFound, start)
	}

	res := &WalkResult{
		Order:  make([]*Field, 0, len(b.fields)),
		Depth:  make(map[hex.Axial]int, len(b.fields)),
		Parent: make(map[hex.Axial]hex.Axial, len(b.fields)),
	}
	queue := []walkItem{{field: root}}
	res.Depth[start] = 0

	for len(queue) > 0 {
		select {
		case <-o.Ctx.Done():
			return res, o.Ctx.Err()
		default:
		}

		item := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, item.field)
		if err := o.OnVisit(item.field, item.depth); err != nil {
			return res, fmt.Errorf("board: OnVisit error at %s: %w", item.field.coords, err)
		}

		next := item.depth + 1
		if o.MaxDepth > 0 && next > o.MaxDepth {
			continue
		}
		for _, n := range item.field.neighbors {
			if n == nil {
				continue
			}
			if _, seen := res.Depth[n.coords]; seen {
				continue
			}
			res.Depth[n.coords] = next
			res.Parent[n.coords] = item.field.coords
			queue = append(queue, walkItem{field: n, depth: next})
		}
	}
	return res, nil
}
