package board_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/superhex/board"
	"github.com/katalvlaran/superhex/hex"
)

// BuildSuite checks the board invariants over a range of radii.
type BuildSuite struct {
	suite.Suite
	boards map[int]*board.Board
}

const maxTestRadius = 7

func (s *BuildSuite) SetupSuite() {
	s.boards = make(map[int]*board.Board, maxTestRadius)
	for r := 1; r <= maxTestRadius; r++ {
		b, err := board.New(r)
		s.Require().NoError(err, "radius %d", r)
		s.boards[r] = b
	}
}

// eachBoard runs fn as a subtest for every prepared radius.
func (s *BuildSuite) eachBoard(fn func(r int, b *board.Board)) {
	for r := 1; r <= maxTestRadius; r++ {
		b := s.boards[r]
		s.Run(fmt.Sprintf("R%d", r), func() { fn(r, b) })
	}
}

// TestFieldCount verifies 3R²+3R+1 fields.
func (s *BuildSuite) TestFieldCount() {
	s.eachBoard(func(r int, b *board.Board) {
		s.Equal(3*r*r+3*r+1, b.Len())
		s.Len(b.Fields(), b.Len())
		s.Equal(r, b.Radius())
	})
}

// TestCoordinatesUniqueAndInside verifies the hexagon shape.
func (s *BuildSuite) TestCoordinatesUniqueAndInside() {
	s.eachBoard(func(r int, b *board.Board) {
		seen := make(map[hex.Axial]bool, b.Len())
		for _, f := range b.Fields() {
			c := f.Coords()
			s.False(seen[c], "duplicate %s", c)
			seen[c] = true
			s.LessOrEqual(abs(c.Q), r)
			s.LessOrEqual(abs(c.R), r)
			s.LessOrEqual(abs(c.Q+c.R), r)
		}
	})
}

// TestConcentricValues verifies value = R+1-distance.
func (s *BuildSuite) TestConcentricValues() {
	s.eachBoard(func(r int, b *board.Board) {
		s.Equal(r+1, b.Center().Value())
		s.Equal(hex.Origin, b.Center().Coords())
		for _, f := range b.Fields() {
			s.Equal(r+1-f.Coords().Distance(), f.Value(), "field %s", f)
		}
	})
}

// TestNeighborSymmetry verifies every link is mirrored in the opposite direction.
func (s *BuildSuite) TestNeighborSymmetry() {
	s.eachBoard(func(r int, b *board.Board) {
		for _, f := range b.Fields() {
			for _, d := range hex.Directions() {
				n, err := f.Neighbor(d)
				s.Require().NoError(err)
				if n == nil {
					continue
				}
				s.Equal(f.Coords().Neighbor(d), n.Coords())
				back, err := n.Neighbor(d.Inverse())
				s.Require().NoError(err)
				s.Same(f, back, "%s %s not mirrored", f, d)
			}
		}
	})
}

// TestBoundaryCompleteness verifies only rim fields have absent links,
// and a link is absent exactly where the step leaves the hexagon.
func (s *BuildSuite) TestBoundaryCompleteness() {
	s.eachBoard(func(r int, b *board.Board) {
		for _, f := range b.Fields() {
			s.Equal(f.Coords().Distance() == r, f.IsBoundary(), "field %s", f)
			for _, d := range hex.Directions() {
				n, _ := f.Neighbor(d)
				s.Equal(f.Coords().Neighbor(d).Within(r), n != nil, "field %s dir %s", f, d)
			}
		}
	})
}

// TestFieldAt verifies lookups inside and outside the hexagon.
func (s *BuildSuite) TestFieldAt() {
	s.eachBoard(func(r int, b *board.Board) {
		for q := -r - 1; q <= r+1; q++ {
			for rr := -r - 1; rr <= r+1; rr++ {
				c := hex.Axial{Q: q, R: rr}
				f := b.FieldAt(c)
				if c.Within(r) {
					s.Require().NotNil(f, "missing %s", c)
					s.Equal(c, f.Coords())
				} else {
					s.Nil(f, "unexpected %s", c)
				}
			}
		}
	})
}

// TestRings verifies ring sizes and that rings partition the board.
func (s *BuildSuite) TestRings() {
	s.eachBoard(func(r int, b *board.Board) {
		total := 0
		for d := 0; d <= r; d++ {
			ring := b.Ring(d)
			want := 6 * d
			if d == 0 {
				want = 1
			}
			s.Len(ring, want, "ring %d", d)
			total += len(ring)
		}
		s.Equal(b.Len(), total)
		s.Nil(b.Ring(-1))
		s.Nil(b.Ring(r + 1))
	})
}

// TestValidate verifies every built board passes the full invariant check.
func (s *BuildSuite) TestValidate() {
	s.eachBoard(func(r int, b *board.Board) {
		s.NoError(b.Validate())
	})
}

// TestFieldsIsCopy verifies the returned slice does not alias the board.
func (s *BuildSuite) TestFieldsIsCopy() {
	b := s.boards[2]
	fields := b.Fields()
	fields[0] = nil
	s.NotNil(b.Fields()[0])
	s.Same(b.Center(), b.Fields()[0])
}

func TestBuildSuite(t *testing.T) {
	suite.Run(t, new(BuildSuite))
}

// TestNew_InvalidRadius verifies radius < 1 is rejected.
func TestNew_InvalidRadius(t *testing.T) {
	for _, r := range []int{0, -1, -10} {
		t.Run(fmt.Sprint(r), func(t *testing.T) {
			b, err := board.New(r)
			require.ErrorIs(t, err, board.ErrInvalidRadius)
			require.Nil(t, b)
		})
	}
}

// TestNew_RadiusOne checks the smallest board field by field.
func TestNew_RadiusOne(t *testing.T) {
	b, err := board.New(1, board.WithValidation())
	require.NoError(t, err)
	require.Equal(t, 7, b.Len())

	center := b.Center()
	require.Equal(t, 2, center.Value())
	require.Equal(t, hex.NumDirections, center.Degree())

	for _, d := range hex.Directions() {
		rim, err := center.Neighbor(d)
		require.NoError(t, err)
		require.NotNil(t, rim)
		require.Equal(t, 1, rim.Value())

		toCenter, _ := rim.Neighbor(d.Inverse())
		require.Same(t, center, toCenter)
		away, _ := rim.Neighbor(d)
		require.Nil(t, away, "rim %s must have no neighbor away from the center", rim)
		// Two rim siblings plus the center.
		require.Equal(t, 3, rim.Degree())
	}
}

func TestFieldCount(t *testing.T) {
	require.Equal(t, 0, board.FieldCount(-1))
	require.Equal(t, 1, board.FieldCount(0))
	require.Equal(t, 7, board.FieldCount(1))
	require.Equal(t, 19, board.FieldCount(2))
	require.Equal(t, 37, board.FieldCount(3))
}

// TestNew_Deterministic verifies two builds produce the same field order.
func TestNew_Deterministic(t *testing.T) {
	a, err := board.New(4)
	require.NoError(t, err)
	b, err := board.New(4)
	require.NoError(t, err)
	fa, fb := a.Fields(), b.Fields()
	require.Len(t, fb, len(fa))
	for i := range fa {
		require.Equal(t, fa[i].Coords(), fb[i].Coords())
		require.NotSame(t, fa[i], fb[i], "boards must not share fields")
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
