package board

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/superhex/hex"
)

// TestFold_ConflictingLink verifies that two fields claiming the same
// neighbor slot with different coordinates abort the build.
func TestFold_ConflictingLink(t *testing.T) {
	b := &builder{radius: 1, index: map[hex.Axial]int{}}
	canon := &Field{coords: hex.Origin}
	b.adopt(canon)

	good := &Field{coords: hex.Axial{Q: 0, R: -1}}
	bad := &Field{coords: hex.Axial{Q: 5, R: 5}}
	canon.neighbors[hex.TopLeft] = good

	dup := &Field{coords: hex.Origin}
	dup.neighbors[hex.TopLeft] = bad

	err := b.merge([]*Field{dup})
	require.ErrorIs(t, err, ErrInconsistentBoard)
}

// TestFold_RedirectsBackLinks verifies that folding a duplicate copies its
// links and repoints the spawner at the surviving field.
func TestFold_RedirectsBackLinks(t *testing.T) {
	b := &builder{radius: 1, index: map[hex.Axial]int{}}
	canon := &Field{coords: hex.Axial{Q: 1, R: 0}}
	b.adopt(canon)

	spawner := &Field{coords: hex.Axial{Q: 1, R: -1}}
	dup := &Field{coords: canon.coords}
	dup.neighbors[hex.TopLeft] = spawner
	spawner.neighbors[hex.BottomRight] = dup

	require.NoError(t, b.merge([]*Field{dup}))
	require.Same(t, spawner, canon.neighbors[hex.TopLeft])
	require.Same(t, canon, spawner.neighbors[hex.BottomRight])
	require.Len(t, b.fields, 1)
}

// TestMerge_SameFieldTwice verifies a field cannot represent its own duplicate.
func TestMerge_SameFieldTwice(t *testing.T) {
	b := &builder{radius: 1, index: map[hex.Axial]int{}}
	f := &Field{coords: hex.Origin}
	b.adopt(f)
	require.ErrorIs(t, b.merge([]*Field{f}), ErrInconsistentBoard)
}

// TestStitchRim_Conflict verifies the rim pass refuses to overwrite a link.
func TestStitchRim_Conflict(t *testing.T) {
	b := &builder{radius: 1, index: map[hex.Axial]int{}}
	a := &Field{coords: hex.Axial{Q: 1, R: 0}}
	c := &Field{coords: hex.Axial{Q: 1, R: -1}}
	stray := &Field{coords: hex.Axial{Q: 3, R: 3}}
	b.adopt(a)
	b.adopt(c)
	c.neighbors[hex.BottomRight] = stray

	require.ErrorIs(t, b.stitchRim(), ErrInconsistentBoard)
}

// TestValidate_DetectsCorruption breaks a built board in several ways.
func TestValidate_DetectsCorruption(t *testing.T) {
	cases := []struct {
		name    string
		corrupt func(b *Board)
	}{
		{"MissingLink", func(b *Board) { b.fields[0].neighbors[hex.Right] = nil }},
		{"OneSidedLink", func(b *Board) {
			rim := b.FieldAt(hex.Axial{Q: 2, R: 0})
			rim.neighbors[hex.Left].neighbors[hex.Right] = nil
		}},
		{"WrongValue", func(b *Board) { b.fields[3].value = 99 }},
		{"WrongTarget", func(b *Board) { b.fields[0].neighbors[hex.Left] = b.fields[0] }},
		{"MissingField", func(b *Board) { b.fields = b.fields[:len(b.fields)-1] }},
		{"StaleIndex", func(b *Board) { b.index[hex.Axial{Q: 9, R: 9}] = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := New(2)
			require.NoError(t, err)
			require.NoError(t, b.Validate())
			tc.corrupt(b)
			require.ErrorIs(t, b.Validate(), ErrInconsistentBoard)
		})
	}
}
