package matrix_test

import (
	"testing"

	"github.com/katalvlaran/packmat/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMinMax_NoWrites verifies a pristine matrix reports its default as
// both extremes.
func TestMinMax_NoWrites(t *testing.T) {
	m, err := matrix.New(10, 10, matrix.WithDefault(7))
	require.NoError(t, err)

	assert.Equal(t, 7, matrix.Min(m))
	assert.Equal(t, 7, matrix.Max(m))
}

// TestMinMax_MixedWrites verifies extremes across written cells and the
// default-valued tail.
func TestMinMax_MixedWrites(t *testing.T) {
	m, err := matrix.New(2, 3, matrix.WithDefault(5))
	require.NoError(t, err)
	m, err = m.Set(matrix.Position{Row: 0, Col: 1}, -2)
	require.NoError(t, err)
	m, err = m.Set(matrix.Position{Row: 1, Col: 0}, 11)
	require.NoError(t, err)

	assert.Equal(t, -2, matrix.Min(m))
	assert.Equal(t, 11, matrix.Max(m))
}

// TestMinMax_FullyWritten verifies the extremes are realized cells even
// when the (never observable) default lies outside the written range.
func TestMinMax_FullyWritten(t *testing.T) {
	m, err := matrix.FromFlat([]int{4, 9, 6, 3}, 2, 2, matrix.WithDefault(0))
	require.NoError(t, err)
	require.Equal(t, m.Size(), m.SparseExtent())

	assert.Equal(t, 3, matrix.Min(m), "default 0 is not a cell here")
	assert.Equal(t, 9, matrix.Max(m))
	assert.Equal(t, matrix.Position{Row: 1, Col: 1}, matrix.ArgMin(m))
	assert.Equal(t, matrix.Position{Row: 0, Col: 1}, matrix.ArgMax(m))
}

// TestArgMinMax_FirstOccurrenceTieBreak verifies ties keep the earliest
// candidate.
func TestArgMinMax_FirstOccurrenceTieBreak(t *testing.T) {
	m, err := matrix.FromFlat([]int{3, 1, 1, 3}, 2, 2, matrix.WithDefault(9))
	require.NoError(t, err)

	assert.Equal(t, matrix.Position{Row: 0, Col: 1}, matrix.ArgMin(m), "first 1 wins")
	assert.Equal(t, matrix.Position{Row: 0, Col: 0}, matrix.ArgMax(m), "first 3 wins")
}

// TestArgMin_DefaultWins verifies that when the default value is the
// strict minimum, the reported position is the first guaranteed-default
// cell.
func TestArgMin_DefaultWins(t *testing.T) {
	m, err := matrix.New(2, 3, matrix.WithDefault(0))
	require.NoError(t, err)
	m, err = m.Set(matrix.Position{Row: 0, Col: 0}, 4)
	require.NoError(t, err)
	m, err = m.Set(matrix.Position{Row: 0, Col: 1}, 2)
	require.NoError(t, err)
	require.Equal(t, 2, m.SparseExtent())

	assert.Equal(t, 0, matrix.Min(m))
	assert.Equal(t, matrix.Position{Row: 0, Col: 2}, matrix.ArgMin(m),
		"first cell at the watermark")
}

// TestMember covers the fast path, explicit matches and misses.
func TestMember(t *testing.T) {
	m, err := matrix.New(3, 3, matrix.WithDefault(7))
	require.NoError(t, err)
	m, err = m.Set(matrix.Position{Row: 0, Col: 1}, 4)
	require.NoError(t, err)

	assert.True(t, matrix.Member(m, 7), "default with unwritten tail: O(1) true")
	assert.True(t, matrix.Member(m, 4))
	assert.False(t, matrix.Member(m, 5))

	// Fully written: no fast path, every cell scanned.
	full, err := matrix.FromFlat([]int{1, 2, 3, 4}, 2, 2, matrix.WithDefault(9))
	require.NoError(t, err)
	assert.False(t, matrix.Member(full, 9), "default absent once all cells are explicit")
	assert.True(t, matrix.Member(full, 4))
}

// TestFind covers lowest-index-wins, the bounded default scan and the
// NotFound result.
func TestFind(t *testing.T) {
	m, err := matrix.New(2, 3, matrix.WithDefault(0))
	require.NoError(t, err)
	m, err = m.Set(matrix.Position{Row: 0, Col: 0}, 6)
	require.NoError(t, err)
	m, err = m.Set(matrix.Position{Row: 0, Col: 2}, 6)
	require.NoError(t, err)

	// Explicit value: first of the two sixes.
	p, err := matrix.Find(m, 6)
	require.NoError(t, err)
	assert.Equal(t, matrix.Position{Row: 0, Col: 0}, p)

	// Default: index 1 was never written, and it sits below the extent.
	p, err = matrix.Find(m, 0)
	require.NoError(t, err)
	assert.Equal(t, matrix.Position{Row: 0, Col: 1}, p)

	// Miss.
	_, err = matrix.Find(m, 404)
	assert.ErrorIs(t, err, matrix.ErrNotFound)
}

// TestFind_DefaultBeyondExtent verifies the watermark cell answers when
// nothing below it matches.
func TestFind_DefaultBeyondExtent(t *testing.T) {
	m, err := matrix.New(2, 2, matrix.WithDefault(3))
	require.NoError(t, err)
	m, err = m.Set(matrix.Position{Row: 0, Col: 0}, 8)
	require.NoError(t, err)
	m, err = m.Set(matrix.Position{Row: 0, Col: 1}, 9)
	require.NoError(t, err)
	require.Equal(t, 2, m.SparseExtent())

	p, err := matrix.Find(m, 3)
	require.NoError(t, err)
	assert.Equal(t, matrix.Position{Row: 1, Col: 0}, p, "first guaranteed-default cell")
}

// TestSum_MatchesDenseFold checks the elided-tail correction against a
// plain dense fold.
func TestSum_MatchesDenseFold(t *testing.T) {
	cases := []struct {
		name string
		m    func(t *testing.T) *matrix.Matrix[int]
	}{
		{"Pristine", func(t *testing.T) *matrix.Matrix[int] {
			m, err := matrix.New(4, 4, matrix.WithDefault(3))
			require.NoError(t, err)
			return m
		}},
		{"PartiallyWritten", func(t *testing.T) *matrix.Matrix[int] {
			m, err := matrix.New(3, 5, matrix.WithDefault(-1))
			require.NoError(t, err)
			m, err = m.Set(matrix.Position{Row: 1, Col: 2}, 40)
			require.NoError(t, err)
			return m
		}},
		{"FullyWritten", func(t *testing.T) *matrix.Matrix[int] {
			m, err := matrix.FromFlat([]int{1, 2, 3, 4, 5, 6}, 2, 3)
			require.NoError(t, err)
			return m
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := tc.m(t)
			dense := matrix.FoldLeft(m, 0, func(_, v, acc int) int { return acc + v })
			assert.Equal(t, dense, matrix.Sum(m))
		})
	}
}

// TestSum_Float verifies the generic arithmetic over float64 cells.
func TestSum_Float(t *testing.T) {
	m, err := matrix.New(2, 2, matrix.WithDefault(0.5))
	require.NoError(t, err)
	m, err = m.Set(matrix.Position{Row: 0, Col: 0}, 1.25)
	require.NoError(t, err)

	assert.InDelta(t, 1.25+3*0.5, matrix.Sum(m), 1e-12)
}

// TestTrace verifies Sum over the main diagonal and the non-square
// failure mode.
func TestTrace(t *testing.T) {
	id, err := matrix.Identity[int](4)
	require.NoError(t, err)
	tr, err := matrix.Trace(id)
	require.NoError(t, err)
	assert.Equal(t, 4, tr)

	wide, err := matrix.New[int](2, 3)
	require.NoError(t, err)
	_, err = matrix.Trace(wide)
	assert.ErrorIs(t, err, matrix.ErrPositionOutOfBounds, "rows < cols cannot read (2,2)")
}
