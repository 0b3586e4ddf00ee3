package matrix_test

import (
	"testing"

	"github.com/katalvlaran/packmat/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAdd verifies elementwise addition and the shape requirement.
func TestAdd(t *testing.T) {
	a, err := matrix.FromNested([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	b, err := matrix.FromNested([][]int{{10, 20}, {30, 40}})
	require.NoError(t, err)

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{11, 22}, {33, 44}}, sum.ToNested())

	wide, err := matrix.New[int](2, 3)
	require.NoError(t, err)
	_, err = matrix.Add(a, wide)
	assert.ErrorIs(t, err, matrix.ErrShapeMismatch)
}

// TestAdd_ReadsElidedCells verifies the right operand's unwritten default
// cells participate.
func TestAdd_ReadsElidedCells(t *testing.T) {
	a, err := matrix.FromNested([][]int{{1, 1}, {1, 1}})
	require.NoError(t, err)
	b, err := matrix.New(2, 2, matrix.WithDefault(5))
	require.NoError(t, err)

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{6, 6}, {6, 6}}, sum.ToNested())
}

// TestHadamard verifies the elementwise product.
func TestHadamard(t *testing.T) {
	a, err := matrix.FromNested([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	b, err := matrix.FromNested([][]int{{2, 2}, {10, 10}})
	require.NoError(t, err)

	p, err := matrix.Hadamard(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{2, 4}, {30, 40}}, p.ToNested())

	col, err := matrix.FromFlat([]int{1, 2}, 2, 1)
	require.NoError(t, err)
	_, err = matrix.Hadamard(a, col)
	assert.ErrorIs(t, err, matrix.ErrShapeMismatch)
}

// TestScale verifies scalar multiplication over every cell, defaults
// included.
func TestScale(t *testing.T) {
	m, err := matrix.New(2, 2, matrix.WithDefault(3))
	require.NoError(t, err)
	m, err = m.Set(matrix.Position{Row: 0, Col: 0}, 5)
	require.NoError(t, err)

	s := matrix.Scale(m, 2)
	assert.Equal(t, [][]int{{10, 6}, {6, 6}}, s.ToNested())
}

// TestDot verifies the naive product on a known 2×3 · 3×2 pair.
func TestDot(t *testing.T) {
	a, err := matrix.FromNested([][]int{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.NoError(t, err)
	b, err := matrix.FromNested([][]int{
		{7, 8},
		{9, 10},
		{11, 12},
	})
	require.NoError(t, err)

	p, err := matrix.Dot(a, b)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Rows())
	assert.Equal(t, 2, p.Cols())
	assert.Equal(t, [][]int{{58, 64}, {139, 154}}, p.ToNested())

	_, err = matrix.Dot(a, a)
	assert.ErrorIs(t, err, matrix.ErrShapeMismatch, "inner dimensions must agree")
}

// TestDot_Identity verifies I·m == m.
func TestDot_Identity(t *testing.T) {
	m, err := matrix.FromNested([][]int{{2, 3}, {4, 5}})
	require.NoError(t, err)
	id, err := matrix.Identity[int](2)
	require.NoError(t, err)

	p, err := matrix.Dot(id, m)
	require.NoError(t, err)
	assert.True(t, matrix.Equal(m, p))
}

// TestDot_SparseOperands verifies products over matrices with unwritten
// default cells.
func TestDot_SparseOperands(t *testing.T) {
	a, err := matrix.New(2, 3, matrix.WithDefault(1))
	require.NoError(t, err)
	b, err := matrix.New(3, 2, matrix.WithDefault(2))
	require.NoError(t, err)

	p, err := matrix.Dot(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{6, 6}, {6, 6}}, p.ToNested(), "1·2 summed over inner=3")
}
