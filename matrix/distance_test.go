package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valvenet/matrix"
)

// TestNewDistance_Shape covers construction, defaults and bounds checks.
func TestNewDistance_Shape(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewDistance(-1)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	empty, err := matrix.NewDistance(0)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Order())
	require.NoError(t, matrix.Validate(empty))

	d, err := matrix.NewDistance(3)
	require.NoError(t, err)
	require.Equal(t, 3, d.Order())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := d.At(i, j)
			require.NoError(t, err)
			if i == j {
				require.Equal(t, 0, v)
			} else {
				require.Equal(t, matrix.Unreachable, v)
			}
		}
	}

	_, err = d.At(3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = d.At(0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, d.Set(0, 5, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, d.Set(0, 1, -2), matrix.ErrNegativeDistance)
}

// TestDistance_CloneIsDeep ensures Clone detaches the backing slice.
func TestDistance_CloneIsDeep(t *testing.T) {
	t.Parallel()

	d, _ := matrix.NewDistance(2)
	require.NoError(t, d.Set(0, 1, 4))

	c := d.Clone()
	require.NoError(t, c.Set(0, 1, 7))

	v, _ := d.At(0, 1)
	require.Equal(t, 4, v)
	require.Equal(t, 7, c.Hops(0, 1))
}

// TestDistance_String renders the sentinel as ∞.
func TestDistance_String(t *testing.T) {
	t.Parallel()

	d, _ := matrix.NewDistance(2)
	require.Equal(t, "[0, ∞]\n[∞, 0]\n", d.String())
}

// TestValidators_DetectViolations hand-crafts a broken table per invariant.
func TestValidators_DetectViolations(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.Validate(nil), matrix.ErrNilMatrix)

	diag, _ := matrix.NewDistance(2)
	require.NoError(t, diag.Set(1, 1, 3))
	require.ErrorIs(t, matrix.Validate(diag), matrix.ErrNonZeroDiagonal)

	asym, _ := matrix.NewDistance(2)
	require.NoError(t, asym.Set(0, 1, 1))
	require.ErrorIs(t, matrix.Validate(asym), matrix.ErrAsymmetry)

	// 0–1 = 1, 1–2 = 1, but 0–2 = 5.
	tri, _ := matrix.NewDistance(3)
	for _, c := range [][3]int{{0, 1, 1}, {1, 0, 1}, {1, 2, 1}, {2, 1, 1}, {0, 2, 5}, {2, 0, 5}} {
		require.NoError(t, tri.Set(c[0], c[1], c[2]))
	}
	require.ErrorIs(t, matrix.Validate(tri), matrix.ErrTriangle)
}
