package linalg_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/linsolve/linalg"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, linalg.Format(&buf, MustFrom(t, [][]float64{{1, 2}}), 2))
	require.Equal(t, "        1.00         2.00 \n\n", buf.String())

	buf.Reset()
	require.NoError(t, linalg.Format(&buf, MustFrom(t, [][]float64{{-7}, {3}}), 0))
	require.Equal(t, "        -7 \n         3 \n\n", buf.String())

	require.ErrorIs(t, linalg.Format(&buf, nil, 2), linalg.ErrNilMatrix)
}

func TestFormatVector(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, linalg.FormatVector(&buf, []float64{1.5, -2}, 1))
	require.Equal(t, "        1.5        -2.0 \n", buf.String())

	// negative precision selects the default of 5 digits
	buf.Reset()
	require.NoError(t, linalg.FormatVector(&buf, []float64{1}, -1))
	require.Equal(t, "        1.00000 \n", buf.String())
}
