// SPDX-License-Identifier: MIT

package linalg

import (
	"bufio"
	"io"
	"strconv"
)

// DefaultPrecision is the number of fractional digits used by Format when a
// negative precision is passed.
const DefaultPrecision = 5

// Format writes m row by row in fixed notation, each value right-aligned in a
// field of width 10+precision and followed by a space, then a blank line
// after the last row.
//
// Errors: ErrNilMatrix; any error from w.
func Format(w io.Writer, m Matrix, precision int) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opFormat, err)
	}
	d, err := toDense(m)
	if err != nil {
		return matrixErrorf(opFormat, err)
	}
	if precision < 0 {
		precision = DefaultPrecision
	}

	bw := bufio.NewWriter(w)
	for i := 0; i < d.r; i++ {
		writeRow(bw, d.data[i*d.c:(i+1)*d.c], precision)
	}
	bw.WriteByte('\n')

	return bw.Flush()
}

// FormatVector writes v on a single line using the same layout as Format.
func FormatVector(w io.Writer, v []float64, precision int) error {
	if precision < 0 {
		precision = DefaultPrecision
	}
	bw := bufio.NewWriter(w)
	writeRow(bw, v, precision)

	return bw.Flush()
}

// writeRow pads each value to width 10+precision; bufio defers the error to Flush.
func writeRow(bw *bufio.Writer, row []float64, precision int) {
	width := 10 + precision
	var s string
	for _, v := range row {
		s = strconv.FormatFloat(v, 'f', precision, 64)
		for pad := width - len(s); pad > 0; pad-- {
			bw.WriteByte(' ')
		}
		bw.WriteString(s)
		bw.WriteByte(' ')
	}
	bw.WriteByte('\n')
}
