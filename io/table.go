/*package io reads and writes the plain-text tables and configuration files
used by the command line tool.
*/
package io

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/numerics/geom"
	"github.com/phil-mansfield/numerics/math/roots"
)

var (
	ErrColumns = errors.New("io: inconsistent table columns")
	ErrEmpty   = errors.New("io: table has no rows")
)

// readColumns reads the requested columns of file in the requested order.
// table.ReadTable is always given sorted, distinct indices.
func readColumns(file string, colIdxs []int) ([][]float64, error) {
	sorted := make([]int, len(colIdxs))
	copy(sorted, colIdxs)
	sort.Ints(sorted)
	unique := sorted[:0]
	for _, c := range sorted {
		if len(unique) == 0 || c != unique[len(unique)-1] {
			unique = append(unique, c)
		}
	}

	cols, err := table.ReadTable(file, unique, nil)
	if err != nil {
		return nil, fmt.Errorf("io: reading %s: %w", file, err)
	} else if len(cols) != len(unique) {
		return nil, fmt.Errorf("%w: read %d columns from %s, expected %d",
			ErrColumns, len(cols), file, len(unique))
	} else if len(cols[0]) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, file)
	}

	out := make([][]float64, len(colIdxs))
	for i, c := range colIdxs {
		out[i] = cols[sort.SearchInts(unique, c)]
	}
	return out, nil
}

// ReadSamples reads the x and y columns of a sample table.
func ReadSamples(file string, xCol, yCol int) (xs, ys []float64, err error) {
	cols, err := readColumns(file, []int{xCol, yCol})
	if err != nil {
		return nil, nil, err
	}
	return cols[0], cols[1], nil
}

// ReadComplexSamples reads a sample table whose y values are split into real
// and imaginary columns.
func ReadComplexSamples(
	file string, xCol, reCol, imCol int,
) (xs []float64, ys []complex128, err error) {
	cols, err := readColumns(file, []int{xCol, reCol, imCol})
	if err != nil {
		return nil, nil, err
	}
	xs, re, im := cols[0], cols[1], cols[2]
	ys = make([]complex128, len(xs))
	for i := range ys {
		ys[i] = complex(re[i], im[i])
	}
	return xs, ys, nil
}

// ReadCoefficients reads one polynomial of the given degree per row. The
// first column is the coefficient of the highest power.
func ReadCoefficients(file string, degree int) ([]roots.Polynomial, error) {
	colIdxs := make([]int, degree+1)
	for i := range colIdxs {
		colIdxs[i] = i
	}
	cols, err := readColumns(file, colIdxs)
	if err != nil {
		return nil, err
	}

	polys := make([]roots.Polynomial, len(cols[0]))
	for i := range polys {
		polys[i] = make(roots.Polynomial, degree+1)
		for j := range colIdxs {
			polys[i][j] = cols[j][i]
		}
	}
	return polys, nil
}

// ReadPath reads the parameter column and three coordinate columns of a
// path table.
func ReadPath(
	file string, tCol int, posCols [3]int,
) (ts []float64, pts []geom.Vec, err error) {
	cols, err := readColumns(
		file, []int{tCol, posCols[0], posCols[1], posCols[2]},
	)
	if err != nil {
		return nil, nil, err
	}
	return cols[0], toVecs(cols[1], cols[2], cols[3]), nil
}

// ReadVecs reads three columns of a table as vectors.
func ReadVecs(file string, cols [3]int) ([]geom.Vec, error) {
	vals, err := readColumns(file, cols[:])
	if err != nil {
		return nil, err
	}
	return toVecs(vals[0], vals[1], vals[2]), nil
}

func toVecs(xs, ys, zs []float64) []geom.Vec {
	vs := make([]geom.Vec, len(xs))
	for i := range vs {
		vs[i] = geom.Vec{xs[i], ys[i], zs[i]}
	}
	return vs
}

// WriteTable writes the given columns as a whitespace-separated table. Lines
// in header are written first, each prefixed by '#'.
func WriteTable(w io.Writer, header []string, cols ...[]float64) error {
	if len(cols) == 0 {
		return fmt.Errorf("%w: no columns given", ErrColumns)
	}
	for i := range cols {
		if len(cols[i]) != len(cols[0]) {
			return fmt.Errorf("%w: column %d has length %d, column 0 has "+
				"length %d", ErrColumns, i, len(cols[i]), len(cols[0]))
		}
	}

	bw := bufio.NewWriter(w)
	for _, line := range header {
		fmt.Fprintf(bw, "# %s\n", line)
	}
	vals := make([]string, len(cols))
	for i := range cols[0] {
		for j := range cols {
			vals[j] = fmt.Sprintf("%.12g", cols[j][i])
		}
		fmt.Fprintln(bw, strings.Join(vals, " "))
	}
	return bw.Flush()
}

// WriteVecs writes a parameter column followed by one group of three columns
// per vector slice.
func WriteVecs(
	w io.Writer, header []string, ts []float64, vecs ...[]geom.Vec,
) error {
	cols := [][]float64{ts}
	for _, vs := range vecs {
		xs, ys, zs := geom.Components(vs)
		cols = append(cols, xs, ys, zs)
	}
	return WriteTable(w, header, cols...)
}

// WriteRoots writes a comment line describing p followed by one line per
// root holding its real part, imaginary part, and multiplicity. Polynomials
// which could not be solved are written with err as the comment and no roots.
func WriteRoots(w io.Writer, p roots.Polynomial, rs roots.Roots, err error) error {
	if err != nil {
		_, werr := fmt.Fprintf(w, "# %v: %v\n", []float64(p), err)
		return werr
	}

	_, werr := fmt.Fprintf(w, "# %v: %d roots\n", []float64(p), rs.Count())
	if werr != nil {
		return werr
	}
	for _, r := range rs {
		_, werr = fmt.Fprintf(w, "%.12g %.12g %d\n",
			real(r.Value), imag(r.Value), r.Multiplicity)
		if werr != nil {
			return werr
		}
	}
	return nil
}
