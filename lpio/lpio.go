package lpio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/linprog/lp"
)

// ErrBadFormat indicates malformed problem text: missing lines, field
// count mismatches, or unparsable numbers.
var ErrBadFormat = errors.New("lpio: malformed problem input")

// maxDimension bounds the header counts so a hostile or corrupted
// header cannot trigger an oversized allocation.
const maxDimension = 1_000_000

// ReadProblem parses a general-form problem from r. The file format
// carries no objective direction, so the caller passes it explicitly.
func ReadProblem(r io.Reader, dir lp.Direction) (*lp.Problem, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	lineNo := 0

	header, err := nextLine(sc, &lineNo)
	if err != nil {
		return nil, err
	}
	if len(header) != 2 {
		return nil, fmt.Errorf("line %d: want \"n m\", got %d fields: %w", lineNo, len(header), ErrBadFormat)
	}
	n, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, fmt.Errorf("line %d: bad variable count %q: %w", lineNo, header[0], ErrBadFormat)
	}
	m, err := strconv.Atoi(header[1])
	if err != nil {
		return nil, fmt.Errorf("line %d: bad constraint count %q: %w", lineNo, header[1], ErrBadFormat)
	}
	if n < 1 || n > maxDimension {
		return nil, fmt.Errorf("line %d: variable count %d out of range [1, %d]: %w", lineNo, n, maxDimension, ErrBadFormat)
	}
	if m < 0 || m > maxDimension {
		return nil, fmt.Errorf("line %d: constraint count %d out of range [0, %d]: %w", lineNo, m, maxDimension, ErrBadFormat)
	}

	objFields, err := nextLine(sc, &lineNo)
	if err != nil {
		return nil, err
	}
	objective, err := parseFloats(objFields, lineNo)
	if err != nil {
		return nil, err
	}
	if len(objective) != n {
		return nil, fmt.Errorf("line %d: want %d objective coefficients, got %d: %w", lineNo, n, len(objective), ErrBadFormat)
	}

	a := make([][]float64, m)
	rhs := make([]float64, m)
	rels := make([]lp.Relation, m)
	for i := 0; i < m; i++ {
		fields, err := nextLine(sc, &lineNo)
		if err != nil {
			return nil, err
		}
		if len(fields) != n+2 {
			return nil, fmt.Errorf("line %d: want %d fields (coefficients, RHS, relation), got %d: %w", lineNo, n+2, len(fields), ErrBadFormat)
		}

		row, err := parseFloats(fields[:n+1], lineNo)
		if err != nil {
			return nil, err
		}
		a[i] = row[:n]
		rhs[i] = row[n]

		rels[i], err = lp.ParseRelation(fields[n+1])
		if err != nil {
			return nil, fmt.Errorf("line %d: relation %q: %w", lineNo, fields[n+1], err)
		}
	}

	return lp.NewProblem(objective, a, rhs, rels, dir)
}

// nextLine returns the fields of the next non-blank line.
func nextLine(sc *bufio.Scanner, lineNo *int) ([]string, error) {
	for sc.Scan() {
		*lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) > 0 {
			return fields, nil
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("lpio: read: %w", err)
	}

	return nil, fmt.Errorf("line %d: unexpected end of input: %w", *lineNo, ErrBadFormat)
}

// parseFloats parses every field as float64.
func parseFloats(fields []string, lineNo int) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad number %q: %w", lineNo, f, ErrBadFormat)
		}
		out[i] = v
	}

	return out, nil
}

// WriteSolution renders a solution: status tag, variable values (only
// when present), objective value.
func WriteSolution(w io.Writer, sol lp.Solution) error {
	if _, err := fmt.Fprintln(w, sol.Status); err != nil {
		return fmt.Errorf("lpio: write: %w", err)
	}
	if sol.Status != lp.Optimal {
		return nil
	}

	values := make([]string, len(sol.X))
	for j, x := range sol.X {
		values[j] = strconv.FormatFloat(x, 'g', -1, 64)
	}
	if _, err := fmt.Fprintln(w, strings.Join(values, " ")); err != nil {
		return fmt.Errorf("lpio: write: %w", err)
	}
	if _, err := fmt.Fprintln(w, strconv.FormatFloat(sol.Objective, 'g', -1, 64)); err != nil {
		return fmt.Errorf("lpio: write: %w", err)
	}

	return nil
}
