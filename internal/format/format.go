// Package format implements the puzzle file and step transcript
// formats: the external, human- and round-trip-readable representation
// of a Puzzle and of the steps a Deducer/Searcher emits.
package format

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sudokuengine/core/internal/candidateset"
	"github.com/sudokuengine/core/internal/evidence"
	"github.com/sudokuengine/core/internal/grid"
	"github.com/sudokuengine/core/internal/puzzle"
	"github.com/sudokuengine/core/internal/step"
)

// DefaultMarks is the marker alphabet used when a caller supplies none:
// digits 1-9 then uppercase A-Z, covering N up to 35.
const DefaultMarks = "123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// InvalidInputError reports a malformed puzzle file: an unrecognised
// marker, a marks alphabet too short for the grid, a malformed `[...]`
// token, or a row/column count mismatch.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("format: invalid input: %s", e.Reason)
}

func markOf(marks string, v int) (byte, error) {
	if v < 0 || v >= len(marks) {
		return 0, &InvalidInputError{Reason: fmt.Sprintf("value %d has no marker in alphabet of length %d", v, len(marks))}
	}
	return marks[v], nil
}

func lookupMark(marks string, ch byte) (int, bool) {
	idx := strings.IndexByte(strings.ToUpper(marks), upperByte(ch))
	if idx < 0 {
		return 0, false
	}
	return idx, true
}

func upperByte(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

// ParsePuzzle reads a puzzle file over g using marks as the marker
// alphabet (DefaultMarks if empty). Blank lines are ignored; within
// each non-blank line, cell tokens are whitespace-free outside of a
// `[...]` bracket group, whose contents may optionally space-separate
// markers for readability.
func ParsePuzzle(r io.Reader, g *grid.Grid, marks string) (*puzzle.Puzzle, error) {
	if marks == "" {
		marks = DefaultMarks
	}
	n := g.Size()
	if len(marks) < n {
		return nil, &InvalidInputError{Reason: fmt.Sprintf("marks alphabet of length %d too short for N=%d", len(marks), n)}
	}

	p := puzzle.New(g)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	row := 0
	for scanner.Scan() {
		line := strings.Trim(scanner.Text(), " \r\n")
		if line == "" {
			continue
		}
		if row >= n {
			return nil, &InvalidInputError{Reason: fmt.Sprintf("too many non-blank rows, expected %d", n)}
		}

		tokens, err := tokenizeRow(line)
		if err != nil {
			return nil, err
		}
		if len(tokens) != n {
			return nil, &InvalidInputError{Reason: fmt.Sprintf("row %d has %d cells, expected %d", row+1, len(tokens), n)}
		}

		for col, tok := range tokens {
			cell := grid.Cell{Row: row, Col: col}
			if err := applyToken(p, cell, tok, marks, n); err != nil {
				return nil, err
			}
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if row != n {
		return nil, &InvalidInputError{Reason: fmt.Sprintf("found %d non-blank rows, expected %d", row, n)}
	}
	return p, nil
}

// tokenizeRow splits one puzzle-file row into its N cell tokens. Every
// marker is exactly one character (the alphabet tops out at 35: digits
// then A-Z), so outside of a bracket group each token is a single byte;
// inside `[...]` the contents may list markers space-separated for
// readability, but a parser never needs the separator to disambiguate.
func tokenizeRow(line string) ([]string, error) {
	var tokens []string
	i := 0
	for i < len(line) {
		switch line[i] {
		case ' ':
			i++
		case '[':
			end := strings.IndexByte(line[i:], ']')
			if end < 0 {
				return nil, &InvalidInputError{Reason: "unterminated '[' token"}
			}
			tokens = append(tokens, line[i:i+end+1])
			i += end + 1
		default:
			tokens = append(tokens, line[i:i+1])
			i++
		}
	}
	return tokens, nil
}

func applyToken(p *puzzle.Puzzle, cell grid.Cell, tok, marks string, n int) error {
	switch {
	case tok == "*":
		return nil // all candidates already held
	case strings.HasPrefix(tok, "[") && strings.HasSuffix(tok, "]"):
		inner := tok[1 : len(tok)-1]
		negate := strings.HasPrefix(inner, "^")
		if negate {
			inner = inner[1:]
		}
		values, err := parseValueList(inner, marks)
		if err != nil {
			return err
		}
		set := candidateset.Of(values...)
		if negate {
			full := candidateset.Full(n)
			full.Remove(set)
			set = full
		}
		p.Candidates(cell).Retain(set)
		return nil
	default:
		v, ok := lookupMark(marks, tok[0])
		if !ok {
			return &InvalidInputError{Reason: fmt.Sprintf("unrecognised marker %q", tok)}
		}
		p.Acknowledge(cell, v)
		return nil
	}
}

func parseValueList(inner, marks string) ([]int, error) {
	var fields []string
	if strings.Contains(inner, " ") {
		fields = strings.Fields(inner)
	} else {
		for i := 0; i < len(inner); i++ {
			fields = append(fields, inner[i:i+1])
		}
	}
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		v, ok := lookupMark(marks, f[0])
		if !ok {
			return nil, &InvalidInputError{Reason: fmt.Sprintf("unrecognised marker %q in bracket group", f)}
		}
		values = append(values, v)
	}
	return values, nil
}

// FormatPuzzle writes p in the puzzle file format, using marks as the
// marker alphabet (DefaultMarks if empty), with a blank line separating
// block bands.
func FormatPuzzle(w io.Writer, p *puzzle.Puzzle, marks string) error {
	if marks == "" {
		marks = DefaultMarks
	}
	g := p.Grid()
	n := g.Size()

	for r := 0; r < n; r++ {
		var parts []string
		for c := 0; c < n; c++ {
			cell := grid.Cell{Row: r, Col: c}
			tok, err := formatCell(p.Candidates(cell), marks, n)
			if err != nil {
				return err
			}
			parts = append(parts, tok)
		}
		if _, err := fmt.Fprintln(w, strings.Join(parts, "")); err != nil {
			return err
		}
		if (r+1)%g.BlockHeight() == 0 && r < n-1 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	return nil
}

func formatCell(cs *candidateset.Set, marks string, n int) (string, error) {
	if cs.Size() == 1 {
		v, _ := cs.Peek()
		m, err := markOf(marks, v)
		if err != nil {
			return "", err
		}
		return string(m), nil
	}
	if cs.Size() == n {
		return "*", nil
	}

	values := cs.Slice()
	complement := n - len(values)
	useNegate := complement < len(values)

	list := values
	if useNegate {
		full := candidateset.Full(n)
		full.Remove(*cs)
		list = full.Slice()
	}

	chars := make([]string, len(list))
	for i, v := range list {
		m, err := markOf(marks, v)
		if err != nil {
			return "", err
		}
		chars[i] = string(m)
	}
	prefix := ""
	if useNegate {
		prefix = "^"
	}
	return "[" + prefix + strings.Join(chars, "") + "]", nil
}

// FormatStep writes one step transcript entry: a `[rule@level] ...`
// header line describing the evidence, followed by one
// `=> cell rXcY remove <values>` line per mutation. Paradox steps
// prefix with `[paradox]` and never print mutation lines. g supplies
// the block geometry used to render block houses as `(blockRow,blockCol)`
// coordinates, matching the puzzle printer's own block numbering.
func FormatStep(w io.Writer, st step.Step, g *grid.Grid, marks string) error {
	if marks == "" {
		marks = DefaultMarks
	}
	ev := st.Evidence
	if pe, ok := ev.(evidence.Paradox); ok {
		if _, err := fmt.Fprintf(w, "[paradox] %s\n", describeEvidence(pe.Cause, g, marks)); err != nil {
			return err
		}
		return nil
	}

	header, err := headerFor(ev, g, marks)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	for _, mut := range st.Mutations {
		values := mut.Removed.Slice()
		marked := make([]string, len(values))
		for i, v := range values {
			m, err := markOf(marks, v)
			if err != nil {
				return err
			}
			marked[i] = string(m)
		}
		if _, err := fmt.Fprintf(w, "=> cell %s remove %s\n", mut.Cell, strings.Join(marked, ",")); err != nil {
			return err
		}
	}
	return nil
}

func ruleName(ev evidence.Evidence) string {
	switch ev.(type) {
	case evidence.Naked:
		return "naked"
	case evidence.Hidden:
		return "hidden"
	case evidence.Linked:
		return "linked"
	case evidence.Guess:
		return "guess"
	default:
		return "unknown"
	}
}

func headerFor(ev evidence.Evidence, g *grid.Grid, marks string) (string, error) {
	return fmt.Sprintf("[%s@%d] %s", ruleName(ev), ev.Level(), describeEvidence(ev, g, marks)), nil
}

func describeEvidence(ev evidence.Evidence, g *grid.Grid, marks string) string {
	switch e := ev.(type) {
	case evidence.Naked:
		return fmt.Sprintf("in %s, cells [%s] confine [%s]", houseText(e.House, g), cellsText(e.Cells), valuesText(e.Values, marks))
	case evidence.Hidden:
		return fmt.Sprintf("in %s, values [%s] confined to cells [%s]", houseText(e.House, g), valuesText(e.Values, marks), cellsText(e.Cells))
	case evidence.Linked:
		return fmt.Sprintf("value %q links %s %s to %s %s", markString(marks, e.Value), e.Kind, intsText(e.Indices), e.OrthKind, intsText(e.OrthIndices))
	case evidence.Guess:
		return fmt.Sprintf("cell %s = %q (from [%s])", e.Cell, markString(marks, e.Chosen), valuesText(e.Candidates, marks))
	case evidence.Paradox:
		return describeEvidence(e.Cause, g, marks)
	default:
		return ev.String()
	}
}

// houseText renders a house the way the puzzle printer does: row/column
// houses by 1-based index, block houses as a (blockRow,blockCol) pair
// so a reader can locate the block visually without counting.
func houseText(h grid.House, g *grid.Grid) string {
	if h.Kind != grid.Block {
		return h.String()
	}
	blocksPerRow := g.Size() / g.BlockWidth()
	blockRow := h.Index / blocksPerRow
	blockCol := h.Index % blocksPerRow
	return fmt.Sprintf("block (%d,%d)", blockRow+1, blockCol+1)
}

func markString(marks string, v int) string {
	m, err := markOf(marks, v)
	if err != nil {
		return "?"
	}
	return string(m)
}

func cellsText(cells []grid.Cell) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = c.String()
	}
	return strings.Join(parts, ",")
}

func valuesText(s candidateset.Set, marks string) string {
	values := s.Slice()
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = markString(marks, v)
	}
	return strings.Join(parts, ",")
}

func intsText(vs []int) string {
	sorted := append([]int(nil), vs...)
	sort.Ints(sorted)
	parts := make([]string, len(sorted))
	for i, v := range sorted {
		parts[i] = fmt.Sprintf("%d", v+1)
	}
	return strings.Join(parts, ",")
}
