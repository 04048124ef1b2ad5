// Package solver provides two ports.Solver implementations: an exact
// exact-cover solver (dancing links, this file) used as a fast
// uniqueness oracle during generation, and a deduce+search solver
// (deduce.go) that explains its work as a step transcript.
package solver

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sudokuengine/core/internal/format"
	"github.com/sudokuengine/core/internal/grid"
	"github.com/sudokuengine/core/internal/ports"
	"github.com/sudokuengine/core/internal/puzzle"
)

// DLXSolver implements Algorithm X / Dancing Links for an arbitrary
// BlockHeight x BlockWidth board. Exact-cover mapping over N=g.Size():
// 4*N*N columns (constraints), N*N*N rows (r,c,v candidates).
// Columns: 0..N*N-1        -> cell (r,c) filled
//
//	N*N..2*N*N-1     -> row r has value v
//	2*N*N..3*N*N-1   -> column c has value v
//	3*N*N..4*N*N-1   -> block b has value v
type DLXSolver struct{}

func NewDLXSolver() *DLXSolver { return &DLXSolver{} }

type node struct {
	left, right, up, down *node
	col                   *column
	rowIdx                int
}
type column struct {
	node
	size   int
	active bool
}

type dlx struct {
	n       int
	g       *grid.Grid
	cols    []*column
	rowHead []*node
	sol     []*node
	solLen  int
	nodes   int
	active  int
}

func newDLX(g *grid.Grid) *dlx {
	n := g.Size()
	nCells := n * n
	nCols := 4 * nCells
	nRows := nCells * n

	d := &dlx{n: n, g: g, cols: make([]*column, nCols), rowHead: make([]*node, nRows), sol: make([]*node, nRows)}
	for i := 0; i < nCols; i++ {
		c := &column{active: true}
		c.up = &c.node
		c.down = &c.node
		d.cols[i] = c
	}
	d.active = nCols

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			for v := 0; v < n; v++ {
				row := d.rowIndex(r, c, v)
				cols := d.rowColumns(r, c, v)
				var first, prev *node
				for _, colID := range cols {
					col := d.cols[colID]
					nd := &node{col: col, rowIdx: row}
					nd.down = &col.node
					nd.up = col.node.up
					col.node.up.down = nd
					col.node.up = nd
					col.size++
					if first == nil {
						first = nd
						nd.left, nd.right = nd, nd
					} else {
						nd.left = prev
						nd.right = prev.right
						prev.right.left = nd
						prev.right = nd
					}
					prev = nd
				}
				d.rowHead[row] = first
			}
		}
	}
	return d
}

func (d *dlx) rowIndex(r, c, v int) int { return (r*d.n+c)*d.n + v }

func (d *dlx) rowColumns(r, c, v int) [4]int {
	n := d.n
	cell := r*n + c
	rowN := n*n + r*n + v
	colN := 2*n*n + c*n + v
	box := d.g.BlockIndexOf(grid.Cell{Row: r, Col: c})
	boxN := 3*n*n + box*n + v
	return [4]int{cell, rowN, colN, boxN}
}

func cover(col *column, d *dlx) {
	if col.active {
		col.active = false
		d.active--
	}
	for i := col.down; i != &col.node; i = i.down {
		for j := i.right; j != i; j = j.right {
			j.down.up = j.up
			j.up.down = j.down
			j.col.size--
		}
	}
}
func uncover(col *column, d *dlx) {
	for i := col.up; i != &col.node; i = i.up {
		for j := i.left; j != i; j = j.left {
			j.col.size++
			j.down.up = j
			j.up.down = j
		}
	}
	if !col.active {
		col.active = true
		d.active++
	}
}

func chooseColumn(d *dlx) *column {
	var best *column
	for _, c := range d.cols {
		if c.active {
			if best == nil || c.size < best.size {
				best = c
				if best.size == 0 {
					break
				}
			}
		}
	}
	return best
}

func (d *dlx) search(ctx context.Context, k, wantCount int, found *int) bool {
	select {
	case <-ctx.Done():
		return true
	default:
	}
	if d.active == 0 {
		d.solLen = k
		*found++
		return *found >= wantCount
	}

	c := chooseColumn(d)
	if c == nil || c.size == 0 {
		return false
	}
	cover(c, d)
	for r := c.down; r != &c.node; r = r.down {
		d.nodes++
		d.sol[k] = r
		for j := r.right; j != r; j = j.right {
			if j.col.active {
				cover(j.col, d)
			}
		}
		if d.search(ctx, k+1, wantCount, found) {
			for j := r.left; j != r; j = j.left {
				uncover(j.col, d)
			}
			uncover(c, d)
			return true
		}
		for j := r.left; j != r; j = j.left {
			uncover(j.col, d)
		}
	}
	uncover(c, d)
	return false
}

func (d *dlx) applyGiven(r, c, v int) error {
	row := d.rowIndex(r, c, v)
	head := d.rowHead[row]
	if head == nil {
		return errors.New("solver: invalid given")
	}
	for j := head; ; j = j.right {
		cover(j.col, d)
		if j.right == head {
			break
		}
	}
	return nil
}

func (d *dlx) applyGivens(p *puzzle.Puzzle) error {
	g := d.g
	for c := range g.IterCells(nil, nil) {
		cs := p.Candidates(c)
		if cs.Size() != 1 {
			continue
		}
		v, _ := cs.Peek()
		if err := d.applyGiven(c.Row, c.Col, v); err != nil {
			return err
		}
	}
	return nil
}

// Solve returns the (unique, if any) completion of board as puzzle-file
// text, using the first solution dancing-links finds.
func (s *DLXSolver) Solve(ctx context.Context, g *grid.Grid, board, marks string) (string, ports.Stats, error) {
	start := time.Now()
	p, err := format.ParsePuzzle(strings.NewReader(board), g, marks)
	if err != nil {
		return "", ports.Stats{}, err
	}
	d := newDLX(g)
	if err := d.applyGivens(p); err != nil {
		return "", ports.Stats{}, err
	}
	found := 0
	_ = d.search(ctx, 0, 1, &found)
	if found < 1 {
		return "", ports.Stats{Nodes: d.nodes, Duration: time.Since(start)}, errors.New("solver: no solution")
	}

	out := puzzle.New(g)
	for c := range g.IterCells(nil, nil) {
		if cs := p.Candidates(c); cs.Size() == 1 {
			v, _ := cs.Peek()
			out.Acknowledge(c, v)
		}
	}
	for i := 0; i < d.solLen; i++ {
		r, c, v := d.decodeRow(d.sol[i].rowIdx)
		out.Acknowledge(grid.Cell{Row: r, Col: c}, v)
	}
	var sb strings.Builder
	if err := format.FormatPuzzle(&sb, out, marks); err != nil {
		return "", ports.Stats{}, err
	}
	return sb.String(), ports.Stats{Nodes: d.nodes, Duration: time.Since(start)}, nil
}

func (d *dlx) decodeRow(row int) (r, c, v int) {
	n := d.n
	cell := row / n
	v = row % n
	r = cell / n
	c = cell % n
	return
}

// Unique reports whether board has exactly one solution, stopping the
// search as soon as a second is found.
func (s *DLXSolver) Unique(ctx context.Context, g *grid.Grid, board, marks string) (bool, ports.Stats, error) {
	start := time.Now()
	p, err := format.ParsePuzzle(strings.NewReader(board), g, marks)
	if err != nil {
		return false, ports.Stats{}, err
	}
	d := newDLX(g)
	if err := d.applyGivens(p); err != nil {
		return false, ports.Stats{}, err
	}
	found := 0
	_ = d.search(ctx, 0, 2, &found)
	return found == 1, ports.Stats{Nodes: d.nodes, Duration: time.Since(start)}, nil
}
