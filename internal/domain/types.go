// Package domain holds the wire-level shapes shared by the HTTP and
// storage layers: a board is carried as puzzle-file text (see the
// format package) plus the geometry needed to parse it, not a fixed
// array, so the same types describe a 4x4 or a 9x9 or a 16x16 puzzle.
package domain

// CellCoord identifies a cell on the board, 0-based.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board is a puzzle's geometry plus its puzzle-file text (spec.md §6
// line format): one line per row, blank lines between block bands.
type Board struct {
	BlockHeight int    `json:"blockHeight"`
	BlockWidth  int    `json:"blockWidth"`
	Marks       string `json:"marks,omitempty"`
	Lines       string `json:"lines"`
}

// Hint describes a single logical step for the API/CLI: the rule that
// fired, the cells it touched, and the rule level it was found at.
type Hint struct {
	Message   string      `json:"message,omitempty"`
	Cells     []CellCoord `json:"cells,omitempty"`
	RuleLevel int         `json:"ruleLevel,omitempty"`
}

// Puzzle is a persisted board with generation metadata.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Board      Board      `json:"board"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
	Name       string     `json:"name,omitempty"`
	Notes      string     `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry, omitting the board text.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  int64      `json:"createdAt"`
}
