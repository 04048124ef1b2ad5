// Package httpadapter exposes the usecase Service over HTTP. Every board
// in a request or response is carried as puzzle-file text (domain.Board),
// generalized over arbitrary geometry; /api/solve streams its step
// transcript as newline-delimited JSON instead of blocking for a single
// final answer.
package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/sudokuengine/core/internal/deducer"
	"github.com/sudokuengine/core/internal/domain"
	"github.com/sudokuengine/core/internal/evidence"
	"github.com/sudokuengine/core/internal/format"
	"github.com/sudokuengine/core/internal/grid"
	"github.com/sudokuengine/core/internal/puzzle"
	"github.com/sudokuengine/core/internal/searcher"
	"github.com/sudokuengine/core/internal/step"
	"github.com/sudokuengine/core/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/generate", h.handleGenerate)
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/validate", h.handleValidate)
	mux.HandleFunc("/api/hint", h.handleHint)
	mux.HandleFunc("/api/save", h.handleSave)
	mux.HandleFunc("/api/load", h.handleLoad)
	mux.HandleFunc("/api/list", h.handleList)
}

func boardGrid(b domain.Board) (*grid.Grid, error) {
	bh, bw := b.BlockHeight, b.BlockWidth
	if bh == 0 {
		bh = 3
	}
	if bw == 0 {
		bw = 3
	}
	return grid.New(bh, bw)
}

// ---- Generate ----

type generateReq struct {
	Difficulty  string `json:"difficulty,omitempty"`
	Seed        int64  `json:"seed,omitempty"`
	BlockHeight int    `json:"blockHeight,omitempty"`
	BlockWidth  int    `json:"blockWidth,omitempty"`
	Marks       string `json:"marks,omitempty"`
}

type generateResp struct {
	Board      domain.Board `json:"board,omitempty"`
	Seed       int64        `json:"seed,omitempty"`
	Difficulty string       `json:"difficulty,omitempty"`
	DurationMs int64        `json:"durationMs,omitempty"`
	Nodes      int          `json:"nodes,omitempty"`
	Error      string       `json:"error,omitempty"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req generateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err.Error() != "EOF" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(generateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	bh, bw := req.BlockHeight, req.BlockWidth
	if bh == 0 {
		bh = 3
	}
	if bw == 0 {
		bw = 3
	}
	g, err := grid.New(bh, bw)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(generateResp{Error: err.Error()})
		return
	}
	diff := domain.ParseDifficulty(strings.ToLower(strings.TrimSpace(req.Difficulty)))
	p, st, err := h.UC.Generate(r.Context(), seed, g, req.Marks, diff)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(generateResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(generateResp{
		Board:      p.Board,
		Seed:       seed,
		Difficulty: diff.String(),
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Validate ----

type validateReq struct {
	Board domain.Board `json:"board"`
}
type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
	Error     string             `json:"error,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req validateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	g, err := boardGrid(req.Board)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validateResp{Error: err.Error()})
		return
	}
	ok, conflicts, err := h.UC.Validate(r.Context(), g, req.Board.Lines, req.Board.Marks)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(validateResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Solve (ndjson step stream) ----

type solveReq struct {
	Board domain.Board `json:"board"`
}

// solvingStep is one line of the /api/solve ndjson stream.
type solvingStep struct {
	Rule    string `json:"rule,omitempty"`
	Level   int    `json:"level,omitempty"`
	Text    string `json:"text"`
	Paradox bool   `json:"paradox,omitempty"`
	Solved  bool   `json:"solved,omitempty"`
	Error   string `json:"error,omitempty"`
}

func ruleNameOf(ev evidence.Evidence) string {
	switch e := ev.(type) {
	case evidence.Naked:
		return "naked"
	case evidence.Hidden:
		return "hidden"
	case evidence.Linked:
		return "linked"
	case evidence.Guess:
		return "guess"
	case evidence.Paradox:
		return ruleNameOf(e.Cause)
	default:
		return "unknown"
	}
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
		return
	}
	g, err := boardGrid(req.Board)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}
	p, err := format.ParsePuzzle(strings.NewReader(req.Board.Lines), g, req.Board.Marks)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/x-ndjson")
	flusher, _ := w.(http.Flusher)
	enc := json.NewEncoder(w)

	write := func(s solvingStep) {
		_ = enc.Encode(s)
		if flusher != nil {
			flusher.Flush()
		}
	}

	emit := func(st step.Step) {
		var sb strings.Builder
		_ = format.FormatStep(&sb, st, g, req.Board.Marks)
		_, isParadox := st.Evidence.(evidence.Paradox)
		write(solvingStep{
			Rule:    ruleNameOf(st.Evidence),
			Level:   st.Evidence.Level(),
			Text:    sb.String(),
			Paradox: isParadox,
		})
	}

	ctx := r.Context()
	d := deducer.New(deducer.DefaultConfig())
	for st := range d.Deduce(ctx, p) {
		emit(st)
	}

	if !p.Solved() && !p.Paradoxical() {
		se := searcher.New(deducer.New(deducer.DefaultConfig()))
		var solutions []*puzzle.Puzzle
		for st := range se.Search(ctx, p, &solutions, 1) {
			emit(st)
		}
		if len(solutions) > 0 {
			p = solutions[0]
		}
	}

	write(solvingStep{Solved: p.Solved()})
}

// ---- Hint ----

type hintReq struct {
	Board     domain.Board `json:"board"`
	MaxNaked  int          `json:"maxNaked,omitempty"`
	MaxHidden int          `json:"maxHidden,omitempty"`
	MaxLinked int          `json:"maxLinked,omitempty"`
}
type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
	Error string      `json:"error,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req hintReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(hintResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	g, err := boardGrid(req.Board)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(hintResp{Error: err.Error()})
		return
	}
	cfg := deducer.DefaultConfig()
	if req.MaxNaked != 0 || req.MaxHidden != 0 || req.MaxLinked != 0 {
		cfg = deducer.Config{NakedMaxLevel: req.MaxNaked, HiddenMaxLevel: req.MaxHidden, LinkedMaxLevel: req.MaxLinked, LowerLevelFirst: true}
	}
	hh, ok, err := h.UC.Hint(r.Context(), g, req.Board.Lines, req.Board.Marks, cfg)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(hintResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(hintResp{Found: ok, Hint: hh})
}

// ---- Save / Load / List ----

type saveResp struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var p domain.Puzzle
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(saveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
	}
	if err := h.UC.Save(r.Context(), &p); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(saveResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(saveResp{ID: p.ID})
}

type loadReq struct {
	ID string `json:"id"`
}
type loadResp struct {
	Puzzle *domain.Puzzle `json:"puzzle,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req loadReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(loadResp{Error: "invalid JSON or missing id"})
		return
	}
	p, err := h.UC.Load(r.Context(), req.ID)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(loadResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(loadResp{Puzzle: p})
}

type listResp struct {
	Puzzles []domain.PuzzleMeta `json:"puzzles"`
	Error   string              `json:"error,omitempty"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	ps, err := h.UC.List(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(listResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(listResp{Puzzles: ps})
}
