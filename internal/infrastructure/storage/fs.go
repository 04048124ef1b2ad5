// Package storage persists puzzles to the filesystem, one JSON file per
// puzzle under <dir>/<difficulty>/<uuid>.json, so a saved puzzle's board
// is byte-compatible with the CLI's own file input (the board field
// carries puzzle-file text, not a raw array).
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/sudokuengine/core/internal/domain"
)

type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func (s *FS) pathFor(id string, d domain.Difficulty) string {
	return filepath.Join(s.dir, d.String(), strings.TrimSpace(id)+".json")
}

func (s *FS) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil {
		return errors.New("storage: nil puzzle")
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	target := s.pathFor(p.ID, p.Difficulty)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

var difficulties = [...]domain.Difficulty{domain.Easy, domain.Medium, domain.Hard, domain.Expert}

func (s *FS) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	id = strings.TrimSpace(id)
	for _, d := range difficulties {
		path := s.pathFor(id, d)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		var out domain.Puzzle
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, err
		}
		return &out, nil
	}
	return nil, os.ErrNotExist
}

func (s *FS) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	var out []domain.PuzzleMeta
	for _, d := range difficulties {
		dirPath := filepath.Join(s.dir, d.String())
		ents, err := os.ReadDir(dirPath)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(dirPath, e.Name()))
			if err != nil {
				continue
			}
			var p domain.Puzzle
			if err := json.Unmarshal(data, &p); err != nil || p.ID == "" {
				continue
			}
			out = append(out, domain.PuzzleMeta{
				ID:         p.ID,
				Name:       p.Name,
				Difficulty: d,
				CreatedAt:  p.CreatedAt,
			})
		}
	}
	return out, nil
}
