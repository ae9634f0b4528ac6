package source

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/domain"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/importer"
)

// JSONFile loads a single dashboard JSON document.
type JSONFile struct {
	path string
}

func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

func (s *JSONFile) Name() string { return s.path }

func (s *JSONFile) Load(ctx context.Context) (*domain.Portfolio, error) {
	doc, err := readDocument(ctx, s.path)
	if err != nil {
		return nil, err
	}
	pf := importer.Adapt(doc)
	pf.Source = s.path
	pf.Warnings = importer.Warnings(importer.ValidateDocument(doc))
	return &pf, nil
}

func (s *JSONFile) WatchRoots() []string { return []string{filepath.Dir(s.path)} }

func (s *JSONFile) Matches(path string) bool { return sameFile(path, s.path) }

func readDocument(ctx context.Context, path string) (*importer.Document, error) {
	if err := checkCtx(ctx, path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, loadErr(CodeNotFound, path, err)
		}
		return nil, loadErr(CodeReadFailed, path, err)
	}
	doc, err := importer.ParseDocument(data)
	if err != nil {
		return nil, loadErr(CodeMalformed, path, err)
	}
	return doc, nil
}
