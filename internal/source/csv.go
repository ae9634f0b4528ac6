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

// CSVFile loads a tracker CSV export directly, converting it on every load.
type CSVFile struct {
	path string
}

func NewCSVFile(path string) *CSVFile {
	return &CSVFile{path: path}
}

func (s *CSVFile) Name() string { return s.path }

func (s *CSVFile) Load(ctx context.Context) (*domain.Portfolio, error) {
	if err := checkCtx(ctx, s.path); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, loadErr(CodeNotFound, s.path, err)
		}
		return nil, loadErr(CodeReadFailed, s.path, err)
	}
	defer f.Close()

	doc, err := importer.FromCSV(f)
	if err != nil {
		return nil, loadErr(CodeMalformed, s.path, err)
	}
	pf := importer.Adapt(doc)
	pf.Source = s.path
	pf.Warnings = importer.Warnings(importer.ValidateDocument(doc))
	return &pf, nil
}

func (s *CSVFile) WatchRoots() []string { return []string{filepath.Dir(s.path)} }

func (s *CSVFile) Matches(path string) bool { return sameFile(path, s.path) }
