package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/domain"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/importer"
)

// Glob merges every JSON document matching a doublestar pattern into one
// snapshot. Projects are concatenated in path order; filter options are
// unioned in first-seen order.
type Glob struct {
	pattern string
}

func NewGlob(pattern string) *Glob {
	return &Glob{pattern: filepath.Clean(pattern)}
}

func (s *Glob) Name() string { return s.pattern }

// Files returns the sorted matches of the pattern.
func (s *Glob) Files() ([]string, error) {
	matches, err := doublestar.FilepathGlob(s.pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob error: %w", err)
	}
	slices.Sort(matches)
	return matches, nil
}

func (s *Glob) Load(ctx context.Context) (*domain.Portfolio, error) {
	files, err := s.Files()
	if err != nil {
		return nil, loadErr(CodeMalformed, s.pattern, err)
	}
	if len(files) == 0 {
		return nil, loadErr(CodeNotFound, s.pattern, fmt.Errorf("no files match pattern"))
	}

	merged := domain.Portfolio{Source: s.pattern}
	options := make([]domain.FilterOptions, 0, len(files))
	for _, path := range files {
		doc, err := readDocument(ctx, path)
		if err != nil {
			return nil, err
		}
		pf := importer.Adapt(doc)
		merged.Projects = append(merged.Projects, pf.Projects...)
		options = append(options, pf.Filters)
		for _, w := range importer.Warnings(importer.ValidateDocument(doc)) {
			merged.Warnings = append(merged.Warnings, path+": "+w)
		}
	}
	merged.Filters = importer.MergeFilterOptions(options...)
	return &merged, nil
}

// WatchRoots returns the static directory prefix of the pattern and every
// directory below it.
func (s *Glob) WatchRoots() []string {
	base, _ := doublestar.SplitPattern(filepath.ToSlash(s.pattern))
	root := filepath.FromSlash(base)
	dirs := []string{root}
	sub, err := doublestar.FilepathGlob(filepath.Join(root, "**"))
	if err != nil {
		return dirs
	}
	for _, d := range sub {
		if d != root && isDir(d) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

func (s *Glob) Matches(path string) bool {
	ok, err := doublestar.PathMatch(s.pattern, filepath.Clean(path))
	return err == nil && ok
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
