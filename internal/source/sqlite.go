package source

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/db"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/domain"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/importer"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/repository"
)

// SQLite loads a snapshot database read-only. The database is opened per
// load so a replaced file is picked up on reload. Filter options are
// derived from the stored projects.
type SQLite struct {
	path string
}

func NewSQLite(path string) *SQLite {
	return &SQLite{path: path}
}

func (s *SQLite) Name() string { return s.path }

func (s *SQLite) Load(ctx context.Context) (*domain.Portfolio, error) {
	if err := checkCtx(ctx, s.path); err != nil {
		return nil, err
	}
	database, err := db.OpenReadOnly(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, loadErr(CodeNotFound, s.path, err)
		}
		return nil, loadErr(CodeMalformed, s.path, err)
	}
	defer database.Close()

	projects, err := repository.NewSQLiteProjectRepo(database).List(ctx)
	if err != nil {
		return nil, loadErr(CodeReadFailed, s.path, err)
	}
	return &domain.Portfolio{
		Source:   s.path,
		Projects: projects,
		Filters:  importer.DeriveFilterOptions(projects),
	}, nil
}

func (s *SQLite) WatchRoots() []string { return []string{filepath.Dir(s.path)} }

// Matches also accepts the database's journal and WAL files.
func (s *SQLite) Matches(path string) bool {
	for _, suffix := range []string{"-wal", "-journal"} {
		path = strings.TrimSuffix(path, suffix)
	}
	return sameFile(path, s.path)
}
