// Package source loads portfolio snapshots from files and databases and
// watches them for changes.
package source

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/domain"
)

// Loader produces a fresh portfolio snapshot on every call.
type Loader interface {
	Load(ctx context.Context) (*domain.Portfolio, error)
	// Name identifies the source in logs and views.
	Name() string
}

// Watchable is implemented by loaders backed by files on disk.
type Watchable interface {
	// WatchRoots lists the directories whose entries can change the data.
	WatchRoots() []string
	// Matches reports whether a changed path affects the data.
	Matches(path string) bool
}

// Open picks a loader for location: a doublestar pattern, a .json document,
// a .csv tracker export, or a .db/.sqlite snapshot.
func Open(location string) (Loader, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, ErrNoSource
	}
	if strings.ContainsAny(location, "*?[{") {
		return NewGlob(location), nil
	}
	switch strings.ToLower(filepath.Ext(location)) {
	case ".json":
		return NewJSONFile(location), nil
	case ".csv":
		return NewCSVFile(location), nil
	case ".db", ".sqlite", ".sqlite3":
		return NewSQLite(location), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, location)
	}
}

func checkCtx(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return loadErr(CodeReadFailed, path, err)
	}
	return nil
}

func sameFile(a, b string) bool {
	ca, errA := filepath.Abs(a)
	cb, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return ca == cb
}
