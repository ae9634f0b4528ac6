package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/app"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/db"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/domain"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/importer"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/repository"
)

// Snapshot formats written by the converter.
const (
	FormatJSON   = "json"
	FormatSQLite = "sqlite"
)

type convertService struct {
	observer UseCaseObserver
}

// NewConvertService returns the use case that turns a tracker CSV export
// into a dashboard JSON document or a SQLite snapshot.
func NewConvertService(observers ...UseCaseObserver) app.ConvertUseCase {
	return &convertService{observer: useCaseObserverOrNoop(observers)}
}

func (s *convertService) Convert(ctx context.Context, req app.ConvertRequest) (res *app.ConvertResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"input": req.Input}
	defer func() {
		observe(ctx, s.observer, UseCaseConvert, startedAt, err, fields)
	}()

	output := req.Output
	if output == "" {
		output = strings.TrimSuffix(req.Input, filepath.Ext(req.Input)) + ".json"
	}
	format, err := snapshotFormat(output)
	if err != nil {
		return nil, err
	}
	fields["output"] = output
	fields["format"] = format

	f, err := os.Open(req.Input)
	if err != nil {
		return nil, fmt.Errorf("opening csv: %w", err)
	}
	defer f.Close()

	doc, err := importer.FromCSV(f)
	if err != nil {
		return nil, fmt.Errorf("converting csv: %w", err)
	}
	fields["projects"] = len(doc.Projects)

	switch format {
	case FormatJSON:
		err = writeJSONSnapshot(output, doc)
	case FormatSQLite:
		err = writeSQLiteSnapshot(ctx, output, importer.Adapt(doc).Projects)
	}
	if err != nil {
		return nil, err
	}

	return &app.ConvertResult{
		Output:   output,
		Format:   format,
		Projects: len(doc.Projects),
		Warnings: importer.Warnings(importer.ValidateDocument(doc)),
	}, nil
}

func snapshotFormat(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	default:
		return "", fmt.Errorf("unsupported output %q: use .json, .db or .sqlite", path)
	}
}

func writeJSONSnapshot(path string, doc *importer.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding dashboard data: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing dashboard data: %w", err)
	}
	return nil
}

func writeSQLiteSnapshot(ctx context.Context, path string, projects []domain.Project) error {
	database, err := db.OpenDB(path)
	if err != nil {
		return fmt.Errorf("opening snapshot: %w", err)
	}
	defer database.Close()
	return WriteSnapshot(ctx, db.NewSQLiteUnitOfWork(database), projects)
}

// WriteSnapshot replaces the stored projects in one transaction.
func WriteSnapshot(ctx context.Context, uow db.UnitOfWork, projects []domain.Project) error {
	return uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM projects`); err != nil {
			return fmt.Errorf("clearing snapshot: %w", err)
		}
		repo := repository.NewSQLiteProjectRepo(tx)
		for i := range projects {
			if err := repo.Insert(ctx, &projects[i], i); err != nil {
				return fmt.Errorf("storing project %q: %w", projects[i].ID, err)
			}
		}
		return nil
	})
}
