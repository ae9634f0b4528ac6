package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/db"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/domain"
)

// SQLiteProjectRepo reads and writes snapshot projects. Progress is stored
// on the export's 0–100 scale and converted to fractions on read.
type SQLiteProjectRepo struct {
	db db.DBTX
}

// NewSQLiteProjectRepo creates a new SQLiteProjectRepo.
func NewSQLiteProjectRepo(db db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: db}
}

var selectProjects = `SELECT ` + strings.Join(db.ProjectColumns, ", ") + ` FROM projects`

func (r *SQLiteProjectRepo) List(ctx context.Context) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, selectProjects+` ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) Insert(ctx context.Context, p *domain.Project, position int) error {
	lists := make([]string, 0, 4)
	for _, items := range [][]string{p.Challenges, p.Risks, p.PlannedActivities, p.AddedValues} {
		enc, err := encodeList(items)
		if err != nil {
			return err
		}
		lists = append(lists, enc)
	}
	ph := phaseColumns(p.PhaseDates)

	query := `INSERT INTO projects (` + strings.Join(db.ProjectColumns, ", ") + `)
		VALUES (` + strings.TrimSuffix(strings.Repeat("?, ", len(db.ProjectColumns)), ", ") + `)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, position, p.Name, p.DemandNumber, p.Department, p.Portfolio,
		string(p.Status), string(p.Lifecycle), p.Manager, p.BusinessFocalPoint,
		p.Sponsor, p.PlannedProgress*100, p.ActualProgress*100, p.Milestone,
		p.DemandCreationDate, p.Modified, p.DemandDescription, p.Update,
		lists[0], lists[1], lists[2], lists[3],
		p.BeneficiaryDepartment,
		ph[0], ph[1], ph[2], ph[3], ph[4], ph[5], ph[6], ph[7],
	)
	if err != nil {
		return fmt.Errorf("inserting project %s: %w", p.ID, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var p domain.Project
	var position int
	var status, stage string
	var planned, actual sql.NullFloat64
	var challenges, risks, activities, added string
	var ph [8]string

	err := row.Scan(
		&p.ID, &position, &p.Name, &p.DemandNumber, &p.Department, &p.Portfolio,
		&status, &stage, &p.Manager, &p.BusinessFocalPoint,
		&p.Sponsor, &planned, &actual, &p.Milestone,
		&p.DemandCreationDate, &p.Modified, &p.DemandDescription, &p.Update,
		&challenges, &risks, &activities, &added,
		&p.BeneficiaryDepartment,
		&ph[0], &ph[1], &ph[2], &ph[3], &ph[4], &ph[5], &ph[6], &ph[7],
	)
	if err != nil {
		return nil, fmt.Errorf("scanning project row: %w", err)
	}

	p.Status = domain.Status(status)
	p.Lifecycle = domain.Stage(stage)
	p.PlannedProgress = floatOrZero(planned) / 100
	p.ActualProgress = floatOrZero(actual) / 100
	p.Challenges = decodeList(challenges)
	p.Risks = decodeList(risks)
	p.PlannedActivities = decodeList(activities)
	p.AddedValues = decodeList(added)
	p.PhaseDates = domain.PhaseDates{
		Initiation:  phaseRange(ph[0], ph[1]),
		Procurement: phaseRange(ph[2], ph[3]),
		Execution:   phaseRange(ph[4], ph[5]),
		Closure:     phaseRange(ph[6], ph[7]),
	}
	return &p, nil
}

func phaseRange(start, end string) *domain.PhaseRange {
	if start == "" && end == "" {
		return nil
	}
	return &domain.PhaseRange{Start: start, End: end}
}

func phaseColumns(d domain.PhaseDates) [8]string {
	var out [8]string
	for i, r := range []*domain.PhaseRange{d.Initiation, d.Procurement, d.Execution, d.Closure} {
		if r != nil {
			out[2*i], out[2*i+1] = r.Start, r.End
		}
	}
	return out
}
