package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// ProjectColumns lists the projects table columns in select order.
var ProjectColumns = []string{
	"id", "position", "name", "demand_number", "department", "portfolio",
	"status", "lifecycle_stage", "project_manager", "business_focal_point",
	"sponsor", "planned_progress", "actual_progress", "milestone",
	"demand_creation_date", "modified", "demand_description", "update_text",
	"challenges", "risks", "planned_activities", "added_values",
	"beneficiary_department",
	"initiation_start", "initiation_end", "procurement_start", "procurement_end",
	"execution_start", "execution_end", "closure_start", "closure_end",
}

// requiredColumns must exist for a database to be usable as a source.
var requiredColumns = []string{"id", "name", "department", "status", "lifecycle_stage", "project_manager"}

// Migrate creates the snapshot schema. Progress columns hold 0–100 values
// as exported; list columns hold JSON arrays of strings.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// VerifySchema checks that db has a projects table with the columns the
// dashboard reads.
func VerifySchema(db *sql.DB) error {
	rows, err := db.Query(`SELECT name FROM pragma_table_info('projects')`)
	if err != nil {
		return fmt.Errorf("reading projects schema: %w", err)
	}
	defer rows.Close()

	have := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return fmt.Errorf("reading projects schema: %w", err)
		}
		have[name] = true
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("reading projects schema: %w", err)
	}
	if len(have) == 0 {
		return fmt.Errorf("database has no projects table")
	}

	var missing []string
	for _, c := range requiredColumns {
		if !have[c] {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("projects table is missing columns: %s", strings.Join(missing, ", "))
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id                     TEXT PRIMARY KEY,
		position               INTEGER NOT NULL DEFAULT 0,
		name                   TEXT NOT NULL DEFAULT '',
		demand_number          TEXT NOT NULL DEFAULT '',
		department             TEXT NOT NULL DEFAULT '',
		portfolio              TEXT NOT NULL DEFAULT '',
		status                 TEXT NOT NULL DEFAULT '',
		lifecycle_stage        TEXT NOT NULL DEFAULT '',
		project_manager        TEXT NOT NULL DEFAULT '',
		business_focal_point   TEXT NOT NULL DEFAULT '',
		sponsor                TEXT NOT NULL DEFAULT '',
		planned_progress       REAL,
		actual_progress        REAL,
		milestone              TEXT NOT NULL DEFAULT '',
		demand_creation_date   TEXT NOT NULL DEFAULT '',
		modified               TEXT NOT NULL DEFAULT '',
		demand_description     TEXT NOT NULL DEFAULT '',
		update_text            TEXT NOT NULL DEFAULT '',
		challenges             TEXT NOT NULL DEFAULT '[]',
		risks                  TEXT NOT NULL DEFAULT '[]',
		planned_activities     TEXT NOT NULL DEFAULT '[]',
		added_values           TEXT NOT NULL DEFAULT '[]',
		beneficiary_department TEXT NOT NULL DEFAULT '',
		initiation_start       TEXT NOT NULL DEFAULT '',
		initiation_end         TEXT NOT NULL DEFAULT '',
		procurement_start      TEXT NOT NULL DEFAULT '',
		procurement_end        TEXT NOT NULL DEFAULT '',
		execution_start        TEXT NOT NULL DEFAULT '',
		execution_end          TEXT NOT NULL DEFAULT '',
		closure_start          TEXT NOT NULL DEFAULT '',
		closure_end            TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_projects_position ON projects(position)`,
}
