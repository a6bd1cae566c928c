package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/internmatch/backend/models"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS internships (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL DEFAULT '',
	company     TEXT NOT NULL DEFAULT '',
	education   TEXT NOT NULL DEFAULT '',
	department  TEXT NOT NULL DEFAULT '',
	sector      TEXT NOT NULL DEFAULT '',
	location    TEXT NOT NULL DEFAULT '',
	skills      TEXT NOT NULL DEFAULT '[]',
	stipend     TEXT NOT NULL DEFAULT '',
	duration    TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	created_at  TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// SQLiteLoader reads the catalog from a local SQLite file. Skills are stored as a JSON array.
type SQLiteLoader struct {
	db   *sql.DB
	path string
}

// NewSQLiteLoader opens (and creates if needed) the SQLite catalog
func NewSQLiteLoader(dbPath string) (*SQLiteLoader, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create sqlite directory: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create internships table: %w", err)
	}
	return &SQLiteLoader{db: db, path: dbPath}, nil
}

// Close closes the database
func (l *SQLiteLoader) Close() error {
	return l.db.Close()
}

func (l *SQLiteLoader) Name() string { return "sqlite:" + l.path }

func (l *SQLiteLoader) Load(ctx context.Context) ([]models.Internship, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT id, title, company, education, department, sector, location,
		       skills, stipend, duration, description
		FROM internships
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query internships: %w", err)
	}
	defer rows.Close()

	var items []models.Internship
	for rows.Next() {
		var (
			item    models.Internship
			skills  string
			stipend string
		)
		if err := rows.Scan(&item.ID, &item.Title, &item.Company, &item.Education, &item.Department,
			&item.Sector, &item.Location, &skills, &stipend, &item.Duration, &item.Description); err != nil {
			return nil, fmt.Errorf("failed to scan internship: %w", err)
		}
		if err := json.Unmarshal([]byte(skills), &item.Skills); err != nil {
			return nil, fmt.Errorf("invalid skills for internship %s: %w", item.ID, err)
		}
		item.Stipend = models.FlexibleString(stipend)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate internships: %w", err)
	}
	return items, nil
}

// Save upserts internships in a single transaction
func (l *SQLiteLoader) Save(ctx context.Context, items []models.Internship) error {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, item := range normalizeItems(items) {
		skills, err := json.Marshal([]string(item.Skills))
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO internships (id, title, company, education, department, sector, location, skills, stipend, duration, description)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				title = excluded.title, company = excluded.company, education = excluded.education,
				department = excluded.department, sector = excluded.sector, location = excluded.location,
				skills = excluded.skills, stipend = excluded.stipend, duration = excluded.duration,
				description = excluded.description
		`, item.ID, item.Title, item.Company, item.Education, item.Department, item.Sector, item.Location,
			string(skills), string(item.Stipend), item.Duration, item.Description); err != nil {
			return fmt.Errorf("failed to save internship %s: %w", item.ID, err)
		}
	}
	return tx.Commit()
}
