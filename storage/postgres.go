package storage

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/internmatch/backend/models"
)

//go:embed migrations/001_create_internships.sql
var postgresSchema string

const selectInternshipsPG = `
	SELECT id, title, company, education, department, sector, location,
	       skills, stipend, duration, description
	FROM internships
	ORDER BY created_at, id`

// PostgresLoader reads the catalog from the internships table
type PostgresLoader struct {
	pool *pgxpool.Pool
}

// NewPostgresLoader connects to Postgres and verifies the connection
func NewPostgresLoader(ctx context.Context, dsn string) (*PostgresLoader, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	return &PostgresLoader{pool: pool}, nil
}

// Close closes the connection pool
func (l *PostgresLoader) Close() error {
	l.pool.Close()
	return nil
}

func (l *PostgresLoader) Name() string { return "postgres" }

// Migrate creates the internships table if it does not exist
func (l *PostgresLoader) Migrate(ctx context.Context) error {
	if _, err := l.pool.Exec(ctx, postgresSchema); err != nil {
		return fmt.Errorf("failed to migrate internships table: %w", err)
	}
	return nil
}

func (l *PostgresLoader) Load(ctx context.Context) ([]models.Internship, error) {
	rows, err := l.pool.Query(ctx, selectInternshipsPG)
	if err != nil {
		return nil, fmt.Errorf("failed to query internships: %w", err)
	}
	defer rows.Close()

	var items []models.Internship
	for rows.Next() {
		var (
			item    models.Internship
			skills  []string
			stipend string
		)
		if err := rows.Scan(&item.ID, &item.Title, &item.Company, &item.Education, &item.Department,
			&item.Sector, &item.Location, &skills, &stipend, &item.Duration, &item.Description); err != nil {
			return nil, fmt.Errorf("failed to scan internship: %w", err)
		}
		item.Skills = models.FlexibleStringSlice(skills)
		item.Stipend = models.FlexibleString(stipend)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate internships: %w", err)
	}
	return items, nil
}

// Save upserts internships in a single transaction
func (l *PostgresLoader) Save(ctx context.Context, items []models.Internship) error {
	tx, err := l.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batch := &pgx.Batch{}
	for _, item := range normalizeItems(items) {
		batch.Queue(`
			INSERT INTO internships (id, title, company, education, department, sector, location, skills, stipend, duration, description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			ON CONFLICT (id) DO UPDATE SET
				title = EXCLUDED.title, company = EXCLUDED.company, education = EXCLUDED.education,
				department = EXCLUDED.department, sector = EXCLUDED.sector, location = EXCLUDED.location,
				skills = EXCLUDED.skills, stipend = EXCLUDED.stipend, duration = EXCLUDED.duration,
				description = EXCLUDED.description`,
			item.ID, item.Title, item.Company, item.Education, item.Department, item.Sector, item.Location,
			[]string(item.Skills), string(item.Stipend), item.Duration, item.Description)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to save internships: %w", err)
	}
	return tx.Commit(ctx)
}
