package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/internmatch/backend/config"
	"github.com/internmatch/backend/models"
	"github.com/internmatch/backend/storage"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a catalog file into SQLite or Postgres",
	Long:  "Read an internship catalog (JSON or YAML) and upsert it into the SQLite database at SQLITE_PATH or the Postgres database at DATABASE_URL.",
	RunE:  runImport,
}

var (
	importFrom string
	importTo   string
)

func init() {
	importCmd.Flags().StringVarP(&importFrom, "from", "f", "", "Path to catalog JSON/YAML file (required)")
	importCmd.Flags().StringVarP(&importTo, "to", "t", config.SourceSQLite, "Destination store: sqlite or postgres")

	if err := importCmd.MarkFlagRequired("from"); err != nil {
		panic(fmt.Sprintf("failed to mark from flag as required: %v", err))
	}

	rootCmd.AddCommand(importCmd)
}

// catalogWriter is a catalog store that accepts upserts
type catalogWriter interface {
	storage.Loader
	Save(ctx context.Context, items []models.Internship) error
	Close() error
}

func runImport(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
	defer cancel()
	return importCatalog(ctx, config.Load(), importFrom, importTo)
}

func importCatalog(ctx context.Context, cfg *config.Config, from, to string) error {
	items, err := storage.NewFileLoader(from).Load(ctx)
	if err != nil {
		return err
	}

	writer, err := openCatalogWriter(ctx, cfg, to)
	if err != nil {
		return err
	}
	defer writer.Close()

	snapshot := storage.NewSnapshot(from, items)
	if err := writer.Save(ctx, snapshot.Items()); err != nil {
		return fmt.Errorf("failed to save catalog: %w", err)
	}

	log.Printf("[Import] Saved %d internships to %s", snapshot.Len(), writer.Name())
	return nil
}

func openCatalogWriter(ctx context.Context, cfg *config.Config, to string) (catalogWriter, error) {
	switch to {
	case config.SourceSQLite:
		db, err := storage.NewSQLiteLoader(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return db, nil
	case config.SourcePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required to import into postgres")
		}
		pg, err := storage.NewPostgresLoader(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := pg.Migrate(ctx); err != nil {
			pg.Close()
			return nil, err
		}
		return pg, nil
	default:
		return nil, fmt.Errorf("unsupported import destination %q", to)
	}
}
