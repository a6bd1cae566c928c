package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/internmatch/backend/config"
	"github.com/internmatch/backend/models"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank a catalog file against a profile file",
	Long:  "Load a student profile JSON and an internship catalog (JSON or YAML), run one recommendation pass and write the response JSON.",
	RunE:  runRecommend,
}

var (
	recommendProfile string
	recommendCatalog string
	recommendOutput  string
	recommendLLM     bool
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendProfile, "profile", "p", "", "Path to input profile JSON file (required)")
	recommendCmd.Flags().StringVarP(&recommendCatalog, "catalog", "c", "", "Path to catalog JSON/YAML file (defaults to CATALOG_PATH)")
	recommendCmd.Flags().StringVarP(&recommendOutput, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	recommendCmd.Flags().BoolVar(&recommendLLM, "llm", false, "Use the configured language model for learning paths")

	if err := recommendCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(_ *cobra.Command, _ []string) error {
	cfg := config.Load()
	cfg.CatalogSource = config.SourceFile
	if recommendCatalog != "" {
		cfg.CatalogPath = recommendCatalog
	}
	cfg.LLMEnabled = recommendLLM
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	output, err := recommendFromFile(context.Background(), cfg, recommendProfile)
	if err != nil {
		return err
	}

	if recommendOutput == "" {
		_, err = os.Stdout.Write(append(output, '\n'))
		return err
	}

	// Ensure output directory exists
	if dir := filepath.Dir(recommendOutput); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(recommendOutput, output, 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", recommendOutput, err)
	}
	return nil
}

// recommendFromFile runs one recommendation pass and returns indented JSON
func recommendFromFile(ctx context.Context, cfg *config.Config, profilePath string) ([]byte, error) {
	content, err := os.ReadFile(profilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", profilePath, err)
	}

	var profile models.UserProfile
	if err := json.Unmarshal(content, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile JSON: %w", err)
	}

	a, err := newApp(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer a.Close()

	result, err := a.recommender.Recommend(ctx, &profile)
	if err != nil {
		return nil, fmt.Errorf("failed to rank internships: %w", err)
	}

	output, err := json.MarshalIndent(result.Body(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal recommendations to JSON: %w", err)
	}
	return output, nil
}
