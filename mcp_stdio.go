package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/internmatch/backend/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the matching tools over MCP stdio",
	Long:  "Run a Model Context Protocol server on stdin/stdout exposing score_internship, rank_internships, related_skills and generate_learning_path. Logs go to stderr.",
	RunE:  runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	a, err := newApp(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	return mcp.ServeStdio(a.registry, serviceName, version)
}
