package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	_ "github.com/internmatch/backend/docs"
)

// @title InternMatch API
// @version 1.0
// @description Explainable internship matching backend with skill-graph scoring, tiered recommendations and LLM learning paths.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@internmatch.dev

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

const (
	serviceName = "internmatch"
	version     = "1.0.0"
)

var rootCmd = &cobra.Command{
	Use:   serviceName,
	Short: "Internship matching backend",
	Long:  "InternMatch ranks an internship catalog against student profiles with an explainable skill-graph scorer and suggests learning paths when nothing fits.",
}

func main() {
	// Load .env file if present (for local development)
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
