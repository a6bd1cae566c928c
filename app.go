package main

import (
	"context"
	"fmt"
	"log"

	"github.com/internmatch/backend/agent"
	"github.com/internmatch/backend/cache"
	"github.com/internmatch/backend/config"
	"github.com/internmatch/backend/gemini"
	"github.com/internmatch/backend/learning"
	"github.com/internmatch/backend/matching"
	"github.com/internmatch/backend/storage"
	"github.com/internmatch/backend/tools"
)

// app holds the services shared by every command
type app struct {
	cfg         *config.Config
	catalog     *storage.Catalog
	graph       matching.SkillGraph
	learning    *learning.Service
	recommender *agent.Recommender
	assistant   *agent.Assistant
	registry    *tools.ToolRegistry

	closers []func() error
}

// newApp loads the catalog and wires the matching stack. A language model
// that fails to initialize is logged and skipped; static learning paths
// still work without it.
func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{cfg: cfg, graph: matching.DefaultGraph()}

	mode, err := matching.ParseBreakdownMode(cfg.ScoreBreakdownMode)
	if err != nil {
		return nil, err
	}

	log.Printf("Initializing catalog (source=%s)...", cfg.CatalogSource)
	loader, err := storage.NewLoader(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog loader: %w", err)
	}
	a.catalog = storage.NewCatalog(loader)
	a.closers = append(a.closers, a.catalog.Close)
	if _, err := a.catalog.Reload(ctx); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	var (
		generator learning.Generator
		answerer  agent.Answerer
	)
	if cfg.LLMEnabled {
		client, err := gemini.NewClient(ctx, cfg)
		if err != nil {
			log.Printf("[App] Language model unavailable, continuing without it: %v", err)
		} else {
			generator = client
			answerer = client
			a.closers = append(a.closers, client.Close)
		}
	}

	redisCache := cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.LearningPathCacheTTL())
	a.closers = append(a.closers, redisCache.Close)

	a.learning = learning.NewService(generator, redisCache, cfg.LLMTimeout())
	ranker := matching.NewRanker(matching.NewScorer(a.graph, mode), cfg.ScoringWorkers)
	a.recommender = agent.NewRecommender(a.catalog, ranker, a.learning)
	a.assistant = agent.NewAssistant(a.catalog, answerer, 0)
	a.registry = tools.NewInternshipRegistry(a.recommender, a.graph, a.learning)

	return a, nil
}

// Close releases clients in reverse order of creation
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			log.Printf("[App] Close error: %v", err)
		}
	}
	a.closers = nil
}

// loadConfig reads and validates configuration from the environment
func loadConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return cfg, nil
}
