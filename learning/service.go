package learning

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/internmatch/backend/models"
)

const (
	MessageGenerated = "No direct internship matches found. Here's your personalized learning path."
	MessageFallback  = "No direct internship matches found. Here are some learning suggestions."

	defaultTimeout = 8 * time.Second
)

// Generator produces a personalized learning path, typically via an LLM.
type Generator interface {
	GenerateLearningPath(ctx context.Context, profile *models.UserProfile) ([]models.LearningStep, error)
}

// Cache stores generated learning paths per profile.
type Cache interface {
	GetLearningPath(ctx context.Context, profile *models.UserProfile) ([]models.LearningStep, bool)
	SetLearningPath(ctx context.Context, profile *models.UserProfile, steps []models.LearningStep)
}

// Service is the no-match fallback: it asks the generator for a learning
// path within a time bound and falls back to static plans on any failure.
type Service struct {
	generator Generator
	cache     Cache
	timeout   time.Duration
}

// NewService creates the fallback service. generator and cache may be nil.
func NewService(generator Generator, cache Cache, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Service{
		generator: generator,
		cache:     cache,
		timeout:   timeout,
	}
}

// OnNoMatches always returns a response with a non-empty learning path.
func (s *Service) OnNoMatches(ctx context.Context, profile *models.UserProfile) models.NoMatchResponse {
	steps, err := s.generate(ctx, profile)
	if err != nil {
		log.Printf("[Learning] Learning path generation failed, using static plans: %v", err)
		return models.NoMatchResponse{
			Status:       models.StatusNoMatches,
			Message:      MessageFallback,
			LearningPath: StaticLearningPath(profile),
		}
	}

	return models.NoMatchResponse{
		Status:       models.StatusNoMatches,
		Message:      MessageGenerated,
		LearningPath: steps,
	}
}

func (s *Service) generate(ctx context.Context, profile *models.UserProfile) ([]models.LearningStep, error) {
	if s.generator == nil {
		return nil, fmt.Errorf("no learning path generator configured")
	}

	if s.cache != nil {
		if steps, ok := s.cache.GetLearningPath(ctx, profile); ok && len(steps) > 0 {
			log.Printf("[Learning] Cache hit for learning path")
			return steps, nil
		}
	}

	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	type outcome struct {
		steps []models.LearningStep
		err   error
	}
	done := make(chan outcome, 1)
	go func() {
		steps, err := s.generator.GenerateLearningPath(genCtx, profile)
		done <- outcome{steps: steps, err: err}
	}()

	// A generator that ignores its context must not stall the request
	var res outcome
	select {
	case res = <-done:
	case <-genCtx.Done():
		return nil, fmt.Errorf("learning path generation timed out after %s: %w", s.timeout, genCtx.Err())
	}

	if res.err != nil {
		return nil, res.err
	}
	if len(res.steps) == 0 {
		return nil, fmt.Errorf("%w: no steps", ErrInvalidLearningPath)
	}

	if s.cache != nil {
		s.cache.SetLearningPath(ctx, profile, res.steps)
	}
	return res.steps, nil
}
