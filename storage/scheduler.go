package storage

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// RefreshScheduler reloads the catalog on a cron schedule
type RefreshScheduler struct {
	cron    *cron.Cron
	catalog *Catalog
	timeout time.Duration
}

// NewRefreshScheduler registers a reload job for spec (standard 5-field cron syntax)
func NewRefreshScheduler(catalog *Catalog, spec string, timeout time.Duration) (*RefreshScheduler, error) {
	if timeout <= 0 {
		timeout = time.Minute
	}
	s := &RefreshScheduler{
		cron:    cron.New(),
		catalog: catalog,
		timeout: timeout,
	}
	if _, err := s.cron.AddFunc(spec, s.refresh); err != nil {
		return nil, fmt.Errorf("invalid catalog refresh schedule %q: %w", spec, err)
	}
	return s, nil
}

// Start runs the scheduler in the background
func (s *RefreshScheduler) Start() {
	s.cron.Start()
	log.Printf("[Catalog] Refresh scheduler started")
}

// Stop stops the scheduler and waits for a running reload to finish
func (s *RefreshScheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *RefreshScheduler) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if _, err := s.catalog.Reload(ctx); err != nil {
		log.Printf("[Catalog] Scheduled reload failed, keeping previous snapshot: %v", err)
	}
}
