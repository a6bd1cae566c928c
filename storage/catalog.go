package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/internmatch/backend/config"
	"github.com/internmatch/backend/models"
)

// ErrNotFound is returned when an internship id is not in the catalog
var ErrNotFound = errors.New("internship not found")

// Loader reads the full internship catalog from a backing store
type Loader interface {
	Name() string
	Load(ctx context.Context) ([]models.Internship, error)
}

// NewLoader builds the loader selected by CATALOG_SOURCE
func NewLoader(ctx context.Context, cfg *config.Config) (Loader, error) {
	switch cfg.CatalogSource {
	case config.SourceFile, "":
		return NewFileLoader(cfg.CatalogPath), nil
	case config.SourceGCS:
		return NewCloudStorageLoader(ctx, cfg.CatalogBucket, cfg.CatalogObject)
	case config.SourceFirestore:
		return NewFirestoreLoader(ctx, cfg.ProjectID, cfg.FirestoreCollection)
	case config.SourcePostgres:
		return NewPostgresLoader(ctx, cfg.DatabaseURL)
	case config.SourceSQLite:
		return NewSQLiteLoader(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.CatalogSource)
	}
}

// Snapshot is an immutable view of the catalog taken at load time
type Snapshot struct {
	source   string
	loadedAt time.Time
	items    []models.Internship
	byID     map[string]int
}

// NewSnapshot normalizes items and indexes them by id
func NewSnapshot(source string, items []models.Internship) *Snapshot {
	normalized := normalizeItems(items)
	kept := make([]models.Internship, 0, len(normalized))
	byID := make(map[string]int, len(normalized))
	for _, item := range normalized {
		if _, dup := byID[item.ID]; dup {
			log.Printf("[Catalog] Duplicate internship id %q, keeping first", item.ID)
			continue
		}
		byID[item.ID] = len(kept)
		kept = append(kept, item)
	}
	return &Snapshot{
		source:   source,
		loadedAt: time.Now(),
		items:    kept,
		byID:     byID,
	}
}

// Items returns a copy of the catalog in load order
func (s *Snapshot) Items() []models.Internship {
	out := make([]models.Internship, len(s.items))
	copy(out, s.items)
	return out
}

// Get looks up a single internship by id
func (s *Snapshot) Get(id string) (models.Internship, error) {
	idx, ok := s.byID[strings.TrimSpace(id)]
	if !ok {
		return models.Internship{}, ErrNotFound
	}
	return s.items[idx], nil
}

// Len returns the number of internships in the snapshot
func (s *Snapshot) Len() int { return len(s.items) }

// Source names the loader that produced the snapshot
func (s *Snapshot) Source() string { return s.source }

// LoadedAt is when the snapshot was built
func (s *Snapshot) LoadedAt() time.Time { return s.loadedAt }

// Filter selects internships for browsing. Empty fields match everything.
type Filter struct {
	Education  string
	Department string
	Sector     string
	Location   string
	Skills     []string
	Query      string
}

// Filter returns the internships matching every non-empty criterion
func (s *Snapshot) Filter(f Filter) []models.Internship {
	out := make([]models.Internship, 0)
	for _, item := range s.items {
		if f.matches(&item) {
			out = append(out, item)
		}
	}
	return out
}

func (f Filter) matches(item *models.Internship) bool {
	if !equalOrEmpty(f.Education, item.Education) ||
		!equalOrEmpty(f.Department, item.Department) ||
		!equalOrEmpty(f.Sector, item.Sector) ||
		!equalOrEmpty(f.Location, item.Location) {
		return false
	}

	if len(f.Skills) > 0 && !anySkillOverlaps(f.Skills, item.Skills) {
		return false
	}

	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		fields := []string{item.Title, item.Company, item.Description, item.Sector, item.Location}
		fields = append(fields, item.Skills...)
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field), q) {
				return true
			}
		}
		return false
	}
	return true
}

func equalOrEmpty(want, got string) bool {
	want = strings.TrimSpace(want)
	return want == "" || strings.EqualFold(want, strings.TrimSpace(got))
}

// anySkillOverlaps matches skills by substring in either direction
func anySkillOverlaps(wanted, have []string) bool {
	for _, w := range wanted {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		for _, h := range have {
			h = strings.ToLower(strings.TrimSpace(h))
			if h != "" && (strings.Contains(h, w) || strings.Contains(w, h)) {
				return true
			}
		}
	}
	return false
}

// normalizeItems trims ids, fills missing ones and guarantees non-nil skill lists
func normalizeItems(items []models.Internship) []models.Internship {
	out := make([]models.Internship, len(items))
	for i, item := range items {
		item.ID = strings.TrimSpace(item.ID)
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		if item.Skills == nil {
			item.Skills = models.FlexibleStringSlice{}
		}
		out[i] = item
	}
	return out
}

// Catalog owns the current snapshot and swaps it atomically on reload
type Catalog struct {
	loader  Loader
	current atomic.Pointer[Snapshot]
	group   singleflight.Group
}

// NewCatalog creates a catalog holder with an empty snapshot
func NewCatalog(loader Loader) *Catalog {
	c := &Catalog{loader: loader}
	c.current.Store(NewSnapshot(loader.Name(), nil))
	return c
}

// Snapshot returns the current immutable snapshot
func (c *Catalog) Snapshot() *Snapshot {
	return c.current.Load()
}

// Reload reads the catalog again. Concurrent callers share one load; on
// failure the previous snapshot stays in place.
func (c *Catalog) Reload(ctx context.Context) (*Snapshot, error) {
	v, err, _ := c.group.Do("reload", func() (interface{}, error) {
		start := time.Now()
		items, err := c.loader.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog from %s: %w", c.loader.Name(), err)
		}
		snap := NewSnapshot(c.loader.Name(), items)
		c.current.Store(snap)
		log.Printf("[Catalog] Loaded %d internships from %s in %v", snap.Len(), snap.Source(), time.Since(start))
		return snap, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Snapshot), nil
}

// Close releases the loader's client if it holds one
func (c *Catalog) Close() error {
	if closer, ok := c.loader.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// StaticLoader serves a fixed set of internships
type StaticLoader struct {
	Items []models.Internship
}

func (l *StaticLoader) Name() string { return "static" }

func (l *StaticLoader) Load(context.Context) ([]models.Internship, error) {
	return l.Items, nil
}
