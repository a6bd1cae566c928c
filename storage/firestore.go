package storage

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/internmatch/backend/models"
)

// FirestoreLoader reads the catalog from a Firestore collection
type FirestoreLoader struct {
	client     *firestore.Client
	collection string
}

// firestoreInternship mirrors stored documents; stipend may be a number or a string
type firestoreInternship struct {
	ID          string      `firestore:"id"`
	Title       string      `firestore:"title"`
	Company     string      `firestore:"company"`
	Education   string      `firestore:"education"`
	Department  string      `firestore:"department"`
	Sector      string      `firestore:"sector"`
	Location    string      `firestore:"location"`
	Skills      []string    `firestore:"skills"`
	Stipend     interface{} `firestore:"stipend"`
	Duration    string      `firestore:"duration"`
	Description string      `firestore:"description"`
}

// NewFirestoreLoader creates a new Firestore catalog loader
func NewFirestoreLoader(ctx context.Context, projectID, collection string) (*FirestoreLoader, error) {
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	return &FirestoreLoader{client: client, collection: collection}, nil
}

// Close closes the Firestore client
func (l *FirestoreLoader) Close() error {
	return l.client.Close()
}

func (l *FirestoreLoader) Name() string { return "firestore:" + l.collection }

// Load reads every document of the collection
func (l *FirestoreLoader) Load(ctx context.Context) ([]models.Internship, error) {
	iter := l.client.Collection(l.collection).Documents(ctx)
	defer iter.Stop()

	var items []models.Internship
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return nil, fmt.Errorf("collection %s not found: %w", l.collection, err)
			}
			return nil, fmt.Errorf("failed to query internships: %w", err)
		}

		var stored firestoreInternship
		if err := doc.DataTo(&stored); err != nil {
			return nil, fmt.Errorf("failed to parse internship %s: %w", doc.Ref.ID, err)
		}
		if stored.ID == "" {
			stored.ID = doc.Ref.ID
		}
		items = append(items, stored.toModel())
	}

	return items, nil
}

func (s firestoreInternship) toModel() models.Internship {
	return models.Internship{
		ID:          s.ID,
		Title:       s.Title,
		Company:     s.Company,
		Education:   s.Education,
		Department:  s.Department,
		Sector:      s.Sector,
		Location:    s.Location,
		Skills:      models.FlexibleStringSlice(s.Skills),
		Stipend:     stipendString(s.Stipend),
		Duration:    s.Duration,
		Description: s.Description,
	}
}

func stipendString(v interface{}) models.FlexibleString {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return models.FlexibleString(t)
	case int64:
		return models.FlexibleString(fmt.Sprintf("%d", t))
	case float64:
		if t == float64(int64(t)) {
			return models.FlexibleString(fmt.Sprintf("%d", int64(t)))
		}
		return models.FlexibleString(fmt.Sprintf("%g", t))
	default:
		return models.FlexibleString(fmt.Sprint(t))
	}
}
