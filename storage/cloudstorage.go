package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"cloud.google.com/go/storage"

	"github.com/internmatch/backend/models"
)

// CloudStorageLoader reads the catalog from a Cloud Storage object
type CloudStorageLoader struct {
	client     *storage.Client
	bucketName string
	objectName string
}

// NewCloudStorageLoader creates a new Cloud Storage catalog loader
func NewCloudStorageLoader(ctx context.Context, bucketName, objectName string) (*CloudStorageLoader, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Cloud Storage client: %w", err)
	}

	return &CloudStorageLoader{
		client:     client,
		bucketName: bucketName,
		objectName: objectName,
	}, nil
}

// Close closes the Cloud Storage client
func (l *CloudStorageLoader) Close() error {
	return l.client.Close()
}

func (l *CloudStorageLoader) Name() string {
	return fmt.Sprintf("gs://%s/%s", l.bucketName, l.objectName)
}

// Load downloads the catalog object and decodes it by extension
func (l *CloudStorageLoader) Load(ctx context.Context) ([]models.Internship, error) {
	reader, err := l.client.Bucket(l.bucketName).Object(l.objectName).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create reader: %w", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog object: %w", err)
	}

	return DecodeCatalog(data, filepath.Ext(l.objectName))
}
