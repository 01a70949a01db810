package backup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"ytd/internal/domain/consts"
	"ytd/internal/domain/errconsts"

	"cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// gcsWriter adapts a Cloud Storage client to ObjectWriter.
type gcsWriter struct {
	client *storage.Client
}

// NewGCSWriter creates a Cloud Storage client on an authorized HTTP client.
func NewGCSWriter(ctx context.Context, client *http.Client) (ObjectWriter, error) {
	c, err := storage.NewClient(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, err
	}
	return &gcsWriter{client: c}, nil
}

// NewWriter implements ObjectWriter.
func (g *gcsWriter) NewWriter(ctx context.Context, bucket, name, contentType string, progress func(int64)) io.WriteCloser {
	w := g.client.Bucket(bucket).Object(name).NewWriter(ctx)
	w.ContentType = contentType
	w.ChunkSize = consts.BackupChunkSize
	w.ProgressFunc = progress
	return w
}

// Close releases the storage client.
func (g *gcsWriter) Close() error {
	return g.client.Close()
}

// classifyError separates rejected credentials and missing buckets from other failures.
func classifyError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: %s", errconsts.ErrAuthRequired, apiErr.Message)
		case http.StatusNotFound:
			return fmt.Errorf("%w: bucket not found: %s", errconsts.ErrBackupFailed, apiErr.Message)
		}
	}
	return fmt.Errorf("%w: %w", errconsts.ErrBackupFailed, err)
}
