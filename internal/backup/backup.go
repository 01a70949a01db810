// Package backup copies artifacts into a Google Cloud Storage bucket.
package backup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"ytd/internal/domain/consts"
	"ytd/internal/domain/errconsts"
	"ytd/internal/file"
	"ytd/internal/models"
	"ytd/internal/utils/logging"

	"github.com/dustin/go-humanize"
)

// ClientProvider returns HTTP clients authorized for an integration.
type ClientProvider interface {
	Client(ctx context.Context, i models.Integration) (*http.Client, error)
}

// ObjectWriter opens a writer for one object.
type ObjectWriter interface {
	NewWriter(ctx context.Context, bucket, name, contentType string, progress func(int64)) io.WriteCloser
}

// StoreFactory builds an ObjectWriter on an authorized HTTP client.
type StoreFactory func(ctx context.Context, client *http.Client) (ObjectWriter, error)

// Backuper uploads artifacts under the backup prefix.
type Backuper struct {
	auth     ClientProvider
	factory  StoreFactory
	progress io.Writer
}

// New returns a Backuper writing through Cloud Storage.
func New(auth ClientProvider, progress io.Writer) *Backuper {
	return NewWithFactory(auth, NewGCSWriter, progress)
}

// NewWithFactory returns a Backuper writing through the given object store.
func NewWithFactory(auth ClientProvider, factory StoreFactory, progress io.Writer) *Backuper {
	if progress == nil {
		progress = io.Discard
	}
	return &Backuper{
		auth:     auth,
		factory:  factory,
		progress: progress,
	}
}

// Backup uploads the file at path to bucket and returns the object URI.
func (b *Backuper) Backup(ctx context.Context, path, bucket string) (string, error) {
	bucket = strings.TrimSpace(bucket)
	if bucket == "" {
		return "", fmt.Errorf("%w: no bucket name", errconsts.ErrInvalidInput)
	}

	store, err := b.open(ctx)
	if err != nil {
		return "", err
	}
	if c, ok := store.(io.Closer); ok {
		defer func() {
			if err := c.Close(); err != nil {
				logging.D(1, "Closing storage client: %v", err)
			}
		}()
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errconsts.ErrBackupFailed, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logging.E("failed to close file %q due to error: %v", path, err)
		}
	}()

	var size int64
	if info, err := f.Stat(); err == nil {
		size = info.Size()
	}

	name := ObjectName(filepath.Base(path))
	logging.D(1, "Backing up %q to gs://%s/%s", path, bucket, name)

	w := store.NewWriter(ctx, bucket, name, ContentType(path), func(done int64) {
		printProgress(b.progress, filepath.Base(path), done, size)
	})
	if _, err := io.Copy(w, f); err != nil {
		_ = w.Close()
		fmt.Fprintln(b.progress)
		return "", classifyError(err)
	}
	err = w.Close()
	fmt.Fprintln(b.progress)
	if err != nil {
		return "", classifyError(err)
	}

	uri := "gs://" + bucket + "/" + name
	logging.D(1, "Backed up %s", uri)
	return uri, nil
}

// open authorizes and creates the object store. The client is fetched on every call
// so a token replaced by re-authorization takes effect on the next backup.
func (b *Backuper) open(ctx context.Context) (ObjectWriter, error) {
	client, err := b.auth.Client(ctx, models.IntegrationGCS)
	if err != nil {
		if errors.Is(err, errconsts.ErrAuthUnavailable) || errors.Is(err, errconsts.ErrAuthRequired) || errors.Is(err, errconsts.ErrCancelled) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", errconsts.ErrAuthRequired, err)
	}

	store, err := b.factory(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("%w: could not create storage client: %w", errconsts.ErrBackupFailed, err)
	}
	return store, nil
}

// ObjectName returns the object key for an artifact filename.
func ObjectName(filename string) string {
	return consts.BackupPrefix + filename
}

// ContentType returns the content type stored with an artifact.
func ContentType(path string) string {
	if ct, ok := consts.ContentTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return ct
	}
	return consts.DefaultContentType
}

// SavedBucket returns the bucket name saved by a previous backup, or "".
func SavedBucket(s *models.Settings) string {
	name, err := file.ReadFirstLine(s.BucketFilePath())
	if err != nil {
		logging.W("Could not read saved bucket name: %v", err)
		return ""
	}
	return name
}

// SaveBucket remembers the bucket name for later backups.
func SaveBucket(s *models.Settings, bucket string) error {
	return file.WriteLine(s.BucketFilePath(), strings.TrimSpace(bucket))
}

func printProgress(w io.Writer, name string, done, total int64) {
	if total <= 0 {
		fmt.Fprintf(w, "\r  %s: %s", name, humanize.Bytes(uint64(done)))
		return
	}
	fmt.Fprintf(w, "\r  %s: %5.1f%% of %s", name, float64(done)/float64(total)*100, humanize.Bytes(uint64(total)))
}
