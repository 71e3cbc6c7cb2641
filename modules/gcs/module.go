// Package gcs registers the "gcs" source: results files stored as objects in
// a Google Cloud Storage bucket.
package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/specialistvlad/statgrid/internal/config"
	"github.com/specialistvlad/statgrid/internal/ctxlog"
	"github.com/specialistvlad/statgrid/internal/registry"
	"github.com/specialistvlad/statgrid/internal/source"
)

// Kind is the source kind name used in study files.
const Kind = "gcs"

// Module implements the registry.Module interface for this package.
type Module struct{}

// ObjectOpener opens one object for reading.
type ObjectOpener func(ctx context.Context, bucket, object string) (io.ReadCloser, error)

// Source reads results files from a bucket.
type Source struct {
	open   ObjectOpener
	close  func() error
	bucket string
	prefix string
}

// NewSource creates a Source on top of an opener. closeFn may be nil.
func NewSource(open ObjectOpener, closeFn func() error, bucket, prefix string) *Source {
	return &Source{open: open, close: closeFn, bucket: bucket, prefix: strings.Trim(prefix, "/")}
}

// Open implements source.Source.
func (s *Source) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	object := strings.TrimPrefix(name, "/")
	if s.prefix != "" {
		object = path.Join(s.prefix, object)
	}

	rc, err := s.open(ctx, s.bucket, object)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, source.NotExist("gs://" + s.bucket + "/" + object)
		}
		return nil, fmt.Errorf("failed to read gs://%s/%s: %w", s.bucket, object, err)
	}
	return rc, nil
}

// Close releases the underlying client.
func (s *Source) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// String implements source.Source.
func (s *Source) String() string {
	return "gs://" + path.Join(s.bucket, s.prefix)
}

// New builds a GCS source from study options: bucket (required) and prefix.
// Credentials come from the environment (Application Default Credentials).
func New(ctx context.Context, opts config.Options) (source.Source, error) {
	bucket, err := opts.Require("bucket")
	if err != nil {
		return nil, err
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	open := func(ctx context.Context, bucket, object string) (io.ReadCloser, error) {
		return client.Bucket(bucket).Object(object).NewReader(ctx)
	}

	ctxlog.FromContext(ctx).Debug("GCS source configured.", "bucket", bucket, "prefix", opts.Get("prefix", ""))
	return NewSource(open, client.Close, bucket, opts.Get("prefix", "")), nil
}

// Register registers the source factory with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterSource(Kind, New)
}
