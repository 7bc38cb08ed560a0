// Package artifact persists opaque binary artifacts on the local filesystem
// or in Google Cloud Storage.
package artifact

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"cloud.google.com/go/storage"

	"github.com/SHIVAAAAY28/project-default-credit-card/pkg/errs"
)

// Store reads and writes whole artifacts by location.
type Store interface {
	Put(ctx context.Context, location string, blob []byte) error
	Get(ctx context.Context, location string) ([]byte, error)
}

// FileStore keeps artifacts on the local filesystem.
type FileStore struct{}

// Put writes blob to location, creating parent directories. The file is
// written to a temporary name first and renamed into place.
func (FileStore) Put(ctx context.Context, location string, blob []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir := filepath.Dir(location)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errs.Wrap(errs.SerializationFailure, fmt.Errorf("create %s: %w", dir, err))
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(location)+".tmp-*")
	if err != nil {
		return errs.Wrap(errs.SerializationFailure, fmt.Errorf("create temp artifact: %w", err))
	}
	if _, err := tmp.Write(blob); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return errs.Wrap(errs.SerializationFailure, fmt.Errorf("write %s: %w", location, err))
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return errs.Wrap(errs.SerializationFailure, fmt.Errorf("close %s: %w", location, err))
	}
	if err := os.Rename(tmp.Name(), location); err != nil {
		_ = os.Remove(tmp.Name())
		return errs.Wrap(errs.SerializationFailure, fmt.Errorf("rename into %s: %w", location, err))
	}
	return nil
}

// Get reads the artifact at location.
func (FileStore) Get(ctx context.Context, location string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(location)
	if err != nil {
		return nil, errs.Wrap(errs.SerializationFailure, fmt.Errorf("read %s: %w", location, err))
	}
	return b, nil
}

// GCSStore keeps artifacts in Google Cloud Storage under gs://bucket/object locations.
type GCSStore struct {
	Client *storage.Client
}

func (s GCSStore) Put(ctx context.Context, location string, blob []byte) error {
	bucket, object, err := ParseGCS(location)
	if err != nil {
		return err
	}
	w := s.Client.Bucket(bucket).Object(object).NewWriter(ctx)
	w.ContentType = "application/octet-stream"
	if _, err := w.Write(blob); err != nil {
		_ = w.Close()
		return errs.Wrap(errs.SerializationFailure, fmt.Errorf("failed to write data to GCS: %w", err))
	}
	if err := w.Close(); err != nil {
		return errs.Wrap(errs.SerializationFailure, fmt.Errorf("failed to close GCS writer: %w", err))
	}
	return nil
}

func (s GCSStore) Get(ctx context.Context, location string) ([]byte, error) {
	bucket, object, err := ParseGCS(location)
	if err != nil {
		return nil, err
	}
	r, err := s.Client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		return nil, errs.Wrap(errs.SerializationFailure, fmt.Errorf("open GCS object %q in bucket %q: %w", object, bucket, err))
	}
	defer r.Close()
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errs.Wrap(errs.SerializationFailure, fmt.Errorf("read GCS object %q: %w", object, err))
	}
	return b, nil
}

const gcsScheme = "gs://"

// IsGCS reports whether location addresses Cloud Storage.
func IsGCS(location string) bool { return strings.HasPrefix(location, gcsScheme) }

// ParseGCS splits gs://bucket/object into its parts.
func ParseGCS(location string) (bucket, object string, err error) {
	rest, ok := strings.CutPrefix(location, gcsScheme)
	if !ok {
		return "", "", errs.New(errs.SerializationFailure, "%q is not a gs:// location", location)
	}
	bucket, object, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || object == "" {
		return "", "", errs.New(errs.SerializationFailure, "%q must look like gs://bucket/object", location)
	}
	return bucket, object, nil
}

// Router sends gs:// locations to Cloud Storage and everything else to the
// local filesystem. The storage client is created on first use.
type Router struct {
	Local Store

	mu     sync.Mutex
	remote Store
	dial   func(ctx context.Context) (Store, error)
}

// NewRouter returns a Router that dials Cloud Storage with default credentials.
func NewRouter() *Router {
	return &Router{
		Local: FileStore{},
		dial: func(ctx context.Context) (Store, error) {
			c, err := storage.NewClient(ctx)
			if err != nil {
				return nil, errs.Wrap(errs.SerializationFailure, fmt.Errorf("failed to create storage client: %w", err))
			}
			return GCSStore{Client: c}, nil
		},
	}
}

func (r *Router) Put(ctx context.Context, location string, blob []byte) error {
	s, err := r.storeFor(ctx, location)
	if err != nil {
		return err
	}
	return s.Put(ctx, location, blob)
}

func (r *Router) Get(ctx context.Context, location string) ([]byte, error) {
	s, err := r.storeFor(ctx, location)
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, location)
}

func (r *Router) storeFor(ctx context.Context, location string) (Store, error) {
	if !IsGCS(location) {
		if r.Local == nil {
			return FileStore{}, nil
		}
		return r.Local, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.remote == nil {
		if r.dial == nil {
			return nil, errs.New(errs.SerializationFailure, "no remote store configured for %s", location)
		}
		s, err := r.dial(ctx)
		if err != nil {
			return nil, err
		}
		r.remote = s
	}
	return r.remote, nil
}
