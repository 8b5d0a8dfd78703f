// Package upload stores client-submitted images on a blob bucket backed by
// the local uploads directory. Stored names follow the source system's
// convention: a millisecond timestamp plus the original extension, so the
// public URLs already handed out keep resolving.
package upload

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"pepperoni/config"
	"pepperoni/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
)

// Store saves uploaded images and resolves their public URLs.
type Store interface {
	// Save writes the payload under a generated file name and returns it.
	Save(ctx context.Context, originalName string, data []byte) (string, error)

	// URL renders the public URL for a stored file name. Empty names map
	// to the empty URL.
	URL(fileName string) string
}

type blobStore struct {
	bucket  *blob.Bucket
	baseURL string
	now     func() time.Time
}

// Params defines the dependencies for the upload store.
type Params struct {
	fx.In

	Config    *config.Config
	Lifecycle fx.Lifecycle
}

// New opens the uploads directory as a fileblob bucket.
func New(params Params) (Store, error) {
	dir := params.Config.Uploads.Dir
	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{
		CreateDir: true,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open uploads bucket at %s", dir)
	}

	params.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStore{
		bucket:  bucket,
		baseURL: strings.TrimSuffix(params.Config.Uploads.BaseURL, "/"),
		now:     time.Now,
	}, nil
}

func (s *blobStore) Save(ctx context.Context, originalName string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	fileName := fmt.Sprintf("%d%s", s.now().UnixMilli(), ext)

	writer, err := s.bucket.NewWriter(ctx, fileName, nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to open blob writer")
	}

	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()

		return "", errors.Wrap(err, "failed to write upload")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finish upload")
	}

	return fileName, nil
}

func (s *blobStore) URL(fileName string) string {
	if fileName == "" {
		return ""
	}

	return s.baseURL + "/" + fileName
}
