// Package local guarda las imágenes subidas en disco, bajo un
// subdirectorio por catálogo, y devuelve el path público servido por el
// file server de /uploads/.
package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"time"

	"aupac-site/internal/domain/catalog"
)

type Uploader struct {
	dir string
	now func() time.Time
}

// PublicPrefix es donde el router monta el file server de subidas.
const PublicPrefix = "/uploads"

func NewUploader(dir string) (*Uploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Uploader{dir: dir, now: time.Now}, nil
}

func (u *Uploader) Store(ctx context.Context, kind catalog.Kind, r io.Reader, originalName string) (string, error) {
	bucket := filepath.Join(u.dir, kind.Bucket())
	if err := os.MkdirAll(bucket, 0o755); err != nil {
		return "", fmt.Errorf("create bucket dir: %w", err)
	}

	key := catalog.UploadKey(u.now(), originalName)

	f, err := os.Create(filepath.Join(bucket, key))
	if err != nil {
		return "", fmt.Errorf("store upload: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("store upload: %w", err)
	}

	return path.Join(PublicPrefix, kind.Bucket(), key), nil
}

// Dir expone el directorio raíz para montar el file server.
func (u *Uploader) Dir() string {
	return u.dir
}
