package kv

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/gosimple/slug"
)

// FileStore keeps one JSON file per key inside a directory. Writes go through
// a temp file plus rename so a crash mid-write never leaves a torn document.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, crerr.New("file store directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, crerr.Wrap(err, "create file store directory")
	}

	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, crerr.Wrapf(err, "read key %s", key)
	}

	return string(data), true, nil
}

func (s *FileStore) Set(_ context.Context, key, value string) error {
	target := s.path(key)
	tmp, err := os.CreateTemp(s.dir, filepath.Base(target)+".tmp-*")
	if err != nil {
		return crerr.Wrap(err, "create temp file")
	}

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return crerr.Wrapf(err, "write key %s", key)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return crerr.Wrapf(err, "close temp file for key %s", key)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return crerr.Wrapf(err, "replace key %s", key)
	}

	return nil
}

func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, slug.Make(key)+".json")
}
