// Package fs implementa el object store sobre disco. Los objetos viven en
// <root>/<bucket>/<key> y se sirven públicamente bajo <baseURL>/media/.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ngoiyaeric/dash/internal/storage"
)

type Store struct {
	root    string
	baseURL string // base pública, sin slash final
}

// New crea un store sobre root. baseURL es la base pública del servicio
// (ej: http://localhost:8080); las URLs se derivan como
// <baseURL>/media/<bucket>/<key>.
func New(root, baseURL string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("object store root %s: %w", root, err)
	}
	return &Store{root: root, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Root expone la raíz en disco (para servir /media con http.FileServer).
func (s *Store) Root() string { return s.root }

func (s *Store) Upload(ctx context.Context, bucket, key string, data []byte, contentType string) error {
	path, err := s.objectPath(bucket, key)
	if err != nil {
		return err
	}
	return atomicWrite(path, data)
}

func (s *Store) PublicURL(bucket, key string) (string, bool) {
	if s.baseURL == "" || !validName(bucket) || !validName(key) {
		return "", false
	}
	return s.baseURL + "/media/" + bucket + "/" + key, true
}

func (s *Store) Remove(ctx context.Context, bucket string, keys ...string) error {
	for _, k := range keys {
		path, err := s.objectPath(bucket, k)
		if err != nil {
			return err
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove %s/%s: %w", bucket, k, err)
		}
	}
	return nil
}

// objectPath valida bucket y key y arma el path en disco. Rechaza
// separadores y ".." para que una key no escape de la raíz.
func (s *Store) objectPath(bucket, key string) (string, error) {
	if !validName(bucket) {
		return "", fmt.Errorf("invalid bucket %q", bucket)
	}
	if !validName(key) {
		return "", fmt.Errorf("invalid object key %q", key)
	}
	return filepath.Join(s.root, bucket, key), nil
}

func validName(s string) bool {
	if s == "" || s == "." || s == ".." {
		return false
	}
	return !strings.ContainsAny(s, "/\\")
}

// atomicWrite escribe data en path vía tmp+rename para no dejar objetos
// a medio escribir si el proceso muere.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("fsync temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp: %w", err)
	}
	_ = os.Chmod(tmpPath, 0o644)

	if err := os.Rename(tmpPath, path); err != nil {
		// Windows: rename falla si el destino está bloqueado
		_ = os.Remove(path)
		if err2 := os.Rename(tmpPath, path); err2 != nil {
			return fmt.Errorf("rename: %v (after remove: %v)", err, err2)
		}
	}
	return nil
}

var _ storage.ObjectStore = (*Store)(nil)
