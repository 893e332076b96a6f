// Package upload stores user-submitted images on local disk. Entities only
// ever hold the returned relative path; file contents are never inspected.
package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"garden/entities"
)

var allowedExt = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"webp": true,
}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store { return &Store{baseDir: baseDir} }

// Save writes the uploaded file under baseDir/folder with a generated name
// and returns the relative path ("crops/<uuid>.jpg"). A nil file header is
// not an error; it returns ("", nil) so optional images fall through.
func (s *Store) Save(fh *multipart.FileHeader, folder string) (string, error) {
	if fh == nil || fh.Filename == "" {
		return "", nil
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fh.Filename), "."))
	if !allowedExt[ext] {
		return "", fmt.Errorf("%w: image extension %q not allowed", entities.ErrValidation, ext)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("%w: open upload: %v", entities.ErrStorage, err)
	}
	defer src.Close()

	dir := filepath.Join(s.baseDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: mkdir %s: %v", entities.ErrStorage, dir, err)
	}

	name := uuid.New().String() + "." + ext
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("%w: create image file: %v", entities.ErrStorage, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("%w: write image file: %v", entities.ErrStorage, err)
	}
	return folder + "/" + name, nil
}

// Delete removes a previously saved image. Missing files are not an error.
func (s *Store) Delete(relPath string) {
	if relPath == "" {
		return
	}
	os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(relPath)))
}

// Allowed reports whether the file name carries a permitted image extension.
func Allowed(filename string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	return allowedExt[ext]
}
