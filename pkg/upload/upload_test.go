package upload

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garden/entities"
)

// multipartFile builds a real multipart.FileHeader the way echo would hand
// it to a handler.
func multipartFile(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["image"][0]
}

func TestSaveWritesUnderFolder(t *testing.T) {
	base := t.TempDir()
	store := New(base)

	rel, err := store.Save(multipartFile(t, "photo.JPG", "fake-jpeg"), "crops")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(rel, "crops/"))
	assert.True(t, strings.HasSuffix(rel, ".jpg"))

	data, err := os.ReadFile(filepath.Join(base, filepath.FromSlash(rel)))
	require.NoError(t, err)
	assert.Equal(t, "fake-jpeg", string(data))
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	store := New(t.TempDir())

	a, err := store.Save(multipartFile(t, "same.png", "one"), "diary")
	require.NoError(t, err)
	b, err := store.Save(multipartFile(t, "same.png", "two"), "diary")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestSaveRejectsDisallowedExtension(t *testing.T) {
	store := New(t.TempDir())

	_, err := store.Save(multipartFile(t, "payload.exe", "nope"), "crops")
	require.Error(t, err)
	assert.True(t, errors.Is(err, entities.ErrValidation))

	_, err = store.Save(multipartFile(t, "noext", "nope"), "crops")
	require.Error(t, err)
	assert.True(t, errors.Is(err, entities.ErrValidation))
}

func TestSaveNilHeaderIsNoop(t *testing.T) {
	store := New(t.TempDir())
	rel, err := store.Save(nil, "crops")
	require.NoError(t, err)
	assert.Empty(t, rel)
}

func TestDeleteMissingFileIsSilent(t *testing.T) {
	store := New(t.TempDir())
	store.Delete("crops/never-existed.png")
	store.Delete("")
}

func TestAllowed(t *testing.T) {
	assert.True(t, Allowed("a.png"))
	assert.True(t, Allowed("b.JPEG"))
	assert.True(t, Allowed("c.webp"))
	assert.False(t, Allowed("d.svg"))
	assert.False(t, Allowed("e"))
	assert.False(t, Allowed("f.png.exe"))
}
