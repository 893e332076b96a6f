package repositoryImp

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garden/database"
	"garden/entities"
	"garden/pkg/clock"
	"garden/pkg/location/repository"
)

func newTestRepo(t *testing.T) repository.LocationRepository {
	t.Helper()
	db := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	return New(db, clock.Fixed(time.Date(2024, 6, 1, 9, 0, 0, 0, clock.JST)))
}

func TestCreateAndFind(t *testing.T) {
	repo := newTestRepo(t)
	l := &entities.Location{Name: "South bed", LocationType: "field"}
	require.NoError(t, repo.Create(l))

	got, err := repo.FindByID(l.ID)
	require.NoError(t, err)
	assert.Equal(t, "South bed", got.Name)
	assert.Nil(t, got.CanvasData)
}

func TestFindByIDNotFound(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.FindByID(5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, entities.ErrNotFound))
}

func TestSaveAndReadCanvasData(t *testing.T) {
	repo := newTestRepo(t)
	l := &entities.Location{Name: "South bed", LocationType: "field"}
	require.NoError(t, repo.Create(l))

	blob := `{"objects":[{"plantingId":1}]}`
	require.NoError(t, repo.SaveCanvasData(l.ID, blob))

	got, err := repo.CanvasData(l.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, blob, *got)
}

func TestSaveCanvasDataUnknownLocation(t *testing.T) {
	repo := newTestRepo(t)
	err := repo.SaveCanvasData(99, `{}`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, entities.ErrNotFound))
}

func TestSearchByNameOrType(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, repo.Create(&entities.Location{Name: "South bed", LocationType: "field"}))
	require.NoError(t, repo.Create(&entities.Location{Name: "Kitchen window", LocationType: "indoor"}))

	out, err := repo.Search("indoor")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Kitchen window", out[0].Name)
}
