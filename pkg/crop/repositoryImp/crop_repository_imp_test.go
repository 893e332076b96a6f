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
	"garden/pkg/crop/repository"
)

func strPtr(s string) *string { return &s }

func newTestRepo(t *testing.T) repository.CropRepository {
	t.Helper()
	db := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	return New(db, clock.Fixed(time.Date(2024, 6, 1, 9, 0, 0, 0, clock.JST)))
}

func TestCreateAndFind(t *testing.T) {
	repo := newTestRepo(t)
	c := &entities.Crop{
		Name:     "Tomato",
		CropType: "vegetable",
		Variety:  strPtr("Aiko"),
		Notes:    strPtr("likes full sun"),
	}
	require.NoError(t, repo.Create(c))
	require.NotZero(t, c.ID)

	got, err := repo.FindByID(c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tomato", got.Name)
	require.NotNil(t, got.Variety)
	assert.Equal(t, "Aiko", *got.Variety)
}

func TestFindByIDNotFound(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.FindByID(7)
	require.Error(t, err)
	assert.True(t, errors.Is(err, entities.ErrNotFound))
}

func TestUpdate(t *testing.T) {
	repo := newTestRepo(t)
	c := &entities.Crop{Name: "Tomato", CropType: "vegetable"}
	require.NoError(t, repo.Create(c))

	c.Name = "Cherry tomato"
	require.NoError(t, repo.Update(c))

	got, err := repo.FindByID(c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cherry tomato", got.Name)
}

func TestDeleteThenFind(t *testing.T) {
	repo := newTestRepo(t)
	c := &entities.Crop{Name: "Tomato", CropType: "vegetable"}
	require.NoError(t, repo.Create(c))
	require.NoError(t, repo.Delete(c.ID))

	_, err := repo.FindByID(c.ID)
	assert.True(t, errors.Is(err, entities.ErrNotFound))
}

func TestSearchMatchesNameTypeAndVariety(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, repo.Create(&entities.Crop{Name: "Tomato", CropType: "vegetable", Variety: strPtr("Aiko")}))
	require.NoError(t, repo.Create(&entities.Crop{Name: "Basil", CropType: "herb"}))
	require.NoError(t, repo.Create(&entities.Crop{Name: "Marigold", CropType: "flower"}))

	byName, err := repo.Search("toma")
	require.NoError(t, err)
	assert.Len(t, byName, 1)

	byType, err := repo.Search("herb")
	require.NoError(t, err)
	require.Len(t, byType, 1)
	assert.Equal(t, "Basil", byType[0].Name)

	byVariety, err := repo.Search("Aiko")
	require.NoError(t, err)
	require.Len(t, byVariety, 1)
	assert.Equal(t, "Tomato", byVariety[0].Name)

	none, err := repo.Search("cucumber")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCount(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, repo.Create(&entities.Crop{Name: "a", CropType: "other"}))
	require.NoError(t, repo.Create(&entities.Crop{Name: "b", CropType: "other"}))

	n, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
