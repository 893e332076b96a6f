package repositoryImp

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"garden/database"
	"garden/entities"
	"garden/pkg/clock"
	"garden/pkg/harvest/repository"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(v float64) *float64 { return &v }

// newTestRepo seeds two plantings: tomato in the south bed, basil in the
// planter.
func newTestRepo(t *testing.T) (repository.HarvestRepository, *gorm.DB) {
	t.Helper()
	db := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, db.Create(&entities.Crop{Name: "Tomato", CropType: "vegetable"}).Error)
	require.NoError(t, db.Create(&entities.Crop{Name: "Basil", CropType: "herb"}).Error)
	require.NoError(t, db.Create(&entities.Location{Name: "South bed", LocationType: "field"}).Error)
	require.NoError(t, db.Create(&entities.Location{Name: "Planter", LocationType: "planter"}).Error)
	require.NoError(t, db.Create(&entities.Planting{
		LocationID: 1, CropID: 1, PlantedDate: strPtr("2024-04-01"), Status: entities.PlantingActive,
	}).Error)
	require.NoError(t, db.Create(&entities.Planting{
		LocationID: 2, CropID: 2, PlantedDate: strPtr("2024-04-10"), Status: entities.PlantingActive,
	}).Error)
	return New(db, clock.Fixed(time.Date(2024, 7, 1, 9, 0, 0, 0, clock.JST))), db
}

func harvest(t *testing.T, repo repository.HarvestRepository, plantingID uint, date string, qty *float64) *entities.Harvest {
	t.Helper()
	h := &entities.Harvest{PlantingID: plantingID, HarvestDate: date, Quantity: qty}
	require.NoError(t, repo.Create(h))
	return h
}

func TestFindByIDJoinsChain(t *testing.T) {
	repo, _ := newTestRepo(t)
	h := harvest(t, repo, 1, "2024-06-15", f64Ptr(2.5))

	got, err := repo.FindByID(h.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tomato", got.CropName)
	assert.Equal(t, "South bed", got.LocationName)
	assert.Equal(t, uint(1), got.LocationID)
	require.NotNil(t, got.PlantedDate)
	assert.Equal(t, "2024-04-01", *got.PlantedDate)
	require.NotNil(t, got.DaysFromPlanting)
	assert.Equal(t, 75, *got.DaysFromPlanting)
}

func TestFindByIDNotFound(t *testing.T) {
	repo, _ := newTestRepo(t)
	_, err := repo.FindByID(9)
	require.Error(t, err)
	assert.True(t, errors.Is(err, entities.ErrNotFound))
}

func TestDaysFromPlantingNilWhenUndated(t *testing.T) {
	repo, db := newTestRepo(t)
	require.NoError(t, db.Model(&entities.Planting{}).Where("id = ?", 1).
		Update("planted_date", nil).Error)
	h := harvest(t, repo, 1, "2024-06-15", nil)

	got, err := repo.FindByID(h.ID)
	require.NoError(t, err)
	assert.Nil(t, got.DaysFromPlanting)
}

func TestAllNewestFirst(t *testing.T) {
	repo, _ := newTestRepo(t)
	harvest(t, repo, 1, "2024-06-10", nil)
	harvest(t, repo, 2, "2024-06-20", nil)

	out, err := repo.All(0, 0)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "2024-06-20", out[0].HarvestDate)
}

func TestByLocationAndByCrop(t *testing.T) {
	repo, _ := newTestRepo(t)
	harvest(t, repo, 1, "2024-06-10", nil)
	harvest(t, repo, 1, "2024-06-17", nil)
	harvest(t, repo, 2, "2024-06-12", nil)

	byLoc, err := repo.ByLocation(1)
	require.NoError(t, err)
	assert.Len(t, byLoc, 2)

	byCrop, err := repo.ByCrop(2)
	require.NoError(t, err)
	require.Len(t, byCrop, 1)
	assert.Equal(t, "Basil", byCrop[0].CropName)
}

func TestSearchFiltersAreANDed(t *testing.T) {
	repo, _ := newTestRepo(t)
	harvest(t, repo, 1, "2024-06-10", nil)
	harvest(t, repo, 1, "2024-07-10", nil)
	harvest(t, repo, 2, "2024-06-12", nil)

	out, err := repo.Search(repository.SearchFilter{
		Keyword:  "Tomato",
		DateFrom: "2024-06-01",
		DateTo:   "2024-06-30",
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "2024-06-10", out[0].HarvestDate)
}

func TestSearchByLocationID(t *testing.T) {
	repo, _ := newTestRepo(t)
	harvest(t, repo, 1, "2024-06-10", nil)
	harvest(t, repo, 2, "2024-06-12", nil)

	out, err := repo.Search(repository.SearchFilter{LocationID: 2})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Planter", out[0].LocationName)
}

func TestSummaryByPlanting(t *testing.T) {
	repo, _ := newTestRepo(t)
	harvest(t, repo, 1, "2024-06-10", f64Ptr(1.5))
	harvest(t, repo, 1, "2024-06-20", f64Ptr(2.0))
	harvest(t, repo, 2, "2024-06-12", f64Ptr(9.9))

	s, err := repo.SummaryByPlanting(1)
	require.NoError(t, err)
	assert.Equal(t, 2, s.HarvestCount)
	require.NotNil(t, s.TotalQuantity)
	assert.Equal(t, 3.5, *s.TotalQuantity)
	require.NotNil(t, s.FirstHarvestDate)
	assert.Equal(t, "2024-06-10", *s.FirstHarvestDate)
	require.NotNil(t, s.LastHarvestDate)
	assert.Equal(t, "2024-06-20", *s.LastHarvestDate)
}

func TestSummaryEmpty(t *testing.T) {
	repo, _ := newTestRepo(t)
	s, err := repo.SummaryByPlanting(1)
	require.NoError(t, err)
	assert.Zero(t, s.HarvestCount)
	assert.Nil(t, s.TotalQuantity)
	assert.Nil(t, s.FirstHarvestDate)
}

func TestRecentLimits(t *testing.T) {
	repo, _ := newTestRepo(t)
	harvest(t, repo, 1, "2024-06-10", nil)
	harvest(t, repo, 1, "2024-06-20", nil)
	harvest(t, repo, 1, "2024-06-30", nil)

	out, err := repo.Recent(2)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "2024-06-30", out[0].HarvestDate)
}
