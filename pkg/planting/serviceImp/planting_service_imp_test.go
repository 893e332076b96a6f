package serviceImp

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
	cropRepoImp "garden/pkg/crop/repositoryImp"
	locRepoImp "garden/pkg/location/repositoryImp"
	plantRepoImp "garden/pkg/planting/repositoryImp"
	"garden/pkg/planting/service"
)

func newTestSvc(t *testing.T) service.PlantingService {
	t.Helper()
	db := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	clk := clock.Fixed(time.Date(2024, 6, 1, 9, 0, 0, 0, clock.JST))
	require.NoError(t, db.Create(&entities.Crop{Name: "Tomato", CropType: "vegetable"}).Error)
	require.NoError(t, db.Create(&entities.Location{Name: "South bed", LocationType: "field"}).Error)
	return New(plantRepoImp.New(db, clk), cropRepoImp.New(db, clk), locRepoImp.New(db, clk))
}

func TestPlantParsesAndCreatesActive(t *testing.T) {
	svc := newTestSvc(t)

	id, err := svc.Plant(service.PlantInput{
		LocationID:  "1",
		CropID:      "1",
		PlantedDate: "2024-05-01",
		Quantity:    "6",
		Notes:       "started from seed",
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	got, err := svc.Get(id)
	require.NoError(t, err)
	assert.Equal(t, entities.PlantingActive, got.Status)
	require.NotNil(t, got.Quantity)
	assert.Equal(t, 6, *got.Quantity)
	require.NotNil(t, got.PlantedDate)
	assert.Equal(t, "2024-05-01", *got.PlantedDate)
}

func TestPlantRequiresIDs(t *testing.T) {
	svc := newTestSvc(t)

	_, err := svc.Plant(service.PlantInput{CropID: "1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, entities.ErrValidation))

	_, err = svc.Plant(service.PlantInput{LocationID: "1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, entities.ErrValidation))
}

func TestPlantRejectsNonNumericInput(t *testing.T) {
	svc := newTestSvc(t)

	_, err := svc.Plant(service.PlantInput{LocationID: "abc", CropID: "1"})
	assert.True(t, errors.Is(err, entities.ErrValidation))

	_, err = svc.Plant(service.PlantInput{LocationID: "1", CropID: "1", Quantity: "lots"})
	assert.True(t, errors.Is(err, entities.ErrValidation))
}

func TestPlantRejectsDanglingReferences(t *testing.T) {
	svc := newTestSvc(t)

	_, err := svc.Plant(service.PlantInput{LocationID: "99", CropID: "1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, entities.ErrValidation))

	_, err = svc.Plant(service.PlantInput{LocationID: "1", CropID: "99"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, entities.ErrValidation))
}

func TestUpdateRejectsUnknownStatus(t *testing.T) {
	svc := newTestSvc(t)
	id, err := svc.Plant(service.PlantInput{LocationID: "1", CropID: "1"})
	require.NoError(t, err)

	err = svc.Update(id, service.UpdateInput{Status: "dormant"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, entities.ErrValidation))
}

func TestUpdateChangesFields(t *testing.T) {
	svc := newTestSvc(t)
	id, err := svc.Plant(service.PlantInput{LocationID: "1", CropID: "1", Quantity: "3"})
	require.NoError(t, err)

	require.NoError(t, svc.Update(id, service.UpdateInput{
		PlantedDate: "2024-05-15",
		Quantity:    "4",
		Status:      entities.PlantingHarvested,
	}))

	got, err := svc.Get(id)
	require.NoError(t, err)
	assert.Equal(t, entities.PlantingHarvested, got.Status)
	require.NotNil(t, got.Quantity)
	assert.Equal(t, 4, *got.Quantity)
}

func TestUpdateUnknownID(t *testing.T) {
	svc := newTestSvc(t)
	err := svc.Update(42, service.UpdateInput{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, entities.ErrNotFound))
}

func TestLifecycleTransitions(t *testing.T) {
	svc := newTestSvc(t)
	id, err := svc.Plant(service.PlantInput{LocationID: "1", CropID: "1"})
	require.NoError(t, err)

	require.NoError(t, svc.MarkHarvested(id))
	got, err := svc.Get(id)
	require.NoError(t, err)
	assert.Equal(t, entities.PlantingHarvested, got.Status)

	n, err := svc.CountActive()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestActiveForLocation(t *testing.T) {
	svc := newTestSvc(t)
	a, err := svc.Plant(service.PlantInput{LocationID: "1", CropID: "1", PlantedDate: "2024-05-01"})
	require.NoError(t, err)
	b, err := svc.Plant(service.PlantInput{LocationID: "1", CropID: "1", PlantedDate: "2024-05-02"})
	require.NoError(t, err)
	require.NoError(t, svc.Remove(b))

	out, err := svc.ActiveForLocation(1)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, a, out[0].ID)
}
