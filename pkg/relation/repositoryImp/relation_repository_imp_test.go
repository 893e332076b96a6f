package repositoryImp

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"garden/database"
	"garden/entities"
	"garden/pkg/relation"
)

func strPtr(s string) *string { return &s }

// seedDB opens a throwaway database with one crop, location, planting and
// harvest to relate against.
func seedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))

	crop := entities.Crop{Name: "Tomato", CropType: "vegetable", Variety: strPtr("Aiko")}
	require.NoError(t, db.Create(&crop).Error)
	loc := entities.Location{Name: "South bed", LocationType: "field"}
	require.NoError(t, db.Create(&loc).Error)
	planting := entities.Planting{
		LocationID:  loc.ID,
		CropID:      crop.ID,
		PlantedDate: strPtr("2024-04-01"),
		Status:      entities.PlantingActive,
	}
	require.NoError(t, db.Create(&planting).Error)
	harvest := entities.Harvest{PlantingID: planting.ID, HarvestDate: "2024-06-15"}
	require.NoError(t, db.Create(&harvest).Error)

	diary := entities.DiaryEntry{Title: "June notes", EntryDate: "2024-06-15", Status: entities.DiaryPublished}
	require.NoError(t, db.Create(&diary).Error)
	task := entities.Task{Title: "Weed the bed", Status: entities.TaskPending}
	require.NoError(t, db.Create(&task).Error)
	return db
}

func TestSaveAndGet(t *testing.T) {
	db := seedDB(t)
	repo := New(db, relation.DiaryOwner)

	in := relation.Input{
		CropIDs:     relation.IDList{1},
		LocationIDs: relation.IDList{1},
		PlantingIDs: relation.IDList{1},
		HarvestIDs:  relation.IDList{1},
	}
	require.NoError(t, repo.Save(1, in))

	b, err := repo.Get(1)
	require.NoError(t, err)

	require.Len(t, b.Crops, 1)
	assert.Equal(t, uint(1), b.Crops[0].CropID)
	assert.Equal(t, "Tomato", b.Crops[0].CropName)
	assert.Equal(t, "vegetable", b.Crops[0].CropType)

	require.Len(t, b.Locations, 1)
	assert.Equal(t, "South bed", b.Locations[0].LocationName)

	require.Len(t, b.Plantings, 1)
	assert.Equal(t, "Tomato", b.Plantings[0].CropName)
	assert.Equal(t, "South bed", b.Plantings[0].LocationName)
	assert.Equal(t, entities.PlantingActive, b.Plantings[0].Status)

	require.Len(t, b.Harvests, 1)
	assert.Equal(t, "2024-06-15", b.Harvests[0].HarvestDate)
}

func TestSaveReplacesEverything(t *testing.T) {
	db := seedDB(t)
	repo := New(db, relation.DiaryOwner)

	require.NoError(t, repo.Save(1, relation.Input{
		CropIDs:    relation.IDList{1},
		HarvestIDs: relation.IDList{1},
	}))
	require.NoError(t, repo.Save(1, relation.Input{
		LocationIDs: relation.IDList{1},
	}))

	b, err := repo.Get(1)
	require.NoError(t, err)
	assert.Empty(t, b.Crops)
	assert.Empty(t, b.Harvests)
	assert.Len(t, b.Locations, 1)
}

func TestSaveEmptyInputClears(t *testing.T) {
	db := seedDB(t)
	repo := New(db, relation.DiaryOwner)

	require.NoError(t, repo.Save(1, relation.Input{
		CropIDs:     relation.IDList{1},
		PlantingIDs: relation.IDList{1},
	}))
	require.NoError(t, repo.Save(1, relation.Input{}))

	b, err := repo.Get(1)
	require.NoError(t, err)
	assert.Empty(t, b.Crops)
	assert.Empty(t, b.Locations)
	assert.Empty(t, b.Plantings)
	assert.Empty(t, b.Harvests)
}

func TestSaveDedupsIDs(t *testing.T) {
	db := seedDB(t)
	repo := New(db, relation.DiaryOwner)

	require.NoError(t, repo.Save(1, relation.Input{
		CropIDs: relation.IDList{1, 1, 1},
	}))

	b, err := repo.Get(1)
	require.NoError(t, err)
	assert.Len(t, b.Crops, 1)
}

func TestSaveIsIdempotent(t *testing.T) {
	db := seedDB(t)
	repo := New(db, relation.DiaryOwner)

	in := relation.Input{CropIDs: relation.IDList{1}, LocationIDs: relation.IDList{1}}
	require.NoError(t, repo.Save(1, in))
	require.NoError(t, repo.Save(1, in))

	b, err := repo.Get(1)
	require.NoError(t, err)
	assert.Len(t, b.Crops, 1)
	assert.Len(t, b.Locations, 1)
}

func TestGetNoRelationsReturnsEmptySlices(t *testing.T) {
	db := seedDB(t)
	repo := New(db, relation.DiaryOwner)

	b, err := repo.Get(1)
	require.NoError(t, err)
	assert.NotNil(t, b.Crops)
	assert.NotNil(t, b.Locations)
	assert.NotNil(t, b.Plantings)
	assert.NotNil(t, b.Harvests)
	assert.Empty(t, b.Crops)
}

func TestOwnersAreIsolated(t *testing.T) {
	db := seedDB(t)
	diaries := New(db, relation.DiaryOwner)
	tasks := New(db, relation.TaskOwner)

	require.NoError(t, diaries.Save(1, relation.Input{CropIDs: relation.IDList{1}}))
	require.NoError(t, tasks.Save(1, relation.Input{LocationIDs: relation.IDList{1}}))

	db1, err := diaries.Get(1)
	require.NoError(t, err)
	assert.Len(t, db1.Crops, 1)
	assert.Empty(t, db1.Locations)

	tb, err := tasks.Get(1)
	require.NoError(t, err)
	assert.Empty(t, tb.Crops)
	assert.Len(t, tb.Locations, 1)
}

func TestRowsPopulateExactlyOneForeignKey(t *testing.T) {
	db := seedDB(t)
	repo := New(db, relation.DiaryOwner)

	require.NoError(t, repo.Save(1, relation.Input{
		CropIDs:     relation.IDList{1},
		LocationIDs: relation.IDList{1},
		PlantingIDs: relation.IDList{1},
		HarvestIDs:  relation.IDList{1},
	}))

	var rows []entities.DiaryRelation
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 4)
	for _, r := range rows {
		populated := 0
		if r.CropID != nil {
			populated++
		}
		if r.LocationID != nil {
			populated++
		}
		if r.PlantingID != nil {
			populated++
		}
		if r.HarvestID != nil {
			populated++
		}
		assert.Equal(t, 1, populated, "relation_type=%s", r.RelationType)
	}
}
