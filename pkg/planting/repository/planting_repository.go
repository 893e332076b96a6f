package repository

import "garden/entities"

type PlantingRepository interface {
	// Plant creates the record in the active state, with no position.
	Plant(p *entities.Planting) error

	FindByID(id uint) (*entities.PlantingDetail, error)
	Update(p *entities.Planting) error

	// Harvest and Remove are the two terminal status transitions. Neither
	// is reversible; Remove is distinct from Delete, which purges the row.
	Harvest(id uint) error
	Remove(id uint) error

	// Delete hard-deletes the planting and its harvest rows in one
	// transaction.
	Delete(id uint) error

	// ByLocation/ByCrop filter by status when status is non-empty.
	ByLocation(locationID uint, status string) ([]entities.PlantingDetail, error)
	ByCrop(cropID uint, status string) ([]entities.PlantingDetail, error)

	AllActive() ([]entities.PlantingDetail, error)
	CountActive() (int64, error)

	// WithPositions lists the active plantings of a location together with
	// their canvas coordinates.
	WithPositions(locationID uint) ([]entities.PlantingDetail, error)

	UpdatePosition(id uint, x, y float64) error

	// ClearPositionsExcept nulls the position of every active planting of
	// the location whose id is not in keep. An empty keep set clears all of
	// them.
	ClearPositionsExcept(locationID uint, keep map[uint]bool) error
}
