package service

import "garden/entities"

// PlantInput carries the raw form values of a plant action. Numeric fields
// arrive as text and are validated during Plant.
type PlantInput struct {
	LocationID  string
	CropID      string
	PlantedDate string
	Quantity    string
	Notes       string
}

type UpdateInput struct {
	PlantedDate string
	Quantity    string
	Notes       string
	Status      string
}

type PlantingService interface {
	// Plant validates the input, checks that the referenced location and
	// crop exist, and creates the planting in the active state.
	Plant(in PlantInput) (uint, error)

	Get(id uint) (*entities.PlantingDetail, error)
	Update(id uint, in UpdateInput) error

	// MarkHarvested and Remove are terminal transitions; Delete purges the
	// row and its harvests.
	MarkHarvested(id uint) error
	Remove(id uint) error
	Delete(id uint) error

	ActiveForLocation(locationID uint) ([]entities.PlantingDetail, error)
	ActiveForCrop(cropID uint) ([]entities.PlantingDetail, error)
	AllActive() ([]entities.PlantingDetail, error)
	CountActive() (int64, error)
	UpdatePosition(id uint, x, y float64) error
}
