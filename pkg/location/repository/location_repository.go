package repository

import "garden/entities"

type LocationRepository interface {
	Create(l *entities.Location) error
	FindByID(id uint) (*entities.Location, error)
	All() ([]entities.Location, error)
	Search(keyword string) ([]entities.Location, error)
	Update(l *entities.Location) error
	Delete(id uint) error
	Count() (int64, error)

	// SaveCanvasData overwrites the serialized layout blob. The blob is
	// opaque here; pkg/location's service extracts planting references.
	SaveCanvasData(id uint, canvasJSON string) error
	CanvasData(id uint) (*string, error)
}
