package service

import "garden/entities"

type LocationService interface {
	// SaveCanvas persists the raw layout blob against the location, then
	// reconciles planting positions: any active planting of the location
	// not referenced by a shape loses its position. An empty layout clears
	// every active planting's position.
	SaveCanvas(locationID uint, raw []byte) error

	// Canvas returns the stored layout parsed back to a generic map, or
	// nil when no layout (or an unreadable one) is stored.
	Canvas(locationID uint) (map[string]any, error)

	// Delete removes the location and cascades its plantings (and their
	// harvests). Blocked while the location still has active plantings.
	Delete(id uint) error

	PlantingsWithPositions(locationID uint) ([]entities.PlantingDetail, error)
}
