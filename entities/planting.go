package entities

import "time"

// Planting lifecycle states. Harvested and removed are dead ends; nothing
// transitions a planting back to active.
const (
	PlantingActive    = "active"
	PlantingHarvested = "harvested"
	PlantingRemoved   = "removed"
)

// Planting ties one crop to one location for a single cultivation cycle.
// Position is only meaningful while the planting is active; canvas
// reconciliation clears it when the shape disappears from the layout.
type Planting struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	LocationID  uint     `gorm:"index" json:"location_id"`
	CropID      uint     `gorm:"index" json:"crop_id"`
	PlantedDate *string  `json:"planted_date"` // YYYY-MM-DD
	Quantity    *int     `json:"quantity"`
	Notes       *string  `json:"notes"`
	Status      string   `gorm:"index" json:"status"` // active|harvested|removed
	PositionX   *float64 `json:"position_x"`
	PositionY   *float64 `json:"position_y"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PlantingDetail is a planting joined with its crop and location display fields.
type PlantingDetail struct {
	Planting
	CropName     string  `json:"crop_name"`
	CropType     string  `json:"crop_type"`
	Variety      *string `json:"variety"`
	LocationName string  `json:"location_name"`
	LocationType string  `json:"location_type"`
}
