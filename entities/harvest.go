package entities

import "time"

type Harvest struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	PlantingID  uint     `gorm:"index" json:"planting_id"`
	HarvestDate string   `json:"harvest_date"` // YYYY-MM-DD
	Quantity    *float64 `json:"quantity"`
	Unit        *string  `json:"unit"`
	Notes       *string  `json:"notes"`
	ImagePath   *string  `json:"image_path"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HarvestDetail joins a harvest with its planting chain for display.
// DaysFromPlanting is derived; nil when either date is absent or malformed.
type HarvestDetail struct {
	Harvest
	CropName         string  `json:"crop_name"`
	LocationName     string  `json:"location_name"`
	LocationID       uint    `json:"location_id"`
	PlantedDate      *string `json:"planted_date"`
	DaysFromPlanting *int    `json:"days_from_planting"`
}

// HarvestSummary aggregates the harvests of one planting.
type HarvestSummary struct {
	HarvestCount     int      `json:"harvest_count"`
	TotalQuantity    *float64 `json:"total_quantity"`
	FirstHarvestDate *string  `json:"first_harvest_date"`
	LastHarvestDate  *string  `json:"last_harvest_date"`
}
