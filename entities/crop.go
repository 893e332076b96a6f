package entities

import "time"

type Crop struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	Name            string  `json:"name"`
	CropType        string  `json:"crop_type"` // vegetable|fruit|herb|flower|other
	Variety         *string `json:"variety"`
	Characteristics *string `json:"characteristics"`
	PlantingSeason  *string `json:"planting_season"`
	HarvestSeason   *string `json:"harvest_season"`
	Notes           *string `json:"notes"`
	ImagePath       *string `json:"image_path"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
