package entities

import "time"

type Location struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Name         string  `json:"name"`
	LocationType string  `json:"location_type"` // field|planter|greenhouse|indoor|other
	AreaSize     *string `json:"area_size"`
	SunExposure  *string `json:"sun_exposure"` // full|partial|shade
	Notes        *string `json:"notes"`
	ImagePath    *string `json:"image_path"`
	CanvasData   *string `json:"canvas_data"` // serialized layout, opaque to storage

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
