package service

import "time"

// Per-day items, trimmed to what the calendar cell renders.

type CropItem struct {
	ID      uint    `json:"id"`
	Name    string  `json:"name"`
	Variety *string `json:"variety"`
}

type LocationItem struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type DiaryItem struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

type PlantingItem struct {
	ID           uint    `json:"id"`
	LocationID   uint    `json:"location_id"`
	CropName     string  `json:"crop_name"`
	Variety      *string `json:"variety"`
	LocationName string  `json:"location_name"`
}

type HarvestItem struct {
	ID               uint     `json:"id"`
	CropName         string   `json:"crop_name"`
	Variety          *string  `json:"variety"`
	Quantity         *float64 `json:"quantity"`
	Unit             *string  `json:"unit"`
	DaysFromPlanting *int     `json:"days_from_planting"`
}

// DayBucket aggregates everything dated to one day.
type DayBucket struct {
	Crops     []CropItem     `json:"crops"`
	Locations []LocationItem `json:"locations"`
	Diaries   []DiaryItem    `json:"diaries"`
	Plantings []PlantingItem `json:"location_crops"`
	Harvests  []HarvestItem  `json:"harvests"`
}

type CalendarService interface {
	// MonthData merges five independently dated sources into a sparse map
	// keyed by ISO date; days with no records are simply absent.
	MonthData(year, month int) (map[string]DayBucket, error)

	// Weeks returns the month grid, Sunday-first. Out-of-month cells are
	// nil, and callers must render both kinds.
	Weeks(year, month int) [][]*time.Time
}
