package repository

import "garden/entities"

// SearchFilter combines with AND semantics; zero values mean "no filter".
type SearchFilter struct {
	Keyword    string
	DateFrom   string
	DateTo     string
	LocationID uint
	CropID     uint
}

type HarvestRepository interface {
	Create(h *entities.Harvest) error
	FindByID(id uint) (*entities.HarvestDetail, error)
	All(limit, offset int) ([]entities.HarvestDetail, error)
	Update(h *entities.Harvest) error
	Delete(id uint) error
	Count() (int64, error)

	ByPlanting(plantingID uint) ([]entities.HarvestDetail, error)
	ByLocation(locationID uint) ([]entities.HarvestDetail, error)
	ByCrop(cropID uint) ([]entities.HarvestDetail, error)
	Recent(limit int) ([]entities.HarvestDetail, error)
	Search(f SearchFilter) ([]entities.HarvestDetail, error)
	SummaryByPlanting(plantingID uint) (*entities.HarvestSummary, error)
}
