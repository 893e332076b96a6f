package repository

import "garden/entities"

type CropRepository interface {
	Create(c *entities.Crop) error
	FindByID(id uint) (*entities.Crop, error)
	All() ([]entities.Crop, error)
	Search(keyword string) ([]entities.Crop, error)
	Update(c *entities.Crop) error
	Delete(id uint) error
	Count() (int64, error)
}
