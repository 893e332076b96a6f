package repository

import "garden/entities"

type DiaryRepository interface {
	Create(e *entities.DiaryEntry) error
	FindByID(id uint) (*entities.DiaryEntry, error)
	All(limit, offset int) ([]entities.DiaryEntry, error)
	Update(e *entities.DiaryEntry) error
	Delete(id uint) error
	Count() (int64, error)

	Search(keyword, dateFrom, dateTo string) ([]entities.DiaryEntry, error)
	Recent(limit int) ([]entities.DiaryEntry, error)

	// Adjacent returns the previous and next entries around id, ordered by
	// entry_date, then created_at, then id. Either side may be nil.
	Adjacent(id uint) (prev, next *entities.DiaryRef, err error)

	// ByCrop/ByLocation find entries related either directly or through a
	// planting of that crop/location.
	ByCrop(cropID uint) ([]entities.DiaryEntry, error)
	ByLocation(locationID uint) ([]entities.DiaryEntry, error)
}
