package repositoryImp

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"garden/entities"
	"garden/pkg/clock"
	"garden/pkg/location/repository"
)

type locationRepo struct {
	db  *gorm.DB
	clk clock.Clock
}

func New(db *gorm.DB, clk clock.Clock) repository.LocationRepository {
	return &locationRepo{db, clk}
}

func (r *locationRepo) Create(l *entities.Location) error {
	now := r.clk.Now()
	l.CreatedAt = now
	l.UpdatedAt = now
	if err := r.db.Create(l).Error; err != nil {
		return fmt.Errorf("%w: create location: %v", entities.ErrStorage, err)
	}
	return nil
}

func (r *locationRepo) FindByID(id uint) (*entities.Location, error) {
	var l entities.Location
	if err := r.db.First(&l, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: location %d", entities.ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: find location: %v", entities.ErrStorage, err)
	}
	return &l, nil
}

func (r *locationRepo) All() ([]entities.Location, error) {
	var out []entities.Location
	if err := r.db.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("%w: list locations: %v", entities.ErrStorage, err)
	}
	return out, nil
}

func (r *locationRepo) Search(keyword string) ([]entities.Location, error) {
	var out []entities.Location
	kw := "%" + keyword + "%"
	err := r.db.
		Where("name LIKE ? OR location_type LIKE ?", kw, kw).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("%w: search locations: %v", entities.ErrStorage, err)
	}
	return out, nil
}

func (r *locationRepo) Update(l *entities.Location) error {
	l.UpdatedAt = r.clk.Now()
	if err := r.db.Save(l).Error; err != nil {
		return fmt.Errorf("%w: update location: %v", entities.ErrStorage, err)
	}
	return nil
}

func (r *locationRepo) Delete(id uint) error {
	if err := r.db.Delete(&entities.Location{}, id).Error; err != nil {
		return fmt.Errorf("%w: delete location: %v", entities.ErrStorage, err)
	}
	return nil
}

func (r *locationRepo) Count() (int64, error) {
	var n int64
	if err := r.db.Model(&entities.Location{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("%w: count locations: %v", entities.ErrStorage, err)
	}
	return n, nil
}

func (r *locationRepo) SaveCanvasData(id uint, canvasJSON string) error {
	res := r.db.Model(&entities.Location{}).
		Where("id = ?", id).
		Updates(map[string]any{"canvas_data": canvasJSON, "updated_at": r.clk.Now()})
	if res.Error != nil {
		return fmt.Errorf("%w: save canvas: %v", entities.ErrStorage, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: location %d", entities.ErrNotFound, id)
	}
	return nil
}

func (r *locationRepo) CanvasData(id uint) (*string, error) {
	l, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	return l.CanvasData, nil
}
