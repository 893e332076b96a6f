package repositoryImp

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"garden/entities"
	"garden/pkg/clock"
	"garden/pkg/crop/repository"
)

type cropRepo struct {
	db  *gorm.DB
	clk clock.Clock
}

func New(db *gorm.DB, clk clock.Clock) repository.CropRepository { return &cropRepo{db, clk} }

func (r *cropRepo) Create(c *entities.Crop) error {
	now := r.clk.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	if err := r.db.Create(c).Error; err != nil {
		return fmt.Errorf("%w: create crop: %v", entities.ErrStorage, err)
	}
	return nil
}

func (r *cropRepo) FindByID(id uint) (*entities.Crop, error) {
	var c entities.Crop
	if err := r.db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: crop %d", entities.ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: find crop: %v", entities.ErrStorage, err)
	}
	return &c, nil
}

func (r *cropRepo) All() ([]entities.Crop, error) {
	var out []entities.Crop
	if err := r.db.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("%w: list crops: %v", entities.ErrStorage, err)
	}
	return out, nil
}

func (r *cropRepo) Search(keyword string) ([]entities.Crop, error) {
	var out []entities.Crop
	kw := "%" + keyword + "%"
	err := r.db.
		Where("name LIKE ? OR crop_type LIKE ? OR variety LIKE ?", kw, kw, kw).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("%w: search crops: %v", entities.ErrStorage, err)
	}
	return out, nil
}

func (r *cropRepo) Update(c *entities.Crop) error {
	c.UpdatedAt = r.clk.Now()
	if err := r.db.Save(c).Error; err != nil {
		return fmt.Errorf("%w: update crop: %v", entities.ErrStorage, err)
	}
	return nil
}

func (r *cropRepo) Delete(id uint) error {
	if err := r.db.Delete(&entities.Crop{}, id).Error; err != nil {
		return fmt.Errorf("%w: delete crop: %v", entities.ErrStorage, err)
	}
	return nil
}

func (r *cropRepo) Count() (int64, error) {
	var n int64
	if err := r.db.Model(&entities.Crop{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("%w: count crops: %v", entities.ErrStorage, err)
	}
	return n, nil
}
