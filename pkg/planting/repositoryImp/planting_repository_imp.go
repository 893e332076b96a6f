package repositoryImp

import (
	"fmt"

	"gorm.io/gorm"

	"garden/entities"
	"garden/pkg/clock"
	"garden/pkg/planting/repository"
)

type plantingRepo struct {
	db  *gorm.DB
	clk clock.Clock
}

func New(db *gorm.DB, clk clock.Clock) repository.PlantingRepository {
	return &plantingRepo{db, clk}
}

const detailSelect = `lc.*,
	c.name AS crop_name, c.crop_type, c.variety,
	l.name AS location_name, l.location_type`

func (r *plantingRepo) detailQuery() *gorm.DB {
	return r.db.Table("plantings lc").
		Select(detailSelect).
		Joins("JOIN crops c ON lc.crop_id = c.id").
		Joins("JOIN locations l ON lc.location_id = l.id")
}

func (r *plantingRepo) Plant(p *entities.Planting) error {
	now := r.clk.Now()
	p.Status = entities.PlantingActive
	p.PositionX = nil
	p.PositionY = nil
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := r.db.Create(p).Error; err != nil {
		return fmt.Errorf("%w: plant: %v", entities.ErrStorage, err)
	}
	return nil
}

func (r *plantingRepo) FindByID(id uint) (*entities.PlantingDetail, error) {
	var d entities.PlantingDetail
	err := r.detailQuery().Where("lc.id = ?", id).Scan(&d).Error
	if err != nil {
		return nil, fmt.Errorf("%w: find planting: %v", entities.ErrStorage, err)
	}
	if d.ID == 0 {
		return nil, fmt.Errorf("%w: planting %d", entities.ErrNotFound, id)
	}
	return &d, nil
}

func (r *plantingRepo) Update(p *entities.Planting) error {
	p.UpdatedAt = r.clk.Now()
	if err := r.db.Save(p).Error; err != nil {
		return fmt.Errorf("%w: update planting: %v", entities.ErrStorage, err)
	}
	return nil
}

func (r *plantingRepo) Harvest(id uint) error {
	return r.setStatus(id, entities.PlantingHarvested)
}

func (r *plantingRepo) Remove(id uint) error {
	return r.setStatus(id, entities.PlantingRemoved)
}

// setStatus stamps updated_at but never touches position; only canvas
// reconciliation clears stale placements.
func (r *plantingRepo) setStatus(id uint, status string) error {
	res := r.db.Model(&entities.Planting{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": r.clk.Now()})
	if res.Error != nil {
		return fmt.Errorf("%w: set planting status: %v", entities.ErrStorage, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: planting %d", entities.ErrNotFound, id)
	}
	return nil
}

// Delete purges the row and its harvests together, so no harvest is left
// referencing a planting that no longer exists.
func (r *plantingRepo) Delete(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("planting_id = ?", id).Delete(&entities.Harvest{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Planting{}, id).Error
	})
	if err != nil {
		return fmt.Errorf("%w: delete planting: %v", entities.ErrStorage, err)
	}
	return nil
}

func (r *plantingRepo) ByLocation(locationID uint, status string) ([]entities.PlantingDetail, error) {
	q := r.detailQuery().Where("lc.location_id = ?", locationID)
	if status != "" {
		q = q.Where("lc.status = ?", status)
	}
	var out []entities.PlantingDetail
	if err := q.Order("lc.planted_date DESC").Scan(&out).Error; err != nil {
		return nil, fmt.Errorf("%w: plantings by location: %v", entities.ErrStorage, err)
	}
	return out, nil
}

func (r *plantingRepo) ByCrop(cropID uint, status string) ([]entities.PlantingDetail, error) {
	q := r.detailQuery().Where("lc.crop_id = ?", cropID)
	if status != "" {
		q = q.Where("lc.status = ?", status)
	}
	var out []entities.PlantingDetail
	if err := q.Order("lc.planted_date DESC").Scan(&out).Error; err != nil {
		return nil, fmt.Errorf("%w: plantings by crop: %v", entities.ErrStorage, err)
	}
	return out, nil
}

func (r *plantingRepo) AllActive() ([]entities.PlantingDetail, error) {
	var out []entities.PlantingDetail
	err := r.detailQuery().
		Where("lc.status = ?", entities.PlantingActive).
		Order("lc.planted_date DESC").
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("%w: active plantings: %v", entities.ErrStorage, err)
	}
	return out, nil
}

func (r *plantingRepo) CountActive() (int64, error) {
	var n int64
	err := r.db.Model(&entities.Planting{}).
		Where("status = ?", entities.PlantingActive).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("%w: count active plantings: %v", entities.ErrStorage, err)
	}
	return n, nil
}

func (r *plantingRepo) WithPositions(locationID uint) ([]entities.PlantingDetail, error) {
	return r.ByLocation(locationID, entities.PlantingActive)
}

func (r *plantingRepo) UpdatePosition(id uint, x, y float64) error {
	res := r.db.Model(&entities.Planting{}).
		Where("id = ?", id).
		Updates(map[string]any{"position_x": x, "position_y": y, "updated_at": r.clk.Now()})
	if res.Error != nil {
		return fmt.Errorf("%w: update position: %v", entities.ErrStorage, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: planting %d", entities.ErrNotFound, id)
	}
	return nil
}

func (r *plantingRepo) ClearPositionsExcept(locationID uint, keep map[uint]bool) error {
	upd := map[string]any{"position_x": nil, "position_y": nil, "updated_at": r.clk.Now()}

	// Empty canvas: one statement un-places every active planting here.
	if len(keep) == 0 {
		err := r.db.Model(&entities.Planting{}).
			Where("location_id = ? AND status = ?", locationID, entities.PlantingActive).
			Updates(upd).Error
		if err != nil {
			return fmt.Errorf("%w: clear positions: %v", entities.ErrStorage, err)
		}
		return nil
	}

	ids := make([]uint, 0, len(keep))
	for id := range keep {
		ids = append(ids, id)
	}
	err := r.db.Model(&entities.Planting{}).
		Where("location_id = ? AND status = ? AND id NOT IN ?", locationID, entities.PlantingActive, ids).
		Updates(upd).Error
	if err != nil {
		return fmt.Errorf("%w: clear positions: %v", entities.ErrStorage, err)
	}
	return nil
}
