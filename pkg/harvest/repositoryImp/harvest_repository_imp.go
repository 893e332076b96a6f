package repositoryImp

import (
	"fmt"

	"gorm.io/gorm"

	"garden/entities"
	"garden/pkg/clock"
	"garden/pkg/harvest/repository"
)

type harvestRepo struct {
	db  *gorm.DB
	clk clock.Clock
}

func New(db *gorm.DB, clk clock.Clock) repository.HarvestRepository {
	return &harvestRepo{db, clk}
}

const detailSelect = `h.*,
	c.name AS crop_name,
	l.name AS location_name, l.id AS location_id,
	lc.planted_date`

func (r *harvestRepo) detailQuery() *gorm.DB {
	return r.db.Table("harvests h").
		Select(detailSelect).
		Joins("JOIN plantings lc ON h.planting_id = lc.id").
		Joins("JOIN crops c ON lc.crop_id = c.id").
		Joins("JOIN locations l ON lc.location_id = l.id")
}

func fillDays(out []entities.HarvestDetail) []entities.HarvestDetail {
	for i := range out {
		out[i].DaysFromPlanting = entities.DaysFromPlanting(out[i].PlantedDate, out[i].HarvestDate)
	}
	return out
}

func (r *harvestRepo) Create(h *entities.Harvest) error {
	now := r.clk.Now()
	h.CreatedAt = now
	h.UpdatedAt = now
	if err := r.db.Create(h).Error; err != nil {
		return fmt.Errorf("%w: create harvest: %v", entities.ErrStorage, err)
	}
	return nil
}

func (r *harvestRepo) FindByID(id uint) (*entities.HarvestDetail, error) {
	var d entities.HarvestDetail
	if err := r.detailQuery().Where("h.id = ?", id).Scan(&d).Error; err != nil {
		return nil, fmt.Errorf("%w: find harvest: %v", entities.ErrStorage, err)
	}
	if d.ID == 0 {
		return nil, fmt.Errorf("%w: harvest %d", entities.ErrNotFound, id)
	}
	d.DaysFromPlanting = entities.DaysFromPlanting(d.PlantedDate, d.HarvestDate)
	return &d, nil
}

func (r *harvestRepo) All(limit, offset int) ([]entities.HarvestDetail, error) {
	q := r.detailQuery().Order("h.harvest_date DESC, h.created_at DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	var out []entities.HarvestDetail
	if err := q.Scan(&out).Error; err != nil {
		return nil, fmt.Errorf("%w: list harvests: %v", entities.ErrStorage, err)
	}
	return fillDays(out), nil
}

func (r *harvestRepo) Update(h *entities.Harvest) error {
	h.UpdatedAt = r.clk.Now()
	if err := r.db.Save(h).Error; err != nil {
		return fmt.Errorf("%w: update harvest: %v", entities.ErrStorage, err)
	}
	return nil
}

func (r *harvestRepo) Delete(id uint) error {
	if err := r.db.Delete(&entities.Harvest{}, id).Error; err != nil {
		return fmt.Errorf("%w: delete harvest: %v", entities.ErrStorage, err)
	}
	return nil
}

func (r *harvestRepo) Count() (int64, error) {
	var n int64
	if err := r.db.Model(&entities.Harvest{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("%w: count harvests: %v", entities.ErrStorage, err)
	}
	return n, nil
}

func (r *harvestRepo) ByPlanting(plantingID uint) ([]entities.HarvestDetail, error) {
	var out []entities.HarvestDetail
	err := r.detailQuery().
		Where("h.planting_id = ?", plantingID).
		Order("h.harvest_date DESC").
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("%w: harvests by planting: %v", entities.ErrStorage, err)
	}
	return fillDays(out), nil
}

func (r *harvestRepo) ByLocation(locationID uint) ([]entities.HarvestDetail, error) {
	var out []entities.HarvestDetail
	err := r.detailQuery().
		Where("lc.location_id = ?", locationID).
		Order("h.harvest_date DESC").
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("%w: harvests by location: %v", entities.ErrStorage, err)
	}
	return fillDays(out), nil
}

func (r *harvestRepo) ByCrop(cropID uint) ([]entities.HarvestDetail, error) {
	var out []entities.HarvestDetail
	err := r.detailQuery().
		Where("lc.crop_id = ?", cropID).
		Order("h.harvest_date DESC").
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("%w: harvests by crop: %v", entities.ErrStorage, err)
	}
	return fillDays(out), nil
}

func (r *harvestRepo) Recent(limit int) ([]entities.HarvestDetail, error) {
	var out []entities.HarvestDetail
	err := r.detailQuery().
		Order("h.harvest_date DESC, h.created_at DESC").
		Limit(limit).
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("%w: recent harvests: %v", entities.ErrStorage, err)
	}
	return fillDays(out), nil
}

func (r *harvestRepo) Search(f repository.SearchFilter) ([]entities.HarvestDetail, error) {
	q := r.detailQuery()
	if f.Keyword != "" {
		kw := "%" + f.Keyword + "%"
		q = q.Where("c.name LIKE ? OR l.name LIKE ? OR h.notes LIKE ?", kw, kw, kw)
	}
	if f.DateFrom != "" {
		q = q.Where("h.harvest_date >= ?", f.DateFrom)
	}
	if f.DateTo != "" {
		q = q.Where("h.harvest_date <= ?", f.DateTo)
	}
	if f.LocationID != 0 {
		q = q.Where("lc.location_id = ?", f.LocationID)
	}
	if f.CropID != 0 {
		q = q.Where("lc.crop_id = ?", f.CropID)
	}
	var out []entities.HarvestDetail
	if err := q.Order("h.harvest_date DESC, h.created_at DESC").Scan(&out).Error; err != nil {
		return nil, fmt.Errorf("%w: search harvests: %v", entities.ErrStorage, err)
	}
	return fillDays(out), nil
}

func (r *harvestRepo) SummaryByPlanting(plantingID uint) (*entities.HarvestSummary, error) {
	var s entities.HarvestSummary
	err := r.db.Table("harvests").
		Select(`COUNT(*) AS harvest_count,
			SUM(quantity) AS total_quantity,
			MIN(harvest_date) AS first_harvest_date,
			MAX(harvest_date) AS last_harvest_date`).
		Where("planting_id = ?", plantingID).
		Scan(&s).Error
	if err != nil {
		return nil, fmt.Errorf("%w: harvest summary: %v", entities.ErrStorage, err)
	}
	return &s, nil
}
