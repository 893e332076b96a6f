package repositoryImp

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"garden/entities"
	"garden/pkg/clock"
	"garden/pkg/diary/repository"
)

type diaryRepo struct {
	db  *gorm.DB
	clk clock.Clock
}

func New(db *gorm.DB, clk clock.Clock) repository.DiaryRepository { return &diaryRepo{db, clk} }

func (r *diaryRepo) Create(e *entities.DiaryEntry) error {
	now := r.clk.Now()
	e.CreatedAt = now
	e.UpdatedAt = now
	if e.Status == "" {
		e.Status = entities.DiaryPublished
	}
	if err := r.db.Create(e).Error; err != nil {
		return fmt.Errorf("%w: create diary entry: %v", entities.ErrStorage, err)
	}
	return nil
}

func (r *diaryRepo) FindByID(id uint) (*entities.DiaryEntry, error) {
	var e entities.DiaryEntry
	if err := r.db.First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: diary entry %d", entities.ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: find diary entry: %v", entities.ErrStorage, err)
	}
	return &e, nil
}

func (r *diaryRepo) All(limit, offset int) ([]entities.DiaryEntry, error) {
	q := r.db.Order("entry_date DESC, created_at DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	var out []entities.DiaryEntry
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("%w: list diary entries: %v", entities.ErrStorage, err)
	}
	return out, nil
}

func (r *diaryRepo) Update(e *entities.DiaryEntry) error {
	e.UpdatedAt = r.clk.Now()
	if err := r.db.Save(e).Error; err != nil {
		return fmt.Errorf("%w: update diary entry: %v", entities.ErrStorage, err)
	}
	return nil
}

func (r *diaryRepo) Delete(id uint) error {
	if err := r.db.Delete(&entities.DiaryEntry{}, id).Error; err != nil {
		return fmt.Errorf("%w: delete diary entry: %v", entities.ErrStorage, err)
	}
	return nil
}

func (r *diaryRepo) Count() (int64, error) {
	var n int64
	if err := r.db.Model(&entities.DiaryEntry{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("%w: count diary entries: %v", entities.ErrStorage, err)
	}
	return n, nil
}

func (r *diaryRepo) Search(keyword, dateFrom, dateTo string) ([]entities.DiaryEntry, error) {
	q := r.db.Model(&entities.DiaryEntry{})
	if keyword != "" {
		kw := "%" + keyword + "%"
		q = q.Where("title LIKE ? OR content LIKE ?", kw, kw)
	}
	if dateFrom != "" {
		q = q.Where("entry_date >= ?", dateFrom)
	}
	if dateTo != "" {
		q = q.Where("entry_date <= ?", dateTo)
	}
	var out []entities.DiaryEntry
	if err := q.Order("entry_date DESC, created_at DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("%w: search diary entries: %v", entities.ErrStorage, err)
	}
	return out, nil
}

func (r *diaryRepo) Recent(limit int) ([]entities.DiaryEntry, error) {
	var out []entities.DiaryEntry
	err := r.db.Order("entry_date DESC, created_at DESC").Limit(limit).Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("%w: recent diary entries: %v", entities.ErrStorage, err)
	}
	return out, nil
}

func (r *diaryRepo) Adjacent(id uint) (*entities.DiaryRef, *entities.DiaryRef, error) {
	cur, err := r.FindByID(id)
	if err != nil {
		return nil, nil, err
	}

	var prev, next entities.DiaryRef

	// Older neighbour. The (date, created_at, id) triple gives a total
	// order even when several entries share a date.
	errPrev := r.db.Model(&entities.DiaryEntry{}).
		Select("id, title, entry_date").
		Where(`entry_date < @d
			OR (entry_date = @d AND created_at < @c)
			OR (entry_date = @d AND created_at = @c AND id < @i)`,
			map[string]any{"d": cur.EntryDate, "c": cur.CreatedAt, "i": cur.ID}).
		Order("entry_date DESC, created_at DESC, id DESC").
		Limit(1).
		Scan(&prev).Error
	if errPrev != nil {
		return nil, nil, fmt.Errorf("%w: adjacent diary entries: %v", entities.ErrStorage, errPrev)
	}

	errNext := r.db.Model(&entities.DiaryEntry{}).
		Select("id, title, entry_date").
		Where(`entry_date > @d
			OR (entry_date = @d AND created_at > @c)
			OR (entry_date = @d AND created_at = @c AND id > @i)`,
			map[string]any{"d": cur.EntryDate, "c": cur.CreatedAt, "i": cur.ID}).
		Order("entry_date ASC, created_at ASC, id ASC").
		Limit(1).
		Scan(&next).Error
	if errNext != nil {
		return nil, nil, fmt.Errorf("%w: adjacent diary entries: %v", entities.ErrStorage, errNext)
	}

	var p, n *entities.DiaryRef
	if prev.ID != 0 {
		p = &prev
	}
	if next.ID != 0 {
		n = &next
	}
	return p, n, nil
}

func (r *diaryRepo) ByCrop(cropID uint) ([]entities.DiaryEntry, error) {
	var out []entities.DiaryEntry
	err := r.db.Raw(`SELECT DISTINCT de.*
		FROM diary_entries de
		JOIN diary_relations dr ON de.id = dr.diary_id
		WHERE dr.crop_id = ? OR dr.location_crop_id IN (
			SELECT id FROM plantings WHERE crop_id = ?
		)
		ORDER BY de.entry_date DESC`, cropID, cropID).Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("%w: diary entries by crop: %v", entities.ErrStorage, err)
	}
	return out, nil
}

func (r *diaryRepo) ByLocation(locationID uint) ([]entities.DiaryEntry, error) {
	var out []entities.DiaryEntry
	err := r.db.Raw(`SELECT DISTINCT de.*
		FROM diary_entries de
		JOIN diary_relations dr ON de.id = dr.diary_id
		WHERE dr.location_id = ? OR dr.location_crop_id IN (
			SELECT id FROM plantings WHERE location_id = ?
		)
		ORDER BY de.entry_date DESC`, locationID, locationID).Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("%w: diary entries by location: %v", entities.ErrStorage, err)
	}
	return out, nil
}
