package repositoryImp

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"garden/entities"
	"garden/pkg/clock"
	"garden/pkg/task/repository"
)

// SQLite sorts NULL first on ASC, so due-date ordering needs the explicit
// IS NULL key to push undated tasks to the end.
const dueOrder = "due_date IS NULL, due_date ASC, created_at DESC"

type taskRepo struct {
	db  *gorm.DB
	clk clock.Clock
}

func New(db *gorm.DB, clk clock.Clock) repository.TaskRepository { return &taskRepo{db, clk} }

func (r *taskRepo) Create(t *entities.Task) error {
	now := r.clk.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Status == "" {
		t.Status = entities.TaskPending
	}
	if err := r.db.Create(t).Error; err != nil {
		return fmt.Errorf("%w: create task: %v", entities.ErrStorage, err)
	}
	return nil
}

func (r *taskRepo) FindByID(id uint) (*entities.Task, error) {
	var t entities.Task
	if err := r.db.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: task %d", entities.ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: find task: %v", entities.ErrStorage, err)
	}
	return &t, nil
}

func (r *taskRepo) All(limit, offset int, includeCompleted bool) ([]entities.Task, error) {
	q := r.db.Order(dueOrder)
	if !includeCompleted {
		q = q.Where("status != ?", entities.TaskCompleted)
	}
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	var out []entities.Task
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("%w: list tasks: %v", entities.ErrStorage, err)
	}
	return out, nil
}

func (r *taskRepo) Update(t *entities.Task) error {
	t.UpdatedAt = r.clk.Now()
	if err := r.db.Save(t).Error; err != nil {
		return fmt.Errorf("%w: update task: %v", entities.ErrStorage, err)
	}
	return nil
}

func (r *taskRepo) UpdateStatus(id uint, status string) error {
	if !entities.ValidTaskStatus(status) {
		return fmt.Errorf("%w: unknown task status %q", entities.ErrValidation, status)
	}
	res := r.db.Model(&entities.Task{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": r.clk.Now()})
	if res.Error != nil {
		return fmt.Errorf("%w: update task status: %v", entities.ErrStorage, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: task %d", entities.ErrNotFound, id)
	}
	return nil
}

func (r *taskRepo) Delete(id uint) error {
	if err := r.db.Delete(&entities.Task{}, id).Error; err != nil {
		return fmt.Errorf("%w: delete task: %v", entities.ErrStorage, err)
	}
	return nil
}

func (r *taskRepo) Count(status string) (int64, error) {
	q := r.db.Model(&entities.Task{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return 0, fmt.Errorf("%w: count tasks: %v", entities.ErrStorage, err)
	}
	return n, nil
}

func (r *taskRepo) Search(f repository.SearchFilter) ([]entities.Task, error) {
	q := r.db.Model(&entities.Task{})
	if f.Keyword != "" {
		kw := "%" + f.Keyword + "%"
		q = q.Where("title LIKE ? OR description LIKE ?", kw, kw)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.DateFrom != "" {
		q = q.Where("due_date >= ?", f.DateFrom)
	}
	if f.DateTo != "" {
		q = q.Where("due_date <= ?", f.DateTo)
	}
	var out []entities.Task
	if err := q.Order(dueOrder).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("%w: search tasks: %v", entities.ErrStorage, err)
	}
	return out, nil
}

func (r *taskRepo) Pending(limit int) ([]entities.Task, error) {
	var out []entities.Task
	err := r.db.Where("status != ?", entities.TaskCompleted).
		Order(dueOrder).
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("%w: pending tasks: %v", entities.ErrStorage, err)
	}
	return out, nil
}
