package repository

import "garden/entities"

// SearchFilter combines with AND semantics; zero values mean "no filter".
type SearchFilter struct {
	Keyword  string
	Status   string
	DateFrom string
	DateTo   string
}

type TaskRepository interface {
	Create(t *entities.Task) error
	FindByID(id uint) (*entities.Task, error)

	// All lists tasks ordered by due date ascending with nulls last, then
	// newest first. includeCompleted=false hides finished tasks.
	All(limit, offset int, includeCompleted bool) ([]entities.Task, error)

	Update(t *entities.Task) error
	UpdateStatus(id uint, status string) error
	Delete(id uint) error
	Count(status string) (int64, error)

	Search(f SearchFilter) ([]entities.Task, error)
	Pending(limit int) ([]entities.Task, error)
}
