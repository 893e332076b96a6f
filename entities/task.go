package entities

import "time"

const (
	TaskPending    = "pending"
	TaskInProgress = "in_progress"
	TaskCompleted  = "completed"
)

var validTaskStatus = map[string]bool{
	TaskPending:    true,
	TaskInProgress: true,
	TaskCompleted:  true,
}

// ValidTaskStatus reports whether s is a recognized task status.
func ValidTaskStatus(s string) bool { return validTaskStatus[s] }

type Task struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`            // YYYY-MM-DD
	Status      string  `gorm:"index" json:"status"` // pending|in_progress|completed

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
