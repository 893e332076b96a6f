package entities

import "time"

const (
	DiaryPublished = "published"
	DiaryDraft     = "draft"
)

type DiaryEntry struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Title     string  `json:"title"`
	Content   *string `json:"content"`
	EntryDate string  `gorm:"index" json:"entry_date"` // the date the entry is about, not when it was written
	Weather   *string `json:"weather"`
	Status    string  `json:"status"` // published|draft
	ImagePath *string `json:"image_path"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DiaryRef is the shortened form used by adjacent-entry navigation.
type DiaryRef struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	EntryDate string `json:"entry_date"`
}
