package task

import "time"

// Task is a single to-do item owned by exactly one user. The owner is taken
// from the verified token at creation time and never changes afterwards.
type Task struct {
	ID        string    `gorm:"primarykey;size:36" json:"id"`
	Title     string    `gorm:"size:100;not null" json:"title"`
	Completed bool      `gorm:"not null;default:false" json:"completed"`
	UserID    string    `gorm:"size:128;not null;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the Task entity.
func (Task) TableName() string {
	return "tasks"
}
