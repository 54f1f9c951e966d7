package entity

import "time"

// Todo is the task record persisted in the todos table. Timestamps are managed by
// the service layer, not by gorm: created_at is set once at creation and updated_at
// stays null until the first mutating update.
type Todo struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Title     string     `json:"title" gorm:"size:255;not null;uniqueIndex"`
	Completed bool       `json:"completed" gorm:"not null;default:false"`
	Priority  string     `json:"priority" gorm:"size:10;not null;default:Medium"`
	Deadline  *time.Time `json:"deadline" gorm:"type:date"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime:false;not null"`
	UpdatedAt *time.Time `json:"updated_at" gorm:"autoUpdateTime:false"`
}
