package tasks

import "time"

// Task is assigned to exactly one kid and created by exactly one parent.
// CompletedAt is set iff IsComplete; a task is completed at most once.
type Task struct {
	ID                int64      `gorm:"primaryKey"`
	Title             string     `gorm:"not null"`
	Points            int        `gorm:"not null"`
	AssignedKidID     string     `gorm:"not null;index"`
	CreatedByParentID string     `gorm:"type:uuid;not null;index"`
	IsComplete        bool       `gorm:"not null;default:false"`
	CompletedAt       *time.Time `gorm:""`
	CreatedAt         time.Time  `gorm:"autoCreateTime"`
}
