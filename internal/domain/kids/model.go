package kids

import "time"

type Kid struct {
	ID          string    `gorm:"primaryKey"`
	ParentID    string    `gorm:"type:uuid;not null;index"`
	DisplayName string    `gorm:"not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}
