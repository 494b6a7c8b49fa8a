package todos

// Todo is a shared household list entry, visible to every authenticated
// caller.
type Todo struct {
	ID     int64  `gorm:"primaryKey"`
	Title  string `gorm:"not null"`
	IsDone bool   `gorm:"not null;default:false"`
}
