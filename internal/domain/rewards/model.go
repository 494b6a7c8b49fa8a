package rewards

import "time"

// Reward is a global catalog entry; it is not owned by any parent or kid.
type Reward struct {
	ID        int64     `gorm:"primaryKey"`
	Name      string    `gorm:"not null"`
	Cost      int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// Redemption records that a kid redeemed a reward at an instant. Rows are
// append-only: there is no refund or reversal path.
type Redemption struct {
	ID         int64     `gorm:"primaryKey"`
	KidID      string    `gorm:"not null;index"`
	RewardID   int64     `gorm:"not null"`
	RedeemedAt time.Time `gorm:"not null"`
}

// RedemptionResult reports the committed redemption and the balance after it.
type RedemptionResult struct {
	KidID      string
	NewPoints  int
	Redemption Redemption
}
