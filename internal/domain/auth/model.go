package auth

import "time"

// Role is a closed set. Tokens carrying anything else are rejected outright.
type Role string

const (
	RoleParent Role = "Parent"
	RoleKid    Role = "Kid"
)

func ParseRole(value string) (Role, bool) {
	switch Role(value) {
	case RoleParent:
		return RoleParent, true
	case RoleKid:
		return RoleKid, true
	default:
		return "", false
	}
}

// User is a stored login identity. Only Parent users are ever created; kids
// never have a password of their own.
type User struct {
	ID           string    `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"not null;uniqueIndex"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"not null;default:Parent"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// Identity is the resolved caller of a request. For RoleParent, UserID is the
// parent's user id and KidID/ParentID are empty. For RoleKid, UserID and KidID
// are the acting kid's id and ParentID is the parent that minted the token.
type Identity struct {
	Role     Role
	UserID   string
	KidID    string
	ParentID string
}

// KidSession is the result of a parent minting a kid credential.
type KidSession struct {
	Token       string
	KidID       string
	DisplayName string
}
