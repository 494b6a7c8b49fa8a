package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenLeeway absorbs clock skew between issuer and validator.
const tokenLeeway = time.Minute

type claims struct {
	Role     string `json:"role"`
	KidID    string `json:"kidId,omitempty"`
	ParentID string `json:"parentId,omitempty"`
	jwt.RegisteredClaims
}

// TokenCodec issues and validates the HMAC-signed bearer credentials. The
// signing secret is injected at construction; there is no package-level state.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenCodec(secret string, ttl time.Duration) (*TokenCodec, error) {
	if secret == "" {
		return nil, fmt.Errorf("token codec: signing secret is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token codec: ttl must be positive")
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl}, nil
}

// IssueParent mints a Parent credential for the given user id.
func (c *TokenCodec) IssueParent(userID string) (string, error) {
	return c.sign(claims{
		Role: string(RoleParent),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(c.ttl)),
		},
	})
}

// IssueKid mints a Kid credential scoped to one kid, recording the minting
// parent. The subject is the kid id, matching the parent-token shape.
func (c *TokenCodec) IssueKid(kidID, parentID string) (string, error) {
	return c.sign(claims{
		Role:     string(RoleKid),
		KidID:    kidID,
		ParentID: parentID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   kidID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(c.ttl)),
		},
	})
}

func (c *TokenCodec) sign(payload claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate parses and verifies a bearer token and resolves it to an Identity.
// Expired, malformed, badly signed, and unknown-role tokens all come back as
// ErrInvalidToken.
func (c *TokenCodec) Validate(tokenString string) (Identity, error) {
	var parsed claims
	_, err := jwt.ParseWithClaims(tokenString, &parsed,
		func(*jwt.Token) (interface{}, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(tokenLeeway),
	)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}

	role, ok := ParseRole(parsed.Role)
	if !ok || parsed.Subject == "" {
		return Identity{}, ErrInvalidToken
	}

	identity := Identity{Role: role, UserID: parsed.Subject}
	switch role {
	case RoleParent:
		// Parent credentials never carry a kid scope.
	case RoleKid:
		identity.KidID = parsed.KidID
		if identity.KidID == "" {
			identity.KidID = parsed.Subject
		}
		identity.ParentID = parsed.ParentID
	}

	return identity, nil
}
