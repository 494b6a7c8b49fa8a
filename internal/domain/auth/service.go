package auth

import (
	"context"
	"errors"
	"strings"

	"kidpoints/internal/domain/kids"
)

// KidDirectory is the slice of the kids domain the auth flow needs: resolve a
// kid only when the requesting parent owns it.
type KidDirectory interface {
	GetOwnedKid(ctx context.Context, kidID, parentID string) (*kids.Kid, error)
}

type Service struct {
	users Repository
	kids  KidDirectory
	codec *TokenCodec
}

func NewService(users Repository, directory KidDirectory, codec *TokenCodec) *Service {
	return &Service{users: users, kids: directory, codec: codec}
}

// Login verifies a parent's username and password and issues a Parent
// credential. Unknown usernames and wrong passwords are indistinguishable to
// the caller.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	user, err := s.users.GetParentByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !VerifyPassword(user.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}

	return s.codec.IssueParent(user.ID)
}

// MintKidSession exchanges a parent identity plus an owned kid id for an
// independent Kid credential. The Parent credential stays valid; holding both
// at once is the supported model.
func (s *Service) MintKidSession(ctx context.Context, parentID, kidID string) (*KidSession, error) {
	kid, err := s.kids.GetOwnedKid(ctx, kidID, parentID)
	if err != nil {
		return nil, err
	}

	token, err := s.codec.IssueKid(kid.ID, parentID)
	if err != nil {
		return nil, err
	}

	return &KidSession{
		Token:       token,
		KidID:       kid.ID,
		DisplayName: kid.DisplayName,
	}, nil
}
