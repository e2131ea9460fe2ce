package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	appErrors "github.com/saishivaaditya/market/internal/errors"
	"github.com/saishivaaditya/market/internal/model"
	"github.com/saishivaaditya/market/internal/repository"
)

type AuthService struct {
	Users repository.UserRepositoryInterface
}

// Register creates an account with a bcrypt-hashed credential. The plaintext
// password is never stored.
func (s *AuthService) Register(ctx context.Context, name, email, password string) error {
	if name == "" || email == "" || password == "" {
		return appErrors.ErrMissingFields
	}

	existing, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return appErrors.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.Users.Create(ctx, &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	})
}

// Login verifies the credential via bcrypt comparison. Unknown address and
// wrong password return the same error so neither is distinguishable.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, appErrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, appErrors.ErrInvalidCredentials
	}
	return user, nil
}
