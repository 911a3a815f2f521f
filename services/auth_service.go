package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hotel-booking/models"
	"hotel-booking/repositories"
	"hotel-booking/utils"
)

type AuthService struct {
	store  *repositories.Store
	hasher utils.BcryptHasher
	tokens *utils.TokenManager
}

func NewAuthService(store *repositories.Store, hasher utils.BcryptHasher, tokens *utils.TokenManager) *AuthService {
	return &AuthService{store: store, hasher: hasher, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, email, password string) (*models.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := models.User{Email: normalizeEmail(email), HashedPassword: hash}
	if err := s.store.Users.Add(ctx, &u); err != nil {
		if errors.Is(err, repositories.ErrAlreadyExists) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &u, nil
}

// Login checks the credentials and returns a fresh access token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	u, err := s.store.Users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return "", nil, err
	}
	if u == nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := s.hasher.Compare(u.HashedPassword, password); err != nil {
		if errors.Is(err, utils.ErrPasswordMismatch) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	token, _, err := s.tokens.Issue(u.ID)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

func (s *AuthService) Me(ctx context.Context, userID uint) (*models.User, error) {
	u, err := s.store.Users.GetOne(ctx, repositories.Filter{"id": userID})
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return u, err
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
