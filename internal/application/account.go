package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"cropai/internal/domain"
	"cropai/internal/domain/entities"
	"cropai/internal/ports/input"
	"cropai/internal/ports/output"
)

var _ input.AccountUseCase = (*AccountService)(nil)

type AccountService struct {
	users output.UserRepository
}

func NewAccountService(users output.UserRepository) *AccountService {
	return &AccountService{users: users}
}

func (s *AccountService) Register(ctx context.Context, req input.RegisterRequest) (*entities.User, error) {
	username := strings.TrimSpace(req.Username)
	if existing, err := s.users.FindByUsername(ctx, username); err == nil && existing != nil {
		return nil, domain.ErrUsernameTaken
	} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entities.User{
		Username:     username,
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: string(hash),
		Name:         req.Name,
		Address:      req.Address,
		Language:     req.Language,
	}
	if user.Language == "" {
		user.Language = "en"
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *AccountService) Authenticate(ctx context.Context, username, password string) (*entities.User, error) {
	user, err := s.users.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

func (s *AccountService) GetUser(ctx context.Context, id uint) (*entities.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *AccountService) SetPreferredLanguage(ctx context.Context, userID uint, code string) error {
	return s.users.UpdateLanguage(ctx, userID, code)
}
