package input

import (
	"context"

	"cropai/internal/domain/entities"
)

// RegisterRequest carries the fields of the registration form.
type RegisterRequest struct {
	Username string
	Email    string
	Password string
	Name     string
	Address  string
	Language string
}

type AccountUseCase interface {
	Register(ctx context.Context, req RegisterRequest) (*entities.User, error)
	Authenticate(ctx context.Context, username, password string) (*entities.User, error)
	GetUser(ctx context.Context, id uint) (*entities.User, error)
	SetPreferredLanguage(ctx context.Context, userID uint, code string) error
}
