package output

import (
	"context"

	"cropai/internal/domain/entities"
)

type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id uint) (*entities.User, error)
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
	UpdateLanguage(ctx context.Context, id uint, code string) error
}
