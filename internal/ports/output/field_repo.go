package output

import (
	"context"

	"cropai/internal/domain/entities"
)

type FieldRepository interface {
	Create(ctx context.Context, field *entities.Field) error
	FindByUserID(ctx context.Context, userID uint) ([]entities.Field, error)
}
