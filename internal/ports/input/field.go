package input

import (
	"context"

	"cropai/internal/domain/entities"
)

type FieldUseCase interface {
	AddField(ctx context.Context, field *entities.Field) error
	GetFieldsByUserID(ctx context.Context, userID uint) ([]entities.Field, error)
}
