package application

import (
	"context"

	"cropai/internal/domain/entities"
	"cropai/internal/ports/input"
	"cropai/internal/ports/output"
)

var _ input.FieldUseCase = (*FieldService)(nil)

type FieldService struct {
	fields output.FieldRepository
}

func NewFieldService(fields output.FieldRepository) *FieldService {
	return &FieldService{fields: fields}
}

func (s *FieldService) AddField(ctx context.Context, field *entities.Field) error {
	return s.fields.Create(ctx, field)
}

func (s *FieldService) GetFieldsByUserID(ctx context.Context, userID uint) ([]entities.Field, error) {
	return s.fields.FindByUserID(ctx, userID)
}
