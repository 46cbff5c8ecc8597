package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cropai/internal/domain/entities"
	"cropai/internal/ports/output"
)

var _ output.FieldRepository = (*FieldRepository)(nil)

type FieldRepository struct {
	pool *pgxpool.Pool
}

func NewFieldRepository(pool *pgxpool.Pool) *FieldRepository {
	return &FieldRepository{pool: pool}
}

func (r *FieldRepository) Create(ctx context.Context, field *entities.Field) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO fields (user_id, name, soil_condition, weather_condition,
			last_year_profit, field_type, area_hectares, crop_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`,
		field.UserID, field.Name, field.SoilCondition, field.WeatherCondition,
		field.LastYearProfit, field.FieldType, field.AreaHectares, field.CropType,
	).Scan(&field.ID, &field.CreatedAt, &field.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create field: %w", err)
	}
	return nil
}

func (r *FieldRepository) FindByUserID(ctx context.Context, userID uint) ([]entities.Field, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, name, soil_condition, weather_condition,
			last_year_profit, field_type, area_hectares, crop_type, created_at, updated_at
		FROM fields WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("find fields: %w", err)
	}
	defer rows.Close()

	fields, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.Field, error) {
		var f entities.Field
		err := row.Scan(&f.ID, &f.UserID, &f.Name, &f.SoilCondition, &f.WeatherCondition,
			&f.LastYearProfit, &f.FieldType, &f.AreaHectares, &f.CropType, &f.CreatedAt, &f.UpdatedAt)
		return f, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan fields: %w", err)
	}
	return fields, nil
}
