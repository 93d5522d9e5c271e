package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetFoodsQueryHandler reads the food catalog from the database.
type GetFoodsQueryHandler struct {
	db *gorm.DB
}

// NewGetFoodsQueryHandler creates a handler for catalog queries.
func NewGetFoodsQueryHandler(db *gorm.DB) GetFoodsQueryHandler {
	return GetFoodsQueryHandler{db: db}
}

// Handle returns all catalog entries sorted by id.
func (h GetFoodsQueryHandler) Handle(ctx context.Context, query GetFoodsQuery) ([]FoodResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	foods := make([]FoodResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price
		FROM foods
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var food FoodResponse
		if err = rows.Scan(&food.ID, &food.Name, &food.Price); err != nil {
			return nil, err
		}
		foods = append(foods, food)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return foods, nil
}
