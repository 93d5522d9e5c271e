package foodrepo

import (
	"context"

	"canteen/internal/core/domain/model/food"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormFoodRepository implements FoodRepository using GORM.
type GormFoodRepository struct {
	db *gorm.DB
}

// NewGormFoodRepository creates a new GORM food catalog repository.
func NewGormFoodRepository(db *gorm.DB) *GormFoodRepository {
	return &GormFoodRepository{db: db}
}

// Upsert creates the catalog entry or refreshes its name and price in place.
func (r *GormFoodRepository) Upsert(ctx context.Context, entry *food.Food) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "price", "updated_at"}),
		}).
		Create(&dto).Error
}
