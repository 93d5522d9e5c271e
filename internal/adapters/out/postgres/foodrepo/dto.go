// Package foodrepo persists the food catalog. Catalog entries are created and
// refreshed as a side effect of order item synchronization, so the stored
// price is always the latest price an order actually used.
package foodrepo

import (
	"time"

	"canteen/internal/core/domain/model/food"

	"github.com/shopspring/decimal"
)

// FoodDTO represents the database structure for persisting catalog entries.
type FoodDTO struct {
	ID        int64           `gorm:"primaryKey;autoIncrement:false"`
	Name      string
	Price     decimal.Decimal `gorm:"type:numeric(12,2)"`
	UpdatedAt time.Time
}

// TableName specifies the database table name for catalog entities.
func (FoodDTO) TableName() string {
	return "foods"
}

// fromDomain converts a catalog entity to its database representation.
func fromDomain(entry *food.Food) FoodDTO {
	return FoodDTO{
		ID:    entry.ID(),
		Name:  entry.Name(),
		Price: entry.Price(),
	}
}
