// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order aggregate, handling the conversion between domain entities and
// database representations. An order row and its item rows always change
// together, so the stored total never disagrees with the stored items.
package orderrepo

import (
	"sort"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status and order type are stored in their string forms so the rows stay
// readable in ad-hoc SQL, and the archived flag is indexed because every
// board query filters on it.
type OrderDTO struct {
	ID            int64  `gorm:"primaryKey;autoIncrement:false"`
	OrderType     string `gorm:"type:varchar(16)"`
	Status        string `gorm:"type:varchar(16);index"`
	Customer      string
	ContactNumber string
	Email         string
	Address       string
	DesiredAt     *time.Time
	Archived      bool `gorm:"index"`
	ArchivedAt    *time.Time
	Total         decimal.Decimal `gorm:"type:numeric(12,2)"`
	CreatedAt     time.Time
	Items         []ItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one priced line of an order. The item id is unique per
// order, not globally, hence the composite primary key. Position preserves
// the display order of the lines across item synchronization.
type ItemDTO struct {
	OrderID   int64 `gorm:"primaryKey;autoIncrement:false"`
	ItemID    int64 `gorm:"primaryKey;autoIncrement:false"`
	FoodID    *int64
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2)"`
	LineTotal decimal.Decimal `gorm:"type:numeric(12,2)"`
	Notes     string
	Position  int
}

// TableName specifies the database table name for order item entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database
// representation, items included.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]ItemDTO, 0, len(items))
	for position, item := range items {
		itemDTOs = append(itemDTOs, ItemDTO{
			OrderID:   aggregate.ID(),
			ItemID:    item.ID(),
			FoodID:    item.FoodID(),
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
			LineTotal: item.LineTotal(),
			Notes:     item.Notes(),
			Position:  position,
		})
	}

	return OrderDTO{
		ID:            aggregate.ID(),
		OrderType:     aggregate.OrderType().String(),
		Status:        aggregate.Status().String(),
		Customer:      aggregate.Customer(),
		ContactNumber: aggregate.ContactNumber(),
		Email:         aggregate.Email(),
		Address:       aggregate.Address(),
		DesiredAt:     aggregate.DesiredAt(),
		Archived:      aggregate.Archived(),
		ArchivedAt:    aggregate.ArchivedAt(),
		Total:         aggregate.Total(),
		CreatedAt:     aggregate.CreatedAt(),
		Items:         itemDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RehydrateOrder, which re-derives the total from the item rows.
func toDomain(dto OrderDTO) (*order.Order, error) {
	orderType, err := kernel.OrderTypeFromString(dto.OrderType)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	sort.Slice(dto.Items, func(i, j int) bool {
		return dto.Items[i].Position < dto.Items[j].Position
	})

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.RehydrateItem(
			itemDTO.ItemID,
			itemDTO.FoodID,
			itemDTO.Name,
			itemDTO.Quantity,
			itemDTO.UnitPrice,
			itemDTO.Notes,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RehydrateOrder(order.RehydrateOrderParams{
		ID:            dto.ID,
		OrderType:     orderType,
		Status:        status,
		Items:         items,
		Archived:      dto.Archived,
		ArchivedAt:    dto.ArchivedAt,
		Customer:      dto.Customer,
		ContactNumber: dto.ContactNumber,
		Email:         dto.Email,
		Address:       dto.Address,
		DesiredAt:     dto.DesiredAt,
		CreatedAt:     dto.CreatedAt,
	})
}
