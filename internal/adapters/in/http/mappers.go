package http

import (
	"time"

	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/generated/servers"
	"canteen/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

func kernelOrderType(s string) (kernel.OrderType, error) {
	return kernel.OrderTypeFromString(s)
}

func itemSpecFromNew(item servers.NewOrderItem) (order.ItemSpec, error) {
	unitPrice, err := parsePrice(item.UnitPrice)
	if err != nil {
		return order.ItemSpec{}, err
	}

	return order.ItemSpec{
		FoodID:    item.FoodId,
		Name:      item.Name,
		Quantity:  item.Quantity,
		UnitPrice: unitPrice,
		Notes:     deref(item.Notes),
	}, nil
}

func itemSpecFromPatch(item servers.OrderItemPatch) (order.ItemSpec, error) {
	unitPrice, err := parsePrice(item.UnitPrice)
	if err != nil {
		return order.ItemSpec{}, err
	}

	return order.ItemSpec{
		ID:        item.Id,
		FoodID:    item.FoodId,
		Name:      item.Name,
		Quantity:  item.Quantity,
		UnitPrice: unitPrice,
		Notes:     deref(item.Notes),
	}, nil
}

func parsePrice(s string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, errs.NewValueIsInvalidErrorWithCause("unitPrice", err)
	}
	return price, nil
}

func orderFromAggregate(aggregate *order.Order) servers.Order {
	items := make([]servers.OrderItem, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, servers.OrderItem{
			Id:        item.ID(),
			FoodId:    item.FoodID(),
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().StringFixed(2),
			LineTotal: item.LineTotal().StringFixed(2),
			Notes:     optionalString(item.Notes()),
		})
	}

	return servers.Order{
		Id:            aggregate.ID(),
		DisplayId:     aggregate.DisplayID(),
		OrderType:     aggregate.OrderType().String(),
		Status:        aggregate.Status().String(),
		Customer:      optionalString(aggregate.Customer()),
		ContactNumber: optionalString(aggregate.ContactNumber()),
		Email:         optionalString(aggregate.Email()),
		Address:       optionalString(aggregate.Address()),
		DesiredAt:     aggregate.DesiredAt(),
		Archived:      aggregate.Archived(),
		ArchivedAt:    aggregate.ArchivedAt(),
		Total:         aggregate.Total().StringFixed(2),
		CreatedAt:     aggregate.CreatedAt(),
		Items:         items,
	}
}

func orderFromReadModel(model queries.OrderResponse) servers.Order {
	items := make([]servers.OrderItem, 0, len(model.Items))
	for _, item := range model.Items {
		items = append(items, servers.OrderItem{
			Id:        item.ID,
			FoodId:    item.FoodID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.StringFixed(2),
			LineTotal: item.LineTotal.StringFixed(2),
			Notes:     optionalString(item.Notes),
		})
	}

	return servers.Order{
		Id:            model.ID,
		DisplayId:     model.DisplayID,
		OrderType:     model.OrderType.String(),
		Status:        model.Status.String(),
		Customer:      optionalString(model.Customer),
		ContactNumber: optionalString(model.ContactNumber),
		Email:         optionalString(model.Email),
		Address:       optionalString(model.Address),
		DesiredAt:     model.DesiredAt,
		Archived:      model.Archived,
		ArchivedAt:    model.ArchivedAt,
		Total:         model.Total.StringFixed(2),
		CreatedAt:     model.CreatedAt,
		Items:         items,
	}
}

func dateOf(t time.Time) openapi_types.Date {
	return openapi_types.Date{Time: t}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
