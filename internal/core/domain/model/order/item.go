package order

import (
	"errors"

	"github.com/shopspring/decimal"

	"canteen/internal/core/domain/model/pricing"
	"canteen/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the aggregate.
var ErrItemIsNotConstructed = errors.New("Item must be created via the Order aggregate")

// ItemSpec is the caller-supplied description of one order line, used both
// at order creation and as the target state of item synchronization.
//
// A nil ID marks the line as a creation; a non-nil ID marks it as an update
// of the existing item with that id. A non-nil FoodID on a created line
// additionally requests a catalog upsert for the referenced food item.
type ItemSpec struct {
	ID        *int64
	FoodID    *int64
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	Notes     string
}

// Item is one line of an order: a food item, a quantity and a price snapshot
// taken when the line was written. The line total always equals
// round(quantity * unitPrice, 2).
type Item struct {
	id        int64
	foodID    *int64
	name      string
	quantity  int
	unitPrice decimal.Decimal
	notes     string
	lineTotal decimal.Decimal

	isConstructed bool
}

// newItem builds a validated item with the given order-scoped id.
// The line total is always derived, never supplied by the caller.
func newItem(id int64, spec ItemSpec) (*Item, error) {
	item := &Item{
		id:            id,
		foodID:        spec.FoodID,
		notes:         spec.Notes,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setName(spec.Name),
		item.setQuantity(spec.Quantity),
		item.setUnitPrice(spec.UnitPrice),
	); err != nil {
		return nil, err
	}

	item.lineTotal = pricing.LineTotal(item.quantity, item.unitPrice)
	return item, nil
}

// RehydrateItem reconstructs an item from persistence. The line total is
// recomputed from the stored quantity and unit price so the invariant holds
// even if the stored column drifted.
func RehydrateItem(id int64, foodID *int64, name string, quantity int, unitPrice decimal.Decimal, notes string) (*Item, error) {
	return newItem(id, ItemSpec{
		FoodID:    foodID,
		Name:      name,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Notes:     notes,
	})
}

// updated returns a copy of the item with the incoming name, quantity, unit
// price and notes written over it and the line total recomputed. The id and
// food reference are retained. The receiver is not modified, so a failed
// synchronization leaves the aggregate untouched.
func (i *Item) updated(spec ItemSpec) (*Item, error) {
	next, err := newItem(i.id, ItemSpec{
		FoodID:    i.foodID,
		Name:      spec.Name,
		Quantity:  spec.Quantity,
		UnitPrice: spec.UnitPrice,
		Notes:     spec.Notes,
	})
	if err != nil {
		return nil, err
	}
	return next, nil
}

// Validate ensures the item was created through the aggregate.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's identifier, unique within its order.
func (i *Item) ID() int64 {
	return i.id
}

// FoodID returns the catalog reference, or nil for an ad-hoc line.
func (i *Item) FoodID() *int64 {
	return i.foodID
}

// Name returns the item name as ordered.
func (i *Item) Name() string {
	return i.name
}

// Quantity returns the ordered quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price snapshot per unit.
func (i *Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Notes returns the free-text preparation notes.
func (i *Item) Notes() string {
	return i.notes
}

// LineTotal returns round(quantity * unitPrice, 2).
func (i *Item) LineTotal() decimal.Decimal {
	return i.lineTotal
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("item quantity")
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidError("item unit price")
	}
	i.unitPrice = unitPrice
	return nil
}
