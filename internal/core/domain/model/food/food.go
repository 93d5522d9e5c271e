// Package food contains the FoodItem catalog entity. The catalog is the
// menu's canonical list of purchasable items; it is read by the storefront
// and incidentally refreshed by order-item synchronization, which keeps each
// entry's name and price in line with the latest order that referenced it.
package food

import (
	"errors"

	"github.com/shopspring/decimal"

	"canteen/internal/pkg/errs"
)

// ErrFoodIsNotConstructed is returned when a Food instance was not created
// through NewFood or RehydrateFood.
var ErrFoodIsNotConstructed = errors.New("Food must be created via NewFood constructor")

// Food is a catalog entry: a purchasable menu item with its current price.
type Food struct {
	id    int64
	name  string
	price decimal.Decimal

	isConstructed bool
}

// NewFood creates a catalog entry with validation. The id comes from the
// shared counter or, for entries created by item synchronization, from the
// food reference the ordered item carried.
func NewFood(id int64, name string, price decimal.Decimal) (*Food, error) {
	f := &Food{isConstructed: true}

	if err := errors.Join(
		f.setID(id),
		f.setName(name),
		f.setPrice(price),
	); err != nil {
		return nil, err
	}

	return f, nil
}

// RehydrateFood reconstructs a catalog entry from persistence without
// re-running creation side effects. The stored values are still validated.
func RehydrateFood(id int64, name string, price decimal.Decimal) (*Food, error) {
	return NewFood(id, name, price)
}

// Validate ensures the entry was built through a constructor.
func (f *Food) Validate() error {
	if f == nil || !f.isConstructed {
		return ErrFoodIsNotConstructed
	}
	return nil
}

// ID returns the catalog entry's identifier.
func (f *Food) ID() int64 {
	return f.id
}

// Name returns the menu name of the item.
func (f *Food) Name() string {
	return f.name
}

// Price returns the current catalog price.
func (f *Food) Price() decimal.Decimal {
	return f.price
}

// Refresh overwrites the entry's name and price with the values most
// recently used in an order. Called by the upsert path of item
// synchronization.
func (f *Food) Refresh(name string, price decimal.Decimal) error {
	if err := errors.Join(
		f.setName(name),
		f.setPrice(price),
	); err != nil {
		return err
	}
	return nil
}

func (f *Food) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidError("food id")
	}
	f.id = id
	return nil
}

func (f *Food) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("food name")
	}
	f.name = name
	return nil
}

func (f *Food) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidError("food price")
	}
	f.price = price
	return nil
}
