// Package pricing implements the deterministic money arithmetic of the
// ordering domain: line totals, order totals and the flat delivery fee.
//
// All functions are pure. Both the storefront creation path and the admin
// edit path must go through this package, so an order is always priced the
// same way no matter which flow produced it.
package pricing

import (
	"github.com/shopspring/decimal"

	"canteen/internal/core/domain/model/kernel"
)

// flatDeliveryFee is the fixed surcharge applied once per delivery order.
// It is not distance- or weight-based and never applies per item.
var flatDeliveryFee = decimal.NewFromInt(15)

// FlatDeliveryFee returns the fixed delivery surcharge.
func FlatDeliveryFee() decimal.Decimal {
	return flatDeliveryFee
}

// DeliveryFee returns the fee implied by the order type: the flat fee for
// delivery orders, zero for everything else.
func DeliveryFee(orderType kernel.OrderType) decimal.Decimal {
	if orderType.IsDelivery() {
		return flatDeliveryFee
	}
	return decimal.Zero
}

// OrderTotal derives an order's total from the item subtotal and the order
// type. A non-positive subtotal yields zero. This is the only place the
// delivery fee is added; it is applied exactly once per order.
func OrderTotal(subtotal decimal.Decimal, orderType kernel.OrderType) decimal.Decimal {
	if subtotal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return subtotal.Add(DeliveryFee(orderType)).Round(2)
}

// LineTotal computes quantity times unit price, rounded to two decimal
// places (half away from zero).
func LineTotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}
