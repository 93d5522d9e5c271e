package kernel

import (
	"fmt"

	"canteen/internal/pkg/errs"
)

// OrderType describes how the customer receives an order. It is fixed at
// order creation and drives both pricing (the flat delivery fee applies to
// delivery orders only) and how the back office formats the address line.
//
// OrderType is a value object: the zero value is invalid and callers must use
// one of the defined constants or OrderTypeFromString.
type OrderType int

const (
	// OrderTypeUnknown represents an invalid or undefined order type.
	// This value (0) helps catch uninitialized OrderType values.
	OrderTypeUnknown OrderType = iota

	// Delivery orders are brought to the customer's address and carry the
	// flat delivery fee.
	Delivery

	// Pickup orders are collected by the customer and carry no fee.
	Pickup
)

func getOrderTypeStrings() map[OrderType]string {
	return map[OrderType]string{
		OrderTypeUnknown: "UNKNOWN",
		Delivery:         "DELIVERY",
		Pickup:           "PICKUP",
	}
}

// OrderTypeFromString parses the wire representation of an order type.
// Accepted values are "DELIVERY" and "PICKUP"; anything else fails with a
// ValueIsInvalidError.
func OrderTypeFromString(s string) (OrderType, error) {
	switch s {
	case "DELIVERY":
		return Delivery, nil
	case "PICKUP":
		return Pickup, nil
	default:
		return OrderTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
			"orderType",
			fmt.Errorf("%q is not a valid order type", s),
		)
	}
}

// Validate checks that the OrderType is one of the defined constants.
// OrderTypeUnknown and any other value are invalid.
func (t OrderType) Validate() error {
	if t != Delivery && t != Pickup {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderType",
			fmt.Errorf("%d is not a valid order type", t),
		)
	}
	return nil
}

// String returns the wire representation ("DELIVERY", "PICKUP") or "UNKNOWN"
// for invalid values. Implements fmt.Stringer.
func (t OrderType) String() string {
	if s, ok := getOrderTypeStrings()[t]; ok {
		return s
	}
	return "UNKNOWN"
}

// IsDelivery reports whether the order type carries the delivery fee.
func (t OrderType) IsDelivery() bool {
	return t == Delivery
}
