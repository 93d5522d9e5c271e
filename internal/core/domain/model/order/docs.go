// Package order contains the Order aggregate and its lifecycle state machine.
//
// An Order is created in PENDING status with a fully priced item set. While it
// is unarchived it can be edited (contact fields, item synchronization) and
// moved through the status machine; reaching COMPLETED or CANCELLED archives
// it. An archived order leaves the active admin queue but is retained for
// reporting until an explicit permanent delete, and can be returned to the
// queue by an explicit restore that resets it to PENDING.
//
// The aggregate owns the money invariant: after every mutation the order's
// total equals the sum of its items' line totals plus the delivery fee implied
// by the order type. All status changes go through the Status value object,
// which rejects transitions outside the legal table, and every effective
// transition records a notification event that the application layer
// dispatches after commit.
package order
