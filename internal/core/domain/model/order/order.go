package order

import (
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/shopspring/decimal"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/pricing"
	"canteen/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RehydrateOrder. This ensures all orders are properly
// validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Contact holds the customer metadata captured with an order. All fields are
// optional; a non-empty email must parse as an address and enables the
// lifecycle notification emails.
type Contact struct {
	Customer      string
	ContactNumber string
	Email         string
	Address       string
	DesiredAt     *time.Time
}

// ContactPatch is a partial update of the contact metadata. Nil fields are
// left untouched.
type ContactPatch struct {
	Customer      *string
	ContactNumber *string
	Email         *string
	Address       *string
	DesiredAt     *time.Time
}

// CatalogUpsert is a side effect of item synchronization: a created line that
// references a food item requests the catalog entry be created or refreshed
// with the line's name and price. This keeps the menu's price in line with
// the latest price actually used in an order.
type CatalogUpsert struct {
	FoodID int64
	Name   string
	Price  decimal.Decimal
}

// Order is the aggregate root of the ordering domain. It holds the status,
// the priced item list, the archival flags and the contact metadata, and it
// guarantees the money invariant
//
//	total == sum(items[].lineTotal) + deliveryFee(orderType)
//
// after every mutation. Status changes go through the Status state machine;
// transitions into an archival state set the archived flag and timestamp, and
// every effective transition records a Notification for post-commit dispatch.
//
// Order uses private fields to ensure encapsulation and can only be created
// through NewOrder (new orders) or RehydrateOrder (persistence).
type Order struct {
	// id is assigned from the shared counter at creation and never reused.
	id int64

	orderType kernel.OrderType
	status    Status
	items     []*Item
	total     decimal.Decimal

	archived   bool
	archivedAt *time.Time

	customer      string
	contactNumber string
	email         string
	address       string
	desiredAt     *time.Time

	createdAt time.Time

	// nextItemID is the next order-scoped item id to hand out.
	nextItemID int64

	notifications []Notification

	isConstructed bool
}

// NewOrder creates a fully priced order in PENDING status.
//
// The item specs must be non-empty; every line is validated and priced with
// the pricing engine, and the total is derived before the order is returned.
// When the contact carries an email address, an order-placed notification is
// recorded for dispatch after the order is persisted.
func NewOrder(id int64, contact Contact, orderType kernel.OrderType, items []ItemSpec, now time.Time) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     now,
		nextItemID:    1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderType(orderType),
		o.setContact(contact),
	); err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	for _, spec := range items {
		item, err := newItem(o.nextItemID, spec)
		if err != nil {
			return nil, err
		}
		o.items = append(o.items, item)
		o.nextItemID++
	}

	o.RecomputeTotal()
	o.recordNotification(NotificationOrderPlaced, now)

	return o, nil
}

// RehydrateOrderParams carries the persisted state of an order back into the
// domain.
type RehydrateOrderParams struct {
	ID            int64
	OrderType     kernel.OrderType
	Status        Status
	Items         []*Item
	Archived      bool
	ArchivedAt    *time.Time
	Customer      string
	ContactNumber string
	Email         string
	Address       string
	DesiredAt     *time.Time
	CreatedAt     time.Time
}

// RehydrateOrder reconstructs an order from persistence. The stored values
// are validated and the total is re-derived from the items, so a reader never
// observes a total that disagrees with the item list.
func RehydrateOrder(params RehydrateOrderParams) (*Order, error) {
	o := &Order{
		archived:      params.Archived,
		archivedAt:    params.ArchivedAt,
		customer:      params.Customer,
		contactNumber: params.ContactNumber,
		email:         params.Email,
		address:       params.Address,
		desiredAt:     params.DesiredAt,
		createdAt:     params.CreatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(params.ID),
		o.setOrderType(params.OrderType),
		params.Status.Validate(),
	); err != nil {
		return nil, err
	}
	o.status = params.Status

	o.nextItemID = 1
	for _, item := range params.Items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if item.ID() >= o.nextItemID {
			o.nextItemID = item.ID() + 1
		}
	}
	o.items = params.Items

	o.RecomputeTotal()
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's numeric identifier.
func (o *Order) ID() int64 {
	return o.id
}

// DisplayID returns the zero-padded display form of the id, e.g. "ORD000123".
// It exists for display and export only and must never be used for lookups.
func (o *Order) DisplayID() string {
	return fmt.Sprintf("ORD%06d", o.id)
}

// OrderType returns how the customer receives the order.
func (o *Order) OrderType() kernel.OrderType {
	return o.orderType
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the order lines in display order.
func (o *Order) Items() []*Item {
	return o.items
}

// Total returns the order total including the delivery fee.
func (o *Order) Total() decimal.Decimal {
	return o.total
}

// Archived reports whether the order has left the active queue.
func (o *Order) Archived() bool {
	return o.archived
}

// ArchivedAt returns when the order was archived, or nil while active.
func (o *Order) ArchivedAt() *time.Time {
	return o.archivedAt
}

// Customer returns the customer name.
func (o *Order) Customer() string {
	return o.customer
}

// ContactNumber returns the customer phone number.
func (o *Order) ContactNumber() string {
	return o.contactNumber
}

// Email returns the customer email address, empty when none was given.
func (o *Order) Email() string {
	return o.email
}

// Address returns the delivery address.
func (o *Order) Address() string {
	return o.address
}

// DesiredAt returns the requested fulfillment time, or nil.
func (o *Order) DesiredAt() *time.Time {
	return o.desiredAt
}

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// PopNotifications drains the notification events recorded since the last
// call. The application layer calls this after a successful commit and hands
// the events to the dispatcher.
func (o *Order) PopNotifications() []Notification {
	events := o.notifications
	o.notifications = nil
	return events
}

// Accept moves the order from PENDING to ACCEPTED and records the
// order-accepted notification. The order stays in the active queue.
func (o *Order) Accept(now time.Time) error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.recordNotification(NotificationOrderAccepted, now)
	return nil
}

// Complete moves the order from ACCEPTED to COMPLETED, archives it and
// records the order-completed notification.
func (o *Order) Complete(now time.Time) error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.archive(now)
	o.recordNotification(NotificationOrderCompleted, now)
	return nil
}

// Cancel moves the order from PENDING to CANCELLED, archives it and records
// the order-cancelled notification.
func (o *Order) Cancel(now time.Time) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.archive(now)
	o.recordNotification(NotificationOrderCancelled, now)
	return nil
}

// ChangeStatus applies an admin-requested transition to the target status.
// Transitions outside the legal table fail with InvalidTransitionError and
// leave the order unchanged.
func (o *Order) ChangeStatus(target Status, now time.Time) error {
	switch target {
	case Accepted:
		return o.Accept(now)
	case Completed:
		return o.Complete(now)
	case Cancelled:
		return o.Cancel(now)
	default:
		_, err := o.status.TransitionTo(target)
		return err
	}
}

// SoftDelete is the delete-by-id operation: a pending order is cancelled and
// archived, while an order the kitchen already accepted or completed cannot
// be deleted and fails with StateConflictError.
func (o *Order) SoftDelete(now time.Time) error {
	if o.status == Accepted || o.status == Completed {
		return errs.NewStateConflictError("delete", o.status.String())
	}
	return o.Cancel(now)
}

// Restore returns an archived order to the active queue: status PENDING,
// archived cleared, archivedAt cleared. Restoring an order that is not
// archived fails with StateConflictError. No notification is recorded.
func (o *Order) Restore() error {
	if !o.archived {
		return errs.NewStateConflictError("restore", o.status.String())
	}

	o.status = Pending
	o.archived = false
	o.archivedAt = nil
	return nil
}

// EnsurePurgeable checks that the order may be permanently deleted.
// Permanent deletion is reserved for orders that are already archived.
func (o *Order) EnsurePurgeable() error {
	if !o.archived {
		return errs.NewStateConflictError("permanent delete", o.status.String())
	}
	return nil
}

// PatchContact applies a partial update of the contact metadata. Editing is
// forbidden once the order is ACCEPTED or COMPLETED; only provided fields
// change.
func (o *Order) PatchContact(patch ContactPatch) error {
	if err := o.ensureEditable(); err != nil {
		return err
	}

	email := o.email
	if patch.Email != nil {
		email = *patch.Email
	}
	if err := validateEmail(email); err != nil {
		return err
	}

	if patch.Customer != nil {
		o.customer = *patch.Customer
	}
	if patch.ContactNumber != nil {
		o.contactNumber = *patch.ContactNumber
	}
	if patch.Email != nil {
		o.email = *patch.Email
	}
	if patch.Address != nil {
		o.address = *patch.Address
	}
	if patch.DesiredAt != nil {
		o.desiredAt = patch.DesiredAt
	}

	return nil
}

// SyncItems reconciles the order's item list against the caller-supplied
// target list:
//
//   - target items carrying an id update the existing item with that id
//   - target items without an id are created with a fresh order-scoped id
//   - existing items absent from the target list are deleted
//
// Created lines that reference a food item yield CatalogUpserts for the
// caller to apply to the catalog within the same transaction. The total is
// re-derived at the end, so the money invariant holds when SyncItems
// returns. On any validation failure the order is left unchanged.
//
// Editing is forbidden once the order is ACCEPTED or COMPLETED.
func (o *Order) SyncItems(target []ItemSpec) ([]CatalogUpsert, error) {
	if err := o.ensureEditable(); err != nil {
		return nil, err
	}

	if len(target) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	existing := make(map[int64]*Item, len(o.items))
	for _, item := range o.items {
		existing[item.ID()] = item
	}

	nextItemID := o.nextItemID
	synced := make([]*Item, 0, len(target))
	var upserts []CatalogUpsert

	for _, spec := range target {
		if spec.ID != nil {
			current, ok := existing[*spec.ID]
			if !ok {
				return nil, errs.NewValueIsInvalidErrorWithCause(
					"items",
					fmt.Errorf("order has no item with id %d", *spec.ID),
				)
			}

			updated, err := current.updated(spec)
			if err != nil {
				return nil, err
			}
			synced = append(synced, updated)
			continue
		}

		created, err := newItem(nextItemID, spec)
		if err != nil {
			return nil, err
		}
		nextItemID++
		synced = append(synced, created)

		if spec.FoodID != nil {
			upserts = append(upserts, CatalogUpsert{
				FoodID: *spec.FoodID,
				Name:   created.Name(),
				Price:  created.UnitPrice(),
			})
		}
	}

	o.items = synced
	o.nextItemID = nextItemID
	o.RecomputeTotal()

	return upserts, nil
}

// RecomputeTotal re-derives the total from the current items and order type.
// It is idempotent: calling it twice without an intervening item change
// yields the same total.
func (o *Order) RecomputeTotal() {
	subtotal := decimal.Zero
	for _, item := range o.items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	o.total = pricing.OrderTotal(subtotal, o.orderType)
}

func (o *Order) ensureEditable() error {
	if o.status == Accepted || o.status == Completed {
		return errs.NewStateConflictError("edit", o.status.String())
	}
	return nil
}

func (o *Order) archive(now time.Time) {
	o.archived = true
	o.archivedAt = &now
}

// recordNotification queues a lifecycle email request. Orders without an
// email address record nothing; there is no one to notify.
func (o *Order) recordNotification(kind NotificationKind, now time.Time) {
	if o.email == "" {
		return
	}
	o.notifications = append(o.notifications, newNotification(kind, o, now))
}

func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not positive", id))
	}
	o.id = id
	return nil
}

func (o *Order) setOrderType(orderType kernel.OrderType) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

func (o *Order) setContact(contact Contact) error {
	if err := validateEmail(contact.Email); err != nil {
		return err
	}

	o.customer = contact.Customer
	o.contactNumber = contact.ContactNumber
	o.email = contact.Email
	o.address = contact.Address
	o.desiredAt = contact.DesiredAt
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return nil
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	return nil
}
