package order

import (
	"errors"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrItemsAreRequired is returned for an order without lines.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// Order is the aggregate root of one table's meal request. It exclusively owns
// its items and enforces both state machines: order status through the
// transition table, item status through Item's monotonic setters.
//
// Invariants:
//   - an order has at least one item
//   - total equals Σ unit price × quantity and is fixed at creation
//   - status reaches ReadyToServe only once no item is outstanding
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// tableID is the table the order occupies while active
	tableID kernel.UUID

	// staffID is the staff member who submitted the order
	staffID kernel.UUID

	status    Status
	total     decimal.Decimal
	createdAt time.Time

	// version is the optimistic concurrency counter owned by the store
	version int

	items []*Item

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates an order in status New and computes its total from the item
// snapshots. Items must be freshly created pending lines.
//
// Example:
//
//	burger, _ := order.NewItem(kernel.NewUUID(), burgerID, "Burger", 2, decimal.NewFromInt(10), order.Kitchen)
//	o, err := order.NewOrder(kernel.NewUUID(), tableID, staffID, []*order.Item{burger}, time.Now())
func NewOrder(id, tableID, staffID kernel.UUID, items []*Item, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:        New,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setIDs(id, tableID, staffID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.total = o.computeTotal()
	return o, nil
}

// RestoreOrder rebuilds an order loaded from storage. The stored total is kept
// as is, since it reflects prices at creation time.
func RestoreOrder(
	id, tableID, staffID kernel.UUID,
	status Status,
	total decimal.Decimal,
	createdAt time.Time,
	version int,
	items []*Item,
) (*Order, error) {
	o := &Order{
		total:         total,
		createdAt:     createdAt.UTC(),
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setIDs(id, tableID, staffID),
		o.setStatus(status),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) TableID() kernel.UUID {
	return o.tableID
}

func (o *Order) StaffID() kernel.UUID {
	return o.staffID
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Total() decimal.Decimal {
	return o.total
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) Version() int {
	return o.version
}

// Items returns the order lines. The slice is a copy, the items are not.
func (o *Order) Items() []*Item {
	out := make([]*Item, len(o.items))
	copy(out, o.items)
	return out
}

// Item looks up a line by id.
func (o *Order) Item(itemID kernel.UUID) (*Item, bool) {
	for _, it := range o.items {
		if it.id.IsEqual(itemID) {
			return it, true
		}
	}
	return nil, false
}

// OutstandingItems counts lines still pending or in preparation.
func (o *Order) OutstandingItems() int {
	n := 0
	for _, it := range o.items {
		if it.status.IsOutstanding() {
			n++
		}
	}
	return n
}

// MarkItemReady readies one line and, when it was the last outstanding line of
// a New order, moves the order to ReadyToServe.
//
// Readying an item that is already ready changes nothing. The returned
// becameReady flag is true only for the call that performed the
// New -> ReadyToServe transition, which is the call that must notify staff.
func (o *Order) MarkItemReady(itemID kernel.UUID) (item *Item, becameReady bool, err error) {
	item, ok := o.Item(itemID)
	if !ok {
		return nil, false, errs.NewObjectNotFoundError("order item", itemID.String())
	}

	item.markReady()

	if o.OutstandingItems() > 0 {
		return item, false, nil
	}

	next, ok := o.status.next(opComplete)
	if !ok {
		// already past New; nothing left to transition
		return item, false, nil
	}
	o.status = next
	return item, true, nil
}

// StartItemPreparation moves a pending line to Preparing. Order status is not
// affected.
func (o *Order) StartItemPreparation(itemID kernel.UUID) (*Item, error) {
	item, ok := o.Item(itemID)
	if !ok {
		return nil, errs.NewObjectNotFoundError("order item", itemID.String())
	}
	if _, err := item.startPreparation(); err != nil {
		return nil, err
	}
	return item, nil
}

// Serve records that the food reached the table. Only ReadyToServe orders
// can be served.
func (o *Order) Serve() error {
	return o.apply(opServe)
}

// Close finishes the order. Allowed from Served and, as an implicit
// serve-then-close, from ReadyToServe. Freeing the table is the caller's job
// and must happen in the same transaction.
func (o *Order) Close() error {
	return o.apply(opClose)
}

func (o *Order) apply(op operation) error {
	next, ok := o.status.next(op)
	if !ok {
		return errs.NewStatusConflictError("order", o.id.String(), string(op), o.status.String())
	}
	o.status = next
	return nil
}

func (o *Order) computeTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.items {
		total = total.Add(it.Subtotal())
	}
	return total
}

func (o *Order) setIDs(id, tableID, staffID kernel.UUID) error {
	if err := errors.Join(
		wrapID("order id", id),
		wrapID("table id", tableID),
		wrapID("staff id", staffID),
	); err != nil {
		return err
	}
	o.id = id
	o.tableID = tableID
	o.staffID = staffID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for idx, it := range items {
		if err := it.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", idx, err)
		}
	}
	o.items = items
	return nil
}

func wrapID(name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
