package order

import (
	"errors"
	"time"

	"ezwash/internal/core/domain/model/kernel"
	"ezwash/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrItemsAreRequired is returned when an order is created without any
	// line items.
	ErrItemsAreRequired = errors.New("order requires at least one item")
)

// Order is the central aggregate: a single laundry service request with one
// lifecycle from placement through delivery or cancellation.
//
// Order follows these invariants:
//   - Status is always a member of the Status enum
//   - The rider id and cached rider name are both set or both absent
//   - The audit trail is append-only with non-decreasing timestamps and its
//     final entry matches the current status
//   - The total price is immutable after creation
//   - Can only be created through NewOrder or RestoreOrder
//
// The aggregate is the sole writer of status, rider assignment, and the audit
// trail. Rider-owned transitions verify that the acting rider equals the
// assigned one; role checks for operations and customers happen at the
// application boundary.
type Order struct {
	id           kernel.UUID
	orderID      kernel.OrderID
	customerID   kernel.UUID
	customerName string
	items        []Item
	totalPrice   kernel.Money
	status       Status
	pickup       Address
	phone        string
	rider        *RiderAssignment
	history      []StatusChange
	reviewed     bool
	createdAt    time.Time
	updatedAt    time.Time

	// loadedStatus is the status the aggregate held when it was read from
	// the store. Conditional updates filter on it so that no transition is
	// ever applied from a stale read.
	loadedStatus Status

	isConstructed bool
}

// NewOrder creates a freshly placed order in Pending status with an audit
// trail of length one. The placing customer is recorded as the actor of the
// initial entry.
func NewOrder(
	id kernel.UUID,
	orderID kernel.OrderID,
	customerID kernel.UUID,
	customerName string,
	items []Item,
	totalPrice kernel.Money,
	pickup Address,
	phone string,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		customerID.Validate(),
		pickup.Validate(),
	); err != nil {
		return nil, err
	}
	if customerName == "" {
		return nil, errs.NewValueIsRequiredError("customer name")
	}
	if phone == "" {
		return nil, errs.NewValueIsRequiredError("phone number")
	}
	if len(items) == 0 {
		return nil, ErrItemsAreRequired
	}

	now := time.Now().UTC()
	placed, err := NewStatusChange(Pending, now, customerID, "")
	if err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		orderID:       orderID,
		customerID:    customerID,
		customerName:  customerName,
		items:         append([]Item(nil), items...),
		totalPrice:    totalPrice,
		status:        Pending,
		pickup:        pickup,
		phone:         phone,
		history:       []StatusChange{placed},
		createdAt:     now,
		updatedAt:     now,
		loadedStatus:  Pending,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence, recording the restored
// status as the baseline for conditional updates. All aggregate invariants
// are re-checked so corrupt rows surface as errors instead of invalid
// aggregates.
func RestoreOrder(
	id kernel.UUID,
	orderID kernel.OrderID,
	customerID kernel.UUID,
	customerName string,
	items []Item,
	totalPrice kernel.Money,
	status Status,
	pickup Address,
	phone string,
	rider *RiderAssignment,
	history []StatusChange,
	reviewed bool,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		customerID.Validate(),
		status.Validate(),
		status.ValidateCanHaveRider(rider != nil),
		validateHistory(history, status),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		orderID:       orderID,
		customerID:    customerID,
		customerName:  customerName,
		items:         append([]Item(nil), items...),
		totalPrice:    totalPrice,
		status:        status,
		pickup:        pickup,
		phone:         phone,
		rider:         rider,
		history:       append([]StatusChange(nil), history...),
		reviewed:      reviewed,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		loadedStatus:  status,
		isConstructed: true,
	}, nil
}

// validateHistory checks that the audit trail is present, its timestamps are
// non-decreasing, and its final entry matches the current status.
func validateHistory(history []StatusChange, current Status) error {
	if len(history) == 0 {
		return errs.NewValueIsRequiredError("status history")
	}
	for i := 1; i < len(history); i++ {
		if history[i].At().Before(history[i-1].At()) {
			return errs.NewValueIsInvalidError("status history timestamps")
		}
	}
	if last := history[len(history)-1].Status(); last != current {
		return errs.NewValueIsInvalidError("status history final entry")
	}
	return nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their order identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.orderID.IsEqual(other.orderID)
}

// ID returns the store's internal record identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderID returns the human-readable order identifier.
func (o *Order) OrderID() kernel.OrderID {
	return o.orderID
}

// CustomerID returns the owning customer's identity.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// CustomerName returns the customer's display name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// TotalPrice returns the order's total price. Immutable after creation.
func (o *Order) TotalPrice() kernel.Money {
	return o.totalPrice
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// LoadedStatus returns the status the aggregate was read with. Repositories
// use it as the expected-state filter of their conditional updates.
func (o *Order) LoadedStatus() Status {
	return o.loadedStatus
}

// Pickup returns the pickup location payload.
func (o *Order) Pickup() Address {
	return o.pickup
}

// Phone returns the contact phone number.
func (o *Order) Phone() string {
	return o.phone
}

// Rider returns the current rider assignment, or nil when unassigned.
func (o *Order) Rider() *RiderAssignment {
	if o.rider == nil {
		return nil
	}
	r := *o.rider
	return &r
}

// History returns a copy of the append-only audit trail.
func (o *Order) History() []StatusChange {
	return append([]StatusChange(nil), o.history...)
}

// ReviewSubmitted reports whether the owning customer already reviewed the
// order.
func (o *Order) ReviewSubmitted() bool {
	return o.reviewed
}

// CreatedAt returns the placement timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Accept records operations accepting a pending order, optionally
// pre-assigning a rider in the same change. Only Pending orders can be
// accepted; anything else fails with an InvalidTransitionError reporting the
// current status.
func (o *Order) Accept(actorID kernel.UUID, note string, rider *RiderAssignment) error {
	if o.status != Pending {
		return errs.NewInvalidTransitionError(o.status.String(), Accepted.String())
	}
	if rider != nil {
		r := *rider
		o.rider = &r
	}
	return o.applyTransition(Accepted, actorID, note)
}

// AssignRider assigns or re-assigns a rider and drives the status to
// Assigned in the same change, keeping the rider fields and the status
// consistent. Valid from Pending, Accepted, and Assigned.
func (o *Order) AssignRider(rider RiderAssignment, actorID kernel.UUID, note string) error {
	if _, err := o.status.TransitionTo(Assigned); err != nil {
		return err
	}
	r := rider
	o.rider = &r
	return o.applyTransition(Assigned, actorID, note)
}

// AcceptTask records the assigned rider accepting the dispatch task.
// Only the rider owning the assignment may accept; the order must be in
// Assigned status.
func (o *Order) AcceptTask(riderID kernel.UUID) error {
	if err := o.validateOwnership(riderID, "accept this task"); err != nil {
		return err
	}
	if o.status != Assigned {
		return errs.NewInvalidTransitionError(o.status.String(), Accepted.String())
	}
	return o.applyTransition(Accepted, riderID, "")
}

// MarkPickedUp records the assigned rider confirming pickup.
func (o *Order) MarkPickedUp(riderID kernel.UUID, note string) error {
	if err := o.validateOwnership(riderID, "mark this order picked up"); err != nil {
		return err
	}
	if _, err := o.status.TransitionTo(PickedUp); err != nil {
		return err
	}
	return o.applyTransition(PickedUp, riderID, note)
}

// MarkDelivered records the assigned rider confirming delivery. Delivered is
// terminal and is the transition that makes the order eligible for referral
// commission and review.
func (o *Order) MarkDelivered(riderID kernel.UUID, note string) error {
	if err := o.validateOwnership(riderID, "mark this order delivered"); err != nil {
		return err
	}
	if _, err := o.status.TransitionTo(Delivered); err != nil {
		return err
	}
	return o.applyTransition(Delivered, riderID, note)
}

// operationsTargets are the statuses operations staff may drive directly:
// the in-facility updates plus cancellation of any non-terminal order.
func operationsTargets() map[Status]bool {
	return map[Status]bool{
		Cleaning:  true,
		Ready:     true,
		Cancelled: true,
	}
}

// UpdateStatus applies an operations-side status update (Cleaning, Ready, or
// Cancelled). Rider-owned edges cannot be driven through it.
func (o *Order) UpdateStatus(target Status, actorID kernel.UUID, note string) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if !operationsTargets()[target] {
		return errs.NewValueIsInvalidErrorWithCause("status",
			errors.New(target.String()+" is not an operations-updatable status"))
	}
	if _, err := o.status.TransitionTo(target); err != nil {
		return err
	}
	return o.applyTransition(target, actorID, note)
}

// MarkReviewSubmitted flips the review-submitted flag. Only Delivered orders
// are reviewable, and only once.
func (o *Order) MarkReviewSubmitted() error {
	if o.status != Delivered {
		return errs.NewInvalidTransitionError(o.status.String(), Delivered.String())
	}
	if o.reviewed {
		return errs.NewObjectAlreadyExistsError("review", o.orderID.String())
	}
	o.reviewed = true
	o.updatedAt = time.Now().UTC()
	return nil
}

// validateOwnership ensures the acting rider equals the assigned one.
func (o *Order) validateOwnership(riderID kernel.UUID, action string) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	if o.rider == nil || !o.rider.RiderID().IsEqual(riderID) {
		return errs.NewUnauthorizedError(riderID.String(), action)
	}
	return nil
}

// applyTransition sets the new status, bumps the update timestamp, and
// appends the audit entry. Callers have already validated the edge.
func (o *Order) applyTransition(target Status, actorID kernel.UUID, note string) error {
	now := time.Now().UTC()
	entry, err := NewStatusChange(target, now, actorID, note)
	if err != nil {
		return err
	}

	o.status = target
	o.updatedAt = now
	o.history = append(o.history, entry)
	return nil
}
