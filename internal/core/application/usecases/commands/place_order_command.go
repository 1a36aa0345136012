package commands

import (
	"errors"

	"ezwash/internal/core/domain/model/kernel"
	"ezwash/internal/core/domain/model/order"
	"ezwash/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrCustomerNameIsRequired = errors.New("customer name is required")
	ErrPhoneIsRequired        = errors.New("phone is required")
	ErrItemsRequired          = errors.New("at least one item is required")
)

// PlaceOrderCommand represents a customer's request to place a new laundry
// order. Encapsulates the line items, the total price, and the pickup
// details.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(customerID, "Ada Obi", items, total, pickup, "+2348012345678")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, notifier, logger)
//	orderID, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	customerID   kernel.UUID
	customerName string
	items        []order.Item
	totalPrice   kernel.Money
	pickup       order.Address
	phone        string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates the customer identity, that at least one item is present, and
// that the pickup details are complete.
func NewPlaceOrderCommand(
	customerID kernel.UUID,
	customerName string,
	items []order.Item,
	totalPrice kernel.Money,
	pickup order.Address,
	phone string,
) (PlaceOrderCommand, error) {
	placeCommand := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		placeCommand.setCustomer(customerID, customerName),
		placeCommand.setItems(items),
		placeCommand.setPickup(pickup, phone),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	placeCommand.totalPrice = totalPrice
	return placeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// CustomerID returns the placing customer's identity.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// CustomerName returns the customer's display name.
func (c PlaceOrderCommand) CustomerName() string {
	return c.customerName
}

// Items returns the order's line items.
func (c PlaceOrderCommand) Items() []order.Item {
	return c.items
}

// TotalPrice returns the order total.
func (c PlaceOrderCommand) TotalPrice() kernel.Money {
	return c.totalPrice
}

// Pickup returns the pickup address.
func (c PlaceOrderCommand) Pickup() order.Address {
	return c.pickup
}

// Phone returns the contact phone number.
func (c PlaceOrderCommand) Phone() string {
	return c.phone
}

func (c *PlaceOrderCommand) setCustomer(customerID kernel.UUID, customerName string) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerID = customerID
	c.customerName = customerName
	return nil
}

func (c *PlaceOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return ErrItemsRequired
	}

	c.items = items
	return nil
}

func (c *PlaceOrderCommand) setPickup(pickup order.Address, phone string) error {
	if err := pickup.Validate(); err != nil {
		return err
	}
	if phone == "" {
		return ErrPhoneIsRequired
	}

	c.pickup = pickup
	c.phone = phone
	return nil
}
