package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ezwash/internal/core/domain/model/kernel"
	"ezwash/internal/core/domain/model/order"
	"ezwash/internal/core/ports"
)

// notifyTimeout bounds the post-commit notification publish so a slow broker
// never holds a goroutine indefinitely.
const notifyTimeout = 5 * time.Second

// PlaceOrderCommandHandler handles the business logic for placing orders.
// Creates the order in Pending status and notifies the customer after the
// transaction commits.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence, a Notifier for
// the customer confirmation, and a logger for side-effect failures.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the order placement command and returns the generated
// order identifier. The confirmation notification is fired after commit and
// never fails the placement.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (kernel.OrderID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.OrderID{}, err
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewOrderID(),
		cmd.CustomerID(),
		cmd.CustomerName(),
		cmd.Items(),
		cmd.TotalPrice(),
		cmd.Pickup(),
		cmd.Phone(),
	)
	if err != nil {
		return kernel.OrderID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.OrderID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return kernel.OrderID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.OrderID{}, err
	}

	go h.notifyPlaced(newOrder)

	return newOrder.OrderID(), nil
}

func (h *PlaceOrderCommandHandler) notifyPlaced(o *order.Order) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	message := fmt.Sprintf("Your order %s has been received and is pending confirmation.", o.OrderID())
	if _, err := h.notifier.Notify(ctx, o.Phone(), message,
		[]ports.NotificationChannel{ports.ChannelEmail, ports.ChannelSMS}); err != nil {
		h.logger.Warn("order placement notification failed",
			"order_id", o.OrderID().String(), "error", err)
	}
}
