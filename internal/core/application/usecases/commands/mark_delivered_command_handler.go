package commands

import (
	"context"
	"fmt"
	"log/slog"

	"ezwash/internal/core/domain/model/order"
	"ezwash/internal/core/ports"
)

// MarkDeliveredCommandHandler handles riders confirming delivery, the
// transition that settles an order. After the transaction commits it kicks
// off the two side effects: commission crediting and the customer
// notification. Both are best-effort; a failure is logged and picked up by
// the reconciliation job, never surfaced to the rider.
type MarkDeliveredCommandHandler struct {
	uowFactory       OrderUoWFactory
	commissionCredit CreditCommissionCommandHandler
	notifier         ports.Notifier
	logger           *slog.Logger
}

// NewMarkDeliveredCommandHandler creates a handler for delivery
// confirmation.
func NewMarkDeliveredCommandHandler(
	uowFactory OrderUoWFactory,
	commissionCredit CreditCommissionCommandHandler,
	notifier ports.Notifier,
	logger *slog.Logger,
) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory:       uowFactory,
		commissionCredit: commissionCredit,
		notifier:         notifier,
		logger:           logger,
	}
}

// Handle processes the delivery confirmation command.
func (h *MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.MarkDelivered(cmd.RiderID(), cmd.Note()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	go h.settle(aggregate)

	return nil
}

// settle runs the post-delivery side effects with their own timeout context.
func (h *MarkDeliveredCommandHandler) settle(o *order.Order) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	creditCmd, err := NewCreditCommissionCommand(o.OrderID())
	if err == nil {
		err = h.commissionCredit.Handle(ctx, creditCmd)
	}
	if err != nil {
		h.logger.Warn("commission crediting failed, reconciliation will retry",
			"order_id", o.OrderID().String(), "error", err)
	}

	message := fmt.Sprintf("Your order %s has been delivered. Thank you!", o.OrderID())
	if _, err := h.notifier.Notify(ctx, o.Phone(), message,
		[]ports.NotificationChannel{ports.ChannelEmail, ports.ChannelSMS}); err != nil {
		h.logger.Warn("delivery notification failed",
			"order_id", o.OrderID().String(), "error", err)
	}
}
