package commands

import (
	"context"
	"fmt"
	"log/slog"

	"ezwash/internal/core/domain/model/order"
	"ezwash/internal/core/ports"
)

// AssignRiderCommandHandler handles rider assignment and re-assignment.
// The rider is resolved against the directory first, then the rider fields
// and the Assigned status land in one conditional update. The rider is
// notified after commit.
type AssignRiderCommandHandler struct {
	uowFactory OrderUoWFactory
	directory  ports.RiderDirectory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewAssignRiderCommandHandler creates a handler for rider assignment.
func NewAssignRiderCommandHandler(
	uowFactory OrderUoWFactory,
	directory ports.RiderDirectory,
	notifier ports.Notifier,
	logger *slog.Logger,
) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{
		uowFactory: uowFactory,
		directory:  directory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the assignment command.
func (h *AssignRiderCommandHandler) Handle(ctx context.Context, cmd AssignRiderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	assignment, err := h.directory.ResolveActiveRider(ctx, cmd.RiderID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	if err = aggregate.AssignRider(assignment, cmd.ActorID(), cmd.Note()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	go h.notifyRider(aggregate)

	return nil
}

func (h *AssignRiderCommandHandler) notifyRider(o *order.Order) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	rider := o.Rider()
	if rider == nil {
		return
	}

	message := fmt.Sprintf("New pickup task: order %s for %s.", o.OrderID(), o.CustomerName())
	if _, err := h.notifier.Notify(ctx, rider.RiderID().String(), message,
		[]ports.NotificationChannel{ports.ChannelSMS}); err != nil {
		h.logger.Warn("rider assignment notification failed",
			"order_id", o.OrderID().String(), "rider_id", rider.RiderID().String(), "error", err)
	}
}
