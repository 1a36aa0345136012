package commands

import (
	"context"

	"ezwash/internal/core/domain/model/order"
	"ezwash/internal/core/ports"
)

// AcceptOrderCommandHandler handles operations staff accepting pending
// orders. A rider pre-assignment, when requested, is validated against the
// rider directory before the transaction starts.
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	directory  ports.RiderDirectory
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(
	uowFactory OrderUoWFactory,
	directory ports.RiderDirectory,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		directory:  directory,
	}
}

// Handle processes the acceptance command. The status change and any rider
// pre-assignment land in one conditional update, so a concurrent transition
// on the same order loses cleanly instead of interleaving.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var rider *order.RiderAssignment
	if cmd.RiderID() != nil {
		assignment, err := h.directory.ResolveActiveRider(ctx, *cmd.RiderID())
		if err != nil {
			return err
		}
		rider = &assignment
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

	if err = aggregate.Accept(cmd.ActorID(), cmd.Note(), rider); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
