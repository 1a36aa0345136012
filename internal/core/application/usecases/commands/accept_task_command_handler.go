package commands

import (
	"context"
)

// AcceptTaskCommandHandler handles riders accepting their assigned tasks.
// Ownership is enforced by the aggregate: only the assigned rider may
// accept.
type AcceptTaskCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAcceptTaskCommandHandler creates a handler for task acceptance.
func NewAcceptTaskCommandHandler(uowFactory OrderUoWFactory) AcceptTaskCommandHandler {
	return AcceptTaskCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the task acceptance command.
func (h *AcceptTaskCommandHandler) Handle(ctx context.Context, cmd AcceptTaskCommand) error {
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

	if err = aggregate.AcceptTask(cmd.RiderID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
