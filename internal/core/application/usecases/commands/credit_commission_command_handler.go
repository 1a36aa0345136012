package commands

import (
	"context"
	"errors"

	"ezwash/internal/core/domain/services"
	"ezwash/internal/core/ports"
	"ezwash/internal/pkg/errs"
)

// CreditCommissionCommandHandler credits the referring ambassador for a
// delivered order.
//
// The handler is a no-op in three cases: the customer was not referred, the
// rounded commission amount is zero, or a commission for the order already
// exists. Duplicate suppression rides on the store's unique order index,
// which makes the whole operation idempotent under retries and
// reconciliation re-drives.
type CreditCommissionCommandHandler struct {
	uowFactory CommissionUoWFactory
	directory  ports.RiderDirectory
	policy     services.ReferralPolicy
}

// NewCreditCommissionCommandHandler creates a handler for commission
// crediting.
func NewCreditCommissionCommandHandler(
	uowFactory CommissionUoWFactory,
	directory ports.RiderDirectory,
	policy services.ReferralPolicy,
) CreditCommissionCommandHandler {
	return CreditCommissionCommandHandler{
		uowFactory: uowFactory,
		directory:  directory,
		policy:     policy,
	}
}

// Handle processes the commission crediting command.
func (h *CreditCommissionCommandHandler) Handle(ctx context.Context, cmd CreditCommissionCommand) error {
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

	aggregate, err := uow.OrderRepository().GetByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	ambassadorID, err := h.directory.ResolveReferringAmbassador(ctx, aggregate.CustomerID())
	if err != nil {
		return err
	}
	if ambassadorID == nil {
		return nil
	}

	credit, err := h.policy.Award(aggregate, *ambassadorID)
	if err != nil {
		return err
	}
	if credit == nil {
		return nil
	}

	if err = uow.CommissionRepository().Add(ctx, credit); err != nil {
		// Already credited by a concurrent attempt; retries succeed quietly.
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			return nil
		}
		return err
	}

	return uow.Commit(ctx)
}
