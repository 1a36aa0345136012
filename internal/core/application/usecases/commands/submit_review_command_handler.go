package commands

import (
	"context"

	"ezwash/internal/core/domain/model/kernel"
	"ezwash/internal/core/domain/model/review"
	"ezwash/internal/pkg/errs"
)

// SubmitReviewCommandHandler handles customers reviewing delivered orders.
// The review insert and the order's review-submitted flag land in one
// transaction, so the one-review-per-order rule holds even under concurrent
// submissions; the unique review index backs it up.
type SubmitReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewSubmitReviewCommandHandler creates a handler for review submission.
func NewSubmitReviewCommandHandler(uowFactory ReviewUoWFactory) SubmitReviewCommandHandler {
	return SubmitReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review submission command.
//
// An order that does not exist and an order that belongs to someone else
// produce the same not-found error, so customers cannot probe for other
// customers' order identifiers.
func (h *SubmitReviewCommandHandler) Handle(ctx context.Context, cmd SubmitReviewCommand) error {
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

	if !aggregate.CustomerID().IsEqual(cmd.CustomerID()) {
		return errs.NewObjectNotFoundError("order_id", cmd.OrderID().String())
	}

	if err = aggregate.MarkReviewSubmitted(); err != nil {
		return err
	}

	newReview, err := review.NewReview(
		kernel.NewUUID(),
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.Rating(),
		cmd.Comment(),
	)
	if err != nil {
		return err
	}

	if err = uow.ReviewRepository().Add(ctx, newReview); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
