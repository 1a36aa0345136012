package commands_test

import (
	"testing"

	"ezwash/internal/core/application/usecases/commands"
	"ezwash/internal/core/domain/model/kernel"
	"ezwash/internal/core/domain/model/review"
	"ezwash/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubmitReviewCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	delivered, _ := testDeliveredOrder(t)
	cmd, _ := commands.NewSubmitReviewCommand(delivered.OrderID(), delivered.CustomerID(), 5, "spotless")

	orderRepo := new(MockOrderRepository)
	reviewRepo := new(MockReviewRepository)
	uow := new(MockReviewUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByOrderID", mock.Anything, delivered.OrderID()).Return(delivered, nil).Once(),
		uow.On("ReviewRepository").Return(reviewRepo).Once(),
		reviewRepo.On("Add", mock.Anything, mock.AnythingOfType("*review.Review")).
			Run(func(args mock.Arguments) {
				r := args.Get(1).(*review.Review)
				assert.True(t, r.OrderID().IsEqual(delivered.OrderID()))
				assert.Equal(t, 5, r.Rating())
				assert.Equal(t, "spotless", r.Comment())
			}).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, delivered).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitReviewCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, delivered.ReviewSubmitted())
	orderRepo.AssertExpectations(t)
	reviewRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSubmitReviewCommandHandler_Handle_ForeignOrder(t *testing.T) {
	ctx := t.Context()
	delivered, _ := testDeliveredOrder(t)
	stranger := kernel.NewUUID()
	cmd, _ := commands.NewSubmitReviewCommand(delivered.OrderID(), stranger, 4, "")

	orderRepo := new(MockOrderRepository)
	uow := new(MockReviewUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByOrderID", mock.Anything, delivered.OrderID()).Return(delivered, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitReviewCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	// Someone else's order reads as not found, never as forbidden.
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.False(t, delivered.ReviewSubmitted())
}

func TestSubmitReviewCommandHandler_Handle_NotDelivered(t *testing.T) {
	ctx := t.Context()
	pending := testPendingOrder(t)
	cmd, _ := commands.NewSubmitReviewCommand(pending.OrderID(), pending.CustomerID(), 4, "")

	orderRepo := new(MockOrderRepository)
	uow := new(MockReviewUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByOrderID", mock.Anything, pending.OrderID()).Return(pending, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitReviewCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestSubmitReviewCommandHandler_Handle_SecondReview(t *testing.T) {
	ctx := t.Context()
	delivered, _ := testDeliveredOrder(t)
	require.NoError(t, delivered.MarkReviewSubmitted())
	cmd, _ := commands.NewSubmitReviewCommand(delivered.OrderID(), delivered.CustomerID(), 2, "")

	orderRepo := new(MockOrderRepository)
	uow := new(MockReviewUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByOrderID", mock.Anything, delivered.OrderID()).Return(delivered, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitReviewCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
}

func TestNewSubmitReviewCommand_RatingBounds(t *testing.T) {
	orderID := kernel.NewOrderID()
	customerID := kernel.NewUUID()

	t.Run("should accept ratings within bounds", func(t *testing.T) {
		for rating := review.MinRating; rating <= review.MaxRating; rating++ {
			_, err := commands.NewSubmitReviewCommand(orderID, customerID, rating, "")
			require.NoError(t, err)
		}
	})

	t.Run("should reject ratings outside bounds", func(t *testing.T) {
		for _, rating := range []int{0, -1, 6} {
			_, err := commands.NewSubmitReviewCommand(orderID, customerID, rating, "")

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})
}
