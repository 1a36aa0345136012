// Package http is the inbound HTTP adapter: an echo server translating the
// REST surface into commands and queries. Handlers never touch the domain
// directly; they build guard-validated commands and hand them to the
// application layer, then map the error taxonomy onto status codes.
package http

import (
	"net/http"

	"ezwash/internal/core/application/usecases/commands"
	"ezwash/internal/core/application/usecases/queries"
	"ezwash/internal/core/domain/model/actor"
	"ezwash/internal/core/domain/model/kernel"
	"ezwash/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler    commands.PlaceOrderCommandHandler
	acceptOrderHandler   commands.AcceptOrderCommandHandler
	assignRiderHandler   commands.AssignRiderCommandHandler
	acceptTaskHandler    commands.AcceptTaskCommandHandler
	markPickedUpHandler  commands.MarkPickedUpCommandHandler
	updateStatusHandler  commands.UpdateStatusCommandHandler
	markDeliveredHandler commands.MarkDeliveredCommandHandler
	submitReviewHandler  commands.SubmitReviewCommandHandler

	// Query handlers
	getOrderHandler              queries.GetOrderQueryHandler
	getCustomerOrdersHandler     queries.GetCustomerOrdersQueryHandler
	getRiderQueueHandler         queries.GetRiderQueueQueryHandler
	getAdminOrdersHandler        queries.GetAdminOrdersQueryHandler
	getPublicReviewsHandler      queries.GetPublicReviewsQueryHandler
	getAdminReviewsHandler       queries.GetAdminReviewsQueryHandler
	getOperationsStatsHandler    queries.GetOperationsStatsQueryHandler
	getAmbassadorEarningsHandler queries.GetAmbassadorEarningsQueryHandler
}

// NewServer creates the HTTP server with its command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	assignRiderHandler commands.AssignRiderCommandHandler,
	acceptTaskHandler commands.AcceptTaskCommandHandler,
	markPickedUpHandler commands.MarkPickedUpCommandHandler,
	updateStatusHandler commands.UpdateStatusCommandHandler,
	markDeliveredHandler commands.MarkDeliveredCommandHandler,
	submitReviewHandler commands.SubmitReviewCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getRiderQueueHandler queries.GetRiderQueueQueryHandler,
	getAdminOrdersHandler queries.GetAdminOrdersQueryHandler,
	getPublicReviewsHandler queries.GetPublicReviewsQueryHandler,
	getAdminReviewsHandler queries.GetAdminReviewsQueryHandler,
	getOperationsStatsHandler queries.GetOperationsStatsQueryHandler,
	getAmbassadorEarningsHandler queries.GetAmbassadorEarningsQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:            placeOrderHandler,
		acceptOrderHandler:           acceptOrderHandler,
		assignRiderHandler:           assignRiderHandler,
		acceptTaskHandler:            acceptTaskHandler,
		markPickedUpHandler:          markPickedUpHandler,
		updateStatusHandler:          updateStatusHandler,
		markDeliveredHandler:         markDeliveredHandler,
		submitReviewHandler:          submitReviewHandler,
		getOrderHandler:              getOrderHandler,
		getCustomerOrdersHandler:     getCustomerOrdersHandler,
		getRiderQueueHandler:         getRiderQueueHandler,
		getAdminOrdersHandler:        getAdminOrdersHandler,
		getPublicReviewsHandler:      getPublicReviewsHandler,
		getAdminReviewsHandler:       getAdminReviewsHandler,
		getOperationsStatsHandler:    getOperationsStatsHandler,
		getAmbassadorEarningsHandler: getAmbassadorEarningsHandler,
	}
}

// RegisterRoutes mounts the REST surface on the echo instance. The public
// endpoints carry no identity; everything else goes through the actor
// middleware and a role gate.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.GET("/reviews/public", s.GetPublicReviews)

	customer := api.Group("", ActorMiddleware(), RequireRole(actor.Customer))
	customer.POST("/orders", s.PlaceOrder)
	customer.GET("/orders", s.GetCustomerOrders)
	customer.POST("/orders/:order_id/review", s.SubmitReview)

	// Order detail is readable by every role; the query scopes the rows.
	api.GET("/orders/:order_id", s.GetOrder, ActorMiddleware())

	admin := api.Group("/admin", ActorMiddleware(), RequireRole(actor.Operations))
	admin.POST("/orders/:id/accept", s.AcceptOrder)
	admin.POST("/orders/:id/assign", s.AssignRider)
	admin.POST("/orders/:id/status", s.UpdateStatus)
	admin.GET("/orders", s.GetAdminOrders)
	admin.GET("/stats", s.GetOperationsStats)
	admin.GET("/reviews", s.GetAdminReviews)

	rider := api.Group("/rider", ActorMiddleware(), RequireRole(actor.Rider))
	rider.POST("/orders/:id/accept", s.AcceptTask)
	rider.POST("/orders/:id/pickup", s.MarkPickedUp)
	rider.POST("/orders/:id/deliver", s.MarkDelivered)
	rider.GET("/orders", s.GetRiderQueue)

	ambassador := api.Group("/ambassador", ActorMiddleware(), RequireRole(actor.Ambassador))
	ambassador.GET("/earnings", s.GetAmbassadorEarnings)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	requester, _ := actorFrom(ctx)

	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}
	if err := ctx.Validate(&req); err != nil {
		return respondError(ctx, err)
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, it := range req.Items {
		price, err := kernel.NewMoneyFromFloat(it.UnitPrice)
		if err != nil {
			return respondError(ctx, err)
		}
		item, err := order.NewItem(it.Name, it.Quantity, price)
		if err != nil {
			return respondError(ctx, err)
		}
		items = append(items, item)
	}

	total, err := kernel.NewMoneyFromFloat(req.TotalPrice)
	if err != nil {
		return respondError(ctx, err)
	}

	pickup, err := order.NewAddress(req.Street, req.Area, req.Landmark)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewPlaceOrderCommand(
		requester.ID(), req.CustomerName, items, total, pickup, req.Phone)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"order_id": orderID.String()})
}

// GetCustomerOrders handles GET /api/v1/orders.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	requester, _ := actorFrom(ctx)

	query, err := queries.NewGetCustomerOrdersQuery(requester.ID())
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /api/v1/orders/:order_id.
func (s *Server) GetOrder(ctx echo.Context) error {
	requester, _ := actorFrom(ctx)

	orderID, err := kernel.OrderIDFromString(ctx.Param("order_id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, requester)
	if err != nil {
		return respondError(ctx, err)
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, detail)
}

// SubmitReview handles POST /api/v1/orders/:order_id/review.
func (s *Server) SubmitReview(ctx echo.Context) error {
	requester, _ := actorFrom(ctx)

	orderID, err := kernel.OrderIDFromString(ctx.Param("order_id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req SubmitReviewRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}
	if err = ctx.Validate(&req); err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSubmitReviewCommand(orderID, requester.ID(), req.Rating, req.Comment)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.submitReviewHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetPublicReviews handles GET /api/v1/reviews/public.
func (s *Server) GetPublicReviews(ctx echo.Context) error {
	reviews, err := s.getPublicReviewsHandler.Handle(
		ctx.Request().Context(), queries.NewGetPublicReviewsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, reviews)
}

// AcceptOrder handles POST /api/v1/admin/orders/:id/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	requester, _ := actorFrom(ctx)

	orderID, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req AcceptOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}
	if err = ctx.Validate(&req); err != nil {
		return respondError(ctx, err)
	}

	var riderID *kernel.UUID
	if req.RiderID != nil {
		id, idErr := kernel.UUIDFromString(*req.RiderID)
		if idErr != nil {
			return respondError(ctx, idErr)
		}
		riderID = &id
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, requester.ID(), riderID, req.Note)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// AssignRider handles POST /api/v1/admin/orders/:id/assign.
func (s *Server) AssignRider(ctx echo.Context) error {
	requester, _ := actorFrom(ctx)

	orderID, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req AssignRiderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}
	if err = ctx.Validate(&req); err != nil {
		return respondError(ctx, err)
	}

	riderID, err := kernel.UUIDFromString(req.RiderID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAssignRiderCommand(orderID, riderID, requester.ID(), req.Note)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.assignRiderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// UpdateStatus handles POST /api/v1/admin/orders/:id/status.
func (s *Server) UpdateStatus(ctx echo.Context) error {
	requester, _ := actorFrom(ctx)

	orderID, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}
	if err = ctx.Validate(&req); err != nil {
		return respondError(ctx, err)
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateStatusCommand(orderID, target, requester.ID(), req.Note)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetAdminOrders handles GET /api/v1/admin/orders with an optional ?status=
// filter.
func (s *Server) GetAdminOrders(ctx echo.Context) error {
	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		statusFilter = &status
	}

	query, err := queries.NewGetAdminOrdersQuery(statusFilter)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getAdminOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetOperationsStats handles GET /api/v1/admin/stats.
func (s *Server) GetOperationsStats(ctx echo.Context) error {
	stats, err := s.getOperationsStatsHandler.Handle(
		ctx.Request().Context(), queries.NewGetOperationsStatsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, stats)
}

// GetAdminReviews handles GET /api/v1/admin/reviews.
func (s *Server) GetAdminReviews(ctx echo.Context) error {
	reviews, err := s.getAdminReviewsHandler.Handle(
		ctx.Request().Context(), queries.NewGetAdminReviewsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, reviews)
}

// AcceptTask handles POST /api/v1/rider/orders/:id/accept.
func (s *Server) AcceptTask(ctx echo.Context) error {
	requester, _ := actorFrom(ctx)

	orderID, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAcceptTaskCommand(orderID, requester.ID())
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.acceptTaskHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// MarkPickedUp handles POST /api/v1/rider/orders/:id/pickup.
func (s *Server) MarkPickedUp(ctx echo.Context) error {
	requester, _ := actorFrom(ctx)

	orderID, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req RiderActionRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewMarkPickedUpCommand(orderID, requester.ID(), req.Note)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.markPickedUpHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// MarkDelivered handles POST /api/v1/rider/orders/:id/deliver.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	requester, _ := actorFrom(ctx)

	orderID, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req RiderActionRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewMarkDeliveredCommand(orderID, requester.ID(), req.Note)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.markDeliveredHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetRiderQueue handles GET /api/v1/rider/orders.
func (s *Server) GetRiderQueue(ctx echo.Context) error {
	requester, _ := actorFrom(ctx)

	query, err := queries.NewGetRiderQueueQuery(requester.ID())
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getRiderQueueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetAmbassadorEarnings handles GET /api/v1/ambassador/earnings.
func (s *Server) GetAmbassadorEarnings(ctx echo.Context) error {
	requester, _ := actorFrom(ctx)

	query, err := queries.NewGetAmbassadorEarningsQuery(requester.ID())
	if err != nil {
		return respondError(ctx, err)
	}

	earnings, err := s.getAmbassadorEarningsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, earnings)
}
