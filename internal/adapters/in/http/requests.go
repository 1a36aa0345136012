package http

// Request DTOs. Struct tags drive the first validation pass through
// go-playground/validator; domain constructors re-check everything, so a
// DTO slipping through a missing tag still cannot build an invalid command.

// PlaceOrderItemRequest is one line item of a placement request.
type PlaceOrderItemRequest struct {
	Name      string  `json:"name"       validate:"required"`
	Quantity  int     `json:"quantity"   validate:"required,gt=0"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
}

// PlaceOrderRequest is the body of POST /api/v1/orders.
type PlaceOrderRequest struct {
	CustomerName string                  `json:"customer_name" validate:"required"`
	Items        []PlaceOrderItemRequest `json:"items"         validate:"required,min=1,dive"`
	TotalPrice   float64                 `json:"total_price"   validate:"required,gt=0"`
	Street       string                  `json:"street"        validate:"required"`
	Area         string                  `json:"area"`
	Landmark     string                  `json:"landmark"`
	Phone        string                  `json:"phone"         validate:"required"`
}

// AcceptOrderRequest is the body of POST /api/v1/admin/orders/:id/accept.
// The rider is optional: operations can accept first and assign later.
type AcceptOrderRequest struct {
	RiderID *string `json:"rider_id,omitempty" validate:"omitempty,uuid"`
	Note    string  `json:"note,omitempty"`
}

// AssignRiderRequest is the body of POST /api/v1/admin/orders/:id/assign.
type AssignRiderRequest struct {
	RiderID string `json:"rider_id" validate:"required,uuid"`
	Note    string `json:"note,omitempty"`
}

// UpdateStatusRequest is the body of POST /api/v1/admin/orders/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Note   string `json:"note,omitempty"`
}

// RiderActionRequest is the body of the rider pickup and deliver endpoints.
type RiderActionRequest struct {
	Note string `json:"note,omitempty"`
}

// SubmitReviewRequest is the body of POST /api/v1/orders/:order_id/review.
type SubmitReviewRequest struct {
	Rating  int    `json:"rating"  validate:"required,min=1,max=5"`
	Comment string `json:"comment,omitempty"`
}
