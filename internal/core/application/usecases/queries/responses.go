// Package queries contains read-only operations in the CQRS architecture.
// Query handlers run raw SQL over the gorm connection and return flat
// response models shaped for the API; they never load domain aggregates.
package queries

import (
	"database/sql"
	"encoding/json"
	"time"

	"ezwash/internal/core/domain/model/order"
)

// ItemResponse is one line item of an order response.
type ItemResponse struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// StatusChangeResponse is one audit trail entry of an order response.
type StatusChangeResponse struct {
	Status  string    `json:"status"`
	At      time.Time `json:"at"`
	ActorID string    `json:"actor_id"`
	Note    string    `json:"note,omitempty"`
}

// OrderResponse is the flat representation of an order returned by the list
// and detail queries.
type OrderResponse struct {
	OrderID       string                 `json:"order_id"`
	CustomerID    string                 `json:"customer_id"`
	CustomerName  string                 `json:"customer_name"`
	Items         []ItemResponse         `json:"items"`
	TotalPrice    float64                `json:"total_price"`
	Status        string                 `json:"status"`
	Street        string                 `json:"street"`
	Area          string                 `json:"area,omitempty"`
	Landmark      string                 `json:"landmark,omitempty"`
	Phone         string                 `json:"phone"`
	RiderID       string                 `json:"rider_id,omitempty"`
	RiderName     string                 `json:"rider_name,omitempty"`
	History       []StatusChangeResponse `json:"history"`
	ReviewWritten bool                   `json:"review_written"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

// itemStored mirrors the jsonb layout of one order item row.
type itemStored struct {
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	PriceCents int64  `json:"price_cents"`
}

// historyStored mirrors the jsonb layout of one audit trail entry.
type historyStored struct {
	Status  int       `json:"status"`
	At      time.Time `json:"at"`
	ActorID string    `json:"actor_id"`
	Note    string    `json:"note,omitempty"`
}

// orderColumns is the column list shared by every order query; scanOrderRow
// scans in the same sequence.
const orderColumns = `
	order_id,
	customer_id::text,
	customer_name,
	items,
	total_cents,
	status,
	street,
	area,
	landmark,
	phone,
	rider_id::text,
	rider_name,
	history,
	review_submitted,
	created_at,
	updated_at`

// scanOrderRow maps one row of orderColumns onto the response model,
// unpacking the jsonb item and history payloads and converting the stored
// status ordinal into the wire label.
func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var (
		resp       OrderResponse
		itemsRaw   []byte
		historyRaw []byte
		totalCents int64
		status     int
		area       sql.NullString
		landmark   sql.NullString
		riderID    sql.NullString
		riderName  sql.NullString
	)

	if err := rows.Scan(
		&resp.OrderID,
		&resp.CustomerID,
		&resp.CustomerName,
		&itemsRaw,
		&totalCents,
		&status,
		&resp.Street,
		&area,
		&landmark,
		&resp.Phone,
		&riderID,
		&riderName,
		&historyRaw,
		&resp.ReviewWritten,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	); err != nil {
		return OrderResponse{}, err
	}

	var storedItems []itemStored
	if err := json.Unmarshal(itemsRaw, &storedItems); err != nil {
		return OrderResponse{}, err
	}
	resp.Items = make([]ItemResponse, 0, len(storedItems))
	for _, item := range storedItems {
		resp.Items = append(resp.Items, ItemResponse{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: float64(item.PriceCents) / 100,
		})
	}

	var storedHistory []historyStored
	if err := json.Unmarshal(historyRaw, &storedHistory); err != nil {
		return OrderResponse{}, err
	}
	resp.History = make([]StatusChangeResponse, 0, len(storedHistory))
	for _, change := range storedHistory {
		resp.History = append(resp.History, StatusChangeResponse{
			Status:  order.Status(change.Status).String(),
			At:      change.At,
			ActorID: change.ActorID,
			Note:    change.Note,
		})
	}

	resp.TotalPrice = float64(totalCents) / 100
	resp.Status = order.Status(status).String()
	resp.Area = area.String
	resp.Landmark = landmark.String
	resp.RiderID = riderID.String
	resp.RiderName = riderName.String

	return resp, nil
}
