// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between the domain model and the relational layout
// with jsonb columns for line items and the status audit trail.
package orderrepo

import (
	"encoding/json"
	"time"

	"ezwash/internal/core/domain/model/kernel"
	"ezwash/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items and the audit trail live in jsonb columns; the queries side
// reads the same layouts without loading the aggregate.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID         string    `gorm:"uniqueIndex"`
	CustomerID      uuid.UUID `gorm:"type:uuid;index"`
	CustomerName    string
	Items           datatypes.JSON `gorm:"type:jsonb"`
	TotalCents      int64
	Status          int `gorm:"index"`
	Street          string
	Area            *string
	Landmark        *string
	Phone           string
	RiderID         *uuid.UUID `gorm:"type:uuid;index"`
	RiderName       *string
	History         datatypes.JSON `gorm:"type:jsonb"`
	ReviewSubmitted bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// itemJSON is the jsonb layout of one line item.
type itemJSON struct {
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	PriceCents int64  `json:"price_cents"`
}

// statusChangeJSON is the jsonb layout of one audit trail entry.
type statusChangeJSON struct {
	Status  int       `json:"status"`
	At      time.Time `json:"at"`
	ActorID string    `json:"actor_id"`
	Note    string    `json:"note,omitempty"`
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items := make([]itemJSON, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemJSON{
			Name:       item.Name(),
			Quantity:   item.Quantity(),
			PriceCents: item.UnitPrice().Cents(),
		})
	}
	itemsRaw, err := json.Marshal(items)
	if err != nil {
		return OrderDTO{}, err
	}

	history := make([]statusChangeJSON, 0, len(aggregate.History()))
	for _, change := range aggregate.History() {
		history = append(history, statusChangeJSON{
			Status:  int(change.Status()),
			At:      change.At(),
			ActorID: change.ActorID().String(),
			Note:    change.Note(),
		})
	}
	historyRaw, err := json.Marshal(history)
	if err != nil {
		return OrderDTO{}, err
	}

	var riderID *uuid.UUID
	var riderName *string
	if rider := aggregate.Rider(); rider != nil {
		raw := rider.RiderID().Bytes()
		riderID = &raw
		name := rider.Name()
		riderName = &name
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		OrderID:         aggregate.OrderID().String(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		CustomerName:    aggregate.CustomerName(),
		Items:           datatypes.JSON(itemsRaw),
		TotalCents:      aggregate.TotalPrice().Cents(),
		Status:          int(aggregate.Status()),
		Street:          aggregate.Pickup().Street(),
		Area:            nullable(aggregate.Pickup().Area()),
		Landmark:        nullable(aggregate.Pickup().Landmark()),
		Phone:           aggregate.Phone(),
		RiderID:         riderID,
		RiderName:       riderName,
		History:         datatypes.JSON(historyRaw),
		ReviewSubmitted: aggregate.ReviewSubmitted(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}, nil
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder,
// which re-checks every aggregate invariant on the way in.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.OrderIDFromString(dto.OrderID)
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	totalPrice, err := kernel.NewMoneyFromCents(dto.TotalCents)
	if err != nil {
		return nil, err
	}

	var area, landmark string
	if dto.Area != nil {
		area = *dto.Area
	}
	if dto.Landmark != nil {
		landmark = *dto.Landmark
	}
	pickup, err := order.NewAddress(dto.Street, area, landmark)
	if err != nil {
		return nil, err
	}

	var storedItems []itemJSON
	if err = json.Unmarshal(dto.Items, &storedItems); err != nil {
		return nil, err
	}
	items := make([]order.Item, 0, len(storedItems))
	for _, stored := range storedItems {
		price, priceErr := kernel.NewMoneyFromCents(stored.PriceCents)
		if priceErr != nil {
			return nil, priceErr
		}
		item, itemErr := order.NewItem(stored.Name, stored.Quantity, price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var storedHistory []statusChangeJSON
	if err = json.Unmarshal(dto.History, &storedHistory); err != nil {
		return nil, err
	}
	history := make([]order.StatusChange, 0, len(storedHistory))
	for _, stored := range storedHistory {
		actorID, actorErr := kernel.UUIDFromString(stored.ActorID)
		if actorErr != nil {
			return nil, actorErr
		}
		change, changeErr := order.NewStatusChange(
			order.Status(stored.Status), stored.At, actorID, stored.Note)
		if changeErr != nil {
			return nil, changeErr
		}
		history = append(history, change)
	}

	var rider *order.RiderAssignment
	if dto.RiderID != nil {
		riderID, riderErr := kernel.UUIDFromBytes((*dto.RiderID)[:])
		if riderErr != nil {
			return nil, riderErr
		}
		var riderName string
		if dto.RiderName != nil {
			riderName = *dto.RiderName
		}
		assignment, riderErr := order.NewRiderAssignment(riderID, riderName)
		if riderErr != nil {
			return nil, riderErr
		}
		rider = &assignment
	}

	return order.RestoreOrder(
		id,
		orderID,
		customerID,
		dto.CustomerName,
		items,
		totalPrice,
		order.Status(dto.Status),
		pickup,
		dto.Phone,
		rider,
		history,
		dto.ReviewSubmitted,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
