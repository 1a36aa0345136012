// Package userdirectory reads the external user registry. The users table
// is owned by the identity system; this adapter only ever selects from it,
// resolving riders for assignment and referral links for commission
// crediting.
package userdirectory

import (
	"context"

	"ezwash/internal/core/domain/model/kernel"
	"ezwash/internal/core/domain/model/order"
	"ezwash/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// riderRole is the role label the registry stores for rider accounts.
const riderRole = "RIDER"

// userRow mirrors the registry columns this adapter reads.
type userRow struct {
	ID         uuid.UUID
	Name       string
	Role       string
	IsActive   bool
	ReferredBy *uuid.UUID
}

// GormUserDirectory implements RiderDirectory over the shared registry
// table.
type GormUserDirectory struct {
	db *gorm.DB
}

// NewGormUserDirectory creates a directory over the user registry.
func NewGormUserDirectory(db *gorm.DB) *GormUserDirectory {
	return &GormUserDirectory{db: db}
}

// ResolveActiveRider resolves a rider identity into an assignment carrying
// the registry display name. A missing, non-rider, or deactivated identity
// resolves to an ObjectNotFoundError; callers cannot assign it.
func (d *GormUserDirectory) ResolveActiveRider(
	ctx context.Context,
	riderID kernel.UUID,
) (order.RiderAssignment, error) {
	if err := riderID.Validate(); err != nil {
		return order.RiderAssignment{}, err
	}

	var row userRow
	err := d.db.WithContext(ctx).
		Raw(`
			SELECT id, name, role, is_active, referred_by
			FROM users
			WHERE id = ? AND role = ? AND is_active
		`, riderID.Bytes(), riderRole).
		Scan(&row).Error
	if err != nil {
		return order.RiderAssignment{}, err
	}
	if row.ID == uuid.Nil {
		return order.RiderAssignment{}, errs.NewObjectNotFoundError("rider_id", riderID.String())
	}

	return order.NewRiderAssignment(riderID, row.Name)
}

// ResolveReferringAmbassador returns the ambassador who referred the
// customer, or nil when the customer signed up without a referral. The link
// is frozen at signup; a deactivated ambassador still earns.
func (d *GormUserDirectory) ResolveReferringAmbassador(
	ctx context.Context,
	customerID kernel.UUID,
) (*kernel.UUID, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var row userRow
	err := d.db.WithContext(ctx).
		Raw(`
			SELECT id, name, role, is_active, referred_by
			FROM users
			WHERE id = ?
		`, customerID.Bytes()).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil || row.ReferredBy == nil {
		return nil, nil
	}

	ambassadorID, err := kernel.UUIDFromBytes((*row.ReferredBy)[:])
	if err != nil {
		return nil, err
	}
	return &ambassadorID, nil
}
