package order

import (
	"time"

	"ezwash/internal/core/domain/model/kernel"
	"ezwash/internal/pkg/errs"
)

// StatusChange is one immutable entry of an order's audit trail, recorded on
// every transition. Entries are owned by the order they are embedded in and
// never referenced independently.
type StatusChange struct {
	status  Status
	at      time.Time
	actorID kernel.UUID
	note    string
}

// NewStatusChange creates a validated audit entry.
func NewStatusChange(status Status, at time.Time, actorID kernel.UUID, note string) (StatusChange, error) {
	if err := status.Validate(); err != nil {
		return StatusChange{}, err
	}
	if at.IsZero() {
		return StatusChange{}, errs.NewValueIsRequiredError("timestamp")
	}
	if err := actorID.Validate(); err != nil {
		return StatusChange{}, err
	}
	return StatusChange{status: status, at: at, actorID: actorID, note: note}, nil
}

// Status returns the status the order moved to.
func (c StatusChange) Status() Status {
	return c.status
}

// At returns when the transition was applied.
func (c StatusChange) At() time.Time {
	return c.at
}

// ActorID returns the identity that applied the transition.
func (c StatusChange) ActorID() kernel.UUID {
	return c.actorID
}

// Note returns the optional free-text note attached to the transition.
func (c StatusChange) Note() string {
	return c.note
}
