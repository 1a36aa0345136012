// Package order provides domain entities and business logic for laundry order
// management. It implements the Order aggregate root with lifecycle management,
// rider assignment, and an append-only audit trail.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, properties, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - Item, Address: Value objects for line items and the pickup location
//   - RiderAssignment: Value object binding a rider identity to its cached name
//   - StatusChange: One entry of the audit trail
//
// Key business rules:
//   - Orders must have a valid identifier, owning customer, pickup address, and items
//   - Order status follows a defined workflow from Pending to Delivered or Cancelled
//   - Rider-owned transitions are only valid for the assigned rider
//   - The audit trail is append-only and always ends with the current status
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
