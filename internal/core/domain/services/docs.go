// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the laundry system. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - ReferralPolicy: A domain service computing ambassador commission for delivered orders
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
