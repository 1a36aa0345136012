// Package commission provides the Commission entity: the referral reward an
// ambassador earns when an order from a referred customer is delivered.
// Crediting is idempotent per order; the rate lives in the referral policy
// domain service.
package commission
