// Package review provides the Review entity: a customer's one-time star
// rating of a delivered order. Reviews gate on delivery, allow one submission
// per order, and feed two read models: a public feed of high ratings and a
// moderation list for operations staff.
package review
