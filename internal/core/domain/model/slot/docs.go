// Package slot provides the Slot aggregate: a bounded-capacity pickup window
// that confirmed orders are booked into.
//
// Key business rules:
//   - A slot has a capacity (limit) of zero or more orders
//   - Occupancy (actual) always satisfies 0 <= actual <= limit
//   - Occupancy only grows, one unit per confirmed order; it is never released
package slot
