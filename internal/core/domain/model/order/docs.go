// Package order provides the Order aggregate root of the ordering backend.
//
// The package includes:
//   - Order: identity, owner, kitchen completion flag and pickup confirmation
//   - Confirmation: the one-shot binding of an order to a slot at an instant
//
// Key business rules:
//   - An order may exist without an owner; a user-scoped order references exactly one user
//   - An order is either unconfirmed or confirmed into exactly one slot
//   - Confirmation happens at most once and is never undone
//   - The confirmation instant is set if and only if a slot is attached
//   - Marking an order as made is idempotent and independent of confirmation
package order
