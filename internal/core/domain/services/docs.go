// Package services holds the rules that span more than one aggregate.
//
// SlotBooker decides whether an order may be confirmed into a slot and, if so,
// stamps the order and takes one place in the slot. It changes the aggregates in
// memory only; persisting both is the caller's transaction.
package services
