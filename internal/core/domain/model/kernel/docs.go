// Package kernel provides core domain primitives shared by the ordering aggregates.
//
// The package includes:
//   - ID: A value object for store-assigned identities with validation and comparison
//   - Clock: The source of "now" for state transitions, bound to a civil time zone
//
// Aggregates reference each other only through IDs (an order holds a slot ID and a
// user ID, never the slot or user itself), which keeps the model free of cycles.
package kernel
