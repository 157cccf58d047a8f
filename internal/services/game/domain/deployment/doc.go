// Package deployment models forces, cards, and task forces that are in
// transit after being ordered, and the one-time transition that makes them
// active.
//
// The package is organized as three cooperating passes over value snapshots:
//
// # Collection
//
// Collect scans the pending lists for one faction and returns the records
// that have become active under the current clock, paired with their resolved
// entities. Faction scoping is structural: a caller can only ever see its own
// side's arrivals.
//
// # Activation
//
// Activate applies arrivals to the owning collections (area card lists,
// pending flags) and strips every consumed record, making repeated activation
// under the same clock a no-op.
//
// # Janitor
//
// Sweep keeps the pending lists referentially consistent while the entity
// graph is mutated by two independent clients: records pointing at destroyed
// units, annihilated task forces, or deleted areas and task forces are
// pruned by idempotent filter passes in a fixed order.
//
// Nothing here mutates a caller's slices; every function returns rewritten
// copies and the caller owns the read/merge/write cycle.
package deployment
