// Package forces holds the entity collections shared across the deployment
// engine: units, task forces, operational areas, and catalog cards.
//
// These collections are owned by the surrounding synchronized game-state
// document. Engine code reads them as value snapshots and returns rewritten
// copies; nothing in this package or its consumers mutates a caller's slice
// in place.
package forces
