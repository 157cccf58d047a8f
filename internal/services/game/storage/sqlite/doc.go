// Package sqlite persists campaign metadata, the shared campaign state
// document, and telemetry events in a single SQLite database. Document
// writes are guarded by an optimistic revision check so concurrent faction
// clients cannot silently overwrite each other's turns.
package sqlite
