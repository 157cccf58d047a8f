// Package orders implements the asset-class scheduling path: deployments
// tracked through an explicit order object with a pending/completed status
// instead of a pending-deployment record.
//
// Both surfaces encode the same scheduled -> ready -> activated machine; see
// the schedule package for the shared contract.
package orders
