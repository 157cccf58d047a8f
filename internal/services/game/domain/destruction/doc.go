// Package destruction derives the destruction log from unit damage state.
//
// The log is a recomputed view: an entry exists exactly while the unit's
// taken damage meets its capacity. The destroyed predicates defined here are
// also what the deployment janitor uses to prune records referencing
// destroyed entities.
package destruction
