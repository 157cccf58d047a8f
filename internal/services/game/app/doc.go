// Package app wires the campaign engine's pure domain transforms to storage.
//
// Every operation reads the campaign's state document, applies value-snapshot
// transforms from the domain packages, and writes the result back under an
// optimistic revision check. A conflicting write from the other faction's
// client reloads the document and reapplies the transform.
package app
