// Package model defines the data structures shared by langreport packages.
//
// This package contains the following main types:
//   - Tally: the ordered per-language byte counts returned by the API
//   - Report: the tally sorted by size with percentage shares
//   - Run: the state carried through one generator pipeline run
//
// All values are transient. They are built and discarded within a single
// process invocation; only the target document persists.
package model
