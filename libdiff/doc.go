// Package libdiff computes structural diffs between document trees.
//
// A diff is itself a document: changed positions become objects with a "-"
// entry for the removed side and a "+" entry for the added side, so diffs
// can be stored and rendered like any other tree.
//
//	d := libdiff.DiffNode(oldRoot, newRoot) // nil when equal
//
// Object diffs assume the usual case of unique field names; under
// duplicate names only the first entry per name is tracked.
package libdiff
