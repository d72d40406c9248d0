// Package ir defines the document tree for JSON data.
//
// A document is a tree of Node values. Each node is one of three kinds:
//
//   - Object: an ordered sequence of (name, child) entries. Names need not
//     be unique; lookups return the first match and insertion order is the
//     serialization order.
//   - Array: an ordered sequence of children.
//   - Value: a scalar leaf holding null, a string, a number, or a bool as
//     canonical text. Numbers stay text until a numeric accessor parses
//     them, so decimal values round-trip without binary float drift.
//
// Trees are built either by the parser (see the parse package) or directly:
//
//	obj := ir.NewObject()
//	obj.Add("name", ir.FromString("alice"))
//	obj.Add("age", ir.FromInt(30))
//
// Every node has exactly one owner. Attaching an already-owned node via Add
// or Append attaches a deep clone; Clone copies whole subtrees.
//
// Misuse (using a node as the wrong kind, looking up a missing entry)
// surfaces as ErrType and ErrNotFound. These indicate caller bugs, matching
// the split between misuse errors here and data errors in the parse package.
//
// Nodes are not safe for concurrent mutation; clone per goroutine or
// synchronize externally.
package ir
