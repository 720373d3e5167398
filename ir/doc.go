// Package ir provides the in-memory representation of parsed JSON values.
//
// # Overview
//
// A JSON document is represented as a tree of [Node] values. The tree is
// produced by the parse package and is purely semantic: it carries no
// position information from the input text.
//
// The IR works as a recursive tagged union structure, where the payload of
// a node is placed in a field depending on the node type.
//
// # Node Types
//
// The Type field indicates the node's type:
//
//   - NullType: null
//   - BoolType: boolean (true/false)
//   - NumberType: numeric value (float64; all JSON numbers collapse to it)
//   - StringType: string value, escapes already decoded
//   - ArrayType: ordered list of nodes
//   - ObjectType: key-value pairs (parallel Fields and Values)
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromFloat(42)
//	flag := ir.FromBool(true)
//	obj := ir.FromMap(map[string]*ir.Node{
//	    "key": ir.FromString("value"),
//	})
//	arr := ir.FromSlice([]*ir.Node{
//	    ir.FromFloat(1),
//	    ir.FromFloat(2),
//	})
//
// # Structure Constraints
//
// Objects hold their members in parallel slices: Fields[i] is a string-typed
// key node and Values[i] the associated value. Keys are unique within one
// object. Member order is whatever order the members were inserted in; it is
// not part of any equality or comparison contract, [Equal], [Compare] and
// [Node.Hash] are all insensitive to it.
//
// Every child node carries Parent, ParentIndex and (for object members)
// ParentField backlinks, set once at construction. The tree is acyclic and
// finite, each container exclusively owns its children, and nodes are not
// mutated after construction.
package ir
