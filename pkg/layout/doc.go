// Package layout computes the 2D geometry for an address's transaction
// neighborhood.
//
// The engine is a pure function of its inputs: the focal address, the
// transaction list, and the canvas dimensions. Identical inputs always
// produce bit-identical node positions, so re-rendering unchanged data
// yields a stable image and tests can assert exact geometry.
//
// # Shape
//
// The focal address sits at the canvas center; peer addresses are placed
// on a ring around it at uniform angular spacing, in order of first
// appearance in the transaction list. Peer and edge counts are capped
// ([MaxPeers], [MaxEdges]) so rendering cost stays bounded regardless of
// input size — a deliberate sampling policy, not a completeness guarantee.
//
// # Usage
//
//	l := layout.Compute(addr, res.Transactions, 800, 600)
//	for _, n := range l.Nodes {
//	    // n.X, n.Y, n.Radius, n.IsCenter
//	}
package layout
