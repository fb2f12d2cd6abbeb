package layout

import (
	"math"

	"github.com/chainscope/chainscope/pkg/trace"
)

// Sampling caps keep the visual readable and the render pass cheap.
// Peers beyond MaxPeers and transactions beyond MaxEdges are omitted.
const (
	// MaxPeers is the maximum number of peer nodes placed on the ring.
	MaxPeers = 14

	// MaxEdges is the maximum number of transaction edges drawn.
	MaxEdges = 40
)

// Node radii in logical pixels. The center node is deliberately larger so
// the focal address stays visually salient.
const (
	CenterRadius = 24.0
	PeerRadius   = 14.0
)

// ringDivisor controls the peer ring radius: min(width, height) / ringDivisor.
const ringDivisor = 2.4

// Node is a positioned graph node. Exactly one node per layout has
// IsCenter set; it is always placed at the canvas center.
type Node struct {
	ID       string  `json:"id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Radius   float64 `json:"radius"`
	IsCenter bool    `json:"is_center,omitempty"`
}

// Edge references two node positions by address. Endpoints that were not
// sampled as peers resolve to the center position when drawn.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Layout is the computed geometry for one trace. Width and Height echo
// the canvas dimensions the layout was computed for.
type Layout struct {
	Address string  `json:"address"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Nodes   []Node  `json:"nodes"`
	Edges   []Edge  `json:"edges,omitempty"`

	// positions indexes nodes by address for endpoint resolution.
	positions map[string]Node
}

// Compute lays out the transaction neighborhood of address on a canvas of
// the given logical dimensions.
//
// Peers are every endpoint address distinct from the focal address, in
// order of first appearance, capped at [MaxPeers]. Peer i of n sits on a
// ring of radius min(width, height)/2.4 at angle i/n·2π, angle zero on
// the positive x-axis, y increasing downward. Edges come from the first
// [MaxEdges] transactions in input order.
//
// The function is pure and deterministic; an empty transaction list
// yields a single center node and no edges.
func Compute(address string, txs []trace.Transaction, width, height float64) Layout {
	cx, cy := width/2, height/2

	center := Node{
		ID:       address,
		X:        cx,
		Y:        cy,
		Radius:   CenterRadius,
		IsCenter: true,
	}

	peers := samplePeers(address, txs)

	l := Layout{
		Address:   address,
		Width:     width,
		Height:    height,
		Nodes:     make([]Node, 0, len(peers)+1),
		positions: make(map[string]Node, len(peers)+1),
	}
	l.Nodes = append(l.Nodes, center)
	l.positions[address] = center

	ring := math.Min(width, height) / ringDivisor
	n := len(peers)
	for i, peer := range peers {
		theta := float64(i) / float64(n) * 2 * math.Pi
		node := Node{
			ID:     peer,
			X:      cx + ring*math.Cos(theta),
			Y:      cy + ring*math.Sin(theta),
			Radius: PeerRadius,
		}
		l.Nodes = append(l.Nodes, node)
		l.positions[peer] = node
	}

	if n == 0 {
		return l
	}

	limit := min(len(txs), MaxEdges)
	l.Edges = make([]Edge, 0, limit)
	for _, tx := range txs[:limit] {
		l.Edges = append(l.Edges, Edge{From: tx.From, To: tx.To})
	}

	return l
}

// samplePeers collects endpoint addresses distinct from the focal address
// in order of first appearance, capped at MaxPeers. The full transaction
// list is scanned so discovery order does not depend on the edge cap.
func samplePeers(address string, txs []trace.Transaction) []string {
	seen := make(map[string]bool, MaxPeers)
	peers := make([]string, 0, MaxPeers)

	add := func(addr string) {
		if addr == address || addr == "" || seen[addr] {
			return
		}
		seen[addr] = true
		if len(peers) < MaxPeers {
			peers = append(peers, addr)
		}
	}

	for _, tx := range txs {
		add(tx.From)
		add(tx.To)
		if len(peers) == MaxPeers {
			break
		}
	}

	return peers
}

// Position resolves an address to its node position. Addresses outside
// the sampled peer set fall back to the center position; this is the
// documented degenerate case for edges whose endpoint was not drawn.
func (l *Layout) Position(address string) Node {
	if l.positions == nil {
		// Rebuild the index after JSON decoding.
		l.positions = make(map[string]Node, len(l.Nodes))
		for _, n := range l.Nodes {
			l.positions[n.ID] = n
		}
	}
	if n, ok := l.positions[address]; ok {
		return n
	}
	return l.Center()
}

// Center returns the focal node. A layout always has one.
func (l *Layout) Center() Node {
	return l.Nodes[0]
}

// Label returns the display label for a node: the elided focal address
// for the center node, the elided address otherwise.
func (l *Layout) Label(n Node) string {
	return trace.ElideAddress(n.ID)
}
