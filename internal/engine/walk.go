package engine

import (
	"context"

	"github.com/mj1618/autosave-cli/internal/platform"
)

// DefaultMaxDepth bounds the walk below the scope window.
const DefaultMaxDepth = 3

// Node is one element reached by Walk.
type Node struct {
	Element platform.Element
	Depth   int // 0 for the root
	Parent  int // index of the parent in the walk output, -1 for the root
}

// Walk flattens root and its descendants down to maxDepth levels below it,
// in depth-first pre-order with root first. A Children failure ends that
// branch only and is reported through onErr. Depth is the only bound; no
// visited set is kept, so a cyclic tree still terminates.
//
// The walk stops early, returning what it has, once ctx is done.
func Walk(ctx context.Context, root platform.Element, maxDepth int, onErr func(depth int, err error)) []Node {
	nodes := []Node{{Element: root, Depth: 0, Parent: -1}}

	var visit func(idx int)
	visit = func(idx int) {
		n := nodes[idx]
		if n.Depth >= maxDepth || ctx.Err() != nil {
			return
		}
		kids, err := n.Element.Children()
		if err != nil {
			if onErr != nil {
				onErr(n.Depth, err)
			}
			return
		}
		for _, kid := range kids {
			if kid == nil {
				continue
			}
			if ctx.Err() != nil {
				return
			}
			nodes = append(nodes, Node{Element: kid, Depth: n.Depth + 1, Parent: idx})
			visit(len(nodes) - 1)
		}
	}
	visit(0)

	return nodes
}
