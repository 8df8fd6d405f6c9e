package render

// expandPortals splits a tree into the main forest and the portal forest.
// Portal nodes are removed and their children appended to the portal forest
// in depth-first discovery order. Portals inside hoisted subtrees are hoisted
// in turn, so neither forest contains a portal.
func expandPortals(root *node) (main, portals []*node) {
	if root.kind == portalNode {
		panic("render: portal root")
	}
	portals = hoist(root, nil)
	// Hoisting may append more portal children to the end of the forest;
	// keep going until no portal is left anywhere.
	for i := 0; i < len(portals); {
		if portals[i].kind == portalNode {
			children := portals[i].children
			portals = append(portals[:i], portals[i+1:]...)
			portals = append(portals, children...)
			continue
		}
		portals = hoist(portals[i], portals)
		i++
	}
	return []*node{root}, portals
}

// hoist removes the portals among the descendants of n, appending their
// children to dst. It does not look inside the removed portals.
func hoist(n *node, dst []*node) []*node {
	if n.kind != elementNode {
		return dst
	}
	kept := n.children[:0]
	for _, child := range n.children {
		if child.kind == portalNode {
			dst = append(dst, child.children...)
			continue
		}
		dst = hoist(child, dst)
		kept = append(kept, child)
	}
	n.children = kept
	return dst
}
