package dom

// NodeList is an ordered list of nodes, in document order when it comes from
// a query.
// https://dom.spec.whatwg.org/#nodelist
type NodeList []*Node

// Contains returns the index of n in the list, comparing the underlying tree
// node, or -1.
func (h NodeList) Contains(n *Node) int {
	for i := range h {
		if h[i].n == n.n {
			return i
		}
	}
	return -1
}

