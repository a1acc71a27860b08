package dom

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// CSSSelector builds a selector path that identifies n uniquely within its
// document: "#id" when the element has an id no other element shares,
// otherwise the parent's path, " > ", the tag name and classes, and an
// :nth-child(n) suffix when a sibling would match the same step. Identifiers
// are escaped so the path can be queried again. Non-element nodes yield "".
func (n *Node) CSSSelector() string {
	if n.NodeType() != ElementNode {
		return ""
	}
	if id := n.ID(); id != "" && idCount(root(n.n), id) == 1 {
		return "#" + EscapeIdentifier(id)
	}

	step := EscapeIdentifier(n.NodeName())
	for _, c := range n.ClassNames() {
		step += "." + EscapeIdentifier(c)
	}

	parent := n.Parent()
	if parent == nil || parent.NodeType() != ElementNode {
		return step
	}

	siblings := parent.ElementChildren()
	similar := 0
	for _, s := range siblings {
		if sameStep(s, n) {
			similar++
		}
	}
	if similar > 1 {
		step += ":nth-child(" + strconv.Itoa(siblings.Contains(n)+1) + ")"
	}
	return parent.CSSSelector() + " > " + step
}

// sameStep reports whether candidate would be matched by the tag and class
// step generated for n.
func sameStep(candidate, n *Node) bool {
	if candidate.NodeName() != n.NodeName() {
		return false
	}
	have := make(map[string]bool)
	for _, c := range candidate.ClassNames() {
		have[c] = true
	}
	for _, c := range n.ClassNames() {
		if !have[c] {
			return false
		}
	}
	return true
}

func root(n *html.Node) *html.Node {
	for n.Parent != nil {
		n = n.Parent
	}
	return n
}

func idCount(n *html.Node, id string) int {
	count := 0
	if n.Type == html.ElementNode && Wrap(n).ID() == id {
		count++
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		count += idCount(c, id)
	}
	return count
}

// EscapeIdentifier serializes s as a CSS identifier, escaping the characters
// that would otherwise end or change the meaning of a selector.
// https://drafts.csswg.org/cssom/#serialize-an-identifier
func EscapeIdentifier(s string) string {
	var sb strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r == 0:
			sb.WriteRune('\uFFFD')
		case r <= 0x1f || r == 0x7f,
			i == 0 && r >= '0' && r <= '9',
			i == 1 && r >= '0' && r <= '9' && runes[0] == '-':
			fmt.Fprintf(&sb, "\\%x ", r)
		case i == 0 && r == '-' && len(runes) == 1:
			sb.WriteString("\\-")
		case r >= 0x80 || r == '-' || r == '_' ||
			r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
			sb.WriteRune(r)
		default:
			sb.WriteByte('\\')
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
