package dom

import (
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// String dumps the subtree rooted at n in the html5lib tree-construction test
// format:
//
//	#document
//	| <html>
//	|   <body>
//	|     class="x"
//	|     "text"
func (n *Node) String() string {
	var sb strings.Builder
	serialize(&sb, n.n, 0)
	return strings.TrimRight(sb.String(), "\n")
}

func serialize(sb *strings.Builder, n *html.Node, ident int) {
	if n.Type != html.DocumentNode {
		sb.WriteString(indent(ident))
	}
	sb.WriteString(serializeNodeType(n, ident+1))
	sb.WriteByte('\n')
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		serialize(sb, c, ident+1)
	}
}

func indent(ident int) string {
	spaces := "| "
	for i := 1; i < ident; i++ {
		spaces += "  "
	}
	return spaces
}

func serializeNodeType(n *html.Node, ident int) string {
	switch n.Type {
	case html.ElementNode:
		e := "<"
		switch n.Namespace {
		case "svg":
			e += "svg "
		case "math":
			e += "math "
		}
		e += n.Data + ">"

		// attribute lines are sorted so the dump is stable
		attrs := append([]html.Attribute(nil), n.Attr...)
		sort.SliceStable(attrs, func(i, j int) bool {
			return attrs[i].Namespace+attrs[i].Key < attrs[j].Namespace+attrs[j].Key
		})
		spaces := indent(ident)
		for _, a := range attrs {
			var ns string
			if a.Namespace != "" {
				ns = a.Namespace + " "
			}
			e += "\n" + spaces + ns + a.Key + "=\"" + a.Val + "\""
		}
		return e
	case html.TextNode:
		return "\"" + n.Data + "\""
	case html.CommentNode:
		return "<!-- " + n.Data + " -->"
	case html.DoctypeNode:
		d := "<!DOCTYPE " + n.Data
		var public, system string
		for _, a := range n.Attr {
			switch a.Key {
			case "public":
				public = a.Val
			case "system":
				system = a.Val
			}
		}
		if public == "" && system == "" {
			return d + ">"
		}
		return d + " \"" + public + "\" \"" + system + "\">"
	case html.DocumentNode:
		return "#document"
	default:
		return ""
	}
}
