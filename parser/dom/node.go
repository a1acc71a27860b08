package dom

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

type NodeType uint16

const (
	ElementNode NodeType = iota + 1
	TextNode
	CommentNode
	DocumentNode
	DocumentTypeNode
	OtherNode
)

// Node is a read-only handle onto one node of a parsed tree. The tree is owned
// by whoever parsed it; a Node never mutates it.
// https://dom.spec.whatwg.org/#node
type Node struct {
	n *html.Node
}

// Wrap returns the handle for n, or nil when n is nil.
func Wrap(n *html.Node) *Node {
	if n == nil {
		return nil
	}
	return &Node{n: n}
}

// NewDocumentFragment makes a document node holding children, so that a
// parsed fragment can be queried like a whole document. The children must not
// already have a parent.
func NewDocumentFragment(children NodeList) *Node {
	doc := &html.Node{Type: html.DocumentNode}
	for _, c := range children {
		doc.AppendChild(c.n)
	}
	return Wrap(doc)
}

// HTMLNode exposes the underlying parse tree node.
func (n *Node) HTMLNode() *html.Node {
	return n.n
}

func (n *Node) NodeType() NodeType {
	switch n.n.Type {
	case html.ElementNode:
		return ElementNode
	case html.TextNode:
		return TextNode
	case html.CommentNode:
		return CommentNode
	case html.DocumentNode:
		return DocumentNode
	case html.DoctypeNode:
		return DocumentTypeNode
	default:
		return OtherNode
	}
}

// NodeName is the lower-case tag name of an element, "" for anything else.
func (n *Node) NodeName() string {
	if n.n.Type != html.ElementNode {
		return ""
	}
	return strings.ToLower(n.n.Data)
}

func (n *Node) Parent() *Node {
	return Wrap(n.n.Parent)
}

// ElementChildren returns the element children of n in document order.
func (n *Node) ElementChildren() NodeList {
	var children NodeList
	for c := n.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			children = append(children, Wrap(c))
		}
	}
	return children
}

// Attributes returns the raw attribute list in source order. Duplicate keys
// are kept; see NewNamedNodeMap for the de-duplicated view.
func (n *Node) Attributes() []Attr {
	attrs := make([]Attr, 0, len(n.n.Attr))
	for _, a := range n.n.Attr {
		attrs = append(attrs, Attr{Namespace: a.Namespace, Name: a.Key, Value: a.Val})
	}
	return attrs
}

// ID returns the first id attribute value.
func (n *Node) ID() string {
	return n.firstAttr("id")
}

// ClassNames splits the class attribute on whitespace.
func (n *Node) ClassNames() []string {
	return strings.Fields(n.firstAttr("class"))
}

func (n *Node) firstAttr(key string) string {
	for _, a := range n.n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

// OuterHTML serializes n and its subtree.
func (n *Node) OuterHTML() string {
	var buf bytes.Buffer
	if err := html.Render(&buf, n.n); err != nil {
		return ""
	}
	return buf.String()
}

// OwnText is the text of the direct text children of n, whitespace
// normalized. Text inside descendant elements is skipped.
// For <p>Hello <b>there</b> now!</p> it is "Hello now!".
// Script, style and template contents are data, not text, so those elements
// have no own text.
func (n *Node) OwnText() string {
	if n.n.Type == html.ElementNode && isData(n.n.DataAtom) {
		return ""
	}
	var sb strings.Builder
	for c := n.n.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case c.Type == html.TextNode:
			sb.WriteString(c.Data)
		case c.Type == html.ElementNode && c.DataAtom == atom.Br:
			sb.WriteByte(' ')
		}
	}
	return normalizeSpace(sb.String())
}

// TextContent is the combined, whitespace normalized text of n and all of
// its descendants. Block level elements and <br> separate words; the
// contents of script and style elements are not text.
func (n *Node) TextContent() string {
	var sb strings.Builder
	appendText(&sb, n.n)
	return normalizeSpace(sb.String())
}

func appendText(sb *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.ElementNode:
		if isData(n.DataAtom) {
			return
		}
		switch n.DataAtom {
		case atom.Br:
			sb.WriteByte(' ')
			return
		}
	case html.CommentNode, html.DoctypeNode:
		return
	}

	block := n.Type == html.ElementNode && isBlock(n.DataAtom)
	if block {
		sb.WriteByte(' ')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		appendText(sb, c)
	}
	if block {
		sb.WriteByte(' ')
	}
}

func isData(a atom.Atom) bool {
	switch a {
	case atom.Script, atom.Style, atom.Template:
		return true
	}
	return false
}

func isBlock(a atom.Atom) bool {
	switch a {
	case atom.Address, atom.Article, atom.Aside, atom.Blockquote, atom.Body,
		atom.Dd, atom.Div, atom.Dl, atom.Dt, atom.Fieldset, atom.Figcaption,
		atom.Figure, atom.Footer, atom.Form, atom.H1, atom.H2, atom.H3, atom.H4,
		atom.H5, atom.H6, atom.Head, atom.Header, atom.Hr, atom.Html, atom.Li,
		atom.Main, atom.Nav, atom.Ol, atom.P, atom.Pre, atom.Section,
		atom.Table, atom.Tbody, atom.Td, atom.Tfoot, atom.Th, atom.Thead,
		atom.Title, atom.Tr, atom.Ul:
		return true
	}
	return false
}

// normalizeSpace collapses runs of ASCII whitespace into one space and trims
// the ends. Non-breaking spaces are kept.
func normalizeSpace(s string) string {
	return strings.Join(strings.FieldsFunc(s, isASCIISpace), " ")
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

