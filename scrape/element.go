package scrape

import (
	"strings"
	"sync"

	"github.com/heathj/goscrape/parser/dom"
)

// Element is a read-only view of one element of a parsed document. Derived
// values are computed on first use and cached for the life of the view; the
// tree is never re-read for them.
//
// A nil node makes the "no match" element returned by relaxed lookups: every
// read yields the empty value and IsPresent is false.
type Element struct {
	node    *dom.Node
	relaxed bool
	// query is the selector that failed to match, for "no match" elements.
	query string

	tagName    func() string
	text       func() string
	ownText    func() string
	html       func() string
	attributes func() *dom.NamedNodeMap
	cssPath    func() string
}

// NewElement wraps node. relaxed is carried over to every element found
// through this one.
func NewElement(node *dom.Node, relaxed bool) *Element {
	e := &Element{node: node, relaxed: relaxed}
	e.tagName = sync.OnceValue(func() string { return e.read((*dom.Node).NodeName) })
	e.text = sync.OnceValue(func() string { return e.read((*dom.Node).TextContent) })
	e.ownText = sync.OnceValue(func() string { return e.read((*dom.Node).OwnText) })
	e.html = sync.OnceValue(func() string { return e.read((*dom.Node).OuterHTML) })
	e.cssPath = sync.OnceValue(func() string {
		if e.node == nil {
			return e.query
		}
		return e.node.CSSSelector()
	})
	e.attributes = sync.OnceValue(func() *dom.NamedNodeMap {
		if e.node == nil {
			return dom.NewNamedNodeMap(nil)
		}
		return dom.NewNamedNodeMap(e.node.Attributes())
	})
	return e
}

func notFound(relaxed bool, selector string) *Element {
	e := NewElement(nil, relaxed)
	e.query = selector
	return e
}

func (e *Element) read(f func(*dom.Node) string) string {
	if e.node == nil {
		return ""
	}
	return f(e.node)
}

// Node returns the underlying tree node, nil for the "no match" element.
func (e *Element) Node() *dom.Node { return e.node }

func (e *Element) Relaxed() bool { return e.relaxed }

// TagName is the lower-case tag name, e.g. "div".
func (e *Element) TagName() string { return e.tagName() }

// Text is the combined text of the element and all of its descendants.
func (e *Element) Text() string { return e.text() }

// OwnText is the text owned by this element only. Given
// <p>Hello <b>there</b> now!</p>, OwnText of p is "Hello now!" while Text is
// "Hello there now!".
func (e *Element) OwnText() string { return e.ownText() }

// HTML is the element's outer markup.
func (e *Element) HTML() string { return e.html() }

// Attributes returns a copy of the element's attributes. If the start tag
// repeats a key, the first value is kept.
func (e *Element) Attributes() map[string]string { return e.attributes().Map() }

// AttributeKeys lists attribute names in source order.
func (e *Element) AttributeKeys() []string { return e.attributes().Keys() }

// AttributeValues lists attribute values in the order of AttributeKeys.
func (e *Element) AttributeValues() []string { return e.attributes().Values() }

// Attribute returns the value for key, or "" if the element has no such
// attribute.
func (e *Element) Attribute(key string) string {
	v, _ := e.attributes().GetNamedItem(key)
	return v
}

// HasAttribute reports whether Attribute(key) is non-blank. An attribute set
// to "" or whitespace counts as missing.
func (e *Element) HasAttribute(key string) bool {
	return strings.TrimSpace(e.Attribute(key)) != ""
}

// IsPresent reports whether the view resolved to a node.
func (e *Element) IsPresent() bool { return e.node != nil }

func (e *Element) IsNotPresent() bool { return !e.IsPresent() }

// ClassName is the raw class attribute.
func (e *Element) ClassName() string { return e.Attribute("class") }

// CSSSelector is a selector path that uniquely identifies the element in its
// document. For a "no match" element it is the selector that matched nothing.
func (e *Element) CSSSelector() string { return e.cssPath() }

func (e *Element) String() string {
	if e.node == nil {
		return "<no match>"
	}
	return e.CSSSelector()
}
