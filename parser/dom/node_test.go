package dom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func parse(t *testing.T, in string) *Node {
	t.Helper()
	root, err := html.Parse(strings.NewReader(in))
	require.NoError(t, err)
	return Wrap(root)
}

func first(t *testing.T, root *Node, selector string) *Node {
	t.Helper()
	nodes, err := root.QuerySelectorAll(selector)
	require.NoError(t, err)
	require.NotEmpty(t, nodes, "no match for %s", selector)
	return nodes[0]
}

type textTestcase struct {
	inHTML   string
	selector string
	own      string
	text     string
}

var textTests = []textTestcase{
	{"<p>Hello <b>there</b> now!</p>", "p", "Hello now!", "Hello there now!"},
	{"<div><p>a</p><p>b</p></div>", "div", "", "a b"},
	{"<p>one<br>two</p>", "p", "one two", "one two"},
	{"<div>x<script>var a = 1;</script>y</div>", "div", "xy", "xy"},
	{"<p>  lots \n\t of   space  </p>", "p", "lots of space", "lots of space"},
	{"<p>caf&eacute; &amp; bar</p>", "p", "café & bar", "café & bar"},
	{"<p><i>only</i> <i>children</i></p>", "p", "", "only children"},
	{"<p>a b</p>", "p", "a b", "a b"},
}

func TestText(t *testing.T) {
	for _, tt := range textTests {
		tt := tt
		t.Run(tt.inHTML, func(t *testing.T) {
			t.Parallel()
			n := first(t, parse(t, tt.inHTML), tt.selector)
			assert.Equal(t, tt.own, n.OwnText())
			assert.Equal(t, tt.text, n.TextContent())
		})
	}
}

func TestNodeName(t *testing.T) {
	root := parse(t, "<DIV>x</DIV>")
	assert.Equal(t, "", root.NodeName())
	assert.Equal(t, DocumentNode, root.NodeType())
	div := first(t, root, "div")
	assert.Equal(t, "div", div.NodeName())
	assert.Equal(t, ElementNode, div.NodeType())
}

func TestAttributesKeepDuplicates(t *testing.T) {
	n := Wrap(&html.Node{
		Type: html.ElementNode,
		Data: "a",
		Attr: []html.Attribute{
			{Key: "href", Val: "/first"},
			{Key: "class", Val: "x"},
			{Key: "href", Val: "/second"},
		},
	})
	assert.Equal(t, []Attr{
		{Name: "href", Value: "/first"},
		{Name: "class", Value: "x"},
		{Name: "href", Value: "/second"},
	}, n.Attributes())

	m := NewNamedNodeMap(n.Attributes())
	assert.Equal(t, []string{"href", "class"}, m.Keys())
	assert.Equal(t, []string{"/first", "x"}, m.Values())
	v, ok := m.GetNamedItem("href")
	assert.True(t, ok)
	assert.Equal(t, "/first", v)
	_, ok = m.GetNamedItem("id")
	assert.False(t, ok)
	assert.Equal(t, map[string]string{"href": "/first", "class": "x"}, m.Map())
}

func TestNamedNodeMapQualifiedNames(t *testing.T) {
	m := NewNamedNodeMap([]Attr{
		{Namespace: "xlink", Name: "href", Value: "#a"},
		{Name: "href", Value: "#b"},
	})
	assert.Equal(t, []string{"xlink:href", "href"}, m.Keys())
}

func TestOuterHTML(t *testing.T) {
	a := first(t, parse(t, `<p>x <a href="/1" class="c">link</a></p>`), "a")
	assert.Equal(t, `<a href="/1" class="c">link</a>`, a.OuterHTML())
}

func TestCSSSelector(t *testing.T) {
	root := parse(t, `<html><head></head><body>`+
		`<div id="main"><p>a</p><p class="x">b</p><p>c</p></div>`+
		`<ul><li>1</li></ul>`+
		`</body></html>`)

	tests := []struct {
		query    string
		index    int
		expected string
	}{
		{"div", 0, "#main"},
		{"p", 0, "#main > p:nth-child(1)"},
		{"p", 1, "#main > p.x"},
		{"p", 2, "#main > p:nth-child(3)"},
		{"html", 0, "html"},
		{"body", 0, "html > body"},
		{"li", 0, "html > body > ul > li"},
	}
	for _, tt := range tests {
		nodes, err := root.QuerySelectorAll(tt.query)
		require.NoError(t, err)
		n := nodes[tt.index]
		got := n.CSSSelector()
		assert.Equal(t, tt.expected, got)

		// the path must select exactly the node it was built from
		matches, err := root.QuerySelectorAll(got)
		require.NoError(t, err)
		require.Len(t, matches, 1, got)
		assert.Equal(t, n.HTMLNode(), matches[0].HTMLNode())
	}

	assert.Equal(t, "", root.CSSSelector())
}

func TestQuerySelectorAll(t *testing.T) {
	root := parse(t, `<div class="a"><span>1</span><div class="a"><span>2</span></div></div>`)
	outer := first(t, root, "div.a")

	found, err := outer.QuerySelectorAll("div.a")
	require.NoError(t, err)
	assert.Len(t, found, 2, "includes the node itself")

	spans, err := root.QuerySelectorAll("span")
	require.NoError(t, err)
	require.Len(t, spans, 2)
	assert.Equal(t, "1", spans[0].TextContent())
	assert.Equal(t, "2", spans[1].TextContent())
	assert.Equal(t, 1, spans.Contains(spans[1]))
	assert.Equal(t, -1, spans[:1].Contains(spans[1]))
}

func TestQuerySelectorAllSyntaxError(t *testing.T) {
	_, err := parse(t, "<p>x</p>").QuerySelectorAll("p[")
	require.Error(t, err)
	var se *SyntaxError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "p[", se.Selector)
}

func TestString(t *testing.T) {
	expected := "#document\n" +
		"| <html>\n" +
		"|   <head>\n" +
		"|   <body>\n" +
		"|     <p>\n" +
		"|       class=\"a\"\n" +
		"|       id=\"b\"\n" +
		"|       \"x\"\n" +
		"|     <!-- c -->"
	assert.Equal(t, expected, parse(t, `<p id="b" class="a">x</p><!--c-->`).String())
}

func TestEscapeIdentifier(t *testing.T) {
	tests := []struct {
		in, expected string
	}{
		{"main", "main"},
		{"md:flex", `md\:flex`},
		{"a.b", `a\.b`},
		{"1st", `\31 st`},
		{"-2", `-\32 `},
		{"-", `\-`},
		{"--x", "--x"},
		{"_x-y", "_x-y"},
		{"a b", `a\ b`},
		{"w-1/2", `w-1\/2`},
		{"tab\there", `tab\9 here`},
		{"nul\x00", "nul\uFFFD"},
		{"café", "café"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, EscapeIdentifier(tt.in))
		})
	}
}
