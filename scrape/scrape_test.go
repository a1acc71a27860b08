package scrape

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const shopHTML = `<!DOCTYPE html>
<html>
<head><title>Shop</title></head>
<body>
<h1 class="headline main">Welcome</h1>
<p id="intro">Hello <b>there</b> now!</p>
<form><input type="text" name="q" value=""></form>
<a href="/1">A</a>
<a href="/2">A</a>
<a href="">empty</a>
<a href="   ">blank</a>
<a>none</a>
<img src="/logo.png" alt="Logo">
<img src="/nolabel.png">
<img alt="no src">
<iframe src="/frame"></iframe>
<span class="price">$11%/</span>
<span class="label">abc</span>
</body>
</html>`

func shop(t *testing.T, relaxed bool) *Doc {
	t.Helper()
	doc, err := HTMLString(shopHTML, Config{Relaxed: relaxed}, nil)
	require.NoError(t, err)
	return doc
}

func findAll(t *testing.T, e *Element, selector string) Elements {
	t.Helper()
	found, err := e.FindAll(selector)
	require.NoError(t, err)
	return found
}

func findFirst(t *testing.T, e *Element, selector string) *Element {
	t.Helper()
	found, err := e.FindFirst(selector)
	require.NoError(t, err)
	return found
}

func anchorWithDuplicates() *html.Node {
	return &html.Node{
		Type: html.ElementNode,
		Data: "a",
		Attr: []html.Attribute{
			{Key: "href", Val: "/first"},
			{Key: "href", Val: "/second"},
		},
	}
}
