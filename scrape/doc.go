// Package scrape wraps parsed HTML documents in read-only element views for
// data extraction. Reads never fail; missing data reads as empty values.
package scrape

import (
	"io"
	"os"
	"strings"

	"github.com/heathj/goscrape/parser"
	"github.com/heathj/goscrape/parser/dom"
	"github.com/pkg/errors"
)

// Config controls how a document is read and how lookups on it behave.
type Config struct {
	// Charset is the declared encoding of the input. Empty means UTF-8.
	Charset string
	// Relaxed makes lookups that match nothing return empty results instead
	// of ErrElementNotFound. Every element found in the document inherits it.
	Relaxed bool
	// Debug logs parse statistics.
	Debug bool
}

// Doc is a parsed document. It embeds the view of the document root, so all
// lookups start from there.
type Doc struct {
	*Element
}

// NewDoc wraps an already parsed document root.
func NewDoc(root *dom.Node, relaxed bool) *Doc {
	return &Doc{Element: NewElement(root, relaxed)}
}

// Title is the text of the first <title> element, or "".
func (d *Doc) Title() string {
	if d.node == nil {
		return ""
	}
	nodes, err := d.node.QuerySelectorAll("title")
	if err != nil || len(nodes) == 0 {
		return ""
	}
	return nodes[0].TextContent()
}

// HTMLDocument parses r and then calls init, if not nil, once with the
// parsed document. The document is returned together with init's error.
// Parse failures are *parser.ParseError.
func HTMLDocument(r io.Reader, cfg Config, init func(*Doc) error) (*Doc, error) {
	root, err := parser.NewParser(r, parser.Config{Charset: cfg.Charset, Debug: cfg.Debug}).Start()
	if err != nil {
		return nil, err
	}
	doc := NewDoc(root, cfg.Relaxed)
	if init == nil {
		return doc, nil
	}
	return doc, init(doc)
}

// HTMLFragment parses r as the contents of an element named context, "body"
// when empty, and wraps the top level nodes in a document so lookups work as
// they do on a whole page. The result has no implied <html>, <head> or <body>.
func HTMLFragment(r io.Reader, context string, cfg Config, init func(*Doc) error) (*Doc, error) {
	nodes, err := parser.ParseFragment(r, context, parser.Config{Charset: cfg.Charset, Debug: cfg.Debug})
	if err != nil {
		return nil, err
	}
	doc := NewDoc(dom.NewDocumentFragment(nodes), cfg.Relaxed)
	if init == nil {
		return doc, nil
	}
	return doc, init(doc)
}

// HTMLString is HTMLDocument over markup held in memory.
func HTMLString(s string, cfg Config, init func(*Doc) error) (*Doc, error) {
	return HTMLDocument(strings.NewReader(s), cfg, init)
}

// HTMLFile is HTMLDocument over a file on the local file system.
func HTMLFile(path string, cfg Config, init func(*Doc) error) (*Doc, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()
	return HTMLDocument(f, cfg, init)
}
