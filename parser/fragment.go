package parser

import (
	"io"
	"strings"

	"github.com/heathj/goscrape/parser/dom"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/net/html/charset"
)

// ParseFragment parses markup as the contents of an element named context,
// e.g. "tr" for a run of <td> cells or "body" for ordinary flow content. The
// top level nodes of the fragment are returned in order.
// https://html.spec.whatwg.org/#parsing-html-fragments
func ParseFragment(htmlIn io.Reader, context string, config Config) (dom.NodeList, error) {
	label := config.Charset
	if label == "" {
		label = "utf-8"
	}
	in, err := charset.NewReaderLabel(label, htmlIn)
	if err != nil {
		return nil, &ParseError{Charset: label, Err: errors.Wrapf(err, "decoding %s input", label)}
	}

	name := strings.ToLower(context)
	if name == "" {
		name = "body"
	}
	ctx := &html.Node{
		Type:     html.ElementNode,
		Data:     name,
		DataAtom: atom.Lookup([]byte(name)),
	}
	nodes, err := html.ParseFragment(in, ctx)
	if err != nil {
		return nil, &ParseError{Charset: label, Err: errors.Wrapf(err, "parsing fragment in <%s>", name)}
	}

	if config.Debug {
		logrus.WithFields(logrus.Fields{
			"method":  "ParseFragment",
			"context": name,
			"nodes":   len(nodes),
		}).Debug("[PARSER]: parsed fragment")
	}

	list := make(dom.NodeList, 0, len(nodes))
	for _, n := range nodes {
		list = append(list, dom.Wrap(n))
	}
	return list, nil
}
