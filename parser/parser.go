package parser

import (
	"io"
	"strings"

	"github.com/heathj/goscrape/parser/dom"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// Config controls how raw bytes are turned into a document.
type Config struct {
	// Charset is the declared character encoding label of the input, e.g.
	// "utf-8" or "windows-1252". Empty means UTF-8.
	Charset string
	// Debug logs parse statistics at debug level.
	Debug bool
}

type Parser struct {
	htmlIn io.Reader
	config Config
}

func NewParser(htmlIn io.Reader, config Config) *Parser {
	return &Parser{
		htmlIn: htmlIn,
		config: config,
	}
}

// Start decodes and parses the whole input and returns the document root.
// Every failure is a *ParseError.
func (p *Parser) Start() (*dom.Node, error) {
	label := p.config.Charset
	if label == "" {
		label = "utf-8"
	}
	in, err := charset.NewReaderLabel(label, p.htmlIn)
	if err != nil {
		return nil, &ParseError{Charset: label, Err: errors.Wrapf(err, "decoding %s input", label)}
	}

	root, err := html.Parse(in)
	if err != nil {
		return nil, &ParseError{Charset: label, Err: errors.Wrap(err, "parsing html")}
	}

	if p.config.Debug {
		logrus.WithFields(logrus.Fields{
			"method":  "Start",
			"charset": label,
			"nodes":   countNodes(root),
		}).Debug("[PARSER]: parsed document")
	}
	return dom.Wrap(root), nil
}

// ParseString parses UTF-8 markup held in memory.
func ParseString(s string) (*dom.Node, error) {
	return NewParser(strings.NewReader(s), Config{}).Start()
}

func countNodes(n *html.Node) int {
	count := 1
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		count += countNodes(c)
	}
	return count
}
