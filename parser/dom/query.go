package dom

import (
	"github.com/andybalholm/cascadia"
	"github.com/pkg/errors"
)

// SyntaxError reports a selector that could not be compiled.
// https://dom.spec.whatwg.org/#dom-parentnode-queryselectorall
type SyntaxError struct {
	Selector string
	Err      error
}

func (e *SyntaxError) Error() string {
	return "invalid selector " + quote(e.Selector) + ": " + e.Err.Error()
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// QuerySelectorAll returns every node in the subtree rooted at n, n itself
// included, that matches selectors. Results are in document order.
func (n *Node) QuerySelectorAll(selectors string) (NodeList, error) {
	sel, err := cascadia.Compile(selectors)
	if err != nil {
		return nil, errors.WithStack(&SyntaxError{Selector: selectors, Err: err})
	}
	matches := sel.MatchAll(n.n)
	list := make(NodeList, 0, len(matches))
	for _, m := range matches {
		list = append(list, Wrap(m))
	}
	return list, nil
}

func quote(s string) string {
	return "\"" + s + "\""
}
