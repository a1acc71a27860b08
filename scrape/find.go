package scrape

import (
	"github.com/heathj/goscrape/parser/dom"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrElementNotFound is returned by lookups on a strict (non-relaxed) element
// when the selector matches nothing.
var ErrElementNotFound = errors.New("element not found")

// FindAll returns every element in this element's subtree, itself included,
// that matches selector. An invalid selector is always an error. A selector
// that matches nothing is an error unless the element is relaxed, in which
// case the result is empty.
func (e *Element) FindAll(selector string) (Elements, error) {
	if e.node == nil {
		return e.nothing(selector)
	}
	nodes, err := e.node.QuerySelectorAll(selector)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return e.nothing(selector)
	}
	found := make(Elements, 0, len(nodes))
	for _, n := range nodes {
		found = append(found, NewElement(n, e.relaxed))
	}
	return found, nil
}

func (e *Element) nothing(selector string) (Elements, error) {
	if !e.relaxed {
		return nil, errors.Wrapf(ErrElementNotFound, "no match for %q", selector)
	}
	logrus.WithFields(logrus.Fields{
		"method":   "FindAll",
		"selector": selector,
	}).Debug("[SCRAPE]: no match, continuing in relaxed mode")
	return Elements{}, nil
}

// FindByIndex returns the index-th match of selector. Negative indexes
// count from the end. Out of range behaves like no match: an error in strict
// mode, the "no match" element in relaxed mode.
func (e *Element) FindByIndex(index int, selector string) (*Element, error) {
	all, err := e.FindAll(selector)
	if err != nil {
		return nil, err
	}
	i := index
	if i < 0 {
		i += len(all)
	}
	if i < 0 || i >= len(all) {
		if !e.relaxed {
			return nil, errors.Wrapf(ErrElementNotFound, "no match at index %d for %q", index, selector)
		}
		return notFound(e.relaxed, selector), nil
	}
	return all[i], nil
}

func (e *Element) FindFirst(selector string) (*Element, error) {
	return e.FindByIndex(0, selector)
}

func (e *Element) FindLast(selector string) (*Element, error) {
	return e.FindByIndex(-1, selector)
}

// Children returns the direct element children.
func (e *Element) Children() Elements {
	children := Elements{}
	if e.node == nil {
		return children
	}
	for _, n := range e.node.ElementChildren() {
		children = append(children, NewElement(n, e.relaxed))
	}
	return children
}

// Parent returns the enclosing element, or the "no match" element at the top
// of the tree.
func (e *Element) Parent() *Element {
	if e.node == nil {
		return notFound(e.relaxed, "")
	}
	p := e.node.Parent()
	if p == nil || p.NodeType() != dom.ElementNode {
		return notFound(e.relaxed, "")
	}
	return NewElement(p, e.relaxed)
}
