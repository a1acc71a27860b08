// Package expect verifies values extracted from documents. Every verb is a
// single check that returns nil on success or an *AssertionFailure.
//
// The same verb works across operand kinds:
//
//	expect.That(doc.Title()).ToContain("Welcome")
//	expect.That(links.EachHref()).ToContain("/about")
//	expect.That(heading).ToBePresent()
//	expect.That(rows).ToBeNotEmpty()
package expect

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"unicode"

	"github.com/heathj/goscrape/scrape"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// Assertion holds the actual value that verbs check.
type Assertion struct {
	actual any
}

// That starts an assertion on actual. actual may be any comparable value, a
// string, a *scrape.Element, scrape.Elements, or any slice, array or map.
func That(actual any) *Assertion {
	return &Assertion{actual: actual}
}

// ToBe passes when the actual value equals expected. Two absent values (nil
// interfaces, nil pointers, maps or slices) are equal; an absent value never
// equals a present one. A non-nil pointer is compared by the value it points
// to when expected is not a pointer.
func (a *Assertion) ToBe(expected any) error {
	if equal(a.actual, expected) {
		return nil
	}
	return fail("ToBe", &AssertionFailure{
		Message:  "values are not equal",
		Actual:   a.actual,
		Expected: expected,
	})
}

// ToBeNot passes exactly when ToBe would fail.
func (a *Assertion) ToBeNot(expected any) error {
	if !equal(a.actual, expected) {
		return nil
	}
	return fail("ToBeNot", &AssertionFailure{
		Message:  "values are equal",
		Actual:   a.actual,
		Expected: expected,
	})
}

// ToContain passes when needle is part of the actual value: a substring of a
// string or of an element's text, a member of a slice or array, a key of a
// map. For scrape.Elements the needle is either an element or a string that
// one of the elements' texts equals.
func (a *Assertion) ToContain(needle any) error {
	found, err := contains(a.actual, needle)
	if err != nil {
		return fail("ToContain", err)
	}
	if found {
		return nil
	}
	return fail("ToContain", &AssertionFailure{
		Message:  fmt.Sprintf("%s does not contain %s", format(a.actual), format(needle)),
		Actual:   a.actual,
		Expected: needle,
	})
}

// ToNotContain passes exactly when ToContain would fail for a supported
// operand.
func (a *Assertion) ToNotContain(needle any) error {
	found, err := contains(a.actual, needle)
	if err != nil {
		return fail("ToNotContain", err)
	}
	if !found {
		return nil
	}
	return fail("ToNotContain", &AssertionFailure{
		Message:  fmt.Sprintf("%s contains %s", format(a.actual), format(needle)),
		Actual:   a.actual,
		Expected: needle,
	})
}

// ToBePresent passes for an element that resolved to a node and for a
// collection with at least one element.
func (a *Assertion) ToBePresent() error {
	switch v := a.actual.(type) {
	case *scrape.Element:
		if v != nil && v.IsPresent() {
			return nil
		}
		return fail("ToBePresent", &AssertionFailure{
			Message:  "expected element to be present",
			Selector: selectorOf(v),
		})
	case scrape.Elements:
		if v.IsPresent() {
			return nil
		}
		return fail("ToBePresent", &AssertionFailure{
			Message:  "expected at least one element to be present",
			Selector: "elements",
			Actual:   len(v),
		})
	}
	return fail("ToBePresent", unsupported("ToBePresent", a.actual))
}

// ToBeNotPresent passes for an empty collection or an unresolved element.
func (a *Assertion) ToBeNotPresent() error {
	switch v := a.actual.(type) {
	case *scrape.Element:
		if v == nil || v.IsNotPresent() {
			return nil
		}
		return fail("ToBeNotPresent", &AssertionFailure{
			Message:  "expected element to be absent",
			Selector: selectorOf(v),
		})
	case scrape.Elements:
		if v.IsNotPresent() {
			return nil
		}
		return fail("ToBeNotPresent", &AssertionFailure{
			Message:  fmt.Sprintf("expected no elements to be present, found %d", len(v)),
			Selector: "elements",
			Actual:   len(v),
		})
	}
	return fail("ToBeNotPresent", unsupported("ToBeNotPresent", a.actual))
}

// ToBeEmpty passes for a nil value or a slice, array, map, string or channel
// of length zero.
func (a *Assertion) ToBeEmpty() error {
	n, ok := length(a.actual)
	if !ok {
		return fail("ToBeEmpty", unsupported("ToBeEmpty", a.actual))
	}
	if n == 0 {
		return nil
	}
	return fail("ToBeEmpty", &AssertionFailure{
		Message: fmt.Sprintf("expected empty, got %d items", n),
		Actual:  a.actual,
	})
}

// ToBeNotEmpty passes exactly when ToBeEmpty would fail for a supported
// operand.
func (a *Assertion) ToBeNotEmpty() error {
	n, ok := length(a.actual)
	if !ok {
		return fail("ToBeNotEmpty", unsupported("ToBeNotEmpty", a.actual))
	}
	if n > 0 {
		return nil
	}
	return fail("ToBeNotEmpty", &AssertionFailure{
		Message: "expected at least one item",
		Actual:  a.actual,
	})
}

// IsNumeric passes when the text of the element or collection (or the string
// itself) contains at least one digit anywhere. "$11%/" passes, "abc" does
// not. It does not check that the text is a well formed number.
func (a *Assertion) IsNumeric() error {
	var text, selector string
	switch v := a.actual.(type) {
	case scrape.Elements:
		text, selector = v.Text(), "elements"
	case *scrape.Element:
		if v != nil {
			text = v.Text()
		}
		selector = selectorOf(v)
	case string:
		text = v
	default:
		return fail("IsNumeric", unsupported("IsNumeric", a.actual))
	}
	if strings.IndexFunc(text, unicode.IsDigit) >= 0 {
		return nil
	}
	return fail("IsNumeric", &AssertionFailure{
		Message:  fmt.Sprintf("expected %q to contain a digit", text),
		Actual:   text,
		Selector: selector,
	})
}

func fail(method string, f *AssertionFailure) error {
	logrus.WithField("method", method).Debugf("[EXPECT]: %s", f.Message)
	return f
}

func unsupported(verb string, actual any) *AssertionFailure {
	return &AssertionFailure{
		Message: fmt.Sprintf("%s cannot be applied to %T", verb, actual),
		Actual:  actual,
	}
}

func selectorOf(e *scrape.Element) string {
	if e == nil {
		return ""
	}
	return e.CSSSelector()
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

func equal(actual, expected any) bool {
	actualNil, expectedNil := isNil(actual), isNil(expected)
	if actualNil || expectedNil {
		return actualNil && expectedNil
	}
	if rv := reflect.ValueOf(actual); rv.Kind() == reflect.Pointer && reflect.ValueOf(expected).Kind() != reflect.Pointer {
		actual = rv.Elem().Interface()
	}
	av, ev := reflect.ValueOf(actual), reflect.ValueOf(expected)
	switch {
	case isFloat(av) && isFloat(ev) && math.IsNaN(av.Float()) && math.IsNaN(ev.Float()):
		return true
	case av.Kind() == reflect.Func && ev.Kind() == reflect.Func:
		return av.Type() == ev.Type() && av.Pointer() == ev.Pointer()
	}
	return assert.ObjectsAreEqual(expected, actual)
}

func isFloat(v reflect.Value) bool {
	return v.Kind() == reflect.Float32 || v.Kind() == reflect.Float64
}

func length(v any) (int, bool) {
	if v == nil {
		return 0, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String, reflect.Chan:
		return rv.Len(), true
	}
	return 0, false
}

func contains(haystack, needle any) (bool, *AssertionFailure) {
	switch h := haystack.(type) {
	case string:
		n, ok := needle.(string)
		if !ok {
			return false, unsupported(fmt.Sprintf("ToContain(%T)", needle), haystack)
		}
		return strings.Contains(h, n), nil
	case *scrape.Element:
		n, ok := needle.(string)
		if !ok || h == nil {
			return false, unsupported(fmt.Sprintf("ToContain(%T)", needle), haystack)
		}
		return strings.Contains(h.Text(), n), nil
	case scrape.Elements:
		return elementsContain(h, needle)
	}

	if isNil(haystack) {
		return false, nil
	}
	rv := reflect.ValueOf(haystack)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if equal(rv.Index(i).Interface(), needle) {
				return true, nil
			}
		}
		return false, nil
	case reflect.Map:
		for _, k := range rv.MapKeys() {
			if equal(k.Interface(), needle) {
				return true, nil
			}
		}
		return false, nil
	}
	return false, unsupported("ToContain", haystack)
}

func elementsContain(es scrape.Elements, needle any) (bool, *AssertionFailure) {
	switch n := needle.(type) {
	case string:
		for _, e := range es {
			if e.Text() == n {
				return true, nil
			}
		}
		return false, nil
	case *scrape.Element:
		if n == nil || n.Node() == nil {
			return false, nil
		}
		for _, e := range es {
			if e.Node() != nil && e.Node().HTMLNode() == n.Node().HTMLNode() {
				return true, nil
			}
		}
		return false, nil
	}
	return false, unsupported(fmt.Sprintf("ToContain(%T)", needle), es)
}
