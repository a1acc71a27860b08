package scrape

import "strings"

// Elements is the ordered result of one query, in document order. The zero
// value is an empty collection.
type Elements []*Element

// Text joins the text of every element with a single space.
func (es Elements) Text() string {
	return strings.Join(es.EachText(), " ")
}

// HTML joins the outer markup of every element with newlines.
func (es Elements) HTML() string {
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = e.HTML()
	}
	return strings.Join(parts, "\n")
}

func (es Elements) IsPresent() bool { return len(es) > 0 }

func (es Elements) IsNotPresent() bool { return !es.IsPresent() }

// EachText returns the text of every element, duplicates included.
func (es Elements) EachText() []string {
	texts := make([]string, len(es))
	for i, e := range es {
		texts[i] = e.Text()
	}
	return texts
}

// Attribute joins, with ", ", the key attribute of every element that has a
// non-blank value for it.
func (es Elements) Attribute(key string) string {
	var values []string
	for _, e := range es {
		if e.HasAttribute(key) {
			values = append(values, e.Attribute(key))
		}
	}
	return strings.Join(values, ", ")
}

// EachAttribute returns the key attribute of every element that has a
// non-blank value for it, with empty values dropped.
func (es Elements) EachAttribute(key string) []string {
	values := []string{}
	for _, e := range es {
		if !e.HasAttribute(key) {
			continue
		}
		values = append(values, e.Attribute(key))
	}
	return dropEmpty(values)
}

// EachHref returns every non-blank href.
func (es Elements) EachHref() []string {
	return dropEmpty(es.EachAttribute("href"))
}

// EachSrc returns every non-blank src.
func (es Elements) EachSrc() []string {
	return dropEmpty(es.EachAttribute("src"))
}

func dropEmpty(values []string) []string {
	kept := values[:0]
	for _, v := range values {
		if v != "" {
			kept = append(kept, v)
		}
	}
	return kept
}

// EachLink maps link text to href for elements that have an href. When two
// links share the same text the later one wins.
func (es Elements) EachLink() map[string]string {
	links := make(map[string]string)
	es.ForEachLink(func(text, href string) {
		links[text] = href
	})
	return links
}

// EachImage maps alt text to src for img elements that have a src. Images
// without alt are keyed by "".
func (es Elements) EachImage() map[string]string {
	images := make(map[string]string)
	es.ForEachImage(func(alt, src string) {
		images[alt] = src
	})
	return images
}

// ForEachLink calls fn with the text and href of every element that has an
// href, in order.
func (es Elements) ForEachLink(fn func(text, href string)) {
	for _, e := range es {
		if e.HasAttribute("href") {
			fn(e.Text(), e.Attribute("href"))
		}
	}
}

// ForEachImage calls fn with the alt and src of every img element that has a
// src, in order.
func (es Elements) ForEachImage(fn func(alt, src string)) {
	for _, e := range es {
		if e.TagName() == "img" && e.HasAttribute("src") {
			fn(e.Attribute("alt"), e.Attribute("src"))
		}
	}
}
