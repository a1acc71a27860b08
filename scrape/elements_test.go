package scrape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type elementsTestcase struct {
	name string
	got  func(es Elements) any
	want any
}

func runElementsTests(t *testing.T, es Elements, tests []elementsTestcase) {
	t.Helper()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.got(es))
		})
	}
}

func TestElementsText(t *testing.T) {
	runElementsTests(t, findAll(t, shop(t, false).Element, "a"), []elementsTestcase{
		{"text", func(es Elements) any { return es.Text() }, "A A empty blank none"},
		{"each text", func(es Elements) any { return es.EachText() }, []string{"A", "A", "empty", "blank", "none"}},
		{"html", func(es Elements) any { return es[:2].HTML() }, "<a href=\"/1\">A</a>\n<a href=\"/2\">A</a>"},
		{"present", func(es Elements) any { return es.IsPresent() }, true},
		{"not present", func(es Elements) any { return es.IsNotPresent() }, false},
	})
}

func TestElementsAttribute(t *testing.T) {
	runElementsTests(t, findAll(t, shop(t, false).Element, "a"), []elementsTestcase{
		{"joined href", func(es Elements) any { return es.Attribute("href") }, "/1, /2"},
		{"each href attribute", func(es Elements) any { return es.EachAttribute("href") }, []string{"/1", "/2"}},
		{"each href", func(es Elements) any { return es.EachHref() }, []string{"/1", "/2"}},
		{"joined title", func(es Elements) any { return es.Attribute("title") }, ""},
		{"each title", func(es Elements) any { return es.EachAttribute("title") }, []string{}},
	})
}

func TestEachLinkLastWriteWins(t *testing.T) {
	anchors := findAll(t, shop(t, false).Element, "a")
	assert.Equal(t, map[string]string{"A": "/2"}, anchors.EachLink())

	type link struct{ text, href string }
	var visited []link
	anchors.ForEachLink(func(text, href string) {
		visited = append(visited, link{text, href})
	})
	assert.Equal(t, []link{{"A", "/1"}, {"A", "/2"}}, visited)
}

func TestEachImage(t *testing.T) {
	media := findAll(t, shop(t, false).Element, "img, iframe")
	require.Len(t, media, 4)

	runElementsTests(t, media, []elementsTestcase{
		// the iframe has a src but is not an image
		{"each image", func(es Elements) any { return es.EachImage() }, map[string]string{
			"Logo": "/logo.png",
			"":     "/nolabel.png",
		}},
		{"each src", func(es Elements) any { return es.EachSrc() }, []string{"/logo.png", "/nolabel.png", "/frame"}},
		{"for each image", func(es Elements) any {
			var alts []string
			es.ForEachImage(func(alt, src string) {
				alts = append(alts, alt+"="+src)
			})
			return alts
		}, []string{"Logo=/logo.png", "=/nolabel.png"}},
	})
}

func TestEmptyElements(t *testing.T) {
	runElementsTests(t, nil, []elementsTestcase{
		{"text", func(es Elements) any { return es.Text() }, ""},
		{"html", func(es Elements) any { return es.HTML() }, ""},
		{"present", func(es Elements) any { return es.IsPresent() }, false},
		{"not present", func(es Elements) any { return es.IsNotPresent() }, true},
		{"each text", func(es Elements) any { return len(es.EachText()) }, 0},
		{"each href", func(es Elements) any { return len(es.EachHref()) }, 0},
		{"each link", func(es Elements) any { return len(es.EachLink()) }, 0},
		{"each image", func(es Elements) any { return len(es.EachImage()) }, 0},
		{"for each link", func(es Elements) any {
			calls := 0
			es.ForEachLink(func(string, string) { calls++ })
			return calls
		}, 0},
	})
}
