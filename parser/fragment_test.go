package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFragment(t *testing.T) {
	tests := []struct {
		in      string
		context string
		names   []string
	}{
		{"<td>1</td><td>2</td>", "tr", []string{"td", "td"}},
		{"<p>a</p><p>b</p>", "body", []string{"p", "p"}},
		{"<p>a</p>", "", []string{"p"}},
		{"<li>x</li>", "UL", []string{"li"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.context+"/"+tt.in, func(t *testing.T) {
			t.Parallel()
			nodes, err := ParseFragment(strings.NewReader(tt.in), tt.context, Config{})
			require.NoError(t, err)
			var names []string
			for _, n := range nodes {
				names = append(names, n.NodeName())
			}
			assert.Equal(t, tt.names, names)
		})
	}
}

func TestParseFragmentText(t *testing.T) {
	nodes, err := ParseFragment(strings.NewReader("<td>1</td><td>two</td>"), "tr", Config{Debug: true})
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.Equal(t, "two", nodes[1].TextContent())
	assert.Equal(t, "<td>two</td>", nodes[1].OuterHTML())
}
