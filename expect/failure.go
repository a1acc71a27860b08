package expect

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// AssertionFailure is the only error a matcher returns. Actual and Expected
// hold the compared operands; Selector names the element or collection when
// there is no simple expected value.
type AssertionFailure struct {
	Message  string
	Actual   any
	Expected any
	Selector string
}

func (f *AssertionFailure) Error() string {
	var sb strings.Builder
	sb.WriteString(f.Message)
	if f.Selector != "" {
		sb.WriteString("\n  selector: " + f.Selector)
	}
	if f.Expected != nil || f.Actual != nil {
		sb.WriteString("\n  expected: " + format(f.Expected))
		sb.WriteString("\n  actual:   " + format(f.Actual))
	}
	if diff := stringDiff(f.Expected, f.Actual); diff != "" {
		sb.WriteString("\n  diff:     " + diff)
	}
	return sb.String()
}

func format(v any) string {
	switch v := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return fmt.Sprintf("%q", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// stringDiff marks deletions from expected as [-x-] and insertions in actual
// as {+x+}. Only string pairs get a diff.
func stringDiff(expected, actual any) string {
	e, ok := expected.(string)
	if !ok {
		return ""
	}
	a, ok := actual.(string)
	if !ok || a == e {
		return ""
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(e, a, false))
	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			sb.WriteString("[-" + d.Text + "-]")
		case diffmatchpatch.DiffInsert:
			sb.WriteString("{+" + d.Text + "+}")
		default:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}
