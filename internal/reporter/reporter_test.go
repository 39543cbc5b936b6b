package reporter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	csslint "github.com/bearholmes/mongmung-csslint-server"
)

func TestPrintWarnings_SortedByPosition(t *testing.T) {
	var buf strings.Builder
	r := New(&buf, false, false)

	r.PrintWarnings("a.css", []csslint.Warning{
		{Line: 3, Column: 1, Rule: "block-no-empty", Severity: "error", Text: "Unexpected empty block (block-no-empty)"},
		{Line: 1, Column: 9, Rule: "color-no-invalid-hex", Severity: "error", Text: `Unexpected invalid hex color "#ggg" (color-no-invalid-hex)`},
		{Line: 1, Column: 2, Rule: "block-no-empty", Severity: "warning", Text: "Unexpected empty block (block-no-empty)"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "a.css:1:2:"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "a.css:1:9:"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "a.css:3:1:"), lines[2])
}

func TestPrintWarnings_RuleSuffix(t *testing.T) {
	warning := []csslint.Warning{{
		Line: 1, Column: 1, Rule: "block-no-empty", Severity: "error",
		Text: "Unexpected empty block (block-no-empty)",
	}}

	var with strings.Builder
	New(&with, false, true).PrintWarnings("a.css", warning)
	assert.Equal(t, "a.css:1:1: error: Unexpected empty block (block-no-empty)\n", with.String())

	var without strings.Builder
	New(&without, false, false).PrintWarnings("a.css", warning)
	assert.Equal(t, "a.css:1:1: error: Unexpected empty block\n", without.String())
}

func TestPrintSummary(t *testing.T) {
	var buf strings.Builder
	r := New(&buf, false, true)

	r.PrintSummary(1, 0, 0)
	assert.Equal(t, "1 file checked, no issues found\n", buf.String())

	buf.Reset()
	r.PrintSummary(3, 2, 1)
	assert.Equal(t, "3 files checked: 1 error, 2 warnings\n", buf.String())
}
