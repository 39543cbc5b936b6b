package engine

import (
	"regexp"
	"strings"

	csslint "github.com/bearholmes/mongmung-csslint-server"
)

// styleOpenRe matches an opening <style> tag, attributes included.
// styleCloseRe matches the closing tag; both work on the original
// bytes so offsets stay valid regardless of the document's content.
var (
	styleOpenRe  = regexp.MustCompile(`(?i)<style\b[^>]*>`)
	styleCloseRe = regexp.MustCompile(`(?i)</style>`)
)

// lintHTML lints the CSS inside every <style> block of doc and splices
// the fixed CSS back. Everything outside the blocks, including the
// wrapper tags themselves, is byte-preserved. Warning positions are
// shifted so they point into the full document.
func lintHTML(doc string, rules map[string]ruleSetting) *csslint.EngineResult {
	var out strings.Builder
	out.Grow(len(doc))
	warnings := []csslint.Warning{}

	pos := 0
	for _, loc := range styleOpenRe.FindAllStringIndex(doc, -1) {
		if loc[0] < pos {
			continue
		}
		closeLoc := styleCloseRe.FindStringIndex(doc[loc[1]:])
		if closeLoc == nil {
			break
		}
		cssStart := loc[1]
		cssEnd := loc[1] + closeLoc[0]

		out.WriteString(doc[pos:cssStart])

		snippet := doc[cssStart:cssEnd]
		fixed, snippetWarnings := lintCSS(snippet, rules)
		out.WriteString(fixed)

		baseLine, baseCol := lineCol(doc, cssStart)
		for _, w := range snippetWarnings {
			if w.Line == 1 {
				w.Column += baseCol - 1
			}
			w.Line += baseLine - 1
			warnings = append(warnings, w)
		}

		pos = cssEnd
	}
	out.WriteString(doc[pos:])

	return &csslint.EngineResult{Output: out.String(), Warnings: warnings}
}
