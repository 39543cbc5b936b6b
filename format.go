package csslint

import (
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Format re-serializes fixed CSS into the requested output style.
//
// HTML containers are returned unchanged: the CSS inside <style> blocks
// must keep its wrapper intact and is never reformatted independently.
// An empty style likewise means no transform. Otherwise the source is
// tokenized and rewritten; a tokenizer failure or unbalanced input
// raises ErrParse with the underlying message.
//
// Re-serialization is lossy for comments that sit inside a selector
// prelude or a declaration: only comments between rules survive.
func Format(fixed, style, syntax string) (string, error) {
	if syntax == SyntaxHTML || style == "" {
		return fixed, nil
	}

	rules, err := parseStylesheet(fixed)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	switch style {
	case StyleNested:
		writeNested(&b, rules, 0)
	case StyleCompact:
		writeCompact(&b, rules, 0)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedOutputStyle, style)
	}
	return b.String(), nil
}

type nodeKind int

const (
	nodeRule      nodeKind = iota // prelude + { decls, children }
	nodeDirective                 // blockless at-rule: @import, @charset
	nodeComment
)

// cssNode is one entry of the lightweight re-serialization tree. A rule
// node holds its selector (or at-rule prelude), its declarations in
// source order and any nested rules.
type cssNode struct {
	kind     nodeKind
	prelude  string
	decls    []string
	children []*cssNode
}

// parseStylesheet tokenizes src into a tree of rules. It intentionally
// understands only as much grammar as re-serialization needs: braces,
// semicolons and comments delimit everything else.
func parseStylesheet(src string) ([]*cssNode, error) {
	lexer := css.NewLexer(parse.NewInputString(src))

	root := &cssNode{kind: nodeRule}
	stack := []*cssNode{root}
	var buf []string

	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && err != io.EOF {
				return nil, fmt.Errorf("%w: %v", ErrParse, err)
			}
			if len(stack) != 1 {
				return nil, fmt.Errorf("%w: unclosed block", ErrParse)
			}
			if rest := collapseTokens(buf); rest != "" {
				return nil, fmt.Errorf("%w: unexpected trailing %q", ErrParse, rest)
			}
			return root.children, nil
		}

		current := stack[len(stack)-1]
		switch tt {
		case css.CommentToken:
			if collapseTokens(buf) == "" {
				current.children = append(current.children, &cssNode{kind: nodeComment, prelude: string(data)})
				buf = nil
			}
			// comments mid-prelude or mid-declaration are dropped
		case css.LeftBraceToken:
			child := &cssNode{kind: nodeRule, prelude: collapseTokens(buf)}
			buf = nil
			current.children = append(current.children, child)
			stack = append(stack, child)
		case css.RightBraceToken:
			if len(stack) == 1 {
				return nil, fmt.Errorf("%w: unexpected %q", ErrParse, "}")
			}
			if decl := collapseTokens(buf); decl != "" {
				current.decls = append(current.decls, normalizeDecl(decl))
			}
			buf = nil
			stack = stack[:len(stack)-1]
		case css.SemicolonToken:
			text := collapseTokens(buf)
			buf = nil
			if text == "" {
				continue
			}
			if len(stack) == 1 {
				current.children = append(current.children, &cssNode{kind: nodeDirective, prelude: text})
			} else {
				current.decls = append(current.decls, normalizeDecl(text))
			}
		case css.WhitespaceToken:
			buf = append(buf, " ")
		default:
			buf = append(buf, string(data))
		}
	}
}

// collapseTokens joins token texts, reducing the whitespace markers
// between them to single spaces. Whitespace inside string tokens is
// never touched; only inter-token whitespace collapses.
func collapseTokens(parts []string) string {
	var b strings.Builder
	pendingSpace := false
	for _, part := range parts {
		if part == " " {
			pendingSpace = true
			continue
		}
		if pendingSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		pendingSpace = false
		b.WriteString(part)
	}
	return b.String()
}

// normalizeDecl rewrites a declaration as "property: value" with exactly
// one space after the colon. The property name never contains a colon,
// so cutting at the first one is safe whatever the value holds.
func normalizeDecl(decl string) string {
	prop, value, found := strings.Cut(decl, ":")
	if !found {
		return decl
	}
	return strings.TrimSpace(prop) + ": " + strings.TrimSpace(value)
}

// writeNested renders each declaration block multi-line: the brace opens
// the line, declarations sit on their own 2-space-indented lines and the
// closing brace gets a line of its own.
func writeNested(b *strings.Builder, nodes []*cssNode, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, n := range nodes {
		switch n.kind {
		case nodeComment:
			b.WriteString(indent + n.prelude + "\n")
		case nodeDirective:
			b.WriteString(indent + n.prelude + ";\n")
		case nodeRule:
			b.WriteString(indent + n.prelude + " {\n")
			inner := strings.Repeat("  ", depth+1)
			for _, decl := range n.decls {
				b.WriteString(inner + decl + ";\n")
			}
			writeNested(b, n.children, depth+1)
			b.WriteString(indent + "}\n")
		}
	}
}

// writeCompact renders each declaration block on a single line as
// "{ decl1; decl2; }". Grouping at-rules keep their children one rule
// per line so media queries stay readable.
func writeCompact(b *strings.Builder, nodes []*cssNode, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, n := range nodes {
		switch n.kind {
		case nodeComment:
			b.WriteString(indent + n.prelude + "\n")
		case nodeDirective:
			b.WriteString(indent + n.prelude + ";\n")
		case nodeRule:
			if len(n.children) == 0 {
				if len(n.decls) == 0 {
					b.WriteString(indent + n.prelude + " { }\n")
					continue
				}
				b.WriteString(indent + n.prelude + " { " + strings.Join(n.decls, "; ") + "; }\n")
				continue
			}
			b.WriteString(indent + n.prelude + " {\n")
			if len(n.decls) > 0 {
				b.WriteString(strings.Repeat("  ", depth+1) + strings.Join(n.decls, "; ") + ";\n")
			}
			writeCompact(b, n.children, depth+1)
			b.WriteString(indent + "}\n")
		}
	}
}
