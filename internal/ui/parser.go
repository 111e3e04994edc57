package ui

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnterminated is returned for a rule whose block is never closed.
var ErrUnterminated = errors.New("unterminated block")

// ParseCSS parses the overlay CSS subset: .class and #id selectors with "key: value;" blocks.
// Blocks under any other selector are skipped. No combinators, no @rules.
// An unclosed block or text outside a block fails the whole sheet, so a broken file is never
// half applied.
func ParseCSS(content string) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	rest := strings.TrimSpace(stripCSSComments(content))
	for rest != "" {
		open := strings.IndexByte(rest, '{')
		if open == -1 {
			return nil, fmt.Errorf("ui: css: unexpected %q outside a rule", clip(rest))
		}
		selector := strings.TrimSpace(rest[:open])
		end := findMatchingBrace(rest, open)
		if end == -1 {
			return nil, fmt.Errorf("ui: css: %q: %w", selector, ErrUnterminated)
		}
		if simpleSelector(selector) {
			sheet.Rules = append(sheet.Rules, Rule{
				Selector: selector,
				Props:    parseDeclarations(rest[open+1 : end]),
			})
		}
		rest = strings.TrimSpace(rest[end+1:])
	}
	return sheet, nil
}

func simpleSelector(s string) bool {
	return len(s) >= 2 && (s[0] == '.' || s[0] == '#') && !strings.ContainsAny(s, " \t\n>+~,:")
}

func clip(s string) string {
	if len(s) > 20 {
		return s[:20] + "..."
	}
	return s
}

// stripCSSComments removes /* ... */ comments. An unclosed comment runs to the end.
func stripCSSComments(s string) string {
	var b strings.Builder
	for {
		i := strings.Index(s, "/*")
		if i == -1 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:i])
		j := strings.Index(s[i+2:], "*/")
		if j == -1 {
			return b.String()
		}
		s = s[i+2+j+2:]
	}
}

func findMatchingBrace(s string, openIdx int) int {
	depth := 1
	for i := openIdx + 1; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func parseDeclarations(body string) map[string]string {
	props := make(map[string]string)
	for _, part := range strings.Split(body, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		colon := strings.Index(part, ":")
		if colon == -1 {
			continue
		}
		k := strings.TrimSpace(part[:colon])
		v := strings.TrimSpace(part[colon+1:])
		if k != "" {
			props[k] = v
		}
	}
	return props
}
