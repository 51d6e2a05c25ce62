package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/net/html"
)

type listState struct {
	ordered bool
	count   int
}

// textBuilder accumulates inline text and collapses whitespace the way a
// browser would, holding line breaks back until more text arrives
type textBuilder struct {
	sb        strings.Builder
	pending   int
	lineStart bool
	space     bool
}

func (b *textBuilder) flush() {
	if b.sb.Len() > 0 && b.pending > 0 {
		b.sb.WriteString(strings.Repeat("\n", b.pending))
		b.lineStart = true
		b.space = false
	}
	b.pending = 0
}

func (b *textBuilder) text(s string) {
	if s == "" {
		return
	}
	leading := isSpace(s[0])
	trailing := isSpace(s[len(s)-1])
	words := strings.Join(strings.Fields(s), " ")
	if words == "" {
		b.space = b.space || leading
		return
	}
	b.flush()
	if !b.lineStart && b.sb.Len() > 0 && (leading || b.space) {
		b.sb.WriteByte(' ')
	}
	b.sb.WriteString(words)
	b.lineStart = false
	b.space = trailing
}

// marker writes a list bullet at the start of a fresh line
func (b *textBuilder) marker(s string) {
	b.newline()
	b.flush()
	b.sb.WriteString(s)
	b.lineStart = true
	b.space = false
}

func (b *textBuilder) newline() {
	if b.sb.Len() > 0 && b.pending < 1 {
		b.pending = 1
	}
}

func (b *textBuilder) paragraph() {
	if b.sb.Len() > 0 {
		b.pending = 2
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\t' || c == '\r'
}

func attr(z *html.Tokenizer, name string) string {
	for {
		key, val, more := z.TagAttr()
		if string(key) == name {
			return string(val)
		}
		if !more {
			return ""
		}
	}
}

// HTMLToText turns the editor's HTML into plain text wrapped at width
func HTMLToText(src string, width int) string {
	z := html.NewTokenizer(strings.NewReader(src))
	var b textBuilder
	var lists []listState
	var href string

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return wrap(b.sb.String(), width)

		case html.TextToken:
			b.text(string(z.Text()))

		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			switch string(name) {
			case "br":
				b.newline()
			case "p", "div", "h1", "h2", "h3", "h4", "h5", "h6", "blockquote", "pre":
				b.paragraph()
			case "ul", "ol":
				lists = append(lists, listState{ordered: string(name) == "ol"})
				b.newline()
			case "li":
				indent := ""
				bullet := "- "
				if len(lists) > 0 {
					top := &lists[len(lists)-1]
					top.count++
					indent = strings.Repeat("  ", len(lists)-1)
					if top.ordered {
						bullet = fmt.Sprintf("%d. ", top.count)
					}
				}
				b.marker(indent + bullet)
			case "a":
				if hasAttr {
					href = attr(z, "href")
				}
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "p", "div", "h1", "h2", "h3", "h4", "h5", "h6", "blockquote", "pre":
				b.paragraph()
			case "ul", "ol":
				if len(lists) > 0 {
					lists = lists[:len(lists)-1]
				}
				if len(lists) == 0 {
					b.paragraph()
				} else {
					b.newline()
				}
			case "li":
				b.newline()
			case "a":
				if href != "" {
					b.text(" (" + href + ")")
				}
				href = ""
			}
		}
	}
}

func wrap(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = strings.TrimRight(line, " ")
		if width > 0 {
			line = ansi.Wordwrap(line, width, "")
		}
		lines[i] = line
	}
	return strings.Trim(strings.Join(lines, "\n"), "\n")
}
