package view

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var blockElements = map[atom.Atom]bool{
	atom.Article: true, atom.Div: true, atom.P: true, atom.Br: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Li: true, atom.Ul: true, atom.Ol: true, atom.Pre: true, atom.Blockquote: true,
	atom.Tr: true, atom.Table: true, atom.Hr: true, atom.Section: true,
}

// Text flattens markup into plain text for terminal display.
// Block elements start a new line; whitespace inside <pre> is kept,
// elsewhere it collapses to single spaces.
func Text(markup string) string {
	z := html.NewTokenizer(strings.NewReader(markup))

	var (
		lines   []string
		current strings.Builder
		pre     int
		skip    int
	)

	flush := func() {
		line := strings.TrimSpace(current.String())
		current.Reset()
		if line == "" {
			return
		}
		lines = append(lines, line)
	}

	for {
		switch z.Next() {
		case html.ErrorToken:
			flush()
			return strings.Join(lines, "\n")

		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			switch tok.DataAtom {
			case atom.Script, atom.Style:
				skip++
			case atom.Pre:
				pre++
			}
			if blockElements[tok.DataAtom] {
				flush()
			}

		case html.EndTagToken:
			tok := z.Token()
			switch tok.DataAtom {
			case atom.Script, atom.Style:
				if skip > 0 {
					skip--
				}
			case atom.Pre:
				if pre > 0 {
					pre--
				}
			}
			if blockElements[tok.DataAtom] {
				flush()
			}

		case html.TextToken:
			if skip > 0 {
				continue
			}
			text := string(z.Text())
			if pre > 0 {
				for i, part := range strings.Split(text, "\n") {
					if i > 0 {
						lines = append(lines, strings.TrimRight(current.String(), " "))
						current.Reset()
					}
					current.WriteString(part)
				}
				continue
			}
			writeCollapsed(&current, text)
		}
	}
}

func writeCollapsed(b *strings.Builder, text string) {
	space := func() {
		if b.Len() > 0 && !strings.HasSuffix(b.String(), " ") {
			b.WriteByte(' ')
		}
	}

	fields := strings.Fields(text)
	if len(fields) == 0 {
		if text != "" {
			space()
		}
		return
	}
	if startsWithSpace(text) {
		space()
	}
	b.WriteString(strings.Join(fields, " "))
	if endsWithSpace(text) {
		space()
	}
}

func startsWithSpace(s string) bool {
	return s != "" && strings.TrimLeft(s[:1], " \t\r\n") == ""
}

func endsWithSpace(s string) bool {
	return s != "" && strings.TrimRight(s[len(s)-1:], " \t\r\n") == ""
}
