// Package frontmatter splits a text document into a flat key/value header
// and a body.
//
// The header is a line-oriented subset, not YAML:
//
//	---
//	title: "Hello"
//	date: 2024-03-01
//	---
//	Body text
package frontmatter

import (
	"sort"
	"strings"
)

// Delimiter opens and closes the metadata region.
const Delimiter = "---"

// Document is a parsed text file.
type Document struct {
	Meta map[string]string
	Body string
}

// Parse splits text into metadata and body. It never fails: text that does
// not open with a delimiter line, or whose region is never closed, is
// returned whole as the body with empty metadata.
func Parse(text string) Document {
	first, rest, ok := strings.Cut(text, "\n")
	if !ok || first != Delimiter {
		return plain(text)
	}

	meta := make(map[string]string)
	for {
		line, next, ok := strings.Cut(rest, "\n")
		if !ok {
			// closing delimiter must be followed by a newline
			return plain(text)
		}
		if line == Delimiter {
			return Document{Meta: meta, Body: next}
		}
		if key, value, ok := parseLine(line); ok {
			meta[key] = value
		}
		rest = next
	}
}

func plain(text string) Document {
	return Document{Meta: map[string]string{}, Body: text}
}

// parseLine splits "key: value" on the first colon.
// Lines with no colon or an empty key are dropped.
func parseLine(line string) (string, string, bool) {
	idx := strings.IndexByte(line, ':')
	if idx <= 0 {
		return "", "", false
	}

	key := strings.TrimSpace(line[:idx])
	if key == "" {
		return "", "", false
	}

	return key, unquote(strings.TrimSpace(line[idx+1:])), true
}

// unquote strips one layer of matching single or double quotes.
func unquote(value string) string {
	if len(value) < 2 {
		return value
	}
	first, last := value[0], value[len(value)-1]
	if first == last && (first == '"' || first == '\'') {
		return value[1 : len(value)-1]
	}
	return value
}

// String serialises the document back into delimited form.
// Keys are written in sorted order and every value is double-quoted,
// so Parse(d.String()) yields d.
func (d Document) String() string {
	keys := make([]string, 0, len(d.Meta))
	for k := range d.Meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(Delimiter + "\n")
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString(`: "`)
		b.WriteString(d.Meta[k])
		b.WriteString("\"\n")
	}
	b.WriteString(Delimiter + "\n")
	b.WriteString(d.Body)
	return b.String()
}

// Get returns the value for key, or "" if absent.
func (d Document) Get(key string) string {
	return d.Meta[key]
}
