// Package terminal implements the site's mini command terminal.
package terminal

import (
	"fmt"
	"html/template"
	"strings"
	"sync"

	"github.com/MrSnakeDoc/folio/internal/view"
)

// Hint is the transcript shown before any command runs.
const Hint = `<div class="term-muted">Type <span class="term-cmd">help</span> to see available commands</div>`

// Responses are the trusted markup bodies of the content commands.
type Responses struct {
	Skills  string
	Contact string
	Pubs    string
	Coffee  string
}

// Painter receives the transcript after every command.
type Painter interface {
	Paint(c view.Container, f view.Fragment)
}

// Terminal keeps a transcript of executed commands.
type Terminal struct {
	mu         sync.Mutex
	responses  Responses
	transcript strings.Builder
	page       Painter
}

// New creates a terminal showing the initial hint. page may be nil.
func New(responses Responses, page Painter) *Terminal {
	t := &Terminal{responses: responses, page: page}
	t.transcript.WriteString(Hint)
	t.paint()
	return t
}

// Run executes one input line and returns the result markup ("" for none).
// Non-blank input is echoed to the transcript; clear empties the
// transcript before its own echo is appended.
func (t *Terminal) Run(input string) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	result := t.process(input)

	if strings.TrimSpace(input) != "" {
		fmt.Fprintf(&t.transcript,
			`<div class="term-line"><span class="term-prompt">→</span> %s</div>`,
			template.HTMLEscapeString(input))
	}
	if result != "" {
		fmt.Fprintf(&t.transcript, `<div class="term-result">%s</div>`, result)
	}

	t.paint()
	return result
}

func (t *Terminal) process(input string) string {
	name := normalize(input)
	if name == "" {
		return ""
	}

	switch ParseCommand(name) {
	case CommandHelp:
		return help()
	case CommandSkills:
		return t.responses.Skills
	case CommandContact:
		return t.responses.Contact
	case CommandPubs:
		return t.responses.Pubs
	case CommandCoffee:
		return t.responses.Coffee
	case CommandClear:
		t.transcript.Reset()
		return ""
	default:
		return fmt.Sprintf(`Command not found: %s. Type <span class="term-cmd">help</span> for options.`,
			template.HTMLEscapeString(name))
	}
}

func help() string {
	var b strings.Builder
	b.WriteString("Available commands:")
	for _, c := range Commands() {
		fmt.Fprintf(&b, "\n  <span class=\"term-cmd\">%s</span>%s- %s",
			c, strings.Repeat(" ", 9-len(c.String())), c.Description())
	}
	return b.String()
}

// Transcript returns the transcript markup.
func (t *Terminal) Transcript() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.transcript.String()
}

func (t *Terminal) paint() {
	if t.page == nil {
		return
	}
	t.page.Paint(view.TerminalOutput, view.Fragment{HTML: t.transcript.String()})
}
