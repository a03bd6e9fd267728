// Package browser is an interactive terminal client for the site.
package browser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MrSnakeDoc/folio/internal/domain"
	"github.com/MrSnakeDoc/folio/internal/logger"
	"github.com/MrSnakeDoc/folio/internal/router"
	"github.com/MrSnakeDoc/folio/internal/terminal"
	"github.com/MrSnakeDoc/folio/internal/theme"
	"github.com/MrSnakeDoc/folio/internal/view"
)

const usage = `Commands:
  #<fragment>, go <fragment>  follow a location hash (#blog/my-post)
  nav <section>               follow a navigation link
  open <n>                    activate the n-th link of the current view
  back                        return to the post list
  tag <name>, untag           filter readings by tag / clear the filter
  menu                        toggle the navigation menu
  theme                       toggle light/dark
  reload                      fetch the collections again
  $ <command>                 run a mini-terminal command ($ help)
  quit                        leave`

// Session binds one user's input to a router and prints the page.
type Session struct {
	router *router.Router
	page   *view.Page
	term   *terminal.Terminal
	prefs  *theme.Preferences
	client string
	out    io.Writer
	logger logger.Logger
}

// NewSession creates a browse session writing to out.
func NewSession(r *router.Router, page *view.Page, term *terminal.Terminal, prefs *theme.Preferences, client string, out io.Writer, log logger.Logger) *Session {
	return &Session{
		router: r,
		page:   page,
		term:   term,
		prefs:  prefs,
		client: client,
		out:    out,
		logger: log,
	}
}

// Start applies the saved theme, loads the site and shows the first view.
func (s *Session) Start(ctx context.Context, fragment string) {
	s.page.SetTheme(s.prefs.Current(ctx, s.client).String())
	s.page.SetHash(strings.TrimPrefix(fragment, "#"))
	s.router.Init(ctx)
	s.show()
}

// Handle executes one input line. It reports false once the user quits.
func (s *Session) Handle(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return true
	}

	if strings.HasPrefix(line, "#") {
		s.router.Navigate(ctx, line)
		s.show()
		return true
	}
	if cmd, ok := strings.CutPrefix(line, "$"); ok {
		s.runTerminal(cmd)
		return true
	}

	verb, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch verb {
	case "quit", "exit":
		return false
	case "help", "?":
		s.println(usage)
	case "go":
		s.router.Navigate(ctx, arg)
		s.show()
	case "nav":
		s.nav(ctx, arg)
	case "open":
		s.open(ctx, arg)
	case "back":
		s.router.Navigate(ctx, domain.SectionBlog.String())
		s.show()
	case "tag":
		if arg == "" {
			s.println("usage: tag <name>")
			return true
		}
		s.router.SetTagFilter(arg)
		s.show()
	case "untag":
		s.router.ClearTagFilter()
		s.show()
	case "menu":
		s.menu()
	case "theme":
		s.toggleTheme(ctx)
	case "reload":
		s.router.Reload(ctx)
		s.show()
	default:
		s.printf("Unknown input %q. Type help for options.\n", line)
	}
	return true
}

func (s *Session) nav(ctx context.Context, name string) {
	section := domain.ParseSection(name)
	if !section.Known() {
		s.printf("No navigation link for %q.\n", name)
		return
	}
	s.router.FollowNavLink(ctx, section)
	s.show()
}

// open activates a numbered binding of the visible view, as Enter on a
// focused list item would.
func (s *Session) open(ctx context.Context, arg string) {
	bindings := s.visibleBindings()

	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(bindings) {
		s.printf("Nothing to open at %q.\n", arg)
		return
	}

	if err := s.router.Dispatch(ctx, bindings[n-1]); err != nil {
		s.logger.Error("dispatch failed", logger.Error(err))
		return
	}
	s.show()
}

func (s *Session) visibleBindings() []view.Binding {
	c, ok := s.page.Visible()
	if !ok {
		return nil
	}
	return s.page.Fragment(c).Bindings
}

func (s *Session) menu() {
	if !s.router.ToggleMenu() {
		s.println("Menu closed.")
		return
	}
	for _, section := range s.page.Sections() {
		marker := " "
		if s.page.NavLinkActive(section) {
			marker = "*"
		}
		s.printf(" %s %s\n", marker, section)
	}
}

func (s *Session) toggleTheme(ctx context.Context) {
	next, err := s.prefs.Toggle(ctx, s.client)
	if err != nil {
		if errors.Is(err, theme.ErrInvalidTheme) {
			s.logger.Error("theme toggle rejected", logger.Error(err))
			return
		}
		// the page still switches; only persistence failed
		s.logger.Warn("theme not saved", logger.Error(err))
	}
	s.page.SetTheme(next.String())
	s.printf("Theme: %s\n", next)
}

func (s *Session) runTerminal(input string) {
	result := s.term.Run(input)
	if terminal.ParseCommand(input) == terminal.CommandClear {
		s.println(view.Text(s.term.Transcript()))
		return
	}
	if result != "" {
		s.println(view.Text("<pre>" + result + "</pre>"))
	}
}

// show prints the active section and its visible content.
func (s *Session) show() {
	state := s.router.State()
	if !state.Section.Known() {
		s.printf("No section named %q.\n", state.Name)
		return
	}

	s.printf("== %s == (#%s, %s theme)\n", state.Section.Title(), s.page.Hash(), s.page.Theme())
	if state.Section == domain.SectionReadings && state.TagFilter != "" {
		s.printf("(filtered by %q, untag to clear)\n", state.TagFilter)
	}

	c, ok := s.page.Visible()
	if !ok {
		return
	}

	frag := s.page.Fragment(c)
	if text := frag.Text(); text != "" {
		s.println(text)
	}
	for i, b := range frag.Bindings {
		s.printf("  [%d] %s %s\n", i+1, b.Action, b.Label)
	}
}

func (s *Session) println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Session) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}
