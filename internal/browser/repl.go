package browser

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"

	"github.com/MrSnakeDoc/folio/internal/utils"
)

// Prompt is shown before each input line.
const Prompt = "folio> "

// Run reads lines until quit, EOF or interrupt on an empty line.
func (s *Session) Run(ctx context.Context, historyFile string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      Prompt,
		HistoryFile: historyFile,
		Stdout:      s.out,
	})
	if err != nil {
		return fmt.Errorf("failed to start line editor: %w", err)
	}
	defer utils.Close(rl)

	for {
		if ctx.Err() != nil {
			return nil
		}

		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				return nil
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		if !s.Handle(ctx, line) {
			return nil
		}
	}
}
