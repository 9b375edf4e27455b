package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/leapstack-labs/js2py/pkg/jsparse"
	"github.com/leapstack-labs/js2py/pkg/source"
	"github.com/leapstack-labs/js2py/pkg/translate"
	"github.com/spf13/cobra"
)

const (
	replPrompt     = "js2py> "
	replContPrompt = "  ...> "
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Translate JavaScript interactively",
		Long: `Start an interactive session that translates each statement as it is entered.

Input accumulates until brackets balance, so blocks can span lines.
Type .help for commands, .quit to exit.`,
		Args: cobra.NoArgs,
		RunE: runREPL,
	}
}

func runREPL(cmd *cobra.Command, _ []string) error {
	c := NewCommandContext(cmd)

	historyFile := ""
	if dir := filepath.Dir(c.Cfg.StatePath); dir != "" && os.MkdirAll(dir, 0o750) == nil {
		historyFile = filepath.Join(dir, "repl_history")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     historyFile,
		AutoComplete:    readline.NewPrefixCompleter(readline.PcItem(".help"), readline.PcItem(".indent"), readline.PcItem(".quit")),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	s := newREPLSession(cmd.OutOrStdout(), cmd.ErrOrStderr(), translate.New().WithIndent(c.Cfg.Indent))

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "js2py REPL")
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			s.reset()
			rl.SetPrompt(s.prompt())
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if quit := s.handle(line); quit {
			return nil
		}
		rl.SetPrompt(s.prompt())
	}
}

// replSession holds REPL state independent of the terminal.
type replSession struct {
	out        io.Writer
	errOut     io.Writer
	translator translate.Translator
	buf        strings.Builder
}

func newREPLSession(out, errOut io.Writer, tr translate.Translator) *replSession {
	return &replSession{out: out, errOut: errOut, translator: tr}
}

func (s *replSession) prompt() string {
	if s.buf.Len() > 0 {
		return replContPrompt
	}
	return replPrompt
}

func (s *replSession) reset() {
	s.buf.Reset()
}

// handle processes one input line and reports whether the session should end.
func (s *replSession) handle(line string) bool {
	trimmed := strings.TrimSpace(line)
	if s.buf.Len() == 0 {
		if trimmed == "" {
			return false
		}
		if strings.HasPrefix(trimmed, ".") {
			return s.dotCommand(trimmed)
		}
	}

	s.buf.WriteString(line)
	s.buf.WriteString("\n")
	if bracketDepth(s.buf.String()) > 0 {
		return false
	}

	src := s.buf.String()
	s.buf.Reset()
	s.translate(src)
	return false
}

func (s *replSession) translate(src string) {
	prog, err := jsparse.Parse(src)
	if err != nil {
		_, _ = fmt.Fprintf(s.errOut, "Error: %v\n", err)
		return
	}

	code, err := s.translator.Build(prog)
	if err != nil {
		_, _ = fmt.Fprintf(s.errOut, "Error: %v\n", err)
		if span, ok := translate.ErrorSpan(err); ok {
			_, _ = fmt.Fprintln(s.errOut, source.NewFile("repl", src).Caret(span))
		}
		return
	}
	if code != "" {
		_, _ = fmt.Fprintln(s.out, code)
	}
}

func (s *replSession) dotCommand(line string) bool {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(s.out)

	case ".indent":
		if len(parts) < 2 {
			_, _ = fmt.Fprintf(s.out, "indent is %d\n", s.translator.IndentWidth())
			return false
		}
		n, err := strconv.Atoi(parts[1])
		if err != nil || n < 1 || n > 16 {
			_, _ = fmt.Fprintln(s.errOut, "Usage: .indent <1-16>")
			return false
		}
		s.translator = s.translator.WithIndent(n)
		_, _ = fmt.Fprintf(s.out, "indent set to %d\n", n)

	default:
		_, _ = fmt.Fprintf(s.errOut, "Unknown command: %s (type .help for commands)\n", command)
	}
	return false
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help           Show this help message
  .indent [n]     Show or set the indent width
  .quit / .exit   Exit the REPL

Tips:
  - Input continues until (), [] and {} are balanced
  - Use arrow keys to navigate history
  - Ctrl+C discards the pending input
`
	_, _ = fmt.Fprintln(w, help)
}

// bracketDepth returns the number of unclosed brackets in src, ignoring
// string literals and comments.
func bracketDepth(src string) int {
	depth := 0
	var quote byte
	for i := 0; i < len(src); i++ {
		ch := src[i]
		if quote != 0 {
			switch ch {
			case '\\':
				i++
			case quote:
				quote = 0
			}
			continue
		}
		switch ch {
		case '"', '\'', '`':
			quote = ch
		case '/':
			if i+1 < len(src) && src[i+1] == '/' {
				for i < len(src) && src[i] != '\n' {
					i++
				}
			} else if i+1 < len(src) && src[i+1] == '*' {
				end := strings.Index(src[i+2:], "*/")
				if end < 0 {
					return depth + 1
				}
				i += end + 3
			}
		case '{', '(', '[':
			depth++
		case '}', ')', ']':
			depth--
		}
	}
	return depth
}
