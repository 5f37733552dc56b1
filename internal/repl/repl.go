// Package repl implements Pie's read-eval-print loop, adapted from the
// teacher's internal/repl: same liner-backed history and :-prefixed
// meta-commands, but multiline continuation is driven by paren balance
// (this grammar's only nesting construct) rather than an "ends with in"
// keyword heuristic, and evaluation dispatches to internal/driver
// instead of a type-class-aware evaluator.
package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/sunholo/pie/internal/driver"
	"github.com/sunholo/pie/internal/ui"
)

// REPL is a read-eval-print loop over one persistent driver.Session.
type REPL struct {
	session *driver.Session
	history []string
	version string
	trace   bool
}

// EnableTrace makes the REPL echo each step's raw core.Expr (the
// internal, non-resugared form) alongside its normalized result.
func (r *REPL) EnableTrace() {
	r.trace = true
}

// New creates a new REPL instance.
func New() *REPL {
	return NewWithVersion("")
}

// NewWithVersion creates a new REPL reporting version in its banner.
func NewWithVersion(version string) *REPL {
	if version == "" {
		version = "dev"
	}
	return &REPL{session: driver.New(), version: version}
}

func historyFilePath() string {
	return filepath.Join(os.TempDir(), ".pie_history")
}

var metaCommands = []string{":help", ":quit", ":q", ":exit", ":history", ":reset"}

// getPrompt returns the REPL prompt.
func (r *REPL) getPrompt() string {
	return "pie> "
}

// Start begins the REPL session.
func (r *REPL) Start(in io.Reader, out io.Writer) {
	line := liner.NewLiner()
	defer line.Close()

	historyFile := historyFilePath()
	if f, err := os.Open(historyFile); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}

	line.SetMultiLineMode(true)

	fmt.Fprintf(out, "%s %s\n", ui.Bold("pie"), ui.Bold(r.version))
	fmt.Fprintln(out, "Type :help for help, :quit to exit.")
	fmt.Fprintln(out)

	line.SetCompleter(func(partial string) (c []string) {
		if strings.HasPrefix(partial, ":") {
			for _, cmd := range metaCommands {
				if strings.HasPrefix(cmd, partial) {
					c = append(c, cmd)
				}
			}
		}
		return
	})

	for {
		input, err := line.Prompt(r.getPrompt())
		if err == io.EOF {
			fmt.Fprintln(out, ui.Green("Goodbye!"))
			break
		}
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", ui.Red("Error"), err)
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		// Multi-line input: keep reading while parens are unbalanced,
		// the reader's only nesting construct.
		for needsMore(input) {
			cont, err := line.Prompt("...  ")
			if err == io.EOF {
				fmt.Fprintln(out, ui.Red("Incomplete form"))
				input = ""
				break
			}
			if err != nil {
				fmt.Fprintf(out, "%s: %v\n", ui.Red("Error"), err)
				input = ""
				break
			}
			input = input + "\n" + cont
		}
		if input == "" {
			continue
		}

		line.AppendHistory(input)
		r.history = append(r.history, input)

		if strings.HasPrefix(input, ":") {
			if input == ":quit" || input == ":q" || input == ":exit" {
				fmt.Fprintln(out, ui.Green("Goodbye!"))
				break
			}
			r.HandleCommand(input, out)
			continue
		}

		r.ProcessExpression(input, out)
	}

	if f, err := os.Create(historyFile); err == nil {
		_, _ = line.WriteHistory(f)
		f.Close()
	}
}

// needsMore reports whether input has more '(' than ')' outside of a
// ;-comment, i.e. whether the reader would hit EOF mid-list.
func needsMore(input string) bool {
	depth := 0
	inComment := false
	for _, r := range input {
		switch {
		case r == '\n':
			inComment = false
		case inComment:
			continue
		case r == ';':
			inComment = true
		case r == '(':
			depth++
		case r == ')':
			depth--
		}
	}
	return depth > 0
}

// HandleCommand dispatches a ":"-prefixed meta-command.
func (r *REPL) HandleCommand(input string, out io.Writer) {
	switch {
	case input == ":help":
		fmt.Fprintln(out, "Commands:")
		fmt.Fprintln(out, "  :help              show this message")
		fmt.Fprintln(out, "  :quit, :q, :exit   leave the REPL")
		fmt.Fprintln(out, "  :history           show input history")
		fmt.Fprintln(out, "  :reset             start a fresh session")
		fmt.Fprintln(out, "Otherwise, enter (claim name T), (define name e), or any")
		fmt.Fprintln(out, "expression to check and normalize it.")
	case input == ":history":
		for i, h := range r.history {
			fmt.Fprintf(out, "%3d  %s\n", i+1, h)
		}
	case input == ":reset":
		r.session = driver.New()
		fmt.Fprintln(out, ui.Green("session reset"))
	default:
		fmt.Fprintf(out, "%s: unknown command %q\n", ui.Red("Error"), input)
	}
}

// ProcessExpression runs one top-level form: (claim name T), (define
// name e), or any other expression, which is checked and normalized.
func (r *REPL) ProcessExpression(input string, out io.Writer) {
	if name, typeSrc, ok := asClaim(input); ok {
		if err := r.session.Claim(name, typeSrc); err != nil {
			printErr(out, err)
			return
		}
		fmt.Fprintln(out, ui.Green("ok"))
		return
	}
	if name, exprSrc, ok := asDefine(input); ok {
		if err := r.session.Define(name, exprSrc); err != nil {
			printErr(out, err)
			return
		}
		fmt.Fprintln(out, ui.Green("ok"))
		return
	}
	res, err := r.session.Check(input)
	if err != nil {
		printErr(out, err)
		return
	}
	if r.trace {
		fmt.Fprintf(out, "%s type = %s, value = %s\n", ui.Cyan("trace:"), res.Type.String(), res.Expr.String())
	}
	fmt.Fprintln(out, res.String())
}

func printErr(out io.Writer, err error) {
	fmt.Fprintln(out, ui.Red("Error")+": "+err.Error())
}

// asClaim recognizes "(claim name T)"; asDefine recognizes
// "(define name e)". Both are driver-level forms, not part of the
// checked expression grammar itself, so the REPL peels them off before
// handing anything to package reader.
func asClaim(input string) (name, typeSrc string, ok bool) {
	return peelForm(input, "claim")
}

func asDefine(input string) (name, exprSrc string, ok bool) {
	return peelForm(input, "define")
}

func peelForm(input, keyword string) (name, rest string, ok bool) {
	trimmed := strings.TrimSpace(input)
	if !strings.HasPrefix(trimmed, "(") || !strings.HasSuffix(trimmed, ")") {
		return "", "", false
	}
	body := strings.TrimSpace(trimmed[1 : len(trimmed)-1])
	if !strings.HasPrefix(body, keyword) {
		return "", "", false
	}
	after := strings.TrimSpace(body[len(keyword):])
	if after == body {
		return "", "", false
	}
	sp := strings.IndexAny(after, " \t\n")
	if sp < 0 {
		return "", "", false
	}
	return after[:sp], strings.TrimSpace(after[sp:]), true
}
