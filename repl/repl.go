// Package repl implements Graveyard's interactive Read-Eval-Print Loop:
// enter code line by line, see results immediately, navigate history with
// the arrow keys, get colored feedback for errors versus results.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/geoffreydatema/graveyard/eval"
	"github.com/geoffreydatema/graveyard/object"
	"github.com/geoffreydatema/graveyard/parser"
)

// Color definitions for REPL output: blue for separators, green for the
// banner, yellow for version info and results, cyan for welcome text and
// hints, red for errors.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for one interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Graveyard!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop: print the banner, then read lines with
// readline (history, cursor editing) until '.exit' or EOF, parsing and
// evaluating each line against a single Evaluator shared across the whole
// session so variables and functions persist between lines.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	evaluator := eval.New(writer, reader)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line, evaluator)
	}
}

// executeWithRecovery parses and evaluates one line, catching Go panics
// (a bug in the interpreter itself, not a language-level fault) so a bad
// line never kills the session. Language-level faults already arrive as an
// *object.Error value and need no recovery.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, evaluator *eval.Evaluator) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[internal error] %v\n", recovered)
		}
	}()

	p := parser.NewParser(line)
	prog := p.Parse()

	if p.HasErrors() {
		for _, e := range p.GetErrors() {
			redColor.Fprintf(writer, "%s\n", e)
		}
		return
	}

	result := evaluator.Run(prog)
	if result == nil {
		return
	}
	if errVal, ok := result.(*object.Error); ok {
		redColor.Fprintf(writer, "%s\n", errVal.String())
		return
	}
	if result.Type() != object.NullType {
		yellowColor.Fprintf(writer, "%s\n", result.String())
	}
}
