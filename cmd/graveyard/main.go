// Command graveyard is the CLI entry point: run a source file in one of
// the driver modes (S/T/P/E/M), or drop into the REPL when no file is
// given.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/geoffreydatema/graveyard/config"
	"github.com/geoffreydatema/graveyard/eval"
	"github.com/geoffreydatema/graveyard/lexer"
	"github.com/geoffreydatema/graveyard/library"
	"github.com/geoffreydatema/graveyard/object"
	"github.com/geoffreydatema/graveyard/parser"
	"github.com/geoffreydatema/graveyard/repl"
)

const (
	version = "v1.0.0"
	author  = "geoffreydatema"
	license = "MIT"
	line    = "----------------------------------------------------------------"
	banner  = `
  ▄████  ██▀███   ▄▄▄     ██▒   █▓▓█████  ▓██   ██▓ ▄▄▄       ██▀███  ▓█████▄
 ██▒ ▀█▒▓██ ▒ ██▒▒████▄  ▓██░   █▒▓█   ▀   ▒██  ██▒▒████▄    ▓██ ▒ ██▒▒██▀ ██▌
▒██░▄▄▄░▓██ ░▄█ ▒▒██  ▀█▄ ▓██  █▒░▒███      ▒██ ██░▒██  ▀█▄  ▓██ ░▄█ ▒░██   █▌
░▓█  ██▓▒██▀▀█▄  ░██▄▄▄▄██ ▒██ █░░▒▓█  ▄    ░ ▐██▓░░██▄▄▄▄██ ▒██▀▀█▄  ░▓█▄   ▌
░▒▓███▀▒░██▓ ▒██▒ ▓█   ▓██▒ ▒▀█░  ░▒████▒   ░ ██▒▓░ ▓█   ▓██▒░██▓ ▒██▒░▒████▓
`
)

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

func main() {
	modeFlag := flag.String("mode", "", "driver mode: S (source), T (tokens), P (AST), E (execute), M (execute + monolith dump)")
	configPath := flag.String("config", config.FileName, "path to graveyard.yaml")
	flag.Usage = usage
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[config error] %v\n", err)
		os.Exit(1)
	}

	args := flag.Args()
	mode := *modeFlag
	if mode == "" {
		mode = cfg.Mode
	}

	var file string
	switch {
	case len(args) > 0:
		file = args[0]
	case cfg.Entry != "":
		file = cfg.Entry
	default:
		r := repl.NewRepl(banner, version, author, line, license, cfg.Prompt)
		r.Start(os.Stdin, os.Stdout)
		return
	}

	runFile(file, mode)
}

func usage() {
	cyanColor.Println("Graveyard - an interpreted stack of rituals")
	cyanColor.Println("USAGE:")
	fmt.Println("  graveyard [-mode S|T|P|E|M] [-config path] [file.graveyard]")
	fmt.Println("  graveyard                      start the REPL")
}

// runFile pushes file through the Source Loader and, depending on mode,
// stops early to show an intermediate stage (S: resolved source, T: token
// list, P: AST) or actually runs the program (E, and M which additionally
// dumps the final global scope). Go panics from a bug in the interpreter
// itself are caught here and reported without crashing the process.
func runFile(file, mode string) {
	defer func() {
		if r := recover(); r != nil {
			redColor.Fprintf(os.Stderr, "[internal error] %v\n", r)
			os.Exit(1)
		}
	}()

	src, err := library.Load(file)
	if err != nil {
		redColor.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	switch mode {
	case "S":
		fmt.Println(src)
		return
	case "T":
		for _, tok := range lexer.Tokenize(src) {
			fmt.Printf("%-16s %q [%d:%d]\n", tok.Type, tok.Literal, tok.Line, tok.Column)
		}
		return
	}

	p := parser.NewParser(src)
	prog := p.Parse()
	if p.HasErrors() {
		for _, e := range p.GetErrors() {
			redColor.Fprintf(os.Stderr, "%s\n", e)
		}
		os.Exit(1)
	}

	if mode == "P" {
		fmt.Print(printProgram(prog))
		return
	}

	ev := eval.New(os.Stdout, os.Stdin)
	result := ev.Run(prog)
	if errVal, ok := result.(*object.Error); ok {
		redColor.Fprintf(os.Stderr, "%s\n", errVal.String())
		os.Exit(1)
	}

	if mode == "M" {
		dumpScope(ev)
	}
}

// dumpScope prints every binding in the evaluator's global scope, sorted
// by name so the output is stable across runs.
func dumpScope(ev *eval.Evaluator) {
	names := make([]string, 0, len(ev.Global.Variables))
	for name := range ev.Global.Variables {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Println(line)
	fmt.Println("monolith (global scope):")
	for _, name := range names {
		fmt.Printf("  %s = %s\n", name, ev.Global.Variables[name].String())
	}
}
