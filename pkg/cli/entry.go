// Package cli wires together config, driver, host and history into the
// command-line program described in spec.md §6: positional arguments
// become #include lines, -i/--interactive starts a REPL, -r/--run
// evaluates the single name Main.
package cli

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/lambdalang/lci/internal/ast"
	"github.com/lambdalang/lci/internal/config"
	"github.com/lambdalang/lci/internal/driver"
	"github.com/lambdalang/lci/internal/evaluator"
	"github.com/lambdalang/lci/internal/history"
	"github.com/lambdalang/lci/internal/host"
)

// DefaultHistoryFile is used when a history file is wanted (REPL mode)
// but neither .lcirc.yaml nor $LCI_CONFIG names one.
const DefaultHistoryFile = ".lci_history.db"

// Run parses args (os.Args with the program name already stripped) and
// executes the CLI to completion. It always returns 0 except when the
// config file is present but cannot be read or parsed — the one
// startup failure SPEC_FULL.md §6 treats as fatal.
func Run(args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "lci: %s\n", err)
		return 1
	}

	includes, interactive, runMain := parseArgs(args)

	d := driver.New(nil, nil, cfg.IncludePaths)
	out := &stdoutIO{}

	for _, name := range includes {
		d.Include(name, out)
	}

	printStartupBanner(len(includes), d.Bindings)

	if runMain {
		result, err := evaluator.Simplify(&ast.Name{Ident: "Main"}, d.Bindings)
		if err != nil {
			out.PrintError("Evaluation error: " + err.Error())
		} else {
			out.Print(result.String())
		}
	}

	if interactive {
		runRepl(d, cfg)
	}

	return 0
}

// parseArgs splits the command line into include base-names and the
// two recognised flags, per spec.md §6: any order, repeated flags are
// idempotent, and everything else is a positional include argument.
func parseArgs(args []string) (includes []string, interactive, runMain bool) {
	for _, arg := range args {
		switch arg {
		case "-i", "--interactive":
			interactive = true
		case "-r", "--run":
			runMain = true
		default:
			includes = append(includes, arg)
		}
	}
	return includes, interactive, runMain
}

// stdoutIO is the driver.IO used while processing positional includes,
// before any REPL or history wiring exists.
type stdoutIO struct{}

func (stdoutIO) ReadLine() (string, bool)  { return "", false }
func (stdoutIO) Print(message string)      { fmt.Println(message) }
func (stdoutIO) PrintError(message string) { fmt.Fprintln(os.Stderr, message) }

func runRepl(d *driver.Driver, cfg config.Config) {
	historyPath := cfg.HistoryFile
	if historyPath == "" {
		historyPath = DefaultHistoryFile
	}

	var store *history.Store
	if h, err := history.Open(historyPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: history disabled: %s\n", err)
	} else {
		store = h
		defer store.Close()
	}

	io := host.NewReplIO(os.Stdin, os.Stdout, os.Stderr, cfg.Prompt, store)
	d.Run(io)
}

func printStartupBanner(includeCount int, bindings ast.BindingTable) {
	if !host.IsInteractiveTerminal(os.Stdout) {
		return
	}
	totalSize := 0
	for _, expr := range bindings {
		totalSize += len(expr.String())
	}
	fmt.Printf(
		"loaded %s binding(s) from %s file(s) (%s)\n",
		humanize.Comma(int64(len(bindings))),
		humanize.Comma(int64(includeCount)),
		humanize.Bytes(uint64(totalSize)),
	)
}
