// Package host supplies the two concrete driver.IO realisations spec.md
// §1 explicitly scopes out of the driver itself: a plain stream reader
// for piped/file input, and an interactive REPL that prompts, echoes
// results with a blank-line separator, and optionally persists its
// transcript (SPEC_FULL.md DOMAIN STACK items 1 and 3).
package host

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/lambdalang/lci/internal/driver"
	"github.com/lambdalang/lci/internal/history"
)

// StreamIO reads logical lines from an arbitrary io.Reader (standard
// input, or a file named on the command line) and writes results and
// diagnostics to the given writers with no prompting or framing.
type StreamIO struct {
	scanner *bufio.Scanner
	out     io.Writer
	errOut  io.Writer
}

// NewStreamIO wraps r, out and errOut into a driver.IO.
func NewStreamIO(r io.Reader, out, errOut io.Writer) *StreamIO {
	return &StreamIO{scanner: bufio.NewScanner(r), out: out, errOut: errOut}
}

func (s *StreamIO) ReadLine() (string, bool) {
	return driver.ReadLogicalLine(func() (string, bool) {
		if !s.scanner.Scan() {
			return "", false
		}
		return s.scanner.Text(), true
	})
}

func (s *StreamIO) Print(message string)      { fmt.Fprintln(s.out, message) }
func (s *StreamIO) PrintError(message string) { fmt.Fprintln(s.errOut, message) }

// DefaultPrompt is emitted before each read when no config.Config.Prompt
// override is set.
const DefaultPrompt = ">>> "

// ReplIO is the interactive realisation of driver.IO: it prompts,
// reads one logical line at a time from an io.Reader, echoes results
// and diagnostics followed by a blank line (spec.md §6), and — when a
// history.Store is attached — records each printed result or
// diagnostic together with the line last read. A line that prints
// nothing (a comment, or a binding that shadows nothing) is not
// recorded; a line that prints several messages is recorded once per
// message.
//
// The prompt is only written when Out is a real terminal, gated with
// the same isatty.IsTerminal/IsCygwinTerminal pair the teacher's
// terminal builtins use, so piping a transcript through ReplIO (e.g.
// in a test harness) never interleaves prompt bytes into the output.
type ReplIO struct {
	scanner *bufio.Scanner
	out     *os.File
	errOut  io.Writer
	prompt  string
	history *history.Store

	lastLine string
}

// NewReplIO constructs a ReplIO. out must be an *os.File so isatty can
// inspect its descriptor; hist may be nil, in which case no history is
// recorded.
func NewReplIO(r io.Reader, out *os.File, errOut io.Writer, prompt string, hist *history.Store) *ReplIO {
	if prompt == "" {
		prompt = DefaultPrompt
	}
	return &ReplIO{scanner: bufio.NewScanner(r), out: out, errOut: errOut, prompt: prompt, history: hist}
}

// IsInteractiveTerminal reports whether f is an actual terminal, using
// the same dual check (IsTerminal || IsCygwinTerminal, for MSYS/Cygwin
// pseudo-terminals on Windows) the teacher's term builtins use.
func IsInteractiveTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (r *ReplIO) ReadLine() (string, bool) {
	if IsInteractiveTerminal(r.out) {
		fmt.Fprint(r.out, r.prompt)
	}
	line, ok := driver.ReadLogicalLine(func() (string, bool) {
		if !r.scanner.Scan() {
			return "", false
		}
		return r.scanner.Text(), true
	})
	r.lastLine = line
	return line, ok
}

func (r *ReplIO) Print(message string) {
	fmt.Fprintln(r.out, message)
	fmt.Fprintln(r.out)
	r.recordHistory(message, false)
}

func (r *ReplIO) PrintError(message string) {
	fmt.Fprintln(r.errOut, message)
	fmt.Fprintln(r.errOut)
	r.recordHistory(message, true)
}

func (r *ReplIO) recordHistory(outcome string, isError bool) {
	if r.history == nil {
		return
	}
	// Best-effort: a write failure here must not interrupt the REPL.
	// The store was already opened successfully (Open reported any
	// setup failure to the caller, who disables history entirely in
	// that case), so Record failures are rare and not worth a second
	// warning per line.
	_ = r.history.Record(r.lastLine, outcome, isError)
}
