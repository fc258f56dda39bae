// Package driver ties the parser and evaluator together into the
// line-oriented interpreter loop described in spec.md §4.4: parse one
// logical line, dispatch on what it parsed to, and resolve
// #include directives by recursing into a sub-driver over the
// referenced file.
package driver

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/lambdalang/lci/internal/ast"
	"github.com/lambdalang/lci/internal/evaluator"
	"github.com/lambdalang/lci/internal/parser"
)

// IncludeExtension is appended to an #include base-name to form the
// file path that is opened.
const IncludeExtension = ".lambda"

// IO is the abstract input/output contract spec.md §1 scopes out of
// this package: read one logical line, print a result, print a
// diagnostic, and (implicitly, via the `ok` return of ReadLine) signal
// exhaustion. internal/host supplies stream and REPL realisations.
type IO interface {
	// ReadLine returns the next logical line and true, or ("", false)
	// once input is exhausted.
	ReadLine() (string, bool)
	Print(message string)
	PrintError(message string)
}

// Driver owns one binding table and include-set for the duration of a
// single run. Per spec.md §5 it is single-threaded: no other component
// retains a reference to either after Run returns.
type Driver struct {
	Bindings    ast.BindingTable
	Includes    map[string]bool
	SearchPaths []string
}

// New creates a Driver seeded with copies of the given bindings and
// include-set (either may be nil). SearchPaths are additional
// directories, tried in order after the current directory, when
// resolving an #include base-name to a file (SPEC_FULL.md DOMAIN
// STACK item 2; absent any configuration this is simply empty and
// every include resolves relative to the current directory, matching
// spec.md §4.4 exactly).
func New(bindings ast.BindingTable, includes map[string]bool, searchPaths []string) *Driver {
	d := &Driver{
		Bindings:    ast.BindingTable{},
		Includes:    map[string]bool{},
		SearchPaths: searchPaths,
	}
	for name, expr := range bindings {
		d.Bindings[name] = expr.Clone()
	}
	for name := range includes {
		d.Includes[name] = true
	}
	return d
}

// Run reads lines from io until exhausted, dispatching each parsed
// Line, and returns a deep copy of the resulting binding table.
func (d *Driver) Run(io IO) ast.BindingTable {
	for {
		source, ok := io.ReadLine()
		if !ok {
			break
		}

		line, residue, ok := parser.ParseLine(source)
		if !ok {
			io.PrintError(diagUnableToParse(residue))
			continue
		}

		d.dispatch(line, io)
	}

	return d.Bindings.Clone()
}

// Include resolves a single #include base-name against d, exactly as
// if an "#include name" line had been parsed from the input. It is the
// hook pkg/cli uses to translate command-line positional arguments
// into includes (spec.md §6) without constructing synthetic source
// text just to round-trip it through the parser.
func (d *Driver) Include(name string, io IO) {
	d.resolveInclude(&ast.Include{Name: name}, io)
}

func (d *Driver) dispatch(line ast.Line, io IO) {
	switch node := line.(type) {
	case *ast.Binding:
		d.installBinding(node, io)
	case *ast.Include:
		d.resolveInclude(node, io)
	case *ast.Comment:
		// no-op
	case ast.Expression:
		d.evaluateExpression(node, io)
	}
}

func (d *Driver) installBinding(b *ast.Binding, io IO) {
	if _, exists := d.Bindings[b.From.Ident]; exists {
		io.PrintError(diagShadowing(b.From.Ident))
	}
	d.Bindings[b.From.Ident] = b.To.Clone()
}

func (d *Driver) evaluateExpression(expr ast.Expression, io IO) {
	result, err := evaluator.Simplify(expr, d.Bindings)
	if err != nil {
		io.PrintError(diagEvaluationError(err.Error()))
		return
	}
	io.Print(result.String())
}

func (d *Driver) resolveInclude(inc *ast.Include, io IO) {
	if d.Includes[inc.Name] {
		return // include-once: silent no-op
	}

	path, found := d.findIncludeFile(inc.Name)
	if !found {
		io.PrintError(diagIncludeOpenFailed(inc.Name))
		return
	}

	file, err := os.Open(path)
	if err != nil {
		io.PrintError(diagIncludeOpenFailed(inc.Name))
		return
	}
	defer file.Close()

	sub := New(nil, d.Includes, d.SearchPaths)
	subIO := &forwardingFileIO{scanner: bufio.NewScanner(file), parent: io}
	merged := sub.Run(subIO)

	for name, expr := range merged {
		if _, exists := d.Bindings[name]; exists {
			io.PrintError(diagIncludeShadowing(name, inc.Name))
		}
		d.Bindings[name] = expr.Clone()
	}

	d.Includes = sub.Includes
	d.Includes[inc.Name] = true
}

func (d *Driver) findIncludeFile(basename string) (string, bool) {
	filename := basename + IncludeExtension
	dirs := append([]string{"."}, d.SearchPaths...)
	for _, dir := range dirs {
		candidate := filepath.Join(dir, filename)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}
	return "", false
}

// forwardingFileIO reads logical lines from a file (applying the same
// backslash-continuation rule as any other input source) while
// forwarding diagnostics and results to the including driver's IO, so
// an included file's output interleaves with its includer's exactly
// where the #include line occurred.
type forwardingFileIO struct {
	scanner *bufio.Scanner
	parent  IO
}

func (f *forwardingFileIO) ReadLine() (string, bool) {
	return ReadLogicalLine(func() (string, bool) {
		if !f.scanner.Scan() {
			return "", false
		}
		return f.scanner.Text(), true
	})
}

func (f *forwardingFileIO) Print(message string)      { f.parent.Print(message) }
func (f *forwardingFileIO) PrintError(message string) { f.parent.PrintError(message) }
