package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Class labels what a file operation did to the filesystem.
type Class int

const (
	Create Class = iota
	Mutate
	Delete
	Move
	Append
	Insert
	Skip
)

var classNames = [...]string{
	Create: "create",
	Mutate: "mutate",
	Delete: "delete",
	Move:   "move",
	Append: "append",
	Insert: "insert",
	Skip:   "skip",
}

func (c Class) String() string {
	if int(c) < 0 || int(c) >= len(classNames) {
		return fmt.Sprintf("Class(%d)", int(c))
	}
	return classNames[c]
}

// tagWidth keeps the text after the tag aligned across classes.
const tagWidth = 6

var classColors = map[Class]lipgloss.Color{
	Create: lipgloss.Color("green"),
	Mutate: lipgloss.Color("yellow"),
	Delete: lipgloss.Color("red"),
	Move:   lipgloss.Color("yellow"),
	Append: lipgloss.Color("cyan"),
	Insert: lipgloss.Color("cyan"),
	Skip:   lipgloss.Color("240"),
}

// Reporter writes one line per file operation. Status lines go to out,
// failures and warnings to errOut.
//
// Colors are resolved against out, so a Reporter writing to a buffer or
// a pipe prints plain text.
type Reporter struct {
	out     io.Writer
	errOut  io.Writer
	verbose bool

	tags      map[Class]lipgloss.Style
	failStyle lipgloss.Style
	warnStyle lipgloss.Style
}

// NewReporter creates a Reporter. Nil writers default to stdout/stderr.
func NewReporter(out, errOut io.Writer, verbose bool) *Reporter {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}

	renderer := lipgloss.NewRenderer(out)
	tags := make(map[Class]lipgloss.Style, len(classColors))
	for class, color := range classColors {
		tags[class] = renderer.NewStyle().Foreground(color)
	}

	errRenderer := lipgloss.NewRenderer(errOut)
	return &Reporter{
		out:       out,
		errOut:    errOut,
		verbose:   verbose,
		tags:      tags,
		failStyle: errRenderer.NewStyle().Foreground(lipgloss.Color("red")),
		warnStyle: errRenderer.NewStyle().Foreground(lipgloss.Color("yellow")),
	}
}

// Verbose reports whether the reporter shows raw errors.
func (r *Reporter) Verbose() bool {
	return r.verbose
}

// Status prints "<class> <text>", for example "create app/README.md".
// The class is always the first word on the line.
func (r *Reporter) Status(c Class, text string) {
	name := c.String()
	pad := ""
	if len(name) < tagWidth {
		pad = strings.Repeat(" ", tagWidth-len(name))
	}
	fmt.Fprintf(r.out, "%s%s %s\n", r.tags[c].Render(name), pad, text)
}

// Message prints a caller-supplied line in place of a status line.
func (r *Reporter) Message(msg string) {
	fmt.Fprintln(r.out, msg)
}

// Failure reports a failed operation. In normal mode only context is
// shown; in verbose mode the raw error is appended as ". ERROR: <err>".
// Failure never panics or exits.
func (r *Reporter) Failure(context string, err error) {
	msg := context
	if r.verbose && err != nil {
		msg = fmt.Sprintf("%s. ERROR: %v", context, err)
	}
	fmt.Fprintln(r.errOut, r.failStyle.Render(msg))
}

// Warn prints a non-fatal warning.
func (r *Reporter) Warn(msg string) {
	fmt.Fprintln(r.errOut, r.warnStyle.Render(msg))
}

// Debug prints msg only in verbose mode.
func (r *Reporter) Debug(msg string) {
	if r.verbose {
		fmt.Fprintln(r.out, msg)
	}
}
