package generator

import (
	"fmt"

	"github.com/sahilm/fuzzy"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/enzojs/enzo/output"
	"github.com/enzojs/enzo/project"
)

// Locator picks the index at which Insert adds its line.
type Locator interface {
	locate(doc *Document) int
}

type lineLocator int

func (l lineLocator) locate(*Document) int { return int(l) }

type textLocator string

func (l textLocator) locate(doc *Document) int {
	if i := doc.Index(string(l)); i >= 0 {
		return i + 1
	}
	return doc.Len() + 1
}

// AtLine inserts at a 0-based line index.
func AtLine(n int) Locator { return lineLocator(n) }

// After inserts directly below the first line equal to text, or at the
// end of the file when no line matches.
func After(text string) Locator { return textLocator(text) }

// Insert adds content as a new line in the file at path. A nil loc asks
// the Mutator's Chooser for the line to insert below.
//
// path is used as given. Callers wanting project-relative behaviour pass
// a path from project.Context.Resolve.
func (m *Mutator) Insert(path, content string, loc Locator) Result {
	if path == "" {
		return m.reject(output.Insert, ErrMissingArgument, "No file specified.")
	}
	if content == "" {
		return m.reject(output.Insert, ErrMissingArgument, "No string to insert specified.")
	}
	if loc == nil && m.chooser == nil {
		return m.reject(output.Insert, ErrMissingArgument, "No line to insert after specified.")
	}
	pretty := project.PrettyPath(path)
	context := "Failed to insert into " + path

	data, err := afero.ReadFile(m.fs, path)
	if err != nil {
		return m.fail(output.Insert, pretty, context, ioErr(err))
	}
	doc := ParseDocument(string(data))

	if loc == nil {
		choice, err := m.chooser(doc.Lines())
		if err != nil {
			return m.fail(output.Insert, pretty, context, err)
		}
		loc = After(choice)
	}

	if t, ok := loc.(textLocator); ok && doc.Index(string(t)) < 0 {
		m.hintClosest(doc, string(t))
	}

	index := loc.locate(doc)
	if err := doc.InsertAt(index, content); err != nil {
		return m.fail(output.Insert, pretty, context, err)
	}

	m.log.WithFields(logrus.Fields{"op": "insert", "path": path, "line": index}).Debug("splicing line")
	if err := afero.WriteFile(m.fs, path, []byte(doc.String()), fileMode); err != nil {
		return m.fail(output.Insert, pretty, context, ioErr(err))
	}
	return m.done(output.Insert, pretty, "")
}

// hintClosest tells the user which line they probably meant when After
// matched nothing.
func (m *Mutator) hintClosest(doc *Document, text string) {
	matches := fuzzy.Find(text, doc.Lines())
	if len(matches) == 0 {
		m.report.Debug(fmt.Sprintf("%q not found, appending to end of file", text))
		return
	}
	m.report.Debug(fmt.Sprintf("%q not found, appending to end of file (closest line: %q)", text, matches[0].Str))
}
