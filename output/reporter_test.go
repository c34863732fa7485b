package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReporter(verbose bool) (*Reporter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return NewReporter(&out, &errOut, verbose), &out, &errOut
}

func TestStatus_ClassIsFirstWord(t *testing.T) {
	for _, class := range []Class{Create, Mutate, Delete, Move, Append, Insert, Skip} {
		t.Run(class.String(), func(t *testing.T) {
			r, out, _ := newTestReporter(false)
			r.Status(class, "app/index.js")

			fields := strings.Fields(out.String())
			require.Len(t, fields, 2)
			assert.Equal(t, class.String(), fields[0])
			assert.Equal(t, "app/index.js", fields[1])
		})
	}
}

func TestStatus_Alignment(t *testing.T) {
	r, out, _ := newTestReporter(false)
	r.Status(Create, "a")
	r.Status(Move, "old into new")

	assert.Equal(t, "create a\nmove   old into new\n", out.String())
}

func TestFailure(t *testing.T) {
	err := errors.New("Error")

	t.Run("normal mode hides the raw error", func(t *testing.T) {
		r, out, errOut := newTestReporter(false)
		r.Failure("Couldn't create file ./test.js", err)

		assert.Empty(t, out.String())
		assert.Equal(t, "Couldn't create file ./test.js\n", errOut.String())
	})

	t.Run("verbose mode appends it", func(t *testing.T) {
		r, _, errOut := newTestReporter(true)
		r.Failure("Couldn't create file ./test.js", err)

		assert.Equal(t, "Couldn't create file ./test.js. ERROR: Error\n", errOut.String())
	})

	t.Run("nil error", func(t *testing.T) {
		r, _, errOut := newTestReporter(true)
		r.Failure("Unable to create folder", nil)

		assert.Equal(t, "Unable to create folder\n", errOut.String())
	})
}

func TestWarnAndDebug(t *testing.T) {
	r, out, errOut := newTestReporter(false)
	r.Warn("careful")
	r.Debug("hidden")
	assert.Equal(t, "careful\n", errOut.String())
	assert.Empty(t, out.String())

	r, out, _ = newTestReporter(true)
	r.Debug("shown")
	assert.Equal(t, "shown\n", out.String())
	assert.True(t, r.Verbose())
}

func TestClassString_OutOfRange(t *testing.T) {
	assert.Equal(t, "Class(42)", Class(42).String())
}

func TestNewLogger_Levels(t *testing.T) {
	var buf bytes.Buffer

	quiet := NewLogger(&buf, false)
	quiet.Debug("nope")
	assert.Empty(t, buf.String())
	assert.Equal(t, logrus.WarnLevel, quiet.GetLevel())

	loud := NewLogger(&buf, true)
	Component(loud, "mutator").Debug("writing")
	assert.Contains(t, buf.String(), "component=mutator")
	assert.Contains(t, buf.String(), "writing")
}
