package generator

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enzojs/enzo/output"
	"github.com/enzojs/enzo/project"
)

type harness struct {
	fs     afero.Fs
	m      *Mutator
	out    *bytes.Buffer
	errOut *bytes.Buffer
}

func newHarnessFs(t *testing.T, fs afero.Fs, name string, verbose bool, opts ...Option) *harness {
	t.Helper()
	var out, errOut bytes.Buffer
	mode := project.Normal
	if verbose {
		mode = project.Verbose
	}
	reporter := output.NewReporter(&out, &errOut, verbose)
	return &harness{
		fs:     fs,
		m:      NewMutator(fs, project.New(name, mode), reporter, opts...),
		out:    &out,
		errOut: &errOut,
	}
}

// newHarness uses an in-memory filesystem.
func newHarness(t *testing.T, name string, opts ...Option) *harness {
	return newHarnessFs(t, afero.NewMemMapFs(), name, false, opts...)
}

// newDiskHarness uses a real directory, for cases that depend on
// non-recursive mkdir or missing parent directories.
func newDiskHarness(t *testing.T, name string, verbose bool) *harness {
	fs := afero.NewBasePathFs(afero.NewOsFs(), t.TempDir())
	return newHarnessFs(t, fs, name, verbose)
}

func (h *harness) read(t *testing.T, path string) string {
	t.Helper()
	data, err := afero.ReadFile(h.fs, path)
	require.NoError(t, err)
	return string(data)
}

func TestNewMutator_ContextLiteral(t *testing.T) {
	var out bytes.Buffer
	m := NewMutator(afero.NewMemMapFs(), project.Context{Name: "app"}, output.NewReporter(&out, &out, false))

	require.NotNil(t, m.Context().Deps)
	m.Context().Deps.Add(project.Dev, "jest")
	assert.Equal(t, []string{"jest"}, m.Context().Deps.List(project.Dev))
}

func TestWriteFile_Create(t *testing.T) {
	h := newHarness(t, "")

	res := h.m.WriteFile("test.js", "const a = 1", "")

	require.True(t, res.OK())
	assert.Equal(t, output.Create, res.Op)
	assert.Equal(t, "test.js", res.Path)
	assert.Equal(t, "const a = 1", h.read(t, "./test.js"))
	assert.Equal(t, "create test.js\n", h.out.String())
	assert.Empty(t, h.errOut.String())
}

func TestWriteFile_Mutate(t *testing.T) {
	h := newHarness(t, "")
	require.NoError(t, afero.WriteFile(h.fs, "test.js", []byte("old"), 0o644))

	res := h.m.WriteFile("test.js", "new", "")

	require.True(t, res.OK())
	assert.Equal(t, output.Mutate, res.Op)
	assert.Equal(t, "new", h.read(t, "test.js"))
	assert.Equal(t, "mutate test.js\n", h.out.String())
}

func TestWriteFile_RoundTrip(t *testing.T) {
	contents := []string{"x", "line one\nline two\n", "\n\n", "unicode ✨ content"}
	for _, content := range contents {
		h := newHarness(t, "app")
		require.True(t, h.m.WriteFile("src/file.js", content, "").OK())
		assert.Equal(t, content, h.read(t, "./app/src/file.js"))
	}
}

func TestWriteFile_ProjectName(t *testing.T) {
	h := newHarness(t, "someName")

	res := h.m.WriteFile("test.js", "", "")

	require.True(t, res.OK())
	exists, err := afero.Exists(h.fs, "someName/test.js")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, "create someName/test.js\n", h.out.String())
}

func TestWriteFile_CustomMessage(t *testing.T) {
	h := newHarness(t, "")

	res := h.m.WriteFile("test.js", "x", "wrote the test file")

	require.True(t, res.OK())
	assert.Equal(t, "wrote the test file\n", h.out.String())
}

func TestWriteFile_NoPath(t *testing.T) {
	h := newHarness(t, "someName")

	res := h.m.WriteFile("", "content", "")

	assert.ErrorIs(t, res.Err, ErrPathRequired)
	assert.Equal(t, "No filePath specified.\n", h.errOut.String())
	assert.Empty(t, h.out.String())
}

func TestWriteFile_IOFailure(t *testing.T) {
	t.Run("normal mode", func(t *testing.T) {
		h := newDiskHarness(t, "", false)

		res := h.m.WriteFile("missing/test.js", "x", "")

		assert.ErrorIs(t, res.Err, ErrIO)
		assert.Equal(t, "Couldn't create file ./missing/test.js\n", h.errOut.String())
	})

	t.Run("verbose mode", func(t *testing.T) {
		h := newDiskHarness(t, "", true)

		res := h.m.WriteFile("missing/test.js", "x", "")

		assert.ErrorIs(t, res.Err, ErrIO)
		assert.Contains(t, h.errOut.String(), "Couldn't create file ./missing/test.js. ERROR: ")
	})
}

func TestWriteFile_KeepStrategy(t *testing.T) {
	h := newHarness(t, "", WithConflictStrategy(KeepStrategy{}))
	require.NoError(t, afero.WriteFile(h.fs, "test.js", []byte("old"), 0o644))

	res := h.m.WriteFile("test.js", "new", "")
	fresh := h.m.WriteFile("other.js", "new", "")

	assert.Equal(t, output.Skip, res.Op)
	assert.True(t, res.OK())
	assert.Equal(t, "old", h.read(t, "test.js"))
	assert.Equal(t, output.Create, fresh.Op)
	assert.Equal(t, "skip   test.js\ncreate other.js\n", h.out.String())
}

func TestWriteJSON(t *testing.T) {
	h := newHarness(t, "")

	res := h.m.WriteJSON("config.json", map[string]any{"port": 3000})

	require.True(t, res.OK())
	assert.Equal(t, "{\n  \"port\": 3000\n}\n", h.read(t, "config.json"))

	bad := h.m.WriteJSON("bad.json", make(chan int))
	assert.ErrorIs(t, bad.Err, ErrInvalidArgument)
}

func TestWriteJSON_FailureShowsResolvedPath(t *testing.T) {
	h := newDiskHarness(t, "app", true)

	res := h.m.WriteJSON("bad.json", make(chan int))

	assert.ErrorIs(t, res.Err, ErrInvalidArgument)
	assert.Equal(t, "app/bad.json", res.Path)
	assert.Contains(t, h.errOut.String(), "Couldn't create file ./app/bad.json")

	empty := h.m.WriteJSON("", make(chan int))
	assert.ErrorIs(t, empty.Err, ErrPathRequired)
}

func TestMkdir(t *testing.T) {
	h := newDiskHarness(t, "", false)

	res := h.m.Mkdir("test", "")

	require.True(t, res.OK())
	ok, err := afero.DirExists(h.fs, "test")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "create test\n", h.out.String())
}

func TestMkdir_NoPathNoProject(t *testing.T) {
	h := newHarness(t, "")

	res := h.m.Mkdir("", "")

	assert.ErrorIs(t, res.Err, ErrInvalidArgument)
	assert.Equal(t, "Unable to create folder\n", h.errOut.String())
	entries, err := afero.ReadDir(h.fs, "/")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMkdir_ProjectRoot(t *testing.T) {
	h := newDiskHarness(t, "someName", false)

	res := h.m.Mkdir("", "")

	require.True(t, res.OK())
	ok, _ := afero.DirExists(h.fs, "someName")
	assert.True(t, ok)
	assert.Equal(t, "create someName\n", h.out.String())
}

func TestMkdir_NotRecursive(t *testing.T) {
	h := newDiskHarness(t, "", false)

	res := h.m.Mkdir("a/b", "")

	assert.ErrorIs(t, res.Err, ErrIO)
	assert.Equal(t, "Error making directory ./a/b\n", h.errOut.String())
	ok, _ := afero.DirExists(h.fs, "a")
	assert.False(t, ok)
}

func TestMkdir_AlreadyExists(t *testing.T) {
	h := newHarness(t, "")
	require.NoError(t, h.fs.Mkdir("test", 0o755))

	res := h.m.Mkdir("test", "")

	assert.ErrorIs(t, res.Err, ErrIO)
	assert.Equal(t, "Error making directory ./test\n", h.errOut.String())
}

func TestCreateFolders(t *testing.T) {
	h := newDiskHarness(t, "", false)

	results := h.m.CreateFolders("dist", "src", "src/api")

	require.Len(t, results, 3)
	assert.Empty(t, Failed(results))
	for _, dir := range []string{"dist", "src", "src/api"} {
		ok, _ := afero.DirExists(h.fs, dir)
		assert.True(t, ok, dir)
	}
}

func TestEnsureScriptsFolder(t *testing.T) {
	h := newDiskHarness(t, "app", false)
	require.True(t, h.m.Mkdir("", "").OK())

	first := h.m.EnsureScriptsFolder()
	second := h.m.EnsureScriptsFolder()

	require.Len(t, first, 2)
	assert.Empty(t, Failed(first))
	assert.Equal(t, output.Create, first[0].Op)
	require.Len(t, second, 2)
	assert.Empty(t, Failed(second))
	assert.Equal(t, output.Skip, second[0].Op)
	assert.Equal(t, "app/scripts/templates", second[1].Path)
	assert.Contains(t, h.out.String(), "skip   app/scripts")
	ok, _ := afero.DirExists(h.fs, "app/scripts/templates")
	assert.True(t, ok)
}

func TestAppendFile(t *testing.T) {
	h := newHarness(t, "")
	require.NoError(t, afero.WriteFile(h.fs, "test.js", []byte("a\n"), 0o644))

	res := h.m.AppendFile("test.js", "b\n")

	require.True(t, res.OK())
	assert.Equal(t, output.Append, res.Op)
	assert.Equal(t, "a\nb\n", h.read(t, "test.js"))
	assert.Equal(t, "append test.js\n", h.out.String())
}

func TestAppendFile_CreatesFile(t *testing.T) {
	h := newHarness(t, "app")

	res := h.m.AppendFile(".env", "PORT=3000\n")

	require.True(t, res.OK())
	assert.Equal(t, "PORT=3000\n", h.read(t, "app/.env"))
}

func TestAppendFile_MissingArguments(t *testing.T) {
	h := newHarness(t, "")

	noFile := h.m.AppendFile("", "x")
	noContent := h.m.AppendFile("test.js", "")

	assert.ErrorIs(t, noFile.Err, ErrMissingArgument)
	assert.ErrorIs(t, noContent.Err, ErrMissingArgument)
	assert.Equal(t, "File not provided.\nNo string to append provided.\n", h.errOut.String())
	exists, _ := afero.Exists(h.fs, "test.js")
	assert.False(t, exists)
}

func TestAppendFile_IOFailure(t *testing.T) {
	h := newDiskHarness(t, "", false)

	res := h.m.AppendFile("missing/test.js", "x")

	assert.ErrorIs(t, res.Err, ErrIO)
	assert.Equal(t, "Failed to append ./missing/test.js\n", h.errOut.String())
}

func TestRename(t *testing.T) {
	h := newHarness(t, "")
	require.NoError(t, afero.WriteFile(h.fs, "a.js", []byte("x"), 0o644))

	res := h.m.Rename("./a.js", "./b.js")

	require.True(t, res.OK())
	assert.Equal(t, output.Move, res.Op)
	assert.Equal(t, "b.js", res.Path)
	assert.Equal(t, "x", h.read(t, "b.js"))
	assert.Equal(t, "move   a.js into b.js\n", h.out.String())
}

func TestRename_MissingArguments(t *testing.T) {
	h := newHarness(t, "")
	require.NoError(t, afero.WriteFile(h.fs, "a.js", []byte("x"), 0o644))

	none := h.m.Rename("", "")
	one := h.m.Rename("a.js", "")

	assert.ErrorIs(t, none.Err, ErrMissingArgument)
	assert.Contains(t, none.Err.Error(), "First parameter oldName is undefined")
	assert.ErrorIs(t, one.Err, ErrMissingArgument)
	assert.Contains(t, one.Err.Error(), "Second parameter newName is undefined")

	assert.Equal(t, "x", h.read(t, "a.js"))
	assert.Empty(t, h.out.String())
}

func TestRename_Failure(t *testing.T) {
	h := newHarness(t, "")

	res := h.m.Rename("./nope.js", "./b.js")

	assert.ErrorIs(t, res.Err, ErrIO)
	assert.Equal(t, "Error renaming ./nope.js\n", h.errOut.String())
}

func TestMoveAllFilesInDir_LeavesReservedAndKeepsSource(t *testing.T) {
	h := newDiskHarness(t, "", false)
	require.NoError(t, h.fs.MkdirAll("src/components", 0o755))
	require.NoError(t, h.fs.Mkdir("dst", 0o755))
	require.NoError(t, afero.WriteFile(h.fs, "src/a.js", []byte("a"), 0o644))

	results := h.m.MoveAllFilesInDir("src", "dst")

	require.Len(t, results, 2)
	assert.True(t, results[0].OK())
	assert.Equal(t, output.Delete, results[1].Op)
	assert.ErrorIs(t, results[1].Err, ErrIO)

	assert.Equal(t, "a", h.read(t, "dst/a.js"))
	ok, _ := afero.DirExists(h.fs, "src/components")
	assert.True(t, ok)
	assert.Equal(t, "move   src/a.js into dst/a.js\n", h.out.String())
	assert.Equal(t, "Failed to delete src\n", h.errOut.String())
}

func TestMoveAllFilesInDir_RemovesEmptySource(t *testing.T) {
	h := newDiskHarness(t, "", false)
	require.NoError(t, h.fs.MkdirAll("src/App", 0o755))
	require.NoError(t, h.fs.Mkdir("dst", 0o755))
	require.NoError(t, afero.WriteFile(h.fs, "src/a.js", []byte("a"), 0o644))
	require.NoError(t, afero.WriteFile(h.fs, "src/App/App.js", []byte("app"), 0o644))

	results := h.m.MoveAllFilesInDir("./src", "./dst")

	assert.Empty(t, Failed(results))
	assert.Equal(t, "app", h.read(t, "dst/App/App.js"))
	exists, _ := afero.Exists(h.fs, "src")
	assert.False(t, exists)
	assert.Equal(t,
		"move   src/App into dst/App\nmove   src/a.js into dst/a.js\ndelete src\n",
		h.out.String())
}

func TestMoveAllFilesInDir_AllReserved(t *testing.T) {
	h := newDiskHarness(t, "", false)
	for _, dir := range []string{"actions", "components", "store", "api"} {
		require.NoError(t, h.fs.MkdirAll("src/"+dir, 0o755))
	}
	require.NoError(t, h.fs.Mkdir("dst", 0o755))

	results := h.m.MoveAllFilesInDir("src", "dst")

	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, ErrIO)
	entries, err := afero.ReadDir(h.fs, "dst")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMoveAllFilesInDir_MissingArguments(t *testing.T) {
	h := newHarness(t, "")

	noSrc := h.m.MoveAllFilesInDir("", "dst")
	noDst := h.m.MoveAllFilesInDir("src", "")

	require.Len(t, noSrc, 1)
	require.Len(t, noDst, 1)
	assert.ErrorIs(t, noSrc[0].Err, ErrMissingArgument)
	assert.ErrorIs(t, noDst[0].Err, ErrMissingArgument)
	assert.Equal(t,
		"No directory to search specified.\nNo directory to move files to specified.\n",
		h.errOut.String())
}

func TestMoveAllFilesInDir_UnreadableSource(t *testing.T) {
	h := newHarness(t, "")

	results := h.m.MoveAllFilesInDir("nope", "dst")

	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, ErrIO)
	assert.Equal(t, "Failed to read directory\n", h.errOut.String())
	assert.Empty(t, h.out.String())
}

func TestMutator_DebugLogging(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	h := newHarness(t, "app", WithLogger(logrus.NewEntry(logger)))

	h.m.WriteFile("index.js", "x", "")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "writing file", entry.Message)
	assert.Equal(t, "./app/index.js", entry.Data["path"])
	assert.Equal(t, "create", entry.Data["op"])
}

func TestMutator_Accessors(t *testing.T) {
	fs := afero.NewMemMapFs()
	pctx := project.New("app", project.Normal)
	m := NewMutator(fs, pctx, output.NewReporter(&bytes.Buffer{}, &bytes.Buffer{}, false))

	assert.Equal(t, "app", m.Context().Name)
	assert.Same(t, fs, m.Fs())
}
