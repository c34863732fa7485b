package generator

import (
	"encoding/json"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enzojs/enzo/manifest"
	"github.com/enzojs/enzo/output"
)

func readScripts(t *testing.T, h *harness, path string) map[string]string {
	t.Helper()
	var pkg struct {
		Scripts map[string]string `json:"scripts"`
	}
	require.NoError(t, json.Unmarshal([]byte(h.read(t, path)), &pkg))
	return pkg.Scripts
}

func TestAddScript(t *testing.T) {
	h := newHarness(t, "")
	require.NoError(t, afero.WriteFile(h.fs, "package.json", []byte(`{"scripts":{}}`), 0o644))

	res := h.m.AddScript("test", "node x")

	require.NoError(t, res.Err)
	assert.Equal(t, map[string]string{"test": "node x"}, readScripts(t, h, "package.json"))
	assert.Contains(t, h.out.String(), "test script into package.json")
	assert.Equal(t, "{\n  \"scripts\": {\n    \"test\": \"node x\"\n  }\n}\n", h.read(t, "package.json"))
}

func TestAddScript_ProjectManifest(t *testing.T) {
	h := newHarness(t, "someName")
	require.NoError(t, afero.WriteFile(h.fs, "someName/package.json", []byte(`{"name":"someName"}`), 0o644))

	res := h.m.AddScript("start", "node server/server.js")

	require.NoError(t, res.Err)
	assert.Equal(t, "someName/package.json", res.Path)
	assert.Equal(t, "node server/server.js", readScripts(t, h, "someName/package.json")["start"])
}

func TestAddScript_PreservesOtherKeys(t *testing.T) {
	h := newHarness(t, "")
	original := `{"name":"app","private":true,"scripts":{"build":"webpack"},"jest":{"verbose":true}}`
	require.NoError(t, afero.WriteFile(h.fs, "package.json", []byte(original), 0o644))

	require.NoError(t, h.m.AddScript("test", "jest").Err)

	var pkg map[string]any
	require.NoError(t, json.Unmarshal([]byte(h.read(t, "package.json")), &pkg))
	assert.Equal(t, "app", pkg["name"])
	assert.Equal(t, true, pkg["private"])
	assert.Equal(t, map[string]any{"verbose": true}, pkg["jest"])
	assert.Equal(t, map[string]any{"build": "webpack", "test": "jest"}, pkg["scripts"])
}

func TestAddScript_Overwrite(t *testing.T) {
	t.Run("different body warns", func(t *testing.T) {
		h := newHarness(t, "")
		require.NoError(t, afero.WriteFile(h.fs, "package.json", []byte(`{"scripts":{"test":"jest"}}`), 0o644))

		require.NoError(t, h.m.AddScript("test", "mocha").Err)

		assert.Equal(t, "mocha", readScripts(t, h, "package.json")["test"])
		assert.Contains(t, h.errOut.String(), `script "test" already exists`)
	})

	t.Run("same body is silent", func(t *testing.T) {
		h := newHarness(t, "")
		require.NoError(t, afero.WriteFile(h.fs, "package.json", []byte(`{"scripts":{"test":"jest"}}`), 0o644))

		require.NoError(t, h.m.AddScript("test", "jest").Err)

		assert.Empty(t, h.errOut.String())
	})
}

func TestAddScript_MissingManifest(t *testing.T) {
	h := newHarness(t, "")

	res := h.m.AddScript("test", "node x")

	assert.ErrorIs(t, res.Err, ErrManifestMissing)
	assert.Equal(t, "Couldn't read package.json\n", h.errOut.String())
	exists, _ := afero.Exists(h.fs, "package.json")
	assert.False(t, exists)
}

func TestAddScript_InvalidManifest(t *testing.T) {
	h := newHarness(t, "")
	require.NoError(t, afero.WriteFile(h.fs, "package.json", []byte(`{"scripts":`), 0o644))

	res := h.m.AddScript("test", "node x")

	assert.ErrorIs(t, res.Err, ErrManifestParse)
	assert.Equal(t, `{"scripts":`, h.read(t, "package.json"))
}

func TestAddScript_NoName(t *testing.T) {
	h := newHarness(t, "")

	res := h.m.AddScript("", "node x")

	assert.ErrorIs(t, res.Err, ErrMissingArgument)
}

func TestAddScript_NumericNameWithoutScripts(t *testing.T) {
	h := newHarness(t, "")
	require.NoError(t, afero.WriteFile(h.fs, "package.json", []byte(`{}`), 0o644))

	require.NoError(t, h.m.AddScript("1", "node x").Err)
	require.NoError(t, h.m.AddScript("2", "node y").Err)

	assert.Equal(t, map[string]string{"1": "node x", "2": "node y"}, readScripts(t, h, "package.json"))
}

func TestScriptTaken(t *testing.T) {
	h := newHarness(t, "")

	_, err := h.m.ScriptTaken("test")
	assert.ErrorIs(t, err, ErrManifestMissing)

	require.NoError(t, afero.WriteFile(h.fs, "package.json", []byte(`{"scripts":{"test":"jest"}}`), 0o644))

	taken, err := h.m.ScriptTaken("test")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = h.m.ScriptTaken("build")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestPatchManifest_PatchError(t *testing.T) {
	h := newHarness(t, "")
	require.NoError(t, afero.WriteFile(h.fs, "package.json", []byte(`{"version":"1.0.0"}`), 0o644))

	res := h.m.PatchManifest(output.Mutate, "version", func(m *manifest.Manifest) error {
		return m.SetVersion("not-a-version")
	})

	assert.ErrorIs(t, res.Err, ErrInvalidArgument)
	assert.ErrorIs(t, res.Err, manifest.ErrVersion)
	assert.Equal(t, `{"version":"1.0.0"}`, h.read(t, "package.json"))
}
