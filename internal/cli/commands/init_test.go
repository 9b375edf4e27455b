package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/js2py/internal/cli/testutil"
	"github.com/leapstack-labs/js2py/internal/config"
	itestutil "github.com/leapstack-labs/js2py/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newTestCommandContext(t *testing.T) (*CommandContext, *testutil.TestRenderer) {
	t.Helper()
	tr := testutil.NewTestRendererMarkdown()
	return &CommandContext{
		Cfg:      config.Default(),
		Logger:   itestutil.NewTestLogger(t),
		Renderer: tr.Renderer,
	}, tr
}

func TestRenderStarterConfig(t *testing.T) {
	data, err := renderStarterConfig()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# js2py configuration."))

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(data, &doc))
	assert.Equal(t, config.DefaultIndent, doc["indent"])
	assert.Equal(t, config.DefaultSuffix, doc["suffix"])
	assert.Equal(t, config.DefaultStateFile, doc["state_path"])

	serve, ok := doc["serve"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "10s", serve["read_timeout"])
	assert.Equal(t, config.DefaultAddr, serve["addr"])
}

func TestRunInit(t *testing.T) {
	c, tr := newTestCommandContext(t)
	dir := filepath.Join(t.TempDir(), "project")

	require.NoError(t, runInit(c, dir, false))
	assert.FileExists(t, filepath.Join(dir, config.ConfigFileName))
	testutil.AssertContains(t, tr.Output(), "js2py project initialized!")
	testutil.AssertContains(t, tr.Output(), "js2py build")

	err := runInit(c, dir, false)
	require.Error(t, err)
	assert.Equal(t, "js2py.yaml already exists. Use --force to overwrite", err.Error())

	path := filepath.Join(dir, config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("indent: 2\n"), 0o600))
	require.NoError(t, runInit(c, dir, true))

	cfg, err := config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultIndent, cfg.Indent)
}
