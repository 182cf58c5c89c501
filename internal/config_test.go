package internal_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Marvin1003/open-wc/internal"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "loader.config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := internal.LoadConfig(filepath.Join("testdata", "config", "loader.config.yaml"))
	require.NoError(t, err)

	require.Equal(t, "/assets/", cfg.PublicPath, "public path gets a trailing slash")
	require.Equal(t, ".", cfg.Root)

	entries := cfg.EntriesConfig()
	require.Equal(t, internal.EntriesTypeModule, entries.Type)
	require.Equal(t, []string{"dist/app.js"}, entries.Files)
	require.NotNil(t, entries.PolyfillDynamicImport)
	require.False(t, *entries.PolyfillDynamicImport)

	legacy := cfg.LegacyEntriesConfig()
	require.NotNil(t, legacy)
	require.Equal(t, internal.EntriesTypeSystem, legacy.Type)
	require.Equal(t, []string{"dist/legacy/app.js"}, legacy.Files)

	polyfills := cfg.SelectedPolyfills()
	require.Len(t, polyfills, 3)
	require.Equal(t, "coreJs", polyfills[0].Name)
	require.Equal(t, "node_modules/core-js-bundle/minified.js", polyfills[0].Source)
	require.Equal(t, "fetch", polyfills[1].Name)
	require.Equal(t, "myFeature", polyfills[2].Name)
	require.True(t, polyfills[2].Minify)

	require.True(t, cfg.PolyfillsConfig().Hash)
	require.Len(t, cfg.Assets, 1)
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
entries:
  type: script
  files:
    - app.js
`)
	cfg, err := internal.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, ".", cfg.Root)
	require.Empty(t, cfg.PublicPath)
	require.Nil(t, cfg.LegacyEntriesConfig())
	require.Nil(t, cfg.SelectedPolyfills(), "absent polyfills resolve to nil")
	require.False(t, cfg.PolyfillsConfig().Hash)
}

func TestLoadConfigEmptyPolyfills(t *testing.T) {
	path := writeConfig(t, `
entries:
  type: module
  files:
    - app.js
polyfills:
  hash: false
`)
	cfg, err := internal.LoadConfig(path)
	require.NoError(t, err)

	polyfills := cfg.SelectedPolyfills()
	require.NotNil(t, polyfills, "present but empty polyfills resolve to an empty slice")
	require.Empty(t, polyfills)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "unknown field",
			content: `
entries:
  type: module
  files:
    - app.js
minify: true
`,
			wantErr: "invalid YAML config",
		},
		{
			name: "unknown entries type",
			content: `
entries:
  type: umd
  files:
    - app.js
`,
			wantErr: `unsupported entries type: "umd"`,
		},
		{
			name: "missing files",
			content: `
entries:
  type: module
`,
			wantErr: "entries: at least one file is required",
		},
		{
			name: "legacy entries validated too",
			content: `
entries:
  type: module
  files:
    - app.js
legacyEntries:
  type: system
`,
			wantErr: "legacyEntries: at least one file is required",
		},
		{
			name: "unknown builtin polyfill",
			content: `
entries:
  type: module
  files:
    - app.js
polyfills:
  builtin:
    - jetpack
`,
			wantErr: `unknown builtin polyfill "jetpack"`,
		},
		{
			name: "custom polyfill without name",
			content: `
entries:
  type: module
  files:
    - app.js
polyfills:
  custom:
    - test: "!('x' in window)"
      source: src/x.js
`,
			wantErr: "custom polyfill 0 needs a name",
		},
		{
			name: "custom polyfill without source",
			content: `
entries:
  type: module
  files:
    - app.js
polyfills:
  custom:
    - name: myFeature
      test: "!('x' in window)"
`,
			wantErr: `custom polyfill "myFeature" needs a source`,
		},
		{
			name: "asset mapping without dest",
			content: `
entries:
  type: module
  files:
    - app.js
assets:
  - src: static
`,
			wantErr: "mapping 0 needs both src and dest",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := internal.LoadConfig(writeConfig(t, tt.content))
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := internal.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorContains(t, err, "read config file")
}
