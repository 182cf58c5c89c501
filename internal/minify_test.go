package internal_test

import (
	"strings"
	"testing"

	"github.com/Marvin1003/open-wc/internal"
	"github.com/stretchr/testify/require"
)

func TestMinify(t *testing.T) {
	source := `(function() {
  var greeting = 'hello';
  console.log(greeting, 'world');
})();`

	got, err := internal.Minify(source)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	require.Less(t, len(got), len(source))
	require.NotContains(t, got, "\n  ")
	require.Contains(t, got, "console.log")
}

func TestMinifyKeepsNativeDynamicImport(t *testing.T) {
	source := "(function() {function loadEntries() {import('app.js');}loadEntries();})();"
	got, err := internal.Minify(source)
	require.NoError(t, err)
	require.Contains(t, got, "import(")
}

func TestMinifyInvalidSource(t *testing.T) {
	_, err := internal.Minify("function {")
	require.Error(t, err)
	require.Contains(t, err.Error(), "minify loader script")
}

func TestMinifyKeepsStringContents(t *testing.T) {
	source := "var test = !('fetch' in window);"
	got, err := internal.Minify(source)
	require.NoError(t, err)
	require.Contains(t, got, "fetch")
	require.False(t, strings.Contains(got, "  "))
}
