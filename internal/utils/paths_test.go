package utils_test

import (
	"testing"

	"github.com/Marvin1003/open-wc/internal/utils"
	"github.com/stretchr/testify/require"
)

func TestCleanImportPath(t *testing.T) {
	cases := []struct {
		name       string
		path       string
		publicPath string
		want       string
	}{
		{"no public path passes through", "app.js", "", "app.js"},
		{"relative path passes through", "./app.js", "", "./app.js"},
		{"public path prefixes bare path", "app.js", "/assets/", "/assets/app.js"},
		{"public path without trailing slash", "app.js", "/assets", "/assets/app.js"},
		{"relative prefix replaced by public path", "./app.js", "/assets/", "/assets/app.js"},
		{"leading slash collapsed under public path", "/app.js", "https://cdn.example.com/static/", "https://cdn.example.com/static/app.js"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, utils.CleanImportPath(tc.path, tc.publicPath))
		})
	}
}

func TestContentHash(t *testing.T) {
	first := utils.ContentHash([]byte("var a = 1;"))
	second := utils.ContentHash([]byte("var a = 1;"))
	require.Equal(t, first, second)
	require.Len(t, first, 64)
	require.NotEqual(t, first, utils.ContentHash([]byte("var a = 2;")))
}
