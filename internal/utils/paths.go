package utils

import (
	"strings"
)

// CleanImportPath normalizes a built asset path for use inside generated
// browser code. Without a public path the path passes through untouched.
// With a public path, the path is rooted under it with exactly one slash in
// between, dropping any "./" prefix.
func CleanImportPath(path, publicPath string) string {
	if publicPath == "" {
		return path
	}

	cleaned := strings.TrimPrefix(path, "./")
	cleaned = strings.TrimPrefix(cleaned, "/")
	if strings.HasSuffix(publicPath, "/") {
		return publicPath + cleaned
	}
	return publicPath + "/" + cleaned
}
