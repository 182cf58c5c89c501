package internal

import (
	"errors"
	"fmt"

	"github.com/evanw/esbuild/pkg/api"
)

// Minify compresses loader source through esbuild. It only minifies, it
// never lowers syntax: the generated loader is legacy safe as written, and
// the one modern construct it can contain, a native dynamic import, must
// survive untouched. Failures carry every esbuild message and propagate to
// the caller.
func Minify(source string) (string, error) {
	result := api.Transform(source, api.TransformOptions{
		MinifyIdentifiers: true,
		MinifySyntax:      true,
		MinifyWhitespace:  true,
	})
	if len(result.Errors) > 0 {
		errs := make([]error, len(result.Errors))
		for i, message := range result.Errors {
			errs[i] = fmt.Errorf("%s", message.Text)
		}
		return "", fmt.Errorf("minify loader script: %w", errors.Join(errs...))
	}
	return string(result.Code), nil
}
