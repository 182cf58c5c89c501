package internal

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/Marvin1003/open-wc/internal/utils"
	"github.com/evanw/esbuild/pkg/api"
	"golang.org/x/sync/errgroup"
)

// maxPolyfillBytes caps a single built polyfill bundle. Anything larger is
// almost certainly a bundling mistake (a whole app pulled in through a bad
// source path) rather than a real polyfill.
const maxPolyfillBytes = 5 * 1024 * 1024

// BuiltPolyfill pairs a polyfill with its bundled browser code. The
// embedded Polyfill carries the content hash of Code.
type BuiltPolyfill struct {
	Polyfill Polyfill
	Code     []byte
}

// BuildPolyfills bundles every polyfill source below root into a
// standalone browser script, in parallel. Results keep input order. Each
// built polyfill records its content hash so hashed filename resolution
// stays in sync with what gets written to disk.
func BuildPolyfills(ctx context.Context, polyfills []Polyfill, root string) ([]BuiltPolyfill, error) {
	built := make([]BuiltPolyfill, len(polyfills))
	group, ctx := errgroup.WithContext(ctx)
	for i, polyfill := range polyfills {
		i, polyfill := i, polyfill
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			code, err := buildPolyfill(polyfill, root)
			if err != nil {
				return fmt.Errorf("build polyfill %s: %w", polyfill.Name, err)
			}
			polyfill.Hash = utils.ContentHash(code)
			built[i] = BuiltPolyfill{Polyfill: polyfill, Code: code}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return built, nil
}

func buildPolyfill(polyfill Polyfill, root string) ([]byte, error) {
	result := api.Build(api.BuildOptions{
		EntryPoints:       []string{filepath.Join(root, polyfill.Source)},
		Outfile:           "out.js",
		Bundle:            true,
		Write:             false,
		MinifyIdentifiers: polyfill.Minify,
		MinifySyntax:      polyfill.Minify,
		MinifyWhitespace:  polyfill.Minify,
		Platform:          api.PlatformBrowser,
		Format:            api.FormatIIFE,
		Target:            polyfillTarget(polyfill),
	})
	if len(result.Errors) > 0 {
		errs := make([]error, len(result.Errors))
		for i, message := range result.Errors {
			errs[i] = fmt.Errorf("%s", message.Text)
		}
		return nil, errors.Join(errs...)
	}
	if len(result.OutputFiles) == 0 {
		return nil, errors.New("bundling produced no output")
	}
	code := result.OutputFiles[0].Contents
	if len(code) > maxPolyfillBytes {
		return nil, fmt.Errorf("bundle is %d bytes, larger than the %d byte limit", len(code), maxPolyfillBytes)
	}
	return code, nil
}

// polyfillTarget picks the syntax level a polyfill bundle is lowered to.
// Module polyfills only ever run on browsers that understand modules, so
// they keep modern syntax; everything else must parse on legacy browsers.
func polyfillTarget(polyfill Polyfill) api.Target {
	if polyfill.Module {
		return api.ES2017
	}
	return api.ES5
}
