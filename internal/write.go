package internal

import (
	"fmt"
	"os"
	"path/filepath"

	cp "github.com/otiai10/copy"
)

// LoaderScriptName is the filename the assembled loader is written to.
const LoaderScriptName = "loader.js"

// PolyfillsLoaderScriptName is the filename of the optional standalone
// polyfills loading function.
const PolyfillsLoaderScriptName = "polyfills-loader.js"

// polyfillsDirName is the output subdirectory polyfill bundles land in. It
// matches the polyfills/ prefix the generated loader requests them from.
const polyfillsDirName = "polyfills"

// Output collects everything one generate run produces.
type Output struct {
	// Loader is the assembled bootstrap, written as loader.js.
	Loader string
	// PolyfillsLoader is the standalone named loading function, written as
	// polyfills-loader.js when non-empty.
	PolyfillsLoader string
	// Polyfills are the built bundles, written below polyfills/.
	Polyfills       []BuiltPolyfill
	PolyfillsConfig PolyfillsConfig
	// PublicPath is recorded in the manifest for downstream tooling.
	PublicPath string
}

// WriteOutputs persists an Output below outDir and returns the manifest
// describing what was written. The manifest itself lands last, as
// manifest.json in outDir.
func WriteOutputs(outDir string, out Output) (Manifest, error) {
	manifest := NewManifest(out.PublicPath)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return Manifest{}, fmt.Errorf("create output dir %s: %w", outDir, err)
	}
	loader := []byte(out.Loader)
	if err := os.WriteFile(filepath.Join(outDir, LoaderScriptName), loader, 0o644); err != nil {
		return Manifest{}, fmt.Errorf("write loader script: %w", err)
	}
	manifest.Add(LoaderScriptName, loader)

	if out.PolyfillsLoader != "" {
		standalone := []byte(out.PolyfillsLoader)
		if err := os.WriteFile(filepath.Join(outDir, PolyfillsLoaderScriptName), standalone, 0o644); err != nil {
			return Manifest{}, fmt.Errorf("write polyfills loader script: %w", err)
		}
		manifest.Add(PolyfillsLoaderScriptName, standalone)
	}

	if len(out.Polyfills) > 0 {
		polyfillsDir := filepath.Join(outDir, polyfillsDirName)
		if err := os.MkdirAll(polyfillsDir, 0o755); err != nil {
			return Manifest{}, fmt.Errorf("create polyfills dir %s: %w", polyfillsDir, err)
		}
		for _, bundle := range out.Polyfills {
			name := PolyfillFilename(bundle.Polyfill, out.PolyfillsConfig) + ".js"
			if err := os.WriteFile(filepath.Join(polyfillsDir, name), bundle.Code, 0o644); err != nil {
				return Manifest{}, fmt.Errorf("write polyfill %s: %w", bundle.Polyfill.Name, err)
			}
			manifest.Add(filepath.Join(polyfillsDirName, name), bundle.Code)
		}
	}

	if err := manifest.Write(outDir); err != nil {
		return Manifest{}, err
	}
	return manifest, nil
}

// CopyAssets copies each configured asset directory from the project root
// into the output directory. Copies are verbatim, keeping sourcemaps and
// license files that ship next to prebuilt polyfill bundles.
func CopyAssets(outDir, root string, assets []AssetMapping) error {
	for _, asset := range assets {
		src := filepath.Join(root, asset.Src)
		dest := filepath.Join(outDir, asset.Dest)
		if err := cp.Copy(src, dest); err != nil {
			return fmt.Errorf("copy asset %s: %w", asset.Src, err)
		}
	}
	return nil
}
