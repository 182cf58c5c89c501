package internal

import (
	"strconv"
	"strings"
)

// Polyfill describes one optional browser capability shim. Test is a JS
// boolean expression evaluated in the browser; a polyfill without a test is
// skipped by the generator and left to unconditional loading by the
// surrounding page. Test expressions are emitted as-is, callers own them.
type Polyfill struct {
	Name   string `yaml:"name"`
	Test   string `yaml:"test"`
	Module bool   `yaml:"module"`

	// Source is the file the polyfill bundle is built from, relative to the
	// project root (usually pointing into node_modules).
	Source string `yaml:"source"`
	// Minify marks sources that are not distributed pre-minified.
	Minify bool `yaml:"minify"`

	// Hash is the content hash of the built bundle. BuildPolyfills fills it
	// in; hashed filename resolution reads it.
	Hash string `yaml:"-"`
}

// PolyfillsConfig carries the filename resolution settings.
type PolyfillsConfig struct {
	// Hash appends a truncated content hash to on-disk polyfill filenames.
	Hash bool `yaml:"hash"`
}

// polyfillsLoaderCode emits the code that collects conditional polyfill
// loads into a polyfills array. A nil slice emits nothing at all, an empty
// one only the declaration; the distinction decides whether the assembled
// script may reference the array afterwards. Blocks keep input order.
func polyfillsLoaderCode(polyfills []Polyfill, cfg PolyfillsConfig, publicPath string) string {
	if polyfills == nil {
		return ""
	}

	var code strings.Builder
	code.WriteString("var polyfills = [];")
	for _, polyfill := range polyfills {
		if polyfill.Test == "" {
			continue
		}
		code.WriteString("if (")
		code.WriteString(polyfill.Test)
		code.WriteString(") { polyfills.push(loadScript('")
		code.WriteString(publicPath)
		code.WriteString("polyfills/")
		code.WriteString(PolyfillFilename(polyfill, cfg))
		code.WriteString(".js', ")
		code.WriteString(strconv.FormatBool(polyfill.Module))
		code.WriteString(")) }")
	}
	return code.String()
}

// builtinPolyfills returns the registry of polyfills the tool knows how to
// build, in loading order. Entries without a test (core-js, systemjs) are
// legacy baseline scripts that never load conditionally.
func builtinPolyfills() []Polyfill {
	return []Polyfill{
		{
			Name:   "coreJs",
			Source: "node_modules/core-js-bundle/minified.js",
		},
		{
			Name:   "regeneratorRuntime",
			Test:   "!('regeneratorRuntime' in window)",
			Source: "node_modules/regenerator-runtime/runtime.js",
			Minify: true,
		},
		{
			Name:   "fetch",
			Test:   "!('fetch' in window)",
			Source: "node_modules/whatwg-fetch/dist/fetch.umd.js",
			Minify: true,
		},
		{
			Name:   "abortController",
			Test:   "!('AbortController' in window)",
			Source: "node_modules/abortcontroller-polyfill/dist/umd/abortcontroller-polyfill-only.js",
			Minify: true,
		},
		{
			Name:   "intersectionObserver",
			Test:   "!('IntersectionObserver' in window)",
			Source: "node_modules/intersection-observer/intersection-observer.js",
			Minify: true,
		},
		{
			Name:   "resizeObserver",
			Test:   "!('ResizeObserver' in window)",
			Source: "node_modules/resize-observer-polyfill/dist/ResizeObserver.js",
			Minify: true,
		},
		{
			Name:   "webcomponents",
			Test:   "!('attachShadow' in Element.prototype) || !('getRootNode' in Element.prototype) || (window.ShadyDOM && window.ShadyDOM.force)",
			Source: "node_modules/@webcomponents/webcomponentsjs/webcomponents-bundle.js",
		},
		{
			Name:   "dynamicImport",
			Test:   "'noModule' in HTMLScriptElement.prototype && !('importShim' in window)",
			Source: "node_modules/dynamic-import-polyfill/dist/dynamic-import-polyfill.umd.js",
			Minify: true,
		},
		{
			Name:   "esModuleShims",
			Test:   "'noModule' in HTMLScriptElement.prototype",
			Module: true,
			Source: "node_modules/es-module-shims/dist/es-module-shims.js",
		},
		{
			Name:   "systemjs",
			Source: "node_modules/systemjs/dist/s.min.js",
		},
	}
}

// lookupBuiltinPolyfill returns the registry entry for name.
func lookupBuiltinPolyfill(name string) (Polyfill, bool) {
	for _, polyfill := range builtinPolyfills() {
		if polyfill.Name == name {
			return polyfill, true
		}
	}
	return Polyfill{}, false
}

// BuiltinPolyfills exposes a copy of the registry for listing commands.
func BuiltinPolyfills() []Polyfill {
	return builtinPolyfills()
}
