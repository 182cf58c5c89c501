package internal

import (
	"strings"
)

// loadScriptFunction is the browser side helper every script strategy load
// and every conditional polyfill load goes through. It wraps a script tag
// append in a promise so loads can be awaited and failures observed.
const loadScriptFunction = `function loadScript(src, module) {
  return new Promise(function (resolve, reject) {
    var script = document.createElement('script');
    script.onerror = reject;
    script.onload = resolve;
    if (module) {
      script.type = 'module';
    }
    script.src = src;
    document.head.appendChild(script);
  });
}
`

// CreateLoaderScript assembles the self executing bootstrap that gets
// embedded into the HTML entry point. It loads any triggered polyfills
// first and defers entry loading until all of them resolved; a rejected
// polyfill load rejects the whole chain and entries never load.
//
// A nil polyfills slice omits polyfill handling entirely; an empty non-nil
// slice still declares the polyfills array and guards entry loading on it.
// With minified set the assembled source runs through esbuild and only the
// minified code is returned.
func CreateLoaderScript(entries EntriesConfig, legacyEntries *EntriesConfig, polyfills []Polyfill, polyfillsCfg PolyfillsConfig, minified bool, publicPath string) (string, error) {
	body, err := entriesLoaderCode(entries, legacyEntries, publicPath)
	if err != nil {
		return "", err
	}

	var code strings.Builder
	code.WriteString("(function() {")
	if needsLoadScript(entries, legacyEntries, polyfills) {
		code.WriteString(loadScriptFunction)
	}
	code.WriteString(polyfillsLoaderCode(polyfills, polyfillsCfg, publicPath))
	code.WriteString("function loadEntries() {")
	code.WriteString(body)
	code.WriteString("}")
	if polyfills == nil {
		code.WriteString("loadEntries();")
	} else {
		code.WriteString("polyfills.length ? Promise.all(polyfills).then(loadEntries) : loadEntries();")
	}
	code.WriteString("})();")

	if !minified {
		return code.String(), nil
	}
	return Minify(code.String())
}

// CreatePolyfillsLoaderScript builds a named, reusable polyfill loading
// function and leaves entry loading to the caller: calling the generated
// function returns a promise that resolves once every triggered polyfill
// has loaded. An empty funcName defaults to loadPolyfills. The output is
// never minified here.
func CreatePolyfillsLoaderScript(polyfills []Polyfill, polyfillsCfg PolyfillsConfig, funcName, publicPath string) string {
	if funcName == "" {
		funcName = "loadPolyfills"
	}

	var code strings.Builder
	code.WriteString("function ")
	code.WriteString(funcName)
	code.WriteString("() {")
	code.WriteString(loadScriptFunction)
	code.WriteString(polyfillsLoaderCode(polyfills, polyfillsCfg, publicPath))
	code.WriteString("return Promise.all(polyfills);")
	code.WriteString("}")
	return code.String()
}
