package internal

import (
	"fmt"
	"strings"

	"github.com/Marvin1003/open-wc/internal/utils"
)

// EntriesType selects how the generated loader starts an entry file.
type EntriesType string

const (
	// EntriesTypeScript loads entries through classic script tags.
	EntriesTypeScript EntriesType = "script"
	// EntriesTypeModule loads entries as ES modules via dynamic import.
	EntriesTypeModule EntriesType = "module"
	// EntriesTypeSystem loads entries through the SystemJS loader.
	EntriesTypeSystem EntriesType = "system"
)

// EntriesConfig describes one deployable bundle variant (modern or legacy).
type EntriesConfig struct {
	Type  EntriesType
	Files []string

	// PolyfillDynamicImport selects the import function for module entries.
	// Unset or true emits window.importShim, explicitly false emits native
	// import.
	PolyfillDynamicImport *bool
}

// entryLoaderCode returns a JS expression which starts loading every file
// with the given strategy. Paths are emitted single quoted and not escaped;
// callers own the file names they pass in.
func entryLoaderCode(entriesType EntriesType, files []string, polyfillDynamicImport *bool) (string, error) {
	switch entriesType {
	case EntriesTypeScript:
		return loaderExpression("loadScript", files), nil
	case EntriesTypeModule:
		importFunction := "window.importShim"
		if polyfillDynamicImport != nil && !*polyfillDynamicImport {
			importFunction = "import"
		}
		return loaderExpression(importFunction, files), nil
	case EntriesTypeSystem:
		return loaderExpression("System.import", files), nil
	default:
		return "", fmt.Errorf("unsupported entries type: %q", entriesType)
	}
}

// loaderExpression emits a single invocation for one file, or iteration over
// an array literal for any other count. An empty file list goes through the
// array branch and stays valid no-op code.
func loaderExpression(importFunction string, files []string) string {
	if len(files) == 1 {
		return importFunction + "('" + files[0] + "')"
	}

	quoted := make([]string, len(files))
	for i, file := range files {
		quoted[i] = "'" + file + "'"
	}
	return "[" + strings.Join(quoted, ",") + "].forEach(function (entry) { " + importFunction + "(entry); })"
}

// entriesLoaderCode builds the body of the generated loadEntries function.
// With a legacy config present the body branches on noModule support in
// HTMLScriptElement, the signal separating module capable browsers from
// legacy ones. Legacy expressions are always built without the dynamic
// import flag.
func entriesLoaderCode(entries EntriesConfig, legacyEntries *EntriesConfig, publicPath string) (string, error) {
	modern, err := entryLoaderCode(entries.Type, cleanFiles(entries.Files, publicPath), entries.PolyfillDynamicImport)
	if err != nil {
		return "", err
	}
	if legacyEntries == nil {
		return modern + ";", nil
	}

	legacy, err := entryLoaderCode(legacyEntries.Type, cleanFiles(legacyEntries.Files, publicPath), nil)
	if err != nil {
		return "", err
	}
	return "'noModule' in HTMLScriptElement.prototype ? " + modern + " : " + legacy + ";", nil
}

// needsLoadScript reports whether the generated code must define the
// loadScript helper: polyfills always load through it, as do script type
// entries. Pure module/system setups without polyfills skip the helper.
func needsLoadScript(entries EntriesConfig, legacyEntries *EntriesConfig, polyfills []Polyfill) bool {
	if len(polyfills) > 0 {
		return true
	}
	if entries.Type == EntriesTypeScript {
		return true
	}
	return legacyEntries != nil && legacyEntries.Type == EntriesTypeScript
}

func cleanFiles(files []string, publicPath string) []string {
	cleaned := make([]string, len(files))
	for i, file := range files {
		cleaned[i] = utils.CleanImportPath(file, publicPath)
	}
	return cleaned
}
