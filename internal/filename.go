package internal

import (
	"github.com/gobeam/stringy"
)

// hashedNameLength is how many content hash characters a hashed polyfill
// filename carries. Enough to keep names unique per content without
// bloating script tags.
const hashedNameLength = 16

// PolyfillFilename resolves the on-disk name for a polyfill bundle, without
// the .js extension. Names are kebab cased so registry names like coreJs
// become core-js on disk. With hashing enabled and a built bundle at hand
// the truncated content hash makes the name safe to cache forever.
func PolyfillFilename(polyfill Polyfill, cfg PolyfillsConfig) string {
	name := stringy.New(polyfill.Name).KebabCase().ToLower()
	if cfg.Hash && polyfill.Hash != "" {
		return name + "." + truncateHash(polyfill.Hash)
	}
	return name
}

func truncateHash(hash string) string {
	if len(hash) <= hashedNameLength {
		return hash
	}
	return hash[:hashedNameLength]
}
