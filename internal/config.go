package internal

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the per-project build description, read from a YAML file
// (loader.config.yaml by convention). It names the entry bundles, the
// polyfills to build and load, and how output files are addressed.
type Config struct {
	// PublicPath is the URL prefix assets are served under. Normalized to
	// end in a slash when set.
	PublicPath string `yaml:"publicPath"`
	// Root is the directory polyfill sources and assets resolve against,
	// defaulting to the config file's working directory.
	Root string `yaml:"root"`

	Entries       EntriesSection  `yaml:"entries"`
	LegacyEntries *EntriesSection `yaml:"legacyEntries"`

	// Polyfills being absent, empty, or filled carries meaning: absent
	// generates no polyfill handling at all, present-but-empty still guards
	// entry loading on an empty polyfills array.
	Polyfills *PolyfillsSection `yaml:"polyfills"`

	// Assets are directories copied verbatim next to the built polyfills,
	// for prebuilt bundles that ship loose support files.
	Assets []AssetMapping `yaml:"assets"`
}

// EntriesSection describes one bundle variant.
type EntriesSection struct {
	Type                  string   `yaml:"type"`
	Files                 []string `yaml:"files"`
	PolyfillDynamicImport *bool    `yaml:"polyfillDynamicImport"`
}

// PolyfillsSection selects registry polyfills by name and lets projects
// define their own.
type PolyfillsSection struct {
	Hash    bool       `yaml:"hash"`
	Builtin []string   `yaml:"builtin"`
	Custom  []Polyfill `yaml:"custom"`
}

// AssetMapping copies a directory from the project into the output.
type AssetMapping struct {
	Src  string `yaml:"src"`
	Dest string `yaml:"dest"`
}

// LoadConfig reads, strictly parses, and validates a project config.
// Unknown YAML keys are rejected so typos surface instead of silently
// dropping settings.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid YAML config: %w", err)
	}

	if cfg.Root == "" {
		cfg.Root = "."
	}
	if cfg.PublicPath != "" && !strings.HasSuffix(cfg.PublicPath, "/") {
		cfg.PublicPath += "/"
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if err := validateEntries("entries", c.Entries); err != nil {
		return err
	}
	if c.LegacyEntries != nil {
		if err := validateEntries("legacyEntries", *c.LegacyEntries); err != nil {
			return err
		}
	}
	if c.Polyfills != nil {
		for _, name := range c.Polyfills.Builtin {
			if _, ok := lookupBuiltinPolyfill(name); !ok {
				return fmt.Errorf("polyfills: unknown builtin polyfill %q", name)
			}
		}
		for i, polyfill := range c.Polyfills.Custom {
			if polyfill.Name == "" {
				return fmt.Errorf("polyfills: custom polyfill %d needs a name", i)
			}
			if polyfill.Source == "" {
				return fmt.Errorf("polyfills: custom polyfill %q needs a source", polyfill.Name)
			}
		}
	}
	for i, asset := range c.Assets {
		if asset.Src == "" || asset.Dest == "" {
			return fmt.Errorf("assets: mapping %d needs both src and dest", i)
		}
	}
	return nil
}

func validateEntries(field string, entries EntriesSection) error {
	if _, err := parseEntriesType(entries.Type); err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	if len(entries.Files) == 0 {
		return fmt.Errorf("%s: at least one file is required", field)
	}
	return nil
}

func parseEntriesType(value string) (EntriesType, error) {
	switch EntriesType(value) {
	case EntriesTypeScript, EntriesTypeModule, EntriesTypeSystem:
		return EntriesType(value), nil
	default:
		return "", fmt.Errorf("unsupported entries type: %q", value)
	}
}

// EntriesConfig converts the modern entries section into generator input.
func (c Config) EntriesConfig() EntriesConfig {
	return EntriesConfig{
		Type:                  EntriesType(c.Entries.Type),
		Files:                 c.Entries.Files,
		PolyfillDynamicImport: c.Entries.PolyfillDynamicImport,
	}
}

// LegacyEntriesConfig converts the legacy entries section, nil when the
// project has no legacy variant.
func (c Config) LegacyEntriesConfig() *EntriesConfig {
	if c.LegacyEntries == nil {
		return nil
	}
	cfg := EntriesConfig{
		Type:                  EntriesType(c.LegacyEntries.Type),
		Files:                 c.LegacyEntries.Files,
		PolyfillDynamicImport: c.LegacyEntries.PolyfillDynamicImport,
	}
	return &cfg
}

// SelectedPolyfills flattens the config selection against the registry,
// builtins first then customs, each in listed order. Returns nil when the
// polyfills section is absent and a non-nil empty slice when it is present
// but selects nothing.
func (c Config) SelectedPolyfills() []Polyfill {
	if c.Polyfills == nil {
		return nil
	}
	polyfills := make([]Polyfill, 0, len(c.Polyfills.Builtin)+len(c.Polyfills.Custom))
	for _, name := range c.Polyfills.Builtin {
		if polyfill, ok := lookupBuiltinPolyfill(name); ok {
			polyfills = append(polyfills, polyfill)
		}
	}
	return append(polyfills, c.Polyfills.Custom...)
}

// PolyfillsConfig returns the filename resolution settings.
func (c Config) PolyfillsConfig() PolyfillsConfig {
	if c.Polyfills == nil {
		return PolyfillsConfig{}
	}
	return PolyfillsConfig{Hash: c.Polyfills.Hash}
}
