package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/Marvin1003/open-wc/internal/utils"
)

// ManifestVersion identifies the manifest layout written by this tool.
const ManifestVersion = "1"

// ManifestName is the manifest's filename inside the output directory.
const ManifestName = "manifest.json"

// Manifest records the files one generate run wrote, so downstream HTML
// injection tooling can reference hashed filenames without globbing the
// output directory.
type Manifest struct {
	Version     string         `json:"version"`
	GeneratedAt time.Time      `json:"generatedAt"`
	PublicPath  string         `json:"publicPath,omitempty"`
	Files       []ManifestFile `json:"files"`
}

// ManifestFile describes one written artifact. Path is relative to the
// output directory and always slash separated.
type ManifestFile struct {
	Path   string `json:"path"`
	Size   int64  `json:"size"`
	SHA256 string `json:"sha256"`
}

// NewManifest starts an empty manifest stamped with the current time.
func NewManifest(publicPath string) Manifest {
	return Manifest{
		Version:     ManifestVersion,
		GeneratedAt: time.Now().UTC(),
		PublicPath:  publicPath,
	}
}

// Add records one artifact from its contents.
func (m *Manifest) Add(path string, data []byte) {
	m.Files = append(m.Files, ManifestFile{
		Path:   filepath.ToSlash(path),
		Size:   int64(len(data)),
		SHA256: utils.ContentHash(data),
	})
}

// Write persists the manifest as indented JSON below dir. Files are sorted
// by path first so repeated runs produce identical manifests.
func (m Manifest) Write(dir string) error {
	sort.Slice(m.Files, func(i, j int) bool {
		return m.Files[i].Path < m.Files[j].Path
	})
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(filepath.Join(dir, ManifestName), data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}
