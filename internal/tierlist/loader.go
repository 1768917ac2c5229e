package tierlist

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ManifestVersion is the manifest schema version this build reads and
// writes.
const ManifestVersion = 1

// ErrEmptyManifest reports a manifest payload with no content.
var ErrEmptyManifest = errors.New("tierlist: manifest payload is empty")

// Manifest is the on-disk envelope for a custom table.
type Manifest struct {
	Version int   `json:"version" yaml:"version"`
	Tiers   Table `json:"tiers" yaml:"tiers"`
}

func (m *Manifest) applyDefaults() {
	if m.Version == 0 {
		m.Version = ManifestVersion
	}
}

func (m *Manifest) validate() error {
	if m.Version != ManifestVersion {
		return fmt.Errorf("tierlist: unsupported manifest version %d", m.Version)
	}
	return m.Tiers.Validate()
}

// ParseManifestYAML decodes a manifest from YAML/JSON bytes and returns the
// validated table.
func ParseManifestYAML(data []byte) (Table, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyManifest
	}
	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("tierlist: decode manifest: %w", err)
	}
	manifest.applyDefaults()
	if err := manifest.validate(); err != nil {
		return nil, err
	}
	return manifest.Tiers, nil
}

// LoadManifestReader reads manifest data from an io.Reader.
func LoadManifestReader(r io.Reader) (Table, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("tierlist: read manifest: %w", err)
	}
	return ParseManifestYAML(content)
}

// LoadManifestFile loads a manifest from an explicit file path.
func LoadManifestFile(path string) (Table, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tierlist: read %s: %w", path, err)
	}
	table, parseErr := ParseManifestYAML(content)
	if parseErr != nil {
		return nil, fmt.Errorf("tierlist: %s: %w", path, parseErr)
	}
	return table, nil
}

// EncodeManifest renders a table as manifest YAML, suitable for seeding a
// custom manifest file from the built-in table.
func EncodeManifest(t Table) ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	data, err := yaml.Marshal(Manifest{Version: ManifestVersion, Tiers: t})
	if err != nil {
		return nil, fmt.Errorf("tierlist: encode manifest: %w", err)
	}
	return data, nil
}
