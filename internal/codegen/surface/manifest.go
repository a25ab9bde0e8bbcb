package surface

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// Manifest is the serialized form of a declaration surface, as dumped by the
// external declaration reader.
type Manifest struct {
	Namespace string      `json:"namespace" yaml:"namespace" toml:"namespace"`
	Classes   []ClassInfo `json:"classes" yaml:"classes" toml:"classes"`
}

// FormatFromPath maps a file extension to a manifest format name.
func FormatFromPath(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return "json", nil
	case ".yaml", ".yml":
		return "yaml", nil
	case ".toml":
		return "toml", nil
	default:
		return "", fmt.Errorf("unsupported surface manifest extension %q (want .json, .yaml, .yml or .toml)", ext)
	}
}

// Decode parses manifest data in the given format.
func Decode(data []byte, format string) (*Manifest, error) {
	var m Manifest
	var err error
	switch format {
	case "json":
		err = json.Unmarshal(data, &m)
	case "yaml":
		err = yaml.Unmarshal(data, &m)
	case "toml":
		err = toml.Unmarshal(data, &m)
	default:
		return nil, fmt.Errorf("unsupported manifest format: %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s manifest: %w", format, err)
	}
	return &m, nil
}

// Load reads a manifest file and indexes it into a Library.
// namespace, when non-empty, overrides the manifest's own namespace.
func Load(path, namespace string) (*Library, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read surface manifest: %w", err)
	}
	m, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if namespace == "" {
		namespace = m.Namespace
	}
	lib, err := NewLibrary(namespace, m.Classes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lib, nil
}
