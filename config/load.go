package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/titanous/json5"
	"gopkg.in/yaml.v2"
)

// Load reads options from a YAML (.yaml, .yml) or JSON5 (.json, .json5)
// file. Fields absent from the file keep their Default values. Unknown YAML
// keys are rejected.
func Load(path string) (Base, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Base{}, err
	}
	base := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.UnmarshalStrict(b, &base)
	case ".json", ".json5":
		err = json5.Unmarshal(b, &base)
	default:
		return Base{}, fmt.Errorf("config %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return Base{}, fmt.Errorf("config %s: %w", path, err)
	}
	return base, nil
}
