package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// LoadScene parses a JSON scene over the defaults. Fields absent from the
// JSON keep their default values; a "groups" array replaces the default
// groups entirely.
func LoadScene(data []byte) (Config, error) {
	cfg := Default()
	groups := cfg.Groups
	cfg.Groups = nil
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse scene: %w", err)
	}
	if cfg.Groups == nil {
		cfg.Groups = groups
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid scene %q: %w", cfg.Name, err)
	}
	return cfg, nil
}

// LoadNamed reads scenes/<name>.json from fsys and parses it.
func LoadNamed(fsys fs.FS, name string) (Config, error) {
	data, err := fs.ReadFile(fsys, path.Join("scenes", name+".json"))
	if err != nil {
		return Config{}, fmt.Errorf("load scene %s: %w", name, err)
	}
	return LoadScene(data)
}

// SceneNames lists the scenes available in fsys.
func SceneNames(fsys fs.FS) ([]string, error) {
	matches, err := fs.Glob(fsys, "scenes/*.json")
	if err != nil {
		return nil, err
	}
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = strings.TrimSuffix(path.Base(m), ".json")
	}
	return names, nil
}
