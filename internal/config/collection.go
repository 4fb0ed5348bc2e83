package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/presetly/internal/preset"
	presetlyerrors "github.com/alexisbeaulieu97/presetly/pkg/errors"
)

// LoadCollection reads a custom preset collection file. The document must be
// a mapping of preset keys to preset definitions; any other top-level shape
// fails the whole collection.
func LoadCollection(path string) (map[string]preset.Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, presetlyerrors.NewParseError(path, 0, err)
	}

	return DecodeCollection(path, data)
}

// DecodeCollection parses collection bytes. The path is used for error
// reporting only.
func DecodeCollection(path string, data []byte) (map[string]preset.Preset, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, presetlyerrors.NewParseError(path, extractLine(err), err)
	}

	if len(doc.Content) == 0 {
		return map[string]preset.Preset{}, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, presetlyerrors.NewValidationError("collection", "collection document must be a mapping of preset keys to presets", nil)
	}

	var entries map[string]preset.Preset
	if err := root.Decode(&entries); err != nil {
		return nil, presetlyerrors.NewParseError(path, extractLine(err), err)
	}

	return entries, nil
}
