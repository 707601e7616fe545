package mapping

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/themeport/themeport/internal/ansi"
)

// ErrMappingFile reports a missing or malformed persisted mapping document.
var ErrMappingFile = errors.New("mapping file error")

type mappingDocument struct {
	ThemeName     string         `json:"theme_name"`
	ColorMappings []mappingEntry `json:"color_mappings"`
}

type mappingEntry struct {
	ColorCode  string          `json:"color_code"`
	AnsiColor  json.RawMessage `json:"ansi_color"`
	UISettings []string        `json:"ui_settings"`
	Scopes     []string        `json:"scopes"`
}

// Save writes the mapping as an indented JSON document. Entries are sorted
// by color code and usage sets are sorted ascending so re-saving an
// unchanged mapping is byte-stable.
func Save(path string, tm *ThemeMapping) error {
	doc := mappingDocument{
		ThemeName:     tm.ThemeName,
		ColorMappings: make([]mappingEntry, 0, tm.Len()),
	}

	for _, entry := range tm.Entries() {
		slotJSON := json.RawMessage("null")
		if entry.Slot != nil {
			encoded, err := json.Marshal(entry.Slot.Name())
			if err != nil {
				return fmt.Errorf("%w: encode slot for %s: %v", ErrMappingFile, entry.ColorCode, err)
			}
			slotJSON = encoded
		}
		doc.ColorMappings = append(doc.ColorMappings, mappingEntry{
			ColorCode:  entry.ColorCode,
			AnsiColor:  slotJSON,
			UISettings: entry.SortedUISettings(),
			Scopes:     entry.SortedScopes(),
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", ErrMappingFile, err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrMappingFile, path, err)
	}
	return nil
}

// Load reads a persisted mapping document. The ansi_color field accepts a
// slot name (case-insensitive) or a numeric id; on disk both denote the
// same assignment.
func Load(path string) (*ThemeMapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrMappingFile, path, err)
	}
	return Parse(data)
}

// Parse decodes a mapping document from raw JSON.
func Parse(data []byte) (*ThemeMapping, error) {
	var doc mappingDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrMappingFile, err)
	}

	tm := NewThemeMapping(doc.ThemeName)
	for _, raw := range doc.ColorMappings {
		if raw.ColorCode == "" {
			return nil, fmt.Errorf("%w: entry with empty color_code", ErrMappingFile)
		}
		if _, exists := tm.entries[raw.ColorCode]; exists {
			return nil, fmt.Errorf("%w: duplicate color_code %s", ErrMappingFile, raw.ColorCode)
		}

		entry := newColorMapping(raw.ColorCode)
		for _, setting := range raw.UISettings {
			entry.UISettings[setting] = struct{}{}
		}
		for _, scope := range raw.Scopes {
			entry.Scopes[scope] = struct{}{}
		}

		slot, err := parseSlot(raw.AnsiColor)
		if err != nil {
			return nil, fmt.Errorf("%w: color %s: %v", ErrMappingFile, raw.ColorCode, err)
		}
		entry.Slot = slot

		tm.entries[raw.ColorCode] = entry
	}
	return tm, nil
}

func parseSlot(raw json.RawMessage) (*ansi.Slot, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var name string
	if err := json.Unmarshal(raw, &name); err == nil {
		slot, err := ansi.FromName(name)
		if err != nil {
			return nil, err
		}
		return &slot, nil
	}

	var num int
	if err := json.Unmarshal(raw, &num); err == nil {
		slot, err := ansi.FromNumber(num)
		if err != nil {
			return nil, err
		}
		return &slot, nil
	}

	return nil, fmt.Errorf("invalid ansi_color value: %s", string(raw))
}
