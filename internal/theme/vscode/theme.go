// Package vscode models VSCode color theme files. Themes are expected to be
// compiled files as produced by the editor's "Generate Color Theme From
// Current Settings" command, which inlines every include.
package vscode

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/themeport/themeport/internal/mapping"
)

// TokenSettings style one syntax rule.
type TokenSettings struct {
	Foreground string `json:"foreground,omitempty"`
	FontStyle  string `json:"fontStyle,omitempty"`
}

// TokenColor is a single-scope syntax highlighting rule. Multi-scope rules
// are split during normalization.
type TokenColor struct {
	Name     string        `json:"name,omitempty"`
	Scope    string        `json:"scope,omitempty"`
	Settings TokenSettings `json:"settings"`
}

// Theme is a VSCode color theme.
type Theme struct {
	Schema               string            `json:"$schema,omitempty"`
	Type                 string            `json:"type,omitempty"`
	Name                 string            `json:"name,omitempty"`
	SemanticHighlighting *bool             `json:"semanticHighlighting,omitempty"`
	SemanticTokenColors  map[string]string `json:"semanticTokenColors,omitempty"`
	Colors               map[string]string `json:"colors,omitempty"`
	TokenColors          []TokenColor      `json:"tokenColors"`
}

// rawTheme mirrors the on-disk shape before normalization: scopes may be a
// string or a list, and an include key may be present.
type rawTheme struct {
	Schema               string            `json:"$schema"`
	Type                 string            `json:"type"`
	Name                 string            `json:"name"`
	Include              string            `json:"include"`
	SemanticHighlighting *bool             `json:"semanticHighlighting"`
	SemanticTokenColors  map[string]string `json:"semanticTokenColors"`
	Colors               map[string]string `json:"colors"`
	TokenColors          []rawTokenColor   `json:"tokenColors"`
}

type rawTokenColor struct {
	Name     string         `json:"name"`
	Scope    scopeList      `json:"scope"`
	Settings *TokenSettings `json:"settings"`
}

// scopeList accepts either a single scope string or a list of scopes.
type scopeList []string

func (s *scopeList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = scopeList{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("scope must be a string or a list of strings: %w", err)
	}
	*s = scopeList(many)
	return nil
}

// Load reads and parses a VSCode theme from a JSON or JSONC file. A theme
// without a name takes the file's base name.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme %s: %w", path, err)
	}

	theme, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse theme %s: %w", path, err)
	}

	if theme.Name == "" {
		base := filepath.Base(path)
		theme.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return theme, nil
}

// Parse decodes a theme from JSON(C) bytes and normalizes its token colors.
func Parse(data []byte) (*Theme, error) {
	var raw rawTheme
	if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
		return nil, err
	}

	if raw.Include != "" {
		return nil, fmt.Errorf("theme contains an include key; use a compiled theme " +
			"generated with VSCode's \"Generate Color Theme From Current Settings\"")
	}

	return &Theme{
		Schema:               raw.Schema,
		Type:                 raw.Type,
		Name:                 raw.Name,
		SemanticHighlighting: raw.SemanticHighlighting,
		SemanticTokenColors:  raw.SemanticTokenColors,
		Colors:               raw.Colors,
		TokenColors:          normalizeTokenColors(raw.TokenColors),
	}, nil
}

// normalizeTokenColors splits list scopes into one rule per scope and keeps
// only the last rule for each scope, which is how VSCode resolves themes
// that override imported token colors.
func normalizeTokenColors(rules []rawTokenColor) []TokenColor {
	byScope := make(map[string]int)
	normalized := make([]TokenColor, 0, len(rules))

	for _, raw := range rules {
		if len(raw.Scope) == 0 || raw.Settings == nil {
			continue
		}
		for _, scope := range raw.Scope {
			if scope == "" {
				continue
			}
			rule := TokenColor{
				Name:     raw.Name,
				Scope:    scope,
				Settings: *raw.Settings,
			}
			if i, seen := byScope[scope]; seen {
				normalized[i] = rule
				continue
			}
			byScope[scope] = len(normalized)
			normalized = append(normalized, rule)
		}
	}
	return normalized
}

// Save writes the theme as indented JSON.
func (t *Theme) Save(path string) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal theme: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write theme %s: %w", path, err)
	}
	return nil
}

// ColorUsages emits every color occurrence in the theme: one usage per UI
// color setting and one per token rule with a foreground.
func (t *Theme) ColorUsages() []mapping.Usage {
	usages := make([]mapping.Usage, 0, len(t.Colors)+len(t.TokenColors))
	for setting, color := range t.Colors {
		if color == "" {
			continue
		}
		usages = append(usages, mapping.Usage{Color: color, Setting: setting})
	}
	for _, rule := range t.TokenColors {
		if rule.Settings.Foreground == "" {
			continue
		}
		usages = append(usages, mapping.Usage{Color: rule.Settings.Foreground, Scope: rule.Scope})
	}
	return usages
}

// CollectMapping harvests the theme's distinct colors into a fresh mapping.
func (t *Theme) CollectMapping() *mapping.ThemeMapping {
	name := t.Name
	if name == "" {
		name = "Unnamed Theme"
	}
	return mapping.Collect(name, t.ColorUsages())
}

// ApplyMapping returns a copy of the theme with every assigned color
// replaced by its slot placeholder. The original theme is not modified.
// Colors without an assignment are reported, not dropped.
func (t *Theme) ApplyMapping(tm *mapping.ThemeMapping) (*Theme, *mapping.UnmappedReport) {
	applied := t.clone()
	report := mapping.NewUnmappedReport()

	for setting, color := range applied.Colors {
		if color == "" {
			continue
		}
		if replaced, ok := report.Substitute(tm, color); ok {
			applied.Colors[setting] = replaced
		}
	}

	for i := range applied.TokenColors {
		color := applied.TokenColors[i].Settings.Foreground
		if color == "" {
			continue
		}
		if replaced, ok := report.Substitute(tm, color); ok {
			applied.TokenColors[i].Settings.Foreground = replaced
		}
	}

	if applied.Name != "" {
		applied.Name += " (ANSI)"
	}
	return applied, report
}

func (t *Theme) clone() *Theme {
	clone := *t
	if t.Colors != nil {
		clone.Colors = make(map[string]string, len(t.Colors))
		for k, v := range t.Colors {
			clone.Colors[k] = v
		}
	}
	if t.SemanticTokenColors != nil {
		clone.SemanticTokenColors = make(map[string]string, len(t.SemanticTokenColors))
		for k, v := range t.SemanticTokenColors {
			clone.SemanticTokenColors[k] = v
		}
	}
	clone.TokenColors = make([]TokenColor, len(t.TokenColors))
	copy(clone.TokenColors, t.TokenColors)
	return &clone
}
