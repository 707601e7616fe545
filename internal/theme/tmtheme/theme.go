// Package tmtheme models TextMate theme files (.tmTheme), XML property
// lists carrying one global settings block followed by token rules.
package tmtheme

import (
	"fmt"
	"os"

	"howett.net/plist"

	"github.com/themeport/themeport/internal/mapping"
)

// RuleSettings style one token rule.
type RuleSettings struct {
	Foreground string
	Background string
	FontStyle  string
}

// Rule is a syntax highlighting rule scoped to a grammar selector.
type Rule struct {
	Name     string
	Scope    string
	Settings RuleSettings
}

// Theme is a TextMate theme: global editor settings plus token rules.
type Theme struct {
	Name    string
	Globals map[string]string
	Rules   []Rule
}

// rawTheme is the plist wire shape. The settings array mixes the global
// settings item (no scope) with token rules.
type rawTheme struct {
	Name     string    `plist:"name"`
	Settings []rawItem `plist:"settings"`
}

type rawItem struct {
	Name     string            `plist:"name,omitempty"`
	Scope    string            `plist:"scope,omitempty"`
	Settings map[string]string `plist:"settings"`
}

// Load reads a theme from a tmTheme plist file.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme %s: %w", path, err)
	}
	theme, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse theme %s: %w", path, err)
	}
	return theme, nil
}

// Parse decodes a theme from plist bytes.
func Parse(data []byte) (*Theme, error) {
	var raw rawTheme
	if _, err := plist.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	theme := &Theme{Name: raw.Name, Globals: map[string]string{}}
	for _, item := range raw.Settings {
		// An item without a scope is the global settings block.
		if item.Scope == "" {
			for key, value := range item.Settings {
				theme.Globals[key] = value
			}
			continue
		}
		theme.Rules = append(theme.Rules, Rule{
			Name:  item.Name,
			Scope: item.Scope,
			Settings: RuleSettings{
				Foreground: item.Settings["foreground"],
				Background: item.Settings["background"],
				FontStyle:  item.Settings["fontStyle"],
			},
		})
	}
	return theme, nil
}

// Save writes the theme as an XML plist, global settings first.
func (t *Theme) Save(path string) error {
	data, err := t.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write theme %s: %w", path, err)
	}
	return nil
}

// Marshal encodes the theme as XML plist bytes.
func (t *Theme) Marshal() ([]byte, error) {
	raw := rawTheme{
		Name:     t.Name,
		Settings: make([]rawItem, 0, len(t.Rules)+1),
	}

	globals := make(map[string]string, len(t.Globals))
	for key, value := range t.Globals {
		globals[key] = value
	}
	raw.Settings = append(raw.Settings, rawItem{Settings: globals})

	for _, rule := range t.Rules {
		settings := map[string]string{}
		if rule.Settings.Foreground != "" {
			settings["foreground"] = rule.Settings.Foreground
		}
		if rule.Settings.Background != "" {
			settings["background"] = rule.Settings.Background
		}
		if rule.Settings.FontStyle != "" {
			settings["fontStyle"] = rule.Settings.FontStyle
		}
		raw.Settings = append(raw.Settings, rawItem{
			Name:     rule.Name,
			Scope:    rule.Scope,
			Settings: settings,
		})
	}

	data, err := plist.MarshalIndent(raw, plist.XMLFormat, "\t")
	if err != nil {
		return nil, fmt.Errorf("marshal theme: %w", err)
	}
	return data, nil
}

// ColorUsages emits every color occurrence: one usage per global setting
// and one per rule foreground.
func (t *Theme) ColorUsages() []mapping.Usage {
	usages := make([]mapping.Usage, 0, len(t.Globals)+len(t.Rules))
	for setting, color := range t.Globals {
		if color == "" {
			continue
		}
		usages = append(usages, mapping.Usage{Color: color, Setting: setting})
	}
	for _, rule := range t.Rules {
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
// replaced by its slot placeholder, renamed with an " (ANSI)" suffix.
// The original theme is not modified.
func (t *Theme) ApplyMapping(tm *mapping.ThemeMapping) (*Theme, *mapping.UnmappedReport) {
	applied := t.clone()
	report := mapping.NewUnmappedReport()

	for setting, color := range applied.Globals {
		if color == "" {
			continue
		}
		if replaced, ok := report.Substitute(tm, color); ok {
			applied.Globals[setting] = replaced
		}
	}

	for i := range applied.Rules {
		color := applied.Rules[i].Settings.Foreground
		if color == "" {
			continue
		}
		if replaced, ok := report.Substitute(tm, color); ok {
			applied.Rules[i].Settings.Foreground = replaced
		}
	}

	if applied.Name != "" {
		applied.Name += " (ANSI)"
	}
	return applied, report
}

func (t *Theme) clone() *Theme {
	clone := &Theme{
		Name:    t.Name,
		Globals: make(map[string]string, len(t.Globals)),
		Rules:   make([]Rule, len(t.Rules)),
	}
	for key, value := range t.Globals {
		clone.Globals[key] = value
	}
	copy(clone.Rules, t.Rules)
	return clone
}
