package vscode

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/themeport/themeport/internal/ansi"
	"github.com/themeport/themeport/internal/mapping"
)

const sampleTheme = `{
	// A JSONC theme with comments.
	"name": "Sample",
	"type": "dark",
	"colors": {
		"editor.background": "#101010",
		"editor.foreground": "#E0E0E0"
	},
	"tokenColors": [
		{
			"name": "Keywords",
			"scope": ["keyword", "storage.type"],
			"settings": { "foreground": "#FF0000" }
		},
		{
			"scope": "comment",
			"settings": { "foreground": "#808080", "fontStyle": "italic" }
		}
	]
}`

func TestParseJSONC(t *testing.T) {
	theme, err := Parse([]byte(sampleTheme))
	require.NoError(t, err)

	require.Equal(t, "Sample", theme.Name)
	require.Equal(t, "dark", theme.Type)
	require.Equal(t, "#101010", theme.Colors["editor.background"])

	// The two-scope rule is split into one rule per scope.
	require.Len(t, theme.TokenColors, 3)
	require.Equal(t, "keyword", theme.TokenColors[0].Scope)
	require.Equal(t, "storage.type", theme.TokenColors[1].Scope)
	require.Equal(t, "comment", theme.TokenColors[2].Scope)
	require.Equal(t, "italic", theme.TokenColors[2].Settings.FontStyle)
}

func TestParseLastRuleWinsPerScope(t *testing.T) {
	data := []byte(`{
		"tokenColors": [
			{"scope": "keyword", "settings": {"foreground": "#111111"}},
			{"scope": ["keyword", "comment"], "settings": {"foreground": "#222222"}}
		]
	}`)

	theme, err := Parse(data)
	require.NoError(t, err)

	require.Len(t, theme.TokenColors, 2)
	require.Equal(t, "#222222", theme.TokenColors[0].Settings.Foreground)
	require.Equal(t, "keyword", theme.TokenColors[0].Scope)
	require.Equal(t, "comment", theme.TokenColors[1].Scope)
}

func TestParseSkipsRulesWithoutScopeOrSettings(t *testing.T) {
	data := []byte(`{
		"tokenColors": [
			{"settings": {"foreground": "#111111"}},
			{"scope": "keyword"},
			{"scope": "comment", "settings": {"foreground": "#222222"}}
		]
	}`)

	theme, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, theme.TokenColors, 1)
	require.Equal(t, "comment", theme.TokenColors[0].Scope)
}

func TestParseRejectsIncludes(t *testing.T) {
	_, err := Parse([]byte(`{"include": "./base.json", "tokenColors": []}`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "include")
}

func TestLoadDefaultsNameFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gruvbox-dark.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"tokenColors": []}`), 0o644))

	theme, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "gruvbox-dark", theme.Name)
}

func TestColorUsages(t *testing.T) {
	theme, err := Parse([]byte(sampleTheme))
	require.NoError(t, err)

	tm := theme.CollectMapping()
	require.Equal(t, "Sample", tm.ThemeName)
	require.Equal(t, 4, tm.Len())

	red := tm.Lookup("#FF0000")
	require.NotNil(t, red)
	require.Equal(t, []string{"keyword", "storage.type"}, red.SortedScopes())
	require.Equal(t, 2, red.UsageCount())

	bg := tm.Lookup("#101010")
	require.NotNil(t, bg)
	require.Equal(t, []string{"editor.background"}, bg.SortedUISettings())
}

func TestCollectIgnoresRulesWithoutForeground(t *testing.T) {
	data := []byte(`{
		"tokenColors": [
			{"scope": "comment", "settings": {"fontStyle": "italic"}},
			{"scope": "keyword", "settings": {"foreground": "#FF0000"}}
		]
	}`)

	theme, err := Parse(data)
	require.NoError(t, err)

	tm := theme.CollectMapping()
	require.Equal(t, 1, tm.Len())
	require.NotNil(t, tm.Lookup("#FF0000"))
}

func TestApplyMapping(t *testing.T) {
	theme, err := Parse([]byte(sampleTheme))
	require.NoError(t, err)

	tm := theme.CollectMapping()
	red := ansi.Red
	tm.Lookup("#FF0000").Assign(&red)
	bg := ansi.Background
	tm.Lookup("#101010").Assign(&bg)

	applied, report := theme.ApplyMapping(tm)

	require.Equal(t, "Sample (ANSI)", applied.Name)
	require.Equal(t, ansi.Encode(ansi.Background), applied.Colors["editor.background"])
	require.Equal(t, ansi.Encode(ansi.Red), applied.TokenColors[0].Settings.Foreground)
	require.Equal(t, ansi.Encode(ansi.Red), applied.TokenColors[1].Settings.Foreground)

	// Unassigned colors stay put and are reported.
	require.Equal(t, "#E0E0E0", applied.Colors["editor.foreground"])
	require.Equal(t, "#808080", applied.TokenColors[2].Settings.Foreground)
	require.True(t, report.Contains("#E0E0E0"))
	require.True(t, report.Contains("#808080"))
	require.Equal(t, 2, report.Len())

	// The input theme is untouched.
	require.Equal(t, "Sample", theme.Name)
	require.Equal(t, "#101010", theme.Colors["editor.background"])
	require.Equal(t, "#FF0000", theme.TokenColors[0].Settings.Foreground)
}

func TestApplyMappingEmptyTheme(t *testing.T) {
	theme := &Theme{Name: "Empty"}
	tm := mapping.NewThemeMapping("Empty")

	applied, report := theme.ApplyMapping(tm)
	require.Equal(t, "Empty (ANSI)", applied.Name)
	require.Empty(t, applied.TokenColors)
	require.Equal(t, 0, report.Len())
}

func TestSaveRoundTrip(t *testing.T) {
	theme, err := Parse([]byte(sampleTheme))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, theme.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, theme.Name, loaded.Name)
	require.Equal(t, theme.Colors, loaded.Colors)
	require.Equal(t, theme.TokenColors, loaded.TokenColors)
}
