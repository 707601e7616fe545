package convert

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/themeport/themeport/internal/theme/tmtheme"
	"github.com/themeport/themeport/internal/theme/vscode"
)

func TestSettingsTableInverts(t *testing.T) {
	for tmKey := range tmToVSCode {
		vscodeKey, ok := VSCodeSettingForTM(tmKey)
		require.True(t, ok)

		back, ok := TMSettingForVSCode(vscodeKey)
		require.True(t, ok)
		require.Equal(t, tmKey, back)
	}
}

func TestVSCodeToTM(t *testing.T) {
	theme := &vscode.Theme{
		Name: "Sample",
		Colors: map[string]string{
			"editor.background":       "#101010",
			"editor.foreground":       "#E0E0E0",
			"editorCursor.foreground": "#FF00FF",
			"badge.background":        "#123456", // no TextMate equivalent
		},
		TokenColors: []vscode.TokenColor{
			{
				Name:     "Keywords",
				Scope:    "keyword",
				Settings: vscode.TokenSettings{Foreground: "#FF0000", FontStyle: "bold"},
			},
		},
	}

	converted := VSCodeToTM(theme)

	require.Equal(t, "Sample", converted.Name)
	require.Equal(t, map[string]string{
		"background": "#101010",
		"foreground": "#E0E0E0",
		"caret":      "#FF00FF",
	}, converted.Globals)

	require.Len(t, converted.Rules, 1)
	require.Equal(t, "keyword", converted.Rules[0].Scope)
	require.Equal(t, "#FF0000", converted.Rules[0].Settings.Foreground)
	require.Equal(t, "bold", converted.Rules[0].Settings.FontStyle)
}

func TestTMToVSCode(t *testing.T) {
	theme := &tmtheme.Theme{
		Name: "Sample",
		Globals: map[string]string{
			"background":    "#101010",
			"lineHighlight": "#202020",
			"shadow":        "#000000", // no VSCode equivalent
		},
		Rules: []tmtheme.Rule{
			{
				Scope:    "comment",
				Settings: tmtheme.RuleSettings{Foreground: "#808080", FontStyle: "italic"},
			},
		},
	}

	converted := TMToVSCode(theme)

	require.Equal(t, "Sample", converted.Name)
	require.Equal(t, map[string]string{
		"editor.background":              "#101010",
		"editor.lineHighlightBackground": "#202020",
	}, converted.Colors)

	require.Len(t, converted.TokenColors, 1)
	require.Equal(t, "comment", converted.TokenColors[0].Scope)
	require.Equal(t, "#808080", converted.TokenColors[0].Settings.Foreground)
}

func TestConvertDefaultsThemeName(t *testing.T) {
	converted := VSCodeToTM(&vscode.Theme{})
	require.Equal(t, "Converted Theme", converted.Name)

	back := TMToVSCode(&tmtheme.Theme{})
	require.Equal(t, "Converted Theme", back.Name)
}
