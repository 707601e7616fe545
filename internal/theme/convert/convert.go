// Package convert translates themes between the VSCode JSON format and the
// TextMate plist format by renaming global settings and carrying token
// rules across.
package convert

import (
	"github.com/themeport/themeport/internal/theme/tmtheme"
	"github.com/themeport/themeport/internal/theme/vscode"
)

// tmToVSCode maps TextMate global setting names to VSCode color keys.
// Settings without a VSCode equivalent are omitted.
// See https://www.sublimetext.com/docs/color_schemes_tmtheme.html#global_settings
var tmToVSCode = map[string]string{
	"background":              "editor.background",
	"foreground":              "editor.foreground",
	"caret":                   "editorCursor.foreground",
	"lineHighlight":           "editor.lineHighlightBackground",
	"invisibles":              "editorWhitespace.foreground",
	"selection":               "editor.selectionBackground",
	"selectionForeground":     "editor.selectionForeground",
	"inactiveSelection":       "editor.inactiveSelectionBackground",
	"highlight":               "editor.findMatchBorder",
	"findHighlight":           "editor.findMatchBackground",
	"findHighlightForeground": "editor.findMatchForeground",
	"guide":                   "editorIndentGuide.background",
	"activeGuide":             "editorIndentGuide.activeBackground",
	"gutter":                  "editorGutter.background",
	"gutterForeground":        "editorLineNumber.foreground",
}

var vscodeToTM = func() map[string]string {
	inverse := make(map[string]string, len(tmToVSCode))
	for tmKey, vscodeKey := range tmToVSCode {
		inverse[vscodeKey] = tmKey
	}
	return inverse
}()

// VSCodeSettingForTM returns the VSCode color key for a TextMate global
// setting name.
func VSCodeSettingForTM(name string) (string, bool) {
	key, ok := tmToVSCode[name]
	return key, ok
}

// TMSettingForVSCode returns the TextMate global setting name for a VSCode
// color key.
func TMSettingForVSCode(key string) (string, bool) {
	name, ok := vscodeToTM[key]
	return name, ok
}

// VSCodeToTM converts a VSCode theme to TextMate format. VSCode color keys
// without a TextMate equivalent are dropped.
func VSCodeToTM(theme *vscode.Theme) *tmtheme.Theme {
	name := theme.Name
	if name == "" {
		name = "Converted Theme"
	}

	out := &tmtheme.Theme{
		Name:    name,
		Globals: make(map[string]string),
		Rules:   make([]tmtheme.Rule, 0, len(theme.TokenColors)),
	}

	for key, color := range theme.Colors {
		if color == "" {
			continue
		}
		if tmKey, ok := vscodeToTM[key]; ok {
			out.Globals[tmKey] = color
		}
	}

	for _, rule := range theme.TokenColors {
		out.Rules = append(out.Rules, tmtheme.Rule{
			Name:  rule.Name,
			Scope: rule.Scope,
			Settings: tmtheme.RuleSettings{
				Foreground: rule.Settings.Foreground,
				FontStyle:  rule.Settings.FontStyle,
			},
		})
	}
	return out
}

// TMToVSCode converts a TextMate theme to VSCode format. TextMate settings
// without a VSCode equivalent are dropped.
func TMToVSCode(theme *tmtheme.Theme) *vscode.Theme {
	name := theme.Name
	if name == "" {
		name = "Converted Theme"
	}

	out := &vscode.Theme{
		Name:        name,
		Colors:      make(map[string]string),
		TokenColors: make([]vscode.TokenColor, 0, len(theme.Rules)),
	}

	for setting, color := range theme.Globals {
		if color == "" {
			continue
		}
		if vscodeKey, ok := tmToVSCode[setting]; ok {
			out.Colors[vscodeKey] = color
		}
	}

	for _, rule := range theme.Rules {
		out.TokenColors = append(out.TokenColors, vscode.TokenColor{
			Name:  rule.Name,
			Scope: rule.Scope,
			Settings: vscode.TokenSettings{
				Foreground: rule.Settings.Foreground,
				FontStyle:  rule.Settings.FontStyle,
			},
		})
	}
	return out
}
