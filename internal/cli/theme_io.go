package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/themeport/themeport/internal/mapping"
	"github.com/themeport/themeport/internal/theme/convert"
	"github.com/themeport/themeport/internal/theme/tmtheme"
	"github.com/themeport/themeport/internal/theme/vscode"
)

// themeFormat identifies a theme file format by extension.
type themeFormat int

const (
	formatUnknown themeFormat = iota
	formatVSCode
	formatTMTheme
)

func detectFormat(path string) themeFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return formatVSCode
	case ".tmtheme":
		return formatTMTheme
	default:
		return formatUnknown
	}
}

// themeFile is either format loaded into memory; exactly one field is set.
type themeFile struct {
	vscode  *vscode.Theme
	tmtheme *tmtheme.Theme
}

func loadTheme(path string) (*themeFile, error) {
	switch detectFormat(path) {
	case formatVSCode:
		theme, err := vscode.Load(path)
		if err != nil {
			return nil, err
		}
		return &themeFile{vscode: theme}, nil
	case formatTMTheme:
		theme, err := tmtheme.Load(path)
		if err != nil {
			return nil, err
		}
		return &themeFile{tmtheme: theme}, nil
	default:
		return nil, fmt.Errorf("unsupported theme format: %s (expected .json, .jsonc or .tmTheme)", path)
	}
}

func (t *themeFile) name() string {
	if t.vscode != nil {
		return t.vscode.Name
	}
	return t.tmtheme.Name
}

func (t *themeFile) collectMapping() *mapping.ThemeMapping {
	if t.vscode != nil {
		return t.vscode.CollectMapping()
	}
	return t.tmtheme.CollectMapping()
}

func (t *themeFile) applyMapping(tm *mapping.ThemeMapping) (*themeFile, *mapping.UnmappedReport) {
	if t.vscode != nil {
		applied, report := t.vscode.ApplyMapping(tm)
		return &themeFile{vscode: applied}, report
	}
	applied, report := t.tmtheme.ApplyMapping(tm)
	return &themeFile{tmtheme: applied}, report
}

// asVSCode returns the theme in VSCode form, converting if necessary.
func (t *themeFile) asVSCode() *vscode.Theme {
	if t.vscode != nil {
		return t.vscode
	}
	return convert.TMToVSCode(t.tmtheme)
}

// asTMTheme returns the theme in TextMate form, converting if necessary.
func (t *themeFile) asTMTheme() *tmtheme.Theme {
	if t.tmtheme != nil {
		return t.tmtheme
	}
	return convert.VSCodeToTM(t.vscode)
}

func (t *themeFile) save(path string) error {
	switch detectFormat(path) {
	case formatVSCode:
		return t.asVSCode().Save(path)
	case formatTMTheme:
		return t.asTMTheme().Save(path)
	default:
		return fmt.Errorf("unsupported output format: %s (expected .json, .jsonc or .tmTheme)", path)
	}
}
