package cli

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/themeport/themeport/internal/theme/tmtheme"
	"github.com/themeport/themeport/internal/theme/vscode"
)

func TestDetectFormat(t *testing.T) {
	require.Equal(t, formatVSCode, detectFormat("theme.json"))
	require.Equal(t, formatVSCode, detectFormat("theme.jsonc"))
	require.Equal(t, formatVSCode, detectFormat("THEME.JSON"))
	require.Equal(t, formatTMTheme, detectFormat("theme.tmTheme"))
	require.Equal(t, formatTMTheme, detectFormat("theme.tmtheme"))
	require.Equal(t, formatUnknown, detectFormat("theme.yaml"))
	require.Equal(t, formatUnknown, detectFormat("theme"))
}

func TestThemeFileConversion(t *testing.T) {
	theme := &themeFile{vscode: &vscode.Theme{
		Name:   "Sample",
		Colors: map[string]string{"editor.background": "#101010"},
	}}

	tm := theme.asTMTheme()
	require.Equal(t, "Sample", tm.Name)
	require.Equal(t, "#101010", tm.Globals["background"])

	// Already in target form: no conversion.
	direct := &themeFile{tmtheme: &tmtheme.Theme{Name: "Direct"}}
	require.Same(t, direct.tmtheme, direct.asTMTheme())
}

func TestEscapeCell(t *testing.T) {
	require.Equal(t, "plain", escapeCell("plain"))

	styled := "\x1b[31mred\x1b[0m"
	escaped := escapeCell(styled)
	require.Equal(t, "\xff"+styled+"\xff", escaped)
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	err := writeTable(&buf, []string{"A", "B"}, [][]string{{"one", "two"}})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "A")
	require.Contains(t, buf.String(), "one")
}

func TestParseLogLevel(t *testing.T) {
	require.Equal(t, zerolog.DebugLevel, parseLogLevel("debug"))
	require.Equal(t, zerolog.InfoLevel, parseLogLevel(" INFO "))
	require.Equal(t, zerolog.WarnLevel, parseLogLevel(""))
	require.Equal(t, zerolog.WarnLevel, parseLogLevel("nonsense"))
}
