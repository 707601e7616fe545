package contrast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRelativeLuminance(t *testing.T) {
	lum, err := RelativeLuminance("#000000")
	require.NoError(t, err)
	require.InDelta(t, 0.0, lum, 1e-9)

	lum, err = RelativeLuminance("#FFFFFF")
	require.NoError(t, err)
	require.InDelta(t, 1.0, lum, 1e-9)

	// Pure red per the WCAG coefficients.
	lum, err = RelativeLuminance("#FF0000")
	require.NoError(t, err)
	require.InDelta(t, 0.2126, lum, 1e-4)

	// Hash prefix is optional.
	withHash, err := RelativeLuminance("#808080")
	require.NoError(t, err)
	withoutHash, err := RelativeLuminance("808080")
	require.NoError(t, err)
	require.Equal(t, withHash, withoutHash)
}

func TestRatio(t *testing.T) {
	ratio, err := Ratio("#FFFFFF", "#000000")
	require.NoError(t, err)
	require.InDelta(t, 21.0, ratio, 1e-9)

	ratio, err = Ratio("#123456", "#123456")
	require.NoError(t, err)
	require.InDelta(t, 1.0, ratio, 1e-9)
}

func TestRatioIsSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"#FFFFFF", "#000000"},
		{"#FF0000", "#00FF00"},
		{"#ABCDEF", "#123456"},
		{"#777777", "#FEDCBA"},
	}
	for _, pair := range pairs {
		forward, err := Ratio(pair[0], pair[1])
		require.NoError(t, err)
		backward, err := Ratio(pair[1], pair[0])
		require.NoError(t, err)
		require.InDelta(t, forward, backward, 1e-12)
	}
}

func TestRating(t *testing.T) {
	require.Equal(t, RatingAAA, Rating(21.0))
	require.Equal(t, RatingAAA, Rating(7.0))
	require.Equal(t, RatingAA, Rating(6.99))
	require.Equal(t, RatingAA, Rating(4.5))
	require.Equal(t, RatingFail, Rating(4.49))
	require.Equal(t, RatingFail, Rating(1.0))
}

func TestInvalidColors(t *testing.T) {
	for _, hex := range []string{"", "#FFF", "fff", "#GGGGGG", "#12345", "#1234567", "red"} {
		_, err := RelativeLuminance(hex)
		require.ErrorIs(t, err, ErrInvalidColor, "expected error for %q", hex)
	}

	_, err := Ratio("#FFF", "#000000")
	require.ErrorIs(t, err, ErrInvalidColor)

	_, err = Ratio("#FFFFFF", "bogus")
	require.ErrorIs(t, err, ErrInvalidColor)
}
