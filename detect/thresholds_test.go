package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultThresholdsValidate(t *testing.T) {
	require.NoError(t, DefaultThresholds().Validate())
}

func TestParseThresholdsPartialOverride(t *testing.T) {
	got, err := ParseThresholds([]byte(`
min_dpi = 600
runt_max_words = 2
`))
	require.NoError(t, err)

	assert.Equal(t, 600.0, got.MinDPI)
	assert.Equal(t, 2, got.RuntMaxWords)

	// Untouched keys keep their defaults.
	def := DefaultThresholds()
	assert.Equal(t, def.WhitespaceFraction, got.WhitespaceFraction)
	assert.Equal(t, def.OrphanWidowMinLines, got.OrphanWidowMinLines)
	assert.Equal(t, def.PrintDestined, got.PrintDestined)
}

func TestParseThresholdsEmptyKeepsDefaults(t *testing.T) {
	got, err := ParseThresholds(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultThresholds(), got)
}

func TestParseThresholdsRejectsUnknownKey(t *testing.T) {
	_, err := ParseThresholds([]byte(`widow_max_lines = 3`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown threshold key")
}

func TestParseThresholdsRejectsOutOfRange(t *testing.T) {
	cases := []struct {
		name string
		toml string
	}{
		{"whitespace fraction above one", `whitespace_fraction = 1.5`},
		{"zero min dpi", `min_dpi = 0`},
		{"river run below two", `river_min_run = 1`},
		{"negative join gap", `block_join_gap = -0.5`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseThresholds([]byte(tc.toml))
			assert.Error(t, err)
		})
	}
}

func TestParseThresholdsRejectsMalformedTOML(t *testing.T) {
	_, err := ParseThresholds([]byte(`min_dpi = "not a number`))
	require.Error(t, err)
}

func TestLoadThresholdsMissingFile(t *testing.T) {
	_, err := LoadThresholds("no/such/file.toml")
	require.Error(t, err)
}

func TestOverridingOneKeyLeavesOthersAlone(t *testing.T) {
	a, err := ParseThresholds([]byte(`min_dpi = 600`))
	require.NoError(t, err)
	b, err := ParseThresholds([]byte(`runt_max_words = 3`))
	require.NoError(t, err)

	assert.Equal(t, DefaultThresholds().RuntMaxWords, a.RuntMaxWords)
	assert.Equal(t, DefaultThresholds().MinDPI, b.MinDPI)
}
