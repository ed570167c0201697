package detect

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Thresholds is the complete set of tunable parameters consumed by the
// detectors. Every field can be overridden independently; overriding one
// never changes another. A configuration with an unknown key or an
// out-of-range value is rejected as a whole before any detector runs.
type Thresholds struct {
	// BlockJoinGap is the vertical gap threshold for joining two lines
	// into the same block, as a multiple of the font-derived line height
	BlockJoinGap float64 `toml:"block_join_gap" validate:"gt=0"`

	// OrphanWidowMinLines is the minimum number of a block's lines that
	// must remain on each side of a page break. A block with fewer lines
	// on the first page is an orphan; on the continuation page, a widow.
	OrphanWidowMinLines int `toml:"orphan_widow_min_lines" validate:"gte=1"`

	// WhitespaceFraction is the trailing-gap ceiling as a fraction of
	// page height; a larger gap on a non-final page is flagged
	WhitespaceFraction float64 `toml:"whitespace_fraction" validate:"gt=0,lt=1"`

	// RuntMaxWords is the word-count floor for the last line of a
	// paragraph: at or below it, the line is a runt candidate
	RuntMaxWords int `toml:"runt_max_words" validate:"gte=1"`

	// RuntMaxWordLength is the character threshold for runt words.
	// Zero means a lone word of any length is a runt.
	RuntMaxWordLength int `toml:"runt_max_word_length" validate:"gte=0"`

	// RiverToleranceChars is the horizontal alignment tolerance for river
	// gap columns, in character widths (one character width is taken as
	// half the font size)
	RiverToleranceChars float64 `toml:"river_tolerance_chars" validate:"gt=0"`

	// RiverMinRun is the minimum number of consecutive lines sharing an
	// aligned gap column to count as a river
	RiverMinRun int `toml:"river_min_run" validate:"gte=2"`

	// MinDPI is the effective-resolution floor for placed images
	MinDPI float64 `toml:"min_dpi" validate:"gt=0"`

	// SplitTableMinRows is the minimum row count a split table must keep
	// on its first page before the break is flagged as too early
	SplitTableMinRows int `toml:"split_table_min_rows" validate:"gte=1"`

	// PrintDestined selects the print color-space policy: when true,
	// RGB and unknown color spaces are reported
	PrintDestined bool `toml:"print_destined"`
}

// DefaultThresholds returns the default tunable set.
func DefaultThresholds() Thresholds {
	return Thresholds{
		BlockJoinGap:        1.5,
		OrphanWidowMinLines: 2,
		WhitespaceFraction:  0.15,
		RuntMaxWords:        1,
		RuntMaxWordLength:   0,
		RiverToleranceChars: 2.0,
		RiverMinRun:         3,
		MinDPI:              300,
		SplitTableMinRows:   2,
		PrintDestined:       true,
	}
}

var thresholdValidator = validator.New()

// Validate checks every threshold against its allowed range.
func (t Thresholds) Validate() error {
	if err := thresholdValidator.Struct(t); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			e := errs[0]
			return fmt.Errorf("invalid threshold %s: value %v fails constraint %q", e.Field(), e.Value(), e.Tag())
		}
		return fmt.Errorf("invalid thresholds: %w", err)
	}
	return nil
}

// ParseThresholds decodes a TOML threshold document over the defaults.
// Keys absent from the document keep their default values. An unknown key
// rejects the whole configuration, as does any out-of-range value.
func ParseThresholds(data []byte) (Thresholds, error) {
	t := DefaultThresholds()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&t); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Thresholds{}, fmt.Errorf("unknown threshold key: %s", strict.String())
		}
		return Thresholds{}, fmt.Errorf("parsing thresholds: %w", err)
	}

	if err := t.Validate(); err != nil {
		return Thresholds{}, err
	}
	return t, nil
}

// LoadThresholds reads and parses a TOML threshold file.
func LoadThresholds(path string) (Thresholds, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Thresholds{}, fmt.Errorf("reading thresholds %s: %w", path, err)
	}
	t, err := ParseThresholds(data)
	if err != nil {
		return Thresholds{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
