// Package paths derives every file-system location the pipeline touches from
// the effective configuration: the destination identifier for a partitioned
// dataset, the feature-set pattern used to discover result directories, and
// the fixed external tool paths.
package paths

import (
	"errors"
	"fmt"
	"path"
	"strconv"
	"strings"
)

var (
	// ErrFractionSyntax reports a training fraction that is not a number.
	ErrFractionSyntax = errors.New("fraction is not a number")

	// ErrFractionRange reports a training fraction outside (0, 1].
	ErrFractionRange = errors.New("fraction must be greater than 0 and at most 1")
)

// Join concatenates path fragments with single-separator handling, so that
// fragments carrying their own leading or trailing slashes never produce
// doubled or missing separators. Empty fragments are dropped.
func Join(parts ...string) string {
	return path.Join(parts...)
}

// Destination computes the dataset subgroup identifier: the keyword
// immediately followed by the training fraction as a rounded percentage,
// e.g. keyword "disc" and fraction "0.75" yield "disc75".
func Destination(keyword, fraction string) (string, error) {
	pct, err := roundPercent(fraction)
	if err != nil {
		return "", err
	}
	return keyword + strconv.Itoa(pct), nil
}

// roundPercent converts a fraction in (0, 1] to an integer percentage using
// round-half-up. The rounding is performed on the decimal text of the
// fraction rather than on a float64: exact half values such as 0.745 have no
// binary representation, and rounding their nearest float would turn the
// contracted 75 into 74.
func roundPercent(fraction string) (int, error) {
	s := strings.TrimSpace(fraction)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrFractionSyntax, fraction)
	}
	if f <= 0 || f > 1 {
		return 0, fmt.Errorf("%w: %q", ErrFractionRange, fraction)
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	if !isDigits(intPart) || !isDigits(fracPart) {
		// Exponent or other non-plain form; fall back to float arithmetic.
		return int(f*100 + 0.5), nil
	}

	pct := 0
	if intPart != "" {
		n, err := strconv.Atoi(intPart)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrFractionSyntax, fraction)
		}
		pct = n * 100
	}
	if len(fracPart) >= 1 {
		pct += int(fracPart[0]-'0') * 10
	}
	if len(fracPart) >= 2 {
		pct += int(fracPart[1] - '0')
	}
	// Half-up: a third decimal digit of 5 or more means the remainder is at
	// least half of one percent.
	if len(fracPart) >= 3 && fracPart[2] >= '5' {
		pct++
	}
	return pct, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// FeaturePattern builds the glob-style prefix identifying the result
// directories for one dataset/destination/cells/bins combination, e.g.
// "shapes/disc80/cells8_bins9". Cells and bins may be the literal "*"
// wildcard, which is inserted verbatim so a single pattern can discover the
// directories of many extraction runs. An empty dataset or destination
// yields an empty pattern.
func FeaturePattern(dataset, destination, cells, bins string) string {
	if dataset == "" || destination == "" {
		return ""
	}
	return Join(dataset, destination, fmt.Sprintf("cells%s_bins%s", cells, bins))
}
