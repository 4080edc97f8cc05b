// Package ndc converts National Drug Codes between their 10-digit and
// 11-digit representations.
//
// A 10-digit NDC groups its digits in one of three layouts (4-4-2, 5-3-2,
// or 5-4-1). The standardized 11-digit form is produced by inserting a
// single padding zero at a layout-specific position. Detection of which
// layout a given string uses is a heuristic: the same digit string can
// legitimately belong to more than one real-world layout, so results are
// best-effort and callers should treat them as advisory.
//
// All conversion functions are total. Input that is not a convertible NDC
// (wrong length, non-numeric) passes through unchanged rather than failing.
package ndc

import (
	"log/slog"
	"regexp"
	"strconv"
)

// nonDigitRegex strips separators (hyphens, spaces) and any other
// non-digit characters before positional logic runs.
var nonDigitRegex = regexp.MustCompile(`\D`)

// Layout identifies the digit-group widths of a 10-digit NDC.
type Layout int

const (
	// LayoutNone means the input is not applicable for conversion
	// (wrong length after stripping separators).
	LayoutNone Layout = iota

	// LayoutFourFourTwo is the 4-4-2 layout (4-digit labeler code).
	LayoutFourFourTwo

	// LayoutFiveThreeTwo is the 5-3-2 layout (3-digit product code).
	LayoutFiveThreeTwo

	// LayoutFiveFourOne is the 5-4-1 layout (1-digit package code).
	LayoutFiveFourOne

	// LayoutUnknown means the input is 11 digits long but no padding-zero
	// marker consistent with any of the three layouts was found.
	LayoutUnknown
)

// String returns the conventional hyphenated name of the layout.
func (l Layout) String() string {
	switch l {
	case LayoutFourFourTwo:
		return "4-4-2"
	case LayoutFiveThreeTwo:
		return "5-3-2"
	case LayoutFiveFourOne:
		return "5-4-1"
	case LayoutUnknown:
		return "unknown"
	default:
		return "none"
	}
}

// Groups returns the digit-group widths of the 10-digit form, or nil
// when the layout is not one of the three known variants.
func (l Layout) Groups() []int {
	switch l {
	case LayoutFourFourTwo:
		return []int{4, 4, 2}
	case LayoutFiveThreeTwo:
		return []int{5, 3, 2}
	case LayoutFiveFourOne:
		return []int{5, 4, 1}
	default:
		return nil
	}
}

// StripNonDigits removes every non-digit character from s.
func StripNonDigits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

// DetectElevenDigitLayout classifies an 11-digit NDC by finding where the
// padding zero was inserted. It returns the detected layout and the
// digit-only form of the input.
//
// Returns LayoutNone if the stripped input is not exactly 11 digits, and
// LayoutUnknown if it is 11 digits but no position matches. The checks run
// in fixed priority order and the first match wins; the "next digit must
// be non-zero" guard avoids misclassifying a product or package code that
// itself starts with 0.
func DetectElevenDigitLayout(input string) (Layout, string) {
	digits := StripNonDigits(input)

	if len(digits) != 11 {
		return LayoutNone, digits
	}

	if digits[0] == '0' && digits[1] != '0' {
		return LayoutFourFourTwo, digits
	}

	if digits[5] == '0' && digits[6] != '0' {
		return LayoutFiveThreeTwo, digits
	}

	if digits[9] == '0' && digits[10] != '0' {
		return LayoutFiveFourOne, digits
	}

	return LayoutUnknown, digits
}

// DetectTenDigitLayout classifies a 10-digit NDC's segment layout.
//
// Returns LayoutNone with the stripped digits when the input is already
// 11 digits, and LayoutNone with the original, unstripped input when it is
// any other non-10-digit length. The asymmetry is deliberate: callers pass
// non-convertible values through unchanged.
//
// The classification itself is an unverifiable heuristic. Labeler codes
// assigned early tend to be low-numbered, so a leading digit of 0-3 reads
// as 4-4-2; a small would-be product code at positions 5-8 reads as 5-4-1;
// everything else falls back to 5-3-2, the most common layout.
func DetectTenDigitLayout(input string) (Layout, string) {
	digits := StripNonDigits(input)

	if len(digits) == 11 {
		return LayoutNone, digits
	}

	if len(digits) != 10 {
		return LayoutNone, input
	}

	switch digits[0] {
	case '0', '1', '2', '3':
		return LayoutFourFourTwo, digits
	}

	if code, err := strconv.Atoi(digits[5:9]); err == nil && code < 9999 {
		return LayoutFiveFourOne, digits
	}

	return LayoutFiveThreeTwo, digits
}

// ToEleven converts a 10-digit NDC to its 11-digit form by inserting the
// layout-specific padding zero. Input that is not a 10-digit NDC (already
// 11 digits, wrong length, non-numeric) is returned unchanged.
func ToEleven(input string) string {
	layout, digits := DetectTenDigitLayout(input)

	switch layout {
	case LayoutFourFourTwo:
		return "0" + digits
	case LayoutFiveThreeTwo:
		return digits[:5] + "0" + digits[5:]
	case LayoutFiveFourOne:
		return digits[:9] + "0" + digits[9:]
	default:
		return input
	}
}

// ToTen converts an 11-digit NDC to its 10-digit form by removing the
// padding zero. Input that is not 11 digits is returned unchanged.
//
// When the layout cannot be determined, a warning is logged and the
// 11-digit string is returned with no digit removed rather than guessing
// a removal position.
func ToTen(input string) string {
	layout, digits := DetectElevenDigitLayout(input)

	switch layout {
	case LayoutFourFourTwo:
		return digits[1:]
	case LayoutFiveThreeTwo:
		return digits[:5] + digits[6:]
	case LayoutFiveFourOne:
		return digits[:9] + digits[10:]
	case LayoutUnknown:
		slog.Warn("could not determine NDC layout", "ndc", digits)
		return digits
	default:
		return input
	}
}
