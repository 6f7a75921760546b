package vanity

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is the region used to parse numbers that carry no country code.
const DefaultRegion = "US"

// keypad maps each uppercase letter to its digit on a standard telephone keypad.
// No letters map to 0 or 1.
var keypad = map[rune]rune{
	'A': '2', 'B': '2', 'C': '2',
	'D': '3', 'E': '3', 'F': '3',
	'G': '4', 'H': '4', 'I': '4',
	'J': '5', 'K': '5', 'L': '5',
	'M': '6', 'N': '6', 'O': '6',
	'P': '7', 'Q': '7', 'R': '7', 'S': '7',
	'T': '8', 'U': '8', 'V': '8',
	'W': '9', 'X': '9', 'Y': '9', 'Z': '9',
}

// Translate converts a vanity string (e.g. "580-666-HOLY") to its numeric keypad
// equivalent ("5806664659"). Letters are mapped through the keypad, digits pass
// through unchanged and every other character, separators included, is dropped.
func Translate(vanity string) string {
	var sb strings.Builder
	sb.Grow(len(vanity))

	for _, r := range vanity {
		switch {
		case r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			sb.WriteRune(keypad[toUpper(r)])
		}
	}

	return sb.String()
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}

// IsNumber reports whether s is a 10-digit NANP number (area code + 7 digits).
func IsNumber(s string) bool {
	return len(s) == 10 && allDigits(s)
}

// IsPrefix reports whether s is a 6-digit area code + exchange prefix.
func IsPrefix(s string) bool {
	return len(s) == 6 && allDigits(s)
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// National returns the national significant number of a provider number, so
// "+15806664659" and "5806664659" both yield "5806664659". Numbers that cannot be
// parsed fall back to their digits.
func National(number string) string {
	parsed, err := phonenumbers.Parse(number, DefaultRegion)
	if err != nil {
		return digitsOf(number)
	}

	nsn := phonenumbers.GetNationalSignificantNumber(parsed)
	if nsn == "" {
		return digitsOf(number)
	}
	return nsn
}

func digitsOf(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// Format renders a number as AAA-PPP-NNNN. Numbers that do not normalize to ten
// digits are returned unchanged.
func Format(number string) string {
	n := National(number)
	if !IsNumber(n) {
		return number
	}
	return fmt.Sprintf("%s-%s-%s", n[:3], n[3:6], n[6:])
}

// AreaCode returns the first three digits of a number or prefix.
func AreaCode(s string) string {
	if len(s) < 3 {
		return s
	}
	return s[:3]
}
