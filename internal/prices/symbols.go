package prices

import (
	"regexp"
	"strings"
)

var symbolPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d{6}\.(SS|SZ)$`),      // mainland ETF with exchange suffix
	regexp.MustCompile(`^\^[A-Z0-9]+$`),         // index
	regexp.MustCompile(`^[A-Z]{1,5}(-[A-Z])?$`), // US ticker, incl. share classes like BRK-B
	regexp.MustCompile(`^\d{6}$`),               // bare mainland numeric code
}

// ValidateSymbol reports whether a user-entered symbol looks like
// something a provider could resolve.
func ValidateSymbol(symbol string) bool {
	code := strings.ToUpper(strings.TrimSpace(symbol))
	if code == "" {
		return false
	}
	for _, p := range symbolPatterns {
		if p.MatchString(code) {
			return true
		}
	}
	return false
}

// FormatSymbol normalizes user input into provider form. Bare mainland
// ETF codes get their exchange suffix: 51x/15x list in Shanghai, 159x
// in Shenzhen. Everything else is just trimmed and uppercased.
func FormatSymbol(symbol string) string {
	code := strings.ToUpper(strings.TrimSpace(symbol))
	if len(code) == 6 && isDigits(code) {
		switch {
		case strings.HasPrefix(code, "159"):
			return code + ".SZ"
		case strings.HasPrefix(code, "51"), strings.HasPrefix(code, "15"):
			return code + ".SS"
		}
	}
	return code
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
