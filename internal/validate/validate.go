package validate

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reName  = regexp.MustCompile(`^[A-Za-z\s\-']+$`)
	reDigit = regexp.MustCompile(`^[0-9]+$`)
)

// Phone normalizes and validates a 10-digit mobile number. A +91/91 prefix
// is stripped; the normalized form is the bare 10 digits.
func Phone(s string) (string, bool) {
	s = strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(s))
	if strings.HasPrefix(s, "+91") {
		s = s[3:]
	} else if strings.HasPrefix(s, "91") && len(s) == 12 {
		s = s[2:]
	}
	if !reDigit.MatchString(s) || len(s) != 10 {
		return "", false
	}
	if s[0] < '6' || s[0] > '9' {
		return "", false
	}
	return s, true
}

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 50 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Password requires 6-50 characters with at least one letter and one digit.
func Password(s string) bool {
	if len(s) < 6 || len(s) > 50 {
		return false
	}
	var hasLetter, hasDigit bool
	for _, r := range s {
		switch {
		case 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z':
			hasLetter = true
		case '0' <= r && r <= '9':
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

// Name allows letters, spaces, hyphens and apostrophes, 2-50 characters.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || len(s) > 50 {
		return "", false
	}
	return s, reName.MatchString(s)
}

// Date validates a DD-MM-YYYY date that is not in the future.
func Date(s string) (string, bool) {
	s = strings.TrimSpace(s)
	t, err := time.Parse("02-01-2006", s)
	if err != nil || t.After(time.Now()) {
		return "", false
	}
	return s, true
}

// Qty parses a positive integer quantity.
func Qty(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// Price parses a non-negative price.
func Price(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// Rating parses a supplier rating; range enforcement stays with the entity.
func Rating(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
