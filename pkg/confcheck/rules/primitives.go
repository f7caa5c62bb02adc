// Package rules implements the validation rules run over a submission grid.
package rules

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var emailPattern = regexp.MustCompile(`^(([^<>()\[\]\\.,;:\s@"]+(\.[^<>()\[\]\\.,;:\s@"]+)*)|(".+"))@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`)

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(strings.ToLower(s))
}

// IsValidHTTPURL reports whether s is an absolute http or https URL with a host.
func IsValidHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// ContainsDigit reports whether s contains a decimal digit.
func ContainsDigit(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

// HasInternalSpace reports whether s contains a space.
func HasInternalSpace(s string) bool {
	return strings.Contains(s, " ")
}

// LengthInRange reports whether the character count of s lies in [min, max].
func LengthInRange(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max
}

// ContainsAny returns the first of subs found in s, ignoring case.
func ContainsAny(s string, subs []string) (string, bool) {
	lower := strings.ToLower(s)
	for _, sub := range subs {
		if sub != "" && strings.Contains(lower, strings.ToLower(sub)) {
			return sub, true
		}
	}
	return "", false
}

// ContainsAnyRune returns the first rune of s that appears in set.
func ContainsAnyRune(s, set string) (rune, bool) {
	if i := strings.IndexAny(s, set); i >= 0 {
		r, _ := utf8.DecodeRuneInString(s[i:])
		return r, true
	}
	return 0, false
}

// StartsWithUppercase reports whether the first character of s is upper case.
func StartsWithUppercase(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

// SplitMulti splits a multi-value cell on delim and trims each part.
// An empty cell yields no parts.
func SplitMulti(s, delim string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, delim)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
