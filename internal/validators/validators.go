package validators

import (
	"net/mail"
	"regexp"
	"unicode/utf8"
)

var phoneRe = regexp.MustCompile(`^(\+40|0)[0-9]{9}$`)

// IsEmail accepts a bare address such as "ion.popescu@example.com".
func IsEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// IsPhone accepts Romanian numbers: +40712345678 or 0712345678.
func IsPhone(s string) bool {
	return phoneRe.MatchString(s)
}

// LengthBetween counts runes, not bytes.
func LengthBetween(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max
}
