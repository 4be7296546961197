// Package text formats strings by case.
package text

import (
	"github.com/samber/mo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Format upper-cases input unless toUpper is present and false, in which
// case it lower-cases it.
func Format(input string, toUpper mo.Option[bool]) string {
	if toUpper.OrElse(true) {
		return Upper(input)
	}
	return Lower(input)
}

// Upper applies full Unicode upper-casing, so "ß" becomes "SS".
func Upper(s string) string {
	// a Caser keeps state between calls and must not be shared
	return cases.Upper(language.Und).String(s)
}

// Lower applies full Unicode lower-casing.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
