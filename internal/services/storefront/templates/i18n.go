package templates

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Localizer provides translated strings for storefront components.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

var basePrinter = message.NewPrinter(language.AmericanEnglish)

// T translates key with loc, or with the base locale when loc is nil.
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc == nil {
		loc = basePrinter
	}
	return loc.Sprintf(key, args...)
}
